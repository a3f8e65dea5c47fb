package model

// IDLength is the number of lowercase hex characters in a record identifier.
const IDLength = 24

// ValidID reports whether id is a well-formed record identifier.
func ValidID(id string) bool {
	if len(id) != IDLength {
		return false
	}
	for i := 0; i < len(id); i++ {
		c := id[i]
		if (c < '0' || c > '9') && (c < 'a' || c > 'f') {
			return false
		}
	}
	return true
}
