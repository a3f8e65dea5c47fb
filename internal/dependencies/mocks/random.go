package mocks

import (
	"github.com/bprisby/arcade-backend-go/internal/dependencies/random"
)

// MockRandom is a mock implementation of Random for testing
type MockRandom struct {
	// IntnResults is a queue of results to return from Intn
	IntnResults []int
	intnIndex   int

	// HexResults is a queue of results to return from Hex
	HexResults []string
	hexIndex   int
}

// Ensure MockRandom implements Random
var _ random.Random = (*MockRandom)(nil)

// NewMockRandom creates a new MockRandom
func NewMockRandom() *MockRandom {
	return &MockRandom{}
}

// Intn returns the next queued result, or 0 if none remaining
func (r *MockRandom) Intn(n int) int {
	if r.intnIndex >= len(r.IntnResults) {
		return 0
	}
	result := r.IntnResults[r.intnIndex]
	r.intnIndex++
	return result
}

// Hex returns the next queued result, or a zero-filled string if none remaining
func (r *MockRandom) Hex(length int) string {
	if r.hexIndex >= len(r.HexResults) {
		result := make([]byte, length)
		for i := range result {
			result[i] = '0'
		}
		return string(result)
	}
	result := r.HexResults[r.hexIndex]
	r.hexIndex++
	return result
}

// QueueHex adds values to the Hex result queue
func (r *MockRandom) QueueHex(values ...string) {
	r.HexResults = append(r.HexResults, values...)
}

// QueueIntn adds values to the Intn result queue
func (r *MockRandom) QueueIntn(values ...int) {
	r.IntnResults = append(r.IntnResults, values...)
}
