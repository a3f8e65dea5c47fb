package main

import "github.com/bprisby/arcade-backend-go/internal/cli"

func main() {
	cli.Execute()
}
