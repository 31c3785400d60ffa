package main

import (
	"os"

	"primecipher/cmd/primecipher/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
