package main

import (
	"os"

	"stakit/cmd/stakit/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
