package main

import (
	"os"

	"ctenc/cmd/ctenc/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
