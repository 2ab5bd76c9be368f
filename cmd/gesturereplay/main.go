package main

import (
	"os"

	"openprism/cmd/gesturereplay/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
