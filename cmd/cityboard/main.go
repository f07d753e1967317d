package main

import (
	"os"

	"cityboard/cmd/cityboard/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
