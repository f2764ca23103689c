package main

import (
	"os"

	"github.com/jthurston/EmbCalc/cmd/embcalc/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
