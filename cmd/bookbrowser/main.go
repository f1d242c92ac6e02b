package main

import (
	"os"

	"bookbrowser/cmd/bookbrowser/commands"
)

func main() {
	if err := commands.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
