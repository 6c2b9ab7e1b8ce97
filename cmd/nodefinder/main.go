package main

import (
	"os"

	"node-finder/cmd/nodefinder/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
