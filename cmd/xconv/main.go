package main

import (
	"os"

	"github.com/viant/xconv/internal/cli"
)

func main() {
	command := cli.NewCommand()
	if err := command.Execute(); err != nil {
		os.Exit(1)
	}
}
