package main

import (
	"os"

	"github.com/geoclim/cftime-go/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
