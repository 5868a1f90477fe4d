package main

import (
	"os"

	"github.com/askeland/hookgate/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
