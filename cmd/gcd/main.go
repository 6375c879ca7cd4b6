package main

import (
	"os"

	"github.com/cachebag/winter-2026/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
