package main

import (
	"os"

	"github.com/bnema/honkbreach/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
