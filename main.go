package main

import (
	"os"

	"github.com/abenov/mathai/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
