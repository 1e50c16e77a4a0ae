package main

import (
	"os"

	"github.com/bacdz/eduai/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
