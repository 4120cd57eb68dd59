package main

import (
	"os"

	"github.com/openlearn/coursepack/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
