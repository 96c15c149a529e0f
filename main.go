package main

import (
	"os"

	"github.com/abhisek/skillscope/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
