package main

import (
	"os"

	"github.com/x0k/mk/cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
