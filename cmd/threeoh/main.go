package main

import (
	"os"

	"github.com/cwbudde/go-threeoh/cmd/threeoh/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
