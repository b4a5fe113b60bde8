package main

import (
	"os"

	"github.com/sahajm/quizdeck/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
