package main

import (
	"os"

	"github.com/ajroetker/go-raster/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
