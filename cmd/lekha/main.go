package main

import (
	"os"

	"github.com/kavyap22/lekha/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
