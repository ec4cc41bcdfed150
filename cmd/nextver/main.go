package main

import (
	"os"

	"github.com/nextver/nextver"
)

func main() {
	os.Exit(nextver.RunCLI(os.Stdout, os.Stderr, os.Args[1:]))
}
