// Package main is the entry point for the now-desktop agent.
package main

import (
	"fmt"
	"os"

	"github.com/EnterStudios/now-desktop/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
