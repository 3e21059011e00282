// Package main is the entry point for the vendasml server.
package main

import (
	"os"

	"github.com/setebit/vendasml/cmd/vendasml/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
