// Package main is the entry point for the vml CLI client.
package main

import (
	"github.com/setebit/vendasml/cmd/vml/cmd"
)

func main() {
	cmd.Execute()
}
