// Package main is the entry point for cspline, a small command-line
// front end over the csp pipeline library.
package main

import "os"

func main() {
	cli := NewCommands()
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
