// Package main is the entry point for the nosey-pytest CLI.
package main

import "github.com/eric-downes/nosey-pytest/cmd"

func main() {
	cmd.Execute()
}
