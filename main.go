// Package main is the entry point for the logfire CLI, a terminal client for
// running dashboard queries against the Logfire API.
package main

import (
	"github.com/WillDaSilva/logfire/cmd"
)

func main() {
	cmd.Execute()
}
