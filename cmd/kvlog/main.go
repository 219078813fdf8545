// Package main provides the kvlog CLI tool.
//
// Usage:
//
//	kvlog [flags] <command> [args]
//
// Commands:
//
//	set <key> <value>  - store a value under a key
//	get <key>          - print the value stored under a key
//	rm <key>           - remove a key
//	keys               - list all live keys
//	shell              - interactive session against one open store
package main

import (
	"fmt"
	"os"

	"github.com/0xRadioAc7iv/go-kvlog/cmd/kvlog/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
