// Package main provides the larder CLI: a small front end over the model
// registry, the statement builder, and the SQLite gateway for inspecting
// and manipulating a local store.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitUserError)
	}
}
