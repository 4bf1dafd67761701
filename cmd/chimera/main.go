// Command chimera encodes and decodes text with a chimera pattern.
//
// Usage: chimera <encode|e|decode|d> <pattern> <text...>
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
