// Package main is the zonectl audit tool for stored placements.
package main

import "os"

// main is the entrypoint for zonectl.
func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
