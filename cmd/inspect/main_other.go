//go:build !darwin || !cgo

package main

import (
	"fmt"
	"os"
)

func main() {
	fmt.Fprintln(os.Stderr, "inspect requires macOS and cgo: it binds the Security framework")
	os.Exit(1)
}
