// Command capeerr inspects the CAPE-OPEN error taxonomy: which class and
// interface a status code maps to, what payload it carries, and how the
// gateway translates a bare failure carrying that code.
package main

import (
	"fmt"
	"os"
)

// version is set at build time via -ldflags "-X main.version=x.y.z"
var version = "dev"

func main() {
	if err := execute(newRootCmd(), os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, red("Error:"), err)
		os.Exit(1)
	}
}
