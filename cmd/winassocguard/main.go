// Package main provides the entry point for winassocguard.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/sherlock-488/WinAssocGuard/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		var coder cli.ExitCoder
		if errors.As(err, &coder) {
			fmt.Fprint(os.Stderr, coder.Message())
			os.Exit(coder.ExitCode())
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
