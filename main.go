// Command git-dco checks that commits are signed off per the Developer
// Certificate of Origin convention.
package main

import (
	"fmt"
	"os"

	"github.com/EmundoT/git-dco/internal/cli"
	"github.com/EmundoT/git-dco/internal/clierr"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		// Check failures are already rendered by the reporter and travel
		// as silent errors; only surface messages that were not.
		if msg := err.Error(); msg != "" {
			fmt.Fprintln(os.Stderr, msg)
		}
		os.Exit(clierr.ExitCodeOf(err))
	}
}
