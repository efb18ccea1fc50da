// Command solreport validates integer solver output for set selection
// models and summarizes the selected candidates.
package main

import (
	"fmt"
	"os"

	"github.com/roach88/solreport/internal/cli"
)

func main() {
	cmd := cli.NewRootCommand()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "solreport: %v\n", err)
		os.Exit(cli.GetExitCode(err))
	}
}
