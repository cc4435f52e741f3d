// Command hpbt decides Hamiltonian-path existence with the backtracking
// solver. See the cli package for the invocation contract.
package main

import (
	"os"

	"github.com/katalvlaran/hampath/cli"
)

func main() {
	cmd := cli.NewCommand("hpbt",
		"Hamiltonian path existence via backtracking search", cli.Backtracking)
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
