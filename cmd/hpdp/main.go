// Command hpdp decides Hamiltonian-path existence with the subset-DP
// solver. See the cli package for the invocation contract.
package main

import (
	"os"

	"github.com/katalvlaran/hampath/cli"
)

func main() {
	cmd := cli.NewCommand("hpdp",
		"Hamiltonian path existence via bitmask dynamic programming", cli.SubsetDP)
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
