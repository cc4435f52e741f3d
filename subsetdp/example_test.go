package subsetdp_test

import (
	"fmt"

	"github.com/katalvlaran/hampath/builder"
	"github.com/katalvlaran/hampath/subsetdp"
)

// ExampleSolve runs the table DP on a single edge. Two singleton seeds
// each extend once into the full mask, so the counters are exact.
func ExampleSolve() {
	g, _ := builder.Path(2)

	res, _ := subsetdp.Solve(g)
	fmt.Println(res.Found, res.States, res.Transitions)
	// Output:
	// true 4 2
}
