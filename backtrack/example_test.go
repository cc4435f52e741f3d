package backtrack_test

import (
	"fmt"

	"github.com/katalvlaran/hampath/backtrack"
	"github.com/katalvlaran/hampath/builder"
)

// ExampleSolve decides a 5-vertex ring: removing any one ring edge
// leaves a Hamiltonian path, so the answer is yes.
func ExampleSolve() {
	g, _ := builder.Cycle(5)

	res, _ := backtrack.Solve(g)
	fmt.Println(res.Found)
	// Output:
	// true
}

// ExampleSolve_star shows the classic negative: a star with 5 leaves has
// no Hamiltonian path, since only two leaves can serve as endpoints.
func ExampleSolve_star() {
	g, _ := builder.Star(6)

	res, _ := backtrack.Solve(g)
	fmt.Println(res.Found)
	// Output:
	// false
}
