package graphdist_test

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/molml/graphfeat/graphdist"
)

// ExampleDistances computes pairwise hop distances for the 4-cycle
// 0-1-2-3-0 and shows the cache being populated under the fixed key.
func ExampleDistances() {
	adj := mat.NewDense(4, 4, []float64{
		0, 1, 0, 1,
		1, 0, 1, 0,
		0, 1, 0, 1,
		1, 0, 1, 0,
	})
	cache := graphdist.Cache{} // one per graph, caller-owned

	dist, level, err := graphdist.Distances(adj, 4, cache)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	_, cached := cache[graphdist.CacheKey]
	fmt.Println("level:", level)
	fmt.Println("d(0,1):", dist.At(0, 1))
	fmt.Println("d(0,2):", dist.At(0, 2))
	fmt.Println("cached:", cached)
	// Output:
	// level: pair
	// d(0,1): 1
	// d(0,2): 2
	// cached: true
}

// ExampleDistances_unreachable opts into a sentinel distance for node
// pairs with no connecting path instead of the default hard error.
func ExampleDistances_unreachable() {
	// two components: 0-1 and 2-3
	adj := mat.NewDense(4, 4, []float64{
		0, 1, 0, 0,
		1, 0, 0, 0,
		0, 0, 0, 1,
		0, 0, 1, 0,
	})

	dist, _, err := graphdist.Distances(adj, 4, graphdist.Cache{}, graphdist.WithUnreachable(-1))
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println("d(0,1):", dist.At(0, 1))
	fmt.Println("d(0,2):", dist.At(0, 2))
	// Output:
	// d(0,1): 1
	// d(0,2): -1
}
