package gromov_test

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/srgw/gromov"
)

// ExampleSemirelaxedGromovBarycenters — compress a tiny dataset of paths
// and cycles into a 2-node structure.
//
// Scenario:
//
//	Four graphs (paths and cycles on 4 and 5 nodes) with uniform node
//	weights and uniform mixture coefficients. The barycenter starts from
//	an explicit isotropic guess so the run is fully deterministic.
//
// Complexity: O(iterations · Σ_s n_s²·N) time.
func ExampleSemirelaxedGromovBarycenters() {
	var (
		Cs      []*mat.Dense
		ps      [][]float64
		lambdas []float64
	)
	for _, n := range []int{4, 5} {
		path := mat.NewDense(n, n, nil)
		cycle := mat.NewDense(n, n, nil)
		for i := 0; i < n-1; i++ {
			path.Set(i, i+1, 1)
			path.Set(i+1, i, 1)
			cycle.Set(i, i+1, 1)
			cycle.Set(i+1, i, 1)
		}
		cycle.Set(0, n-1, 1)
		cycle.Set(n-1, 0, 1)
		Cs = append(Cs, path, cycle)
		ps = append(ps, gromov.Uniform(n), gromov.Uniform(n))
	}
	lambdas = gromov.Uniform(len(Cs))

	opts := gromov.DefaultBarycenterOptions()
	opts.InitC = mat.NewDense(2, 2, []float64{0.6, 0.2, 0.2, 0.6})
	opts.Tol = 1e-6

	C, log, err := gromov.SemirelaxedGromovBarycenters(2, Cs, ps, lambdas, &opts)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	r, c := C.Dims()
	decreasing := true
	for i := 1; i < len(log.Loss); i++ {
		if log.Loss[i] > log.Loss[i-1]+1e-8 {
			decreasing = false
		}
	}
	fmt.Printf("barycenter: %dx%d\n", r, c)
	fmt.Printf("iterations logged: %v\n", len(log.Loss) > 0)
	fmt.Printf("loss non-increasing: %v\n", decreasing)
	// Output:
	// barycenter: 2x2
	// iterations logged: true
	// loss non-increasing: true
}

// ExampleUniform — uniform node weights for a 5-node graph.
func ExampleUniform() {
	fmt.Println(gromov.Uniform(5))
	// Output:
	// [0.2 0.2 0.2 0.2 0.2]
}
