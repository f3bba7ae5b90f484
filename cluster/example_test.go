package cluster_test

import (
	"fmt"

	"github.com/sizeconstrained/scclust/cluster"
	"github.com/sizeconstrained/scclust/dataset"
	"github.com/sizeconstrained/scclust/nnsearch"
	"github.com/sizeconstrained/scclust/seeds"
)

func ExampleAssemble() {
	ds, err := dataset.NewFromRows(4, 1, []float64{0, 1, 10, 11})
	if err != nil {
		panic(err)
	}

	g, err := nnsearch.BuildNNG(ds, 1)
	if err != nil {
		panic(err)
	}

	sr, err := seeds.FindSeeds(g, seeds.Lexical, false)
	if err != nil {
		panic(err)
	}

	cl, err := cluster.Assemble(ds, g, sr, false)
	if err != nil {
		panic(err)
	}

	fmt.Println(cl.NumClusters)
	fmt.Println(cl.Labels)
	// Output:
	// 2
	// [0 0 1 1]
}
