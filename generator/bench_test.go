package generator_test

import (
	"testing"

	"github.com/katalvlaran/labyrinth/generator"
)

// BenchmarkBacktracker_100x100 measures DFS carving on 10 000 cells.
func BenchmarkBacktracker_100x100(b *testing.B) {
	g, err := generator.New(100, 100, generator.WithSeed(1))
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		g.Generate()
	}
}

// BenchmarkWilson_50x50 measures loop-erased random walks on 2 500 cells.
func BenchmarkWilson_50x50(b *testing.B) {
	g, err := generator.New(50, 50, generator.WithSeed(1), generator.WithAlgorithm(generator.Wilson))
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		g.Generate()
	}
}
