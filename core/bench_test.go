// Package core_test provides benchmarks for core.Graph operations.
package core_test

import (
	"testing"

	"github.com/paulmach/orb"

	"github.com/katalvlaran/bocafinder/core"
)

// BenchmarkAddVertex measures vertex insertion including the R-tree update.
func BenchmarkAddVertex(b *testing.B) {
	g := core.NewGraph()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = g.AddVertex(orb.Point{float64(i % 1000), float64(i / 1000)})
	}
}

// BenchmarkFindVertexAt measures hit testing on a 1000-vertex lattice.
func BenchmarkFindVertexAt(b *testing.B) {
	g := core.NewGraph()
	for i := 0; i < 1000; i++ {
		_, _ = g.AddVertex(orb.Point{float64(i%40) * 20, float64(i/40) * 20})
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = g.FindVertexAt(orb.Point{float64(i%800) + 0.5, float64(i%500) + 0.5})
	}
}

// BenchmarkAddEdge_Duplicate measures the idempotent no-op path.
func BenchmarkAddEdge_Duplicate(b *testing.B) {
	g := core.NewGraph()
	_, _ = g.AddVertex(orb.Point{0, 0})
	_, _ = g.AddVertex(orb.Point{1, 0})
	_, _ = g.AddEdge(0, 1)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = g.AddEdge(1, 0)
	}
}
