package graph

import (
	"bufio"
	"fmt"
	"io"
	"slices"
)

// Dump writes a human-readable listing of the graph for debugging: counts,
// the numbered vertex list, and every edge grouped by source vertex.
// Sources and targets are printed in ascending order.
func (g *Graph[V, W]) Dump(w io.Writer) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintln(bw, "***************************************************")
	fmt.Fprintln(bw, "********************* GRAPH ***********************")
	fmt.Fprintf(bw, "**Num vertices: %d\n", g.VertexCount())
	fmt.Fprintf(bw, "**Num edges: %d\n", g.EdgeCount())

	fmt.Fprintln(bw)
	fmt.Fprintln(bw, "**Vertices:")
	for i, v := range g.vertices {
		fmt.Fprintf(bw, " %d. %v\n", i, v)
	}

	fmt.Fprintln(bw)
	fmt.Fprintln(bw, "**Edges:")
	for _, from := range slices.Sorted(slices.Values(g.vertices)) {
		fmt.Fprintf(bw, "%v: ", from)
		for _, to := range g.Neighbors(from) {
			fmt.Fprintf(bw, "(%v,%v,%v) ", from, to, g.adj[from][to])
		}
		fmt.Fprintln(bw)
	}
	fmt.Fprintln(bw, "**************************************************")

	return bw.Flush()
}
