package graph

import (
	"fmt"
	"math"
)

// Grid builds the 4-neighbor toroidal grid topology: with side =
// floor(sqrt(n)), node i connects to (i+1)%n, i-1 (wrapping to n-1),
// (i+side)%n, and i-side (wrapping to n-side+i).
func Grid(n int) *Map {
	if n <= 0 {
		panic(fmt.Sprintf("graph: grid requires a positive size, got %d", n))
	}
	side := int(math.Sqrt(float64(n)))
	adj := make([][]int, n)
	for i := 0; i < n; i++ {
		right := (i + 1) % n
		left := i - 1
		if left < 0 {
			left = n - 1
		}
		down := (i + side) % n
		up := i - side
		if up < 0 {
			up = n - side + i
		}
		adj[i] = []int{right, left, down, up}
	}
	return &Map{name: fmt.Sprintf("grid(%d)", n), adjacency: adj}
}
