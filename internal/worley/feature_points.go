package worley

import "math/rand"

// checkGrid panics on violated preconditions shared by the generator and the
// evaluator: gridSize == 0 divides by zero, gridSize > size truncates the
// cell edge to zero and empties the placement range.
func checkGrid(size, gridSize int) {
	if size <= 0 || gridSize <= 0 {
		panic("size and gridSize must be positive")
	}
	if gridSize > size {
		panic("gridSize must not exceed size")
	}
}

// GenerateFeaturePoints places exactly one random point inside each cell of a
// gridSize^3 lattice subdividing a size^3 volume. Points are emitted in
// row-major (i, j, k) cell order, i outermost; consumers must not rely on the
// order. The cell edge is size/gridSize with integer truncation, so a
// non-divisible size leaves the trailing rows of voxels outside the lattice.
// With cellEdge == 1 every point is pinned to its cell origin.
//
// All randomness comes from the supplied rng, so a seeded source makes the
// placement reproducible.
func GenerateFeaturePoints(size, gridSize int, rng *rand.Rand) []Coord3 {
	checkGrid(size, gridSize)

	cellEdge := size / gridSize
	points := make([]Coord3, 0, gridSize*gridSize*gridSize)

	for i := 0; i < gridSize; i++ {
		for j := 0; j < gridSize; j++ {
			for k := 0; k < gridSize; k++ {
				points = append(points, Coord3{
					X: i*cellEdge + rng.Intn(cellEdge),
					Y: j*cellEdge + rng.Intn(cellEdge),
					Z: k*cellEdge + rng.Intn(cellEdge),
				})
			}
		}
	}

	return points
}
