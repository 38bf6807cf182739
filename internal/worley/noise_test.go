package worley

import (
	"math/rand"
	"testing"
)

func TestNoiseVolumeShape(t *testing.T) {
	const size, gridSize = 4, 2

	vol := Noise3D(size, gridSize)
	if vol.Size != size || len(vol.Buf) != size*size*size {
		t.Fatalf("expected %d values, got %d", size*size*size, len(vol.Buf))
	}
	for i, v := range vol.Buf {
		if !isFinite(v) {
			t.Fatalf("non-finite value %v at index %d", v, i)
		}
		if v > 1 {
			t.Fatalf("value %v at index %d exceeds 1", v, i)
		}
	}
}

func TestValueAtFeaturePointIsOne(t *testing.T) {
	const size, gridSize, seed = 8, 2, 42

	// Same seed, same rng stream: these are the points the seeded run placed.
	pts := GenerateFeaturePoints(size, gridSize, rand.New(rand.NewSource(seed)))
	vol := Noise3DSeeded(size, gridSize, seed)

	for _, p := range pts {
		if got := vol.At(p.X, p.Y, p.Z); got != 1 {
			t.Fatalf("voxel at feature point %+v = %v, want exactly 1", p, got)
		}
	}
}

func TestDegenerateGridOneVoxelPerCell(t *testing.T) {
	const size, gridSize = 8, 8

	vol := Noise3DSeeded(size, gridSize, 5)
	// cellEdge is 1, so every cell origin holds its feature point exactly
	for i := 0; i < gridSize; i++ {
		for j := 0; j < gridSize; j++ {
			for k := 0; k < gridSize; k++ {
				if got := vol.At(i, j, k); got != 1 {
					t.Fatalf("cell origin (%d,%d,%d) = %v, want exactly 1", i, j, k, got)
				}
			}
		}
	}
}

// cornerPinnedPoints places every feature point at its cell's minimum corner.
// All points remain inside their cells, so this is a legal placement.
func cornerPinnedPoints(gridSize, cellEdge int) []Coord3 {
	pts := make([]Coord3, 0, gridSize*gridSize*gridSize)
	for i := 0; i < gridSize; i++ {
		for j := 0; j < gridSize; j++ {
			for k := 0; k < gridSize; k++ {
				pts = append(pts, Coord3{i * cellEdge, j * cellEdge, k * cellEdge})
			}
		}
	}
	return pts
}

func TestNegativeValuesNotClamped(t *testing.T) {
	// size 11, gridSize 3: integer cellEdge 3, real cell edge 11/3 ≈ 3.67,
	// maxCellDistance ≈ 6.35. With all points pinned to cell corners the far
	// corner voxel (10,10,10) is 4·√3 ≈ 6.93 from its nearest point (6,6,6),
	// so its normalized distance exceeds 1 and the inverted value goes
	// negative.
	const size, gridSize = 11, 3

	vol := evalVolume(size, gridSize, cornerPinnedPoints(gridSize, size/gridSize), 1)
	if got := vol.At(size-1, size-1, size-1); got >= 0 {
		t.Fatalf("far corner = %v, want negative (unclamped remap)", got)
	}
	for i, v := range vol.Buf {
		if v > 1 {
			t.Fatalf("value %v at index %d exceeds 1", v, i)
		}
	}
}

func TestMonotonicAlongRayFromFeaturePoint(t *testing.T) {
	// single cell, point at the origin: values along +X never increase
	const size = 8

	vol := evalVolume(size, 1, []Coord3{{0, 0, 0}}, 1)
	prev := vol.At(0, 0, 0)
	if prev != 1 {
		t.Fatalf("origin = %v, want exactly 1", prev)
	}
	for x := 1; x < size; x++ {
		cur := vol.At(x, 0, 0)
		if cur > prev {
			t.Fatalf("value increased along ray at x=%d: %v > %v", x, cur, prev)
		}
		prev = cur
	}
}

func TestSeededReproducible(t *testing.T) {
	a := Noise3DSeeded(16, 4, 7)
	b := Noise3DSeeded(16, 4, 7)
	for i := range a.Buf {
		if a.Buf[i] != b.Buf[i] {
			t.Fatalf("seeded volumes differ at index %d: %v vs %v", i, a.Buf[i], b.Buf[i])
		}
	}
}

func TestParallelMatchesSerial(t *testing.T) {
	pts := GenerateFeaturePoints(12, 3, rand.New(rand.NewSource(9)))
	serial := evalVolume(12, 3, pts, 1)
	parallel := evalVolume(12, 3, pts, 4)
	for i := range serial.Buf {
		if serial.Buf[i] != parallel.Buf[i] {
			t.Fatalf("parallel result differs at index %d: %v vs %v", i, serial.Buf[i], parallel.Buf[i])
		}
	}
}

func TestNoisePreconditionsPanic(t *testing.T) {
	mustPanic := func(name string, f func()) {
		defer func() {
			if recover() == nil {
				t.Fatalf("%s: expected panic", name)
			}
		}()
		f()
	}
	mustPanic("zero gridSize", func() { Noise3D(4, 0) })
	mustPanic("gridSize > size", func() { Noise3D(2, 4) })
}
