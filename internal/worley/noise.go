package worley

import (
	"fmt"
	"math"
	"math/rand"
	"runtime"
	"sync"
	"sync/atomic"
	"time"
)

// Noise3D generates inverted Worley noise: voxels closer to a feature point
// are brighter, voxels farther away are darker. Each cell of the gridSize^3
// lattice holds exactly one randomly placed feature point. Every call draws
// fresh ambient entropy, so repeated calls with the same parameters differ.
//
// size is the number of voxels per axis, gridSize the number of cells per
// axis; gridSize must be positive and no larger than size.
func Noise3D(size, gridSize int) *Volume {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	return noise3D(size, gridSize, rng)
}

// Noise3DSeeded is Noise3D with a fixed seed; equal seeds and parameters
// produce identical volumes.
func Noise3DSeeded(size, gridSize int, seed int64) *Volume {
	return noise3D(size, gridSize, rand.New(rand.NewSource(seed)))
}

func noise3D(size, gridSize int, rng *rand.Rand) *Volume {
	points := GenerateFeaturePoints(size, gridSize, rng)
	return evalVolume(size, gridSize, points, Workers)
}

// evalVolume computes the distance field for a fixed feature point set.
// For every voxel it scans all points, keeps the minimum Euclidean distance,
// remaps it from [0, maxCellDistance] to [0, 1] and inverts it. The remap is
// deliberately unclamped: a voxel whose nearest point is farther than one
// cell diagonal comes out negative.
//
// The normalization constant uses the real-valued quotient size/gridSize
// while point placement truncates it; see DESIGN.md before unifying the two.
func evalVolume(size, gridSize int, points []Coord3, workers int) *Volume {
	checkGrid(size, gridSize)

	vol := NewVolume(size)
	cellEdge := Real(size) / Real(gridSize)
	maxCellDistance := sqrt(cellEdge * cellEdge * 3)
	DebugLogOnce("cellEdge=%.4f maxCellDistance=%.4f points=%d", cellEdge, maxCellDistance, len(points))

	// Convert once; the set is read-only from here on.
	pts := make([]Point3, len(points))
	for i, c := range points {
		pts[i] = c.Point3()
	}

	// Hot loop tracks squared distances and takes one square root per voxel.
	// sqrt is monotonic, so the resulting minimum distance is identical to
	// comparing plain distances.
	evalSlices := func(z0, z1 int, done *int64, step int64) {
		for z := z0; z < z1; z++ {
			for y := 0; y < size; y++ {
				row := vol.Idx(0, y, z)
				for x := 0; x < size; x++ {
					p := Point3{Real(x), Real(y), Real(z)}
					minSq := Real(math.MaxFloat32)
					for _, fp := range pts {
						d := p.Sub(fp)
						if sq := d.Dot(d); sq < minSq {
							minSq = sq
						}
					}
					vol.Buf[row+x] = 1 - mapValue(sqrt(minSq), 0, maxCellDistance, 0, 1)
				}
			}
			if done != nil {
				if n := atomic.AddInt64(done, 1); Debug && n%step == 0 {
					fmt.Printf("[PROGRESS] %.2f%%\n", float64(n)*100/float64(size))
				}
			}
		}
	}

	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > size {
		workers = size
	}
	if workers == 1 {
		evalSlices(0, size, nil, 1)
		return vol
	}

	// Workers own disjoint Z bands of the buffer; no locks needed.
	per, rem := size/workers, size%workers
	step := int64(imax(1, size/100))
	var done int64
	var wg sync.WaitGroup
	wg.Add(workers)
	z0 := 0
	for w := 0; w < workers; w++ {
		count := per
		if w < rem {
			count++
		}
		z1 := z0 + count
		go func(z0, z1 int) {
			defer wg.Done()
			evalSlices(z0, z1, &done, step)
		}(z0, z1)
		z0 = z1
	}
	wg.Wait()

	return vol
}
