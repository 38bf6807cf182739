package worley

// Volume stores a dense cubic field of scalar noise values.
// Voxels live in a flat buffer, linear index x + y*Size + z*Size*Size
// (x fastest, then y, then z).
type Volume struct {
	Size int
	Buf  []Real
}

// NewVolume allocates a zero-initialized flat voxel buffer for the given
// edge length.
func NewVolume(size int) *Volume {
	if size <= 0 {
		panic("volume size must be positive")
	}
	return &Volume{
		Size: size,
		Buf:  make([]Real, size*size*size),
	}
}

// Idx returns the flat buffer index of voxel (x, y, z).
func (v *Volume) Idx(x, y, z int) int {
	return x + y*v.Size + z*v.Size*v.Size
}

// At returns the value stored at voxel (x, y, z).
func (v *Volume) At(x, y, z int) Real {
	return v.Buf[v.Idx(x, y, z)]
}

// MaxValue returns the largest value in the buffer (for consistent brightness).
func (v *Volume) MaxValue() Real {
	maxv := Real(0)
	for i := 0; i < len(v.Buf); i++ {
		if v.Buf[i] > maxv {
			maxv = v.Buf[i]
		}
	}
	return maxv
}
