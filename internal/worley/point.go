package worley

// Coord3 is an integer grid/voxel coordinate.
type Coord3 struct {
	X, Y, Z int
}

// Point3 returns the real-valued form of the coordinate for distance math.
func (c Coord3) Point3() Point3 {
	return Point3{Real(c.X), Real(c.Y), Real(c.Z)}
}

// Point3 represents a position in 3D space.
type Point3 struct {
	X, Y, Z Real
}

// Sub returns the vector from q to p.
func (p Point3) Sub(q Point3) Vec3 {
	return Vec3{p.X - q.X, p.Y - q.Y, p.Z - q.Z}
}

// DistanceTo returns the Euclidean distance between two points.
func (p Point3) DistanceTo(q Point3) Real {
	return p.Sub(q).Len()
}
