package worley

import "testing"

func TestVec3Ops(t *testing.T) {
	a := Vec3{1, 2, 3}
	b := Vec3{-1, 1, 2}
	if a.Add(b) != (Vec3{0, 3, 5}) {
		t.Fatal("Add failed")
	}
	if a.Sub(b) != (Vec3{2, 1, 1}) {
		t.Fatal("Sub failed")
	}
	if a.Mul(2) != (Vec3{2, 4, 6}) {
		t.Fatal("Mul failed")
	}
	if a.Dot(b) != 7 {
		t.Fatal("Dot failed")
	}
}

func TestVec3Len(t *testing.T) {
	if l := (Vec3{2, 3, 6}).Len(); l != 7 {
		t.Fatalf("Len mismatch: %v", l)
	}
}
