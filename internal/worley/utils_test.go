package worley

import (
	"math"
	"testing"
)

func TestIsFinite(t *testing.T) {
	if !isFinite(1) || isFinite(Real(math.Inf(1))) || isFinite(Real(math.NaN())) {
		t.Fatal("isFinite failed")
	}
}

func TestIMax(t *testing.T) {
	if imax(3, 5) != 5 || imax(5, 3) != 5 {
		t.Fatal("imax failed")
	}
}

func TestMapValue(t *testing.T) {
	if got := mapValue(5, 0, 10, 0, 1); got != 0.5 {
		t.Fatalf("mapValue(5,0,10,0,1) = %v", got)
	}
	// generic affine transform, not a [0,1] special case
	if got := mapValue(5, 0, 10, 10, 20); got != 15 {
		t.Fatalf("mapValue(5,0,10,10,20) = %v", got)
	}
	if got := mapValue(-2, 0, 4, 100, 200); got != 50 {
		t.Fatalf("mapValue(-2,0,4,100,200) = %v", got)
	}
}

func TestMapValueUnclamped(t *testing.T) {
	// inputs beyond oldMax map beyond newMax
	if got := mapValue(12, 0, 10, 0, 1); got <= 1 {
		t.Fatalf("expected >1, got %v", got)
	}
}
