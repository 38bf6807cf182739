package worley

import "testing"

func TestVolumeIdxOrder(t *testing.T) {
	v := NewVolume(3)
	// x fastest, then y, then z
	if v.Idx(1, 0, 0) != 1 || v.Idx(0, 1, 0) != 3 || v.Idx(0, 0, 1) != 9 {
		t.Fatal("linear index order wrong")
	}
	if v.Idx(2, 2, 2) != 26 {
		t.Fatalf("last index = %d, want 26", v.Idx(2, 2, 2))
	}
}

func TestVolumeAt(t *testing.T) {
	v := NewVolume(2)
	v.Buf[v.Idx(1, 0, 1)] = 0.5
	if v.At(1, 0, 1) != 0.5 {
		t.Fatal("At does not read back the written voxel")
	}
}

func TestVolumeMaxValue(t *testing.T) {
	v := NewVolume(2)
	v.Buf[3] = -0.25
	v.Buf[5] = 0.75
	if v.MaxValue() != 0.75 {
		t.Fatalf("MaxValue = %v", v.MaxValue())
	}
}

func TestNewVolumePanicsOnBadSize(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
	}()
	NewVolume(0)
}
