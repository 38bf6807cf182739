package worley

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"os"
	"path/filepath"
)

// SaveRawVolume dumps the volume as little-endian binary: an int32 edge
// length header followed by Size^3 float32 values in linear index order.
// The unclamped values are written verbatim.
func SaveRawVolume(v *Volume, path string) error {
	exp := int64(v.Size) * int64(v.Size) * int64(v.Size)
	if int64(len(v.Buf)) != exp {
		return fmt.Errorf("Buf length mismatch: got %d, expected %d (Size^3)", len(v.Buf), exp)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	if err := binary.Write(w, binary.LittleEndian, int32(v.Size)); err != nil {
		return err
	}
	if err := binary.Write(w, binary.LittleEndian, v.Buf); err != nil {
		return err
	}
	return w.Flush()
}
