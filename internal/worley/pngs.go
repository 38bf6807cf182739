package worley

import (
	"fmt"
	"image"
	"image/png"
	"math"
	"os"

	xdraw "golang.org/x/image/draw"
)

// SavePNGSequence16 writes one 16-bit grayscale PNG per Z slice
// (k = 0..Size-1), named prefix_<k>.png. Each frame is lossless; the only
// quantization is the mapping from float noise to 16 bits.
func SavePNGSequence16(v *Volume, prefix string, gamma Real, scale int) error {
	size := v.Size

	toU16 := func(val Real) uint16 {
		if val <= 0 {
			return 0
		}
		n := float64(val)
		if n > 1 {
			n = 1
		}
		if gamma != 1 {
			n = math.Pow(n, 1.0/float64(gamma))
		}
		return uint16(math.Round(n * 65535.0))
	}

	for k := 0; k < size; k++ {
		img := image.NewGray16(image.Rect(0, 0, size, size))
		for y := 0; y < size; y++ {
			row := (size - 1 - y) * img.Stride // flip Y so up is up
			for x := 0; x < size; x++ {
				g := toU16(v.At(x, y, k))
				img.Pix[row+2*x] = uint8(g >> 8)
				img.Pix[row+2*x+1] = uint8(g)
			}
		}

		var frame image.Image = img
		if scale > 1 {
			big := image.NewGray16(image.Rect(0, 0, size*scale, size*scale))
			xdraw.NearestNeighbor.Scale(big, big.Bounds(), img, img.Bounds(), xdraw.Src, nil)
			frame = big
		}

		path := fmt.Sprintf("%s_%d.png", prefix, k)
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		if err := png.Encode(f, frame); err != nil {
			_ = f.Close()
			return err
		}
		if err := f.Close(); err != nil {
			return err
		}
		if Debug && k%imax(1, size/100) == 0 {
			fmt.Printf("[PNG] %.2f%%\n", float64(k+1)*100/float64(size))
		}
	}
	return nil
}
