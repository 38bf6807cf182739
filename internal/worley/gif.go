package worley

import (
	"fmt"
	"image"
	"image/color"
	"image/gif"
	"math"
	"os"

	xdraw "golang.org/x/image/draw"
)

// grayPalette maps palette index i to gray level i, so a Gray pixel buffer
// can be copied into a Paletted frame as-is.
var grayPalette = func() color.Palette {
	p := make(color.Palette, 256)
	for i := range p {
		p[i] = color.Gray{Y: uint8(i)}
	}
	return p
}()

// toByte maps a noise value to a display byte. The stored volume is
// unclamped (values below 0 and slightly above 1 are legitimate), so
// clamping happens here and only here.
func toByte(v Real, gamma Real) uint8 {
	if v <= 0 {
		return 0
	}
	n := float64(v)
	if n > 1 {
		n = 1
	}
	if gamma != 1 {
		n = math.Pow(n, 1.0/float64(gamma))
	}
	return uint8(math.Round(n * 255))
}

// graySlice renders Z slice k of the volume into an 8-bit grayscale image,
// upscaled by the integer factor scale (nearest neighbor, so voxels stay
// crisp).
func graySlice(v *Volume, k int, gamma Real, scale int) *image.Gray {
	size := v.Size
	img := image.NewGray(image.Rect(0, 0, size, size))
	for y := 0; y < size; y++ {
		// flip Y so up is up
		row := (size - 1 - y) * img.Stride
		for x := 0; x < size; x++ {
			img.Pix[row+x] = toByte(v.At(x, y, k), gamma)
		}
	}
	if scale <= 1 {
		return img
	}
	big := image.NewGray(image.Rect(0, 0, size*scale, size*scale))
	xdraw.NearestNeighbor.Scale(big, big.Bounds(), img, img.Bounds(), xdraw.Src, nil)
	return big
}

// SaveAnimatedGIF writes a GIF with one grayscale frame per Z slice
// (k = 0..Size-1). delay is in 100ths of a second (e.g., 5 => 20 fps);
// gamma above/below 1 darkens/brightens; scale >= 2 upscales each frame.
func SaveAnimatedGIF(v *Volume, path string, delay int, gamma Real, scale int) error {
	size := v.Size
	out := &gif.GIF{
		Image:     make([]*image.Paletted, 0, size),
		Delay:     make([]int, 0, size),
		LoopCount: 0,
	}

	for k := 0; k < size; k++ {
		if Debug && k%imax(1, size/100) == 0 { // ~1% steps
			fmt.Printf("[GIF] %.2f%%\n", float64(k+1)*100/float64(size))
		}
		g := graySlice(v, k, gamma, scale)
		frame := image.NewPaletted(g.Bounds(), grayPalette)
		copy(frame.Pix, g.Pix) // palette index i == gray level i
		out.Image = append(out.Image, frame)
		out.Delay = append(out.Delay, delay)
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return gif.EncodeAll(f, out)
}
