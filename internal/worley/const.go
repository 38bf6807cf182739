package worley

// Real is the scalar type used for all distance and remap arithmetic.
// The field is single precision end to end; keep casts at the math stdlib
// boundary only.
type Real = float32

// Defaults applied by loadConfig when the JSON omits a field.
const (
	Size     = 128
	GridSize = 8
	GIFOut   = "worley.gif"
	GIFDelay = 5 // 100ths of a second per frame
	Gamma    = 1.0
	Scale    = 1 // integer frame upscale factor for GIF/PNG export
	HistBins = 64
)
