package worley

var (
	Debug   = false // set to true for verbose debug output
	PNG     = false // set to true to save a 16-bit grayscale PNG sequence instead of a GIF
	RAW     = false // set to true to also dump the raw float32 volume
	Report  = false // set to true to also write the HTML histogram report
	Workers = 0     // evaluation workers; 0 picks runtime.NumCPU, 1 forces serial
)
