package benchmark

import "github.com/cocosip/go-jpegls/codec"

// lcg is a linear congruential generator for deterministic pseudo-random
// noise.
type lcg struct {
	seed uint32
}

// next advances the generator and returns a draw in [0, 0x7FFF]
func (g *lcg) next() int {
	g.seed = g.seed*1103515245 + 12345
	return int((g.seed >> 16) & 0x7FFF)
}

// GenerateTestImage synthesizes a deterministic test frame: a smooth
// diagonal gradient carrying low-amplitude noise, about 1.5% of a 12-bit
// range. The pattern compresses realistically (neither flat nor random)
// and is identical on every run and platform.
func GenerateTestImage(frame codec.FrameDescriptor) []uint16 {
	maxVal := frame.MaxValue()
	image := make([]uint16, frame.SampleCount())

	rng := lcg{seed: 42}
	i := 0
	for y := 0; y < frame.Height; y++ {
		for x := 0; x < frame.Width; x++ {
			gradient := (x*maxVal/frame.Width + y*maxVal/frame.Height) / 2
			for c := 0; c < frame.ComponentCount; c++ {
				noise := rng.next()%64 - 32
				value := gradient + noise
				if value < 0 {
					value = 0
				} else if value > maxVal {
					value = maxVal
				}
				image[i] = uint16(value)
				i++
			}
		}
	}
	return image
}
