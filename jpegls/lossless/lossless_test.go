package lossless

import (
	"errors"
	"testing"

	"github.com/cocosip/go-jpegls/codec"
	"github.com/cocosip/go-jpegls/jpeg/common"
)

// roundTrip encodes samples, decodes the stream back and verifies the
// reconstruction is bit-exact.
func roundTrip(t *testing.T, width, height, components, bitDepth int, samples []uint16) []byte {
	t.Helper()

	frame := codec.FrameDescriptor{
		Width:          width,
		Height:         height,
		BitsPerSample:  bitDepth,
		ComponentCount: components,
	}

	dst := make([]byte, NewLosslessCodec().EstimatedDestinationSize(frame))
	n, err := Encode(frame, samples, dst)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	encoded := dst[:n]

	t.Logf("Original size: %d bytes", len(samples)*2)
	t.Logf("Compressed size: %d bytes", n)
	t.Logf("Compression ratio: %.2fx", float64(len(samples)*2)/float64(n))

	decoded := make([]uint16, len(samples))
	filled, err := Decode(encoded, decoded)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if filled != len(samples) {
		t.Fatalf("Decode filled %d samples, want %d", filled, len(samples))
	}

	mismatches := 0
	for i := range samples {
		if decoded[i] != samples[i] {
			mismatches++
			if mismatches <= 10 {
				t.Errorf("Sample %d mismatch: got %d, want %d", i, decoded[i], samples[i])
			}
		}
	}
	if mismatches > 0 {
		t.Fatalf("Total sample errors: %d / %d", mismatches, len(samples))
	}

	return encoded
}

// TestEncodeDecode8BitGradient tests 8-bit grayscale round-trip
func TestEncodeDecode8BitGradient(t *testing.T) {
	width, height := 64, 64
	samples := make([]uint16, width*height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			samples[y*width+x] = uint16((x + y*2) % 256)
		}
	}
	roundTrip(t, width, height, 1, 8, samples)
}

// TestEncodeDecode8BitNoisy tests a texture that defeats run mode
func TestEncodeDecode8BitNoisy(t *testing.T) {
	width, height := 61, 47
	samples := make([]uint16, width*height)
	state := uint32(7)
	for i := range samples {
		state = state*1664525 + 1013904223
		samples[i] = uint16((state >> 20) & 0xFF)
	}
	roundTrip(t, width, height, 1, 8, samples)
}

// TestEncodeDecode8BitRGB tests 8-bit three-component round-trip
func TestEncodeDecode8BitRGB(t *testing.T) {
	width, height := 32, 32
	samples := make([]uint16, width*height*3)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			idx := (y*width + x) * 3
			samples[idx+0] = uint16((x * 8) % 256)
			samples[idx+1] = uint16((y * 8) % 256)
			samples[idx+2] = uint16(((x + y) * 4) % 256)
		}
	}
	roundTrip(t, width, height, 3, 8, samples)
}

// TestEncodeDecode12Bit tests 12-bit round-trip
func TestEncodeDecode12Bit(t *testing.T) {
	width, height := 32, 32
	maxVal := 4095
	samples := make([]uint16, width*height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			samples[y*width+x] = uint16(((x + y*2) * 37) % (maxVal + 1))
		}
	}
	roundTrip(t, width, height, 1, 12, samples)
}

// TestEncodeDecode16Bit tests 16-bit round-trip including extreme values
func TestEncodeDecode16Bit(t *testing.T) {
	width, height := 32, 32
	samples := make([]uint16, width*height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			samples[y*width+x] = uint16((x*2048 + y*733) % 65536)
		}
	}
	samples[0] = 0
	samples[1] = 65535
	samples[2] = 0
	roundTrip(t, width, height, 1, 16, samples)
}

// TestEncodeDecodeSinglePixel tests the 1x1 degenerate frame
func TestEncodeDecodeSinglePixel(t *testing.T) {
	for _, v := range []uint16{0, 1, 128, 255} {
		roundTrip(t, 1, 1, 1, 8, []uint16{v})
	}
	roundTrip(t, 1, 1, 1, 12, []uint16{4095})
	roundTrip(t, 1, 1, 1, 16, []uint16{65535})
}

// TestEncodeDecodeOddDimensions tests non-square and single-line frames
func TestEncodeDecodeOddDimensions(t *testing.T) {
	dims := []struct{ w, h int }{
		{17, 13},
		{1, 7},
		{7, 1},
		{3, 1},
		{1, 1},
		{127, 3},
	}
	for _, d := range dims {
		samples := make([]uint16, d.w*d.h)
		for i := range samples {
			samples[i] = uint16((i * 11) % 256)
		}
		roundTrip(t, d.w, d.h, 1, 8, samples)
	}
}

// TestEncodeDecodeFlat tests run mode over fully uniform frames
func TestEncodeDecodeFlat(t *testing.T) {
	width, height := 64, 64
	for _, v := range []uint16{0, 128, 255} {
		samples := make([]uint16, width*height)
		for i := range samples {
			samples[i] = v
		}
		encoded := roundTrip(t, width, height, 1, 8, samples)
		if len(encoded) >= len(samples) {
			t.Errorf("flat frame did not compress: %d bytes for %d samples", len(encoded), len(samples))
		}
	}
}

// TestEncodeDecodeRunInterruptions tests runs broken mid-line
func TestEncodeDecodeRunInterruptions(t *testing.T) {
	width, height := 40, 16
	samples := make([]uint16, width*height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			v := uint16(100)
			if x%13 == 12 {
				v = uint16(100 + y)
			}
			samples[y*width+x] = v
		}
	}
	roundTrip(t, width, height, 1, 8, samples)
}

// TestEncodeDecodeExtremeSteps tests maximal prediction errors
func TestEncodeDecodeExtremeSteps(t *testing.T) {
	width, height := 16, 16
	samples := make([]uint16, width*height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if (x+y)%2 == 0 {
				samples[y*width+x] = 0
			} else {
				samples[y*width+x] = 4095
			}
		}
	}
	roundTrip(t, width, height, 1, 12, samples)
}

// TestNewEncoderInvalidParameters tests encoder construction errors
func TestNewEncoderInvalidParameters(t *testing.T) {
	tests := []struct {
		name       string
		width      int
		height     int
		components int
		bitDepth   int
		wantErr    error
	}{
		{"zero width", 0, 64, 1, 8, common.ErrInvalidDimensions},
		{"zero height", 64, 0, 1, 8, common.ErrInvalidDimensions},
		{"oversized width", 70000, 64, 1, 8, common.ErrInvalidDimensions},
		{"two components", 64, 64, 2, 8, common.ErrInvalidComponents},
		{"bit depth too low", 64, 64, 1, 1, common.ErrInvalidBitDepth},
		{"bit depth too high", 64, 64, 1, 17, common.ErrInvalidBitDepth},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewEncoder(tt.width, tt.height, tt.components, tt.bitDepth)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("NewEncoder() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

// TestEncodeSampleCountMismatch tests the src length check
func TestEncodeSampleCountMismatch(t *testing.T) {
	enc, err := NewEncoder(8, 8, 1, 8)
	if err != nil {
		t.Fatalf("NewEncoder failed: %v", err)
	}
	dst := make([]byte, 4096)
	if _, err := enc.Encode(make([]uint16, 63), dst); !errors.Is(err, common.ErrInvalidData) {
		t.Errorf("Encode with short src = %v, want %v", err, common.ErrInvalidData)
	}
}

// TestEncodeBufferTooSmall tests the destination capacity check
func TestEncodeBufferTooSmall(t *testing.T) {
	enc, err := NewEncoder(64, 64, 1, 8)
	if err != nil {
		t.Fatalf("NewEncoder failed: %v", err)
	}
	samples := make([]uint16, 64*64)
	state := uint32(3)
	for i := range samples {
		state = state*1664525 + 1013904223
		samples[i] = uint16((state >> 20) & 0xFF)
	}

	if _, err := enc.Encode(samples, make([]byte, 16)); !errors.Is(err, common.ErrBufferTooSmall) {
		t.Errorf("Encode into tiny dst = %v, want %v", err, common.ErrBufferTooSmall)
	}
}
