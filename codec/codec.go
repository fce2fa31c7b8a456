package codec

import "fmt"

// FrameDescriptor describes the shape and sample range of an image
// independent of its pixel data.
type FrameDescriptor struct {
	Width          int // Image width in samples
	Height         int // Image height in samples
	BitsPerSample  int // Bits per sample (2-16)
	ComponentCount int // Number of color components (1=grayscale, 3=RGB)
}

// Validate checks that the frame descriptor describes an encodable image.
func (f FrameDescriptor) Validate() error {
	if f.Width <= 0 || f.Height <= 0 {
		return fmt.Errorf("%w: dimensions %dx%d", ErrInvalidDimensions, f.Width, f.Height)
	}
	if f.BitsPerSample < 2 || f.BitsPerSample > 16 {
		return fmt.Errorf("%w: %d (must be 2-16)", ErrInvalidBitDepth, f.BitsPerSample)
	}
	if f.ComponentCount != 1 && f.ComponentCount != 3 {
		return fmt.Errorf("%w: %d (must be 1 or 3)", ErrInvalidComponents, f.ComponentCount)
	}
	return nil
}

// SampleCount returns the total number of samples in a frame of this shape.
func (f FrameDescriptor) SampleCount() int {
	return f.Width * f.Height * f.ComponentCount
}

// MaxValue returns the largest sample value representable at this bit depth.
func (f FrameDescriptor) MaxValue() int {
	return (1 << uint(f.BitsPerSample)) - 1
}

// Codec is the universal interface for all image codecs.
//
// Samples are uint16 regardless of bit depth: narrower samples ride in the
// low bits of a 16-bit container. Encode writes a complete stream into dst
// and reports the byte count; Decode parses a stream into dst and reports
// the filled sample count.
type Codec interface {
	// EstimatedDestinationSize returns an upper bound on the encoded size
	// for a frame of the given shape, used to size destination buffers.
	EstimatedDestinationSize(frame FrameDescriptor) int

	// Encode compresses src into dst. len(src) must equal
	// frame.SampleCount(). Fails if dst is too small for the stream.
	Encode(frame FrameDescriptor, src []uint16, dst []byte) (int, error)

	// Decode decompresses a stream into dst. len(dst) must be at least the
	// stream's sample count. Fails on malformed or truncated input.
	Decode(encoded []byte, dst []uint16) (int, error)

	// UID returns the unique identifier (typically DICOM Transfer Syntax UID)
	UID() string

	// Name returns a human-readable name
	Name() string
}
