package lossless

import (
	"github.com/cocosip/go-dicom/pkg/dicom/transfer"

	"github.com/cocosip/go-jpegls/codec"
)

// LosslessCodec implements the codec.Codec interface for JPEG-LS Lossless
type LosslessCodec struct{}

// NewLosslessCodec creates a new JPEG-LS Lossless codec
func NewLosslessCodec() *LosslessCodec {
	return &LosslessCodec{}
}

// EstimatedDestinationSize returns a destination buffer size with
// headroom for headers, byte stuffing and inputs that do not compress.
func (c *LosslessCodec) EstimatedDestinationSize(frame codec.FrameDescriptor) int {
	raw := frame.SampleCount() * 2
	return raw + raw/2 + 1024
}

// Encode compresses src into dst and returns the encoded byte count
func (c *LosslessCodec) Encode(frame codec.FrameDescriptor, src []uint16, dst []byte) (int, error) {
	if err := frame.Validate(); err != nil {
		return 0, err
	}

	enc, err := NewEncoder(frame.Width, frame.Height, frame.ComponentCount, frame.BitsPerSample)
	if err != nil {
		return 0, err
	}
	return enc.Encode(src, dst)
}

// Decode decompresses encoded into dst and returns the sample count
func (c *LosslessCodec) Decode(encoded []byte, dst []uint16) (int, error) {
	return NewDecoder().Decode(encoded, dst)
}

// UID returns the DICOM Transfer Syntax UID for JPEG-LS Lossless
func (c *LosslessCodec) UID() string {
	return transfer.JPEGLSLossless.UID().UID()
}

// Name returns a stable, human-readable codec name
func (c *LosslessCodec) Name() string {
	return "jpeg-ls-lossless"
}

// Encode compresses src into dst with a fresh encoder
func Encode(frame codec.FrameDescriptor, src []uint16, dst []byte) (int, error) {
	return NewLosslessCodec().Encode(frame, src, dst)
}

// Decode decompresses encoded into dst with a fresh decoder
func Decode(encoded []byte, dst []uint16) (int, error) {
	return NewDecoder().Decode(encoded, dst)
}

// init automatically registers the codec
func init() {
	codec.Register(NewLosslessCodec())
}
