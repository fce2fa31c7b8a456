// Package benchmark drives the JPEG-LS codec end to end over a synthetic
// frame: deterministic image generation, timed encode and decode phases,
// bit-exact round-trip verification and a machine-parsable report.
package benchmark

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/cocosip/go-dicom/pkg/dicom/transfer"
	"github.com/cocosip/go-jpegls/codec"
)

// Default benchmark shape: an 8K 12-bit monochrome frame.
const (
	DefaultWidth         = 7680
	DefaultHeight        = 4320
	DefaultBitsPerSample = 12
	DefaultComponents    = 1
	DefaultLoopCount     = 10
)

// ErrVerificationFailed reports a round-trip mismatch. Run prints the
// mismatch diagnostics itself before returning it.
var ErrVerificationFailed = errors.New("round-trip verification failed")

// Config describes one benchmark run. Zero fields fall back to the 8K
// 12-bit defaults; a nil Out writes to stdout.
type Config struct {
	Width         int
	Height        int
	BitsPerSample int
	Components    int
	LoopCount     int
	Out           io.Writer
}

func (cfg *Config) applyDefaults() {
	if cfg.Width <= 0 {
		cfg.Width = DefaultWidth
	}
	if cfg.Height <= 0 {
		cfg.Height = DefaultHeight
	}
	if cfg.BitsPerSample <= 0 {
		cfg.BitsPerSample = DefaultBitsPerSample
	}
	if cfg.Components <= 0 {
		cfg.Components = DefaultComponents
	}
	if cfg.LoopCount <= 0 {
		cfg.LoopCount = DefaultLoopCount
	}
	if cfg.Out == nil {
		cfg.Out = os.Stdout
	}
}

// Run executes the benchmark described by cfg: header, image generation,
// timed encode phase, timed decode phase, round-trip verification and the
// summary line. Codec failures abort the run and propagate.
func Run(cfg Config) error {
	cfg.applyDefaults()

	frame := codec.FrameDescriptor{
		Width:          cfg.Width,
		Height:         cfg.Height,
		BitsPerSample:  cfg.BitsPerSample,
		ComponentCount: cfg.Components,
	}
	if err := frame.Validate(); err != nil {
		return err
	}

	c, err := codec.Get(transfer.JPEGLSLossless.UID().UID())
	if err != nil {
		return err
	}

	rawBytes := frame.SampleCount() * 2
	rawMiB := float64(rawBytes) / (1024.0 * 1024.0)

	printHeader(cfg.Out, frame, rawBytes, cfg.LoopCount)

	fmt.Fprintf(cfg.Out, "Generating synthetic %d-bit test image...\n", frame.BitsPerSample)
	image := GenerateTestImage(frame)

	// One shared destination buffer; every encode iteration overwrites it.
	encoded := make([]byte, c.EstimatedDestinationSize(frame))

	fmt.Fprintf(cfg.Out, "Running encode benchmark (%d iterations)...\n", cfg.LoopCount)
	var encodedSize int
	encodeTimes, err := Measure(cfg.LoopCount, func() error {
		n, err := c.Encode(frame, image, encoded)
		if err != nil {
			return err
		}
		encodedSize = n
		return nil
	})
	if err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	encodeStats := Summarize(encodeTimes)
	printEncodeResults(cfg.Out, encodedSize, rawBytes, encodeStats, rawMiB)

	fmt.Fprintf(cfg.Out, "Running decode benchmark (%d iterations)...\n", cfg.LoopCount)
	var decoded []uint16
	var filled int
	decodeTimes, err := Measure(cfg.LoopCount, func() error {
		dst := make([]uint16, frame.SampleCount())
		n, err := c.Decode(encoded[:encodedSize], dst)
		if err != nil {
			return err
		}
		decoded, filled = dst, n
		return nil
	})
	if err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	decodeStats := Summarize(decodeTimes)
	printDecodeResults(cfg.Out, decodeStats, rawMiB)

	result := VerifyRoundTrip(image, decoded[:filled])
	printVerification(cfg.Out, result)
	if !result.Passed {
		return ErrVerificationFailed
	}

	printSummary(cfg.Out, encodeStats, decodeStats, rawMiB, float64(rawBytes)/float64(encodedSize))
	return nil
}
