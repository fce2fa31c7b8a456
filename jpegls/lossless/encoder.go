package lossless

import (
	"fmt"
	"io"

	"github.com/cocosip/go-jpegls/jpeg/common"
	jlscommon "github.com/cocosip/go-jpegls/jpegls/common"
)

// Encoder encodes image samples into a JPEG-LS lossless stream.
// Samples are uint16 regardless of bit depth; each component plane is
// coded sequentially within a single scan.
type Encoder struct {
	width      int
	height     int
	components int
	bitDepth   int
	maxVal     int

	traits    Traits
	quantizer *GradientQuantizer
	contexts  *ContextTable
	runModes  [2]*RunModeContext
	runIndex  int
}

// NewEncoder creates an encoder for the given frame geometry
func NewEncoder(width, height, components, bitDepth int) (*Encoder, error) {
	if width < 1 || width > 65535 || height < 1 || height > 65535 {
		return nil, fmt.Errorf("dimensions %dx%d out of range [1, 65535]: %w",
			width, height, common.ErrInvalidDimensions)
	}
	if components != 1 && components != 3 {
		return nil, fmt.Errorf("component count %d (must be 1 or 3): %w",
			components, common.ErrInvalidComponents)
	}
	if bitDepth < 2 || bitDepth > 16 {
		return nil, fmt.Errorf("bit depth %d out of range [2, 16]: %w",
			bitDepth, common.ErrInvalidBitDepth)
	}

	maxVal := (1 << uint(bitDepth)) - 1
	traits := NewTraits(maxVal, 0, 0)

	return &Encoder{
		width:      width,
		height:     height,
		components: components,
		bitDepth:   bitDepth,
		maxVal:     maxVal,
		traits:     traits,
		quantizer:  NewGradientQuantizer(traits.T1, traits.T2, traits.T3, traits.Near),
	}, nil
}

// Encode writes the complete JPEG-LS stream for samples into dst and
// returns the number of bytes written. Sample values must not exceed
// the encoder's bit depth.
func (enc *Encoder) Encode(samples []uint16, dst []byte) (int, error) {
	expected := enc.width * enc.height * enc.components
	if len(samples) != expected {
		return 0, fmt.Errorf("sample count %d does not match %dx%dx%d frame: %w",
			len(samples), enc.width, enc.height, enc.components, common.ErrInvalidData)
	}

	sw := &sliceWriter{buf: dst}
	writer := common.NewWriter(sw)

	if err := writer.WriteMarker(common.MarkerSOI); err != nil {
		return 0, err
	}
	if err := enc.writeSOF55(writer); err != nil {
		return 0, err
	}
	if err := enc.writeLSE(writer); err != nil {
		return 0, err
	}
	if err := enc.writeSOS(writer); err != nil {
		return 0, err
	}
	if err := enc.encodeScan(sw, samples); err != nil {
		return 0, err
	}
	if err := writer.WriteMarker(common.MarkerEOI); err != nil {
		return 0, err
	}

	return sw.n, nil
}

// writeSOF55 writes the JPEG-LS Start of Frame segment
func (enc *Encoder) writeSOF55(writer *common.Writer) error {
	data := make([]byte, 6+3*enc.components)
	data[0] = byte(enc.bitDepth)
	data[1] = byte(enc.height >> 8)
	data[2] = byte(enc.height)
	data[3] = byte(enc.width >> 8)
	data[4] = byte(enc.width)
	data[5] = byte(enc.components)

	for i := 0; i < enc.components; i++ {
		offset := 6 + i*3
		data[offset] = byte(i + 1) // component ID
		data[offset+1] = 0x11      // 1x1 sampling
		data[offset+2] = 0         // no quantization table in JPEG-LS
	}

	return writer.WriteSegment(common.MarkerSOF55, data)
}

// writeLSE writes the preset coding parameters the decoder must honor
func (enc *Encoder) writeLSE(writer *common.Writer) error {
	data := make([]byte, 11)
	data[0] = 1 // preset coding parameters
	data[1] = byte(enc.maxVal >> 8)
	data[2] = byte(enc.maxVal)
	data[3] = byte(enc.traits.T1 >> 8)
	data[4] = byte(enc.traits.T1)
	data[5] = byte(enc.traits.T2 >> 8)
	data[6] = byte(enc.traits.T2)
	data[7] = byte(enc.traits.T3 >> 8)
	data[8] = byte(enc.traits.T3)
	data[9] = byte(enc.traits.Reset >> 8)
	data[10] = byte(enc.traits.Reset)

	return writer.WriteSegment(common.MarkerLSE, data)
}

// writeSOS writes the Start of Scan segment
func (enc *Encoder) writeSOS(writer *common.Writer) error {
	data := make([]byte, 4+2*enc.components)
	data[0] = byte(enc.components)

	for i := 0; i < enc.components; i++ {
		offset := 1 + i*2
		data[offset] = byte(i + 1) // component selector
		data[offset+1] = 0         // no entropy tables in JPEG-LS
	}

	data[len(data)-3] = 0 // NEAR (lossless)
	data[len(data)-2] = 0 // interleave mode: none
	data[len(data)-1] = 0 // point transform

	return writer.WriteSegment(common.MarkerSOS, data)
}

// encodeScan entropy-codes all component planes into one scan
func (enc *Encoder) encodeScan(w io.Writer, samples []uint16) error {
	gw := NewGolombWriter(w)
	for comp := 0; comp < enc.components; comp++ {
		enc.initScanState()
		if err := enc.encodeComponent(gw, samples, comp); err != nil {
			return err
		}
	}
	return gw.Flush()
}

// initScanState resets the adaptive state before each component plane
func (enc *Encoder) initScanState() {
	enc.contexts = NewContextTable(enc.traits.Range)
	enc.runModes[0] = NewRunModeContext(0, enc.traits.Range)
	enc.runModes[1] = NewRunModeContext(1, enc.traits.Range)
	enc.runIndex = 0
}

func (enc *Encoder) encodeComponent(gw *GolombWriter, samples []uint16, comp int) error {
	w, h, nc := enc.width, enc.height, enc.components

	for y := 0; y < h; y++ {
		enc.runIndex = 0
		for x := 0; x < w; x++ {
			a, b, c, d := neighbors(samples, w, nc, comp, x, y)
			q1, q2, q3 := enc.quantizer.ComputeContext(a, b, c, d)
			qs := ComputeContextID(q1, q2, q3)

			if qs == 0 {
				n, err := enc.encodeRunMode(gw, samples, comp, x, y)
				if err != nil {
					return fmt.Errorf("run mode at x=%d y=%d comp=%d: %w", x, y, comp, err)
				}
				x += n - 1
				continue
			}

			xval := int(samples[(y*w+x)*nc+comp])
			if err := enc.encodeRegular(gw, qs, xval, a, b, c); err != nil {
				return fmt.Errorf("sample at x=%d y=%d comp=%d: %w", x, y, comp, err)
			}
		}
	}
	return nil
}

// encodeRegular codes one sample in regular mode (A.4 through A.6)
func (enc *Encoder) encodeRegular(gw *GolombWriter, qs, x, a, b, c int) error {
	sign := BitwiseSign(qs)
	ctx := enc.contexts.GetContext(ApplySign(qs, sign))
	k := ctx.ComputeGolombParameter()
	predicted := enc.traits.CorrectPrediction(Predict(a, b, c) + ApplySign(ctx.C, sign))
	errValue := enc.traits.ModuloRange(ApplySign(x-predicted, sign))

	correction := ctx.GetErrorCorrection(k, enc.traits.Near)
	mapped := MapErrorValue(correction ^ errValue)
	if err := gw.EncodeMappedValue(mapped, k, enc.traits.Limit, enc.traits.Qbpp); err != nil {
		return err
	}

	ctx.UpdateContext(errValue, enc.traits.Near, enc.traits.Reset)
	return nil
}

// encodeRunMode codes a run starting at (x, y) and, unless the run
// reaches the end of the line, the interrupting sample. Returns the
// number of samples consumed.
func (enc *Encoder) encodeRunMode(gw *GolombWriter, samples []uint16, comp, x, y int) (int, error) {
	w, nc := enc.width, enc.components
	index := (y*w+x)*nc + comp

	// Run value: the previous sample of this component in raster order
	var ra int
	if index >= nc {
		ra = int(samples[index-nc])
	}

	remaining := w - x
	runLength := 0
	for runLength < remaining {
		if !enc.traits.IsNear(int(samples[index+runLength*nc]), ra) {
			break
		}
		runLength++
	}

	if err := enc.encodeRunPixels(gw, runLength, runLength == remaining); err != nil {
		return 0, err
	}
	if runLength == remaining {
		return runLength, nil
	}

	xval := int(samples[index+runLength*nc])
	var rb int
	if y > 0 {
		rb = int(samples[((y-1)*w+x+runLength)*nc+comp])
	}
	if err := enc.encodeRunInterruption(gw, xval, ra, rb); err != nil {
		return 0, err
	}
	return runLength + 1, nil
}

// encodeRunPixels codes the run length against J (A.14, step 2)
func (enc *Encoder) encodeRunPixels(gw *GolombWriter, runLength int, endOfLine bool) error {
	for runLength >= 1<<uint(J[enc.runIndex]) {
		if err := gw.WriteBit(1); err != nil {
			return err
		}
		runLength -= 1 << uint(J[enc.runIndex])
		enc.runIndex = jlscommon.IncrementRunIndex(enc.runIndex)
	}

	if endOfLine {
		if runLength != 0 {
			return gw.WriteBit(1)
		}
		return nil
	}

	// leading 0 plus the partial run length in J[runIndex] bits
	return gw.WriteBits(uint32(runLength), J[enc.runIndex]+1)
}

// encodeRunInterruption selects the interruption context from ra/rb and
// codes the interrupting sample (A.15, A.21).
func (enc *Encoder) encodeRunInterruption(gw *GolombWriter, x, ra, rb int) error {
	if enc.traits.IsNear(ra, rb) {
		errValue := enc.traits.ModuloRange(x - ra)
		return enc.encodeRunInterruptionError(gw, enc.runModes[1], errValue)
	}

	errValue := enc.traits.ModuloRange((x - rb) * jlscommon.Sign(rb-ra))
	return enc.encodeRunInterruptionError(gw, enc.runModes[0], errValue)
}

func (enc *Encoder) encodeRunInterruptionError(gw *GolombWriter, ctx *RunModeContext, errValue int) error {
	k := ctx.GetGolombCode()
	eMapped := 2*jlscommon.Abs(errValue) - ctx.runInterruptionType
	if ctx.ComputeMap(errValue, k) {
		eMapped--
	}

	if err := gw.EncodeMappedValue(eMapped, k, enc.traits.Limit-J[enc.runIndex]-1, enc.traits.Qbpp); err != nil {
		return err
	}

	ctx.UpdateVariables(errValue, eMapped, enc.traits.Reset)
	enc.runIndex = jlscommon.DecrementRunIndex(enc.runIndex)
	return nil
}

// sliceWriter writes into a caller-provided slice without growing it
type sliceWriter struct {
	buf []byte
	n   int
}

func (sw *sliceWriter) Write(p []byte) (int, error) {
	if sw.n+len(p) > len(sw.buf) {
		return 0, common.ErrBufferTooSmall
	}
	copy(sw.buf[sw.n:], p)
	sw.n += len(p)
	return len(p), nil
}
