package lossless

import (
	"bytes"
	"fmt"
	"io"

	"github.com/cocosip/go-jpegls/jpeg/common"
	jlscommon "github.com/cocosip/go-jpegls/jpegls/common"
)

// Decoder decodes a JPEG-LS lossless stream produced by Encoder.
type Decoder struct {
	width      int
	height     int
	components int
	bitDepth   int
	maxVal     int

	// LSE overrides, zero until seen
	presetMaxVal int
	presetT1     int
	presetT2     int
	presetT3     int
	presetReset  int

	traits    Traits
	quantizer *GradientQuantizer
	contexts  *ContextTable
	runModes  [2]*RunModeContext
	runIndex  int
}

// NewDecoder creates a decoder
func NewDecoder() *Decoder {
	return &Decoder{}
}

// Decode parses the stream in encoded, decodes all component planes into
// dst and returns the number of samples filled. dst must hold at least
// width*height*components samples as declared by the stream's frame
// header.
func (dec *Decoder) Decode(encoded []byte, dst []uint16) (int, error) {
	reader := common.NewReader(bytes.NewReader(encoded))

	marker, err := reader.ReadMarker()
	if err != nil {
		return 0, fmt.Errorf("reading SOI: %w", common.ErrInvalidSOI)
	}
	if marker != common.MarkerSOI {
		return 0, common.ErrInvalidSOI
	}

	for {
		marker, err := reader.ReadMarker()
		if err != nil {
			if err == io.EOF {
				return 0, common.ErrUnexpectedEOF
			}
			return 0, err
		}

		switch {
		case marker == common.MarkerSOF55:
			if err := dec.parseSOF55(reader); err != nil {
				return 0, err
			}

		case marker == common.MarkerLSE:
			if err := dec.parseLSE(reader); err != nil {
				return 0, err
			}

		case marker == common.MarkerDRI:
			if err := dec.parseDRI(reader); err != nil {
				return 0, err
			}

		case marker == common.MarkerSOS:
			if err := dec.parseSOS(reader); err != nil {
				return 0, err
			}
			return dec.decodeScan(reader, dst)

		case marker == common.MarkerEOI:
			return 0, fmt.Errorf("EOI before scan data: %w", common.ErrInvalidData)

		case common.IsSOF(marker):
			return 0, fmt.Errorf("frame type marker 0x%04X is not JPEG-LS: %w",
				marker, common.ErrUnsupportedFormat)

		default:
			// Skip unrecognized segments (APPn, COM, ...)
			if !common.HasLength(marker) {
				return 0, fmt.Errorf("unexpected marker 0x%04X: %w", marker, common.ErrInvalidMarker)
			}
			if _, err := reader.ReadSegment(); err != nil {
				return 0, err
			}
		}
	}
}

// parseSOF55 parses the JPEG-LS Start of Frame segment
func (dec *Decoder) parseSOF55(reader *common.Reader) error {
	data, err := reader.ReadSegment()
	if err != nil {
		return err
	}
	if len(data) < 6 {
		return common.ErrInvalidSOF
	}

	dec.bitDepth = int(data[0])
	dec.height = int(data[1])<<8 | int(data[2])
	dec.width = int(data[3])<<8 | int(data[4])
	dec.components = int(data[5])

	if dec.bitDepth < 2 || dec.bitDepth > 16 {
		return fmt.Errorf("precision %d out of range [2, 16]: %w", dec.bitDepth, common.ErrInvalidBitDepth)
	}
	if dec.width < 1 || dec.height < 1 {
		return fmt.Errorf("dimensions %dx%d: %w", dec.width, dec.height, common.ErrInvalidDimensions)
	}
	if dec.components != 1 && dec.components != 3 {
		return fmt.Errorf("component count %d: %w", dec.components, common.ErrInvalidComponents)
	}
	if len(data) < 6+3*dec.components {
		return common.ErrInvalidSOF
	}

	return nil
}

// parseLSE parses the preset coding parameters segment
func (dec *Decoder) parseLSE(reader *common.Reader) error {
	data, err := reader.ReadSegment()
	if err != nil {
		return err
	}
	if len(data) < 1 {
		return common.ErrInvalidLSE
	}
	if data[0] != 1 {
		return fmt.Errorf("LSE ID %d: %w", data[0], common.ErrUnsupportedFormat)
	}
	if len(data) != 11 {
		return common.ErrInvalidLSE
	}

	dec.presetMaxVal = int(data[1])<<8 | int(data[2])
	dec.presetT1 = int(data[3])<<8 | int(data[4])
	dec.presetT2 = int(data[5])<<8 | int(data[6])
	dec.presetT3 = int(data[7])<<8 | int(data[8])
	dec.presetReset = int(data[9])<<8 | int(data[10])

	return nil
}

// parseDRI parses the restart interval segment. Restart markers reset
// entropy coding state, which this decoder does not implement, so only
// an interval of zero is accepted.
func (dec *Decoder) parseDRI(reader *common.Reader) error {
	data, err := reader.ReadSegment()
	if err != nil {
		return err
	}
	if len(data) != 2 {
		return common.ErrInvalidData
	}
	if interval := int(data[0])<<8 | int(data[1]); interval != 0 {
		return fmt.Errorf("restart interval %d: %w", interval, common.ErrUnsupportedFormat)
	}
	return nil
}

// parseSOS parses the Start of Scan segment
func (dec *Decoder) parseSOS(reader *common.Reader) error {
	if dec.width == 0 {
		return fmt.Errorf("SOS before SOF55: %w", common.ErrInvalidSOF)
	}

	data, err := reader.ReadSegment()
	if err != nil {
		return err
	}
	if len(data) < 1 {
		return common.ErrInvalidSOS
	}

	ns := int(data[0])
	if ns != dec.components {
		return fmt.Errorf("scan component count %d does not match frame (%d): %w",
			ns, dec.components, common.ErrInvalidSOS)
	}
	if len(data) != 4+2*ns {
		return common.ErrInvalidSOS
	}

	if near := int(data[len(data)-3]); near != 0 {
		return fmt.Errorf("NEAR %d (lossless decoder): %w", near, common.ErrUnsupportedFormat)
	}
	if ilv := int(data[len(data)-2]); ilv != 0 {
		return fmt.Errorf("interleave mode %d: %w", ilv, common.ErrUnsupportedFormat)
	}

	return nil
}

// initScanParameters resolves the active coding parameters once the
// frame header and any LSE overrides are known.
func (dec *Decoder) initScanParameters() {
	maxVal := (1 << uint(dec.bitDepth)) - 1
	if dec.presetMaxVal > 0 {
		maxVal = dec.presetMaxVal
	}
	dec.maxVal = maxVal
	dec.traits = NewTraits(maxVal, 0, dec.presetReset)

	t1, t2, t3 := dec.traits.T1, dec.traits.T2, dec.traits.T3
	if dec.presetT1 > 0 {
		t1 = dec.presetT1
	}
	if dec.presetT2 > 0 {
		t2 = dec.presetT2
	}
	if dec.presetT3 > 0 {
		t3 = dec.presetT3
	}
	dec.quantizer = NewGradientQuantizer(t1, t2, t3, dec.traits.Near)
}

// initScanState resets the adaptive state before each component plane
func (dec *Decoder) initScanState() {
	dec.contexts = NewContextTable(dec.traits.Range)
	dec.runModes[0] = NewRunModeContext(0, dec.traits.Range)
	dec.runModes[1] = NewRunModeContext(1, dec.traits.Range)
	dec.runIndex = 0
}

// decodeScan extracts the de-stuffed entropy data and decodes all
// component planes into dst.
func (dec *Decoder) decodeScan(reader *common.Reader, dst []uint16) (int, error) {
	needed := dec.width * dec.height * dec.components
	if len(dst) < needed {
		return 0, fmt.Errorf("destination holds %d samples, stream needs %d: %w",
			len(dst), needed, common.ErrBufferTooSmall)
	}

	scanData, err := dec.extractScanData(reader)
	if err != nil {
		return 0, err
	}

	dec.initScanParameters()
	gr := NewGolombReader(scanData)
	for comp := 0; comp < dec.components; comp++ {
		dec.initScanState()
		if err := dec.decodeComponent(gr, dst, comp); err != nil {
			return 0, err
		}
	}

	return needed, nil
}

// extractScanData reads entropy-coded bytes up to the EOI marker,
// undoing byte stuffing.
func (dec *Decoder) extractScanData(reader *common.Reader) ([]byte, error) {
	var scan bytes.Buffer

	for {
		b, err := reader.ReadByte()
		if err != nil {
			return nil, common.ErrUnexpectedEOF
		}
		if b != 0xFF {
			scan.WriteByte(b)
			continue
		}

		next, err := reader.ReadByte()
		if err != nil {
			return nil, common.ErrUnexpectedEOF
		}
		if next == 0x00 {
			// stuffed 0xFF data byte
			scan.WriteByte(0xFF)
			continue
		}

		marker := uint16(0xFF00) | uint16(next)
		switch {
		case marker == common.MarkerEOI:
			return scan.Bytes(), nil
		case common.IsRST(marker):
			return nil, fmt.Errorf("restart marker in scan: %w", common.ErrUnsupportedFormat)
		default:
			return nil, fmt.Errorf("unexpected marker 0x%04X in scan data: %w",
				marker, common.ErrInvalidData)
		}
	}
}

func (dec *Decoder) decodeComponent(gr *GolombReader, dst []uint16, comp int) error {
	w, h, nc := dec.width, dec.height, dec.components

	for y := 0; y < h; y++ {
		dec.runIndex = 0
		for x := 0; x < w; {
			a, b, c, d := neighbors(dst, w, nc, comp, x, y)
			q1, q2, q3 := dec.quantizer.ComputeContext(a, b, c, d)
			qs := ComputeContextID(q1, q2, q3)

			if qs == 0 {
				n, err := dec.decodeRunMode(gr, dst, comp, x, y)
				if err != nil {
					return fmt.Errorf("run mode at x=%d y=%d comp=%d: %w", x, y, comp, err)
				}
				x += n
				continue
			}

			val, err := dec.decodeRegular(gr, qs, a, b, c)
			if err != nil {
				return fmt.Errorf("sample at x=%d y=%d comp=%d: %w", x, y, comp, err)
			}
			dst[(y*w+x)*nc+comp] = uint16(val)
			x++
		}
	}
	return nil
}

// decodeRegular decodes one regular mode sample (mirror of encodeRegular)
func (dec *Decoder) decodeRegular(gr *GolombReader, qs, a, b, c int) (int, error) {
	sign := BitwiseSign(qs)
	ctx := dec.contexts.GetContext(ApplySign(qs, sign))
	k := ctx.ComputeGolombParameter()
	predicted := dec.traits.CorrectPrediction(Predict(a, b, c) + ApplySign(ctx.C, sign))

	mapped, err := gr.DecodeMappedValue(k, dec.traits.Limit, dec.traits.Qbpp)
	if err != nil {
		return 0, err
	}
	errValue := ctx.GetErrorCorrection(k, dec.traits.Near) ^ UnmapErrorValue(mapped)

	ctx.UpdateContext(errValue, dec.traits.Near, dec.traits.Reset)
	return dec.traits.ComputeReconstructedSample(predicted, ApplySign(errValue, sign)), nil
}

// decodeRunMode decodes a run and, unless the run reached the end of the
// line, the interrupting sample. Returns the number of samples filled.
func (dec *Decoder) decodeRunMode(gr *GolombReader, dst []uint16, comp, x, y int) (int, error) {
	w, nc := dec.width, dec.components
	index := (y*w+x)*nc + comp

	var ra int
	if index >= nc {
		ra = int(dst[index-nc])
	}

	remaining := w - x
	runLength, err := dec.decodeRunPixels(gr, remaining)
	if err != nil {
		return 0, err
	}
	for i := 0; i < runLength; i++ {
		dst[index+i*nc] = uint16(ra)
	}
	if runLength == remaining {
		return runLength, nil
	}

	var rb int
	if y > 0 {
		rb = int(dst[((y-1)*w+x+runLength)*nc+comp])
	}
	val, err := dec.decodeRunInterruption(gr, ra, rb)
	if err != nil {
		return 0, err
	}
	dst[index+runLength*nc] = uint16(val)
	return runLength + 1, nil
}

// decodeRunPixels decodes the run length (mirror of encodeRunPixels)
func (dec *Decoder) decodeRunPixels(gr *GolombReader, remaining int) (int, error) {
	index := 0
	for {
		bit, err := gr.ReadBit()
		if err != nil {
			return 0, err
		}
		if bit == 0 {
			break
		}

		count := min(1<<uint(J[dec.runIndex]), remaining-index)
		index += count
		if count == 1<<uint(J[dec.runIndex]) {
			dec.runIndex = jlscommon.IncrementRunIndex(dec.runIndex)
		}
		if index == remaining {
			return index, nil
		}
	}

	if J[dec.runIndex] > 0 {
		val, err := gr.ReadBits(J[dec.runIndex])
		if err != nil {
			return 0, err
		}
		index += int(val)
	}

	if index > remaining {
		return 0, fmt.Errorf("run length %d exceeds line remainder %d: %w",
			index, remaining, common.ErrInvalidData)
	}
	return index, nil
}

// decodeRunInterruption decodes the interrupting sample (mirror of
// encodeRunInterruption).
func (dec *Decoder) decodeRunInterruption(gr *GolombReader, ra, rb int) (int, error) {
	if dec.traits.IsNear(ra, rb) {
		errValue, err := dec.decodeRunInterruptionError(gr, dec.runModes[1])
		if err != nil {
			return 0, err
		}
		return dec.traits.ComputeReconstructedSample(ra, errValue), nil
	}

	errValue, err := dec.decodeRunInterruptionError(gr, dec.runModes[0])
	if err != nil {
		return 0, err
	}
	return dec.traits.ComputeReconstructedSample(rb, errValue*jlscommon.Sign(rb-ra)), nil
}

func (dec *Decoder) decodeRunInterruptionError(gr *GolombReader, ctx *RunModeContext) (int, error) {
	k := ctx.GetGolombCode()
	eMapped, err := gr.DecodeMappedValue(k, dec.traits.Limit-J[dec.runIndex]-1, dec.traits.Qbpp)
	if err != nil {
		return 0, err
	}
	errValue := ctx.ComputeErrorValue(eMapped+ctx.runInterruptionType, k)

	ctx.UpdateVariables(errValue, eMapped, dec.traits.Reset)
	dec.runIndex = jlscommon.DecrementRunIndex(dec.runIndex)
	return errValue, nil
}
