package lossless

import (
	"io"

	"github.com/cocosip/go-jpegls/jpeg/common"
)

// GolombWriter writes the entropy-coded scan bit stream with JPEG-LS
// byte stuffing (0xFF is followed by a 0x00 byte).
type GolombWriter struct {
	w          io.Writer
	buffer     uint32
	bufferSize int
	scratch    [2]byte
}

// NewGolombWriter creates a writer for entropy-coded scan data
func NewGolombWriter(w io.Writer) *GolombWriter {
	return &GolombWriter{w: w}
}

// WriteBit writes a single bit
func (gw *GolombWriter) WriteBit(bit int) error {
	gw.buffer = (gw.buffer << 1) | uint32(bit&1)
	gw.bufferSize++
	if gw.bufferSize == 8 {
		return gw.flushByte()
	}
	return nil
}

// WriteBits writes the low n bits of bits, most significant first.
// n may exceed 32; the excess high bits are written as zeros.
func (gw *GolombWriter) WriteBits(bits uint32, n int) error {
	for n > 0 {
		space := 8 - gw.bufferSize
		if space > n {
			space = n
		}

		shift := uint(n - space)
		var value uint32
		if shift < 32 {
			value = (bits >> shift) & ((1 << uint(space)) - 1)
		}

		gw.buffer = (gw.buffer << uint(space)) | value
		gw.bufferSize += space
		n -= space

		if gw.bufferSize == 8 {
			if err := gw.flushByte(); err != nil {
				return err
			}
		}
	}
	return nil
}

// EncodeMappedValue writes a mapped error value using limited-length
// Golomb coding (A.5.3): unary high bits plus k remainder bits, or the
// escape form of limit-qbpp-1 zeros followed by the value minus one in
// qbpp bits.
func (gw *GolombWriter) EncodeMappedValue(mappedError, k, limit, qbpp int) error {
	highBits := mappedError >> uint(k)
	if highBits < limit-qbpp-1 {
		if err := gw.WriteBits(1, highBits+1); err != nil {
			return err
		}
		return gw.WriteBits(uint32(mappedError)&((1<<uint(k))-1), k)
	}

	if err := gw.WriteBits(1, limit-qbpp); err != nil {
		return err
	}
	return gw.WriteBits(uint32(mappedError-1)&((1<<uint(qbpp))-1), qbpp)
}

// Flush pads the remaining bits with zeros and writes the final byte
func (gw *GolombWriter) Flush() error {
	if gw.bufferSize > 0 {
		gw.buffer <<= uint(8 - gw.bufferSize)
		return gw.flushByte()
	}
	return nil
}

func (gw *GolombWriter) flushByte() error {
	b := byte(gw.buffer)
	gw.buffer = 0
	gw.bufferSize = 0

	gw.scratch[0] = b
	n := 1
	if b == 0xFF {
		gw.scratch[1] = 0x00
		n = 2
	}
	_, err := gw.w.Write(gw.scratch[:n])
	return err
}

// GolombReader reads the entropy-coded scan bit stream from de-stuffed
// scan data.
type GolombReader struct {
	data       []byte
	pos        int
	buffer     uint32
	bufferSize int
}

// NewGolombReader creates a reader over de-stuffed scan data
func NewGolombReader(data []byte) *GolombReader {
	return &GolombReader{data: data}
}

// ReadBit reads a single bit
func (gr *GolombReader) ReadBit() (int, error) {
	if gr.bufferSize == 0 {
		if err := gr.fillBuffer(); err != nil {
			return 0, err
		}
	}
	gr.bufferSize--
	return int((gr.buffer >> uint(gr.bufferSize)) & 1), nil
}

// ReadBits reads n bits, most significant first
func (gr *GolombReader) ReadBits(n int) (uint32, error) {
	result := uint32(0)
	for n > 0 {
		if gr.bufferSize == 0 {
			if err := gr.fillBuffer(); err != nil {
				return 0, err
			}
		}

		take := n
		if take > gr.bufferSize {
			take = gr.bufferSize
		}

		gr.bufferSize -= take
		bits := (gr.buffer >> uint(gr.bufferSize)) & ((1 << uint(take)) - 1)
		result = (result << uint(take)) | bits
		n -= take
	}
	return result, nil
}

// DecodeMappedValue reads one limited-length Golomb coded value
// (inverse of EncodeMappedValue).
func (gr *GolombReader) DecodeMappedValue(k, limit, qbpp int) (int, error) {
	highBits, err := gr.readHighBits()
	if err != nil {
		return 0, err
	}

	if highBits >= limit-(qbpp+1) {
		val, err := gr.ReadBits(qbpp)
		if err != nil {
			return 0, err
		}
		return int(val) + 1, nil
	}

	if k != 0 {
		val, err := gr.ReadBits(k)
		if err != nil {
			return 0, err
		}
		return highBits<<uint(k) | int(val), nil
	}

	return highBits, nil
}

// readHighBits counts zero bits up to the terminating one bit. A zero
// run longer than any legal limit means corrupt scan data.
func (gr *GolombReader) readHighBits() (int, error) {
	count := 0
	for {
		bit, err := gr.ReadBit()
		if err != nil {
			return 0, err
		}
		if bit == 1 {
			return count, nil
		}
		count++
		if count > 64 {
			return 0, common.ErrInvalidData
		}
	}
}

func (gr *GolombReader) fillBuffer() error {
	if gr.pos >= len(gr.data) {
		return common.ErrUnexpectedEOF
	}
	gr.buffer = uint32(gr.data[gr.pos])
	gr.pos++
	gr.bufferSize = 8
	return nil
}
