// Inspect a JPEG-LS stream and print its marker structure.
// Usage: jpegls-inspect <file.jls>

package main

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/cocosip/go-jpegls/jpeg/common"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintf(os.Stderr, "Usage: %s <file.jls>\n", os.Args[0])
		os.Exit(1)
	}

	data, err := os.ReadFile(os.Args[1])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to read file: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("File: %s\n", os.Args[1])
	fmt.Printf("Size: %d bytes\n\n", len(data))

	if err := inspect(data); err != nil {
		fmt.Fprintf(os.Stderr, "Inspect failed: %v\n", err)
		os.Exit(1)
	}
}

func inspect(data []byte) error {
	reader := common.NewReader(bytes.NewReader(data))

	marker, err := reader.ReadMarker()
	if err != nil {
		return err
	}
	if marker != common.MarkerSOI {
		return fmt.Errorf("first marker 0x%04X is not SOI", marker)
	}
	fmt.Printf("%-6s start of image\n", "SOI")

	for {
		marker, err := reader.ReadMarker()
		if err != nil {
			if err == io.EOF {
				return fmt.Errorf("stream ends without EOI")
			}
			return err
		}

		switch marker {
		case common.MarkerSOF55:
			seg, err := reader.ReadSegment()
			if err != nil {
				return err
			}
			if len(seg) < 6 {
				return fmt.Errorf("SOF55 segment too short: %d bytes", len(seg))
			}
			fmt.Printf("%-6s precision=%d height=%d width=%d components=%d\n", "SOF55",
				seg[0], int(seg[1])<<8|int(seg[2]), int(seg[3])<<8|int(seg[4]), seg[5])

		case common.MarkerLSE:
			seg, err := reader.ReadSegment()
			if err != nil {
				return err
			}
			if len(seg) == 11 && seg[0] == 1 {
				fmt.Printf("%-6s maxval=%d t1=%d t2=%d t3=%d reset=%d\n", "LSE",
					int(seg[1])<<8|int(seg[2]), int(seg[3])<<8|int(seg[4]),
					int(seg[5])<<8|int(seg[6]), int(seg[7])<<8|int(seg[8]),
					int(seg[9])<<8|int(seg[10]))
			} else {
				fmt.Printf("%-6s id=%d (%d bytes)\n", "LSE", seg[0], len(seg))
			}

		case common.MarkerSOS:
			seg, err := reader.ReadSegment()
			if err != nil {
				return err
			}
			if len(seg) < 4 {
				return fmt.Errorf("SOS segment too short: %d bytes", len(seg))
			}
			fmt.Printf("%-6s components=%d near=%d interleave=%d\n", "SOS",
				seg[0], seg[len(seg)-3], seg[len(seg)-2])

			scanBytes, err := skipScan(reader)
			if err != nil {
				return err
			}
			fmt.Printf("%-6s %d entropy-coded bytes\n", "scan", scanBytes)
			fmt.Printf("%-6s end of image\n", "EOI")
			return nil

		case common.MarkerEOI:
			return fmt.Errorf("EOI before scan data")

		default:
			if !common.HasLength(marker) {
				return fmt.Errorf("unexpected marker 0x%04X", marker)
			}
			seg, err := reader.ReadSegment()
			if err != nil {
				return err
			}
			fmt.Printf("0x%04X segment (%d bytes)\n", marker, len(seg))
		}
	}
}

// skipScan walks the entropy-coded data up to EOI and returns the byte
// count, stuffing included.
func skipScan(reader *common.Reader) (int, error) {
	count := 0
	for {
		b, err := reader.ReadByte()
		if err != nil {
			return 0, fmt.Errorf("scan data truncated after %d bytes", count)
		}
		if b != 0xFF {
			count++
			continue
		}

		next, err := reader.ReadByte()
		if err != nil {
			return 0, fmt.Errorf("scan data truncated after %d bytes", count)
		}
		if next == 0x00 {
			count += 2
			continue
		}
		if uint16(0xFF00)|uint16(next) == common.MarkerEOI {
			return count, nil
		}
		return 0, fmt.Errorf("unexpected marker 0xFF%02X in scan data", next)
	}
}
