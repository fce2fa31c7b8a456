package benchmark

import (
	"fmt"
	"io"

	"github.com/cocosip/go-jpegls/codec"
)

// throughput converts a per-iteration latency in milliseconds into MB/s
// over the raw image size.
func throughput(rawMiB, ms float64) float64 {
	return rawMiB / (ms / 1000.0)
}

func printHeader(w io.Writer, frame codec.FrameDescriptor, rawBytes, loopCount int) {
	fmt.Fprintf(w, "=== JPEG-LS 8K 12-Bit Mono Benchmark ===\n")
	if frame.ComponentCount == 1 {
		fmt.Fprintf(w, "Image: %dx%d %d-bit mono\n", frame.Width, frame.Height, frame.BitsPerSample)
	} else {
		fmt.Fprintf(w, "Image: %dx%d %d-bit %d components\n",
			frame.Width, frame.Height, frame.BitsPerSample, frame.ComponentCount)
	}
	fmt.Fprintf(w, "Pixel count: %d\n", frame.Width*frame.Height)
	fmt.Fprintf(w, "Raw size: %d MiB\n", rawBytes/(1024*1024))
	fmt.Fprintf(w, "Loop count: %d\n\n", loopCount)
}

func printEncodeResults(w io.Writer, encodedSize, rawBytes int, stats Stats, rawMiB float64) {
	fmt.Fprintf(w, "  Encoded size: %d bytes (%.1f%%)\n",
		encodedSize, float64(encodedSize)*100.0/float64(rawBytes))
	fmt.Fprintf(w, "  Compression ratio: %.2f:1\n", float64(rawBytes)/float64(encodedSize))
	printPhase(w, "Encode", stats, rawMiB)
}

func printDecodeResults(w io.Writer, stats Stats, rawMiB float64) {
	printPhase(w, "Decode", stats, rawMiB)
}

func printPhase(w io.Writer, phase string, stats Stats, rawMiB float64) {
	fmt.Fprintf(w, "  %s min:    %.3f ms (%.1f MB/s)\n", phase, stats.Min, throughput(rawMiB, stats.Min))
	fmt.Fprintf(w, "  %s median: %.3f ms (%.1f MB/s)\n", phase, stats.Median, throughput(rawMiB, stats.Median))
	fmt.Fprintf(w, "  %s mean:   %.3f ms (%.1f MB/s)\n\n", phase, stats.Mean, throughput(rawMiB, stats.Mean))
}

func printVerification(w io.Writer, result VerificationResult) {
	fmt.Fprintf(w, "Verifying round-trip correctness... ")
	if result.Passed {
		fmt.Fprintf(w, "PASS\n")
		return
	}

	fmt.Fprintf(w, "FAIL\n")
	if result.LengthMismatch {
		fmt.Fprintf(w, "  Length mismatch: expected %d samples, got %d\n",
			result.OriginalLength, result.DecodedLength)
		return
	}
	for _, m := range result.FirstMismatches {
		fmt.Fprintf(w, "  Mismatch at index %d: expected %d, got %d\n", m.Index, m.Expected, m.Actual)
	}
	fmt.Fprintf(w, "  Total mismatches: %d / %d\n", result.MismatchCount, result.OriginalLength)
}

// printSummary emits the single machine-parsable line. The five key=value
// tokens and their order are a stable contract for downstream scrapers.
func printSummary(w io.Writer, encode, decode Stats, rawMiB, ratio float64) {
	fmt.Fprintf(w, "\nSUMMARY: encode_median_ms=%.3f decode_median_ms=%.3f encode_MB_s=%.1f decode_MB_s=%.1f ratio=%.2f\n",
		encode.Median, decode.Median,
		throughput(rawMiB, encode.Median), throughput(rawMiB, decode.Median), ratio)
}
