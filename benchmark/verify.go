package benchmark

// maxReportedMismatches caps the mismatch detail kept for diagnostics.
// Counting continues past the cap so the total stays exact.
const maxReportedMismatches = 5

// Mismatch records one position where the decoded image differs from the
// original.
type Mismatch struct {
	Index    int
	Expected uint16
	Actual   uint16
}

// VerificationResult is the outcome of a round-trip comparison
type VerificationResult struct {
	Passed          bool
	LengthMismatch  bool
	OriginalLength  int
	DecodedLength   int
	MismatchCount   int
	FirstMismatches []Mismatch
}

// VerifyRoundTrip compares decoded against original element-wise. A length
// difference fails the verification outright; no positions are compared.
func VerifyRoundTrip(original, decoded []uint16) VerificationResult {
	result := VerificationResult{
		OriginalLength: len(original),
		DecodedLength:  len(decoded),
	}
	if len(original) != len(decoded) {
		result.LengthMismatch = true
		return result
	}

	result.Passed = true
	for i := range original {
		if original[i] != decoded[i] {
			result.Passed = false
			if len(result.FirstMismatches) < maxReportedMismatches {
				result.FirstMismatches = append(result.FirstMismatches, Mismatch{
					Index:    i,
					Expected: original[i],
					Actual:   decoded[i],
				})
			}
			result.MismatchCount++
		}
	}
	return result
}
