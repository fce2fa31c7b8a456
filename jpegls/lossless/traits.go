package lossless

import "github.com/cocosip/go-jpegls/jpegls/common"

// Default threshold basis values and reset interval (ISO/IEC 14495-1, A.2.1)
const (
	defaultThreshold1 = 3
	defaultThreshold2 = 7
	defaultThreshold3 = 21

	// DefaultResetThreshold is the default RESET interval
	DefaultResetThreshold = 64
)

// CodingParameters holds the derived JPEG-LS coding parameters
// (ISO/IEC 14495-1, A.2.1 and C.2.4.1.1.1).
type CodingParameters struct {
	Range int
	Bpp   int
	Qbpp  int
	Limit int
	Reset int
	T1    int
	T2    int
	T3    int
}

// ComputeCodingParameters derives RANGE, bpp, qbpp, LIMIT and the default
// thresholds for the given MAXVAL and NEAR. A reset of 0 selects the
// default interval.
func ComputeCodingParameters(maxVal, near, reset int) CodingParameters {
	if reset <= 0 {
		reset = DefaultResetThreshold
	}

	range_ := (maxVal+2*near)/(2*near+1) + 1
	bpp := max(2, ceilLog2(maxVal+1))
	qbpp := ceilLog2(range_)
	limit := 2 * (bpp + max(8, bpp))
	t1, t2, t3 := defaultThresholds(maxVal, near)

	return CodingParameters{
		Range: range_,
		Bpp:   bpp,
		Qbpp:  qbpp,
		Limit: limit,
		Reset: reset,
		T1:    t1,
		T2:    t2,
		T3:    t3,
	}
}

// defaultThresholds computes the default T1/T2/T3 (C.2.4.1.1.1).
func defaultThresholds(maxVal, near int) (int, int, int) {
	if factor := (min(maxVal, 4095) + 128) / 256; factor >= 1 {
		t1 := clampThreshold(factor*(defaultThreshold1-2)+2+3*near, near+1, maxVal)
		t2 := clampThreshold(factor*(defaultThreshold2-3)+3+5*near, t1, maxVal)
		t3 := clampThreshold(factor*(defaultThreshold3-4)+4+7*near, t2, maxVal)
		return t1, t2, t3
	}

	factor := 256 / (maxVal + 1)
	t1 := clampThreshold(max(2, defaultThreshold1/factor+3*near), near+1, maxVal)
	t2 := clampThreshold(max(3, defaultThreshold2/factor+5*near), t1, maxVal)
	t3 := clampThreshold(max(4, defaultThreshold3/factor+7*near), t2, maxVal)
	return t1, t2, t3
}

// clampThreshold falls back to the lower bound when v is out of range
func clampThreshold(v, low, high int) int {
	if v < low || v > high {
		return low
	}
	return v
}

// ceilLog2 returns the smallest k with 2^k >= n
func ceilLog2(n int) int {
	k := 0
	for (1 << uint(k)) < n {
		k++
	}
	return k
}

// Traits captures the derived coding parameters for one scan
type Traits struct {
	MaxVal int
	Near   int
	Range  int
	Bpp    int
	Qbpp   int
	Limit  int
	Reset  int
	T1     int
	T2     int
	T3     int
}

// NewTraits computes derived parameters for MAXVAL and NEAR.
// A reset of 0 selects the default interval.
func NewTraits(maxVal, near, reset int) Traits {
	params := ComputeCodingParameters(maxVal, near, reset)
	return Traits{
		MaxVal: maxVal,
		Near:   near,
		Range:  params.Range,
		Bpp:    params.Bpp,
		Qbpp:   params.Qbpp,
		Limit:  params.Limit,
		Reset:  params.Reset,
		T1:     params.T1,
		T2:     params.T2,
		T3:     params.T3,
	}
}

// IsNear reports whether two samples are within NEAR of each other
func (t Traits) IsNear(a, b int) bool {
	return common.Abs(a-b) <= t.Near
}

// CorrectPrediction clamps a bias-corrected prediction to [0, MaxVal]
func (t Traits) CorrectPrediction(predicted int) int {
	if predicted < 0 {
		return 0
	}
	if predicted > t.MaxVal {
		return t.MaxVal
	}
	return predicted
}

// ModuloRange reduces a prediction error to the interval
// [-RANGE/2, ceil(RANGE/2)-1] (A.4.5).
func (t Traits) ModuloRange(errValue int) int {
	if errValue < 0 {
		errValue += t.Range
	}
	if errValue >= (t.Range+1)/2 {
		errValue -= t.Range
	}
	return errValue
}

// ComputeReconstructedSample reverses ModuloRange and clamps the
// reconstruction to [0, MaxVal] (A.4.5, A.8).
func (t Traits) ComputeReconstructedSample(predicted, errValue int) int {
	reconstructed := predicted + errValue
	if reconstructed < -t.Near {
		reconstructed += t.Range * (2*t.Near + 1)
	} else if reconstructed > t.MaxVal+t.Near {
		reconstructed -= t.Range * (2*t.Near + 1)
	}
	if reconstructed < 0 {
		reconstructed = 0
	} else if reconstructed > t.MaxVal {
		reconstructed = t.MaxVal
	}
	return reconstructed
}
