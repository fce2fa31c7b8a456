package lossless

import "github.com/cocosip/go-jpegls/jpegls/common"

const (
	// Number of regular mode contexts after sign folding: (4*9+4)*9+4 = 364,
	// plus the zero context used only through run mode.
	contextCount = 365

	// Bias correction bounds (A.2.1)
	maxC = 127
	minC = -128

	// Cap for the Golomb coding parameter
	maxGolombK = 16
)

// initialAValue is the starting value for the error magnitude
// accumulator (A.2.1, A.8).
func initialAValue(range_ int) int {
	return max(2, (range_+32)/64)
}

// Context holds the statistical model of one regular mode context
type Context struct {
	A int // running sum of absolute prediction errors
	B int // bias accumulator
	C int // prediction correction value
	N int // occurrence count
}

// NewContext creates a context with the initial values of A.8
func NewContext(range_ int) Context {
	return Context{
		A: initialAValue(range_),
		N: 1,
	}
}

// ComputeGolombParameter computes the Golomb coding parameter k for the
// current statistics (A.10): the smallest k with N << k >= A, capped so
// bit operations stay in range.
func (ctx *Context) ComputeGolombParameter() int {
	k := 0
	for k < maxGolombK && (ctx.N<<uint(k)) < ctx.A {
		k++
	}
	return k
}

// GetErrorCorrection returns the error mapping correction for k == 0 in
// lossless mode: -1 when 2*B + N - 1 is negative, 0 otherwise. The
// encoder XORs it into the error value before mapping and the decoder
// after unmapping.
func (ctx *Context) GetErrorCorrection(k, near int) int {
	if k != 0 || near != 0 {
		return 0
	}
	return BitwiseSign(2*ctx.B + ctx.N - 1)
}

// UpdateContext accumulates the coded error value into the context
// statistics (A.12) and updates the prediction bias (A.13).
func (ctx *Context) UpdateContext(errValue, near, reset int) {
	ctx.A += common.Abs(errValue)
	ctx.B += errValue * (2*near + 1)

	if ctx.N == reset {
		ctx.A >>= 1
		ctx.B >>= 1
		ctx.N >>= 1
	}
	ctx.N++

	if ctx.B+ctx.N <= 0 {
		ctx.B += ctx.N
		if ctx.B <= -ctx.N {
			ctx.B = -ctx.N + 1
		}
		if ctx.C > minC {
			ctx.C--
		}
	} else if ctx.B > 0 {
		ctx.B -= ctx.N
		if ctx.B > 0 {
			ctx.B = 0
		}
		if ctx.C < maxC {
			ctx.C++
		}
	}
}

// ContextTable holds the regular mode contexts for one component scan
type ContextTable struct {
	contexts []Context
}

// NewContextTable creates the regular mode contexts for the given range
func NewContextTable(range_ int) *ContextTable {
	contexts := make([]Context, contextCount)
	for i := range contexts {
		contexts[i] = NewContext(range_)
	}
	return &ContextTable{contexts: contexts}
}

// GetContext returns the context for a sign-folded context ID
func (ct *ContextTable) GetContext(id int) *Context {
	return &ct.contexts[id]
}

// MapErrorValue maps a signed error value to a non-negative value for
// Golomb coding (A.5.2).
func MapErrorValue(errValue int) int {
	if errValue >= 0 {
		return 2 * errValue
	}
	return -2*errValue - 1
}

// UnmapErrorValue is the inverse of MapErrorValue
func UnmapErrorValue(mappedError int) int {
	if mappedError&1 == 0 {
		return mappedError >> 1
	}
	return -((mappedError + 1) >> 1)
}
