package lossless

// J holds the run length code order per run index
// (ISO/IEC 14495-1, A.2.1, initialization step 3).
var J = [32]int{
	0, 0, 0, 0, 1, 1, 1, 1, 2, 2, 2, 2, 3, 3, 3, 3,
	4, 4, 5, 5, 6, 6, 7, 7, 8, 9, 10, 11, 12, 13, 14, 15,
}

// RunModeContext holds the statistical model for one of the two run
// interruption contexts (type 1 when the sample above matches the run
// value within NEAR, type 0 otherwise).
type RunModeContext struct {
	runInterruptionType int
	A                   int // running sum of mapped error magnitudes
	N                   int // occurrence count
	NN                  int // negative error count
}

// NewRunModeContext creates a run interruption context with the initial
// values of A.8.
func NewRunModeContext(runInterruptionType, range_ int) *RunModeContext {
	return &RunModeContext{
		runInterruptionType: runInterruptionType,
		A:                   initialAValue(range_),
		N:                   1,
	}
}

// GetGolombCode computes the Golomb parameter for the run interruption
// sample (A.19, step 1).
func (ctx *RunModeContext) GetGolombCode() int {
	temp := ctx.A + (ctx.N>>1)*ctx.runInterruptionType
	nTest := ctx.N
	k := 0
	for nTest < temp {
		nTest <<= 1
		k++
		if k > 32 {
			break
		}
	}
	return k
}

// ComputeMap computes the map flag for error value mapping (A.21)
func (ctx *RunModeContext) ComputeMap(errValue, k int) bool {
	if k == 0 && errValue > 0 && 2*ctx.NN < ctx.N {
		return true
	}
	if errValue < 0 && 2*ctx.NN >= ctx.N {
		return true
	}
	if errValue < 0 && k != 0 {
		return true
	}
	return false
}

// ComputeErrorValue reconstructs the signed error value from the decoded
// mapped value plus the interruption type (inverse of A.21).
func (ctx *RunModeContext) ComputeErrorValue(temp, k int) int {
	mapBit := temp & 1
	errValueAbs := (temp + mapBit) / 2

	if (k != 0 || 2*ctx.NN >= ctx.N) == (mapBit != 0) {
		return -errValueAbs
	}
	return errValueAbs
}

// UpdateVariables accumulates the coded run interruption sample into the
// context statistics (A.23).
func (ctx *RunModeContext) UpdateVariables(errValue, eMappedErrValue, reset int) {
	if errValue < 0 {
		ctx.NN++
	}

	ctx.A += (eMappedErrValue + 1 - ctx.runInterruptionType) >> 1

	if ctx.N == reset {
		ctx.A >>= 1
		ctx.N >>= 1
		ctx.NN >>= 1
	}
	ctx.N++
}
