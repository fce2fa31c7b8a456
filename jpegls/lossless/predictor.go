package lossless

// Predict computes the MED (Median Edge Detection) prediction for the
// current sample from its neighbors:
// a = left, b = above, c = above-left.
func Predict(a, b, c int) int {
	if c >= max(a, b) {
		return min(a, b)
	}
	if c <= min(a, b) {
		return max(a, b)
	}
	return a + b - c
}

// GradientQuantizer quantizes local gradients against the active
// thresholds T1/T2/T3 and NEAR (A.3.3).
type GradientQuantizer struct {
	T1   int
	T2   int
	T3   int
	Near int
}

// NewGradientQuantizer creates a quantizer with thresholds and NEAR
func NewGradientQuantizer(t1, t2, t3, near int) *GradientQuantizer {
	return &GradientQuantizer{
		T1:   t1,
		T2:   t2,
		T3:   t3,
		Near: near,
	}
}

// ComputeContext quantizes the three local gradients of the neighborhood.
// Returns the gradient quantization values (Q1, Q2, Q3).
func (g *GradientQuantizer) ComputeContext(a, b, c, d int) (int, int, int) {
	q1 := g.quantizeGradient(d - b)
	q2 := g.quantizeGradient(b - c)
	q3 := g.quantizeGradient(c - a)
	return q1, q2, q3
}

// quantizeGradient maps a gradient difference to a bin in -4..4
func (g *GradientQuantizer) quantizeGradient(d int) int {
	switch {
	case d <= -g.T3:
		return -4
	case d <= -g.T2:
		return -3
	case d <= -g.T1:
		return -2
	case d < -g.Near:
		return -1
	case d <= g.Near:
		return 0
	case d < g.T1:
		return 1
	case d < g.T2:
		return 2
	case d < g.T3:
		return 3
	default:
		return 4
	}
}

// ComputeContextID folds (Q1, Q2, Q3) into a single context ID:
// (q1*9 + q2)*9 + q3. The result may be negative; sign symmetry maps
// it onto the 365 regular mode contexts.
func ComputeContextID(q1, q2, q3 int) int {
	return (q1*9+q2)*9 + q3
}

// BitwiseSign returns -1 if i is negative, 0 otherwise
func BitwiseSign(i int) int {
	if i < 0 {
		return -1
	}
	return 0
}

// ApplySign negates i when sign is -1 and leaves it unchanged when
// sign is 0: (sign ^ i) - sign.
func ApplySign(i, sign int) int {
	return (sign ^ i) - sign
}

// neighbors returns the causal neighborhood of the sample at (x, y) for
// one component in an interleaved sample slice: a = left, b = above,
// c = above-left, d = above-right. Positions outside the image read as
// zero; d is also zero in the last column.
func neighbors(samples []uint16, width, nc, comp, x, y int) (a, b, c, d int) {
	if x > 0 {
		a = int(samples[(y*width+x-1)*nc+comp])
	}
	if y > 0 {
		b = int(samples[((y-1)*width+x)*nc+comp])
		if x > 0 {
			c = int(samples[((y-1)*width+x-1)*nc+comp])
		}
		if x+1 < width {
			d = int(samples[((y-1)*width+x+1)*nc+comp])
		}
	}
	return a, b, c, d
}
