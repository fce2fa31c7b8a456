package lossless

import "testing"

func TestComputeCodingParameters(t *testing.T) {
	tests := []struct {
		name   string
		maxVal int
		want   CodingParameters
	}{
		{
			name:   "8-bit",
			maxVal: 255,
			want:   CodingParameters{Range: 256, Bpp: 8, Qbpp: 8, Limit: 32, Reset: 64, T1: 3, T2: 7, T3: 21},
		},
		{
			name:   "12-bit",
			maxVal: 4095,
			want:   CodingParameters{Range: 4096, Bpp: 12, Qbpp: 12, Limit: 48, Reset: 64, T1: 18, T2: 67, T3: 276},
		},
		{
			name:   "16-bit",
			maxVal: 65535,
			want:   CodingParameters{Range: 65536, Bpp: 16, Qbpp: 16, Limit: 64, Reset: 64, T1: 18, T2: 67, T3: 276},
		},
		{
			name:   "2-bit",
			maxVal: 3,
			want:   CodingParameters{Range: 4, Bpp: 2, Qbpp: 2, Limit: 20, Reset: 64, T1: 2, T2: 3, T3: 3},
		},
		{
			name:   "5-bit",
			maxVal: 31,
			want:   CodingParameters{Range: 32, Bpp: 5, Qbpp: 5, Limit: 26, Reset: 64, T1: 2, T2: 3, T3: 4},
		},
		{
			name:   "7-bit",
			maxVal: 127,
			want:   CodingParameters{Range: 128, Bpp: 7, Qbpp: 7, Limit: 30, Reset: 64, T1: 2, T2: 3, T3: 10},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeCodingParameters(tt.maxVal, 0, 0)
			if got != tt.want {
				t.Errorf("ComputeCodingParameters(%d, 0, 0) = %+v, want %+v", tt.maxVal, got, tt.want)
			}
		})
	}
}

func TestComputeCodingParametersCustomReset(t *testing.T) {
	got := ComputeCodingParameters(255, 0, 128)
	if got.Reset != 128 {
		t.Errorf("Reset = %d, want 128", got.Reset)
	}
}

// TestModuloRangeReconstruction verifies that the error reduction and the
// sample reconstruction are exact inverses for every predictor/sample pair.
func TestModuloRangeReconstruction(t *testing.T) {
	for _, maxVal := range []int{3, 31, 255} {
		traits := NewTraits(maxVal, 0, 0)
		for predicted := 0; predicted <= maxVal; predicted++ {
			for x := 0; x <= maxVal; x++ {
				errValue := traits.ModuloRange(x - predicted)
				recon := traits.ComputeReconstructedSample(predicted, errValue)
				if recon != x {
					t.Fatalf("maxVal=%d predicted=%d x=%d: errValue=%d recon=%d",
						maxVal, predicted, x, errValue, recon)
				}
			}
		}
	}
}

func TestModuloRangeBounds(t *testing.T) {
	traits := NewTraits(255, 0, 0)
	for diff := -255; diff <= 255; diff++ {
		errValue := traits.ModuloRange(diff)
		if errValue < -128 || errValue > 127 {
			t.Errorf("ModuloRange(%d) = %d, outside [-128, 127]", diff, errValue)
		}
	}
}

func TestCorrectPrediction(t *testing.T) {
	traits := NewTraits(255, 0, 0)
	tests := []struct{ in, want int }{
		{-10, 0},
		{0, 0},
		{128, 128},
		{255, 255},
		{300, 255},
	}
	for _, tt := range tests {
		if got := traits.CorrectPrediction(tt.in); got != tt.want {
			t.Errorf("CorrectPrediction(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestIsNearLossless(t *testing.T) {
	traits := NewTraits(255, 0, 0)
	if !traits.IsNear(7, 7) {
		t.Error("IsNear(7, 7) = false, want true")
	}
	if traits.IsNear(7, 8) {
		t.Error("IsNear(7, 8) = true, want false")
	}
}
