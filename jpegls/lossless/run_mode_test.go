package lossless

import (
	"testing"

	jlscommon "github.com/cocosip/go-jpegls/jpegls/common"
)

func TestRunLengthCodeTable(t *testing.T) {
	if len(J) != 32 {
		t.Fatalf("len(J) = %d, want 32", len(J))
	}
	checks := map[int]int{0: 0, 3: 0, 4: 1, 8: 2, 16: 4, 18: 5, 24: 8, 31: 15}
	for i, want := range checks {
		if J[i] != want {
			t.Errorf("J[%d] = %d, want %d", i, J[i], want)
		}
	}
}

func TestNewRunModeContext(t *testing.T) {
	ctx := NewRunModeContext(1, 256)
	if ctx.runInterruptionType != 1 || ctx.A != 4 || ctx.N != 1 || ctx.NN != 0 {
		t.Errorf("NewRunModeContext(1, 256) = %+v", ctx)
	}
}

func TestRunModeGolombCode(t *testing.T) {
	if k := NewRunModeContext(0, 256).GetGolombCode(); k != 2 {
		t.Errorf("fresh type 0 k = %d, want 2", k)
	}
	if k := NewRunModeContext(1, 256).GetGolombCode(); k != 2 {
		t.Errorf("fresh type 1 k = %d, want 2", k)
	}
}

// TestRunInterruptionErrorInverse drives both interruption contexts
// through evolving adaptive state and verifies the decoder-side error
// computation inverts the encoder-side mapping at every step.
func TestRunInterruptionErrorInverse(t *testing.T) {
	errValues := []int{1, -1, 2, -2, 5, -5, 127, -128, 1, 1, -3, 30, -30, 4, -4}

	for _, runType := range []int{0, 1} {
		ctx := NewRunModeContext(runType, 256)
		for step, e := range errValues {
			if runType == 0 && step == 0 {
				e = 0 // type 0 can carry a zero error
			}

			k := ctx.GetGolombCode()
			eMapped := 2*jlscommon.Abs(e) - ctx.runInterruptionType
			if ctx.ComputeMap(e, k) {
				eMapped--
			}
			if eMapped < 0 {
				t.Fatalf("type %d step %d: eMapped = %d for e = %d", runType, step, eMapped, e)
			}

			got := ctx.ComputeErrorValue(eMapped+ctx.runInterruptionType, k)
			if got != e {
				t.Fatalf("type %d step %d: decoded %d, want %d (k=%d, state %+v)",
					runType, step, got, e, k, ctx)
			}

			ctx.UpdateVariables(e, eMapped, 64)
		}
	}
}

func TestRunModeUpdateVariables(t *testing.T) {
	ctx := NewRunModeContext(0, 256)

	ctx.UpdateVariables(-3, 5, 64)
	if ctx.NN != 1 {
		t.Errorf("NN = %d after negative error, want 1", ctx.NN)
	}
	if ctx.A != 7 { // 4 + (5+1)>>1
		t.Errorf("A = %d, want 7", ctx.A)
	}
	if ctx.N != 2 {
		t.Errorf("N = %d, want 2", ctx.N)
	}

	ctx.N = 64
	ctx.NN = 10
	ctx.A = 80
	ctx.UpdateVariables(1, 2, 64)
	if ctx.A != 40 || ctx.N != 33 || ctx.NN != 5 {
		t.Errorf("after reset: %+v, want {A:40 N:33 NN:5}", ctx)
	}
}
