package common

import "testing"

func TestAbs(t *testing.T) {
	tests := []struct{ in, want int }{
		{0, 0},
		{5, 5},
		{-5, 5},
		{-4095, 4095},
	}
	for _, tt := range tests {
		if got := Abs(tt.in); got != tt.want {
			t.Errorf("Abs(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestSign(t *testing.T) {
	if Sign(0) != 1 {
		t.Error("Sign(0) should be 1")
	}
	if Sign(42) != 1 {
		t.Error("Sign(42) should be 1")
	}
	if Sign(-1) != -1 {
		t.Error("Sign(-1) should be -1")
	}
}

func TestRunIndexBounds(t *testing.T) {
	if got := IncrementRunIndex(0); got != 1 {
		t.Errorf("IncrementRunIndex(0) = %d, want 1", got)
	}
	if got := IncrementRunIndex(31); got != 31 {
		t.Errorf("IncrementRunIndex(31) = %d, want 31", got)
	}
	if got := DecrementRunIndex(1); got != 0 {
		t.Errorf("DecrementRunIndex(1) = %d, want 0", got)
	}
	if got := DecrementRunIndex(0); got != 0 {
		t.Errorf("DecrementRunIndex(0) = %d, want 0", got)
	}
}
