package common

import "testing"

func TestIsSOF(t *testing.T) {
	tests := []struct {
		marker uint16
		want   bool
	}{
		{MarkerSOF55, true},
		{MarkerSOF0, true},
		{MarkerSOF3, true},
		{MarkerSOF15, true},
		{MarkerLSE, false},
		{MarkerSOS, false},
		{MarkerSOI, false},
	}
	for _, tt := range tests {
		if got := IsSOF(tt.marker); got != tt.want {
			t.Errorf("IsSOF(0x%04X) = %v, want %v", tt.marker, got, tt.want)
		}
	}
}

func TestIsRST(t *testing.T) {
	for marker := uint16(MarkerRST0); marker <= MarkerRST7; marker++ {
		if !IsRST(marker) {
			t.Errorf("IsRST(0x%04X) = false, want true", marker)
		}
	}
	if IsRST(MarkerSOI) {
		t.Error("IsRST(SOI) = true, want false")
	}
	if IsRST(MarkerEOI) {
		t.Error("IsRST(EOI) = true, want false")
	}
}

func TestHasLength(t *testing.T) {
	tests := []struct {
		marker uint16
		want   bool
	}{
		{MarkerSOI, false},
		{MarkerEOI, false},
		{MarkerRST0, false},
		{MarkerRST7, false},
		{MarkerSOF55, true},
		{MarkerLSE, true},
		{MarkerSOS, true},
		{MarkerDRI, true},
		{MarkerAPP8, true},
		{MarkerCOM, true},
	}
	for _, tt := range tests {
		if got := HasLength(tt.marker); got != tt.want {
			t.Errorf("HasLength(0x%04X) = %v, want %v", tt.marker, got, tt.want)
		}
	}
}
