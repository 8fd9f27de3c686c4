package renderer

import (
	"math"
	"testing"
)

func TestUnitConversionRoundTrip(t *testing.T) {
	for _, pt := range []float64{1, 12, 28, 50, 72} {
		got := pt * PtToMm * MmToPt
		if math.Abs(got-pt) > 1e-9 {
			t.Errorf("%vpt -> mm -> pt = %v", pt, got)
		}
	}
}

func TestPointIsAboutAThirdOfAMillimeter(t *testing.T) {
	// 72 points to the inch, 25.4mm to the inch.
	if math.Abs(PtToMm-25.4/72.0) > 1e-4 {
		t.Errorf("PtToMm = %v, want about %v", PtToMm, 25.4/72.0)
	}
}
