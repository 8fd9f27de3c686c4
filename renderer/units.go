package renderer

// Layout geometry is integer typographic points. Canvas font faces are
// created in pt but report metrics in millimeters, and the PDF backend
// draws on a millimeter canvas, so both convert at their boundaries.
const (
	PtToMm = 0.352777
	MmToPt = 1.0 / PtToMm
)
