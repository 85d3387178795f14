package pdfgen

// Page geometry for report-style documents and the mapping coordinate
// conversion. Units are PDF points.
const (
	DefaultPageWidth  = 600.0
	DefaultPageHeight = 800.0

	TitleFontSize = 24.0
	FontSize      = 12.0
	LineHeight    = 30.0

	TopMargin    = 50.0
	BottomMargin = 50.0
	LabelX       = 50.0
	ValueX       = 200.0

	// BaselineOffset shifts a canvas anchor down to the text baseline.
	BaselineOffset = FontSize
)

// CanvasToPage converts a canvas y coordinate (top-left origin, growing
// down) to a PDF baseline y (bottom-left origin, growing up) on a page of
// the given height.
func CanvasToPage(pageHeight float64, canvasY int) float64 {
	return pageHeight - float64(canvasY) - BaselineOffset
}
