package pdfgen

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanvasToPage(t *testing.T) {
	// Canvas y grows down from the top edge, PDF y grows up from the
	// bottom, and the anchor shifts to the text baseline.
	assert.Equal(t, 88.0, CanvasToPage(800, 700))
	assert.Equal(t, 800.0-BaselineOffset, CanvasToPage(800, 0))
	assert.Equal(t, 238.0, CanvasToPage(250, 0))
}

func TestCanvasToPageRoundTrip(t *testing.T) {
	for _, canvasY := range []int{0, 100, 400, 788} {
		pdfY := CanvasToPage(800, canvasY)
		back := 800 - pdfY - BaselineOffset
		assert.Equal(t, float64(canvasY), back)
	}
}
