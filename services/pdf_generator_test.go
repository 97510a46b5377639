package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRenderPDFRejectsUnknownPaperSize(t *testing.T) {
	_, err := RenderPDF(context.Background(), "<html></html>", "A4")
	assert.ErrorContains(t, err, "unsupported paper size")
}

func TestPaperSizesAreCourtStock(t *testing.T) {
	assert.Equal(t, 11.0, paperSizes[PaperLetter].height)
	assert.Equal(t, 14.0, paperSizes[PaperLegal].height)
	assert.Equal(t, 8.5, paperSizes[PaperLetter].width)
}

// Guards the settle delay staying a wall-clock pause rather than an
// untyped nanosecond count.
func TestRenderSettleDuration(t *testing.T) {
	assert.GreaterOrEqual(t, renderSettle, 10*time.Millisecond)
}
