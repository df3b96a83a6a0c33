package gochart

import (
	"bytes"
	"image"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSVGContext(t *testing.T) {
	var buf bytes.Buffer
	c := NewSVGContext(&buf, 200, 100, nil)
	assert.Equal(t, image.Rect(0, 0, 200, 100), c.Bounds())

	c.DrawLine(image.Pt(0, 50), image.Pt(200, 50), NewPen(ColorRed, 2).SetStyle(PenDash))
	c.DrawLine(image.Pt(0, 0), image.Pt(10, 10), NullPen)
	c.DrawRect(image.Rect(10, 10, 30, 40), NullPen, ColorBlue)
	c.DrawRect(image.Rect(0, 0, 5, 5), NullPen, ColorTransparent)
	c.DrawPolygon([]image.Point{{0, 0}, {10, 0}, {5, 8}}, NewPen(ColorBlack, 1), ColorTransparent)
	c.DrawText("Axis", NewFont().SetBold(true), 1, image.Pt(20, 20), OrientationHorizontal)
	c.DrawText("Up", nil, 1, image.Pt(50, 20), OrientationVertical)
	assert.NoError(t, c.Close())

	out := buf.String()
	assert.True(t, strings.HasPrefix(strings.TrimSpace(out), "<?xml"))
	assert.Equal(t, 1, strings.Count(out, "<line"))
	assert.Contains(t, out, "stroke:#FF0000")
	assert.Contains(t, out, "stroke-dasharray:8,6")
	assert.Equal(t, 1, strings.Count(out, "<rect"))
	assert.Contains(t, out, "fill:#0000FF")
	assert.Contains(t, out, "<polygon")
	assert.Contains(t, out, ">Axis</text>")
	assert.Contains(t, out, "font-weight:bold")
	assert.Contains(t, out, "rotate(-90)")
	assert.True(t, strings.HasSuffix(strings.TrimSpace(out), "</svg>"))
}

func TestSVGStyles(t *testing.T) {
	assert.Equal(t, "stroke:none", strokeStyle(NullPen))
	assert.Equal(t, "fill:none", fillStyle(ColorTransparent))
	assert.Equal(t, "fill:#FFFFFF;fill-opacity:0.502", fillStyle(ChangeOpacity(ColorWhite, 0x80)))
}

func TestSVGContextCloseReportsWriteErrors(t *testing.T) {
	c := NewSVGContext(failingWriter{io.ErrClosedPipe}, 10, 10, nil)
	c.DrawRect(image.Rect(0, 0, 5, 5), NullPen, ColorBlue)
	assert.ErrorIs(t, c.Close(), io.ErrClosedPipe)
}
