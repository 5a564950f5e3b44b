// Package chart renders monthly stats as PNG bar charts.
package chart

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"time"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

const (
	canvasWidth  = 1200
	canvasHeight = 800
)

// Flexoki Dark, matching the terminal output.
var (
	colorBg        = color.RGBA{0x10, 0x0F, 0x0F, 0xFF}
	colorSurface   = color.RGBA{0x1C, 0x1B, 0x1A, 0xFF}
	colorGrid      = color.RGBA{0x28, 0x27, 0x26, 0xFF}
	colorText      = color.RGBA{0xFF, 0xFC, 0xF0, 0xFF}
	colorMuted     = color.RGBA{0x6F, 0x6E, 0x69, 0xFF}
	colorMessages  = color.RGBA{0x43, 0x85, 0xBE, 0xFF}
	colorReels     = color.RGBA{0x8B, 0x7E, 0xC8, 0xFF}
	colorReactions = color.RGBA{0xDA, 0x70, 0x2C, 0xFF}
	colorCalls     = color.RGBA{0x87, 0x9A, 0x39, 0xFF}
)

type align int

const (
	alignLeft align = iota
	alignCenter
	alignRight
)

var face = basicfont.Face7x13

type canvas struct {
	img *image.RGBA
}

func newCanvas(w, h int) *canvas {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(colorBg), image.Point{}, draw.Src)
	return &canvas{img: img}
}

func (c *canvas) fill(r image.Rectangle, col color.Color) {
	r = r.Intersect(c.img.Bounds())
	if r.Empty() {
		return
	}
	draw.Draw(c.img, r, image.NewUniform(col), image.Point{}, draw.Src)
}

func textWidth(s string, scale int) int {
	return font.MeasureString(face, s).Ceil() * scale
}

// text draws s with its baseline at y. The bitmap font is enlarged by an integer scale
// with nearest-neighbour sampling so glyphs stay crisp.
func (c *canvas) text(s string, x, y, scale int, col color.Color, a align) {
	if s == "" {
		return
	}
	w := font.MeasureString(face, s).Ceil()
	glyphs := image.NewRGBA(image.Rect(0, 0, w, face.Height))
	d := font.Drawer{
		Dst:  glyphs,
		Src:  image.NewUniform(col),
		Face: face,
		Dot:  fixed.P(0, face.Ascent),
	}
	d.DrawString(s)

	switch a {
	case alignCenter:
		x -= w * scale / 2
	case alignRight:
		x -= w * scale
	}
	top := y - face.Ascent*scale
	dst := image.Rect(x, top, x+w*scale, top+face.Height*scale)
	xdraw.NearestNeighbor.Scale(c.img, dst, glyphs, glyphs.Bounds(), xdraw.Over, nil)
}

func (c *canvas) encode() ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, c.img); err != nil {
		return nil, fmt.Errorf("encoding png: %w", err)
	}
	return buf.Bytes(), nil
}

// formatCount abbreviates thousands for axis and bar labels.
func formatCount(n float64) string {
	if n >= 1000 {
		return fmt.Sprintf("%.1fk", n/1000)
	}
	return fmt.Sprintf("%.0f", n)
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Format("02/01/2006")
}

// formatHours renders call time compactly for stat cards, e.g. "12h 30m".
func formatHours(secs int64) string {
	h, m := secs/3600, (secs%3600)/60
	if h == 0 {
		return fmt.Sprintf("%dm", m)
	}
	return fmt.Sprintf("%dh %dm", h, m)
}
