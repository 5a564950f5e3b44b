package chart

import (
	"image"
	"image/color"

	"github.com/aThornes/instagram-stats/internal/model"
)

// layer is one stacked segment of a month's bar.
type layer struct {
	label string
	col   color.RGBA
	value func(model.MonthlyStat) int
}

var layers = []layer{
	{"Messages", colorMessages, func(s model.MonthlyStat) int { return s.Messages }},
	{"Reels", colorReels, func(s model.MonthlyStat) int { return s.Reels }},
	{"Reactions", colorReactions, func(s model.MonthlyStat) int { return s.Reactions }},
	{"Calls", colorCalls, func(s model.MonthlyStat) int { return s.CallCount }},
}

const gridLines = 4

// barSlot returns the horizontal extent of bar i of n within area, spanning its full
// height.
func barSlot(area image.Rectangle, n, i int) image.Rectangle {
	slot := area.Dx() / n
	width := max(slot*7/10, 1)
	x := area.Min.X + i*slot + (slot-width)/2
	return image.Rect(x, area.Min.Y, x+width, area.Max.Y)
}

type barOptions struct {
	label      func(model.MonthlyStat) string
	labelEvery int
	totals     bool
}

// stackedBars draws one stacked bar per month, bottom-up in layer order, over a
// horizontal grid scaled to the busiest month.
func (c *canvas) stackedBars(area image.Rectangle, months []model.MonthlyStat, opt barOptions) {
	if len(months) == 0 {
		return
	}

	peak := 0
	for _, st := range months {
		peak = max(peak, st.Total())
	}
	if peak == 0 {
		peak = 1
	}
	scale := float64(area.Dy()) / float64(peak)

	for g := 0; g <= gridLines; g++ {
		y := area.Max.Y - area.Dy()*g/gridLines
		c.fill(image.Rect(area.Min.X, y, area.Max.X, y+1), colorGrid)
		c.text(formatCount(float64(peak*g)/gridLines), area.Min.X-10, y+4, 1, colorMuted, alignRight)
	}

	every := max(opt.labelEvery, 1)
	for i, st := range months {
		bar := barSlot(area, len(months), i)
		y := area.Max.Y
		for _, l := range layers {
			h := int(float64(l.value(st)) * scale)
			if h <= 0 {
				continue
			}
			c.fill(image.Rect(bar.Min.X, y-h, bar.Max.X, y), l.col)
			y -= h
		}

		mid := (bar.Min.X + bar.Max.X) / 2
		if opt.totals && st.Total() > 0 {
			c.text(formatCount(float64(st.Total())), mid, y-6, 1, colorText, alignCenter)
		}
		if opt.label != nil && i%every == 0 {
			c.text(opt.label(st), mid, area.Max.Y+20, 1, colorMuted, alignCenter)
		}
	}
}

// legend draws a colour key for every layer starting at x with baseline y.
func (c *canvas) legend(x, y int) {
	for _, l := range layers {
		c.fill(image.Rect(x, y-12, x+16, y+4), l.col)
		c.text(l.label, x+24, y, 2, colorText, alignLeft)
		x += 24 + textWidth(l.label, 2) + 40
	}
}

// card draws a labelled figure on a raised panel.
func (c *canvas) card(r image.Rectangle, label, value string) {
	c.fill(r, colorSurface)
	mid := (r.Min.X + r.Max.X) / 2
	c.text(label, mid, r.Min.Y+30, 1, colorMuted, alignCenter)
	c.text(value, mid, r.Min.Y+75, 3, colorText, alignCenter)
}
