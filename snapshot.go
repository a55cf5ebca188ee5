package scribblecolor

import (
	"image"
	"image/color"
	"math"
)

// goldenAngle spaces successive hues maximally apart on the color
// wheel, so that snapshot colors for nearby label ids stay visually
// distinct rather than stepping through the wheel in a fixed order.
const goldenAngle = 137.50776405003785

// Snapshot runs Colorize and renders the result to an image.Paletted
// sized to the canvas rect, one palette entry per distinct label
// encountered. UNDEFINED renders black, IMPLICIT_SURROUNDING (before any
// WithBackgroundLabel override takes effect) renders mid-gray; every
// other label gets a deterministic, visually distinct color derived
// from its id.
func (c *Context) Snapshot(opts ...ColorizeOption) (*image.Paletted, error) {
	rects, err := c.Colorize(opts...)
	if err != nil {
		return nil, err
	}

	palette, index := buildSnapshotPalette(rects)
	img := image.NewPaletted(image.Rect(0, 0, c.rect.Width(), c.rect.Height()), palette)

	for _, lr := range rects {
		idx := index[lr.Label]
		local := lr.Rect.Translated(-c.rect.Left, -c.rect.Top)
		for y := local.Top; y <= local.Bottom; y++ {
			for x := local.Left; x <= local.Right; x++ {
				img.SetColorIndex(x, y, idx)
			}
		}
	}
	return img, nil
}

// buildSnapshotPalette collects every distinct label across rects, in
// first-appearance order, and assigns each a palette color. Paletted
// images cap out at 256 entries; beyond that, labels wrap and reuse an
// earlier color rather than failing the snapshot outright.
func buildSnapshotPalette(rects []LabeledRect) (color.Palette, map[Label]uint8) {
	palette := make(color.Palette, 0, 256)
	index := make(map[Label]uint8)

	for _, lr := range rects {
		if _, ok := index[lr.Label]; ok {
			continue
		}
		slot := uint8(len(index) % 256)
		index[lr.Label] = slot
		if len(palette) < 256 {
			palette = append(palette, labelColor(lr.Label))
		}
	}
	if len(palette) == 0 {
		palette = append(palette, color.Black)
	}
	return palette, index
}

// labelColor picks a deterministic display color for a label.
func labelColor(label Label) color.Color {
	switch label {
	case LabelUndefined:
		return color.Black
	case LabelImplicitSurrounding:
		return color.Gray{Y: 128}
	}
	hue := math.Mod(float64(label)*goldenAngle, 360)
	if hue < 0 {
		hue += 360
	}
	hue /= 360
	r, g, b := hsvToRGB(hue, 0.65, 0.95)
	return color.RGBA{
		R: uint8(r * 255),
		G: uint8(g * 255),
		B: uint8(b * 255),
		A: 255,
	}
}

// hsvToRGB converts h, s, v in [0, 1] to r, g, b in [0, 1].
func hsvToRGB(h, s, v float64) (r, g, b float64) {
	if s == 0 {
		return v, v, v
	}
	h *= 6
	i := math.Floor(h)
	f := h - i
	p := v * (1 - s)
	q := v * (1 - s*f)
	t := v * (1 - s*(1-f))
	switch int(i) % 6 {
	case 0:
		return v, t, p
	case 1:
		return q, v, p
	case 2:
		return p, v, t
	case 3:
		return p, q, v
	case 4:
		return t, p, v
	default:
		return v, p, q
	}
}
