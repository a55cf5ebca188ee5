package scribblecolor

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
)

// LoadCanvasPoints resamples img to rect's dimensions and extracts the
// dark-pixel skeleton as a slice of InputPoint ready for NewContext:
// every resampled pixel whose gray value is at or below threshold
// becomes an InputPoint positioned at rect's origin plus its pixel
// offset, carrying that gray value as its Intensity. Pixels above
// threshold are left as the grid's implicit blank default and omitted.
//
// Resampling uses CatmullRom, matching the smoother of the two
// resamplers draw ships, since line art downscaled with a harsher
// filter tends to break thin strokes into disconnected dots before
// thresholding ever sees them.
func LoadCanvasPoints(img image.Image, rect Rect, threshold Intensity) ([]InputPoint, error) {
	if !rect.IsValid() {
		return nil, nil
	}
	gray := resampleGray(img, rect.Width(), rect.Height(), draw.CatmullRom)

	var points []InputPoint
	for y := 0; y < rect.Height(); y++ {
		for x := 0; x < rect.Width(); x++ {
			v := gray.GrayAt(x, y).Y
			if v > threshold {
				continue
			}
			points = append(points, InputPoint{
				Position:  Point{X: rect.Left + x, Y: rect.Top + y},
				Intensity: v,
			})
		}
	}
	return points, nil
}

// LoadScribbleMask resamples a mask image to rect's dimensions and
// builds a PaintedScribble labeled label from it: a pixel is painted
// into the scribble wherever the mask is opaque (its alpha channel, if
// present) and at or below threshold in luminance, treating a
// mask drawn as solid color on a transparent background the same as
// one drawn as black-on-white.
//
// Resampling uses nearest-neighbor rather than CatmullRom: a scribble
// mask is a binary region, and any smoothing filter would blur its edge
// into gray values this function would then have to re-threshold,
// eroding the boundary in the process.
func LoadScribbleMask(img image.Image, rect Rect, label Label, threshold Intensity) (*PaintedScribble, error) {
	s := NewPaintedScribble(label, rect)
	if !rect.IsValid() {
		return s, nil
	}

	dst := image.NewRGBA(image.Rect(0, 0, rect.Width(), rect.Height()))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Over, nil)

	for y := 0; y < rect.Height(); y++ {
		for x := 0; x < rect.Width(); x++ {
			px := dst.RGBAAt(x, y)
			if px.A == 0 {
				continue
			}
			gray := color.GrayModel.Convert(px).(color.Gray).Y
			if gray <= threshold {
				s.SetPixel(Point{X: rect.Left + x, Y: rect.Top + y}, true)
			}
		}
	}
	return s, nil
}

// resampleGray scales img to the given dimensions with the supplied
// draw.Scaler and converts the result to 8-bit grayscale in one pass.
func resampleGray(img image.Image, width, height int, scaler draw.Scaler) *image.Gray {
	scaled := image.NewRGBA(image.Rect(0, 0, width, height))
	scaler.Scale(scaled, scaled.Bounds(), img, img.Bounds(), draw.Over, nil)

	gray := image.NewGray(scaled.Bounds())
	draw.Draw(gray, gray.Bounds(), scaled, image.Point{}, draw.Src)
	return gray
}
