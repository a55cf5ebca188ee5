package scribblecolor

// Intensity is an 8-bit pixel intensity: 0 marks a line (ink) pixel, 255
// marks blank canvas. Values in between scale the smoothness term
// linearly: a cut through them costs more than through a pure line pixel
// and less than through blank canvas.
type Intensity = uint8

// IntensityMin is the darkest possible intensity (a line pixel).
const IntensityMin Intensity = 0

// IntensityMax is the lightest possible intensity (untouched canvas).
const IntensityMax Intensity = 255
