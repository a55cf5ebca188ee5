package scribblecolor

// ColorizeOption configures a single Colorize call.
// Use functional options to customize solving behavior without changing
// the Colorize signature.
//
// Example:
//
//	rects, err := ctx.Colorize(scribblecolor.WithImplicitSurrounding(true))
type ColorizeOption func(*colorizeOptions)

// colorizeOptions holds optional configuration for a Colorize call.
type colorizeOptions struct {
	useImplicitSurrounding bool
	backgroundLabel        Label
	backgroundLabelSet     bool
	softScribblePercent    int
}

// defaultColorizeOptions returns the default colorize options: implicit
// surrounding is off, and the soft-scribble weight is 5% of K.
// backgroundLabel starts as LabelImplicitSurrounding with
// backgroundLabelSet false, so Colorize replaces it with
// Context.BackgroundLabel() unless WithBackgroundLabel overrode it.
func defaultColorizeOptions() colorizeOptions {
	return colorizeOptions{
		useImplicitSurrounding: false,
		backgroundLabel:        LabelImplicitSurrounding,
		softScribblePercent:    5,
	}
}

// WithImplicitSurrounding toggles the implicit-surrounding term: an extra
// flow-graph node representing "everything the scribbles don't claim
// extends forever," connected to every border leaf and to the sink with
// effectively infinite capacity.
func WithImplicitSurrounding(enabled bool) ColorizeOption {
	return func(o *colorizeOptions) {
		o.useImplicitSurrounding = enabled
	}
}

// WithBackgroundLabel overrides the label that LabeledRect.Label reports
// for nodes resolved to the implicit surrounding, in place of the bare
// LabelImplicitSurrounding sentinel, letting a caller treat the
// surrounding area as a real user label rather than a sentinel value.
// Has no effect unless WithImplicitSurrounding(true) is also set.
//
// Takes precedence over the Context's own BackgroundLabel for this call
// only; it does not change Context.BackgroundLabel().
func WithBackgroundLabel(label Label) ColorizeOption {
	return func(o *colorizeOptions) {
		o.backgroundLabel = label
		o.backgroundLabelSet = true
	}
}

// WithSoftScribblePercent overrides SOFT, the percentage of K used as the
// terminal-edge weight for scribble-covered nodes. The reference value is
// 5. Values outside (0, 100] are clamped.
func WithSoftScribblePercent(percent int) ColorizeOption {
	return func(o *colorizeOptions) {
		if percent <= 0 {
			percent = 1
		} else if percent > 100 {
			percent = 100
		}
		o.softScribblePercent = percent
	}
}
