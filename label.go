package scribblecolor

// Label identifies the user-chosen region a pixel belongs to. Small
// non-negative values are user label ids; negative values are reserved
// sentinels.
type Label int32

const (
	// LabelUndefined marks a leaf with no preferred label, or a node that
	// escaped every round of the solver without a max-flow engine assigning it
	// a segment (only possible with implicit surrounding disabled).
	LabelUndefined Label = -1

	// LabelImplicitSurrounding marks a leaf the solver resolved to "belongs
	// to none of the user's labels, but is connected to the canvas border",
	// only produced when Colorize runs with WithImplicitSurrounding(true).
	LabelImplicitSurrounding Label = -2
)
