package scribblecolor

import "testing"

func TestSnapshotNoScribblesRendersUndefinedBlack(t *testing.T) {
	ctx, err := NewContext(NewRect(0, 0, 7, 7), 4, nil)
	if err != nil {
		t.Fatalf("NewContext: %v", err)
	}

	img, err := ctx.Snapshot()
	if err != nil {
		t.Fatalf("Snapshot: %v", err)
	}
	if img.Bounds().Dx() != 8 || img.Bounds().Dy() != 8 {
		t.Fatalf("bounds = %v, want 8x8", img.Bounds())
	}
	if r, g, b, _ := img.At(0, 0).RGBA(); r != 0 || g != 0 || b != 0 {
		t.Errorf("pixel (0,0) = %v, want black", img.At(0, 0))
	}
}

func TestSnapshotImplicitSurroundingRendersWholeCanvas(t *testing.T) {
	ctx, err := NewContext(NewRect(0, 0, 7, 7), 4, nil)
	if err != nil {
		t.Fatalf("NewContext: %v", err)
	}

	img, err := ctx.Snapshot(WithImplicitSurrounding(true))
	if err != nil {
		t.Fatalf("Snapshot: %v", err)
	}
	if got := img.ColorIndexAt(0, 0); got != img.ColorIndexAt(7, 7) {
		t.Errorf("expected uniform color index across the canvas, got %d and %d", got, img.ColorIndexAt(7, 7))
	}
}

func TestSnapshotSingleScribbleUsesOneColor(t *testing.T) {
	ctx, err := NewContext(NewRect(0, 0, 15, 15), 16, nil)
	if err != nil {
		t.Fatalf("NewContext: %v", err)
	}
	s := NewPaintedScribble(3, NewRect(0, 0, 15, 15))
	s.StampDisc(Pt(7, 7), 10)
	if err := ctx.Append(s); err != nil {
		t.Fatalf("Append: %v", err)
	}

	img, err := ctx.Snapshot()
	if err != nil {
		t.Fatalf("Snapshot: %v", err)
	}
	if len(img.Palette) != 1 {
		t.Fatalf("palette size = %d, want 1", len(img.Palette))
	}
}
