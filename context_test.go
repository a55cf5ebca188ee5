package scribblecolor

import "testing"

func TestNewContextRoundsRectToCellSize(t *testing.T) {
	ctx, err := NewContext(NewRect(0, 0, 9, 9), 8, nil)
	if err != nil {
		t.Fatalf("NewContext: %v", err)
	}
	if got, want := ctx.Rect(), NewRect(0, 0, 15, 15); got != want {
		t.Errorf("Rect() = %v, want %v", got, want)
	}
}

func TestNewContextSeedsInputPoints(t *testing.T) {
	ctx, err := NewContext(NewRect(0, 0, 15, 15), 16, []InputPoint{
		{Position: Pt(3, 3), Intensity: 0},
	})
	if err != nil {
		t.Fatalf("NewContext: %v", err)
	}

	leaf := ctx.workingGrid.LeafCellAt(toSpatialPoint(Pt(3, 3)))
	if ctx.workingGrid.Side(leaf) != 1 {
		t.Fatalf("expected the input point's leaf to be refined to 1x1, got side %d", ctx.workingGrid.Side(leaf))
	}
	if got := ctx.workingGrid.Data(leaf).intensity; got != 0 {
		t.Errorf("intensity = %d, want 0", got)
	}
}

func TestNewContextNullRectIsNull(t *testing.T) {
	ctx, err := NewContext(NewRect(0, 0, -1, -1), 8, nil)
	if err != nil {
		t.Fatalf("NewContext: %v", err)
	}
	if !ctx.IsNull() {
		t.Error("expected a context built over an invalid rect to be null")
	}
}

func TestContextAppendSetsPreferredLabel(t *testing.T) {
	ctx, err := NewContext(NewRect(0, 0, 15, 15), 16, nil)
	if err != nil {
		t.Fatalf("NewContext: %v", err)
	}
	s := NewPaintedScribble(5, NewRect(0, 0, 7, 15))
	s.StampDisc(Pt(3, 7), 3)
	if err := ctx.Append(s); err != nil {
		t.Fatalf("Append: %v", err)
	}

	leaf := ctx.workingGrid.LeafCellAt(toSpatialPoint(Pt(3, 7)))
	if got := ctx.workingGrid.Data(leaf).preferredLabel; got != 5 {
		t.Errorf("preferredLabel = %v, want 5", got)
	}
}

func TestContextAppendHigherIndexWinsOnOverlap(t *testing.T) {
	ctx, err := NewContext(NewRect(0, 0, 15, 15), 16, nil)
	if err != nil {
		t.Fatalf("NewContext: %v", err)
	}
	a := NewPaintedScribble(1, NewRect(0, 0, 15, 15))
	a.StampDisc(Pt(8, 8), 6)
	b := NewPaintedScribble(2, NewRect(0, 0, 15, 15))
	b.StampDisc(Pt(8, 8), 4)

	if err := ctx.Append(a); err != nil {
		t.Fatalf("Append a: %v", err)
	}
	if err := ctx.Append(b); err != nil {
		t.Fatalf("Append b: %v", err)
	}

	leaf := ctx.workingGrid.LeafCellAt(toSpatialPoint(Pt(8, 8)))
	if got := ctx.workingGrid.Data(leaf).preferredLabel; got != 2 {
		t.Errorf("preferredLabel = %v, want 2 (the later, higher-priority scribble)", got)
	}
}

func TestContextRemoveRestoresReferenceState(t *testing.T) {
	ctx, err := NewContext(NewRect(0, 0, 15, 15), 16, nil)
	if err != nil {
		t.Fatalf("NewContext: %v", err)
	}
	s := NewPaintedScribble(9, NewRect(0, 0, 15, 15))
	s.StampDisc(Pt(8, 8), 6)
	if err := ctx.Append(s); err != nil {
		t.Fatalf("Append: %v", err)
	}
	if err := ctx.Remove(0); err != nil {
		t.Fatalf("Remove: %v", err)
	}

	leaf := ctx.workingGrid.LeafCellAt(toSpatialPoint(Pt(8, 8)))
	if got := ctx.workingGrid.Data(leaf).preferredLabel; got != LabelUndefined {
		t.Errorf("preferredLabel = %v, want LabelUndefined after removing the only scribble", got)
	}
}

func TestContextInsertOutOfRangeReturnsError(t *testing.T) {
	ctx, err := NewContext(NewRect(0, 0, 15, 15), 16, nil)
	if err != nil {
		t.Fatalf("NewContext: %v", err)
	}
	s := NewPaintedScribble(1, NewRect(0, 0, 15, 15))
	if err := ctx.Insert(5, s); err == nil {
		t.Fatal("expected an error inserting at an out-of-range index")
	}
}

func TestContextReplaceOutOfRangeReturnsError(t *testing.T) {
	ctx, err := NewContext(NewRect(0, 0, 15, 15), 16, nil)
	if err != nil {
		t.Fatalf("NewContext: %v", err)
	}
	s := NewPaintedScribble(1, NewRect(0, 0, 15, 15))
	if err := ctx.Replace(0, s); err == nil {
		t.Fatal("expected an error replacing at an out-of-range index")
	}
}

func TestContextBackgroundLabelDefault(t *testing.T) {
	ctx, err := NewContext(NewRect(0, 0, 15, 15), 16, nil)
	if err != nil {
		t.Fatalf("NewContext: %v", err)
	}
	if ctx.BackgroundLabel() != LabelImplicitSurrounding {
		t.Errorf("BackgroundLabel() = %v, want LabelImplicitSurrounding", ctx.BackgroundLabel())
	}
	ctx.SetBackgroundLabel(42)
	if ctx.BackgroundLabel() != 42 {
		t.Errorf("BackgroundLabel() = %v, want 42", ctx.BackgroundLabel())
	}
}

func TestContextCloneIsIndependentOfOriginal(t *testing.T) {
	ctx, err := NewContext(NewRect(0, 0, 15, 15), 16, nil)
	if err != nil {
		t.Fatalf("NewContext: %v", err)
	}
	s := NewPaintedScribble(3, NewRect(0, 0, 15, 15))
	s.StampDisc(Pt(8, 8), 4)
	if err := ctx.Append(s); err != nil {
		t.Fatalf("Append: %v", err)
	}

	clone := ctx.Clone()
	clone.SetBackgroundLabel(99)
	if ctx.BackgroundLabel() == 99 {
		t.Error("mutating the clone's background label changed the original")
	}

	other := NewPaintedScribble(7, NewRect(0, 0, 15, 15))
	other.StampDisc(Pt(3, 3), 2)
	if err := clone.Append(other); err != nil {
		t.Fatalf("Append on clone: %v", err)
	}
	if len(ctx.Scribbles()) != 1 {
		t.Errorf("appending to the clone changed the original's scribble count: got %d, want 1", len(ctx.Scribbles()))
	}

	leaf := ctx.workingGrid.LeafCellAt(toSpatialPoint(Pt(8, 8)))
	if got := ctx.workingGrid.Data(leaf).preferredLabel; got != 3 {
		t.Errorf("original preferredLabel = %v, want 3 (unaffected by clone mutation)", got)
	}
}

func TestContextDarkPixelStaysOneByOneAfterScribbleReset(t *testing.T) {
	ctx, err := NewContext(NewRect(0, 0, 15, 15), 16, []InputPoint{
		{Position: Pt(8, 8), Intensity: 0},
	})
	if err != nil {
		t.Fatalf("NewContext: %v", err)
	}
	s := NewPaintedScribble(1, NewRect(0, 0, 15, 15))
	s.StampDisc(Pt(3, 3), 2)
	if err := ctx.Append(s); err != nil {
		t.Fatalf("Append: %v", err)
	}

	leaf := ctx.workingGrid.LeafCellAt(toSpatialPoint(Pt(8, 8)))
	if ctx.workingGrid.Side(leaf) != 1 {
		t.Errorf("dark pixel leaf side = %d, want 1 after clear_and_add_scribbles_in reseeds it", ctx.workingGrid.Side(leaf))
	}
	if got := ctx.workingGrid.Data(leaf).intensity; got != 0 {
		t.Errorf("intensity = %d, want 0", got)
	}
}
