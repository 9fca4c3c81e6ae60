package stroke

import "testing"

func newTestCanvas() *Canvas {
	return NewCanvas(&Config{Size: 100, Width: 10})
}

func TestNewCanvas_Blank(t *testing.T) {
	c := newTestCanvas()

	if c.Size() != 100 {
		t.Errorf("Size() = %d, want 100", c.Size())
	}
	if !c.Empty() {
		t.Error("new canvas is not empty")
	}
	for i, p := range c.Image().Pix {
		if p != 0xff {
			t.Fatalf("pixel %d = %d, want 255", i, p)
		}
	}
}

func TestNewCanvas_DefaultConfig(t *testing.T) {
	c := NewCanvas(nil)

	if c.Size() != 280 {
		t.Errorf("Size() = %d, want 280", c.Size())
	}
}

func TestCanvas_ExtendDrawsSegment(t *testing.T) {
	c := newTestCanvas()

	c.Begin(10, 50)
	c.Extend(90, 50)
	c.End()

	if c.Empty() {
		t.Fatal("canvas empty after drawing")
	}

	img := c.Image()
	tests := []struct {
		name  string
		x, y  int
		inked bool
	}{
		{"on the line", 50, 50, true},
		{"within half width", 50, 53, true},
		{"round cap before start", 7, 50, true},
		{"far above", 50, 20, false},
		{"beyond end cap", 98, 50, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			y := img.GrayAt(tt.x, tt.y).Y
			if tt.inked && y >= 128 {
				t.Errorf("pixel (%d,%d) = %d, want dark", tt.x, tt.y, y)
			}
			if !tt.inked && y != 0xff {
				t.Errorf("pixel (%d,%d) = %d, want white", tt.x, tt.y, y)
			}
		})
	}
}

func TestCanvas_ContinuousStroke(t *testing.T) {
	c := newTestCanvas()

	c.Begin(10, 10)
	c.Extend(50, 10)
	c.Extend(50, 90)

	img := c.Image()
	if y := img.GrayAt(30, 10).Y; y >= 128 {
		t.Errorf("first segment pixel = %d, want dark", y)
	}
	if y := img.GrayAt(50, 60).Y; y >= 128 {
		t.Errorf("second segment pixel = %d, want dark", y)
	}
	if y := img.GrayAt(10, 90).Y; y != 0xff {
		t.Errorf("unrelated pixel = %d, want white", y)
	}
}

func TestCanvas_ExtendWithoutBegin(t *testing.T) {
	c := newTestCanvas()

	c.Extend(20, 20)
	if !c.Empty() {
		t.Error("first Extend without Begin should only start the stroke")
	}

	c.Extend(60, 20)
	if c.Empty() {
		t.Error("second Extend should draw")
	}
}

func TestCanvas_SamePointIgnored(t *testing.T) {
	c := newTestCanvas()

	c.Begin(20, 20)
	c.Extend(20, 20)

	if !c.Empty() {
		t.Error("zero-length segment should not count as drawing")
	}
}

func TestCanvas_SnapshotIndependentOfReset(t *testing.T) {
	c := newTestCanvas()
	c.Begin(10, 50)
	c.Extend(90, 50)

	snap := c.Snapshot()
	c.Reset()

	if !c.Empty() {
		t.Error("canvas not empty after Reset")
	}
	if y := c.Image().GrayAt(50, 50).Y; y != 0xff {
		t.Errorf("live pixel after Reset = %d, want white", y)
	}
	if y := snap.GrayAt(50, 50).Y; y >= 128 {
		t.Errorf("snapshot pixel after Reset = %d, want dark", y)
	}
	if snap.Bounds() != c.Image().Bounds() {
		t.Errorf("snapshot bounds = %v, want %v", snap.Bounds(), c.Image().Bounds())
	}
}

func TestCanvas_EndStopsStroke(t *testing.T) {
	c := newTestCanvas()
	c.Begin(10, 10)
	c.Extend(40, 10)
	c.End()

	// A new stroke must not connect to the previous one
	c.Extend(10, 90)
	c.Extend(11, 90)

	if y := c.Image().GrayAt(25, 50).Y; y != 0xff {
		t.Errorf("pixel between strokes = %d, want white", y)
	}
}
