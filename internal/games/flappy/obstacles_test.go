package flappy

import (
	"math"
	"testing"
)

func TestLayoutPositionsAndBounds(t *testing.T) {
	tr := newTestTrack(7)
	tubes := tr.Layout()

	if len(tubes) != 4 {
		t.Fatalf("expected 4 tubes, got %d", len(tubes))
	}

	if want := 960.0/2 - 50 + 960; tubes[0].X != want {
		t.Errorf("tube 0 x = %v, want %v", tubes[0].X, want)
	}

	base := tr.BaseDistance()
	for i, tube := range tubes {
		if tube.Spacing < 0.8*base || tube.Spacing > 1.2*base {
			t.Errorf("tube %d spacing %v outside [%v, %v]", i, tube.Spacing, 0.8*base, 1.2*base)
		}
		if math.Abs(tube.Offset) > tr.OffsetBound() {
			t.Errorf("tube %d offset %v exceeds %v", i, tube.Offset, tr.OffsetBound())
		}
		if i > 0 && tube.X != tubes[i-1].X+tubes[i-1].Spacing {
			t.Errorf("tube %d x = %v, want previous x + spacing", i, tube.X)
		}
	}
}

func TestTubeRects(t *testing.T) {
	tr := newTestTrack(1)
	tubes := []Tube{{X: 200, Offset: 100}}
	tr.Advance(tubes, 0)

	tube := tubes[0]
	// Gap is 360 around 720+100.
	if tube.Lower.Y != 0 || tube.Lower.H != 640 {
		t.Errorf("lower box = %+v", tube.Lower)
	}
	if tube.Upper.Y != 1000 || tube.Upper.Top() != 1440 {
		t.Errorf("upper box = %+v", tube.Upper)
	}
	if tube.Upper.X != 200 || tube.Upper.W != 100 {
		t.Errorf("upper box x/w = %v/%v", tube.Upper.X, tube.Upper.W)
	}
}

func TestAdvanceScrolls(t *testing.T) {
	tr := newTestTrack(3)
	tubes := tr.Layout()
	before := append([]Tube(nil), tubes...)

	if recycled := tr.Advance(tubes, 6); len(recycled) != 0 {
		t.Fatalf("nothing should recycle yet, got %v", recycled)
	}
	for i := range tubes {
		if tubes[i].X != before[i].X-6 {
			t.Errorf("tube %d x = %v, want %v", i, tubes[i].X, before[i].X-6)
		}
		if tubes[i].Upper.X != tubes[i].X {
			t.Errorf("tube %d rects not recomputed", i)
		}
	}
}

func TestRecycleKeepsSpacing(t *testing.T) {
	tr := newTestTrack(11)
	tubes := tr.Layout()
	spacings := make([]float64, len(tubes))
	for i := range tubes {
		spacings[i] = tubes[i].Spacing
	}

	recycles := 0
	for step := 0; step < 5000; step++ {
		recycled := tr.Advance(tubes, 6)
		recycles += len(recycled)
		for _, i := range recycled {
			if math.Abs(tubes[i].Offset) > tr.OffsetBound() {
				t.Fatalf("recycled offset %v exceeds bound", tubes[i].Offset)
			}
		}
		for i := range tubes {
			if tubes[i].Spacing != spacings[i] {
				t.Fatalf("tube %d spacing changed from %v to %v", i, spacings[i], tubes[i].Spacing)
			}
		}
	}
	if recycles == 0 {
		t.Fatal("expected tubes to recycle")
	}
}

func TestRecyclePlacesBehindRightmost(t *testing.T) {
	tr := newTestTrack(5)
	tubes := []Tube{
		{X: -101, Spacing: 700},
		{X: 300, Spacing: 650},
		{X: 900, Spacing: 800},
		{X: 600, Spacing: 750},
	}

	recycled := tr.Advance(tubes, 6)

	if len(recycled) != 1 || recycled[0] != 0 {
		t.Fatalf("recycled = %v, want [0]", recycled)
	}
	// Tubes after index 0 have not moved yet when it is placed.
	if tubes[0].X != 900+800 {
		t.Errorf("recycled x = %v, want %v", tubes[0].X, 1700.0)
	}
	if tubes[0].Spacing != 700 {
		t.Errorf("recycling changed spacing to %v", tubes[0].Spacing)
	}
	if tubes[2].X != 894 {
		t.Errorf("other tubes should scroll, tube 2 x = %v", tubes[2].X)
	}
}
