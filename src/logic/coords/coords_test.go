package coords

import (
	"dragchess/src/base"
	"math"
	"testing"
)

func TestBoardFromPixel(t *testing.T) {
	l := NewLayout(60)
	tests := []struct {
		name   string
		x, y   float64
		want   base.Square
		wantOK bool
	}{
		{"centre of a1", 30, 30, base.Square{File: 0, Rank: 0}, true},
		{"corner of a1", 0, 0, base.Square{File: 0, Rank: 0}, true},
		{"h8", 479.9, 479.9, base.Square{File: 7, Rank: 7}, true},
		{"e2", 4*60 + 1, 60 + 59, base.Square{File: 4, Rank: 1}, true},
		{"negative", -1, -1, base.Square{}, false},
		{"just left", -0.01, 30, base.Square{}, false},
		{"right edge", 480, 30, base.Square{}, false},
		{"top edge", 30, 480, base.Square{}, false},
		{"NaN x", math.NaN(), 30, base.Square{}, false},
		{"NaN y", 30, math.NaN(), base.Square{}, false},
		{"NaN both", math.NaN(), math.NaN(), base.Square{}, false},
		{"+Inf", math.Inf(1), 30, base.Square{}, false},
		{"-Inf", 30, math.Inf(-1), base.Square{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := l.BoardFromPixel(tt.x, tt.y)
			if ok != tt.wantOK || (ok && got != tt.want) {
				t.Fatalf("BoardFromPixel(%v, %v) = %v, %v, want %v, %v", tt.x, tt.y, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestBoardFromPixelWithOrigin(t *testing.T) {
	l := Layout{SquareSize: 50, OriginX: 100, OriginY: -20}
	got, ok := l.BoardFromPixel(125, 5)
	if !ok || got != (base.Square{File: 0, Rank: 0}) {
		t.Fatalf("got %v, %v", got, ok)
	}
	if _, ok := l.BoardFromPixel(99, 5); ok {
		t.Fatalf("point left of origin reported on board")
	}
	if _, ok := (Layout{}).BoardFromPixel(1, 1); ok {
		t.Fatalf("zero layout reported on board")
	}
	if _, ok := (Layout{SquareSize: math.NaN()}).BoardFromPixel(1, 1); ok {
		t.Fatalf("NaN square size reported on board")
	}
}

func TestPixelFromSquareRoundTrip(t *testing.T) {
	l := Layout{SquareSize: 60, OriginX: 7, OriginY: 3}
	for idx := 0; idx < base.BoardCells; idx++ {
		sq, _ := base.SquareFromIndex(idx)
		x, y := l.PixelFromSquare(sq)
		back, ok := l.BoardFromPixel(x, y)
		if !ok || back != sq {
			t.Fatalf("square %v -> (%v, %v) -> %v, %v", sq, x, y, back, ok)
		}
	}
	if x, y := l.Corner(base.Square{File: 1, Rank: 2}); x != 67 || y != 123 {
		t.Fatalf("Corner = %v, %v", x, y)
	}
}

func TestCamera(t *testing.T) {
	l := NewLayout(60)
	c := NewBoardCamera(l)
	if c.ViewW != 600 || c.ViewH != 600 || c.CenterX != 240 || c.CenterY != 240 {
		t.Fatalf("unexpected camera %+v", c)
	}

	// screen top-left is one square outside h8's rank, a1's file side
	wx, wy := c.ScreenToWorld(0, 0)
	if wx != -60 || wy != 540 {
		t.Fatalf("ScreenToWorld(0,0) = %v, %v", wx, wy)
	}
	// bottom-left corner of the board on screen is a1's corner
	wx, wy = c.ScreenToWorld(60, 540)
	if wx != 0 || wy != 0 {
		t.Fatalf("ScreenToWorld(60,540) = %v, %v", wx, wy)
	}

	for _, p := range [][2]float64{{0, 0}, {123.5, 77}, {600, 600}} {
		wx, wy := c.ScreenToWorld(p[0], p[1])
		sx, sy := c.WorldToScreen(wx, wy)
		if sx != p[0] || sy != p[1] {
			t.Errorf("round trip %v -> %v, %v", p, sx, sy)
		}
	}

	c.Resize(800, 600)
	wx, _ = c.ScreenToWorld(400, 300)
	if wx != 240 {
		t.Errorf("resized centre x = %v", wx)
	}
}
