// Package coords maps between pixels and board squares.
//
// World space is board-local: x grows with the file, y grows with the rank,
// and (OriginX, OriginY) is the outer corner of square a1. Screen space is
// what the window reports: y grows downward.
package coords

import (
	"dragchess/src/base"
	"math"
)

type Layout struct {
	SquareSize float64
	OriginX    float64
	OriginY    float64
}

func NewLayout(squareSize float64) Layout {
	return Layout{SquareSize: squareSize}
}

func (l Layout) BoardSize() float64 {
	return l.SquareSize * base.BoardSide
}

// BoardFromPixel returns false when the point is off the board; callers
// treat that as a no-op.
func (l Layout) BoardFromPixel(x, y float64) (base.Square, bool) {
	if !(l.SquareSize > 0) {
		return base.Square{}, false
	}
	fx := math.Floor((x - l.OriginX) / l.SquareSize)
	fy := math.Floor((y - l.OriginY) / l.SquareSize)
	// written as positive ranges so NaN falls through to false
	if !(fx >= 0 && fx < base.BoardSide && fy >= 0 && fy < base.BoardSide) {
		return base.Square{}, false
	}
	sq := base.Square{File: int(fx), Rank: int(fy)}
	if !sq.Valid() {
		return base.Square{}, false
	}
	return sq, true
}

// PixelFromSquare returns the centre of sq.
func (l Layout) PixelFromSquare(sq base.Square) (float64, float64) {
	x := l.OriginX + float64(sq.File)*l.SquareSize + l.SquareSize/2
	y := l.OriginY + float64(sq.Rank)*l.SquareSize + l.SquareSize/2
	return x, y
}

// Corner returns the lower-left corner of sq in world space.
func (l Layout) Corner(sq base.Square) (float64, float64) {
	return l.OriginX + float64(sq.File)*l.SquareSize, l.OriginY + float64(sq.Rank)*l.SquareSize
}

// Camera looks at CenterX/CenterY, which lands in the middle of a
// ViewW x ViewH viewport. No zoom.
type Camera struct {
	ViewW, ViewH     float64
	CenterX, CenterY float64
}

// NewBoardCamera centres the board inside a square window of ten squares,
// one square of margin on every side.
func NewBoardCamera(l Layout) Camera {
	side := l.SquareSize * (base.BoardSide + 2)
	half := l.BoardSize() / 2
	return Camera{
		ViewW:   side,
		ViewH:   side,
		CenterX: l.OriginX + half,
		CenterY: l.OriginY + half,
	}
}

func (c Camera) ScreenToWorld(sx, sy float64) (float64, float64) {
	wx := sx - c.ViewW/2 + c.CenterX
	wy := c.ViewH/2 - sy + c.CenterY
	return wx, wy
}

func (c Camera) WorldToScreen(wx, wy float64) (float64, float64) {
	sx := wx - c.CenterX + c.ViewW/2
	sy := c.ViewH/2 - (wy - c.CenterY)
	return sx, sy
}

// Resize keeps the world centre fixed.
func (c *Camera) Resize(w, h float64) {
	c.ViewW, c.ViewH = w, h
}
