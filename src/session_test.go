package src

import (
	"dragchess/src/base"
	"dragchess/src/logic/coords"
	"dragchess/src/logic/dragdrop"
	"dragchess/src/logx"
	"errors"
	"strings"
	"testing"
)

func newSession(t *testing.T) *Session {
	t.Helper()
	s := NewSession(logx.NewNopLogx(), coords.NewLayout(60))
	s.CreateClassic()
	return s
}

func square(t *testing.T, name string) base.Square {
	t.Helper()
	sq, err := base.SquareFromAlgebraic(name)
	if err != nil {
		t.Fatal(err)
	}
	return sq
}

func TestCreateFromFENKeepsBoardOnError(t *testing.T) {
	s := newSession(t)
	before := s.CurrentBoard()

	err := s.CreateFromFEN("rnbqkbnr/pppppppp/9/8/8/8/PPPPPPPP/RNBQKBNR")
	if !errors.Is(err, base.ErrMalformedInput) {
		t.Fatalf("err = %v", err)
	}
	if s.CurrentBoard() != before {
		t.Fatalf("board changed after failed load")
	}
	if s.FEN() != base.START_FEN {
		t.Fatalf("FEN() = %q", s.FEN())
	}
}

func TestDragAndUndo(t *testing.T) {
	s := newSession(t)
	start := s.CurrentBoard()

	drop, err := s.DragSquares(square(t, "g1"), square(t, "f3"))
	if err != nil {
		t.Fatalf("DragSquares: %v", err)
	}
	if drop.Outcome != dragdrop.Committed {
		t.Fatalf("outcome = %v", drop.Outcome)
	}
	if got := s.FEN(); got != "rnbqkb1r/pppppppp/5n2/8/8/8/PPPPPPPP/RNBQKBNR" {
		t.Fatalf("FEN() = %q", got)
	}
	if s.MovesString() != "1. g1-f3" || !s.CanUndo() {
		t.Fatalf("history not updated: %q", s.MovesString())
	}

	if err := s.Undo(); err != nil {
		t.Fatalf("Undo: %v", err)
	}
	if s.CurrentBoard() != start || !s.CanRedo() {
		t.Fatalf("undo did not restore the start position")
	}
	if err := s.Redo(); err != nil {
		t.Fatalf("Redo: %v", err)
	}
	if len(s.Moves()) != 1 {
		t.Fatalf("Moves() = %v", s.Moves())
	}
}

func TestReleaseOffBoardReverts(t *testing.T) {
	s := newSession(t)
	before := s.CurrentBoard()

	x, y := s.Layout().PixelFromSquare(square(t, "d1"))
	if !s.Press(x, y) {
		t.Fatalf("Press on d1 failed")
	}
	s.Move(-100, 50)
	if drop := s.Release(-100, 50); drop.Outcome != dragdrop.Reverted {
		t.Fatalf("outcome = %v", drop.Outcome)
	}
	if s.CurrentBoard() != before || s.CanUndo() {
		t.Fatalf("revert touched board or history")
	}

	if _, err := s.DragSquares(square(t, "e4"), square(t, "e5")); err == nil {
		t.Fatalf("drag from empty square accepted")
	}
	drop, err := s.DragSquares(square(t, "a2"), base.Square{File: 9, Rank: 9})
	if err != nil || drop.Outcome != dragdrop.Reverted {
		t.Fatalf("drag off board = %+v, %v", drop, err)
	}
}

func TestLoadResetsHistoryAndDrag(t *testing.T) {
	s := newSession(t)
	if _, err := s.DragSquares(square(t, "e2"), square(t, "e4")); err != nil {
		t.Fatal(err)
	}
	x, y := s.Layout().PixelFromSquare(square(t, "b1"))
	s.Press(x, y)

	if err := s.CreateFromFEN("8/8/8/8/8/8/8/8 w - - 0 1"); err != nil {
		t.Fatalf("CreateFromFEN: %v", err)
	}
	if s.Drag().Dragging() || s.CanUndo() || len(s.Placements()) != 0 {
		t.Fatalf("load kept stale state")
	}
}

func TestDump(t *testing.T) {
	s := newSession(t)
	out := s.Dump()
	if !strings.Contains(out, "a1: rook | white = 13 (pieces/white-rook.png)") {
		t.Fatalf("dump missing a1 line:\n%s", out)
	}
	if !strings.Contains(out, "h8: rook | black = 21") {
		t.Fatalf("dump missing h8 line:\n%s", out)
	}
	if !strings.Contains(out, "PIECE LOCATIONS:") {
		t.Fatalf("dump missing array")
	}
}

func TestSetLayoutCancelsDragAndRescales(t *testing.T) {
	s := newSession(t)
	x, y := s.Layout().PixelFromSquare(square(t, "e2"))
	if !s.Press(x, y) {
		t.Fatalf("Press on e2 failed")
	}

	s.SetLayout(coords.NewLayout(100))
	if s.Drag().Dragging() {
		t.Fatalf("drag survived a layout change")
	}
	if s.Layout().SquareSize != 100 {
		t.Fatalf("SquareSize = %v", s.Layout().SquareSize)
	}

	// old-scale centre of e2 is now inside c1 (x 270 -> file 2, y 90 -> rank 0)
	if !s.Press(x, y) || s.Drag().Origin() != square(t, "c1") {
		t.Fatalf("press used the old layout, origin %v", s.Drag().Origin())
	}
	tx, ty := s.Layout().PixelFromSquare(square(t, "c4"))
	if drop := s.Release(tx, ty); drop.Outcome != dragdrop.Committed {
		t.Fatalf("outcome = %v", drop.Outcome)
	}
}
