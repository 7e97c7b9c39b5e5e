package history

import (
	"dragchess/src/base"
	"dragchess/src/logic/convert/convfen"
	"dragchess/src/logic/coords"
	"dragchess/src/logic/dragdrop"
	"errors"
	"testing"
)

func drag(t *testing.T, m *dragdrop.Machine, b *base.Board, from, to string) dragdrop.Drop {
	t.Helper()
	l := m.Layout()
	f, err := base.SquareFromAlgebraic(from)
	if err != nil {
		t.Fatal(err)
	}
	s, err := base.SquareFromAlgebraic(to)
	if err != nil {
		t.Fatal(err)
	}
	fx, fy := l.PixelFromSquare(f)
	tx, ty := l.PixelFromSquare(s)
	if !m.Press(b, fx, fy) {
		t.Fatalf("nothing to pick up on %s", from)
	}
	return m.Release(b, tx, ty)
}

func TestUndoRedo(t *testing.T) {
	b, _, err := convfen.LoadPosition(base.START_FEN)
	if err != nil {
		t.Fatal(err)
	}
	start := b
	h := NewHistory()
	h.Reset(b)
	m := dragdrop.NewMachine(coords.NewLayout(60))

	if err := h.Push(&b, drag(t, m, &b, "e2", "e4")); err != nil {
		t.Fatalf("Push: %v", err)
	}
	afterFirst := b
	if err := h.Push(&b, drag(t, m, &b, "e7", "e5")); err != nil {
		t.Fatalf("Push: %v", err)
	}
	if err := h.Push(&b, drag(t, m, &b, "g1", "f3")); err != nil {
		t.Fatalf("Push: %v", err)
	}
	if got := h.MovesString(); got != "1. e2-e4 e7-e5 2. g1-f3" {
		t.Fatalf("MovesString = %q", got)
	}

	if err := h.Undo(&b); err != nil {
		t.Fatalf("Undo: %v", err)
	}
	if err := h.Undo(&b); err != nil {
		t.Fatalf("Undo: %v", err)
	}
	if b != afterFirst || h.Current() != 1 || !h.CanRedo() {
		t.Fatalf("unexpected state after two undos")
	}
	if err := h.Redo(&b); err != nil {
		t.Fatalf("Redo: %v", err)
	}
	if len(h.Moves()) != 2 {
		t.Fatalf("Moves() = %v", h.Moves())
	}

	// a new drop drops the redo tail
	if err := h.Push(&b, drag(t, m, &b, "d2", "d4")); err != nil {
		t.Fatalf("Push: %v", err)
	}
	if h.Len() != 3 || h.CanRedo() {
		t.Fatalf("redo tail kept: len=%d", h.Len())
	}

	if err := h.GotoMove(&b, 0); err != nil {
		t.Fatalf("GotoMove(0): %v", err)
	}
	if b != start || h.CanUndo() {
		t.Fatalf("GotoMove(0) did not restore start")
	}
	if err := h.Undo(&b); !errors.Is(err, ErrNoMove) {
		t.Fatalf("Undo at start err = %v", err)
	}
}

func TestPushErrors(t *testing.T) {
	var b base.Board
	h := NewHistory()
	committed := dragdrop.Drop{Outcome: dragdrop.Committed}
	if err := h.Push(&b, committed); !errors.Is(err, ErrEmptyHistory) {
		t.Fatalf("Push before Reset err = %v", err)
	}
	h.Reset(b)
	if err := h.Push(nil, committed); !errors.Is(err, ErrNilBoard) {
		t.Fatalf("Push(nil) err = %v", err)
	}
	if err := h.Push(&b, dragdrop.Drop{Outcome: dragdrop.Reverted}); err == nil {
		t.Fatalf("reverted drop accepted")
	}
	if err := h.Redo(&b); !errors.Is(err, ErrNoMove) {
		t.Fatalf("Redo on empty history err = %v", err)
	}
	if err := NewHistory().Undo(&b); !errors.Is(err, ErrEmptyHistory) {
		t.Fatalf("Undo on fresh history err = %v", err)
	}
}

func TestCaptureNotation(t *testing.T) {
	e := MoveEntry{Drop: dragdrop.Drop{
		Outcome:  dragdrop.Committed,
		From:     base.Square{File: 0, Rank: 0},
		To:       base.Square{File: 0, Rank: 6},
		Captured: base.NewPiece(base.Pawn, base.Black),
	}}
	if e.String() != "a1xa7" {
		t.Fatalf("String() = %q", e.String())
	}
}
