package dragdrop

import (
	"dragchess/src/base"
	"dragchess/src/logic/convert/convfen"
	"dragchess/src/logic/coords"
	"math"
	"testing"
)

const sq = 60

func startBoard(t *testing.T) base.Board {
	t.Helper()
	b, _, err := convfen.LoadPosition(base.START_FEN)
	if err != nil {
		t.Fatalf("LoadPosition: %v", err)
	}
	return b
}

func centre(file, rank int) (float64, float64) {
	return float64(file*sq + sq/2), float64(rank*sq + sq/2)
}

func pressAt(m *Machine, b *base.Board, file, rank int) bool {
	x, y := centre(file, rank)
	return m.Press(b, x, y)
}

func releaseAt(m *Machine, b *base.Board, file, rank int) Drop {
	x, y := centre(file, rank)
	return m.Release(b, x, y)
}

func diff(a, b base.Board) []int {
	var out []int
	for i := range a {
		if a[i] != b[i] {
			out = append(out, i)
		}
	}
	return out
}

func TestCommitMovesPiece(t *testing.T) {
	b := startBoard(t)
	before := b
	m := NewMachine(coords.NewLayout(sq))

	x, y := centre(4, 1)
	if !m.Press(&b, x+5, y-3) {
		t.Fatalf("Press over e2 did not start a drag")
	}
	if m.State() != Dragging || m.Origin() != (base.Square{File: 4, Rank: 1}) {
		t.Fatalf("state = %v origin = %v", m.State(), m.Origin())
	}
	if b != before {
		t.Fatalf("board changed on press")
	}

	tx, ty := centre(4, 3)
	m.Move(tx, ty)
	if cx, cy := m.Cursor(); cx != tx || cy != ty {
		t.Fatalf("cursor = %v, %v", cx, cy)
	}
	if sx, sy := m.SpriteCenter(); sx != tx-5 || sy != ty+3 {
		t.Fatalf("sprite centre = %v, %v", sx, sy)
	}
	if b != before {
		t.Fatalf("board changed on move")
	}

	drop := m.Release(&b, tx, ty)
	if drop.Outcome != Committed {
		t.Fatalf("outcome = %v", drop.Outcome)
	}
	if drop.From.String() != "e2" || drop.To.String() != "e4" || drop.Captured != base.EmptyPiece {
		t.Fatalf("unexpected drop %+v", drop)
	}
	if changed := diff(before, b); len(changed) != 2 {
		t.Fatalf("changed cells = %v", changed)
	}
	if b[28] != base.NewPiece(base.Pawn, base.White) || b[12] != base.EmptyPiece {
		t.Fatalf("e4 = %v, e2 = %v", b[28], b[12])
	}
	if m.State() != Idle {
		t.Fatalf("state after release = %v", m.State())
	}
}

func TestCommitCapture(t *testing.T) {
	b := startBoard(t)
	m := NewMachine(coords.NewLayout(sq))
	pressAt(m, &b, 0, 0)
	drop := releaseAt(m, &b, 0, 6)
	if drop.Outcome != Committed || drop.Captured != base.NewPiece(base.Pawn, base.Black) {
		t.Fatalf("unexpected drop %+v", drop)
	}
	if b[48] != base.NewPiece(base.Rook, base.White) || b[0] != base.EmptyPiece {
		t.Fatalf("capture not applied")
	}
}

func TestRevert(t *testing.T) {
	tests := []struct {
		name   string
		rx, ry float64
	}{
		{"outside board", -10, -10},
		{"beyond h file", 8*sq + 1, sq / 2},
		{"same square", float64(sq + 2), float64(sq + 2)},
		{"NaN cursor", math.NaN(), math.NaN()},
		{"NaN x", math.NaN(), sq / 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := startBoard(t)
			before := b
			m := NewMachine(coords.NewLayout(sq))
			if !pressAt(m, &b, 1, 1) {
				t.Fatalf("Press over b2 failed")
			}
			drop := m.Release(&b, tt.rx, tt.ry)
			if drop.Outcome != Reverted || drop.From != drop.To {
				t.Fatalf("drop = %+v", drop)
			}
			if b != before {
				t.Fatalf("board changed on revert: %v", diff(before, b))
			}
			if m.Dragging() {
				t.Fatalf("still dragging")
			}
		})
	}
}

func TestRevertWhenOriginChanged(t *testing.T) {
	b := startBoard(t)
	m := NewMachine(coords.NewLayout(sq))
	pressAt(m, &b, 3, 0)
	b.Clear()
	drop := releaseAt(m, &b, 3, 4)
	if drop.Outcome != Reverted {
		t.Fatalf("outcome = %v", drop.Outcome)
	}
	if b != (base.Board{}) {
		t.Fatalf("board written after origin was cleared")
	}
}

func TestIgnoredEvents(t *testing.T) {
	b := startBoard(t)
	m := NewMachine(coords.NewLayout(sq))

	if pressAt(m, &b, 4, 4) {
		t.Fatalf("press on empty square started a drag")
	}
	if m.Press(&b, -5, 30) {
		t.Fatalf("press off board started a drag")
	}
	if m.Press(&b, math.NaN(), math.NaN()) {
		t.Fatalf("press at NaN started a drag")
	}
	if pressAt(m, nil, 0, 0) {
		t.Fatalf("press with nil board started a drag")
	}
	m.Move(100, 100)
	if drop := releaseAt(m, &b, 4, 4); drop.Outcome != NoDrop {
		t.Fatalf("release while idle = %v", drop.Outcome)
	}

	if !pressAt(m, &b, 6, 0) {
		t.Fatalf("press on g1 failed")
	}
	if pressAt(m, &b, 1, 0) {
		t.Fatalf("second press accepted while dragging")
	}
	if m.Origin() != (base.Square{File: 6, Rank: 0}) {
		t.Fatalf("origin changed to %v", m.Origin())
	}
	m.Cancel()
	if m.Dragging() || m.Piece() != base.EmptyPiece {
		t.Fatalf("cancel left drag state")
	}
}
