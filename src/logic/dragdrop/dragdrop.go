// Package dragdrop is the press/move/release state machine for dragging a
// piece across the board. The board is only written on a committed drop.
package dragdrop

import (
	"dragchess/src/base"
	"dragchess/src/logic/coords"
)

type State int

const (
	Idle State = iota
	Dragging
)

func (s State) String() string {
	if s == Dragging {
		return "dragging"
	}
	return "idle"
}

type Outcome int

const (
	NoDrop Outcome = iota
	Committed
	Reverted
)

func (o Outcome) String() string {
	switch o {
	case Committed:
		return "committed"
	case Reverted:
		return "reverted"
	default:
		return "none"
	}
}

// Drop describes what a Release did.
type Drop struct {
	Outcome  Outcome
	From     base.Square
	To       base.Square
	Piece    base.Piece
	Captured base.Piece
}

// Machine holds the transient drag. Coordinates are world space.
type Machine struct {
	layout coords.Layout

	state   State
	origin  base.Square
	piece   base.Piece
	cursorX float64
	cursorY float64
	// cursor minus the origin square centre at pickup
	grabX float64
	grabY float64
}

func NewMachine(l coords.Layout) *Machine {
	return &Machine{layout: l}
}

func (m *Machine) Layout() coords.Layout { return m.layout }

func (m *Machine) SetLayout(l coords.Layout) {
	m.layout = l
}

func (m *Machine) State() State { return m.state }

func (m *Machine) Dragging() bool { return m.state == Dragging }

// Origin is meaningful only while dragging.
func (m *Machine) Origin() base.Square { return m.origin }

func (m *Machine) Piece() base.Piece { return m.piece }

func (m *Machine) Cursor() (float64, float64) { return m.cursorX, m.cursorY }

// SpriteCenter is where the lifted piece is drawn so it does not jump to
// the cursor on pickup.
func (m *Machine) SpriteCenter() (float64, float64) {
	return m.cursorX - m.grabX, m.cursorY - m.grabY
}

// Press picks up the piece under (x, y). It reports whether a drag started.
func (m *Machine) Press(b *base.Board, x, y float64) bool {
	if m.state == Dragging || b == nil {
		return false
	}
	sq, ok := m.layout.BoardFromPixel(x, y)
	if !ok {
		return false
	}
	p := b.PieceOn(sq)
	if p.IsEmpty() {
		return false
	}
	cx, cy := m.layout.PixelFromSquare(sq)
	m.state = Dragging
	m.origin = sq
	m.piece = p
	m.cursorX, m.cursorY = x, y
	m.grabX, m.grabY = x-cx, y-cy
	return true
}

func (m *Machine) Move(x, y float64) {
	if m.state != Dragging {
		return
	}
	m.cursorX, m.cursorY = x, y
}

// Release drops the piece on the square under (x, y). Off-board drops and
// drops back on the origin revert.
func (m *Machine) Release(b *base.Board, x, y float64) Drop {
	if m.state != Dragging {
		return Drop{Outcome: NoDrop}
	}
	m.cursorX, m.cursorY = x, y
	drop := Drop{Outcome: Reverted, From: m.origin, To: m.origin, Piece: m.piece}

	target, ok := m.layout.BoardFromPixel(x, y)
	if ok && target != m.origin && b != nil && b.PieceOn(m.origin) == m.piece {
		drop.Outcome = Committed
		drop.To = target
		drop.Captured = b[target.Index()]
		b[target.Index()] = m.piece
		b[m.origin.Index()] = base.EmptyPiece
	}
	m.reset()
	return drop
}

// Cancel abandons a drag; the board is left alone.
func (m *Machine) Cancel() {
	m.reset()
}

func (m *Machine) reset() {
	m.state = Idle
	m.origin = base.Square{}
	m.piece = base.EmptyPiece
	m.grabX, m.grabY = 0, 0
}
