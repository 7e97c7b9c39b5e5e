package history

import (
	"dragchess/src/base"
	"dragchess/src/logic/dragdrop"
	"errors"
	"fmt"
	"strings"
)

var (
	ErrNilBoard     = errors.New("nil board")
	ErrEmptyHistory = errors.New("empty history")
	ErrNoMove       = errors.New("no move to go to")
)

// linear history with a truncated redo tail
type History struct {
	moves   []MoveEntry
	current int // number of applied moves
}

type MoveEntry struct {
	Drop  dragdrop.Drop
	Board base.Board // copy of the board after the drop
}

func (e MoveEntry) String() string {
	s := e.Drop.From.String() + "-" + e.Drop.To.String()
	if !e.Drop.Captured.IsEmpty() {
		s = e.Drop.From.String() + "x" + e.Drop.To.String()
	}
	return s
}

func NewHistory() *History {
	return &History{moves: make([]MoveEntry, 0)}
}

// Reset starts a new history rooted at b.
func (h *History) Reset(b base.Board) {
	h.moves = []MoveEntry{{Board: b}}
	h.current = 0
}

func (h *History) Len() int { return len(h.moves) - 1 }

func (h *History) Current() int { return h.current }

func (h *History) CanUndo() bool { return h.current > 0 }

func (h *History) CanRedo() bool { return h.current < h.Len() }

// Moves returns the applied moves, redo tail excluded.
func (h *History) Moves() []MoveEntry {
	if h.current == 0 {
		return nil
	}
	out := make([]MoveEntry, h.current)
	copy(out, h.moves[1:h.current+1])
	return out
}

// Push records a committed drop; b is the board after it.
func (h *History) Push(b *base.Board, d dragdrop.Drop) error {
	if b == nil {
		return ErrNilBoard
	}
	if d.Outcome != dragdrop.Committed {
		return fmt.Errorf("push %s drop", d.Outcome)
	}
	if len(h.moves) == 0 {
		return ErrEmptyHistory
	}
	h.moves = append(h.moves[:h.current+1], MoveEntry{Drop: d, Board: *b})
	h.current++
	return nil
}

func (h *History) GotoMove(b *base.Board, index int) error {
	if b == nil {
		return ErrNilBoard
	}
	if len(h.moves) == 0 {
		return ErrEmptyHistory
	}
	if index < 0 || index > h.Len() {
		return fmt.Errorf("move %d of %d: %w", index, h.Len(), ErrNoMove)
	}
	*b = h.moves[index].Board
	h.current = index
	return nil
}

// undo and rewrite board
func (h *History) Undo(b *base.Board) error {
	return h.GotoMove(b, h.current-1)
}

// redo and rewrite board
func (h *History) Redo(b *base.Board) error {
	return h.GotoMove(b, h.current+1)
}

// example: "1. e2-e4 e7-e5 2. g1-f3"
func (h *History) MovesString() string {
	moves := h.Moves()
	var sb strings.Builder
	for i, mv := range moves {
		if i%2 == 0 {
			if i > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(fmt.Sprintf("%d. ", i/2+1))
		} else {
			sb.WriteByte(' ')
		}
		sb.WriteString(mv.String())
	}
	return sb.String()
}
