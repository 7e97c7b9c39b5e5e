package src

import (
	"dragchess/src/base"
	"dragchess/src/logic/convert/convfen"
	"dragchess/src/logic/coords"
	"dragchess/src/logic/dragdrop"
	"dragchess/src/logic/history"
	"dragchess/src/logx"
	"fmt"
	"strings"
)

// Session owns one board and everything that mutates it. It is driven
// from a single goroutine (the frame loop or the CLI reader).
type Session struct {
	board   base.Board
	drag    *dragdrop.Machine
	history *history.History
	logger  logx.Logger
}

func NewSession(logger logx.Logger, layout coords.Layout) *Session {
	s := &Session{
		drag:    dragdrop.NewMachine(layout),
		history: history.NewHistory(),
		logger:  logger,
	}
	s.history.Reset(s.board)
	return s
}

// CreateFromFEN replaces the position. On error the previous board is kept.
func (s *Session) CreateFromFEN(fen string) error {
	s.logger.Debugf("loading position from FEN: %v", fen)
	board, placements, err := convfen.LoadPosition(fen)
	if err != nil {
		s.logger.Errorf("error parse FEN %q: %v", fen, err)
		return fmt.Errorf("error parse FEN: %w", err)
	}
	for _, pl := range placements {
		t, c := pl.Piece.Decode()
		s.logger.Debugf("%s | %s = %d", t, c, pl.Piece)
	}
	s.drag.Cancel()
	s.board = board
	s.history.Reset(board)
	s.logger.Debugf("piece locations: %v", s.board.Bytes())
	return nil
}

func (s *Session) CreateClassic() {
	if err := s.CreateFromFEN(base.START_FEN); err != nil {
		// START_FEN is a constant; reaching this is a programming error
		panic(err)
	}
}

func (s *Session) CurrentBoard() base.Board {
	return s.board
}

func (s *Session) Placements() []convfen.Placement {
	return convfen.Placements(&s.board)
}

func (s *Session) FEN() string {
	return convfen.ConvertBoardToFEN(&s.board)
}

func (s *Session) Layout() coords.Layout {
	return s.drag.Layout()
}

func (s *Session) SetLayout(l coords.Layout) {
	s.drag.Cancel()
	s.drag.SetLayout(l)
}

// Drag exposes the drag machine for rendering. Mutate only through the
// session.
func (s *Session) Drag() *dragdrop.Machine {
	return s.drag
}

// ---- input events, world coordinates ----

func (s *Session) Press(x, y float64) bool {
	if !s.drag.Press(&s.board, x, y) {
		return false
	}
	s.logger.Debugf("pick up %v from %v", s.drag.Piece(), s.drag.Origin())
	return true
}

func (s *Session) Move(x, y float64) {
	s.drag.Move(x, y)
}

func (s *Session) Release(x, y float64) dragdrop.Drop {
	drop := s.drag.Release(&s.board, x, y)
	switch drop.Outcome {
	case dragdrop.Committed:
		if err := s.history.Push(&s.board, drop); err != nil {
			s.logger.Errorf("error push move: %v", err)
		}
		s.logger.Infof("move %v from %v to %v", drop.Piece, drop.From, drop.To)
	case dragdrop.Reverted:
		s.logger.Debugf("drop reverted, %v back to %v", drop.Piece, drop.From)
	}
	return drop
}

func (s *Session) CancelDrag() {
	s.drag.Cancel()
}

// DragSquares drives a full press/release between two squares, the way a
// mouse would.
func (s *Session) DragSquares(from, to base.Square) (dragdrop.Drop, error) {
	l := s.drag.Layout()
	fx, fy := l.PixelFromSquare(from)
	if !from.Valid() || !s.Press(fx, fy) {
		return dragdrop.Drop{}, fmt.Errorf("no piece on %v", from)
	}
	tx, ty := l.PixelFromSquare(to)
	if !to.Valid() {
		tx, ty = -1, -1
	}
	return s.Release(tx, ty), nil
}

// ---- history ----

func (s *Session) Undo() error {
	s.logger.Debug("call undo")
	s.drag.Cancel()
	return s.history.Undo(&s.board)
}

func (s *Session) Redo() error {
	s.logger.Debug("call redo")
	s.drag.Cancel()
	return s.history.Redo(&s.board)
}

func (s *Session) CanUndo() bool { return s.history.CanUndo() }

func (s *Session) CanRedo() bool { return s.history.CanRedo() }

func (s *Session) Moves() []history.MoveEntry {
	return s.history.Moves()
}

func (s *Session) MovesString() string {
	return s.history.MovesString()
}

// Dump is the textual decode of every occupied square.
func (s *Session) Dump() string {
	var sb strings.Builder
	for _, pl := range s.Placements() {
		t, c := pl.Piece.Decode()
		fmt.Fprintf(&sb, "%s: %s | %s = %d (%s)\n", pl.Square, t, c, pl.Piece, pl.Piece.ImagePath())
	}
	fmt.Fprintf(&sb, "PIECE LOCATIONS:\n%v\n", s.board.Bytes())
	return sb.String()
}
