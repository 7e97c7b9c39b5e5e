package cli

import (
	"bufio"
	"dragchess/src"
	"dragchess/src/base"
	"dragchess/src/logic/dragdrop"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

type CLIProcessing struct {
	session *src.Session
	in      io.Reader
	out     io.Writer
	colour  bool
}

func NewCLI(s *src.Session) *CLIProcessing {
	return &CLIProcessing{
		session: s,
		in:      os.Stdin,
		out:     os.Stdout,
		colour:  term.IsTerminal(int(os.Stdout.Fd())),
	}
}

// NewCLIWithIO is used by tests and pipes; colour stays off.
func NewCLIWithIO(s *src.Session, in io.Reader, out io.Writer) *CLIProcessing {
	return &CLIProcessing{session: s, in: in, out: out}
}

func (c *CLIProcessing) Draw() {
	PrintBoard(c.out, c.session.CurrentBoard(), c.colour)
}

// line mode:
// - "e2 e4" drags a piece
// - undo / redo / fen / moves / dump
// - q to quit
func (c *CLIProcessing) RunLineMode() error {
	scanner := bufio.NewScanner(c.in)
	c.Draw()
	fmt.Fprintln(c.out, "Enter '<from> <to>' to drag a piece. 'undo', 'redo', 'fen', 'moves', 'dump', 'q' to quit.")
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		switch strings.ToLower(line) {
		case "q", "quit", "exit":
			return nil
		case "undo":
			if err := c.session.Undo(); err != nil {
				fmt.Fprintf(c.out, "Nothing to undo: %v\n", err)
				continue
			}
			c.Draw()
		case "redo":
			if err := c.session.Redo(); err != nil {
				fmt.Fprintf(c.out, "Nothing to redo: %v\n", err)
				continue
			}
			c.Draw()
		case "fen":
			fmt.Fprintf(c.out, "FEN: %s\n", c.session.FEN())
		case "moves":
			fmt.Fprintf(c.out, "Moves: %s\n", c.session.MovesString())
		case "dump":
			fmt.Fprint(c.out, c.session.Dump())
		default:
			c.drag(line)
		}
	}
	return scanner.Err()
}

func (c *CLIProcessing) drag(line string) {
	fields := strings.Fields(strings.ReplaceAll(line, "-", " "))
	if len(fields) != 2 {
		fmt.Fprintf(c.out, "Unknown command: %s\n", line)
		return
	}
	from, err := base.SquareFromAlgebraic(strings.ToLower(fields[0]))
	if err != nil {
		fmt.Fprintf(c.out, "Bad square: %v\n", err)
		return
	}
	to, err := base.SquareFromAlgebraic(strings.ToLower(fields[1]))
	if err != nil {
		fmt.Fprintf(c.out, "Bad square: %v\n", err)
		return
	}
	drop, err := c.session.DragSquares(from, to)
	if err != nil {
		fmt.Fprintf(c.out, "Invalid drag: %v\n", err)
		return
	}
	if drop.Outcome != dragdrop.Committed {
		fmt.Fprintf(c.out, "Piece returned to %s\n", drop.From)
		return
	}
	c.Draw()
}
