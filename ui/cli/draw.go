package cli

import (
	"dragchess/src/base"
	"fmt"
	"io"
)

// ANSI-code
const (
	reset   = "\033[0m"
	lightBg = "\033[47m"
	darkBg  = "\033[100m"
	whiteF  = "\033[97m"
	blackF  = "\033[30m"
	dimF    = "\033[90m"
)

func pieceGlyph(p base.Piece) string {
	t, c := p.Decode()
	if t == base.None {
		return " "
	}
	glyphs := map[base.PieceType][2]string{
		base.King:   {"♔", "♚"},
		base.Queen:  {"♕", "♛"},
		base.Rook:   {"♖", "♜"},
		base.Bishop: {"♗", "♝"},
		base.Knight: {"♘", "♞"},
		base.Pawn:   {"♙", "♟"},
	}
	g := glyphs[t]
	if c == base.Black {
		return g[1]
	}
	return g[0]
}

// PrintBoard draws rank 8 on top. Without colour the board is plain ASCII
// in the same letter convention as the position strings.
func PrintBoard(w io.Writer, b base.Board, colour bool) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, "   a  b  c  d  e  f  g  h")
	for rank := base.BoardSide - 1; rank >= 0; rank-- {
		fmt.Fprintf(w, "%d ", rank+1)
		for file := 0; file < base.BoardSide; file++ {
			sq := base.Square{File: file, Rank: rank}
			p := b.PieceOn(sq)
			if !colour {
				fmt.Fprintf(w, " %c ", base.ConvertRuneFromPiece(p))
				continue
			}

			var bg, fg string
			if base.IsLightSquare(sq) {
				bg = lightBg
			} else {
				bg = darkBg
			}
			switch {
			case p.IsEmpty():
				fg = dimF
			case p.Color() == base.White:
				fg = whiteF
			default:
				fg = blackF
			}
			fmt.Fprintf(w, "%s%s %s %s", bg, fg, pieceGlyph(p), reset)
		}
		fmt.Fprintf(w, " %d\n", rank+1)
	}
	fmt.Fprintln(w, "   a  b  c  d  e  f  g  h")
	fmt.Fprintln(w)
}
