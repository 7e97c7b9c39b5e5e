package base

import "fmt"

// Piece placement field only. Lowercase letters are white and the first
// rank listed is rank 1 (index 0); this is the project convention and it is
// the inverse of standard FEN.
const START_FEN string = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR"

const (
	BoardSide  = 8
	BoardCells = BoardSide * BoardSide

	typeMask  = 7
	colorMask = 24
)

type PieceType uint8

const (
	None   PieceType = 0
	King   PieceType = 1
	Pawn   PieceType = 2
	Knight PieceType = 3
	Bishop PieceType = 4
	Rook   PieceType = 5
	Queen  PieceType = 6
)

var pieceTypes = [...]PieceType{None, King, Pawn, Knight, Bishop, Rook, Queen}

// AllPieceTypes lists every type including None.
func AllPieceTypes() []PieceType {
	out := make([]PieceType, len(pieceTypes))
	copy(out, pieceTypes[:])
	return out
}

func (t PieceType) String() string {
	switch t {
	case Pawn:
		return "pawn"
	case Knight:
		return "knight"
	case Bishop:
		return "bishop"
	case Rook:
		return "rook"
	case Queen:
		return "queen"
	case King:
		return "king"
	default:
		return "none"
	}
}

type PieceColor uint8

const (
	White PieceColor = 8
	Black PieceColor = 16
)

func (c PieceColor) String() string {
	switch c {
	case Black:
		return "black"
	default:
		return "white"
	}
}

// Piece is the packed cell value: bits 0-2 type, bits 3-4 color.
type Piece uint8

const EmptyPiece Piece = 0

func NewPiece(t PieceType, c PieceColor) Piece {
	return Piece(uint8(t) | uint8(c))
}

// Type decodes bits 0-2. The unused pattern 7 reads as None.
func (p Piece) Type() PieceType {
	v := uint8(p) & typeMask
	if int(v) >= len(pieceTypes) {
		return None
	}
	return pieceTypes[v]
}

// Color decodes bits 3-4; any pattern other than black reads as white.
// Meaningless when Type is None.
func (p Piece) Color() PieceColor {
	if uint8(p)&colorMask == uint8(Black) {
		return Black
	}
	return White
}

func (p Piece) Decode() (PieceType, PieceColor) {
	return p.Type(), p.Color()
}

func (p Piece) IsEmpty() bool {
	return p.Type() == None
}

// Image is the sprite file name of the piece.
func (p Piece) Image() string {
	t, c := p.Decode()
	if t == None {
		return "crong.png"
	}
	return c.String() + "-" + t.String() + ".png"
}

func (p Piece) ImagePath() string {
	return "pieces/" + p.Image()
}

func (p Piece) String() string {
	t, c := p.Decode()
	if t == None {
		return "none"
	}
	return c.String() + " " + t.String()
}

type Square struct {
	File int
	Rank int
}

func (s Square) Valid() bool {
	return s.File >= 0 && s.File < BoardSide && s.Rank >= 0 && s.Rank < BoardSide
}

func (s Square) Index() int {
	return s.Rank*BoardSide + s.File
}

func (s Square) String() string {
	if !s.Valid() {
		return "-"
	}
	return string([]byte{byte('a' + s.File), byte('1' + s.Rank)})
}

func SquareFromIndex(i int) (Square, error) {
	if i < 0 || i >= BoardCells {
		return Square{}, fmt.Errorf("square %d: %w", i, ErrIndexOutOfRange)
	}
	return Square{File: i % BoardSide, Rank: i / BoardSide}, nil
}

func SquareFromAlgebraic(pos string) (Square, error) {
	// 'a' ~ 'h' to file, '1' ~ '8' to rank 0-7
	if len(pos) != 2 || pos[0] < 'a' || pos[0] > 'h' || pos[1] < '1' || pos[1] > '8' {
		return Square{}, fmt.Errorf("square %q: %w", pos, ErrMalformedInput)
	}
	return Square{File: int(pos[0] - 'a'), Rank: int(pos[1] - '1')}, nil
}

// Board is addressed by rank*8+file.
type Board [BoardCells]Piece

func (b *Board) PieceAt(index int) (Piece, error) {
	if index < 0 || index >= BoardCells {
		return EmptyPiece, fmt.Errorf("board index %d: %w", index, ErrIndexOutOfRange)
	}
	return b[index], nil
}

func (b *Board) SetPieceAt(index int, p Piece) error {
	if index < 0 || index >= BoardCells {
		return fmt.Errorf("board index %d: %w", index, ErrIndexOutOfRange)
	}
	b[index] = p
	return nil
}

// PieceOn returns EmptyPiece for squares off the board.
func (b *Board) PieceOn(s Square) Piece {
	if !s.Valid() {
		return EmptyPiece
	}
	return b[s.Index()]
}

func (b *Board) Clear() {
	*b = Board{}
}

// Bytes copies the raw cells, used by diagnostic dumps.
func (b *Board) Bytes() []byte {
	out := make([]byte, BoardCells)
	for i, p := range b {
		out[i] = byte(p)
	}
	return out
}

func IsLightSquare(s Square) bool {
	return (s.Rank+s.File)%2 != 0
}

func ConvertPieceFromRune(r rune) (Piece, error) {
	var t PieceType
	switch r {
	case 'p', 'P':
		t = Pawn
	case 'n', 'N':
		t = Knight
	case 'b', 'B':
		t = Bishop
	case 'r', 'R':
		t = Rook
	case 'q', 'Q':
		t = Queen
	case 'k', 'K':
		t = King
	default:
		return EmptyPiece, fmt.Errorf("symbol %q: %w", r, ErrUnrecognizedPieceSymbol)
	}
	if r >= 'a' && r <= 'z' {
		return NewPiece(t, White), nil
	}
	return NewPiece(t, Black), nil
}

func ConvertRuneFromPiece(p Piece) rune {
	var r rune
	switch p.Type() {
	case Pawn:
		r = 'p'
	case Knight:
		r = 'n'
	case Bishop:
		r = 'b'
	case Rook:
		r = 'r'
	case Queen:
		r = 'q'
	case King:
		r = 'k'
	default:
		return '.'
	}
	if p.Color() == Black {
		r -= 'a' - 'A'
	}
	return r
}
