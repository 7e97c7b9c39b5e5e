package convfen

import (
	"dragchess/src/base"
	"fmt"
	"strconv"
	"strings"
)

// Placement is one piece the renderer has to spawn.
type Placement struct {
	Square base.Square
	Piece  base.Piece
}

func (p Placement) String() string {
	t, c := p.Piece.Decode()
	return fmt.Sprintf("%s %s %s", p.Square, c, t)
}

// LoadPosition scans the placement field of fen. Anything after the first
// whitespace is ignored. On error the board is zero and no placement is
// returned, so a caller can keep its previous position.
func LoadPosition(fen string) (base.Board, []Placement, error) {
	var board base.Board

	parts := strings.Fields(fen)
	if len(parts) == 0 {
		return base.Board{}, nil, fmt.Errorf("empty position: %w", base.ErrMalformedInput)
	}
	field := parts[0]
	if n := strings.Count(field, "/") + 1; n != base.BoardSide {
		return base.Board{}, nil, fmt.Errorf("must be 8 ranks, but there are %d: %w", n, base.ErrMalformedInput)
	}

	placements := make([]Placement, 0, 32)
	file, rank := 0, 0
	for _, ch := range field {
		if ch == '/' {
			if file != base.BoardSide {
				return base.Board{}, nil, rankError(rank, file)
			}
			file = 0
			rank++
			continue
		}

		if ch >= '0' && ch <= '9' {
			empty := int(ch - '0')
			if empty == 0 || file+empty > base.BoardSide {
				return base.Board{}, nil, fmt.Errorf("rank %d: run %q overflows file %d: %w", rank+1, ch, file, base.ErrMalformedInput)
			}
			file += empty
			continue
		}

		piece, err := base.ConvertPieceFromRune(ch)
		if err != nil {
			return base.Board{}, nil, fmt.Errorf("rank %d file %d: %w", rank+1, file+1, err)
		}
		if file >= base.BoardSide {
			return base.Board{}, nil, rankError(rank, file+1)
		}
		sq := base.Square{File: file, Rank: rank}
		board[sq.Index()] = piece
		placements = append(placements, Placement{Square: sq, Piece: piece})
		file++
	}
	if file != base.BoardSide {
		return base.Board{}, nil, rankError(rank, file)
	}

	return board, placements, nil
}

func rankError(rank, files int) error {
	return fmt.Errorf("rank %d must have 8 files, but there are %d: %w", rank+1, files, base.ErrMalformedInput)
}

// Placements lists the occupied squares of b in index order.
func Placements(b *base.Board) []Placement {
	out := make([]Placement, 0, 32)
	for idx, p := range b {
		if p.IsEmpty() {
			continue
		}
		sq, _ := base.SquareFromIndex(idx)
		out = append(out, Placement{Square: sq, Piece: p})
	}
	return out
}

// ConvertBoardToFEN writes the placement field in the same convention
// LoadPosition reads: rank 1 first, lowercase white.
func ConvertBoardToFEN(b *base.Board) string {
	var sb strings.Builder
	for rank := 0; rank < base.BoardSide; rank++ {
		empty := 0
		for file := 0; file < base.BoardSide; file++ {
			pc := b[rank*base.BoardSide+file]
			if pc.IsEmpty() {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteRune(base.ConvertRuneFromPiece(pc))
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if rank < base.BoardSide-1 {
			sb.WriteByte('/')
		}
	}
	return sb.String()
}
