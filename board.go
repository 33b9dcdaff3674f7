package feen

import (
	"strconv"
	"strings"
)

// MaxRankLength is the largest number of squares a single rank may hold.
const MaxRankLength = 1 << 16

// A Rank is one row of the board, in the order written. A nil element is an
// empty square.
type Rank []*Piece

// A Board is the parsed placement field. Ranks may have different lengths;
// they are not padded. A Board is not modified after ParseBoard returns it
// and callers must not modify its ranks or the pieces they point to; every
// parse allocates its own.
type Board struct {
	Ranks []Rank
	width int
}

// Width returns the length of the longest rank, the number of columns a
// renderer needs.
func (b Board) Width() int {
	return b.width
}

// Height returns the number of ranks.
func (b Board) Height() int {
	return len(b.Ranks)
}

// At returns the piece at the given rank and file, or nil when the square is
// empty or outside the rank.
func (b Board) At(rank, file int) *Piece {
	if rank < 0 || rank >= len(b.Ranks) || file < 0 || file >= len(b.Ranks[rank]) {
		return nil
	}
	return b.Ranks[rank][file]
}

// Pieces returns the number of occupied squares.
func (b Board) Pieces() int {
	n := 0
	for _, r := range b.Ranks {
		for _, c := range r {
			if c != nil {
				n++
			}
		}
	}
	return n
}

// Draw returns a plain-text picture of the board, one line per rank, with
// '.' for empty squares. It is meant for debugging and test output.
func (b Board) Draw() string {
	var sb strings.Builder
	for _, r := range b.Ranks {
		for i, c := range r {
			if i > 0 {
				sb.WriteByte(' ')
			}
			if c == nil {
				sb.WriteByte('.')
				continue
			}
			sb.WriteString(c.String())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// ParseBoard parses the placement field, e.g. "rnbk/pppp/4/PPPP/RNBK".
// Only one and two dimensional boards are supported: a "//" separator
// always fails with UnsupportedDimensionError.
func ParseBoard(placement string) (Board, error) {
	if i := strings.Index(placement, "//"); i >= 0 {
		e := newError(UnsupportedDimensionError, FieldPlacement,
			"only 1D and 2D boards are supported")
		e.Offset = i
		return Board{}, e
	}

	rows := strings.Split(placement, "/")
	b := Board{Ranks: make([]Rank, 0, len(rows))}
	for i, row := range rows {
		r, err := parseRank(row, i)
		if err != nil {
			return Board{}, err
		}
		b.Ranks = append(b.Ranks, r)
		b.width = max(b.width, len(r))
	}
	return b, nil
}

func parseRank(row string, index int) (Rank, error) {
	r := Rank{}
	pos := 0
	for pos < len(row) {
		c := row[pos]
		if isDigit(c) {
			start := pos
			for pos < len(row) && isDigit(row[pos]) {
				pos++
			}
			digits := row[start:pos]
			n, err := strconv.Atoi(digits)
			if err != nil || c == '0' || n > MaxRankLength-len(r) {
				e := newError(BoardTokenError, FieldPlacement,
					"rank %d: invalid empty square count %q at offset %d", index, digits, start)
				e.Rank, e.Offset = index, start
				return nil, e
			}
			for k := 0; k < n; k++ {
				r = append(r, nil)
			}
			continue
		}

		p, next, err := scanPiece(row, pos)
		if err != nil {
			e := newError(BoardTokenError, FieldPlacement,
				"rank %d: invalid piece at offset %d", index, pos)
			e.Rank, e.Offset = index, pos
			e.Err = err
			return nil, e
		}
		if len(r) == MaxRankLength {
			e := newError(BoardTokenError, FieldPlacement,
				"rank %d: more than %d squares", index, MaxRankLength)
			e.Rank, e.Offset = index, pos
			return nil, e
		}
		pos = next
		r = append(r, &p)
	}
	return r, nil
}
