package feen

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseHands(t *testing.T) {
	h, err := ParseHands("3P/2p")
	require.NoError(t, err)
	assert.Equal(t, Hand{{Piece: Piece{Letter: 'P'}, Count: 3}}, h.First)
	assert.Equal(t, Hand{{Piece: Piece{Letter: 'p'}, Count: 2}}, h.Second)
}

func TestParseHandsEmpty(t *testing.T) {
	h, err := ParseHands("/")
	require.NoError(t, err)
	assert.Empty(t, h.First)
	assert.Empty(t, h.Second)
	assert.Zero(t, h.First.Total())
}

func TestParseHandsSidesByPosition(t *testing.T) {
	// Halves belong to players by position, not by letter case.
	h, err := ParseHands("p/P")
	require.NoError(t, err)
	assert.Equal(t, "p", h.First.String())
	assert.Equal(t, "P", h.Second.String())
}

func TestParseHandsCanonical(t *testing.T) {
	for _, hand := range []string{
		"Pp/",
		"10P2B2b2pNn/",
		"2B2b2pNPp/",
		"+P-PP=p/",
		"3RBbSs/3r2g",
		"12P/11p",
		"/AaBbCc",
	} {
		t.Run(hand, func(t *testing.T) {
			h, err := ParseHands(hand)
			require.NoError(t, err)
			for _, side := range []Hand{h.First, h.Second} {
				assertCanonical(t, side)
			}
		})
	}
}

func TestParseHandsCounts(t *testing.T) {
	h, err := ParseHands("10P2B+N/")
	require.NoError(t, err)
	require.Len(t, h.First, 3)
	assert.Equal(t, 10, h.First[0].Count)
	assert.Equal(t, 2, h.First[1].Count)
	assert.Equal(t, 1, h.First[2].Count)
	assert.Equal(t, Piece{Prefix: '+', Letter: 'N'}, h.First[2].Piece)
	assert.Equal(t, 13, h.First.Total())
	assert.Equal(t, "10P2B+N", h.First.String())
}

func TestParseHandsErrors(t *testing.T) {
	tests := []struct {
		hand   string
		kind   ErrorKind
		half   int
		offset int
	}{
		{"2P3p", HandFieldFormatError, -1, -1},
		{"P/p/", HandFieldFormatError, -1, -1},
		{"1P/", InvalidCountError, 0, 0},
		{"0P/", InvalidCountError, 0, 0},
		{"P/1p", InvalidCountError, 1, 0},
		{"05P/", InvalidCountError, 0, 0},
		{"3/", MissingPieceIdentifier, 0, 1},
		{"+/", MissingPieceIdentifier, 0, 1},
		{"P=/*", InvalidPieceLetter, 1, 0},
		{"pP/", SortOrderError, 0, 1},
		{"P2B/", SortOrderError, 0, 1},
		{"BA/", SortOrderError, 0, 1},
		{"/bA", SortOrderError, 1, 1},
		{"2p2P/", SortOrderError, 0, 2},
	}
	for _, tt := range tests {
		t.Run(tt.hand, func(t *testing.T) {
			_, err := ParseHands(tt.hand)
			var fe *Error
			require.ErrorAs(t, err, &fe)
			assert.Equal(t, tt.kind, fe.Kind)
			assert.Equal(t, FieldHand, fe.Field)
			assert.Equal(t, tt.half, fe.Half)
			assert.Equal(t, -1, fe.Rank)
			assert.Equal(t, tt.offset, fe.Offset)
		})
	}
}

func TestExplicitCountOfOneOrZeroAlwaysFails(t *testing.T) {
	for _, hand := range []string{"1P/", "0P/", "/1p", "/0p", "2B1P/", "3R/2b1p", "1+P/", "00P/"} {
		_, err := ParseHands(hand)
		if !errors.Is(err, ErrInvalidCount) {
			t.Fatalf("ParseHands(%q) error = %v, want InvalidCountError", hand, err)
		}
	}
}

func TestParseHandsCountBound(t *testing.T) {
	h, err := ParseHands("65536P/")
	require.NoError(t, err)
	assert.Equal(t, MaxHandCount, h.First.Total())

	for _, hand := range []string{
		"65537P/",
		"9223372036854775807P9223372036854775807Q/",
		"/99999999999999999999p",
	} {
		_, err := ParseHands(hand)
		assert.ErrorIs(t, err, ErrInvalidCount, hand)
	}
}

func TestSortOrderErrorNamesPair(t *testing.T) {
	_, err := ParseHands("pP/")
	require.ErrorIs(t, err, ErrSortOrder)
	assert.Contains(t, err.Error(), "P must not follow p")
}

func TestHandOrdered(t *testing.T) {
	p := func(s string, n int) HandEntry {
		pc, err := ParsePiece(s)
		require.NoError(t, err)
		return HandEntry{Piece: pc, Count: n}
	}
	assert.True(t, handOrdered(p("P", 2), p("A", 1)))
	assert.False(t, handOrdered(p("A", 1), p("P", 2)))
	assert.True(t, handOrdered(p("a", 1), p("B", 1)))
	assert.False(t, handOrdered(p("b", 1), p("A", 1)))
	assert.True(t, handOrdered(p("P", 1), p("p", 1)))
	assert.False(t, handOrdered(p("p", 1), p("P", 1)))
	assert.False(t, handOrdered(p("+p", 1), p("P=", 1)))
	assert.True(t, handOrdered(p("P", 1), p("+P", 1)))
}

func assertCanonical(t *testing.T, h Hand) {
	t.Helper()
	for i := 1; i < len(h); i++ {
		a, b := h[i-1], h[i]
		if a.Count != b.Count {
			assert.Greater(t, a.Count, b.Count, "count at %d", i)
			continue
		}
		if a.Piece.Base() != b.Piece.Base() {
			assert.Less(t, a.Piece.Base(), b.Piece.Base(), "letter at %d", i)
			continue
		}
		assert.False(t, a.Piece.IsLower() && b.Piece.IsUpper(), "uppercase after lowercase at %d", i)
	}
}
