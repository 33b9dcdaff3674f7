package feen

import (
	"strconv"
	"strings"
)

// MaxHandCount is the largest explicit count a hand entry may carry.
const MaxHandCount = 1 << 16

// A HandEntry is a piece held in hand together with how many copies are held.
type HandEntry struct {
	Piece Piece
	Count int
}

// String returns the entry in FEEN notation, e.g. "3P" or "+b".
func (e HandEntry) String() string {
	if e.Count > 1 {
		return strconv.Itoa(e.Count) + e.Piece.String()
	}
	return e.Piece.String()
}

// A Hand is one player's pieces in hand, in canonical order.
type Hand []HandEntry

// Total returns the number of pieces in the hand, counting copies.
func (h Hand) Total() int {
	n := 0
	for _, e := range h {
		n += e.Count
	}
	return n
}

// String returns the hand in FEEN notation.
func (h Hand) String() string {
	var sb strings.Builder
	for _, e := range h {
		sb.WriteString(e.String())
	}
	return sb.String()
}

// Hands holds the pieces in hand of both players. First is the left half of
// the hand field and Second the right half, whatever letter case they use.
type Hands struct {
	First  Hand
	Second Hand
}

// ParseHands parses the hand field, e.g. "2PB/p". Each half must already be
// in canonical order: count descending, then letter ascending ignoring case,
// then uppercase before lowercase.
func ParseHands(hand string) (Hands, error) {
	sep := strings.IndexByte(hand, '/')
	if sep < 0 || strings.Count(hand, "/") != 1 {
		return Hands{}, newError(HandFieldFormatError, FieldHand,
			"%q must contain exactly one \"/\" separating the two players", hand)
	}

	first, err := parseHandHalf(hand[:sep], 0)
	if err != nil {
		return Hands{}, err
	}
	second, err := parseHandHalf(hand[sep+1:], 1)
	if err != nil {
		return Hands{}, err
	}
	return Hands{First: first, Second: second}, nil
}

func parseHandHalf(s string, half int) (Hand, error) {
	var (
		hand    Hand
		offsets []int
	)
	pos := 0
	for pos < len(s) {
		start := pos
		count := 1
		if isDigit(s[pos]) {
			for pos < len(s) && isDigit(s[pos]) {
				pos++
			}
			digits := s[start:pos]
			n, err := strconv.Atoi(digits)
			if err != nil || n < 2 || n > MaxHandCount || digits[0] == '0' {
				e := newError(InvalidCountError, FieldHand,
					"invalid count %q: explicit counts must be between 2 and %d", digits, MaxHandCount)
				e.Half, e.Offset = half, start
				return nil, e
			}
			count = n
		}

		p, next, err := scanPiece(s, pos)
		if err != nil {
			e := err.(*Error)
			e.Field, e.Half = FieldHand, half
			return nil, e
		}
		pos = next

		hand = append(hand, HandEntry{Piece: p, Count: count})
		offsets = append(offsets, start)
	}

	for i := 1; i < len(hand); i++ {
		if !handOrdered(hand[i-1], hand[i]) {
			e := newError(SortOrderError, FieldHand,
				"%s must not follow %s", hand[i], hand[i-1])
			e.Half, e.Offset = half, offsets[i]
			return nil, e
		}
	}
	return hand, nil
}

// handOrdered reports whether b may directly follow a in a hand half.
func handOrdered(a, b HandEntry) bool {
	if a.Count != b.Count {
		return a.Count > b.Count
	}
	if a.Piece.Base() != b.Piece.Base() {
		return a.Piece.Base() < b.Piece.Base()
	}
	return !(a.Piece.IsLower() && b.Piece.IsUpper())
}
