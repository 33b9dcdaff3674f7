package feen

import "strings"

// Piece prefix modifiers.
const (
	Enhanced   byte = '+'
	Diminished byte = '-'
)

// Piece suffix markers.
const (
	Equal byte = '='
	Left  byte = '<'
	Right byte = '>'
)

// A Piece is a single piece identifier: an optional '+' or '-' prefix, one
// ASCII letter and an optional state suffix. The letter's case identifies the
// owning side on the board; it is not interpreted by the grammar.
type Piece struct {
	Prefix byte // 0 when absent
	Letter byte
	Suffix byte // 0 when absent
}

// ParsePiece parses s as exactly one piece token.
func ParsePiece(s string) (Piece, error) {
	p, n, err := scanPiece(s, 0)
	if err != nil {
		return Piece{}, err
	}
	if n != len(s) {
		e := newError(InvalidPieceLetter, "", "unexpected %q after piece %s", s[n:], p)
		e.Offset = n
		return Piece{}, e
	}
	return p, nil
}

// scanPiece recognizes one piece token starting at pos and returns the
// position following it.
func scanPiece(s string, pos int) (Piece, int, error) {
	var p Piece
	if pos < len(s) && isPrefix(s[pos]) {
		p.Prefix = s[pos]
		pos++
	}
	if pos >= len(s) {
		e := newError(MissingPieceIdentifier, "", "missing piece identifier")
		if p.Prefix != 0 {
			e.Message = "prefix " + string(p.Prefix) + " without piece identifier"
		}
		e.Offset = pos
		return Piece{}, pos, e
	}
	if !isLetter(s[pos]) {
		e := newError(InvalidPieceLetter, "", "invalid piece identifier %q", s[pos])
		if p.Prefix != 0 {
			e.Kind = MissingPieceIdentifier
			e.Message = "prefix " + string(p.Prefix) + " without piece identifier"
		}
		e.Offset = pos
		return Piece{}, pos, e
	}
	p.Letter = s[pos]
	pos++
	if pos < len(s) && isSuffix(s[pos]) {
		p.Suffix = s[pos]
		pos++
	}
	return p, pos, nil
}

// String returns the piece in FEEN notation, e.g. "+P=".
func (p Piece) String() string {
	var sb strings.Builder
	if p.Prefix != 0 {
		sb.WriteByte(p.Prefix)
	}
	sb.WriteByte(p.Letter)
	if p.Suffix != 0 {
		sb.WriteByte(p.Suffix)
	}
	return sb.String()
}

// IsUpper reports whether the piece letter is uppercase (first player).
func (p Piece) IsUpper() bool {
	return p.Letter >= 'A' && p.Letter <= 'Z'
}

// IsLower reports whether the piece letter is lowercase (second player).
func (p Piece) IsLower() bool {
	return p.Letter >= 'a' && p.Letter <= 'z'
}

// Base returns the piece letter in uppercase.
func (p Piece) Base() byte {
	return toUpper(p.Letter)
}

func isPrefix(c byte) bool {
	return c == Enhanced || c == Diminished
}

func isSuffix(c byte) bool {
	return c == Equal || c == Left || c == Right
}

func isLetter(c byte) bool {
	return (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z')
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func toUpper(c byte) byte {
	if c >= 'a' && c <= 'z' {
		return c - ('a' - 'A')
	}
	return c
}
