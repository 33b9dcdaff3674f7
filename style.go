package feen

import "strings"

// StylePair holds the two styles of the turn field.
//
// First and Second are the styles in the order written. Active is the style
// whose turn it is, always the one written first. FirstPlayer is the
// uppercase style and SecondPlayer the lowercase one, whichever side of the
// separator carried them.
type StylePair struct {
	First        string
	Second       string
	Active       string
	FirstPlayer  string
	SecondPlayer string
}

// ActiveIsFirstPlayer reports whether the uppercase style is to move.
func (s StylePair) ActiveIsFirstPlayer() bool {
	return s.Active == s.FirstPlayer
}

// ParseStyles parses the turn field, e.g. "CHESS/shogi".
//
// A style is a letter followed by letters or digits. A lowercase style has
// no uppercase letter. An uppercase style is either all uppercase or
// capitalized ("CHESS", "Chess"). Any other mix of cases is a StyleCaseError.
func ParseStyles(turn string) (StylePair, error) {
	halves := strings.Split(turn, "/")
	if len(halves) != 2 || halves[0] == "" || halves[1] == "" {
		return StylePair{}, newError(StyleFieldCountError, FieldTurn,
			"%q must contain two styles separated by \"/\"", turn)
	}

	for i, h := range halves {
		if off := styleFormatOffset(h); off >= 0 {
			e := newError(StyleFormatError, FieldTurn,
				"style %q must be a letter followed by letters or digits", h)
			e.Offset = off
			if i == 1 {
				e.Offset += len(halves[0]) + 1
			}
			return StylePair{}, e
		}
	}

	for _, h := range halves {
		if styleCaseOf(h) == mixedCase {
			return StylePair{}, newError(StyleCaseError, FieldTurn,
				"style %q mixes cases; it must be uppercase, capitalized or lowercase", h)
		}
	}

	first, second := halves[0], halves[1]
	firstCase, secondCase := styleCaseOf(first), styleCaseOf(second)
	if firstCase == secondCase {
		side := "lowercase"
		if firstCase == upperCase {
			side = "uppercase"
		}
		return StylePair{}, newError(StyleCaseError, FieldTurn,
			"styles %q and %q are both %s; one must be uppercase and one lowercase", first, second, side)
	}
	firstUpper := firstCase == upperCase

	pair := StylePair{
		First:        first,
		Second:       second,
		Active:       first,
		FirstPlayer:  first,
		SecondPlayer: second,
	}
	if !firstUpper {
		pair.FirstPlayer, pair.SecondPlayer = second, first
	}
	return pair, nil
}

// styleFormatOffset returns the offset of the first character breaking the
// style grammar, or -1 if s is well formed.
func styleFormatOffset(s string) int {
	if !isLetter(s[0]) {
		return 0
	}
	for i := 1; i < len(s); i++ {
		if !isLetter(s[i]) && !isDigit(s[i]) {
			return i
		}
	}
	return -1
}

type styleCase uint8

const (
	mixedCase styleCase = iota
	upperCase
	lowerCase
)

// styleCaseOf classifies a well formed style. Digits carry no case.
func styleCaseOf(s string) styleCase {
	var upper, lower int
	for i := 1; i < len(s); i++ {
		switch {
		case s[i] >= 'A' && s[i] <= 'Z':
			upper++
		case s[i] >= 'a' && s[i] <= 'z':
			lower++
		}
	}
	if s[0] >= 'a' && s[0] <= 'z' {
		if upper == 0 {
			return lowerCase
		}
		return mixedCase
	}
	// Leading uppercase: all uppercase, or capitalized.
	if lower == 0 || upper == 0 {
		return upperCase
	}
	return mixedCase
}
