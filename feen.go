/*
Package feen parses and validates FEEN records. A record describes a board
position in three space-separated fields:

	<placement> <hand> <turn>

The placement field lists ranks separated by '/', where digits stand for
runs of empty squares and letters for pieces (uppercase for the first player,
lowercase for the second). The hand field lists the pieces each player holds,
first player on the left of its single '/'. The turn field names the style of
each side, the side to move written first.

Example usage:

	rec, err := feen.Parse("rnbk/pppp/4/PPPP/RNBK 2P/p CHESS/chess")
	if err != nil {
		var fe *feen.Error
		if errors.As(err, &fe) {
			fmt.Println(fe.Kind, fe.Field)
		}
		return
	}
	fmt.Println(rec.Styles.Active, rec.Board.Width(), rec.Hands.First)

Parsing is pure: every call builds a fresh Record and shares no state with
other calls, so Parse is safe for concurrent use.
*/
package feen

import "strings"

// A Record is a parsed FEEN record.
type Record struct {
	Board  Board
	Hands  Hands
	Styles StylePair
}

// Parse parses a FEEN record. The first validation failure is returned as an
// *Error; no partial record is returned.
func Parse(s string) (*Record, error) {
	placement, hand, turn, err := SplitFields(s)
	if err != nil {
		return nil, err
	}
	return ParseFields(placement, hand, turn)
}

// MustParse is like Parse but panics if s is not a valid record.
func MustParse(s string) *Record {
	r, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return r
}

// ParseFields parses the three fields of a record that has already been
// split. Fields are parsed in order placement, hand, turn and the first
// failure is returned.
func ParseFields(placement, hand, turn string) (*Record, error) {
	board, err := ParseBoard(placement)
	if err != nil {
		return nil, err
	}
	hands, err := ParseHands(hand)
	if err != nil {
		return nil, err
	}
	styles, err := ParseStyles(turn)
	if err != nil {
		return nil, err
	}
	return &Record{Board: board, Hands: hands, Styles: styles}, nil
}

// SplitFields trims s and splits it on single spaces into its placement,
// hand and turn fields.
func SplitFields(s string) (placement, hand, turn string, err error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", "", "", newError(EmptyInput, "", "empty record")
	}

	fields := strings.Split(s, " ")
	if len(fields) != 3 {
		return "", "", "", newError(FieldCountError, "",
			"record must contain three space-separated fields, got %d", len(fields))
	}
	for i, name := range [...]string{FieldPlacement, FieldHand, FieldTurn} {
		if strings.TrimSpace(fields[i]) == "" {
			return "", "", "", newError(EmptyFieldError, name, "field is empty")
		}
	}
	return fields[0], fields[1], fields[2], nil
}

// Flipped reports whether the side to move is the second (lowercase) player.
// Renderers use it to orient the board towards the side to move; it does not
// change the order of the parsed ranks.
func (r *Record) Flipped() bool {
	return !r.Styles.ActiveIsFirstPlayer()
}

// UnmarshalText implements the encoding.TextUnmarshaler interface.
func (r *Record) UnmarshalText(text []byte) error {
	rec, err := Parse(string(text))
	if err != nil {
		return err
	}
	*r = *rec
	return nil
}
