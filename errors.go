package feen

import (
	"errors"
	"fmt"
	"strings"
)

// An ErrorKind classifies a parse failure.
type ErrorKind uint8

const (
	// NoErrorKind is the zero value and never reported by the parser.
	NoErrorKind ErrorKind = iota
	// EmptyInput indicates the record was empty after trimming.
	EmptyInput
	// FieldCountError indicates the record did not have exactly three fields.
	FieldCountError
	// EmptyFieldError indicates one of the three fields was empty.
	EmptyFieldError
	// StyleFieldCountError indicates the turn field did not hold two styles.
	StyleFieldCountError
	// StyleFormatError indicates a style was not a letter followed by letters or digits.
	StyleFormatError
	// StyleCaseError indicates both styles belong to the same side.
	StyleCaseError
	// MissingPieceIdentifier indicates input ended where a piece letter was expected.
	MissingPieceIdentifier
	// InvalidPieceLetter indicates a non-letter where a piece letter was expected.
	InvalidPieceLetter
	// HandFieldFormatError indicates the hand field did not have exactly one '/'.
	HandFieldFormatError
	// InvalidCountError indicates an explicit hand count of 0 or 1, or a leading zero.
	InvalidCountError
	// SortOrderError indicates a hand half was not in canonical order.
	SortOrderError
	// UnsupportedDimensionError indicates a placement with a third dimension.
	UnsupportedDimensionError
	// BoardTokenError indicates a malformed token inside a rank.
	BoardTokenError
)

var errorKindNames = [...]string{
	NoErrorKind:               "NoError",
	EmptyInput:                "EmptyInput",
	FieldCountError:           "FieldCountError",
	EmptyFieldError:           "EmptyFieldError",
	StyleFieldCountError:      "StyleFieldCountError",
	StyleFormatError:          "StyleFormatError",
	StyleCaseError:            "StyleCaseError",
	MissingPieceIdentifier:    "MissingPieceIdentifier",
	InvalidPieceLetter:        "InvalidPieceLetter",
	HandFieldFormatError:      "HandFieldFormatError",
	InvalidCountError:         "InvalidCountError",
	SortOrderError:            "SortOrderError",
	UnsupportedDimensionError: "UnsupportedDimensionError",
	BoardTokenError:           "BoardTokenError",
}

// String implements the fmt.Stringer interface.
func (k ErrorKind) String() string {
	if int(k) < len(errorKindNames) {
		return errorKindNames[k]
	}
	return fmt.Sprintf("ErrorKind(%d)", uint8(k))
}

// Sentinels for use with errors.Is. Any *Error of the same kind matches.
var (
	ErrEmptyInput             = &Error{Kind: EmptyInput}
	ErrFieldCount             = &Error{Kind: FieldCountError}
	ErrEmptyField             = &Error{Kind: EmptyFieldError}
	ErrStyleFieldCount        = &Error{Kind: StyleFieldCountError}
	ErrStyleFormat            = &Error{Kind: StyleFormatError}
	ErrStyleCase              = &Error{Kind: StyleCaseError}
	ErrMissingPieceIdentifier = &Error{Kind: MissingPieceIdentifier}
	ErrInvalidPieceLetter     = &Error{Kind: InvalidPieceLetter}
	ErrHandFieldFormat        = &Error{Kind: HandFieldFormatError}
	ErrInvalidCount           = &Error{Kind: InvalidCountError}
	ErrSortOrder              = &Error{Kind: SortOrderError}
	ErrUnsupportedDimension   = &Error{Kind: UnsupportedDimensionError}
	ErrBoardToken             = &Error{Kind: BoardTokenError}
)

// Field names used in Error.Field.
const (
	FieldPlacement = "placement"
	FieldHand      = "hand"
	FieldTurn      = "turn"
)

// Error describes a FEEN parse failure.
//
// Rank is the zero-based rank index for board errors and Half the hand half
// (0 first player, 1 second player) for hand errors; each is -1 when it does
// not apply. Offset is the byte offset inside that rank, half or field, or -1
// when the failure is not tied to a position.
type Error struct {
	Kind    ErrorKind
	Field   string
	Rank    int
	Half    int
	Offset  int
	Message string
	Err     error
}

func (e *Error) Error() string {
	var sb strings.Builder
	sb.WriteString("feen: ")
	if e.Field != "" {
		sb.WriteString(e.Field)
		sb.WriteString(": ")
	}
	sb.WriteString(e.Message)
	if inner, ok := e.Err.(*Error); ok {
		sb.WriteString(": ")
		sb.WriteString(inner.Message)
	} else if e.Err != nil {
		sb.WriteString(": ")
		sb.WriteString(e.Err.Error())
	}
	return sb.String()
}

// Unwrap returns the underlying piece grammar error, if any.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is an *Error of the same kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

func newError(kind ErrorKind, field, format string, args ...any) *Error {
	return &Error{
		Kind:    kind,
		Field:   field,
		Rank:    -1,
		Half:    -1,
		Offset:  -1,
		Message: fmt.Sprintf(format, args...),
	}
}

// KindOf returns the kind of the outermost *Error in err's chain, or
// NoErrorKind when err is not a parse failure.
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return NoErrorKind
}
