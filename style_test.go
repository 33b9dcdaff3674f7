package feen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStyles(t *testing.T) {
	tests := []struct {
		name         string
		turn         string
		active       string
		firstPlayer  string
		secondPlayer string
	}{
		{"uppercase first", "X/x", "X", "X", "x"},
		{"lowercase first", "shogi/CHESS", "shogi", "CHESS", "shogi"},
		{"digits", "XIANGQI2/makruk", "XIANGQI2", "XIANGQI2", "makruk"},
		{"capitalized", "Chess/chess", "Chess", "Chess", "chess"},
		{"capitalized second", "chess/Chess", "chess", "Chess", "chess"},
		{"capitalized with digits", "Shogi9/chess960", "Shogi9", "Shogi9", "chess960"},
		{"single letters", "x/Y", "x", "Y", "x"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseStyles(tt.turn)
			require.NoError(t, err)
			assert.Equal(t, tt.active, got.Active)
			assert.Equal(t, tt.firstPlayer, got.FirstPlayer)
			assert.Equal(t, tt.secondPlayer, got.SecondPlayer)
			assert.Equal(t, got.Active, got.First)
		})
	}
}

func TestActiveIsFirstPlayer(t *testing.T) {
	s, err := ParseStyles("CHESS/shogi")
	require.NoError(t, err)
	assert.True(t, s.ActiveIsFirstPlayer())

	s, err = ParseStyles("shogi/CHESS")
	require.NoError(t, err)
	assert.False(t, s.ActiveIsFirstPlayer())
	assert.Equal(t, "shogi", s.Active)
	assert.Equal(t, "CHESS", s.Second)
}

func TestParseStylesErrors(t *testing.T) {
	tests := []struct {
		turn string
		kind ErrorKind
	}{
		{"X", StyleFieldCountError},
		{"X/", StyleFieldCountError},
		{"/x", StyleFieldCountError},
		{"X/x/y", StyleFieldCountError},
		{"1X/x", StyleFormatError},
		{"X/x-y", StyleFormatError},
		{"X_/x", StyleFormatError},
		{"CHESS/SHOGI", StyleCaseError},
		{"chess/shogi", StyleCaseError},
		{"Chess/Shogi", StyleCaseError},
		{"xY/X", StyleCaseError},
		{"CHESS/cHeSs", StyleCaseError},
		{"ChEsS/shogi", StyleCaseError},
		{"CHess/shogi", StyleCaseError},
		{"chess/sHOGI", StyleCaseError},
	}
	for _, tt := range tests {
		t.Run(tt.turn, func(t *testing.T) {
			_, err := ParseStyles(tt.turn)
			require.Error(t, err)
			assert.Equal(t, tt.kind, KindOf(err))

			var fe *Error
			require.ErrorAs(t, err, &fe)
			assert.Equal(t, FieldTurn, fe.Field)
		})
	}
}

func TestStyleCaseErrorNamesMixedStyle(t *testing.T) {
	_, err := ParseStyles("ChEsS/shogi")
	require.ErrorIs(t, err, ErrStyleCase)
	assert.EqualError(t, err, `feen: turn: style "ChEsS" mixes cases; it must be uppercase, capitalized or lowercase`)
}

func TestStyleFormatErrorOffset(t *testing.T) {
	_, err := ParseStyles("X/ab-c")
	var fe *Error
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, 4, fe.Offset)
}
