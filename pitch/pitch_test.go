package pitch

import (
	"errors"
	"testing"

	"github.com/jsphweid/ragakey/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAllNames(t *testing.T) {
	for i, n := range Names() {
		got, err := Parse(n)
		require.NoError(t, err)
		assert.Equal(t, model.PitchClass(i), got)
		assert.Equal(t, n, Name(got))
	}
}

func TestParseTrimsWhitespace(t *testing.T) {
	got, err := Parse("  D#\n")
	require.NoError(t, err)
	assert.Equal(t, DSharp, got)
}

func TestParseRejectsUnknown(t *testing.T) {
	for _, token := range []string{"Db", "c", "H", "", "C##"} {
		t.Run(token, func(t *testing.T) {
			_, err := Parse(token)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrUnknownPitchName))

			var nameErr *UnknownPitchNameError
			require.True(t, errors.As(err, &nameErr))
			assert.Equal(t, token, nameErr.Token)
		})
	}
}

func TestNamesFrom(t *testing.T) {
	assert.Equal(t,
		[]string{"D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B", "C", "C#"},
		NamesFrom(D))
}

func TestNameWrapsAround(t *testing.T) {
	assert.Equal(t, "C", Name(12))
	assert.Equal(t, "B", Name(-1))
}

func TestNamesOf(t *testing.T) {
	assert.Equal(t, []string{"C", "D", "E", "G"}, NamesOf([]model.PitchClass{0, 2, 4, 7}))
}
