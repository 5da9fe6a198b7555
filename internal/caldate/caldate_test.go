package caldate

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_BuildsLocalMidnight(t *testing.T) {
	got, err := Parse("2024-03-05")
	require.NoError(t, err)

	assert.Equal(t, 2024, got.Year())
	assert.Equal(t, time.March, got.Month())
	assert.Equal(t, 5, got.Day())
	assert.Equal(t, 0, got.Hour())
	assert.Equal(t, time.Local, got.Location())
}

func TestParse_RoundTripKeepsCalendarDay(t *testing.T) {
	// The display must reproduce the literal calendar day regardless of
	// which timezone the server runs in.
	cases := []struct {
		input string
		want  string
	}{
		{"2024-03-05", "March 05, 2024"},
		{"1999-12-31", "December 31, 1999"},
		{"2020-01-01", "January 01, 2020"},
	}

	for _, tc := range cases {
		got, err := Parse(tc.input)
		require.NoError(t, err)
		assert.Equal(t, tc.want, Display(got))
	}
}

func TestParse_EmptyReturnsCurrentInstant(t *testing.T) {
	before := time.Now()
	got, err := Parse("")
	after := time.Now()

	require.NoError(t, err)
	assert.False(t, got.Before(before))
	assert.False(t, got.After(after))
}

func TestParse_RejectsMalformedInput(t *testing.T) {
	for _, input := range []string{"2024", "2024-03", "not-a-date-at-all", "03/05/2024"} {
		_, err := Parse(input)
		assert.Error(t, err, "input %q", input)
	}
}

func TestParse_DoesNotValidateCalendar(t *testing.T) {
	// Out-of-range components are normalized, not rejected; the store
	// sees whatever time.Date makes of them.
	got, err := Parse("2024-13-01")
	require.NoError(t, err)
	assert.Equal(t, 2025, got.Year())
	assert.Equal(t, time.January, got.Month())
}
