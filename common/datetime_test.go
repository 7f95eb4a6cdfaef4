package common

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDateTime(t *testing.T) {
	pdt := time.FixedZone("PDT", -7*60*60)

	tests := []struct {
		in   string
		loc  *time.Location
		want time.Time
	}{
		{"2023-10-02 22:00", nil, time.Date(2023, 10, 2, 22, 0, 0, 0, time.UTC)},
		{"2023-10-02 22:00:00", time.UTC, time.Date(2023, 10, 2, 22, 0, 0, 0, time.UTC)},
		{"  2023-10-02 22:00  ", time.UTC, time.Date(2023, 10, 2, 22, 0, 0, 0, time.UTC)},
		{"2023-10-02T22:00:00Z", pdt, time.Date(2023, 10, 2, 22, 0, 0, 0, time.UTC)},
		{"2023-10-02T22:00:00-07:00", time.UTC, time.Date(2023, 10, 2, 22, 0, 0, 0, pdt)},
		{"2023-10-02 22:00", pdt, time.Date(2023, 10, 2, 22, 0, 0, 0, pdt)},
		// abbreviations that don't belong to loc
		{"October 2, 2023 10:00 PM PST", time.UTC, time.Date(2023, 10, 3, 6, 0, 0, 0, time.UTC)},
		{"2023-10-02 22:00 PDT", time.UTC, time.Date(2023, 10, 3, 5, 0, 0, 0, time.UTC)},
		{"2023-10-02 22:00 EST", pdt, time.Date(2023, 10, 3, 3, 0, 0, 0, time.UTC)},
		{"2023-10-02 22:00 UTC", pdt, time.Date(2023, 10, 2, 22, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseDateTime(tt.in, tt.loc)
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "got %v, want %v", got, tt.want)
		})
	}
}

func TestResolveZone(t *testing.T) {
	// a parsed abbreviation Go couldn't resolve
	bogus := time.Date(2023, 10, 2, 22, 0, 0, 0, time.FixedZone("QQT", 0))
	_, ok := resolveZone(bogus, time.UTC)
	assert.False(t, ok)

	pst := time.Date(2023, 10, 2, 22, 0, 0, 0, time.FixedZone("PST", 0))
	got, ok := resolveZone(pst, time.UTC)
	require.True(t, ok)
	_, offset := got.Zone()
	assert.Equal(t, -8*60*60, offset)
	assert.Equal(t, 22, got.Hour())

	// zero offset abbreviation of loc itself
	wet := time.FixedZone("WET", 0)
	own := time.Date(2023, 1, 2, 22, 0, 0, 0, wet)
	got, ok = resolveZone(own, wet)
	require.True(t, ok)
	assert.True(t, own.Equal(got))
}

func TestParseDateTimeInvalid(t *testing.T) {
	for _, in := range []string{"", "   ", "not a date"} {
		_, err := ParseDateTime(in, nil)
		assert.ErrorIs(t, err, ErrInvalidDate, "input %q", in)

		msg, ok := UserMessage(err)
		assert.True(t, ok)
		assert.NotEmpty(t, msg)
	}
}

func TestFormatDateTimeRoundTrip(t *testing.T) {
	pdt := time.FixedZone("PDT", -7*60*60)
	want := time.Date(2023, 10, 2, 22, 0, 0, 0, time.UTC)

	for _, loc := range []*time.Location{nil, time.UTC, pdt} {
		s := FormatDateTime(want, loc)

		got, err := ParseDateTime(s, loc)
		require.NoError(t, err)
		assert.True(t, want.Equal(got), "%q parsed as %v", s, got)

		// formatting again gives the same text
		assert.Equal(t, s, FormatDateTime(got, loc))
	}

	assert.Equal(t, "2023-10-02T15:00:00-07:00", FormatDateTime(want, pdt))
}
