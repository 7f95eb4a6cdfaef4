package store

import (
	"testing"

	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRostersToggle(t *testing.T) {
	var r Rosters

	assert.Equal(t, RSVPAttend, r.Toggle(1, RSVPAttend))
	assert.Equal(t, RSVPMaybe, r.Toggle(2, RSVPMaybe))
	assert.Equal(t, []discord.UserID{1}, r.Attendees)
	assert.Equal(t, []discord.UserID{2}, r.Maybe)

	// moving removes the user from their old roster
	assert.Equal(t, RSVPPass, r.Toggle(1, RSVPPass))
	assert.Empty(t, r.Attendees)
	assert.Equal(t, []discord.UserID{1}, r.Pass)

	// the same answer twice removes the user
	assert.Equal(t, RSVPNone, r.Toggle(1, RSVPPass))
	assert.Equal(t, RSVPNone, r.Status(1))
	assert.Empty(t, r.Pass)

	assert.Equal(t, RSVPNone, r.Toggle(2, RSVPNone))
	assert.Empty(t, r.Maybe)
}

func TestRostersExclusive(t *testing.T) {
	var r Rosters
	answers := []RSVP{RSVPAttend, RSVPMaybe, RSVPPass, RSVPMaybe, RSVPAttend, RSVPAttend, RSVPPass}

	for i, a := range answers {
		r.Toggle(discord.UserID(i%3+1), a)

		seen := map[discord.UserID]int{}
		for _, l := range [][]discord.UserID{r.Attendees, r.Maybe, r.Pass} {
			for _, id := range l {
				seen[id]++
			}
		}
		for id, n := range seen {
			assert.Equal(t, 1, n, "user %v is in %d rosters", id, n)
		}
	}
}

func TestRostersKeepsOrder(t *testing.T) {
	var r Rosters
	for _, id := range []discord.UserID{5, 3, 9, 1} {
		r.Toggle(id, RSVPAttend)
	}
	r.Toggle(3, RSVPAttend)

	assert.Equal(t, []discord.UserID{5, 9, 1}, r.Attendees)
}

func TestRostersClone(t *testing.T) {
	r := Rosters{Attendees: []discord.UserID{1, 2}}
	c := r.Clone()
	c.Attendees[0] = 3

	assert.Equal(t, discord.UserID(1), r.Attendees[0])
	assert.NotNil(t, c.Maybe)
	assert.NotNil(t, c.Pass)
}

func TestRostersValueScan(t *testing.T) {
	r := Rosters{
		Attendees: []discord.UserID{1, 2},
		Pass:      []discord.UserID{3},
	}

	v, err := r.Value()
	require.NoError(t, err)

	s, ok := v.(string)
	require.True(t, ok)
	assert.JSONEq(t, `{"attendees":["1","2"],"maybe":[],"pass":["3"]}`, s)

	var out Rosters
	require.NoError(t, out.Scan([]byte(s)))
	assert.Equal(t, r.Clone(), out)

	require.NoError(t, out.Scan(nil))
	assert.Equal(t, Rosters{}, out)

	assert.Error(t, out.Scan(42))
	assert.Error(t, out.Scan("not json"))
}
