package render

import (
	"strings"
	"testing"

	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/stretchr/testify/assert"
)

func TestRosterEmpty(t *testing.T) {
	assert.Equal(t, EmptyRoster, Roster(nil))
	assert.Equal(t, EmptyRoster, Roster([]discord.UserID{}))
}

func TestRoster(t *testing.T) {
	assert.Equal(t, "> <@1>\n> <@2>\n> <@3>", Roster([]discord.UserID{1, 2, 3}))
}

func TestRosterCapped(t *testing.T) {
	ids := make([]discord.UserID, 100)
	for i := range ids {
		ids[i] = discord.UserID(100000000000000000 + i)
	}

	out := Roster(ids)
	assert.LessOrEqual(t, len(out), MaxRosterLength)

	lines := strings.Split(out, "\n")
	// every line is "> <@" + 18 digits + ">", plus a newline between lines
	assert.Len(t, lines, 32)

	// the shown mentions are a prefix of the roster, in order
	for i, line := range lines {
		assert.Equal(t, "> "+ids[i].Mention(), line)
	}

	// the next mention would not have fit
	next := out + "\n> " + ids[len(lines)].Mention()
	assert.Greater(t, len(next), MaxRosterLength)
}
