package render

import (
	"strings"

	"github.com/diamondburned/arikawa/v3/discord"
)

// MaxRosterLength is the most characters a roster field can take up.
const MaxRosterLength = 768

// EmptyRoster is shown for a roster with no users.
const EmptyRoster = "> -"

// Roster formats a list of users as quoted mentions, one per line.
// Mentions are added in order until the next one would go over MaxRosterLength.
func Roster(ids []discord.UserID) string {
	var b strings.Builder
	for _, id := range ids {
		line := "> " + id.Mention()
		extra := len(line)
		if b.Len() > 0 {
			extra++
		}

		if b.Len()+extra > MaxRosterLength {
			break
		}

		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line)
	}

	if b.Len() == 0 {
		return EmptyRoster
	}
	return b.String()
}
