package bot

import (
	"github.com/diamondburned/arikawa/v3/discord"
)

// User returns a user from the cache, or from Discord's API if the user is not cached.
func (bot *Bot) User(userID discord.UserID) (*discord.User, error) {
	if v, err := bot.users.Get(userID.String()); err == nil {
		if u, ok := v.(*discord.User); ok {
			return u, nil
		}
	}

	u, err := bot.Client.User(userID)
	if err != nil {
		return nil, err
	}

	_ = bot.users.Set(userID.String(), u)
	return u, nil
}

// DisplayName returns the name to show for a user: their global display name if they have one,
// otherwise their username. A placeholder is returned if they can't be fetched.
func (bot *Bot) DisplayName(userID discord.UserID) string {
	u, err := bot.User(userID)
	if err != nil {
		return "unknown user (" + userID.String() + ")"
	}
	if u.DisplayName != "" {
		return u.DisplayName
	}
	return u.Username
}
