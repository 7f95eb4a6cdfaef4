package bot

import (
	"time"

	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/getsentry/sentry-go"
	"github.com/google/uuid"
	"github.com/starshine-sys/rsvp/common/log"
	"github.com/starshine-sys/rsvp/render"
)

// ReportError logs err, sends it to Sentry if it's configured, and tells the user that msg.
// The user never sees err itself.
func (bot *Bot) ReportError(ev *discord.InteractionEvent, err error, msg string) error {
	log.Errorf("error in interaction %v: %v", ev.ID, err)

	embed := render.ErrorMessage(msg)
	embed.Timestamp = discord.NowTimestamp()

	if bot.Config.Auth.Sentry != "" {
		hub := sentry.CurrentHub().Clone()
		hub.ConfigureScope(func(scope *sentry.Scope) {
			if id := ev.SenderID(); id.IsValid() {
				scope.SetUser(sentry.User{ID: id.String()})
			}
			if ev.GuildID.IsValid() {
				scope.SetTag("guild", ev.GuildID.String())
			}
		})

		hub.AddBreadcrumb(&sentry.Breadcrumb{
			Data: map[string]any{
				"user":        ev.SenderID(),
				"interaction": ev.ID,
			},
			Level:     sentry.LevelError,
			Timestamp: time.Now().UTC(),
		}, nil)

		id := hub.CaptureException(err)
		if id == nil {
			uid := uuid.New().String()
			id = (*sentry.EventID)(&uid)
		}

		embed.Footer = &discord.EmbedFooter{
			Text: "Error code: " + string(*id),
		}
	}

	return bot.ReplyEmbed(ev, embed, true)
}
