package events

import (
	"context"

	"emperror.dev/errors"
	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/starshine-sys/rsvp/common/log"
	"github.com/starshine-sys/rsvp/render"
	"github.com/starshine-sys/rsvp/store"
)

var rsvpButtons = map[discord.ComponentID]store.RSVP{
	render.AttendID: store.RSVPAttend,
	render.MaybeID:  store.RSVPMaybe,
	render.PassID:   store.RSVPPass,
}

// rsvp moves the user into the roster for the button they pressed, or out of it if they were already in it.
func (bot *Bot) rsvp(ctx context.Context, ev *discord.InteractionEvent) error {
	data, ok := ev.Data.(*discord.ButtonInteraction)
	if !ok || ev.Message == nil {
		return nil
	}

	status, ok := rsvpButtons[data.CustomID]
	if !ok {
		return nil
	}

	event, err := bot.cardEvent(ctx, ev, ev.Message.ID)
	if err != nil {
		return nil
	}

	if event.Started {
		return bot.Reply(ev, "This event has already started.", true)
	}

	event, newStatus, err := bot.Events.ToggleRSVP(ctx, event.GuildID, event.MessageID, ev.SenderID(), status)
	if err != nil {
		return bot.ReportError(ev, errors.Wrap(err, "updating rosters"), updateFailed)
	}

	log.Debugf("user %v is now %v for event %v", ev.SenderID(), newStatus, event.ID)

	card := render.EventCard(event, bot.DisplayName(event.CreatorID))
	return bot.UpdateMessage(ev, card.Embed, card.Components)
}
