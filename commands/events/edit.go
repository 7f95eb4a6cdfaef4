package events

import (
	"context"

	"emperror.dev/errors"
	"github.com/diamondburned/arikawa/v3/api"
	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/starshine-sys/rsvp/common/log"
	"github.com/starshine-sys/rsvp/render"
	"github.com/starshine-sys/rsvp/store"
)

// editModal applies a submitted edit form to the event in the user's pending edit.
func (bot *Bot) editModal(ctx context.Context, ev *discord.InteractionEvent) error {
	data, ok := ev.Data.(*discord.ModalInteraction)
	if !ok {
		return nil
	}

	in := modalInput(data)

	// invalid input leaves the pending edit alone, so the form can be submitted again
	t, err := bot.validate(ctx, in)
	if err != nil {
		return bot.replyInputError(ev, err)
	}

	userID := ev.SenderID()

	// a missing pending edit is reported the same as any other failure
	pe, err := bot.Pending.PendingEdit(ctx, userID)
	if err != nil {
		return bot.ReportError(ev, errors.Wrap(err, "getting pending edit"), updateFailed)
	}

	before, err := bot.Events.EventByMessage(ctx, pe.GuildID, pe.MessageID)
	if err != nil {
		// the event was deleted since the form was opened
		if errors.Is(err, store.ErrNotFound) {
			bot.clearPendingEdit(ctx, userID)
		}
		return bot.ReportError(ev, errors.Wrap(err, "getting event"), updateFailed)
	}

	updateErr := bot.Events.UpdateEvent(ctx, pe.GuildID, pe.MessageID, store.EventUpdate{
		Title:       &in.Title,
		Description: &in.Description,
		Time:        &t,
		Image:       &in.Image,
	})

	// the pending edit is cleared whether or not the update worked
	bot.clearPendingEdit(ctx, userID)

	if updateErr != nil {
		return bot.ReportError(ev, errors.Wrap(updateErr, "updating event"), updateFailed)
	}

	after, err := bot.Events.EventByMessage(ctx, pe.GuildID, pe.MessageID)
	if err != nil {
		return bot.ReportError(ev, errors.Wrap(err, "getting updated event"), updateFailed)
	}

	err = bot.editCard(after)
	if err != nil {
		return bot.ReportError(ev, errors.Wrap(err, "editing status card"), updateFailed)
	}

	err = bot.ReplyEmbed(ev, render.Updated(after), false)
	if err != nil {
		return bot.ReportError(ev, errors.Wrap(err, "sending reply"), updateFailed)
	}

	bot.Notifier.Notify(after.Rosters.Attendees, render.EditNotification(before, after))
	return nil
}

func (bot *Bot) clearPendingEdit(ctx context.Context, userID discord.UserID) {
	if err := bot.Pending.ClearPendingEdit(ctx, userID); err != nil {
		log.Errorf("clearing pending edit for %v: %v", userID, err)
	}
}

// editCard re-renders an event's status card in place.
func (bot *Bot) editCard(ev store.Event) error {
	card := render.EventCard(ev, bot.DisplayName(ev.CreatorID))

	_, err := bot.Client.EditMessageComplex(ev.ChannelID, ev.MessageID, api.EditMessageData{
		Embeds:     card.Embeds(),
		Components: &card.Components,
	})
	return err
}
