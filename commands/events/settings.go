package events

import (
	"context"
	"strings"

	"emperror.dev/errors"
	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/starshine-sys/rsvp/common"
	"github.com/starshine-sys/rsvp/render"
	"github.com/starshine-sys/rsvp/store"
)

// cardEvent returns the event whose status card a component was on.
// If it returns an error, the user has already been told about it.
func (bot *Bot) cardEvent(ctx context.Context, ev *discord.InteractionEvent, messageID discord.MessageID) (store.Event, error) {
	event, err := bot.Events.EventByMessage(ctx, ev.GuildID, messageID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return event, errors.Append(err, bot.Reply(ev, "This event could not be found.", true))
		}
		return event, errors.Append(err, bot.ReportError(ev, errors.Wrap(err, "getting event"), "This event could not be loaded."))
	}
	return event, nil
}

// creatorOnly tells the user off and returns false if they didn't create the event.
func (bot *Bot) creatorOnly(ev *discord.InteractionEvent, event store.Event) bool {
	if ev.SenderID() == event.CreatorID {
		return true
	}
	_ = bot.Reply(ev, "Only the creator of this event can change it.", true)
	return false
}

// settings shows the settings menu for the status card the button is on.
func (bot *Bot) settings(ctx context.Context, ev *discord.InteractionEvent) error {
	if ev.Message == nil {
		return nil
	}

	event, err := bot.cardEvent(ctx, ev, ev.Message.ID)
	if err != nil {
		return nil
	}

	if !bot.creatorOnly(ev, event) {
		return nil
	}

	id := event.MessageID.String()
	return bot.ReplyComponents(ev, render.Message("Settings for **"+event.Title+"**"), discord.ContainerComponents{
		&discord.ActionRowComponent{
			&discord.ButtonComponent{
				Label:    "Edit event",
				CustomID: discord.ComponentID(editButtonPrefix + id),
				Style:    discord.PrimaryButtonStyle(),
			},
			&discord.ButtonComponent{
				Label:    "Start event",
				CustomID: discord.ComponentID(startButtonPrefix + id),
				Style:    discord.SecondaryButtonStyle(),
				Disabled: event.Started,
			},
		},
	}, true)
}

// menuMessageID returns the status card message ID encoded in a settings menu button.
func menuMessageID(ev *discord.InteractionEvent, prefix string) (discord.MessageID, bool) {
	data, ok := ev.Data.(*discord.ButtonInteraction)
	if !ok {
		return 0, false
	}

	sf, err := discord.ParseSnowflake(strings.TrimPrefix(string(data.CustomID), prefix))
	if err != nil {
		return 0, false
	}
	return discord.MessageID(sf), true
}

// openEditForm stores the user's pending edit and shows them the edit form.
func (bot *Bot) openEditForm(ctx context.Context, ev *discord.InteractionEvent) error {
	msgID, ok := menuMessageID(ev, editButtonPrefix)
	if !ok {
		return nil
	}

	event, err := bot.cardEvent(ctx, ev, msgID)
	if err != nil {
		return nil
	}

	if !bot.creatorOnly(ev, event) {
		return nil
	}

	// any earlier pending edit is overwritten
	err = bot.Pending.SetPendingEdit(ctx, ev.SenderID(), store.PendingEdit{
		GuildID:   event.GuildID,
		ChannelID: event.ChannelID,
		MessageID: event.MessageID,
	})
	if err != nil {
		return bot.ReportError(ev, errors.Wrap(err, "setting pending edit"), "The edit form could not be opened.")
	}

	return bot.ReplyModal(ev, editModalID, "Edit event", eventForm(input{
		Title:       event.Title,
		Description: event.Description,
		DateTime:    common.FormatDateTime(event.Time, bot.Location),
		Image:       event.Image,
	}))
}

// start marks an event as started, which closes RSVPs.
func (bot *Bot) start(ctx context.Context, ev *discord.InteractionEvent) error {
	msgID, ok := menuMessageID(ev, startButtonPrefix)
	if !ok {
		return nil
	}

	event, err := bot.cardEvent(ctx, ev, msgID)
	if err != nil {
		return nil
	}

	if !bot.creatorOnly(ev, event) {
		return nil
	}

	started := true
	err = bot.Events.UpdateEvent(ctx, event.GuildID, event.MessageID, store.EventUpdate{Started: &started})
	if err != nil {
		return bot.ReportError(ev, errors.Wrap(err, "starting event"), updateFailed)
	}
	event.Started = true

	err = bot.editCard(event)
	if err != nil {
		return bot.ReportError(ev, errors.Wrap(err, "editing status card"), updateFailed)
	}

	return bot.UpdateMessage(ev, render.Message("**"+event.Title+"** has started."), discord.ContainerComponents{})
}
