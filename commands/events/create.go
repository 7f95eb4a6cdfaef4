package events

import (
	"context"

	"emperror.dev/errors"
	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/starshine-sys/rsvp/common"
	"github.com/starshine-sys/rsvp/common/log"
	"github.com/starshine-sys/rsvp/render"
	"github.com/starshine-sys/rsvp/store"
)

func (bot *Bot) createCommand(ctx context.Context, ev *discord.InteractionEvent) error {
	data, ok := ev.Data.(*discord.CommandInteraction)
	if !ok {
		return nil
	}

	in := commandInput(data)

	if err := bot.checkContext(ev); err != nil {
		return bot.replyInputError(ev, err)
	}

	// the form is a new interaction, so this invocation ends here
	if !in.complete() {
		return bot.ReplyModal(ev, createModalID, "Create an event", eventForm(in))
	}

	return bot.create(ctx, ev, in)
}

func (bot *Bot) createModal(ctx context.Context, ev *discord.InteractionEvent) error {
	data, ok := ev.Data.(*discord.ModalInteraction)
	if !ok {
		return nil
	}

	if err := bot.checkContext(ev); err != nil {
		return bot.replyInputError(ev, err)
	}

	return bot.create(ctx, ev, modalInput(data))
}

// checkContext returns an error if ev was not sent in a guild text channel,
// as that's the only place a status card can be posted and edited later.
func (bot *Bot) checkContext(ev *discord.InteractionEvent) error {
	if !ev.GuildID.IsValid() {
		return &common.InputError{Kind: ErrUnsupportedContext, Message: "This command can only be used in a server."}
	}

	ch, err := bot.Client.Channel(ev.ChannelID)
	if err != nil {
		log.Errorf("getting channel %v: %v", ev.ChannelID, err)
		return &common.InputError{Kind: ErrUnsupportedContext, Message: "This command can only be used in a regular text channel."}
	}

	if ch.Type != discord.GuildText {
		return &common.InputError{Kind: ErrUnsupportedContext, Message: "This command can only be used in a regular text channel."}
	}
	return nil
}

// create validates in, stores the event, posts its status card, and links the two.
func (bot *Bot) create(ctx context.Context, ev *discord.InteractionEvent, in input) error {
	t, err := bot.validate(ctx, in)
	if err != nil {
		return bot.replyInputError(ev, err)
	}

	event, err := bot.Events.CreateEvent(ctx, store.Event{
		GuildID:     ev.GuildID,
		ChannelID:   ev.ChannelID,
		CreatorID:   ev.SenderID(),
		Title:       in.Title,
		Description: in.Description,
		Time:        t,
		Image:       in.Image,
		Rosters:     store.Rosters{}.Clone(),
	})
	if err != nil {
		return bot.ReportError(ev, errors.Wrap(err, "creating event"), createFailed)
	}

	card := render.EventCard(event, bot.DisplayName(event.CreatorID))

	err = bot.ReplyComponents(ev, card.Embed, card.Components, false)
	if err != nil {
		// the event was never posted, so nothing can reach it anymore
		if delErr := bot.Events.DeleteEvent(ctx, event.ID); delErr != nil {
			log.Errorf("deleting unposted event %v: %v", event.ID, delErr)
		}
		return bot.ReportError(ev, errors.Wrap(err, "posting status card"), createFailed)
	}

	// From here on the card is posted. If linking it fails, the event is left orphaned:
	// it's stored, but no status card or lookup will ever find it.
	msg, err := bot.Original(ev)
	if err != nil {
		log.Errorf("getting status card for event %v, event is orphaned: %v", event.ID, err)
		return nil
	}

	err = bot.Events.SetEventMessage(ctx, event.ID, msg.ChannelID, msg.ID)
	if err != nil {
		log.Errorf("linking event %v to message %v, event is orphaned: %v", event.ID, msg.ID, err)
		return nil
	}

	log.Debugf("created event %v in guild %v (message %v)", event.ID, event.GuildID, msg.ID)
	return nil
}
