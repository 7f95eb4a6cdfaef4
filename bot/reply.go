package bot

import (
	"github.com/diamondburned/arikawa/v3/api"
	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/diamondburned/arikawa/v3/utils/json/option"
	"github.com/starshine-sys/rsvp/render"
)

// Reply responds to an interaction with a plain message embed.
func (bot *Bot) Reply(ev *discord.InteractionEvent, text string, ephemeral bool) error {
	return bot.ReplyEmbed(ev, render.Message(text), ephemeral)
}

// ReplyEmbed responds to an interaction with an embed.
func (bot *Bot) ReplyEmbed(ev *discord.InteractionEvent, embed discord.Embed, ephemeral bool) error {
	data := api.InteractionResponseData{
		Embeds: &[]discord.Embed{embed},
	}
	if ephemeral {
		data.Flags = discord.EphemeralMessage
	}

	return bot.Respond(ev, api.InteractionResponse{
		Type: api.MessageInteractionWithSource,
		Data: &data,
	})
}

// ReplyComponents responds to an interaction with an embed and components.
func (bot *Bot) ReplyComponents(ev *discord.InteractionEvent, embed discord.Embed, components discord.ContainerComponents, ephemeral bool) error {
	data := api.InteractionResponseData{
		Embeds:     &[]discord.Embed{embed},
		Components: &components,
	}
	if ephemeral {
		data.Flags = discord.EphemeralMessage
	}

	return bot.Respond(ev, api.InteractionResponse{
		Type: api.MessageInteractionWithSource,
		Data: &data,
	})
}

// ReplyModal responds to an interaction by showing a modal.
func (bot *Bot) ReplyModal(ev *discord.InteractionEvent, id discord.ComponentID, title string, components discord.ContainerComponents) error {
	return bot.Respond(ev, api.InteractionResponse{
		Type: api.ModalResponse,
		Data: &api.InteractionResponseData{
			CustomID:   option.NewNullableString(string(id)),
			Title:      option.NewNullableString(title),
			Components: &components,
		},
	})
}

// UpdateMessage responds to a component interaction by editing the message the component is on.
func (bot *Bot) UpdateMessage(ev *discord.InteractionEvent, embed discord.Embed, components discord.ContainerComponents) error {
	return bot.Respond(ev, api.InteractionResponse{
		Type: api.UpdateMessage,
		Data: &api.InteractionResponseData{
			Embeds:     &[]discord.Embed{embed},
			Components: &components,
		},
	})
}

func (bot *Bot) Respond(ev *discord.InteractionEvent, resp api.InteractionResponse) error {
	return bot.Client.RespondInteraction(ev.ID, ev.Token, resp)
}

// Original returns the message sent as the response to ev.
func (bot *Bot) Original(ev *discord.InteractionEvent) (*discord.Message, error) {
	return bot.Client.InteractionResponse(ev.AppID, ev.Token)
}
