package bot

import (
	"github.com/diamondburned/arikawa/v3/api"
	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/diamondburned/arikawa/v3/state"
)

var _ Client = (*state.State)(nil)

// Client is the part of the Discord API the bot uses.
type Client interface {
	RespondInteraction(id discord.InteractionID, token string, resp api.InteractionResponse) error
	InteractionResponse(appID discord.AppID, token string) (*discord.Message, error)

	Channel(id discord.ChannelID) (*discord.Channel, error)
	EditMessageComplex(channelID discord.ChannelID, messageID discord.MessageID, data api.EditMessageData) (*discord.Message, error)

	User(id discord.UserID) (*discord.User, error)
	CreatePrivateChannel(recipientID discord.UserID) (*discord.Channel, error)
	SendMessageComplex(channelID discord.ChannelID, data api.SendMessageData) (*discord.Message, error)
}
