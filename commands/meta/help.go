package meta

import (
	"context"

	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/starshine-sys/rsvp/common"
)

func (bot *Bot) help(_ context.Context, ev *discord.InteractionEvent) (err error) {
	embed := discord.Embed{
		Title:       "Help",
		Description: "Schedule events and let people RSVP to them.",
		Color:       common.ColourPurple,
		Fields: []discord.EmbedField{
			{
				Name: "Creating events",
				Value: "Use `/event` with a title and a date and time, or without any options to fill in a form.\n" +
					"Dates can be written most ways, such as `2023-10-02 22:00` or `October 2, 2023 10:00 PM`.\n" +
					"Times without a timezone are in " + bot.Location.String() + ".",
			},
			{
				Name:  "RSVPs",
				Value: "Press **Attend**, **Maybe**, or **Pass** on an event. Press the same button again to remove yourself.",
			},
			{
				Name: "Changing events",
				Value: "The creator of an event can press ⚙️ to edit it or mark it as started.\n" +
					"Everyone attending an edited event gets a direct message about the change.",
			},
		},
		Footer: &discord.EmbedFooter{
			Text: "Version " + common.Version(),
		},
	}

	// support server invite
	if bot.Config.Info.SupportServer != "" {
		embed.Fields = append(embed.Fields, discord.EmbedField{
			Name:  "Support server",
			Value: "Use this link to join the support server: " + bot.Config.Info.SupportServer,
		})
	}

	// extra help fields defined in configuration
	if len(bot.Config.Info.HelpFields) > 0 {
		embed.Fields = append(embed.Fields, bot.Config.Info.HelpFields...)
	}

	return bot.ReplyEmbed(ev, embed, true)
}
