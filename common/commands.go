package common

import (
	"github.com/diamondburned/arikawa/v3/api"
	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/diamondburned/arikawa/v3/utils/json/option"
)

// Field length limits, matching Discord's embed limits.
const (
	MaxTitleLength       = 256
	MaxDescriptionLength = 3072
)

var Commands = []api.CreateCommandData{
	{
		Name:        "event",
		Description: "Creates a new event.",
		Options: discord.CommandOptions{
			&discord.StringOption{
				OptionName:  "title",
				Description: "What is your event called? (i.e., My awesome event)",
				MaxLength:   option.NewInt(MaxTitleLength),
			},
			&discord.StringOption{
				OptionName:  "datetime",
				Description: "When is your event? (i.e., October 2, 2023 10:00 PM)",
			},
			&discord.StringOption{
				OptionName:  "description",
				Description: "What is your event about? (i.e., An epic event for epic gamers.)",
				MaxLength:   option.NewInt(MaxDescriptionLength),
			},
			&discord.StringOption{
				OptionName:  "image",
				Description: "Add an image to your event. (i.e., https://i.imgur.com/w8as1S9.png)",
			},
		},
	},
	{
		Name:        "eventbot",
		Description: "Meta commands",
		Options: discord.CommandOptions{
			&discord.SubcommandOption{
				OptionName:  "help",
				Description: "Show help!",
			},
		},
	},
}
