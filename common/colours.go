package common

import "github.com/diamondburned/arikawa/v3/discord"

// Embed colours
const (
	ColourGreen  discord.Color = 0x57f287
	ColourRed    discord.Color = 0xed4245
	ColourPurple discord.Color = 0x9b59b6
	ColourBlue   discord.Color = 0x3498db
)
