package commands

import (
	"github.com/diamondburned/arikawa/v3/api"
	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/starshine-sys/rsvp/common"
	"github.com/starshine-sys/rsvp/common/log"
	"github.com/urfave/cli/v2"

	// TOKEN and APP_ID can be set in a .env file
	_ "github.com/joho/godotenv/autoload"
)

var Command = &cli.Command{
	Name:   "commands",
	Usage:  "Synchronize slash commands",
	Action: run,
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:     "token",
			Usage:    "The bot's token",
			EnvVars:  []string{"TOKEN"},
			Required: true,
		},
		&cli.Uint64Flag{
			Name:     "app-id",
			Usage:    "The bot's application ID",
			EnvVars:  []string{"APP_ID"},
			Required: true,
		},
		&cli.BoolFlag{
			Name:  "global",
			Usage: "Synchronize slash commands globally (mutually exclusive with --guild)",
		},
		&cli.Uint64Flag{
			Name:  "guild",
			Usage: "Synchronize slash commands to a specific guild",
		},
	},
}

func run(c *cli.Context) error {
	global := c.Bool("global")
	guildID := discord.GuildID(c.Uint64("guild"))
	if global && guildID.IsValid() {
		return cli.Exit("`global` and `guild` are mutually exclusive", 1)
	}
	if !global && !guildID.IsValid() {
		return cli.Exit("Neither `global` nor `guild` were set", 1)
	}

	appID := discord.AppID(c.Uint64("app-id"))
	client := api.NewClient("Bot " + c.String("token"))

	if global {
		_, err := client.BulkOverwriteCommands(appID, common.Commands)
		if err != nil {
			return cli.Exit("Error overwriting commands: "+err.Error(), 1)
		}

		log.Info("Wrote global commands!")
		return nil
	}

	_, err := client.BulkOverwriteGuildCommands(appID, guildID, common.Commands)
	if err != nil {
		return cli.Exit("Error overwriting commands: "+err.Error(), 1)
	}

	log.Infof("Wrote guild commands in %v!", guildID)
	return nil
}
