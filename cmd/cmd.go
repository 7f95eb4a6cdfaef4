package cmd

import (
	"os"

	"github.com/starshine-sys/rsvp/cmd/bot"
	"github.com/starshine-sys/rsvp/cmd/commands"
	"github.com/starshine-sys/rsvp/cmd/migrate"
	"github.com/starshine-sys/rsvp/common"
	"github.com/urfave/cli/v2"
)

var app = &cli.App{
	Name:    "rsvp",
	Usage:   "Discord event scheduling bot",
	Version: common.Version(),

	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "Path to the configuration file",
			Value:   "config.toml",
		},
	},

	Commands: []*cli.Command{
		bot.Command,
		migrate.Command,
		commands.Command,
	},
}

func Run() error {
	return app.Run(os.Args)
}
