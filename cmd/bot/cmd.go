package bot

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"emperror.dev/errors"
	"github.com/getsentry/sentry-go"
	"github.com/starshine-sys/rsvp/bot"
	"github.com/starshine-sys/rsvp/commands/events"
	"github.com/starshine-sys/rsvp/commands/meta"
	"github.com/starshine-sys/rsvp/common"
	"github.com/starshine-sys/rsvp/common/log"
	"github.com/starshine-sys/rsvp/web/server"
	"github.com/urfave/cli/v2"
)

var Command = &cli.Command{
	Name:   "bot",
	Usage:  "Run the bot",
	Action: run,
	Flags: []cli.Flag{
		&cli.BoolFlag{
			Name:  "memory",
			Usage: "Keep events in memory instead of Postgres and Redis. Nothing is saved across restarts.",
		},
	},
}

func run(c *cli.Context) error {
	conf, err := bot.ReadConfig(c.String("config"))
	if err != nil {
		return errors.Wrap(err, "reading config")
	}

	// set up sentry
	if conf.Auth.Sentry != "" {
		log.Debug("setting up sentry")
		err := sentry.Init(sentry.ClientOptions{
			Dsn:     conf.Auth.Sentry,
			Release: common.Version(),
		})
		if err != nil {
			log.Fatalf("setting up sentry: %v", err)
		}
		defer sentry.Flush(2 * time.Second)

		log.Debug("set up sentry")
	} else {
		log.Debugf("sentry DSN was not provided, not setting it up")
	}

	var b *bot.Bot
	if c.Bool("memory") {
		log.Warn("Running with in-memory storage, events will be lost on restart!")
		b = bot.NewInMemory(conf)
	} else {
		b, err = bot.New(conf)
		if err != nil {
			return errors.Wrap(err, "creating bot")
		}
	}

	events.Setup(b) // event commands, forms, and buttons
	meta.Setup(b)   // help

	ctx, cancel := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	err = b.Open(ctx)
	if err != nil {
		return errors.Wrap(err, "opening gateway connection")
	}

	defer func() {
		err = b.Close()
		if err != nil {
			log.Errorf("closing bot: %v", err)
		}
		log.Info("Disconnected from Discord.")
	}()

	me, err := b.Me()
	if err != nil {
		return errors.Wrap(err, "fetching bot user")
	}
	log.Infof("Connected to Discord as %v (%v). Press Ctrl-C or send an interrupt signal to stop.", me.Tag(), me.ID)

	// sync slash commands *if needed*
	if !conf.Bot.NoSyncCommands {
		err = b.SyncCommands()
		if err != nil {
			log.Errorf("Error syncing slash commands: %v", err)
		}
	} else {
		log.Infof("Note: not syncing slash commands. Set no_sync_commands to false to sync commands")
	}

	if conf.Web.Port != "" {
		srv := &http.Server{
			Addr:              conf.Web.Port,
			Handler:           server.New(b.Events),
			ReadHeaderTimeout: 10 * time.Second,
		}

		go func() {
			log.Infof("HTTP API listening on %v", conf.Web.Port)
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				log.Errorf("serving HTTP API: %v", err)
			}
		}()

		defer func() {
			sctx, scancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer scancel()
			if err := srv.Shutdown(sctx); err != nil {
				log.Errorf("shutting down HTTP API: %v", err)
			}
		}()
	}

	<-ctx.Done()
	log.Infof("Interrupt signal received. Shutting down...")
	return nil
}
