package bot

import (
	"context"
	"sync"

	"github.com/diamondburned/arikawa/v3/api"
	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/starshine-sys/rsvp/common/log"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"
)

// Notifier sends direct messages in the background.
// Failures are logged and never returned.
type Notifier struct {
	client Client
	// shared by every batch
	sem *semaphore.Weighted

	wg sync.WaitGroup
}

// NewNotifier returns a Notifier that sends at most limit messages at once, across all batches.
func NewNotifier(client Client, limit int) *Notifier {
	if limit <= 0 {
		limit = 1
	}
	return &Notifier{client: client, sem: semaphore.NewWeighted(int64(limit))}
}

// Notify sends embed to every user in userIDs. It returns immediately;
// the returned channel is closed once every message has been attempted.
func (n *Notifier) Notify(userIDs []discord.UserID, embed discord.Embed) <-chan struct{} {
	done := make(chan struct{})
	ids := append([]discord.UserID(nil), userIDs...)

	n.wg.Add(1)
	go func() {
		defer n.wg.Done()
		defer close(done)

		var g errgroup.Group
		for _, id := range ids {
			id := id
			// Acquire only fails when the context is done
			_ = n.sem.Acquire(context.Background(), 1)

			g.Go(func() error {
				defer n.sem.Release(1)

				if err := n.send(id, embed); err != nil {
					log.Errorf("sending notification to %v: %v", id, err)
				}
				return nil
			})
		}

		_ = g.Wait()
	}()

	return done
}

func (n *Notifier) send(userID discord.UserID, embed discord.Embed) error {
	ch, err := n.client.CreatePrivateChannel(userID)
	if err != nil {
		return err
	}

	_, err = n.client.SendMessageComplex(ch.ID, api.SendMessageData{
		Embeds: []discord.Embed{embed},
	})
	return err
}

// Wait blocks until every batch started with Notify has finished.
func (n *Notifier) Wait() {
	n.wg.Wait()
}
