package bot

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/diamondburned/arikawa/v3/api"
	"github.com/diamondburned/arikawa/v3/discord"
)

type fakeClient struct {
	mu sync.Mutex

	users        map[discord.UserID]int
	displayNames map[discord.UserID]string
	dms       map[discord.UserID]int
	responses []api.InteractionResponse

	failDM   discord.UserID
	inFlight int32
	maxSeen  int32
}

func newFakeClient() *fakeClient {
	return &fakeClient{
		users:        make(map[discord.UserID]int),
		displayNames: make(map[discord.UserID]string),
		dms:          make(map[discord.UserID]int),
	}
}

func (c *fakeClient) RespondInteraction(_ discord.InteractionID, _ string, resp api.InteractionResponse) error {
	c.mu.Lock()
	c.responses = append(c.responses, resp)
	c.mu.Unlock()
	return nil
}

func (c *fakeClient) InteractionResponse(discord.AppID, string) (*discord.Message, error) {
	return &discord.Message{}, nil
}

func (c *fakeClient) Channel(id discord.ChannelID) (*discord.Channel, error) {
	return &discord.Channel{ID: id, Type: discord.GuildText}, nil
}

func (c *fakeClient) EditMessageComplex(channelID discord.ChannelID, messageID discord.MessageID, _ api.EditMessageData) (*discord.Message, error) {
	return &discord.Message{ID: messageID, ChannelID: channelID}, nil
}

func (c *fakeClient) User(id discord.UserID) (*discord.User, error) {
	c.mu.Lock()
	c.users[id]++
	name := c.displayNames[id]
	c.mu.Unlock()

	if id == c.failDM {
		return nil, errTest
	}
	return &discord.User{ID: id, Username: "user" + id.String(), DisplayName: name}, nil
}

func (c *fakeClient) CreatePrivateChannel(id discord.UserID) (*discord.Channel, error) {
	if id == c.failDM {
		return nil, errTest
	}
	return &discord.Channel{ID: discord.ChannelID(id), Type: discord.DirectMessage}, nil
}

func (c *fakeClient) SendMessageComplex(channelID discord.ChannelID, _ api.SendMessageData) (*discord.Message, error) {
	n := atomic.AddInt32(&c.inFlight, 1)
	defer atomic.AddInt32(&c.inFlight, -1)

	for {
		seen := atomic.LoadInt32(&c.maxSeen)
		if n <= seen || atomic.CompareAndSwapInt32(&c.maxSeen, seen, n) {
			break
		}
	}
	time.Sleep(2 * time.Millisecond)

	c.mu.Lock()
	c.dms[discord.UserID(channelID)]++
	c.mu.Unlock()
	return &discord.Message{ChannelID: channelID}, nil
}
