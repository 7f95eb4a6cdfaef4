package bot

import (
	"context"
	"strings"
	"sync"

	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/starshine-sys/rsvp/common/log"
)

// HandlerFunc handles a single interaction.
type HandlerFunc func(ctx context.Context, ev *discord.InteractionEvent) error

// Router routes interactions to handlers by command name or component/modal custom ID.
type Router struct {
	mu sync.RWMutex

	commands map[string]HandlerFunc
	modals   map[discord.ComponentID]HandlerFunc
	buttons  map[discord.ComponentID]HandlerFunc
	// prefixed handlers are matched in the order they were added
	buttonPrefixes []prefixHandler
}

type prefixHandler struct {
	prefix string
	fn     HandlerFunc
}

func NewRouter() *Router {
	return &Router{
		commands: make(map[string]HandlerFunc),
		modals:   make(map[discord.ComponentID]HandlerFunc),
		buttons:  make(map[discord.ComponentID]HandlerFunc),
	}
}

// Command adds a handler for a slash command. Subcommands are given as "command/subcommand".
func (r *Router) Command(path string, fn HandlerFunc) {
	r.mu.Lock()
	r.commands[path] = fn
	r.mu.Unlock()
}

// Modal adds a handler for a modal submission with the given custom ID.
func (r *Router) Modal(id discord.ComponentID, fn HandlerFunc) {
	r.mu.Lock()
	r.modals[id] = fn
	r.mu.Unlock()
}

// Button adds a handler for a button with the given custom ID.
func (r *Router) Button(id discord.ComponentID, fn HandlerFunc) {
	r.mu.Lock()
	r.buttons[id] = fn
	r.mu.Unlock()
}

// ButtonPrefix adds a handler for all buttons whose custom ID starts with prefix.
func (r *Router) ButtonPrefix(prefix string, fn HandlerFunc) {
	r.mu.Lock()
	r.buttonPrefixes = append(r.buttonPrefixes, prefixHandler{prefix, fn})
	r.mu.Unlock()
}

// Execute runs the handler for ev, if any.
func (r *Router) Execute(ctx context.Context, ev *discord.InteractionEvent) error {
	fn, ok := r.handler(ev)
	if !ok {
		log.Debugf("no handler for interaction %v (%T)", ev.ID, ev.Data)
		return nil
	}
	return fn(ctx, ev)
}

func (r *Router) handler(ev *discord.InteractionEvent) (HandlerFunc, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	switch data := ev.Data.(type) {
	case *discord.CommandInteraction:
		fn, ok := r.commands[CommandPath(data)]
		return fn, ok
	case *discord.ModalInteraction:
		fn, ok := r.modals[data.CustomID]
		return fn, ok
	case *discord.ButtonInteraction:
		if fn, ok := r.buttons[data.CustomID]; ok {
			return fn, true
		}
		for _, h := range r.buttonPrefixes {
			if strings.HasPrefix(string(data.CustomID), h.prefix) {
				return h.fn, true
			}
		}
	}
	return nil, false
}

// CommandPath returns the command name, followed by a subcommand if one was used.
func CommandPath(data *discord.CommandInteraction) string {
	if len(data.Options) == 1 && data.Options[0].Type == discord.SubcommandOptionType {
		return data.Name + "/" + data.Options[0].Name
	}
	return data.Name
}
