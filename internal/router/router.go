// Package router dispatches inbound gateway events to registered handlers.
package router

import (
	"context"
	"log/slog"

	"github.com/heisenbergtrx/barbarians-telegram-bot/internal/ports"
)

// HandlerFunc consumes a text or command message.
type HandlerFunc func(ctx context.Context, msg ports.TextMessage)

// CallbackFunc consumes a decision-button activation.
type CallbackFunc func(ctx context.Context, cb ports.Callback)

// Router keeps a mapping from command names to their handlers, plus
// fallbacks for plain text and callbacks. Command handlers always take
// precedence over the text handler.
type Router struct {
	commands map[string]HandlerFunc
	text     HandlerFunc
	callback CallbackFunc
	logger   *slog.Logger
}

var _ ports.EventHandler = (*Router)(nil)

// New builds an empty router.
func New(logger *slog.Logger) *Router {
	if logger == nil {
		logger = slog.Default()
	}
	return &Router{commands: map[string]HandlerFunc{}, logger: logger}
}

// Command adds or replaces the handler for a command name.
func (r *Router) Command(name string, fn HandlerFunc) {
	r.commands[name] = fn
}

// Text registers the handler for non-command messages.
func (r *Router) Text(fn HandlerFunc) {
	r.text = fn
}

// Callback registers the handler for button activations.
func (r *Router) Callback(fn CallbackFunc) {
	r.callback = fn
}

// HandleMessage routes one inbound message. Unknown commands are dropped
// so that a command never counts as a conversation answer.
func (r *Router) HandleMessage(ctx context.Context, msg ports.TextMessage) {
	if msg.Command != "" {
		fn, ok := r.commands[msg.Command]
		if !ok {
			r.logger.Debug("unknown command", "command", msg.Command, "chat_id", msg.ChatID)
			return
		}
		fn(ctx, msg)
		return
	}

	if r.text != nil {
		r.text(ctx, msg)
	}
}

// HandleCallback routes one button activation.
func (r *Router) HandleCallback(ctx context.Context, cb ports.Callback) {
	if r.callback == nil {
		r.logger.Debug("callback without handler", "data", cb.Data)
		return
	}
	r.callback(ctx, cb)
}
