package telegram

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/heisenbergtrx/barbarians-telegram-bot/internal/ports"
)

const errBackoff = 3 * time.Second

// Poller long-polls getUpdates and feeds events to a handler. Updates are
// dispatched strictly sequentially: one event is handled to completion
// before the next is fetched.
type Poller struct {
	client  *Client
	timeout int
	logger  *slog.Logger
	stop    chan struct{}
	done    chan struct{}
}

var _ ports.UpdateFeed = (*Poller)(nil)

// NewPoller sets up a feed with the given long-poll timeout in seconds.
func NewPoller(client *Client, timeoutSeconds int, logger *slog.Logger) *Poller {
	if timeoutSeconds <= 0 {
		timeoutSeconds = 50
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Poller{client: client, timeout: timeoutSeconds, logger: logger}
}

// Start begins polling in its own goroutine.
func (p *Poller) Start(ctx context.Context, handler ports.EventHandler) error {
	if handler == nil {
		return nil
	}
	if p.stop != nil {
		return nil
	}

	p.stop = make(chan struct{})
	p.done = make(chan struct{})
	go p.loop(ctx, handler)
	return nil
}

// Stop halts the polling goroutine and waits for it to drain.
func (p *Poller) Stop(ctx context.Context) error {
	if p.stop == nil {
		return nil
	}

	close(p.stop)
	select {
	case <-p.done:
	case <-ctx.Done():
		return ctx.Err()
	}
	p.stop = nil
	return nil
}

func (p *Poller) loop(ctx context.Context, handler ports.EventHandler) {
	defer close(p.done)

	var offset int64
	for {
		select {
		case <-ctx.Done():
			return
		case <-p.stop:
			return
		default:
		}

		updates, err := p.client.GetUpdates(ctx, offset, p.timeout)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			p.logger.Error("get updates", "error", err)
			select {
			case <-time.After(errBackoff):
			case <-ctx.Done():
				return
			case <-p.stop:
				return
			}
			continue
		}

		for _, update := range updates {
			if update.UpdateID >= offset {
				offset = update.UpdateID + 1
			}
			p.dispatch(ctx, handler, update)
		}
	}
}

func (p *Poller) dispatch(ctx context.Context, handler ports.EventHandler, update Update) {
	switch {
	case update.Message != nil && update.Message.From != nil && update.Message.Text != "":
		handler.HandleMessage(ctx, toTextMessage(*update.Message))
	case update.CallbackQuery != nil:
		cb, ok := toCallback(*update.CallbackQuery)
		if !ok {
			p.logger.Debug("callback without message", "callback_id", update.CallbackQuery.ID)
			return
		}
		handler.HandleCallback(ctx, cb)
	}
}

func toTextMessage(msg Message) ports.TextMessage {
	return ports.TextMessage{
		ChatID:  msg.Chat.ID,
		Sender:  toSender(*msg.From),
		Text:    msg.Text,
		Command: commandName(msg.Text),
		SentAt:  time.Unix(msg.Date, 0).UTC(),
	}
}

func toCallback(q CallbackQuery) (ports.Callback, bool) {
	if q.Message == nil {
		return ports.Callback{}, false
	}
	return ports.Callback{
		ID:          q.ID,
		Sender:      toSender(q.From),
		ChatID:      q.Message.Chat.ID,
		MessageID:   q.Message.MessageID,
		MessageText: q.Message.Text,
		SentAt:      time.Unix(q.Message.Date, 0).UTC(),
		Data:        q.Data,
	}, true
}

func toSender(u User) ports.Sender {
	return ports.Sender{
		ID:        u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Username:  u.Username,
	}
}

// commandName extracts the bare command from "/name@bot args" texts and
// returns "" for plain messages.
func commandName(text string) string {
	if !strings.HasPrefix(text, "/") {
		return ""
	}

	name := strings.Fields(text)[0][1:]
	if at := strings.Index(name, "@"); at >= 0 {
		name = name[:at]
	}
	return strings.ToLower(name)
}
