package ports

import (
	"context"
	"time"
)

// Sender identifies the platform user behind an inbound event.
type Sender struct {
	ID        int64
	FirstName string
	LastName  string
	Username  string
}

// TextMessage is a text or command message received from a chat.
type TextMessage struct {
	ChatID int64
	Sender Sender
	Text   string
	// Command holds the bare command name (no slash, no bot suffix) when
	// the message is a command, and is empty otherwise.
	Command string
	SentAt  time.Time
}

// Callback is a decision-button activation on a previously sent message.
type Callback struct {
	ID          string
	Sender      Sender
	ChatID      int64
	MessageID   int
	MessageText string
	SentAt      time.Time
	Data        string
}

// Button is one inline decision affordance attached to a message.
type Button struct {
	Label string
	Data  string
}

// Outgoing describes a message to deliver.
type Outgoing struct {
	ChatID   int64
	Text     string
	Markdown bool
	Buttons  [][]Button
}

// Messenger delivers and edits chat messages.
type Messenger interface {
	Send(ctx context.Context, msg Outgoing) error
	Edit(ctx context.Context, chatID int64, messageID int, text string) error
}

// Inviter creates invite links scoped to a destination chat.
type Inviter interface {
	CreateInviteLink(ctx context.Context, chatID int64, memberLimit int, expireAt time.Time) (string, error)
}

// CallbackAnswerer acknowledges button activations back to the platform.
type CallbackAnswerer interface {
	AnswerCallback(ctx context.Context, callbackID string) error
}

// EventHandler consumes inbound gateway events.
type EventHandler interface {
	HandleMessage(ctx context.Context, msg TextMessage)
	HandleCallback(ctx context.Context, cb Callback)
}

// UpdateFeed streams inbound events from the messaging platform.
type UpdateFeed interface {
	Start(ctx context.Context, handler EventHandler) error
	Stop(ctx context.Context) error
}
