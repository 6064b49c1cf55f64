package usecase

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/heisenbergtrx/barbarians-telegram-bot/internal/ports"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type recordedEdit struct {
	chatID    int64
	messageID int
	text      string
}

// fakeMessenger records deliveries and can be told to fail a single chat.
type fakeMessenger struct {
	sent     []ports.Outgoing
	edits    []recordedEdit
	failChat int64
	failEdit bool
}

var _ ports.Messenger = (*fakeMessenger)(nil)

func (f *fakeMessenger) Send(_ context.Context, msg ports.Outgoing) error {
	if f.failChat != 0 && msg.ChatID == f.failChat {
		return fmt.Errorf("chat %d unreachable", msg.ChatID)
	}
	f.sent = append(f.sent, msg)
	return nil
}

func (f *fakeMessenger) Edit(_ context.Context, chatID int64, messageID int, text string) error {
	if f.failEdit {
		return fmt.Errorf("edit rejected")
	}
	f.edits = append(f.edits, recordedEdit{chatID: chatID, messageID: messageID, text: text})
	return nil
}

func (f *fakeMessenger) sentTo(chatID int64) []ports.Outgoing {
	var out []ports.Outgoing
	for _, msg := range f.sent {
		if msg.ChatID == chatID {
			out = append(out, msg)
		}
	}
	return out
}

type inviteCall struct {
	chatID      int64
	memberLimit int
	expireAt    time.Time
}

// fakeInviter hands out a fixed link or a fixed error.
type fakeInviter struct {
	link  string
	err   error
	calls []inviteCall
}

var _ ports.Inviter = (*fakeInviter)(nil)

func (f *fakeInviter) CreateInviteLink(_ context.Context, chatID int64, memberLimit int, expireAt time.Time) (string, error) {
	f.calls = append(f.calls, inviteCall{chatID: chatID, memberLimit: memberLimit, expireAt: expireAt})
	if f.err != nil {
		return "", f.err
	}
	return f.link, nil
}

type fakeAnswerer struct {
	answered []string
}

var _ ports.CallbackAnswerer = (*fakeAnswerer)(nil)

func (f *fakeAnswerer) AnswerCallback(_ context.Context, callbackID string) error {
	f.answered = append(f.answered, callbackID)
	return nil
}
