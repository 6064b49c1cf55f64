package telegram

import (
	"context"
	"fmt"
	"time"

	"github.com/heisenbergtrx/barbarians-telegram-bot/internal/ports"
)

// Gateway adapts the Bot API client to the ports the core depends on.
type Gateway struct {
	client *Client
}

var _ ports.Messenger = (*Gateway)(nil)
var _ ports.Inviter = (*Gateway)(nil)
var _ ports.CallbackAnswerer = (*Gateway)(nil)

// NewGateway wraps a client.
func NewGateway(client *Client) *Gateway {
	return &Gateway{client: client}
}

// Send delivers a message, attaching inline buttons when present.
func (g *Gateway) Send(ctx context.Context, msg ports.Outgoing) error {
	req := SendMessageRequest{ChatID: msg.ChatID, Text: msg.Text}
	if msg.Markdown {
		req.ParseMode = "Markdown"
	}
	req.ReplyMarkup = buttonMarkup(msg.Buttons)

	if _, err := g.client.SendMessage(ctx, req); err != nil {
		return fmt.Errorf("send message: %w", err)
	}
	return nil
}

// Edit rewrites a previously delivered message's text in place.
func (g *Gateway) Edit(ctx context.Context, chatID int64, messageID int, text string) error {
	req := EditMessageTextRequest{
		ChatID:    chatID,
		MessageID: messageID,
		Text:      text,
		ParseMode: "Markdown",
	}
	if err := g.client.EditMessageText(ctx, req); err != nil {
		return fmt.Errorf("edit message: %w", err)
	}
	return nil
}

// CreateInviteLink creates a member-limited, time-bounded invite link and
// returns its address.
func (g *Gateway) CreateInviteLink(ctx context.Context, chatID int64, memberLimit int, expireAt time.Time) (string, error) {
	link, err := g.client.CreateChatInviteLink(ctx, chatID, memberLimit, expireAt)
	if err != nil {
		return "", fmt.Errorf("create invite link: %w", err)
	}
	return link.InviteLink, nil
}

// AnswerCallback acknowledges an inline-button press.
func (g *Gateway) AnswerCallback(ctx context.Context, callbackID string) error {
	if err := g.client.AnswerCallbackQuery(ctx, callbackID); err != nil {
		return fmt.Errorf("answer callback: %w", err)
	}
	return nil
}

func buttonMarkup(rows [][]ports.Button) *InlineKeyboardMarkup {
	if len(rows) == 0 {
		return nil
	}

	markup := &InlineKeyboardMarkup{InlineKeyboard: make([][]InlineKeyboardButton, 0, len(rows))}
	for _, row := range rows {
		buttons := make([]InlineKeyboardButton, 0, len(row))
		for _, b := range row {
			buttons = append(buttons, InlineKeyboardButton{Text: b.Label, CallbackData: b.Data})
		}
		markup.InlineKeyboard = append(markup.InlineKeyboard, buttons)
	}
	return markup
}
