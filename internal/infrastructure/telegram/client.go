package telegram

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const defaultBaseURL = "https://api.telegram.org"

// Client calls the Telegram Bot API over HTTP.
type Client struct {
	token   string
	baseURL string
	http    *http.Client
}

// NewClient registers the bot token; a nil http.Client gets a timeout
// generous enough to outlive a long-poll cycle.
func NewClient(token string, client *http.Client) *Client {
	if client == nil {
		client = &http.Client{Timeout: 65 * time.Second}
	}
	return &Client{token: token, baseURL: defaultBaseURL, http: client}
}

type apiResponse struct {
	OK          bool            `json:"ok"`
	Description string          `json:"description,omitempty"`
	Result      json.RawMessage `json:"result,omitempty"`
}

func (c *Client) call(ctx context.Context, method string, payload any, result any) error {
	if c.token == "" {
		return fmt.Errorf("telegram client misconfigured: empty token")
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal %s payload: %w", method, err)
	}

	endpoint := fmt.Sprintf("%s/bot%s/%s", c.baseURL, c.token, method)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("new %s request: %w", method, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s: %w", method, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return fmt.Errorf("read %s response: %w", method, err)
	}

	var api apiResponse
	if err := json.Unmarshal(raw, &api); err != nil {
		return fmt.Errorf("decode %s response (%s): %w", method, resp.Status, err)
	}
	if !api.OK {
		desc := strings.TrimSpace(api.Description)
		if desc == "" {
			desc = resp.Status
		}
		return fmt.Errorf("telegram %s error: %s", method, desc)
	}

	if result != nil && len(api.Result) > 0 {
		if err := json.Unmarshal(api.Result, result); err != nil {
			return fmt.Errorf("decode %s result: %w", method, err)
		}
	}

	return nil
}

// GetMe fetches the bot's own identity; used as a startup credential check.
func (c *Client) GetMe(ctx context.Context) (User, error) {
	var me User
	if err := c.call(ctx, "getMe", struct{}{}, &me); err != nil {
		return User{}, err
	}
	return me, nil
}

// GetUpdates long-polls for inbound updates past the given offset.
func (c *Client) GetUpdates(ctx context.Context, offset int64, timeoutSeconds int) ([]Update, error) {
	payload := map[string]any{
		"offset":          offset,
		"timeout":         timeoutSeconds,
		"allowed_updates": []string{"message", "callback_query"},
	}

	var updates []Update
	if err := c.call(ctx, "getUpdates", payload, &updates); err != nil {
		return nil, err
	}
	return updates, nil
}

// SendMessageRequest carries the knobs of sendMessage this bot uses.
type SendMessageRequest struct {
	ChatID      int64                 `json:"chat_id"`
	Text        string                `json:"text"`
	ParseMode   string                `json:"parse_mode,omitempty"`
	ReplyMarkup *InlineKeyboardMarkup `json:"reply_markup,omitempty"`
}

// SendMessage delivers a text message.
func (c *Client) SendMessage(ctx context.Context, req SendMessageRequest) (Message, error) {
	var msg Message
	if err := c.call(ctx, "sendMessage", req, &msg); err != nil {
		return Message{}, err
	}
	return msg, nil
}

// EditMessageTextRequest addresses an already delivered message.
type EditMessageTextRequest struct {
	ChatID    int64  `json:"chat_id"`
	MessageID int    `json:"message_id"`
	Text      string `json:"text"`
	ParseMode string `json:"parse_mode,omitempty"`
}

// EditMessageText rewrites a delivered message in place.
func (c *Client) EditMessageText(ctx context.Context, req EditMessageTextRequest) error {
	return c.call(ctx, "editMessageText", req, nil)
}

// CreateChatInviteLink creates an invite link for the chat, limited to the
// given number of members and valid until expireAt.
func (c *Client) CreateChatInviteLink(ctx context.Context, chatID int64, memberLimit int, expireAt time.Time) (ChatInviteLink, error) {
	payload := map[string]any{
		"chat_id":      chatID,
		"member_limit": memberLimit,
		"expire_date":  expireAt.Unix(),
	}

	var link ChatInviteLink
	if err := c.call(ctx, "createChatInviteLink", payload, &link); err != nil {
		return ChatInviteLink{}, err
	}
	return link, nil
}

// AnswerCallbackQuery stops the client-side loading state of a button press.
func (c *Client) AnswerCallbackQuery(ctx context.Context, callbackID string) error {
	return c.call(ctx, "answerCallbackQuery", map[string]any{"callback_query_id": callbackID}, nil)
}
