package telegram

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/heisenbergtrx/barbarians-telegram-bot/internal/ports"
)

func TestCommandName(t *testing.T) {
	t.Parallel()

	cases := []struct {
		text string
		want string
	}{
		{"/start", "start"},
		{"/apply some argument", "apply"},
		{"/apply@barbarians_bot", "apply"},
		{"/APPLY", "apply"},
		{"plain answer", ""},
		{"answer with /slash inside", ""},
		{"/", ""},
	}

	for _, tc := range cases {
		if got := commandName(tc.text); got != tc.want {
			t.Fatalf("commandName(%q) = %q, want %q", tc.text, got, tc.want)
		}
	}
}

type recordingHandler struct {
	mu        sync.Mutex
	messages  []ports.TextMessage
	callbacks []ports.Callback
	events    chan struct{}
}

func newRecordingHandler() *recordingHandler {
	return &recordingHandler{events: make(chan struct{}, 16)}
}

func (h *recordingHandler) HandleMessage(_ context.Context, msg ports.TextMessage) {
	h.mu.Lock()
	h.messages = append(h.messages, msg)
	h.mu.Unlock()
	h.events <- struct{}{}
}

func (h *recordingHandler) HandleCallback(_ context.Context, cb ports.Callback) {
	h.mu.Lock()
	h.callbacks = append(h.callbacks, cb)
	h.mu.Unlock()
	h.events <- struct{}{}
}

func TestPollerDispatchesAndAdvancesOffset(t *testing.T) {
	t.Parallel()

	var (
		mu      sync.Mutex
		offsets []int64
	)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Offset int64 `json:"offset"`
		}
		_ = json.NewDecoder(r.Body).Decode(&req)

		mu.Lock()
		offsets = append(offsets, req.Offset)
		first := len(offsets) == 1
		mu.Unlock()

		if !first {
			_, _ = w.Write([]byte(`{"ok":true,"result":[]}`))
			return
		}

		updates := []Update{
			{UpdateID: 100, Message: &Message{
				MessageID: 1,
				From:      &User{ID: 42, FirstName: "Jane", Username: "janedoe_x"},
				Chat:      Chat{ID: 42, Type: "private"},
				Date:      1700000000,
				Text:      "/apply",
			}},
			{UpdateID: 101, CallbackQuery: &CallbackQuery{
				ID:   "cb-1",
				From: User{ID: 777, Username: "modhandle"},
				Message: &Message{
					MessageID: 7,
					Chat:      Chat{ID: -100},
					Date:      1700000100,
					Text:      "summary",
				},
				Data: "approve_42",
			}},
		}
		raw, _ := json.Marshal(updates)
		_, _ = w.Write([]byte(`{"ok":true,"result":` + string(raw) + `}`))
	}))
	defer server.Close()

	client := NewClient("TEST-TOKEN", server.Client())
	client.baseURL = server.URL

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	poller := NewPoller(client, 1, logger)
	handler := newRecordingHandler()

	ctx := context.Background()
	if err := poller.Start(ctx, handler); err != nil {
		t.Fatalf("Start error: %v", err)
	}

	for received := 0; received < 2; received++ {
		select {
		case <-handler.events:
		case <-time.After(2 * time.Second):
			t.Fatal("timed out waiting for dispatched events")
		}
	}

	if err := poller.Stop(ctx); err != nil {
		t.Fatalf("Stop error: %v", err)
	}

	handler.mu.Lock()
	defer handler.mu.Unlock()

	if len(handler.messages) != 1 {
		t.Fatalf("expected 1 message event, got %d", len(handler.messages))
	}
	msg := handler.messages[0]
	if msg.Command != "apply" || msg.Sender.ID != 42 || msg.ChatID != 42 {
		t.Fatalf("unexpected message event: %+v", msg)
	}
	if !msg.SentAt.Equal(time.Unix(1700000000, 0).UTC()) {
		t.Fatalf("unexpected message timestamp: %v", msg.SentAt)
	}

	if len(handler.callbacks) != 1 {
		t.Fatalf("expected 1 callback event, got %d", len(handler.callbacks))
	}
	cb := handler.callbacks[0]
	if cb.ID != "cb-1" || cb.Data != "approve_42" || cb.MessageID != 7 || cb.MessageText != "summary" {
		t.Fatalf("unexpected callback event: %+v", cb)
	}
	if cb.Sender.Username != "modhandle" {
		t.Fatalf("unexpected callback sender: %+v", cb.Sender)
	}

	mu.Lock()
	defer mu.Unlock()
	if len(offsets) < 2 {
		t.Fatalf("expected at least 2 polls, got %d", len(offsets))
	}
	if offsets[0] != 0 {
		t.Fatalf("first poll offset = %d, want 0", offsets[0])
	}
	if offsets[1] != 102 {
		t.Fatalf("second poll offset = %d, want 102", offsets[1])
	}
}

func TestPollerStopWithoutStart(t *testing.T) {
	t.Parallel()

	poller := NewPoller(NewClient("TEST-TOKEN", nil), 1, nil)
	if err := poller.Stop(context.Background()); err != nil {
		t.Fatalf("Stop error: %v", err)
	}
}
