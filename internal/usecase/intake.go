package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heisenbergtrx/barbarians-telegram-bot/internal/domain"
	"github.com/heisenbergtrx/barbarians-telegram-bot/internal/ports"
)

// Intake drives the six-question application conversation. Answers only
// ever reach it for their own sender, so the store partitions all state by
// applicant ID.
type Intake struct {
	store     *ConversationStore
	messenger ports.Messenger
	adminChat int64
	logger    *slog.Logger
}

// IntakeDeps wires the collaborators the intake flow needs.
type IntakeDeps struct {
	Store       *ConversationStore
	Messenger   ports.Messenger
	AdminChatID int64
	Logger      *slog.Logger
}

// NewIntake constructs the conversation state machine.
func NewIntake(deps IntakeDeps) *Intake {
	if deps.Logger == nil {
		deps.Logger = slog.Default()
	}
	return &Intake{
		store:     deps.Store,
		messenger: deps.Messenger,
		adminChat: deps.AdminChatID,
		logger:    deps.Logger,
	}
}

// Greet welcomes a user who sent /start and points them at /apply.
func (i *Intake) Greet(ctx context.Context, msg ports.TextMessage) {
	text := fmt.Sprintf(
		"Hello %s,\n\nWelcome to the Barbarians application bot.\nUse /apply to start an application.",
		applicantFrom(msg.Sender).DisplayName(),
	)
	i.send(ctx, msg.ChatID, text)
}

// Begin starts the intake conversation for the sender, discarding any
// previous partial application.
func (i *Intake) Begin(ctx context.Context, msg ports.TextMessage) {
	conv := i.store.Begin(applicantFrom(msg.Sender), msg.ChatID)

	i.send(ctx, msg.ChatID, "Welcome to the Barbarians application process.")
	i.send(ctx, msg.ChatID, conv.Pending.Prompt())
}

// Cancel aborts an in-progress conversation, discarding its record.
func (i *Intake) Cancel(ctx context.Context, msg ports.TextMessage) {
	if i.store.Get(msg.Sender.ID) == nil {
		i.send(ctx, msg.ChatID, "There is no application in progress.")
		return
	}

	i.store.End(msg.Sender.ID)
	i.send(ctx, msg.ChatID, "The application has been cancelled.")
}

// Answer consumes one plain-text reply, stores it under the pending
// question, and either asks the next question or completes the intake.
// Text from users without a live conversation is ignored.
func (i *Intake) Answer(ctx context.Context, msg ports.TextMessage) {
	conv := i.store.Get(msg.Sender.ID)
	if conv == nil {
		return
	}

	conv.Record.Answer(conv.Pending, msg.Text)

	next, ok := conv.Pending.Next()
	if ok {
		conv.Pending = next
		i.send(ctx, msg.ChatID, next.Prompt())
		return
	}

	i.complete(ctx, conv)
}

func (i *Intake) complete(ctx context.Context, conv *domain.Conversation) {
	i.store.End(conv.Applicant.ID)

	// The applicant is acknowledged before the summary goes out, no matter
	// how the moderator delivery fares.
	i.send(ctx, conv.ChatID,
		"Thank you! Your application has been received and forwarded to our team for review. "+
			"We will get back to you as soon as possible.")

	approve := domain.Decision{Action: domain.ActionApprove, ApplicantID: conv.Applicant.ID}
	reject := domain.Decision{Action: domain.ActionReject, ApplicantID: conv.Applicant.ID}

	out := ports.Outgoing{
		ChatID:   i.adminChat,
		Text:     BuildSummary(conv.Applicant, conv.Record),
		Markdown: true,
		Buttons: [][]ports.Button{{
			{Label: "✅ Approve", Data: approve.CallbackData()},
			{Label: "❌ Reject", Data: reject.CallbackData()},
		}},
	}

	if err := i.messenger.Send(ctx, out); err != nil {
		i.logger.Error("deliver summary to admin group", "applicant_id", conv.Applicant.ID, "error", err)
	}
}

func (i *Intake) send(ctx context.Context, chatID int64, text string) {
	if err := i.messenger.Send(ctx, ports.Outgoing{ChatID: chatID, Text: text}); err != nil {
		i.logger.Error("send message", "chat_id", chatID, "error", err)
	}
}

func applicantFrom(s ports.Sender) domain.Applicant {
	return domain.Applicant{
		ID:        s.ID,
		FirstName: s.FirstName,
		LastName:  s.LastName,
		Username:  s.Username,
	}
}
