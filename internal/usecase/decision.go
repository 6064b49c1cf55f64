package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heisenbergtrx/barbarians-telegram-bot/internal/domain"
	"github.com/heisenbergtrx/barbarians-telegram-bot/internal/ports"
)

// Annotations appended to the moderator message when a decision settles.
// The original summary text is always preserved as a prefix so a failed
// decision can be retried from the same message.
const (
	annotationApproved    = "\n\n---\n✅ *Approved* (by @%s)"
	annotationRejected    = "\n\n---\n❌ *Rejected* (by @%s)"
	annotationInviteError = "\n\n---\n⚠️ *Error:* could not create invitation. " +
		"Make sure the bot is an admin of the channel and may invite members."
	annotationNotifyError = "\n\n---\n⚠️ *Error:* could not notify applicant."
)

// Decisions resolves moderator approve/reject signals. Pressing the same
// button twice repeats the side effect; the annotation on the message is
// the only replay guard.
type Decisions struct {
	messenger     ports.Messenger
	inviter       ports.Inviter
	answerer      ports.CallbackAnswerer
	targetChannel int64
	logger        *slog.Logger
}

// DecisionDeps wires the decision dispatcher's collaborators.
type DecisionDeps struct {
	Messenger       ports.Messenger
	Inviter         ports.Inviter
	Answerer        ports.CallbackAnswerer
	TargetChannelID int64
	Logger          *slog.Logger
}

// NewDecisions constructs the dispatcher.
func NewDecisions(deps DecisionDeps) *Decisions {
	if deps.Logger == nil {
		deps.Logger = slog.Default()
	}
	return &Decisions{
		messenger:     deps.Messenger,
		inviter:       deps.Inviter,
		answerer:      deps.Answerer,
		targetChannel: deps.TargetChannelID,
		logger:        deps.Logger,
	}
}

// Handle resolves one button press from the moderator group.
func (d *Decisions) Handle(ctx context.Context, cb ports.Callback) {
	if d.answerer != nil {
		if err := d.answerer.AnswerCallback(ctx, cb.ID); err != nil {
			d.logger.Debug("answer callback", "callback_id", cb.ID, "error", err)
		}
	}

	decision, err := domain.ParseDecision(cb.Data)
	if err != nil {
		d.logger.Error("malformed decision signal", "data", cb.Data, "error", err)
		return
	}

	switch decision.Action {
	case domain.ActionApprove:
		d.approve(ctx, cb, decision.ApplicantID)
	case domain.ActionReject:
		d.reject(ctx, cb, decision.ApplicantID)
	}
}

func (d *Decisions) approve(ctx context.Context, cb ports.Callback, applicantID int64) {
	if err := d.inviteApplicant(ctx, cb, applicantID); err != nil {
		d.logger.Error("approve applicant", "applicant_id", applicantID, "error", err)
		d.edit(ctx, cb, cb.MessageText+annotationInviteError)
		return
	}

	d.edit(ctx, cb, cb.MessageText+fmt.Sprintf(annotationApproved, cb.Sender.Username))
}

func (d *Decisions) inviteApplicant(ctx context.Context, cb ports.Callback, applicantID int64) error {
	expireAt := cb.SentAt.Add(domain.InviteTTL)
	link, err := d.inviter.CreateInviteLink(ctx, d.targetChannel, 1, expireAt)
	if err != nil {
		return fmt.Errorf("create invite link: %w", err)
	}

	congrats := "Congratulations! Your application to the Barbarians community has been approved.\n\n" +
		"Tap the link below to join the channel. The link is single-use and expires after 24 hours."
	if err := d.messenger.Send(ctx, ports.Outgoing{ChatID: applicantID, Text: congrats}); err != nil {
		return fmt.Errorf("send approval notice: %w", err)
	}
	if err := d.messenger.Send(ctx, ports.Outgoing{ChatID: applicantID, Text: link}); err != nil {
		return fmt.Errorf("send invite link: %w", err)
	}

	return nil
}

func (d *Decisions) reject(ctx context.Context, cb ports.Callback, applicantID int64) {
	notice := "Thank you for your interest. Unfortunately your application was not successful this time.\n\n" +
		"We hope to see you again in a future intake."
	if err := d.messenger.Send(ctx, ports.Outgoing{ChatID: applicantID, Text: notice}); err != nil {
		d.logger.Error("notify rejected applicant", "applicant_id", applicantID, "error", err)
		d.edit(ctx, cb, cb.MessageText+annotationNotifyError)
		return
	}

	d.edit(ctx, cb, cb.MessageText+fmt.Sprintf(annotationRejected, cb.Sender.Username))
}

func (d *Decisions) edit(ctx context.Context, cb ports.Callback, text string) {
	if err := d.messenger.Edit(ctx, cb.ChatID, cb.MessageID, text); err != nil {
		d.logger.Error("edit moderator message",
			"chat_id", cb.ChatID, "message_id", cb.MessageID, "error", err)
	}
}
