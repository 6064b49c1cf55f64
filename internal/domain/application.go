package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// InviteTTL bounds how long an approval invite link stays valid.
const InviteTTL = 24 * time.Hour

// Applicant references the Telegram user behind one application.
type Applicant struct {
	ID        int64
	FirstName string
	LastName  string
	Username  string
}

// DisplayName joins first and last name, skipping empty parts; it falls
// back to the numeric ID when the account carries no name at all.
func (a Applicant) DisplayName() string {
	name := strings.TrimSpace(strings.TrimSpace(a.FirstName) + " " + strings.TrimSpace(a.LastName))
	if name == "" {
		return strconv.FormatInt(a.ID, 10)
	}
	return name
}

// Question enumerates the intake questions in the order they are asked.
type Question int

const (
	QuestionName Question = iota
	QuestionExperience
	QuestionMarkets
	QuestionRiskManagement
	QuestionReason
	QuestionTwitter
)

// Questions returns every question in asking order.
func Questions() []Question {
	return []Question{
		QuestionName,
		QuestionExperience,
		QuestionMarkets,
		QuestionRiskManagement,
		QuestionReason,
		QuestionTwitter,
	}
}

// Next returns the question that follows q; ok is false after the last one.
func (q Question) Next() (next Question, ok bool) {
	if q < QuestionName || q >= QuestionTwitter {
		return q, false
	}
	return q + 1, true
}

// Prompt is the text sent to the applicant when q becomes pending.
func (q Question) Prompt() string {
	switch q {
	case QuestionName:
		return "Great, let's begin. Please write your first and last name."
	case QuestionExperience:
		return "How many years of experience do you have in the markets?"
	case QuestionMarkets:
		return "Which markets do you actively trade? (e.g. equities, crypto, futures, options)"
	case QuestionRiskManagement:
		return "How would you summarize your approach to risk management in a few sentences?"
	case QuestionReason:
		return "Why do you want to join the Barbarians community?"
	case QuestionTwitter:
		return "Finally, what is your Twitter (X) username, if you have one? (You can write 'none')"
	}
	return ""
}

// Topic labels the question inside the moderator summary.
func (q Question) Topic() string {
	switch q {
	case QuestionName:
		return "Full name"
	case QuestionExperience:
		return "Experience"
	case QuestionMarkets:
		return "Markets"
	case QuestionRiskManagement:
		return "Risk management"
	case QuestionReason:
		return "Reason for joining"
	case QuestionTwitter:
		return "Twitter"
	}
	return fmt.Sprintf("question %d", int(q))
}

// Record collects the applicant's answers keyed by question.
type Record map[Question]string

// Answer stores text as the answer for q, replacing any prior value.
func (r Record) Answer(q Question, text string) {
	r[q] = text
}

// Conversation tracks one applicant's in-flight application.
type Conversation struct {
	Applicant Applicant
	ChatID    int64
	Pending   Question
	Record    Record
}
