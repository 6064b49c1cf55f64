package usecase

import (
	"fmt"
	"strings"

	"github.com/heisenbergtrx/barbarians-telegram-bot/internal/domain"
)

const missingAnswer = "N/A"

// BuildSummary renders a completed application for the moderator group.
// It is pure: identical inputs always yield an identical string, which the
// decision dispatcher relies on when it rewrites the message in place.
func BuildSummary(applicant domain.Applicant, record domain.Record) string {
	var b strings.Builder

	b.WriteString("🚨 *New application received* 🚨\n\n")
	b.WriteString("*Applicant:* " + applicant.DisplayName())
	if applicant.Username != "" {
		b.WriteString(" (@" + applicant.Username + ")")
	}
	b.WriteString("\n")
	fmt.Fprintf(&b, "*User ID:* `%d`\n\n", applicant.ID)
	b.WriteString("--- Answers ---\n")

	for _, q := range domain.Questions() {
		answer := record[q]
		if strings.TrimSpace(answer) == "" {
			answer = missingAnswer
		}
		fmt.Fprintf(&b, "*%s:* %s\n", q.Topic(), answer)
	}

	return b.String()
}
