package usecase

import (
	"strings"
	"testing"

	"github.com/heisenbergtrx/barbarians-telegram-bot/internal/domain"
)

func completedRecord() domain.Record {
	return domain.Record{
		domain.QuestionName:           "Jane Doe",
		domain.QuestionExperience:     "3",
		domain.QuestionMarkets:        "Equities, FX",
		domain.QuestionRiskManagement: "Never risk more than 1% per trade",
		domain.QuestionReason:         "Want to learn",
		domain.QuestionTwitter:        "janedoe_x",
	}
}

func TestBuildSummaryIsIdempotent(t *testing.T) {
	t.Parallel()

	applicant := domain.Applicant{ID: 42, FirstName: "Jane", LastName: "Doe", Username: "janedoe_x"}
	record := completedRecord()

	first := BuildSummary(applicant, record)
	second := BuildSummary(applicant, record)

	if first != second {
		t.Fatalf("summary is not byte identical:\n%q\n%q", first, second)
	}
}

func TestBuildSummaryContent(t *testing.T) {
	t.Parallel()

	applicant := domain.Applicant{ID: 42, FirstName: "Jane", LastName: "Doe", Username: "janedoe_x"}
	summary := BuildSummary(applicant, completedRecord())

	if !strings.Contains(summary, "Jane Doe") {
		t.Fatalf("missing display name:\n%s", summary)
	}
	if !strings.Contains(summary, "(@janedoe_x)") {
		t.Fatalf("missing handle:\n%s", summary)
	}
	if !strings.Contains(summary, "`42`") {
		t.Fatalf("missing numeric id:\n%s", summary)
	}

	// Topics appear in asking order.
	last := -1
	for _, q := range domain.Questions() {
		label := "*" + q.Topic() + ":*"
		pos := strings.Index(summary, label)
		if pos < 0 {
			t.Fatalf("missing label %q:\n%s", label, summary)
		}
		if pos < last {
			t.Fatalf("label %q out of order:\n%s", label, summary)
		}
		last = pos
	}
}

func TestBuildSummaryMissingAnswerPlaceholder(t *testing.T) {
	t.Parallel()

	applicant := domain.Applicant{ID: 42, FirstName: "Jane"}
	record := completedRecord()
	delete(record, domain.QuestionTwitter)

	summary := BuildSummary(applicant, record)
	if !strings.Contains(summary, "*Twitter:* N/A") {
		t.Fatalf("missing placeholder for absent answer:\n%s", summary)
	}
}

func TestBuildSummaryWithoutHandle(t *testing.T) {
	t.Parallel()

	applicant := domain.Applicant{ID: 42, FirstName: "Jane"}
	summary := BuildSummary(applicant, completedRecord())

	if strings.Contains(summary, "(@") {
		t.Fatalf("summary should omit the handle when absent:\n%s", summary)
	}
}
