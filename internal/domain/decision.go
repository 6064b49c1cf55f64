package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// DecisionAction is the kind of verdict a moderator issued.
type DecisionAction string

const (
	ActionApprove DecisionAction = "approve"
	ActionReject  DecisionAction = "reject"
)

// decisionSeparator joins the action and the applicant ID in callback data.
const decisionSeparator = "_"

// Decision is the signal carried by a moderator's button press.
type Decision struct {
	Action      DecisionAction
	ApplicantID int64
}

// CallbackData encodes the decision for an inline button.
func (d Decision) CallbackData() string {
	return string(d.Action) + decisionSeparator + strconv.FormatInt(d.ApplicantID, 10)
}

// ParseDecision decodes callback data produced by CallbackData.
func ParseDecision(data string) (Decision, error) {
	parts := strings.SplitN(data, decisionSeparator, 2)
	if len(parts) != 2 {
		return Decision{}, fmt.Errorf("malformed decision data %q", data)
	}

	action := DecisionAction(parts[0])
	if action != ActionApprove && action != ActionReject {
		return Decision{}, fmt.Errorf("unknown decision action %q", parts[0])
	}

	id, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		return Decision{}, fmt.Errorf("decision applicant id: %w", err)
	}

	return Decision{Action: action, ApplicantID: id}, nil
}
