package user

import (
	"net/http"

	"proapp/internal/dbmysql"
)

// Outcome is the decision a reconcile call arrived at.
type Outcome int

const (
	OutcomeFailed Outcome = iota
	OutcomeCreated
	OutcomeRevived
	OutcomeEmailInUse
	OutcomeUsernameInUse
	OutcomeNotFound
	OutcomeUpdated
	OutcomePhoneInUse
)

var outcomeNames = map[Outcome]string{
	OutcomeFailed:        "failed",
	OutcomeCreated:       "created",
	OutcomeRevived:       "revived",
	OutcomeEmailInUse:    "email_in_use",
	OutcomeUsernameInUse: "username_in_use",
	OutcomeNotFound:      "not_found",
	OutcomeUpdated:       "updated",
	OutcomePhoneInUse:    "phone_in_use",
}

func (o Outcome) String() string {
	if name, ok := outcomeNames[o]; ok {
		return name
	}
	return "unknown"
}

func (o Outcome) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

// Succeeded reports whether the outcome wrote the record.
func (o Outcome) Succeeded() bool {
	return o == OutcomeCreated || o == OutcomeRevived || o == OutcomeUpdated
}

func (o Outcome) HTTPStatus() int {
	switch o {
	case OutcomeCreated, OutcomeRevived, OutcomeUpdated:
		return http.StatusOK
	case OutcomeNotFound:
		return http.StatusNotFound
	default:
		return http.StatusUnprocessableEntity
	}
}

// Result is returned by every single-record reconcile call.
//
// User is the reloaded record on success and the conflicting user on
// EmailInUse. Err carries the cause of a Failed outcome and is never sent
// to clients.
type Result struct {
	Outcome Outcome
	User    *dbmysql.User
	Message string
	Err     error
}

// Declined records a bulk create item that was not written.
type Declined struct {
	Input    CreateInput   `json:"input"`
	Outcome  Outcome       `json:"reason"`
	Message  string        `json:"message"`
	Existing *dbmysql.User `json:"existing,omitempty"`
}

type BulkCreateResult struct {
	Created   []*dbmysql.User `json:"created_users"`
	Revived   []*dbmysql.User `json:"recovery_users"`
	EmailUsed []Declined      `json:"email_used"`
	Skipped   []Declined      `json:"skipped"`
	Message   string          `json:"-"`
}

type BulkCounts struct {
	Created   int `json:"created"`
	Revived   int `json:"revived"`
	EmailUsed int `json:"email_used"`
	Skipped   int `json:"skipped"`
}

func (r BulkCreateResult) Counts() BulkCounts {
	return BulkCounts{
		Created:   len(r.Created),
		Revived:   len(r.Revived),
		EmailUsed: len(r.EmailUsed),
		Skipped:   len(r.Skipped),
	}
}

// ItemStatus is the per-id report of a bulk update.
type ItemStatus struct {
	ID      uint64  `json:"id"`
	Outcome Outcome `json:"status"`
	Message string  `json:"message"`
}

type BulkUpdateResult struct {
	Updated []*dbmysql.User `json:"updated_users"`
	Items   []ItemStatus    `json:"items"`
	Message string          `json:"-"`
}

func (r BulkUpdateResult) Failed() []ItemStatus {
	var out []ItemStatus
	for _, item := range r.Items {
		if !item.Outcome.Succeeded() {
			out = append(out, item)
		}
	}
	return out
}
