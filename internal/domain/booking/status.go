package booking

import (
	"time"

	"github.com/styleon-app/stylist-scheduler/internal/faults"
	"github.com/styleon-app/stylist-scheduler/internal/models"
)

type Status string

const (
	StatusPending    Status = "pending"
	StatusConfirmed  Status = "confirmed"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusCancelled  Status = "cancelled"
)

// statusGraph is the lifecycle irrespective of who is asking.
var statusGraph = map[Status][]Status{
	StatusPending:    {StatusConfirmed, StatusCancelled},
	StatusConfirmed:  {StatusInProgress, StatusCancelled},
	StatusInProgress: {StatusCompleted, StatusCancelled},
	StatusCompleted:  {},
	StatusCancelled:  {},
}

// roleTransitions narrows the graph per actor role. A transition must be
// present both here and in statusGraph to be applied.
var roleTransitions = map[Role]map[Status][]Status{
	RoleClient: {
		StatusPending: {StatusCancelled},
	},
	RoleStylist: {
		StatusPending:    {StatusConfirmed, StatusCancelled},
		StatusConfirmed:  {StatusInProgress, StatusCancelled},
		StatusInProgress: {StatusCompleted, StatusCancelled},
	},
}

func ParseStatus(s string) (Status, error) {
	if _, ok := statusGraph[Status(s)]; !ok {
		return "", faults.Validation("unknown_status", "Unknown booking status.")
	}
	return Status(s), nil
}

func (s Status) IsTerminal() bool {
	return len(statusGraph[s]) == 0
}

func contains(set []Status, s Status) bool {
	for _, v := range set {
		if v == s {
			return true
		}
	}
	return false
}

// CanTransition validates a status change for an actor role. An edge missing
// from the lifecycle graph is an invalid transition; an edge the graph allows
// but the role does not is an authorization failure.
func CanTransition(role Role, from, to Status) error {
	if !contains(statusGraph[from], to) {
		return faults.InvalidTransition(
			"invalid_status_transition",
			"A "+string(from)+" reservation cannot move to "+string(to)+".",
		)
	}
	if !contains(roleTransitions[role][from], to) {
		return faults.Authorization(
			"transition_not_allowed",
			"Your role may not move a "+string(from)+" reservation to "+string(to)+".",
		)
	}
	return nil
}

// ApplyTransition mutates the booking row after CanTransition has passed.
func ApplyTransition(b *models.Booking, to Status, now time.Time) {
	b.Status = string(to)
	switch to {
	case StatusCancelled:
		b.CancelledAt = &now
	case StatusCompleted:
		b.CompletedAt = &now
	}
}
