package lesson

import "errors"

var (
	ErrInvalidStatus      = errors.New("invalid lesson status")
	ErrInvalidSessionType = errors.New("invalid session type")
	ErrInvalidDuration    = errors.New("invalid lesson duration")
)

type Status string

const (
	StatusScheduled Status = "scheduled"
	StatusApproved  Status = "approved"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusScheduled, StatusApproved, StatusCompleted, StatusCancelled:
		return true
	default:
		return false
	}
}

func (s Status) IsTerminal() bool {
	return len(transitions[s]) == 0
}

func NewStatus(s string) (Status, error) {
	status := Status(s)
	if !status.IsValid() {
		return "", ErrInvalidStatus
	}
	return status, nil
}

// A booking request starts scheduled and must be approved by the
// instructor before it can complete. Either side can cancel until
// completion.
var transitions = map[Status][]Status{
	StatusScheduled: {StatusApproved, StatusCancelled},
	StatusApproved:  {StatusCompleted, StatusCancelled},
	StatusCompleted: {},
	StatusCancelled: {},
}

func CanTransition(from, to Status) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// BlockingStatuses lists the statuses that occupy the instructor's
// calendar for overlap checks.
func BlockingStatuses() []Status {
	return []Status{StatusScheduled, StatusApproved}
}

type SessionType string

const (
	SessionOnline   SessionType = "online"
	SessionInPerson SessionType = "in_person"
)

func (t SessionType) String() string {
	return string(t)
}

func (t SessionType) IsValid() bool {
	switch t {
	case SessionOnline, SessionInPerson:
		return true
	default:
		return false
	}
}

func NewSessionType(s string) (SessionType, error) {
	st := SessionType(s)
	if !st.IsValid() {
		return "", ErrInvalidSessionType
	}
	return st, nil
}

var allowedDurations = map[int]struct{}{30: {}, 60: {}, 90: {}, 120: {}}

func ValidDuration(minutes int) bool {
	_, ok := allowedDurations[minutes]
	return ok
}
