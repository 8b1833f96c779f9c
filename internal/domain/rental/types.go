package rental

import "errors"

var (
	ErrInvalidStatus     = errors.New("invalid rental status")
	ErrInvalidPeriod     = errors.New("invalid rental period")
	ErrInvalidTransition = errors.New("invalid rental status transition")
)

type Status string

const (
	StatusPending       Status = "pending"
	StatusConfirmed     Status = "confirmed"
	StatusActive        Status = "active"
	StatusPendingReturn Status = "pending_return"
	StatusCompleted     Status = "completed"
	StatusRejected      Status = "rejected"
	StatusCancelled     Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusActive, StatusPendingReturn,
		StatusCompleted, StatusRejected, StatusCancelled:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether no further transition leaves the status.
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

// transitions is the rental lifecycle graph. Every status write goes
// through CanTransition plus a conditional UPDATE on the expected prior
// status, so concurrent actors cannot double-apply an edge.
var transitions = map[Status][]Status{
	StatusPending:       {StatusConfirmed, StatusRejected, StatusCancelled},
	StatusConfirmed:     {StatusActive, StatusCancelled},
	StatusActive:        {StatusPendingReturn},
	StatusPendingReturn: {StatusCompleted},
	StatusCompleted:     {},
	StatusRejected:      {},
	StatusCancelled:     {},
}

func CanTransition(from, to Status) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// NonTerminalStatuses lists the statuses that still occupy the
// instrument for overlap checks.
func NonTerminalStatuses() []Status {
	return []Status{StatusPending, StatusConfirmed, StatusActive, StatusPendingReturn}
}

type Period string

const (
	PeriodDaily   Period = "daily"
	PeriodWeekly  Period = "weekly"
	PeriodMonthly Period = "monthly"
)

func (p Period) String() string {
	return string(p)
}

func (p Period) IsValid() bool {
	switch p {
	case PeriodDaily, PeriodWeekly, PeriodMonthly:
		return true
	default:
		return false
	}
}

func NewPeriod(s string) (Period, error) {
	period := Period(s)
	if !period.IsValid() {
		return "", ErrInvalidPeriod
	}
	return period, nil
}
