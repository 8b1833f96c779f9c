package instructor

import "errors"

var ErrInvalidApplicationStatus = errors.New("invalid application status")

type ApplicationStatus string

const (
	ApplicationPending  ApplicationStatus = "pending"
	ApplicationApproved ApplicationStatus = "approved"
	ApplicationRejected ApplicationStatus = "rejected"
)

func (s ApplicationStatus) String() string {
	return string(s)
}

func (s ApplicationStatus) IsValid() bool {
	switch s {
	case ApplicationPending, ApplicationApproved, ApplicationRejected:
		return true
	default:
		return false
	}
}

func NewApplicationStatus(s string) (ApplicationStatus, error) {
	status := ApplicationStatus(s)
	if !status.IsValid() {
		return "", ErrInvalidApplicationStatus
	}
	return status, nil
}
