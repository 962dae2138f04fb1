package valueobjects

import "fmt"

// ComplaintStatus is the lifecycle state of a complaint or follow-up.
//
// RESOLVED is the terminal "answered" state reached by completing an answer.
// CLOSED is the archival state reached only by an explicit archive step.
// Both allow a citizen follow-up, which returns the complaint to IN_PROGRESS.
type ComplaintStatus string

const (
	StatusReceived    ComplaintStatus = "RECEIVED"
	StatusRecommended ComplaintStatus = "RECOMMENDED"
	StatusInProgress  ComplaintStatus = "IN_PROGRESS"
	StatusResolved    ComplaintStatus = "RESOLVED"
	StatusClosed      ComplaintStatus = "CLOSED"
	StatusCanceled    ComplaintStatus = "CANCELED"
)

var validComplaintStatuses = map[ComplaintStatus]bool{
	StatusReceived:    true,
	StatusRecommended: true,
	StatusInProgress:  true,
	StatusResolved:    true,
	StatusClosed:      true,
	StatusCanceled:    true,
}

var complaintStatusTransitions = map[ComplaintStatus][]ComplaintStatus{
	StatusReceived: {
		StatusInProgress,
		StatusRecommended,
		StatusCanceled,
	},
	StatusInProgress: {
		StatusReceived,
		StatusRecommended,
		StatusResolved,
		StatusCanceled,
	},
	StatusRecommended: {
		StatusReceived,
		StatusInProgress,
		StatusCanceled,
	},
	StatusResolved: {
		StatusInProgress,
		StatusClosed,
		StatusCanceled,
	},
	StatusClosed: {
		StatusInProgress,
	},
	StatusCanceled: {},
}

func (cs ComplaintStatus) String() string {
	return string(cs)
}

func (cs ComplaintStatus) IsValid() bool {
	return validComplaintStatuses[cs]
}

// CanTransitionTo reports whether the transition is allowed by the lifecycle
// table. The table is the single source of truth for the state machine and is
// usable without any storage.
func (cs ComplaintStatus) CanTransitionTo(newStatus ComplaintStatus) bool {
	allowed, ok := complaintStatusTransitions[cs]
	if !ok {
		return false
	}
	for _, s := range allowed {
		if s == newStatus {
			return true
		}
	}
	return false
}

// IsTerminal reports whether no further lifecycle work happens on this status.
// CLOSED still admits a follow-up; CANCELED admits nothing.
func (cs ComplaintStatus) IsTerminal() bool {
	return cs == StatusCanceled
}

// IsAnswered reports whether the current answer cycle has completed.
func (cs ComplaintStatus) IsAnswered() bool {
	return cs == StatusResolved || cs == StatusClosed
}

func (cs ComplaintStatus) IsReceived() bool {
	return cs == StatusReceived
}

func (cs ComplaintStatus) IsRecommended() bool {
	return cs == StatusRecommended
}

func (cs ComplaintStatus) IsInProgress() bool {
	return cs == StatusInProgress
}

func (cs ComplaintStatus) IsResolved() bool {
	return cs == StatusResolved
}

func (cs ComplaintStatus) IsClosed() bool {
	return cs == StatusClosed
}

func (cs ComplaintStatus) IsCanceled() bool {
	return cs == StatusCanceled
}

func NewComplaintStatus(s string) (ComplaintStatus, error) {
	cs := ComplaintStatus(s)
	if !cs.IsValid() {
		return "", fmt.Errorf("invalid complaint status: %s", s)
	}
	return cs, nil
}
