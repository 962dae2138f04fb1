package valueobjects

import "fmt"

// RerouteStatus is the state of a department hand-off request. A request is
// resolved exactly once: PENDING moves to APPROVED or REJECTED and never back.
type RerouteStatus string

const (
	RerouteStatusPending  RerouteStatus = "PENDING"
	RerouteStatusApproved RerouteStatus = "APPROVED"
	RerouteStatusRejected RerouteStatus = "REJECTED"
)

var validRerouteStatuses = map[RerouteStatus]bool{
	RerouteStatusPending:  true,
	RerouteStatusApproved: true,
	RerouteStatusRejected: true,
}

func (rs RerouteStatus) String() string {
	return string(rs)
}

func (rs RerouteStatus) IsValid() bool {
	return validRerouteStatuses[rs]
}

func (rs RerouteStatus) IsPending() bool {
	return rs == RerouteStatusPending
}

func (rs RerouteStatus) IsResolved() bool {
	return rs == RerouteStatusApproved || rs == RerouteStatusRejected
}

func NewRerouteStatus(s string) (RerouteStatus, error) {
	rs := RerouteStatus(s)
	if !rs.IsValid() {
		return "", fmt.Errorf("invalid reroute status: %s", s)
	}
	return rs, nil
}
