package valueobjects

import "fmt"

// IncidentStatus is the state of a cluster of related complaints.
type IncidentStatus string

const (
	StatusOpen       IncidentStatus = "OPEN"
	StatusInProgress IncidentStatus = "IN_PROGRESS"
	StatusResolved   IncidentStatus = "RESOLVED"
	StatusClosed     IncidentStatus = "CLOSED"
)

var validIncidentStatuses = map[IncidentStatus]bool{
	StatusOpen:       true,
	StatusInProgress: true,
	StatusResolved:   true,
	StatusClosed:     true,
}

func (is IncidentStatus) String() string {
	return string(is)
}

func (is IncidentStatus) IsValid() bool {
	return validIncidentStatuses[is]
}

func (is IncidentStatus) IsClosed() bool {
	return is == StatusClosed
}

func NewIncidentStatus(s string) (IncidentStatus, error) {
	is := IncidentStatus(s)
	if !is.IsValid() {
		return "", fmt.Errorf("invalid incident status: %s", s)
	}
	return is, nil
}
