// Package incident holds the incident aggregate (a cluster of related
// complaints) and the similarity oracle port used to decide attachment.
package incident

import (
	"fmt"
	"time"

	vo "civicroute/internal/domain/incident/valueobjects"
)

// Incident is a cluster of complaints judged to describe the same underlying
// real-world event. Member count and the last-occurrence timestamp are
// recomputed whenever membership changes.
type Incident struct {
	id             uint
	title          string
	status         vo.IncidentStatus
	complaintCount int
	centroidLat    *float64
	centroidLon    *float64
	version        int
	openedAt       time.Time
	lastOccurredAt *time.Time
	closedAt       *time.Time
}

// NewIncident opens a cluster seeded by its first complaint.
func NewIncident(title string, centroidLat, centroidLon *float64) (*Incident, error) {
	if len(title) == 0 {
		return nil, fmt.Errorf("title is required")
	}
	if len(title) > 200 {
		return nil, fmt.Errorf("title exceeds maximum length of 200 characters")
	}

	now := time.Now()
	return &Incident{
		title:          title,
		status:         vo.StatusOpen,
		complaintCount: 1,
		centroidLat:    centroidLat,
		centroidLon:    centroidLon,
		version:        1,
		openedAt:       now,
		lastOccurredAt: &now,
	}, nil
}

// ReconstructIncident rebuilds an incident from persistence.
func ReconstructIncident(
	id uint,
	title string,
	status vo.IncidentStatus,
	complaintCount int,
	centroidLat, centroidLon *float64,
	version int,
	openedAt time.Time,
	lastOccurredAt *time.Time,
	closedAt *time.Time,
) (*Incident, error) {
	if id == 0 {
		return nil, fmt.Errorf("incident ID cannot be zero")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid incident status: %s", status)
	}

	return &Incident{
		id:             id,
		title:          title,
		status:         status,
		complaintCount: complaintCount,
		centroidLat:    centroidLat,
		centroidLon:    centroidLon,
		version:        version,
		openedAt:       openedAt,
		lastOccurredAt: lastOccurredAt,
		closedAt:       closedAt,
	}, nil
}

func (i *Incident) ID() uint                   { return i.id }
func (i *Incident) Title() string              { return i.title }
func (i *Incident) Status() vo.IncidentStatus  { return i.status }
func (i *Incident) ComplaintCount() int        { return i.complaintCount }
func (i *Incident) CentroidLat() *float64      { return i.centroidLat }
func (i *Incident) CentroidLon() *float64      { return i.centroidLon }
func (i *Incident) Version() int               { return i.version }
func (i *Incident) OpenedAt() time.Time        { return i.openedAt }
func (i *Incident) LastOccurredAt() *time.Time { return i.lastOccurredAt }
func (i *Incident) ClosedAt() *time.Time       { return i.closedAt }

func (i *Incident) SetID(id uint) error {
	if i.id != 0 {
		return fmt.Errorf("incident ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("incident ID cannot be zero")
	}
	i.id = id
	return nil
}

// UpdateTitle renames the cluster.
func (i *Incident) UpdateTitle(newTitle string) error {
	if len(newTitle) == 0 {
		return fmt.Errorf("title is required")
	}
	i.title = newTitle
	i.version++
	return nil
}

// RecomputeMembership refreshes the member count and the last-occurrence
// timestamp after an attach. A closed incident reopens when new complaints
// arrive.
func (i *Incident) RecomputeMembership(count int, lastOccurred *time.Time) error {
	if count < 0 {
		return fmt.Errorf("complaint count cannot be negative")
	}
	i.complaintCount = count
	if lastOccurred != nil {
		i.lastOccurredAt = lastOccurred
	}
	if i.status == vo.StatusClosed || i.status == vo.StatusResolved {
		i.status = vo.StatusOpen
		i.closedAt = nil
	}
	i.version++
	return nil
}

// Close ends the incident. No further complaints should attach to it.
func (i *Incident) Close() error {
	if i.status == vo.StatusClosed {
		return fmt.Errorf("incident is already closed")
	}
	now := time.Now()
	i.status = vo.StatusClosed
	i.closedAt = &now
	i.version++
	return nil
}
