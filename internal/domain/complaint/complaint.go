// Package complaint holds the complaint aggregate and its lifecycle rules:
// assignment, answer drafting and completion, cancellation, the reroute
// freeze, and incident linkage bookkeeping.
package complaint

import (
	"fmt"
	"time"

	vo "civicroute/internal/domain/complaint/valueobjects"
	"civicroute/internal/shared/errors"
)

const (
	maxTitleLen = 200
	maxBodyLen  = 5000
)

// Complaint is a single citizen complaint record. All state transitions go
// through the methods below; each successful transition bumps the version so
// the repository can detect concurrent writers.
type Complaint struct {
	id                     uint
	number                 string
	applicantID            uint
	title                  string
	body                   string
	location               vo.Location
	status                 vo.ComplaintStatus
	assigneeID             *uint
	answer                 string
	currentDepartmentID    *uint
	aiPredictedDepartment  *uint
	incidentID             *uint
	incidentLinkScore      *float64
	incidentLinkedAt       *time.Time
	version                int
	receivedAt             time.Time
	createdAt              time.Time
	updatedAt              time.Time
	closedAt               *time.Time
}

// NewComplaint creates a freshly received complaint.
func NewComplaint(
	applicantID uint,
	title string,
	body string,
	location vo.Location,
) (*Complaint, error) {
	if applicantID == 0 {
		return nil, fmt.Errorf("applicant ID is required")
	}
	if len(title) == 0 {
		return nil, fmt.Errorf("title is required")
	}
	if len(title) > maxTitleLen {
		return nil, fmt.Errorf("title exceeds maximum length of %d characters", maxTitleLen)
	}
	if len(body) == 0 {
		return nil, fmt.Errorf("body is required")
	}
	if len(body) > maxBodyLen {
		return nil, fmt.Errorf("body exceeds maximum length of %d characters", maxBodyLen)
	}

	now := time.Now()
	return &Complaint{
		applicantID: applicantID,
		title:       title,
		body:        body,
		location:    location,
		status:      vo.StatusReceived,
		version:     1,
		receivedAt:  now,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

// ReconstructComplaint rebuilds a complaint from persistence.
func ReconstructComplaint(
	id uint,
	number string,
	applicantID uint,
	title string,
	body string,
	location vo.Location,
	status vo.ComplaintStatus,
	assigneeID *uint,
	answer string,
	currentDepartmentID *uint,
	aiPredictedDepartment *uint,
	incidentID *uint,
	incidentLinkScore *float64,
	incidentLinkedAt *time.Time,
	version int,
	receivedAt time.Time,
	createdAt, updatedAt time.Time,
	closedAt *time.Time,
) (*Complaint, error) {
	if id == 0 {
		return nil, fmt.Errorf("complaint ID cannot be zero")
	}
	if len(title) == 0 {
		return nil, fmt.Errorf("title is required")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status: %s", status)
	}

	return &Complaint{
		id:                    id,
		number:                number,
		applicantID:           applicantID,
		title:                 title,
		body:                  body,
		location:              location,
		status:                status,
		assigneeID:            assigneeID,
		answer:                answer,
		currentDepartmentID:   currentDepartmentID,
		aiPredictedDepartment: aiPredictedDepartment,
		incidentID:            incidentID,
		incidentLinkScore:     incidentLinkScore,
		incidentLinkedAt:      incidentLinkedAt,
		version:               version,
		receivedAt:            receivedAt,
		createdAt:             createdAt,
		updatedAt:             updatedAt,
		closedAt:              closedAt,
	}, nil
}

func (c *Complaint) ID() uint                       { return c.id }
func (c *Complaint) Number() string                 { return c.number }
func (c *Complaint) ApplicantID() uint              { return c.applicantID }
func (c *Complaint) Title() string                  { return c.title }
func (c *Complaint) Body() string                   { return c.body }
func (c *Complaint) Location() vo.Location          { return c.location }
func (c *Complaint) Status() vo.ComplaintStatus     { return c.status }
func (c *Complaint) AssigneeID() *uint              { return c.assigneeID }
func (c *Complaint) Answer() string                 { return c.answer }
func (c *Complaint) CurrentDepartmentID() *uint     { return c.currentDepartmentID }
func (c *Complaint) AIPredictedDepartmentID() *uint { return c.aiPredictedDepartment }
func (c *Complaint) IncidentID() *uint              { return c.incidentID }
func (c *Complaint) IncidentLinkScore() *float64    { return c.incidentLinkScore }
func (c *Complaint) IncidentLinkedAt() *time.Time   { return c.incidentLinkedAt }
func (c *Complaint) Version() int                   { return c.version }
func (c *Complaint) ReceivedAt() time.Time          { return c.receivedAt }
func (c *Complaint) CreatedAt() time.Time           { return c.createdAt }
func (c *Complaint) UpdatedAt() time.Time           { return c.updatedAt }
func (c *Complaint) ClosedAt() *time.Time           { return c.closedAt }

func (c *Complaint) SetID(id uint) error {
	if c.id != 0 {
		return fmt.Errorf("complaint ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("complaint ID cannot be zero")
	}
	c.id = id
	return nil
}

func (c *Complaint) SetNumber(number string) error {
	if len(c.number) > 0 {
		return fmt.Errorf("complaint number is already set")
	}
	if len(number) == 0 {
		return fmt.Errorf("complaint number cannot be empty")
	}
	c.number = number
	return nil
}

func (c *Complaint) touch() {
	c.updatedAt = time.Now()
	c.version++
}

// Assign gives the complaint to a caseworker. Only a RECEIVED complaint can be
// assigned: an already-assigned complaint or one frozen by a pending reroute
// yields an invalid state error.
func (c *Complaint) Assign(assigneeID uint) error {
	if assigneeID == 0 {
		return errors.NewValidationError("assignee ID is required")
	}
	if c.status.IsRecommended() {
		return errors.NewInvalidStateError("complaint has a pending reroute request")
	}
	if !c.status.CanTransitionTo(vo.StatusInProgress) || !c.status.IsReceived() {
		return errors.NewInvalidStateError(
			fmt.Sprintf("complaint cannot be assigned in status %s", c.status))
	}

	c.assigneeID = &assigneeID
	c.status = vo.StatusInProgress
	c.touch()
	return nil
}

// Release clears the assignment and returns the complaint to the queue.
// Only the current assignee may release, and never while a reroute request
// is pending: unfreezing the complaint would strand the request.
func (c *Complaint) Release(callerID uint) error {
	if c.assigneeID == nil || *c.assigneeID != callerID {
		return errors.NewForbiddenError("only the current assignee can release the complaint")
	}
	if c.status.IsRecommended() {
		return errors.NewInvalidStateError("complaint has a pending reroute request")
	}
	if !c.status.CanTransitionTo(vo.StatusReceived) {
		return errors.NewInvalidStateError(
			fmt.Sprintf("complaint cannot be released in status %s", c.status))
	}

	c.assigneeID = nil
	c.status = vo.StatusReceived
	c.touch()
	return nil
}

// UpdateAnswerDraft stores answer text without any status change.
func (c *Complaint) UpdateAnswerDraft(draft string) error {
	if c.status.IsTerminal() {
		return errors.NewInvalidStateError("complaint is canceled")
	}
	if c.status.IsRecommended() {
		return errors.NewInvalidStateError("complaint has a pending reroute request")
	}

	c.answer = draft
	c.touch()
	return nil
}

// CompleteAnswer stores the final answer and resolves the complaint. RESOLVED
// is the terminal answered state; archival to CLOSED is a separate step.
func (c *Complaint) CompleteAnswer(finalAnswer string) error {
	if len(finalAnswer) == 0 {
		return errors.NewValidationError("answer text is required")
	}
	if c.status.IsRecommended() {
		return errors.NewInvalidStateError("complaint has a pending reroute request")
	}
	if !c.status.CanTransitionTo(vo.StatusResolved) {
		return errors.NewInvalidStateError(
			fmt.Sprintf("complaint cannot be resolved in status %s", c.status))
	}

	now := time.Now()
	c.answer = finalAnswer
	c.status = vo.StatusResolved
	c.closedAt = &now
	c.touch()
	return nil
}

// ResolveAfterFollowUp returns the parent to RESOLVED once its newest
// follow-up has been answered. The parent's own answer text stays untouched.
func (c *Complaint) ResolveAfterFollowUp() error {
	if !c.status.CanTransitionTo(vo.StatusResolved) {
		return errors.NewInvalidStateError(
			fmt.Sprintf("complaint cannot be resolved in status %s", c.status))
	}

	now := time.Now()
	c.status = vo.StatusResolved
	c.closedAt = &now
	c.touch()
	return nil
}

// Archive moves an answered complaint into the archival CLOSED state.
func (c *Complaint) Archive() error {
	if !c.status.CanTransitionTo(vo.StatusClosed) {
		return errors.NewInvalidStateError(
			fmt.Sprintf("complaint cannot be archived in status %s", c.status))
	}

	c.status = vo.StatusClosed
	c.touch()
	return nil
}

// Cancel is the citizen withdrawal. Canceling an already-canceled complaint
// is a no-op.
func (c *Complaint) Cancel() error {
	if c.status.IsCanceled() {
		return nil
	}
	if !c.status.CanTransitionTo(vo.StatusCanceled) {
		return errors.NewInvalidStateError(
			fmt.Sprintf("complaint cannot be canceled in status %s", c.status))
	}

	c.status = vo.StatusCanceled
	c.touch()
	return nil
}

// MarkRecommended freezes the complaint while a reroute request is pending.
func (c *Complaint) MarkRecommended() error {
	if c.status.IsRecommended() {
		return errors.NewConflictError("a reroute request is already pending for this complaint")
	}
	if !c.status.CanTransitionTo(vo.StatusRecommended) {
		return errors.NewInvalidStateError(
			fmt.Sprintf("complaint cannot be rerouted in status %s", c.status))
	}

	c.status = vo.StatusRecommended
	c.touch()
	return nil
}

// RerouteTo applies an approved reroute: the complaint moves to the target
// department, loses its assignee and re-enters the queue as RECEIVED.
func (c *Complaint) RerouteTo(newDepartmentID uint) error {
	if !c.status.IsRecommended() {
		return errors.NewInvalidStateError(
			fmt.Sprintf("complaint is not awaiting reroute resolution (status %s)", c.status))
	}

	c.currentDepartmentID = &newDepartmentID
	c.assigneeID = nil
	c.status = vo.StatusReceived
	c.touch()
	return nil
}

// ReturnFromReroute applies a rejected reroute: the complaint stays with its
// original department. An assigned complaint resumes IN_PROGRESS under the
// same caseworker; an unassigned one re-enters the queue.
func (c *Complaint) ReturnFromReroute() error {
	if !c.status.IsRecommended() {
		return errors.NewInvalidStateError(
			fmt.Sprintf("complaint is not awaiting reroute resolution (status %s)", c.status))
	}

	if c.assigneeID != nil {
		c.status = vo.StatusInProgress
	} else {
		c.status = vo.StatusReceived
	}
	c.touch()
	return nil
}

// ReopenForFollowUp flips an answered complaint back to IN_PROGRESS so it
// re-enters normal assignment when a citizen opens a follow-up.
func (c *Complaint) ReopenForFollowUp() error {
	if !c.status.IsAnswered() {
		return errors.NewPendingAnswerError(
			"previous inquiry has not been answered yet")
	}

	c.status = vo.StatusInProgress
	c.touch()
	return nil
}

// LinkIncident attaches the complaint to an incident cluster with the
// similarity score that justified the attachment.
func (c *Complaint) LinkIncident(incidentID uint, score float64, linkedAt time.Time) error {
	if incidentID == 0 {
		return errors.NewValidationError("incident ID is required")
	}
	if score < 0 || score > 1 {
		return errors.NewValidationError(fmt.Sprintf("link score out of range: %f", score))
	}
	if c.incidentID != nil {
		return errors.NewConflictError("complaint is already linked to an incident")
	}

	c.incidentID = &incidentID
	c.incidentLinkScore = &score
	c.incidentLinkedAt = &linkedAt
	c.touch()
	return nil
}

// RecordPrediction stamps the first AI department prediction. Later
// normalizations never overwrite it; the first prediction is kept for
// routing-accuracy measurement.
func (c *Complaint) RecordPrediction(departmentID uint) {
	if c.aiPredictedDepartment == nil && departmentID != 0 {
		c.aiPredictedDepartment = &departmentID
	}
	if c.currentDepartmentID == nil && departmentID != 0 {
		c.currentDepartmentID = &departmentID
	}
	c.touch()
}

// CheckInvariants verifies the assignment invariant: an assignee implies an
// active or answered status, and a RECEIVED complaint has no assignee.
func (c *Complaint) CheckInvariants() error {
	if c.assigneeID != nil {
		switch c.status {
		case vo.StatusInProgress, vo.StatusResolved, vo.StatusClosed, vo.StatusRecommended:
		default:
			return fmt.Errorf("assigned complaint has status %s", c.status)
		}
	}
	if c.status.IsReceived() && c.assigneeID != nil {
		return fmt.Errorf("received complaint must not have an assignee")
	}
	return nil
}
