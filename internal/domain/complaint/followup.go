package complaint

import (
	"fmt"
	"time"

	vo "civicroute/internal/domain/complaint/valueobjects"
	"civicroute/internal/shared/errors"
)

// FollowUp is a citizen follow-up inquiry tied to exactly one parent
// complaint. Once any follow-up exists, answer writes target the newest
// follow-up, never the parent.
type FollowUp struct {
	id         uint
	parentID   uint
	title      string
	body       string
	answer     string
	assigneeID *uint
	status     vo.ComplaintStatus
	version    int
	createdAt  time.Time
	updatedAt  time.Time
	closedAt   *time.Time
}

// NewFollowUp creates a follow-up in the RECEIVED state. The follow-up gate
// (parent must be answered) is enforced by the use case, not here.
func NewFollowUp(parentID uint, title, body string) (*FollowUp, error) {
	if parentID == 0 {
		return nil, fmt.Errorf("parent complaint ID is required")
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
	return &FollowUp{
		parentID:  parentID,
		title:     title,
		body:      body,
		status:    vo.StatusReceived,
		version:   1,
		createdAt: now,
		updatedAt: now,
	}, nil
}

// ReconstructFollowUp rebuilds a follow-up from persistence.
func ReconstructFollowUp(
	id uint,
	parentID uint,
	title string,
	body string,
	answer string,
	assigneeID *uint,
	status vo.ComplaintStatus,
	version int,
	createdAt, updatedAt time.Time,
	closedAt *time.Time,
) (*FollowUp, error) {
	if id == 0 {
		return nil, fmt.Errorf("follow-up ID cannot be zero")
	}
	if parentID == 0 {
		return nil, fmt.Errorf("parent complaint ID is required")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status: %s", status)
	}

	return &FollowUp{
		id:         id,
		parentID:   parentID,
		title:      title,
		body:       body,
		answer:     answer,
		assigneeID: assigneeID,
		status:     status,
		version:    version,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
		closedAt:   closedAt,
	}, nil
}

func (f *FollowUp) ID() uint                   { return f.id }
func (f *FollowUp) ParentID() uint             { return f.parentID }
func (f *FollowUp) Title() string              { return f.title }
func (f *FollowUp) Body() string               { return f.body }
func (f *FollowUp) Answer() string             { return f.answer }
func (f *FollowUp) AssigneeID() *uint          { return f.assigneeID }
func (f *FollowUp) Status() vo.ComplaintStatus { return f.status }
func (f *FollowUp) Version() int               { return f.version }
func (f *FollowUp) CreatedAt() time.Time       { return f.createdAt }
func (f *FollowUp) UpdatedAt() time.Time       { return f.updatedAt }
func (f *FollowUp) ClosedAt() *time.Time       { return f.closedAt }

func (f *FollowUp) SetID(id uint) error {
	if f.id != 0 {
		return fmt.Errorf("follow-up ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("follow-up ID cannot be zero")
	}
	f.id = id
	return nil
}

func (f *FollowUp) touch() {
	f.updatedAt = time.Now()
	f.version++
}

// UpdateAnswerDraft stores answer text without any status change.
func (f *FollowUp) UpdateAnswerDraft(draft string) error {
	if f.status.IsAnswered() {
		return errors.NewInvalidStateError("follow-up has already been answered")
	}
	if f.status.IsTerminal() {
		return errors.NewInvalidStateError("follow-up is canceled")
	}

	f.answer = draft
	f.touch()
	return nil
}

// CompleteAnswer stores the final answer, stamps the answering caseworker and
// resolves the follow-up.
func (f *FollowUp) CompleteAnswer(finalAnswer string, answeredBy uint) error {
	if len(finalAnswer) == 0 {
		return errors.NewValidationError("answer text is required")
	}
	if f.status.IsAnswered() {
		return errors.NewInvalidStateError("follow-up has already been answered")
	}
	if f.status.IsTerminal() {
		return errors.NewInvalidStateError("follow-up is canceled")
	}

	now := time.Now()
	f.answer = finalAnswer
	if answeredBy != 0 {
		f.assigneeID = &answeredBy
	}
	f.status = vo.StatusResolved
	f.closedAt = &now
	f.touch()
	return nil
}
