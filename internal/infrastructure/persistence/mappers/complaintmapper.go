package mappers

import (
	"fmt"
	"time"

	"civicroute/internal/domain/complaint"
	vo "civicroute/internal/domain/complaint/valueobjects"
	"civicroute/internal/infrastructure/persistence/models"
)

// ComplaintMapper handles the conversion between Complaint domain entities
// and persistence models.
type ComplaintMapper interface {
	// ToModel converts a complaint domain entity to a persistence model.
	ToModel(c *complaint.Complaint) *models.ComplaintModel

	// ToDomain converts a complaint persistence model to a domain entity.
	ToDomain(model *models.ComplaintModel) (*complaint.Complaint, error)

	// FollowUpToModel converts a follow-up domain entity to a persistence model.
	FollowUpToModel(f *complaint.FollowUp) *models.FollowUpModel

	// FollowUpToDomain converts a follow-up persistence model to a domain entity.
	FollowUpToDomain(model *models.FollowUpModel) (*complaint.FollowUp, error)
}

type ComplaintMapperImpl struct{}

func NewComplaintMapper() ComplaintMapper {
	return &ComplaintMapperImpl{}
}

func (m *ComplaintMapperImpl) ToModel(c *complaint.Complaint) *models.ComplaintModel {
	loc := c.Location()
	model := &models.ComplaintModel{
		ID:                  c.ID(),
		Number:              c.Number(),
		ApplicantID:         c.ApplicantID(),
		Title:               c.Title(),
		Body:                c.Body(),
		AddressText:         loc.AddressText(),
		Lat:                 loc.Lat(),
		Lon:                 loc.Lon(),
		Status:              c.Status().String(),
		AssigneeID:          c.AssigneeID(),
		Answer:              c.Answer(),
		CurrentDepartmentID: c.CurrentDepartmentID(),
		AIPredictedDeptID:   c.AIPredictedDepartmentID(),
		IncidentID:          c.IncidentID(),
		IncidentLinkScore:   c.IncidentLinkScore(),
		Version:             c.Version(),
		ReceivedAt:          c.ReceivedAt().UnixMilli(),
		CreatedAt:           c.CreatedAt().UnixMilli(),
		UpdatedAt:           c.UpdatedAt().UnixMilli(),
	}

	if c.IncidentLinkedAt() != nil {
		linked := c.IncidentLinkedAt().UnixMilli()
		model.IncidentLinkedAt = &linked
	}

	if c.ClosedAt() != nil {
		closed := c.ClosedAt().UnixMilli()
		model.ClosedAt = &closed
	}

	return model
}

// ToDomain converts a complaint persistence model to a domain entity.
// Follow-ups must be loaded separately by the repository.
func (m *ComplaintMapperImpl) ToDomain(model *models.ComplaintModel) (*complaint.Complaint, error) {
	status, err := vo.NewComplaintStatus(model.Status)
	if err != nil {
		return nil, fmt.Errorf("invalid complaint status (id=%d): %w", model.ID, err)
	}

	location, err := vo.NewLocation(model.AddressText, model.Lat, model.Lon)
	if err != nil {
		return nil, fmt.Errorf("invalid complaint location (id=%d): %w", model.ID, err)
	}

	var incidentLinkedAt, closedAt *time.Time
	if model.IncidentLinkedAt != nil {
		t := millisToTime(*model.IncidentLinkedAt)
		incidentLinkedAt = &t
	}
	if model.ClosedAt != nil {
		t := millisToTime(*model.ClosedAt)
		closedAt = &t
	}

	return complaint.ReconstructComplaint(
		model.ID,
		model.Number,
		model.ApplicantID,
		model.Title,
		model.Body,
		location,
		status,
		model.AssigneeID,
		model.Answer,
		model.CurrentDepartmentID,
		model.AIPredictedDeptID,
		model.IncidentID,
		model.IncidentLinkScore,
		incidentLinkedAt,
		model.Version,
		millisToTime(model.ReceivedAt),
		millisToTime(model.CreatedAt),
		millisToTime(model.UpdatedAt),
		closedAt,
	)
}

func (m *ComplaintMapperImpl) FollowUpToModel(f *complaint.FollowUp) *models.FollowUpModel {
	model := &models.FollowUpModel{
		ID:         f.ID(),
		ParentID:   f.ParentID(),
		Title:      f.Title(),
		Body:       f.Body(),
		Answer:     f.Answer(),
		AssigneeID: f.AssigneeID(),
		Status:     f.Status().String(),
		Version:    f.Version(),
		CreatedAt:  f.CreatedAt().UnixMilli(),
		UpdatedAt:  f.UpdatedAt().UnixMilli(),
	}

	if f.ClosedAt() != nil {
		closed := f.ClosedAt().UnixMilli()
		model.ClosedAt = &closed
	}

	return model
}

func (m *ComplaintMapperImpl) FollowUpToDomain(model *models.FollowUpModel) (*complaint.FollowUp, error) {
	status, err := vo.NewComplaintStatus(model.Status)
	if err != nil {
		return nil, fmt.Errorf("invalid follow-up status (id=%d): %w", model.ID, err)
	}

	var closedAt *time.Time
	if model.ClosedAt != nil {
		t := millisToTime(*model.ClosedAt)
		closedAt = &t
	}

	return complaint.ReconstructFollowUp(
		model.ID,
		model.ParentID,
		model.Title,
		model.Body,
		model.Answer,
		model.AssigneeID,
		status,
		model.Version,
		millisToTime(model.CreatedAt),
		millisToTime(model.UpdatedAt),
		closedAt,
	)
}

func millisToTime(millis int64) time.Time {
	return time.Unix(0, millis*int64(time.Millisecond))
}
