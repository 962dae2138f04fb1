package mappers

import (
	"fmt"
	"time"

	"civicroute/internal/domain/complaint"
	vo "civicroute/internal/domain/complaint/valueobjects"
	"civicroute/internal/infrastructure/persistence/models"
)

// RerouteMapper handles the conversion between RerouteRequest domain entities
// and persistence models.
type RerouteMapper interface {
	ToModel(r *complaint.RerouteRequest) *models.RerouteRequestModel
	ToDomain(model *models.RerouteRequestModel) (*complaint.RerouteRequest, error)
}

type RerouteMapperImpl struct{}

func NewRerouteMapper() RerouteMapper {
	return &RerouteMapperImpl{}
}

func (m *RerouteMapperImpl) ToModel(r *complaint.RerouteRequest) *models.RerouteRequestModel {
	model := &models.RerouteRequestModel{
		ID:           r.ID(),
		ComplaintID:  r.ComplaintID(),
		OriginDeptID: r.OriginDeptID(),
		TargetDeptID: r.TargetDeptID(),
		Reason:       r.Reason(),
		Status:       r.Status().String(),
		RequesterID:  r.RequesterID(),
		ReviewerID:   r.ReviewerID(),
		CreatedAt:    r.CreatedAt().UnixMilli(),
	}

	if r.CompletedAt() != nil {
		completed := r.CompletedAt().UnixMilli()
		model.CompletedAt = &completed
	}

	return model
}

func (m *RerouteMapperImpl) ToDomain(model *models.RerouteRequestModel) (*complaint.RerouteRequest, error) {
	status, err := vo.NewRerouteStatus(model.Status)
	if err != nil {
		return nil, fmt.Errorf("invalid reroute status (id=%d): %w", model.ID, err)
	}

	var completedAt *time.Time
	if model.CompletedAt != nil {
		t := millisToTime(*model.CompletedAt)
		completedAt = &t
	}

	return complaint.ReconstructRerouteRequest(
		model.ID,
		model.ComplaintID,
		model.OriginDeptID,
		model.TargetDeptID,
		model.Reason,
		status,
		model.RequesterID,
		model.ReviewerID,
		millisToTime(model.CreatedAt),
		completedAt,
	)
}
