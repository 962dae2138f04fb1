package usecases

import (
	"context"
	"time"

	"civicroute/internal/domain/complaint"
	"civicroute/internal/domain/incident"
	"civicroute/internal/shared/errors"
	"civicroute/internal/shared/logger"
)

type GetIncidentQuery struct {
	IncidentID uint
}

type IncidentDTO struct {
	ID             uint       `json:"id"`
	Title          string     `json:"title"`
	Status         string     `json:"status"`
	ComplaintCount int        `json:"complaint_count"`
	CentroidLat    *float64   `json:"centroid_lat"`
	CentroidLon    *float64   `json:"centroid_lon"`
	OpenedAt       time.Time  `json:"opened_at"`
	LastOccurredAt *time.Time `json:"last_occurred_at"`
	ClosedAt       *time.Time `json:"closed_at"`
	ComplaintIDs   []uint     `json:"complaint_ids,omitempty"`
}

type GetIncidentUseCase struct {
	incidentRepo  incident.Repository
	complaintRepo complaint.Repository
	logger        logger.Interface
}

func NewGetIncidentUseCase(
	incidentRepo incident.Repository,
	complaintRepo complaint.Repository,
	logger logger.Interface,
) *GetIncidentUseCase {
	return &GetIncidentUseCase{
		incidentRepo:  incidentRepo,
		complaintRepo: complaintRepo,
		logger:        logger,
	}
}

func (uc *GetIncidentUseCase) Execute(ctx context.Context, query GetIncidentQuery) (*IncidentDTO, error) {
	if query.IncidentID == 0 {
		return nil, errors.NewValidationError("incident ID is required")
	}

	inc, err := uc.incidentRepo.GetByID(ctx, query.IncidentID)
	if err != nil {
		uc.logger.Warnw("incident not found", "incident_id", query.IncidentID, "error", err)
		return nil, errors.NewNotFoundError("incident not found")
	}

	members, err := uc.complaintRepo.ListByIncidentID(ctx, inc.ID())
	if err != nil {
		uc.logger.Errorw("failed to list incident members", "error", err, "incident_id", inc.ID())
		return nil, errors.NewInternalError("failed to list incident members")
	}

	ids := make([]uint, 0, len(members))
	for _, m := range members {
		ids = append(ids, m.ID())
	}

	return &IncidentDTO{
		ID:             inc.ID(),
		Title:          inc.Title(),
		Status:         inc.Status().String(),
		ComplaintCount: inc.ComplaintCount(),
		CentroidLat:    inc.CentroidLat(),
		CentroidLon:    inc.CentroidLon(),
		OpenedAt:       inc.OpenedAt(),
		LastOccurredAt: inc.LastOccurredAt(),
		ClosedAt:       inc.ClosedAt(),
		ComplaintIDs:   ids,
	}, nil
}
