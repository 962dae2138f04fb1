package usecases

import (
	"context"

	"civicroute/internal/domain/incident"
	vo "civicroute/internal/domain/incident/valueobjects"
	"civicroute/internal/shared/errors"
	"civicroute/internal/shared/logger"
)

type ListIncidentsQuery struct {
	Status        string
	MinComplaints int
	Page          int
	PageSize      int
}

type ListIncidentsResult struct {
	Incidents []IncidentDTO `json:"incidents"`
	Total     int64         `json:"total"`
	Page      int           `json:"page"`
	PageSize  int           `json:"page_size"`
}

type ListIncidentsUseCase struct {
	incidentRepo incident.Repository
	logger       logger.Interface
}

func NewListIncidentsUseCase(incidentRepo incident.Repository, logger logger.Interface) *ListIncidentsUseCase {
	return &ListIncidentsUseCase{incidentRepo: incidentRepo, logger: logger}
}

func (uc *ListIncidentsUseCase) Execute(ctx context.Context, query ListIncidentsQuery) (*ListIncidentsResult, error) {
	if query.MinComplaints > 0 {
		return uc.listMajor(ctx, query.MinComplaints, query)
	}

	filter := incident.Filter{
		Page:     query.Page,
		PageSize: query.PageSize,
	}
	if query.Status != "" {
		if _, err := vo.NewIncidentStatus(query.Status); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		filter.Status = &query.Status
	}
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 || filter.PageSize > 100 {
		filter.PageSize = 20
	}

	incidents, total, err := uc.incidentRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list incidents", "error", err)
		return nil, errors.NewInternalError("failed to list incidents")
	}

	return &ListIncidentsResult{
		Incidents: toIncidentDTOs(incidents),
		Total:     total,
		Page:      filter.Page,
		PageSize:  filter.PageSize,
	}, nil
}

func (uc *ListIncidentsUseCase) listMajor(ctx context.Context, minComplaints int, query ListIncidentsQuery) (*ListIncidentsResult, error) {
	incidents, err := uc.incidentRepo.ListMajor(ctx, minComplaints)
	if err != nil {
		uc.logger.Errorw("failed to list major incidents", "error", err)
		return nil, errors.NewInternalError("failed to list major incidents")
	}

	return &ListIncidentsResult{
		Incidents: toIncidentDTOs(incidents),
		Total:     int64(len(incidents)),
		Page:      1,
		PageSize:  len(incidents),
	}, nil
}

func toIncidentDTOs(incidents []*incident.Incident) []IncidentDTO {
	dtos := make([]IncidentDTO, 0, len(incidents))
	for _, inc := range incidents {
		dtos = append(dtos, IncidentDTO{
			ID:             inc.ID(),
			Title:          inc.Title(),
			Status:         inc.Status().String(),
			ComplaintCount: inc.ComplaintCount(),
			CentroidLat:    inc.CentroidLat(),
			CentroidLon:    inc.CentroidLon(),
			OpenedAt:       inc.OpenedAt(),
			LastOccurredAt: inc.LastOccurredAt(),
			ClosedAt:       inc.ClosedAt(),
		})
	}
	return dtos
}
