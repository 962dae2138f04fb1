package usecases

import (
	"context"

	"civicroute/internal/application/complaint/dto"
	"civicroute/internal/domain/complaint"
	vo "civicroute/internal/domain/complaint/valueobjects"
	"civicroute/internal/shared/errors"
	"civicroute/internal/shared/logger"
)

type ListComplaintsQuery struct {
	Status       string
	DepartmentID *uint
	AssigneeID   *uint
	ApplicantID  *uint
	IncidentID   *uint
	Page         int
	PageSize     int
	SortBy       string
	SortOrder    string
}

type ListComplaintsResult struct {
	Complaints []dto.ComplaintListItemDTO `json:"complaints"`
	Total      int64                      `json:"total"`
	Page       int                        `json:"page"`
	PageSize   int                        `json:"page_size"`
}

type ListComplaintsUseCase struct {
	complaintRepo complaint.Repository
	logger        logger.Interface
}

func NewListComplaintsUseCase(
	complaintRepo complaint.Repository,
	logger logger.Interface,
) *ListComplaintsUseCase {
	return &ListComplaintsUseCase{
		complaintRepo: complaintRepo,
		logger:        logger,
	}
}

func (uc *ListComplaintsUseCase) Execute(
	ctx context.Context,
	query ListComplaintsQuery,
) (*ListComplaintsResult, error) {
	filter := complaint.Filter{
		DepartmentID: query.DepartmentID,
		AssigneeID:   query.AssigneeID,
		ApplicantID:  query.ApplicantID,
		IncidentID:   query.IncidentID,
		Page:         query.Page,
		PageSize:     query.PageSize,
		SortBy:       query.SortBy,
		SortOrder:    query.SortOrder,
	}

	if query.Status != "" {
		status, err := vo.NewComplaintStatus(query.Status)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		filter.Status = &status
	}

	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 || filter.PageSize > 100 {
		filter.PageSize = 20
	}

	complaints, total, err := uc.complaintRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list complaints", "error", err)
		return nil, errors.NewInternalError("failed to list complaints")
	}

	items := make([]dto.ComplaintListItemDTO, 0, len(complaints))
	for _, c := range complaints {
		items = append(items, *dto.ToComplaintListItemDTO(c))
	}

	return &ListComplaintsResult{
		Complaints: items,
		Total:      total,
		Page:       filter.Page,
		PageSize:   filter.PageSize,
	}, nil
}
