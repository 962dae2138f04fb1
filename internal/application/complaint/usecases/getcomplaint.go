package usecases

import (
	"context"

	"civicroute/internal/application/complaint/dto"
	"civicroute/internal/domain/complaint"
	"civicroute/internal/shared/errors"
	"civicroute/internal/shared/logger"
)

type GetComplaintQuery struct {
	ComplaintID uint
	Number      string
}

type GetComplaintUseCase struct {
	complaintRepo complaint.Repository
	followUpRepo  complaint.FollowUpRepository
	logger        logger.Interface
}

func NewGetComplaintUseCase(
	complaintRepo complaint.Repository,
	followUpRepo complaint.FollowUpRepository,
	logger logger.Interface,
) *GetComplaintUseCase {
	return &GetComplaintUseCase{
		complaintRepo: complaintRepo,
		followUpRepo:  followUpRepo,
		logger:        logger,
	}
}

func (uc *GetComplaintUseCase) Execute(
	ctx context.Context,
	query GetComplaintQuery,
) (*dto.ComplaintDTO, error) {
	if query.ComplaintID == 0 && query.Number == "" {
		return nil, errors.NewValidationError("complaint ID or number is required")
	}

	var c *complaint.Complaint
	var err error
	if query.ComplaintID != 0 {
		c, err = uc.complaintRepo.GetByID(ctx, query.ComplaintID)
	} else {
		c, err = uc.complaintRepo.GetByNumber(ctx, query.Number)
	}
	if err != nil {
		uc.logger.Warnw("complaint not found",
			"complaint_id", query.ComplaintID,
			"number", query.Number,
			"error", err)
		return nil, errors.NewNotFoundError("complaint not found")
	}

	followUps, err := uc.followUpRepo.ListByParentID(ctx, c.ID())
	if err != nil {
		uc.logger.Errorw("failed to list follow-ups", "error", err, "complaint_id", c.ID())
		return nil, errors.NewInternalError("failed to list follow-ups")
	}

	return dto.ToComplaintDTO(c, followUps), nil
}
