package usecases

import (
	"context"

	"civicroute/internal/domain/complaint"
	"civicroute/internal/shared/errors"
	"civicroute/internal/shared/logger"
)

type SaveDraftAnswerCommand struct {
	ComplaintID uint
	Draft       string
}

type SaveDraftAnswerResult struct {
	ComplaintID uint  `json:"complaint_id"`
	FollowUpID  *uint `json:"follow_up_id,omitempty"`
}

// SaveDraftAnswerUseCase stores answer text without completing the answer.
// Once a complaint has follow-ups, the draft lands on the newest follow-up,
// never on the parent.
type SaveDraftAnswerUseCase struct {
	complaintRepo complaint.Repository
	followUpRepo  complaint.FollowUpRepository
	logger        logger.Interface
}

func NewSaveDraftAnswerUseCase(
	complaintRepo complaint.Repository,
	followUpRepo complaint.FollowUpRepository,
	logger logger.Interface,
) *SaveDraftAnswerUseCase {
	return &SaveDraftAnswerUseCase{
		complaintRepo: complaintRepo,
		followUpRepo:  followUpRepo,
		logger:        logger,
	}
}

func (uc *SaveDraftAnswerUseCase) Execute(
	ctx context.Context,
	cmd SaveDraftAnswerCommand,
) (*SaveDraftAnswerResult, error) {
	uc.logger.Infow("executing save draft answer use case", "complaint_id", cmd.ComplaintID)

	if cmd.ComplaintID == 0 {
		return nil, errors.NewValidationError("complaint ID is required")
	}

	c, err := uc.complaintRepo.GetByID(ctx, cmd.ComplaintID)
	if err != nil {
		uc.logger.Errorw("failed to find complaint", "error", err, "complaint_id", cmd.ComplaintID)
		return nil, errors.NewNotFoundError("complaint not found")
	}

	newest, err := uc.followUpRepo.FindNewestByParentID(ctx, c.ID())
	if err != nil {
		uc.logger.Errorw("failed to look up follow-ups", "error", err)
		return nil, errors.NewInternalError("failed to look up follow-ups")
	}

	if newest != nil {
		if err := newest.UpdateAnswerDraft(cmd.Draft); err != nil {
			return nil, err
		}
		if err := uc.followUpRepo.Update(ctx, newest); err != nil {
			uc.logger.Errorw("failed to update follow-up", "error", err)
			return nil, err
		}
		fuID := newest.ID()
		uc.logger.Infow("draft saved on follow-up", "complaint_id", c.ID(), "follow_up_id", fuID)
		return &SaveDraftAnswerResult{ComplaintID: c.ID(), FollowUpID: &fuID}, nil
	}

	if err := c.UpdateAnswerDraft(cmd.Draft); err != nil {
		return nil, err
	}
	if err := uc.complaintRepo.Update(ctx, c); err != nil {
		uc.logger.Errorw("failed to update complaint", "error", err)
		return nil, err
	}

	uc.logger.Infow("draft saved", "complaint_id", c.ID())
	return &SaveDraftAnswerResult{ComplaintID: c.ID()}, nil
}
