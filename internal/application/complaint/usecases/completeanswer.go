package usecases

import (
	"context"

	"civicroute/internal/domain/complaint"
	"civicroute/internal/domain/shared/events"
	"civicroute/internal/shared/errors"
	"civicroute/internal/shared/logger"
)

type CompleteAnswerCommand struct {
	ComplaintID uint
	Answer      string
	AnsweredBy  uint
}

type CompleteAnswerResult struct {
	ComplaintID uint   `json:"complaint_id"`
	FollowUpID  *uint  `json:"follow_up_id,omitempty"`
	Status      string `json:"status"`
	ClosedAt    string `json:"closed_at"`
}

// CompleteAnswerUseCase finalizes the current answer cycle. When the complaint
// has follow-ups, the answer completes the newest follow-up and the parent
// returns to RESOLVED; otherwise it completes the parent itself.
type CompleteAnswerUseCase struct {
	complaintRepo   complaint.Repository
	followUpRepo    complaint.FollowUpRepository
	txManager       Transactor
	eventDispatcher events.EventDispatcher
	logger          logger.Interface
}

func NewCompleteAnswerUseCase(
	complaintRepo complaint.Repository,
	followUpRepo complaint.FollowUpRepository,
	txManager Transactor,
	eventDispatcher events.EventDispatcher,
	logger logger.Interface,
) *CompleteAnswerUseCase {
	return &CompleteAnswerUseCase{
		complaintRepo:   complaintRepo,
		followUpRepo:    followUpRepo,
		txManager:       txManager,
		eventDispatcher: eventDispatcher,
		logger:          logger,
	}
}

func (uc *CompleteAnswerUseCase) Execute(
	ctx context.Context,
	cmd CompleteAnswerCommand,
) (*CompleteAnswerResult, error) {
	uc.logger.Infow("executing complete answer use case",
		"complaint_id", cmd.ComplaintID,
		"answered_by", cmd.AnsweredBy)

	if err := uc.validateCommand(cmd); err != nil {
		uc.logger.Errorw("invalid complete answer command", "error", err)
		return nil, err
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

	var result *CompleteAnswerResult
	if newest != nil {
		result, err = uc.completeFollowUp(ctx, c, newest, cmd)
	} else {
		result, err = uc.completeParent(ctx, c, cmd)
	}
	if err != nil {
		return nil, err
	}

	var fuID uint
	if result.FollowUpID != nil {
		fuID = *result.FollowUpID
	}
	if uc.eventDispatcher != nil {
		if err := uc.eventDispatcher.Publish(complaint.NewAnswerCompletedEvent(c.ID(), fuID, cmd.AnsweredBy)); err != nil {
			uc.logger.Warnw("failed to dispatch event", "error", err)
		}
	}

	uc.logger.Infow("answer completed",
		"complaint_id", c.ID(),
		"follow_up_id", fuID)
	return result, nil
}

func (uc *CompleteAnswerUseCase) completeParent(
	ctx context.Context,
	c *complaint.Complaint,
	cmd CompleteAnswerCommand,
) (*CompleteAnswerResult, error) {
	if err := c.CompleteAnswer(cmd.Answer); err != nil {
		uc.logger.Warnw("complaint cannot be resolved",
			"complaint_id", c.ID(),
			"status", c.Status().String(),
			"error", err)
		return nil, err
	}

	if err := uc.complaintRepo.Update(ctx, c); err != nil {
		uc.logger.Errorw("failed to update complaint", "error", err)
		return nil, err
	}

	return &CompleteAnswerResult{
		ComplaintID: c.ID(),
		Status:      c.Status().String(),
		ClosedAt:    c.ClosedAt().Format("2006-01-02T15:04:05Z07:00"),
	}, nil
}

func (uc *CompleteAnswerUseCase) completeFollowUp(
	ctx context.Context,
	c *complaint.Complaint,
	fu *complaint.FollowUp,
	cmd CompleteAnswerCommand,
) (*CompleteAnswerResult, error) {
	if err := fu.CompleteAnswer(cmd.Answer, cmd.AnsweredBy); err != nil {
		uc.logger.Warnw("follow-up cannot be resolved",
			"follow_up_id", fu.ID(),
			"status", fu.Status().String(),
			"error", err)
		return nil, err
	}
	if err := c.ResolveAfterFollowUp(); err != nil {
		return nil, err
	}

	err := uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.followUpRepo.Update(txCtx, fu); err != nil {
			return err
		}
		return uc.complaintRepo.Update(txCtx, c)
	})
	if err != nil {
		uc.logger.Errorw("failed to complete follow-up answer", "error", err)
		return nil, err
	}

	fuID := fu.ID()
	return &CompleteAnswerResult{
		ComplaintID: c.ID(),
		FollowUpID:  &fuID,
		Status:      c.Status().String(),
		ClosedAt:    fu.ClosedAt().Format("2006-01-02T15:04:05Z07:00"),
	}, nil
}

func (uc *CompleteAnswerUseCase) validateCommand(cmd CompleteAnswerCommand) error {
	if cmd.ComplaintID == 0 {
		return errors.NewValidationError("complaint ID is required")
	}
	if len(cmd.Answer) == 0 {
		return errors.NewValidationError("answer text is required")
	}
	if cmd.AnsweredBy == 0 {
		return errors.NewValidationError("answered by ID is required")
	}
	return nil
}
