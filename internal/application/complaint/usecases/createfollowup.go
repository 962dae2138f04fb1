package usecases

import (
	"context"

	"civicroute/internal/domain/complaint"
	"civicroute/internal/domain/shared/events"
	"civicroute/internal/shared/errors"
	"civicroute/internal/shared/logger"
)

type CreateFollowUpCommand struct {
	ParentID uint
	Title    string
	Body     string
}

type CreateFollowUpResult struct {
	FollowUpID   uint   `json:"follow_up_id"`
	ParentID     uint   `json:"parent_id"`
	ParentStatus string `json:"parent_status"`
	Status       string `json:"status"`
}

// CreateFollowUpUseCase opens a follow-up inquiry on an answered complaint.
// The gate: a parent that is not RESOLVED or CLOSED rejects the follow-up
// with a pending-answer error, so one answer cycle finishes before the next
// begins.
type CreateFollowUpUseCase struct {
	complaintRepo   complaint.Repository
	followUpRepo    complaint.FollowUpRepository
	txManager       Transactor
	eventDispatcher events.EventDispatcher
	logger          logger.Interface
}

func NewCreateFollowUpUseCase(
	complaintRepo complaint.Repository,
	followUpRepo complaint.FollowUpRepository,
	txManager Transactor,
	eventDispatcher events.EventDispatcher,
	logger logger.Interface,
) *CreateFollowUpUseCase {
	return &CreateFollowUpUseCase{
		complaintRepo:   complaintRepo,
		followUpRepo:    followUpRepo,
		txManager:       txManager,
		eventDispatcher: eventDispatcher,
		logger:          logger,
	}
}

func (uc *CreateFollowUpUseCase) Execute(
	ctx context.Context,
	cmd CreateFollowUpCommand,
) (*CreateFollowUpResult, error) {
	uc.logger.Infow("executing create follow-up use case", "parent_id", cmd.ParentID)

	if cmd.ParentID == 0 {
		return nil, errors.NewValidationError("parent complaint ID is required")
	}

	parent, err := uc.complaintRepo.GetByID(ctx, cmd.ParentID)
	if err != nil {
		uc.logger.Errorw("failed to find parent complaint", "error", err, "parent_id", cmd.ParentID)
		return nil, errors.NewNotFoundError("complaint not found")
	}

	if err := parent.ReopenForFollowUp(); err != nil {
		uc.logger.Warnw("follow-up rejected",
			"parent_id", cmd.ParentID,
			"parent_status", parent.Status().String(),
			"error", err)
		return nil, err
	}

	fu, err := complaint.NewFollowUp(cmd.ParentID, cmd.Title, cmd.Body)
	if err != nil {
		uc.logger.Errorw("invalid create follow-up command", "error", err)
		return nil, errors.NewValidationError(err.Error())
	}

	txErr := uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.followUpRepo.Save(txCtx, fu); err != nil {
			return err
		}
		return uc.complaintRepo.Update(txCtx, parent)
	})
	if txErr != nil {
		uc.logger.Errorw("failed to create follow-up", "error", txErr)
		return nil, txErr
	}

	if uc.eventDispatcher != nil {
		if err := uc.eventDispatcher.Publish(complaint.NewFollowUpCreatedEvent(parent.ID(), fu.ID())); err != nil {
			uc.logger.Warnw("failed to dispatch event", "error", err)
		}
	}

	uc.logger.Infow("follow-up created",
		"parent_id", parent.ID(),
		"follow_up_id", fu.ID())

	return &CreateFollowUpResult{
		FollowUpID:   fu.ID(),
		ParentID:     parent.ID(),
		ParentStatus: parent.Status().String(),
		Status:       fu.Status().String(),
	}, nil
}
