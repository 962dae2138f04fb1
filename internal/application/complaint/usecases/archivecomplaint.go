package usecases

import (
	"context"

	"civicroute/internal/domain/complaint"
	"civicroute/internal/domain/shared/events"
	"civicroute/internal/shared/errors"
	"civicroute/internal/shared/logger"
)

type ArchiveComplaintCommand struct {
	ComplaintID uint
}

type ArchiveComplaintResult struct {
	ComplaintID uint   `json:"complaint_id"`
	Status      string `json:"status"`
}

type ArchiveComplaintUseCase struct {
	complaintRepo   complaint.Repository
	eventDispatcher events.EventDispatcher
	logger          logger.Interface
}

func NewArchiveComplaintUseCase(
	complaintRepo complaint.Repository,
	eventDispatcher events.EventDispatcher,
	logger logger.Interface,
) *ArchiveComplaintUseCase {
	return &ArchiveComplaintUseCase{
		complaintRepo:   complaintRepo,
		eventDispatcher: eventDispatcher,
		logger:          logger,
	}
}

func (uc *ArchiveComplaintUseCase) Execute(
	ctx context.Context,
	cmd ArchiveComplaintCommand,
) (*ArchiveComplaintResult, error) {
	uc.logger.Infow("executing archive complaint use case", "complaint_id", cmd.ComplaintID)

	if cmd.ComplaintID == 0 {
		return nil, errors.NewValidationError("complaint ID is required")
	}

	c, err := uc.complaintRepo.GetByID(ctx, cmd.ComplaintID)
	if err != nil {
		uc.logger.Errorw("failed to find complaint", "error", err, "complaint_id", cmd.ComplaintID)
		return nil, errors.NewNotFoundError("complaint not found")
	}

	if err := c.Archive(); err != nil {
		uc.logger.Warnw("complaint cannot be archived",
			"complaint_id", cmd.ComplaintID,
			"status", c.Status().String(),
			"error", err)
		return nil, err
	}

	if err := uc.complaintRepo.Update(ctx, c); err != nil {
		uc.logger.Errorw("failed to update complaint", "error", err)
		return nil, err
	}

	if uc.eventDispatcher != nil {
		if err := uc.eventDispatcher.Publish(complaint.NewComplaintArchivedEvent(c.ID())); err != nil {
			uc.logger.Warnw("failed to dispatch event", "error", err)
		}
	}

	uc.logger.Infow("complaint archived", "complaint_id", c.ID())

	return &ArchiveComplaintResult{
		ComplaintID: c.ID(),
		Status:      c.Status().String(),
	}, nil
}
