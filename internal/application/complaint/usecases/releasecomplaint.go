package usecases

import (
	"context"

	"civicroute/internal/domain/complaint"
	"civicroute/internal/domain/shared/events"
	"civicroute/internal/shared/errors"
	"civicroute/internal/shared/logger"
)

type ReleaseComplaintCommand struct {
	ComplaintID uint
	CallerID    uint
}

type ReleaseComplaintResult struct {
	ComplaintID uint   `json:"complaint_id"`
	Status      string `json:"status"`
	UpdatedAt   string `json:"updated_at"`
}

type ReleaseComplaintUseCase struct {
	complaintRepo   complaint.Repository
	eventDispatcher events.EventDispatcher
	logger          logger.Interface
}

func NewReleaseComplaintUseCase(
	complaintRepo complaint.Repository,
	eventDispatcher events.EventDispatcher,
	logger logger.Interface,
) *ReleaseComplaintUseCase {
	return &ReleaseComplaintUseCase{
		complaintRepo:   complaintRepo,
		eventDispatcher: eventDispatcher,
		logger:          logger,
	}
}

func (uc *ReleaseComplaintUseCase) Execute(
	ctx context.Context,
	cmd ReleaseComplaintCommand,
) (*ReleaseComplaintResult, error) {
	uc.logger.Infow("executing release complaint use case",
		"complaint_id", cmd.ComplaintID,
		"caller_id", cmd.CallerID)

	if cmd.ComplaintID == 0 {
		return nil, errors.NewValidationError("complaint ID is required")
	}
	if cmd.CallerID == 0 {
		return nil, errors.NewValidationError("caller ID is required")
	}

	c, err := uc.complaintRepo.GetByID(ctx, cmd.ComplaintID)
	if err != nil {
		uc.logger.Errorw("failed to find complaint", "error", err, "complaint_id", cmd.ComplaintID)
		return nil, errors.NewNotFoundError("complaint not found")
	}

	if err := c.Release(cmd.CallerID); err != nil {
		uc.logger.Warnw("complaint cannot be released",
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
		if err := uc.eventDispatcher.Publish(complaint.NewComplaintReleasedEvent(c.ID(), cmd.CallerID)); err != nil {
			uc.logger.Warnw("failed to dispatch event", "error", err)
		}
	}

	uc.logger.Infow("complaint released", "complaint_id", c.ID())

	return &ReleaseComplaintResult{
		ComplaintID: c.ID(),
		Status:      c.Status().String(),
		UpdatedAt:   c.UpdatedAt().Format("2006-01-02T15:04:05Z07:00"),
	}, nil
}
