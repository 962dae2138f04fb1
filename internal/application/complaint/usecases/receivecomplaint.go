package usecases

import (
	"context"

	"civicroute/internal/domain/complaint"
	vo "civicroute/internal/domain/complaint/valueobjects"
	"civicroute/internal/domain/shared/events"
	"civicroute/internal/shared/errors"
	"civicroute/internal/shared/logger"
)

type ReceiveComplaintCommand struct {
	ApplicantID uint
	Title       string
	Body        string
	AddressText string
	Lat         *float64
	Lon         *float64
}

type ReceiveComplaintResult struct {
	ComplaintID uint   `json:"complaint_id"`
	Number      string `json:"number"`
	Status      string `json:"status"`
	ReceivedAt  string `json:"received_at"`
}

type ReceiveComplaintUseCase struct {
	complaintRepo   complaint.Repository
	numberGenerator complaint.NumberGenerator
	eventDispatcher events.EventDispatcher
	logger          logger.Interface
}

func NewReceiveComplaintUseCase(
	complaintRepo complaint.Repository,
	numberGenerator complaint.NumberGenerator,
	eventDispatcher events.EventDispatcher,
	logger logger.Interface,
) *ReceiveComplaintUseCase {
	return &ReceiveComplaintUseCase{
		complaintRepo:   complaintRepo,
		numberGenerator: numberGenerator,
		eventDispatcher: eventDispatcher,
		logger:          logger,
	}
}

func (uc *ReceiveComplaintUseCase) Execute(
	ctx context.Context,
	cmd ReceiveComplaintCommand,
) (*ReceiveComplaintResult, error) {
	uc.logger.Infow("executing receive complaint use case",
		"applicant_id", cmd.ApplicantID,
		"title", cmd.Title)

	location, err := vo.NewLocation(cmd.AddressText, cmd.Lat, cmd.Lon)
	if err != nil {
		uc.logger.Errorw("invalid complaint location", "error", err)
		return nil, errors.NewValidationError(err.Error())
	}

	c, err := complaint.NewComplaint(cmd.ApplicantID, cmd.Title, cmd.Body, location)
	if err != nil {
		uc.logger.Errorw("invalid receive complaint command", "error", err)
		return nil, errors.NewValidationError(err.Error())
	}

	number, err := uc.numberGenerator.Generate(ctx)
	if err != nil {
		uc.logger.Errorw("failed to generate complaint number", "error", err)
		return nil, errors.NewInternalError("failed to generate complaint number")
	}
	if err := c.SetNumber(number); err != nil {
		return nil, errors.NewInternalError(err.Error())
	}

	if err := uc.complaintRepo.Save(ctx, c); err != nil {
		uc.logger.Errorw("failed to save complaint", "error", err)
		return nil, errors.NewInternalError("failed to save complaint")
	}

	uc.publishEvent(complaint.NewComplaintReceivedEvent(c.ID(), c.Number(), c.ApplicantID(), c.Title()))

	uc.logger.Infow("complaint received",
		"complaint_id", c.ID(),
		"number", c.Number())

	return &ReceiveComplaintResult{
		ComplaintID: c.ID(),
		Number:      c.Number(),
		Status:      c.Status().String(),
		ReceivedAt:  c.ReceivedAt().Format("2006-01-02T15:04:05Z07:00"),
	}, nil
}

func (uc *ReceiveComplaintUseCase) publishEvent(event events.DomainEvent) {
	if uc.eventDispatcher == nil {
		return
	}
	if err := uc.eventDispatcher.Publish(event); err != nil {
		uc.logger.Warnw("failed to dispatch event", "error", err, "event_type", event.GetEventType())
	}
}
