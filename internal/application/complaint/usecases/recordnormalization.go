package usecases

import (
	"context"

	"civicroute/internal/domain/complaint"
	"civicroute/internal/shared/errors"
	"civicroute/internal/shared/logger"
)

type RecordNormalizationCommand struct {
	ComplaintID     uint
	RecommendedDept uint
	NeutralSummary  string
	Topic           string
	Category        string
	Keywords        []string
	RoutingRank     []complaint.RoutingCandidate
	Embedding       []float64
}

type RecordNormalizationResult struct {
	NormalizationID uint  `json:"normalization_id"`
	ComplaintID     uint  `json:"complaint_id"`
	PredictedDept   *uint `json:"predicted_department_id"`
	IncidentID      *uint `json:"incident_id"`
}

// RecordNormalizationUseCase persists the output of the external AI text
// analysis: the neutral summary, keywords, routing ranking and embedding.
// Prior rows for the complaint are marked stale, the first department
// prediction is stamped on the complaint, and the embedding is handed to the
// incident linker. Linker failure degrades to "unlinked" and never fails the
// write.
type RecordNormalizationUseCase struct {
	complaintRepo     complaint.Repository
	normalizationRepo complaint.NormalizationRepository
	incidentLinker    IncidentLinker
	txManager         Transactor
	logger            logger.Interface
}

func NewRecordNormalizationUseCase(
	complaintRepo complaint.Repository,
	normalizationRepo complaint.NormalizationRepository,
	incidentLinker IncidentLinker,
	txManager Transactor,
	logger logger.Interface,
) *RecordNormalizationUseCase {
	return &RecordNormalizationUseCase{
		complaintRepo:     complaintRepo,
		normalizationRepo: normalizationRepo,
		incidentLinker:    incidentLinker,
		txManager:         txManager,
		logger:            logger,
	}
}

func (uc *RecordNormalizationUseCase) Execute(
	ctx context.Context,
	cmd RecordNormalizationCommand,
) (*RecordNormalizationResult, error) {
	uc.logger.Infow("executing record normalization use case",
		"complaint_id", cmd.ComplaintID,
		"recommended_department_id", cmd.RecommendedDept)

	if cmd.ComplaintID == 0 {
		return nil, errors.NewValidationError("complaint ID is required")
	}
	if len(cmd.Embedding) == 0 {
		return nil, errors.NewValidationError("embedding is required")
	}

	c, err := uc.complaintRepo.GetByID(ctx, cmd.ComplaintID)
	if err != nil {
		uc.logger.Errorw("failed to find complaint", "error", err, "complaint_id", cmd.ComplaintID)
		return nil, errors.NewNotFoundError("complaint not found")
	}

	n, err := complaint.NewNormalization(
		cmd.ComplaintID,
		cmd.RecommendedDept,
		cmd.NeutralSummary,
		cmd.Topic,
		cmd.Category,
		cmd.Keywords,
		cmd.RoutingRank,
		cmd.Embedding,
	)
	if err != nil {
		uc.logger.Errorw("invalid normalization", "error", err)
		return nil, errors.NewValidationError(err.Error())
	}

	c.RecordPrediction(cmd.RecommendedDept)

	txErr := uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.normalizationRepo.MarkSuperseded(txCtx, cmd.ComplaintID); err != nil {
			return err
		}
		if err := uc.normalizationRepo.Save(txCtx, n); err != nil {
			return err
		}
		return uc.complaintRepo.Update(txCtx, c)
	})
	if txErr != nil {
		uc.logger.Errorw("failed to record normalization", "error", txErr)
		return nil, txErr
	}

	var incidentID *uint
	if uc.incidentLinker != nil {
		linked, err := uc.incidentLinker.Link(ctx, cmd.ComplaintID, cmd.Embedding)
		if err != nil {
			uc.logger.Warnw("incident linking degraded to unlinked",
				"complaint_id", cmd.ComplaintID,
				"error", err)
		} else {
			incidentID = linked
		}
	}

	uc.logger.Infow("normalization recorded",
		"complaint_id", cmd.ComplaintID,
		"normalization_id", n.ID())

	return &RecordNormalizationResult{
		NormalizationID: n.ID(),
		ComplaintID:     cmd.ComplaintID,
		PredictedDept:   c.AIPredictedDepartmentID(),
		IncidentID:      incidentID,
	}, nil
}
