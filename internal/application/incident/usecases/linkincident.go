package usecases

import (
	"context"
	"sort"
	"time"

	"civicroute/internal/domain/complaint"
	"civicroute/internal/domain/incident"
	"civicroute/internal/shared/errors"
	"civicroute/internal/shared/logger"
)

// DefaultLinkThreshold is the similarity score a best match has to reach
// before a complaint attaches to an incident.
const DefaultLinkThreshold = 0.85

type LinkIncidentCommand struct {
	ComplaintID uint
	Embedding   []float64
}

type LinkIncidentResult struct {
	ComplaintID     uint     `json:"complaint_id"`
	Linked          bool     `json:"linked"`
	IncidentID      *uint    `json:"incident_id"`
	Score           *float64 `json:"score"`
	IncidentCreated bool     `json:"incident_created"`
}

type Transactor interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// LinkIncidentUseCase decides incident attachment for a freshly normalized
// complaint. The similarity oracle proposes candidates; the best match at or
// above the threshold either pulls the complaint into an existing incident or
// opens a new one containing both complaints. Ties break on the highest
// score, then the lowest complaint ID, so reruns give the same answer.
type LinkIncidentUseCase struct {
	complaintRepo complaint.Repository
	incidentRepo  incident.Repository
	oracle        incident.SimilarityOracle
	txManager     Transactor
	threshold     float64
	topK          int
	logger        logger.Interface
}

func NewLinkIncidentUseCase(
	complaintRepo complaint.Repository,
	incidentRepo incident.Repository,
	oracle incident.SimilarityOracle,
	txManager Transactor,
	threshold float64,
	topK int,
	logger logger.Interface,
) *LinkIncidentUseCase {
	if threshold <= 0 || threshold > 1 {
		threshold = DefaultLinkThreshold
	}
	if topK <= 0 {
		topK = 5
	}
	return &LinkIncidentUseCase{
		complaintRepo: complaintRepo,
		incidentRepo:  incidentRepo,
		oracle:        oracle,
		txManager:     txManager,
		threshold:     threshold,
		topK:          topK,
		logger:        logger,
	}
}

// Link adapts Execute to the shape the normalization use case expects.
func (uc *LinkIncidentUseCase) Link(ctx context.Context, complaintID uint, embedding []float64) (*uint, error) {
	result, err := uc.Execute(ctx, LinkIncidentCommand{ComplaintID: complaintID, Embedding: embedding})
	if err != nil {
		return nil, err
	}
	return result.IncidentID, nil
}

func (uc *LinkIncidentUseCase) Execute(
	ctx context.Context,
	cmd LinkIncidentCommand,
) (*LinkIncidentResult, error) {
	uc.logger.Infow("executing link incident use case", "complaint_id", cmd.ComplaintID)

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
	if c.IncidentID() != nil {
		return &LinkIncidentResult{
			ComplaintID: c.ID(),
			Linked:      true,
			IncidentID:  c.IncidentID(),
			Score:       c.IncidentLinkScore(),
		}, nil
	}

	// The oracle call stays outside any transaction.
	matches, err := uc.oracle.FindSimilar(ctx, cmd.Embedding, uc.topK)
	if err != nil {
		uc.logger.Warnw("similarity oracle unavailable", "error", err)
		return nil, errors.NewUpstreamUnavailableError("similarity oracle unavailable")
	}

	best, ok := uc.selectBest(cmd.ComplaintID, matches)
	if !ok || best.Score < uc.threshold {
		uc.logger.Infow("complaint stays unlinked", "complaint_id", c.ID())
		return &LinkIncidentResult{ComplaintID: c.ID()}, nil
	}

	peer, err := uc.complaintRepo.GetByID(ctx, best.ComplaintID)
	if err != nil {
		uc.logger.Errorw("failed to find matched complaint", "error", err, "complaint_id", best.ComplaintID)
		return nil, errors.NewInternalError("failed to find matched complaint")
	}

	if peer.IncidentID() != nil {
		return uc.attach(ctx, c, *peer.IncidentID(), best.Score)
	}
	return uc.openIncident(ctx, c, peer, best.Score)
}

// selectBest filters out the complaint itself and applies the tie-break.
func (uc *LinkIncidentUseCase) selectBest(selfID uint, matches []incident.Match) (incident.Match, bool) {
	candidates := make([]incident.Match, 0, len(matches))
	for _, m := range matches {
		if m.ComplaintID == selfID {
			continue
		}
		candidates = append(candidates, m)
	}
	if len(candidates) == 0 {
		return incident.Match{}, false
	}

	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].Score != candidates[j].Score {
			return candidates[i].Score > candidates[j].Score
		}
		return candidates[i].ComplaintID < candidates[j].ComplaintID
	})
	return candidates[0], true
}

func (uc *LinkIncidentUseCase) attach(
	ctx context.Context,
	c *complaint.Complaint,
	incidentID uint,
	score float64,
) (*LinkIncidentResult, error) {
	inc, err := uc.incidentRepo.GetByID(ctx, incidentID)
	if err != nil {
		uc.logger.Errorw("failed to find incident", "error", err, "incident_id", incidentID)
		return nil, errors.NewInternalError("failed to find incident")
	}

	now := time.Now()
	if err := c.LinkIncident(inc.ID(), score, now); err != nil {
		return nil, err
	}

	txErr := uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.complaintRepo.Update(txCtx, c); err != nil {
			return err
		}
		members, err := uc.complaintRepo.ListByIncidentID(txCtx, inc.ID())
		if err != nil {
			return err
		}
		if err := inc.RecomputeMembership(len(members), &now); err != nil {
			return err
		}
		return uc.incidentRepo.Update(txCtx, inc)
	})
	if txErr != nil {
		uc.logger.Errorw("failed to attach complaint to incident", "error", txErr)
		return nil, txErr
	}

	uc.logger.Infow("complaint attached to incident",
		"complaint_id", c.ID(),
		"incident_id", inc.ID(),
		"score", score)

	incID := inc.ID()
	return &LinkIncidentResult{
		ComplaintID: c.ID(),
		Linked:      true,
		IncidentID:  &incID,
		Score:       &score,
	}, nil
}

func (uc *LinkIncidentUseCase) openIncident(
	ctx context.Context,
	c *complaint.Complaint,
	peer *complaint.Complaint,
	score float64,
) (*LinkIncidentResult, error) {
	loc := peer.Location()
	inc, err := incident.NewIncident(peer.Title(), loc.Lat(), loc.Lon())
	if err != nil {
		return nil, errors.NewInternalError(err.Error())
	}

	now := time.Now()
	txErr := uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.incidentRepo.Save(txCtx, inc); err != nil {
			return err
		}
		if err := peer.LinkIncident(inc.ID(), score, now); err != nil {
			return err
		}
		if err := c.LinkIncident(inc.ID(), score, now); err != nil {
			return err
		}
		if err := uc.complaintRepo.Update(txCtx, peer); err != nil {
			return err
		}
		if err := uc.complaintRepo.Update(txCtx, c); err != nil {
			return err
		}
		if err := inc.RecomputeMembership(2, &now); err != nil {
			return err
		}
		return uc.incidentRepo.Update(txCtx, inc)
	})
	if txErr != nil {
		uc.logger.Errorw("failed to open incident", "error", txErr)
		return nil, txErr
	}

	uc.logger.Infow("incident opened",
		"incident_id", inc.ID(),
		"complaint_id", c.ID(),
		"peer_complaint_id", peer.ID(),
		"score", score)

	incID := inc.ID()
	return &LinkIncidentResult{
		ComplaintID:     c.ID(),
		Linked:          true,
		IncidentID:      &incID,
		Score:           &score,
		IncidentCreated: true,
	}, nil
}
