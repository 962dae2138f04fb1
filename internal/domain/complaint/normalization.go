package complaint

import (
	"context"
	"fmt"
	"time"
)

// Normalization is one AI text-analysis result for a complaint: the neutral
// summary, extracted keywords, the department routing ranking and the text
// embedding. A complaint may be re-normalized; only the newest row per
// complaint carries current = true and participates in similarity search.
type Normalization struct {
	id              uint
	complaintID     uint
	recommendedDept uint
	neutralSummary  string
	topic           string
	category        string
	keywords        []string
	routingRank     []RoutingCandidate
	embedding       []float64
	current         bool
	createdAt       time.Time
}

// RoutingCandidate is one entry of the AI department ranking.
type RoutingCandidate struct {
	DepartmentID uint    `json:"department_id"`
	Score        float64 `json:"score"`
}

func NewNormalization(
	complaintID uint,
	recommendedDept uint,
	neutralSummary string,
	topic string,
	category string,
	keywords []string,
	routingRank []RoutingCandidate,
	embedding []float64,
) (*Normalization, error) {
	if complaintID == 0 {
		return nil, fmt.Errorf("complaint ID is required")
	}
	if len(embedding) == 0 {
		return nil, fmt.Errorf("embedding is required")
	}
	if keywords == nil {
		keywords = []string{}
	}
	if routingRank == nil {
		routingRank = []RoutingCandidate{}
	}

	return &Normalization{
		complaintID:     complaintID,
		recommendedDept: recommendedDept,
		neutralSummary:  neutralSummary,
		topic:           topic,
		category:        category,
		keywords:        keywords,
		routingRank:     routingRank,
		embedding:       embedding,
		current:         true,
		createdAt:       time.Now(),
	}, nil
}

// ReconstructNormalization rebuilds a normalization row from persistence.
func ReconstructNormalization(
	id uint,
	complaintID uint,
	recommendedDept uint,
	neutralSummary string,
	topic string,
	category string,
	keywords []string,
	routingRank []RoutingCandidate,
	embedding []float64,
	current bool,
	createdAt time.Time,
) (*Normalization, error) {
	if id == 0 {
		return nil, fmt.Errorf("normalization ID cannot be zero")
	}
	if complaintID == 0 {
		return nil, fmt.Errorf("complaint ID is required")
	}

	return &Normalization{
		id:              id,
		complaintID:     complaintID,
		recommendedDept: recommendedDept,
		neutralSummary:  neutralSummary,
		topic:           topic,
		category:        category,
		keywords:        keywords,
		routingRank:     routingRank,
		embedding:       embedding,
		current:         current,
		createdAt:       createdAt,
	}, nil
}

func (n *Normalization) ID() uint                        { return n.id }
func (n *Normalization) ComplaintID() uint               { return n.complaintID }
func (n *Normalization) RecommendedDept() uint           { return n.recommendedDept }
func (n *Normalization) NeutralSummary() string          { return n.neutralSummary }
func (n *Normalization) Topic() string                   { return n.topic }
func (n *Normalization) Category() string                { return n.category }
func (n *Normalization) Keywords() []string              { return n.keywords }
func (n *Normalization) RoutingRank() []RoutingCandidate { return n.routingRank }
func (n *Normalization) Embedding() []float64            { return n.embedding }
func (n *Normalization) IsCurrent() bool                 { return n.current }
func (n *Normalization) CreatedAt() time.Time            { return n.createdAt }

func (n *Normalization) SetID(id uint) error {
	if n.id != 0 {
		return fmt.Errorf("normalization ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("normalization ID cannot be zero")
	}
	n.id = id
	return nil
}

// NormalizationRepository persists AI normalization rows. Save marks prior
// rows of the same complaint stale in the same transaction.
type NormalizationRepository interface {
	Save(ctx context.Context, n *Normalization) error
	GetCurrentByComplaintID(ctx context.Context, complaintID uint) (*Normalization, error)
	MarkSuperseded(ctx context.Context, complaintID uint) error
}
