package mappers

import (
	"encoding/json"
	"fmt"

	"civicroute/internal/domain/complaint"
	"civicroute/internal/infrastructure/persistence/models"
)

// NormalizationMapper handles the conversion between Normalization domain
// entities and persistence models.
type NormalizationMapper interface {
	ToModel(n *complaint.Normalization) (*models.NormalizationModel, error)
	ToDomain(model *models.NormalizationModel) (*complaint.Normalization, error)
}

type NormalizationMapperImpl struct{}

func NewNormalizationMapper() NormalizationMapper {
	return &NormalizationMapperImpl{}
}

func (m *NormalizationMapperImpl) ToModel(n *complaint.Normalization) (*models.NormalizationModel, error) {
	model := &models.NormalizationModel{
		ID:              n.ID(),
		ComplaintID:     n.ComplaintID(),
		RecommendedDept: n.RecommendedDept(),
		NeutralSummary:  n.NeutralSummary(),
		Topic:           n.Topic(),
		Category:        n.Category(),
		IsCurrent:       n.IsCurrent(),
		CreatedAt:       n.CreatedAt().UnixMilli(),
	}

	if len(n.Keywords()) > 0 {
		keywordsJSON, err := json.Marshal(n.Keywords())
		if err != nil {
			return nil, fmt.Errorf("failed to marshal normalization keywords: %w", err)
		}
		model.Keywords = keywordsJSON
	}

	if len(n.RoutingRank()) > 0 {
		rankJSON, err := json.Marshal(n.RoutingRank())
		if err != nil {
			return nil, fmt.Errorf("failed to marshal normalization routing rank: %w", err)
		}
		model.RoutingRank = rankJSON
	}

	embeddingJSON, err := json.Marshal(n.Embedding())
	if err != nil {
		return nil, fmt.Errorf("failed to marshal normalization embedding: %w", err)
	}
	model.Embedding = embeddingJSON

	return model, nil
}

func (m *NormalizationMapperImpl) ToDomain(model *models.NormalizationModel) (*complaint.Normalization, error) {
	var keywords []string
	if len(model.Keywords) > 0 {
		if err := json.Unmarshal(model.Keywords, &keywords); err != nil {
			return nil, fmt.Errorf("failed to unmarshal normalization keywords (id=%d): %w", model.ID, err)
		}
	}

	var routingRank []complaint.RoutingCandidate
	if len(model.RoutingRank) > 0 {
		if err := json.Unmarshal(model.RoutingRank, &routingRank); err != nil {
			return nil, fmt.Errorf("failed to unmarshal normalization routing rank (id=%d): %w", model.ID, err)
		}
	}

	var embedding []float64
	if len(model.Embedding) > 0 {
		if err := json.Unmarshal(model.Embedding, &embedding); err != nil {
			return nil, fmt.Errorf("failed to unmarshal normalization embedding (id=%d): %w", model.ID, err)
		}
	}

	return complaint.ReconstructNormalization(
		model.ID,
		model.ComplaintID,
		model.RecommendedDept,
		model.NeutralSummary,
		model.Topic,
		model.Category,
		keywords,
		routingRank,
		embedding,
		model.IsCurrent,
		millisToTime(model.CreatedAt),
	)
}
