package mappers

import (
	"fmt"
	"time"

	"civicroute/internal/domain/incident"
	vo "civicroute/internal/domain/incident/valueobjects"
	"civicroute/internal/infrastructure/persistence/models"
)

// IncidentMapper handles the conversion between Incident domain entities and
// persistence models.
type IncidentMapper interface {
	ToModel(i *incident.Incident) *models.IncidentModel
	ToDomain(model *models.IncidentModel) (*incident.Incident, error)
}

type IncidentMapperImpl struct{}

func NewIncidentMapper() IncidentMapper {
	return &IncidentMapperImpl{}
}

func (m *IncidentMapperImpl) ToModel(i *incident.Incident) *models.IncidentModel {
	model := &models.IncidentModel{
		ID:             i.ID(),
		Title:          i.Title(),
		Status:         i.Status().String(),
		ComplaintCount: i.ComplaintCount(),
		CentroidLat:    i.CentroidLat(),
		CentroidLon:    i.CentroidLon(),
		Version:        i.Version(),
		OpenedAt:       i.OpenedAt().UnixMilli(),
	}

	if i.LastOccurredAt() != nil {
		last := i.LastOccurredAt().UnixMilli()
		model.LastOccurredAt = &last
	}

	if i.ClosedAt() != nil {
		closed := i.ClosedAt().UnixMilli()
		model.ClosedAt = &closed
	}

	return model
}

func (m *IncidentMapperImpl) ToDomain(model *models.IncidentModel) (*incident.Incident, error) {
	status, err := vo.NewIncidentStatus(model.Status)
	if err != nil {
		return nil, fmt.Errorf("invalid incident status (id=%d): %w", model.ID, err)
	}

	var lastOccurredAt, closedAt *time.Time
	if model.LastOccurredAt != nil {
		t := millisToTime(*model.LastOccurredAt)
		lastOccurredAt = &t
	}
	if model.ClosedAt != nil {
		t := millisToTime(*model.ClosedAt)
		closedAt = &t
	}

	return incident.ReconstructIncident(
		model.ID,
		model.Title,
		status,
		model.ComplaintCount,
		model.CentroidLat,
		model.CentroidLon,
		model.Version,
		millisToTime(model.OpenedAt),
		lastOccurredAt,
		closedAt,
	)
}
