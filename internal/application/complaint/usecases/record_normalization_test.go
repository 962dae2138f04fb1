package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"civicroute/internal/domain/complaint"
	vo "civicroute/internal/domain/complaint/valueobjects"
	apperrors "civicroute/internal/shared/errors"
)

func normalizationCommand(complaintID uint) RecordNormalizationCommand {
	return RecordNormalizationCommand{
		ComplaintID:     complaintID,
		RecommendedDept: 4,
		NeutralSummary:  "Streetlight out on Main St",
		Topic:           "street lighting",
		Category:        "infrastructure",
		Keywords:        []string{"streetlight", "dark"},
		RoutingRank: []complaint.RoutingCandidate{
			{DepartmentID: 4, Score: 0.92},
			{DepartmentID: 6, Score: 0.41},
		},
		Embedding: []float64{0.1, 0.2, 0.3},
	}
}

func TestRecordNormalizationUseCase_Execute_Success(t *testing.T) {
	existing := testComplaint(t, 1, vo.StatusReceived, nil)

	var superseded bool
	var saved *complaint.Normalization
	var updated *complaint.Complaint
	mockRepo := &mockComplaintRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*complaint.Complaint, error) {
			return existing, nil
		},
		UpdateFunc: func(ctx context.Context, c *complaint.Complaint) error {
			updated = c
			return nil
		},
	}
	mockNorms := &mockNormalizationRepository{
		MarkSupersededFunc: func(ctx context.Context, complaintID uint) error {
			superseded = true
			return nil
		},
		SaveFunc: func(ctx context.Context, n *complaint.Normalization) error {
			if err := n.SetID(3); err != nil {
				return err
			}
			saved = n
			return nil
		},
	}
	linked := uint(9)
	mockLinker := &mockIncidentLinker{
		LinkFunc: func(ctx context.Context, complaintID uint, embedding []float64) (*uint, error) {
			assert.Equal(t, []float64{0.1, 0.2, 0.3}, embedding)
			return &linked, nil
		},
	}

	uc := NewRecordNormalizationUseCase(mockRepo, mockNorms, mockLinker, &mockTransactor{}, &mockLogger{})
	result, err := uc.Execute(context.Background(), normalizationCommand(1))

	require.NoError(t, err)
	assert.Equal(t, uint(3), result.NormalizationID)
	require.NotNil(t, result.PredictedDept)
	assert.Equal(t, uint(4), *result.PredictedDept)
	require.NotNil(t, result.IncidentID)
	assert.Equal(t, uint(9), *result.IncidentID)

	assert.True(t, superseded, "prior normalization rows must be marked stale")
	require.NotNil(t, saved)
	assert.True(t, saved.IsCurrent())
	require.NotNil(t, updated)
	require.NotNil(t, updated.AIPredictedDepartmentID())
	assert.Equal(t, uint(4), *updated.AIPredictedDepartmentID())
}

func TestRecordNormalizationUseCase_Execute_LinkerFailureDegrades(t *testing.T) {
	existing := testComplaint(t, 1, vo.StatusReceived, nil)
	mockRepo := &mockComplaintRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*complaint.Complaint, error) {
			return existing, nil
		},
	}
	mockNorms := &mockNormalizationRepository{
		SaveFunc: func(ctx context.Context, n *complaint.Normalization) error {
			return n.SetID(3)
		},
	}
	mockLinker := &mockIncidentLinker{
		LinkFunc: func(ctx context.Context, complaintID uint, embedding []float64) (*uint, error) {
			return nil, apperrors.NewUpstreamUnavailableError("oracle timed out")
		},
	}

	uc := NewRecordNormalizationUseCase(mockRepo, mockNorms, mockLinker, &mockTransactor{}, &mockLogger{})
	result, err := uc.Execute(context.Background(), normalizationCommand(1))

	require.NoError(t, err, "oracle failure never fails the normalization write")
	assert.Nil(t, result.IncidentID)
}

func TestRecordNormalizationUseCase_Execute_SecondPredictionDoesNotOverwrite(t *testing.T) {
	existing := testComplaint(t, 1, vo.StatusReceived, nil)
	existing.RecordPrediction(8)

	mockRepo := &mockComplaintRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*complaint.Complaint, error) {
			return existing, nil
		},
	}
	mockNorms := &mockNormalizationRepository{
		SaveFunc: func(ctx context.Context, n *complaint.Normalization) error {
			return n.SetID(4)
		},
	}

	uc := NewRecordNormalizationUseCase(mockRepo, mockNorms, &mockIncidentLinker{}, &mockTransactor{}, &mockLogger{})
	result, err := uc.Execute(context.Background(), normalizationCommand(1))

	require.NoError(t, err)
	require.NotNil(t, result.PredictedDept)
	assert.Equal(t, uint(8), *result.PredictedDept, "the first prediction wins")
}

func TestRecordNormalizationUseCase_Execute_MissingEmbedding(t *testing.T) {
	uc := NewRecordNormalizationUseCase(&mockComplaintRepository{}, &mockNormalizationRepository{}, &mockIncidentLinker{}, &mockTransactor{}, &mockLogger{})

	cmd := normalizationCommand(1)
	cmd.Embedding = nil
	result, err := uc.Execute(context.Background(), cmd)

	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, apperrors.IsValidationError(err))
}
