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

func TestArchiveComplaintUseCase_Execute_Success(t *testing.T) {
	existing := testComplaint(t, 1, vo.StatusResolved, uintPtr(7))

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

	uc := NewArchiveComplaintUseCase(mockRepo, &mockEventDispatcher{}, &mockLogger{})
	result, err := uc.Execute(context.Background(), ArchiveComplaintCommand{ComplaintID: 1})

	require.NoError(t, err)
	assert.Equal(t, "CLOSED", result.Status)
	require.NotNil(t, updated)
	assert.Equal(t, vo.StatusClosed, updated.Status())
}

func TestArchiveComplaintUseCase_Execute_NotResolved(t *testing.T) {
	existing := testComplaint(t, 1, vo.StatusInProgress, uintPtr(7))
	mockRepo := &mockComplaintRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*complaint.Complaint, error) {
			return existing, nil
		},
	}

	uc := NewArchiveComplaintUseCase(mockRepo, &mockEventDispatcher{}, &mockLogger{})
	result, err := uc.Execute(context.Background(), ArchiveComplaintCommand{ComplaintID: 1})

	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, apperrors.IsInvalidStateError(err))
}

func TestCancelComplaintUseCase_Execute_Success(t *testing.T) {
	existing := testComplaint(t, 1, vo.StatusInProgress, uintPtr(7))

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

	uc := NewCancelComplaintUseCase(mockRepo, &mockRerouteRepository{}, &mockEventDispatcher{}, &mockLogger{})
	result, err := uc.Execute(context.Background(), CancelComplaintCommand{ComplaintID: 1, CanceledBy: 10})

	require.NoError(t, err)
	assert.Equal(t, "CANCELED", result.Status)
	require.NotNil(t, updated)
}

func TestCancelComplaintUseCase_Execute_Idempotent(t *testing.T) {
	existing := testComplaint(t, 1, vo.StatusCanceled, nil)
	mockRepo := &mockComplaintRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*complaint.Complaint, error) {
			return existing, nil
		},
		UpdateFunc: func(ctx context.Context, c *complaint.Complaint) error {
			t.Fatal("re-canceling must not write")
			return nil
		},
	}

	uc := NewCancelComplaintUseCase(mockRepo, &mockRerouteRepository{}, &mockEventDispatcher{}, &mockLogger{})
	result, err := uc.Execute(context.Background(), CancelComplaintCommand{ComplaintID: 1, CanceledBy: 10})

	require.NoError(t, err)
	assert.Equal(t, "CANCELED", result.Status)
}

func TestCancelComplaintUseCase_Execute_ClosesPendingReroute(t *testing.T) {
	existing := testComplaint(t, 1, vo.StatusRecommended, nil)
	pending := testPendingReroute(t, 11, 1)

	var updatedRequest *complaint.RerouteRequest
	mockRepo := &mockComplaintRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*complaint.Complaint, error) {
			return existing, nil
		},
	}
	mockReroutes := &mockRerouteRepository{
		GetPendingByComplaintIDFunc: func(ctx context.Context, complaintID uint) (*complaint.RerouteRequest, error) {
			return pending, nil
		},
		UpdateFunc: func(ctx context.Context, r *complaint.RerouteRequest) error {
			updatedRequest = r
			return nil
		},
	}

	uc := NewCancelComplaintUseCase(mockRepo, mockReroutes, &mockEventDispatcher{}, &mockLogger{})
	result, err := uc.Execute(context.Background(), CancelComplaintCommand{ComplaintID: 1, CanceledBy: 10})

	require.NoError(t, err)
	assert.Equal(t, "CANCELED", result.Status)
	require.NotNil(t, updatedRequest, "the pending reroute dies with the complaint")
	assert.Equal(t, vo.RerouteStatusRejected, updatedRequest.Status())
}

func TestCancelComplaintUseCase_Execute_ClosedComplaint(t *testing.T) {
	existing := testComplaint(t, 1, vo.StatusClosed, nil)
	mockRepo := &mockComplaintRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*complaint.Complaint, error) {
			return existing, nil
		},
	}

	uc := NewCancelComplaintUseCase(mockRepo, &mockRerouteRepository{}, &mockEventDispatcher{}, &mockLogger{})
	result, err := uc.Execute(context.Background(), CancelComplaintCommand{ComplaintID: 1, CanceledBy: 10})

	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, apperrors.IsInvalidStateError(err))
}
