package usecases

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"civicroute/internal/domain/complaint"
	vo "civicroute/internal/domain/complaint/valueobjects"
	apperrors "civicroute/internal/shared/errors"
)

func TestAssignComplaintUseCase_Execute_Success(t *testing.T) {
	existing := testComplaint(t, 1, vo.StatusReceived, nil)

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

	uc := NewAssignComplaintUseCase(mockRepo, &mockEventDispatcher{}, &mockLogger{})
	result, err := uc.Execute(context.Background(), AssignComplaintCommand{ComplaintID: 1, AssigneeID: 7})

	require.NoError(t, err)
	assert.Equal(t, uint(7), result.AssigneeID)
	assert.Equal(t, "IN_PROGRESS", result.Status)
	require.NotNil(t, updated)
	assert.Equal(t, 2, updated.Version())
}

func TestAssignComplaintUseCase_Execute_NotFound(t *testing.T) {
	mockRepo := &mockComplaintRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*complaint.Complaint, error) {
			return nil, apperrors.NewNotFoundError("complaint not found")
		},
	}
	uc := NewAssignComplaintUseCase(mockRepo, &mockEventDispatcher{}, &mockLogger{})

	result, err := uc.Execute(context.Background(), AssignComplaintCommand{ComplaintID: 99, AssigneeID: 7})
	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, apperrors.IsNotFoundError(err))
}

func TestAssignComplaintUseCase_Execute_AlreadyAssigned(t *testing.T) {
	existing := testComplaint(t, 1, vo.StatusInProgress, uintPtr(7))
	mockRepo := &mockComplaintRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*complaint.Complaint, error) {
			return existing, nil
		},
	}
	uc := NewAssignComplaintUseCase(mockRepo, &mockEventDispatcher{}, &mockLogger{})

	result, err := uc.Execute(context.Background(), AssignComplaintCommand{ComplaintID: 1, AssigneeID: 8})
	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, apperrors.IsInvalidStateError(err))
}

func TestAssignComplaintUseCase_Execute_PendingReroute(t *testing.T) {
	existing := testComplaint(t, 1, vo.StatusRecommended, nil)
	mockRepo := &mockComplaintRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*complaint.Complaint, error) {
			return existing, nil
		},
	}
	uc := NewAssignComplaintUseCase(mockRepo, &mockEventDispatcher{}, &mockLogger{})

	result, err := uc.Execute(context.Background(), AssignComplaintCommand{ComplaintID: 1, AssigneeID: 7})
	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, apperrors.IsInvalidStateError(err))
}

// versionedComplaintStore imitates the repository's optimistic locking: an
// update whose base version no longer matches the stored row is rejected.
type versionedComplaintStore struct {
	mu      sync.Mutex
	version int
	build   func(t *testing.T) *complaint.Complaint
	t       *testing.T
}

func (s *versionedComplaintStore) repo() *mockComplaintRepository {
	return &mockComplaintRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*complaint.Complaint, error) {
			s.mu.Lock()
			defer s.mu.Unlock()
			return s.build(s.t), nil
		},
		UpdateFunc: func(ctx context.Context, c *complaint.Complaint) error {
			s.mu.Lock()
			defer s.mu.Unlock()
			// The aggregate bumped its version once; the previous value is
			// what the WHERE clause would compare against.
			if c.Version()-1 != s.version {
				return apperrors.NewConflictError("complaint was modified concurrently")
			}
			s.version = c.Version()
			return nil
		},
	}
}

func TestAssignComplaintUseCase_Execute_ConcurrentAssignment(t *testing.T) {
	store := &versionedComplaintStore{
		version: 1,
		build: func(t *testing.T) *complaint.Complaint {
			return testComplaint(t, 1, vo.StatusReceived, nil)
		},
		t: t,
	}
	uc := NewAssignComplaintUseCase(store.repo(), &mockEventDispatcher{}, &mockLogger{})

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = uc.Execute(context.Background(), AssignComplaintCommand{
				ComplaintID: 1,
				AssigneeID:  uint(7 + i),
			})
		}(i)
	}
	wg.Wait()

	var okCount, invalidCount int
	for _, err := range errs {
		switch {
		case err == nil:
			okCount++
		case apperrors.IsInvalidStateError(err):
			invalidCount++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	assert.Equal(t, 1, okCount, "exactly one caseworker wins the assignment")
	assert.Equal(t, 1, invalidCount, "the loser learns the complaint is already assigned")
}

func TestReleaseComplaintUseCase_Execute_Success(t *testing.T) {
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

	uc := NewReleaseComplaintUseCase(mockRepo, &mockEventDispatcher{}, &mockLogger{})
	result, err := uc.Execute(context.Background(), ReleaseComplaintCommand{ComplaintID: 1, CallerID: 7})

	require.NoError(t, err)
	assert.Equal(t, "RECEIVED", result.Status)
	require.NotNil(t, updated)
	assert.Nil(t, updated.AssigneeID())
}

func TestReleaseComplaintUseCase_Execute_NotAssignee(t *testing.T) {
	existing := testComplaint(t, 1, vo.StatusInProgress, uintPtr(7))
	mockRepo := &mockComplaintRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*complaint.Complaint, error) {
			return existing, nil
		},
	}

	uc := NewReleaseComplaintUseCase(mockRepo, &mockEventDispatcher{}, &mockLogger{})
	result, err := uc.Execute(context.Background(), ReleaseComplaintCommand{ComplaintID: 1, CallerID: 8})

	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, apperrors.IsForbiddenError(err))
}
