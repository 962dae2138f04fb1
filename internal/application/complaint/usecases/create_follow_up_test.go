package usecases

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"civicroute/internal/domain/complaint"
	vo "civicroute/internal/domain/complaint/valueobjects"
	apperrors "civicroute/internal/shared/errors"
)

func TestCreateFollowUpUseCase_Execute_Success(t *testing.T) {
	parent := testComplaint(t, 1, vo.StatusResolved, uintPtr(7))

	var savedFollowUp *complaint.FollowUp
	var updatedParent *complaint.Complaint
	mockRepo := &mockComplaintRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*complaint.Complaint, error) {
			return parent, nil
		},
		UpdateFunc: func(ctx context.Context, c *complaint.Complaint) error {
			updatedParent = c
			return nil
		},
	}
	mockFURepo := &mockFollowUpRepository{
		SaveFunc: func(ctx context.Context, f *complaint.FollowUp) error {
			if err := f.SetID(5); err != nil {
				return err
			}
			savedFollowUp = f
			return nil
		},
	}

	uc := NewCreateFollowUpUseCase(mockRepo, mockFURepo, &mockTransactor{}, &mockEventDispatcher{}, &mockLogger{})
	result, err := uc.Execute(context.Background(), CreateFollowUpCommand{
		ParentID: 1,
		Title:    "Still broken",
		Body:     "It went out again",
	})

	require.NoError(t, err)
	assert.Equal(t, uint(5), result.FollowUpID)
	assert.Equal(t, "IN_PROGRESS", result.ParentStatus)
	assert.Equal(t, "RECEIVED", result.Status)

	require.NotNil(t, savedFollowUp)
	assert.Equal(t, uint(1), savedFollowUp.ParentID())
	require.NotNil(t, updatedParent)
	assert.Equal(t, vo.StatusInProgress, updatedParent.Status())
}

func TestCreateFollowUpUseCase_Execute_GateRejectsUnanswered(t *testing.T) {
	for _, status := range []vo.ComplaintStatus{
		vo.StatusReceived, vo.StatusInProgress, vo.StatusRecommended,
	} {
		t.Run(status.String(), func(t *testing.T) {
			parent := testComplaint(t, 1, status, nil)
			mockRepo := &mockComplaintRepository{
				GetByIDFunc: func(ctx context.Context, id uint) (*complaint.Complaint, error) {
					return parent, nil
				},
			}
			mockFURepo := &mockFollowUpRepository{
				SaveFunc: func(ctx context.Context, f *complaint.FollowUp) error {
					t.Fatal("no follow-up may be created while the previous inquiry is open")
					return nil
				},
			}

			uc := NewCreateFollowUpUseCase(mockRepo, mockFURepo, &mockTransactor{}, &mockEventDispatcher{}, &mockLogger{})
			result, err := uc.Execute(context.Background(), CreateFollowUpCommand{
				ParentID: 1, Title: "T", Body: "B",
			})

			require.Error(t, err)
			assert.Nil(t, result)
			assert.True(t, apperrors.IsPendingAnswerError(err))

			appErr := apperrors.GetAppError(err)
			require.NotNil(t, appErr)
			assert.Equal(t, 422, appErr.Code)
		})
	}
}

func TestCreateFollowUpUseCase_Execute_AllowsClosedParent(t *testing.T) {
	parent := testComplaint(t, 1, vo.StatusClosed, nil)
	mockRepo := &mockComplaintRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*complaint.Complaint, error) {
			return parent, nil
		},
	}
	mockFURepo := &mockFollowUpRepository{
		SaveFunc: func(ctx context.Context, f *complaint.FollowUp) error {
			return f.SetID(6)
		},
	}

	uc := NewCreateFollowUpUseCase(mockRepo, mockFURepo, &mockTransactor{}, &mockEventDispatcher{}, &mockLogger{})
	result, err := uc.Execute(context.Background(), CreateFollowUpCommand{
		ParentID: 1, Title: "T", Body: "B",
	})

	require.NoError(t, err)
	assert.Equal(t, "IN_PROGRESS", result.ParentStatus)
}

func TestCreateFollowUpUseCase_Execute_TransactionFailure(t *testing.T) {
	parent := testComplaint(t, 1, vo.StatusResolved, nil)
	mockRepo := &mockComplaintRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*complaint.Complaint, error) {
			return parent, nil
		},
	}
	mockFURepo := &mockFollowUpRepository{
		SaveFunc: func(ctx context.Context, f *complaint.FollowUp) error {
			return errors.New("db down")
		},
	}

	uc := NewCreateFollowUpUseCase(mockRepo, mockFURepo, &mockTransactor{}, &mockEventDispatcher{}, &mockLogger{})
	result, err := uc.Execute(context.Background(), CreateFollowUpCommand{
		ParentID: 1, Title: "T", Body: "B",
	})

	require.Error(t, err)
	assert.Nil(t, result)
}
