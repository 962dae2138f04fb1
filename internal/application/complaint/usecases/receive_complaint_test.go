package usecases

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"civicroute/internal/domain/complaint"
	apperrors "civicroute/internal/shared/errors"
)

func TestReceiveComplaintUseCase_Execute_Success(t *testing.T) {
	var saved *complaint.Complaint
	mockRepo := &mockComplaintRepository{
		SaveFunc: func(ctx context.Context, c *complaint.Complaint) error {
			if err := c.SetID(42); err != nil {
				return err
			}
			saved = c
			return nil
		},
	}
	gen := &mockNumberGenerator{
		GenerateFunc: func(ctx context.Context) (string, error) {
			return "C-20250901-0007", nil
		},
	}

	uc := NewReceiveComplaintUseCase(mockRepo, gen, &mockEventDispatcher{}, &mockLogger{})
	lat, lon := 52.37, 4.89
	result, err := uc.Execute(context.Background(), ReceiveComplaintCommand{
		ApplicantID: 10,
		Title:       "Streetlight broken",
		Body:        "The light on Main St is out",
		AddressText: "Main St 1",
		Lat:         &lat,
		Lon:         &lon,
	})

	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, uint(42), result.ComplaintID)
	assert.Equal(t, "C-20250901-0007", result.Number)
	assert.Equal(t, "RECEIVED", result.Status)

	require.NotNil(t, saved)
	assert.Equal(t, uint(10), saved.ApplicantID())
	assert.True(t, saved.Location().HasCoordinates())
}

func TestReceiveComplaintUseCase_Execute_InvalidCommand(t *testing.T) {
	uc := NewReceiveComplaintUseCase(&mockComplaintRepository{}, &mockNumberGenerator{}, &mockEventDispatcher{}, &mockLogger{})

	tests := []struct {
		name string
		cmd  ReceiveComplaintCommand
	}{
		{name: "zero applicant", cmd: ReceiveComplaintCommand{Title: "T", Body: "B"}},
		{name: "empty title", cmd: ReceiveComplaintCommand{ApplicantID: 1, Body: "B"}},
		{name: "empty body", cmd: ReceiveComplaintCommand{ApplicantID: 1, Title: "T"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result, err := uc.Execute(context.Background(), tc.cmd)
			require.Error(t, err)
			assert.Nil(t, result)
			assert.True(t, apperrors.IsValidationError(err))
		})
	}
}

func TestReceiveComplaintUseCase_Execute_UnpairedCoordinates(t *testing.T) {
	uc := NewReceiveComplaintUseCase(&mockComplaintRepository{}, &mockNumberGenerator{}, &mockEventDispatcher{}, &mockLogger{})

	lat := 52.37
	result, err := uc.Execute(context.Background(), ReceiveComplaintCommand{
		ApplicantID: 10,
		Title:       "T",
		Body:        "B",
		Lat:         &lat,
	})
	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, apperrors.IsValidationError(err))
}

func TestReceiveComplaintUseCase_Execute_NumberGeneratorFails(t *testing.T) {
	gen := &mockNumberGenerator{
		GenerateFunc: func(ctx context.Context) (string, error) {
			return "", errors.New("sequence unavailable")
		},
	}
	uc := NewReceiveComplaintUseCase(&mockComplaintRepository{}, gen, &mockEventDispatcher{}, &mockLogger{})

	result, err := uc.Execute(context.Background(), ReceiveComplaintCommand{
		ApplicantID: 10, Title: "T", Body: "B",
	})
	require.Error(t, err)
	assert.Nil(t, result)
}

func TestReceiveComplaintUseCase_Execute_SaveFails(t *testing.T) {
	mockRepo := &mockComplaintRepository{
		SaveFunc: func(ctx context.Context, c *complaint.Complaint) error {
			return errors.New("db down")
		},
	}
	uc := NewReceiveComplaintUseCase(mockRepo, &mockNumberGenerator{}, &mockEventDispatcher{}, &mockLogger{})

	result, err := uc.Execute(context.Background(), ReceiveComplaintCommand{
		ApplicantID: 10, Title: "T", Body: "B",
	})
	require.Error(t, err)
	assert.Nil(t, result)
}
