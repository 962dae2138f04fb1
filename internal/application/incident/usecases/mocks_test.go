package usecases

import (
	"context"

	"civicroute/internal/domain/complaint"
	"civicroute/internal/domain/incident"
	"civicroute/internal/shared/logger"
)

type mockComplaintRepository struct {
	SaveFunc             func(ctx context.Context, c *complaint.Complaint) error
	UpdateFunc           func(ctx context.Context, c *complaint.Complaint) error
	GetByIDFunc          func(ctx context.Context, id uint) (*complaint.Complaint, error)
	GetByNumberFunc      func(ctx context.Context, number string) (*complaint.Complaint, error)
	ListFunc             func(ctx context.Context, filter complaint.Filter) ([]*complaint.Complaint, int64, error)
	ListByIncidentIDFunc func(ctx context.Context, incidentID uint) ([]*complaint.Complaint, error)
}

func (m *mockComplaintRepository) Save(ctx context.Context, c *complaint.Complaint) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, c)
	}
	return nil
}

func (m *mockComplaintRepository) Update(ctx context.Context, c *complaint.Complaint) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, c)
	}
	return nil
}

func (m *mockComplaintRepository) GetByID(ctx context.Context, id uint) (*complaint.Complaint, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockComplaintRepository) GetByNumber(ctx context.Context, number string) (*complaint.Complaint, error) {
	if m.GetByNumberFunc != nil {
		return m.GetByNumberFunc(ctx, number)
	}
	return nil, nil
}

func (m *mockComplaintRepository) List(ctx context.Context, filter complaint.Filter) ([]*complaint.Complaint, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, 0, nil
}

func (m *mockComplaintRepository) ListByIncidentID(ctx context.Context, incidentID uint) ([]*complaint.Complaint, error) {
	if m.ListByIncidentIDFunc != nil {
		return m.ListByIncidentIDFunc(ctx, incidentID)
	}
	return nil, nil
}

type mockIncidentRepository struct {
	SaveFunc      func(ctx context.Context, i *incident.Incident) error
	UpdateFunc    func(ctx context.Context, i *incident.Incident) error
	GetByIDFunc   func(ctx context.Context, id uint) (*incident.Incident, error)
	ListFunc      func(ctx context.Context, filter incident.Filter) ([]*incident.Incident, int64, error)
	ListMajorFunc func(ctx context.Context, minComplaints int) ([]*incident.Incident, error)
}

func (m *mockIncidentRepository) Save(ctx context.Context, i *incident.Incident) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, i)
	}
	return nil
}

func (m *mockIncidentRepository) Update(ctx context.Context, i *incident.Incident) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, i)
	}
	return nil
}

func (m *mockIncidentRepository) GetByID(ctx context.Context, id uint) (*incident.Incident, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockIncidentRepository) List(ctx context.Context, filter incident.Filter) ([]*incident.Incident, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, 0, nil
}

func (m *mockIncidentRepository) ListMajor(ctx context.Context, minComplaints int) ([]*incident.Incident, error) {
	if m.ListMajorFunc != nil {
		return m.ListMajorFunc(ctx, minComplaints)
	}
	return nil, nil
}

type mockSimilarityOracle struct {
	FindSimilarFunc func(ctx context.Context, embedding []float64, k int) ([]incident.Match, error)
}

func (m *mockSimilarityOracle) FindSimilar(ctx context.Context, embedding []float64, k int) ([]incident.Match, error) {
	if m.FindSimilarFunc != nil {
		return m.FindSimilarFunc(ctx, embedding, k)
	}
	return nil, nil
}

type mockTransactor struct {
	RunInTransactionFunc func(ctx context.Context, fn func(ctx context.Context) error) error
}

func (m *mockTransactor) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if m.RunInTransactionFunc != nil {
		return m.RunInTransactionFunc(ctx, fn)
	}
	return fn(ctx)
}

type mockLogger struct{}

func (m *mockLogger) Debug(msg string, args ...any)                   {}
func (m *mockLogger) Info(msg string, args ...any)                    {}
func (m *mockLogger) Warn(msg string, args ...any)                    {}
func (m *mockLogger) Error(msg string, args ...any)                   {}
func (m *mockLogger) With(args ...any) logger.Interface               { return m }
func (m *mockLogger) Named(name string) logger.Interface              { return m }
func (m *mockLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Errorw(msg string, keysAndValues ...interface{}) {}
