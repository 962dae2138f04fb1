package usecases

import (
	"context"

	"civicroute/internal/domain/complaint"
	"civicroute/internal/domain/department"
	"civicroute/internal/domain/shared/events"
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

type mockFollowUpRepository struct {
	SaveFunc                 func(ctx context.Context, f *complaint.FollowUp) error
	UpdateFunc               func(ctx context.Context, f *complaint.FollowUp) error
	GetByIDFunc              func(ctx context.Context, id uint) (*complaint.FollowUp, error)
	FindNewestByParentIDFunc func(ctx context.Context, parentID uint) (*complaint.FollowUp, error)
	ListByParentIDFunc       func(ctx context.Context, parentID uint) ([]*complaint.FollowUp, error)
}

func (m *mockFollowUpRepository) Save(ctx context.Context, f *complaint.FollowUp) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, f)
	}
	return nil
}

func (m *mockFollowUpRepository) Update(ctx context.Context, f *complaint.FollowUp) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, f)
	}
	return nil
}

func (m *mockFollowUpRepository) GetByID(ctx context.Context, id uint) (*complaint.FollowUp, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockFollowUpRepository) FindNewestByParentID(ctx context.Context, parentID uint) (*complaint.FollowUp, error) {
	if m.FindNewestByParentIDFunc != nil {
		return m.FindNewestByParentIDFunc(ctx, parentID)
	}
	return nil, nil
}

func (m *mockFollowUpRepository) ListByParentID(ctx context.Context, parentID uint) ([]*complaint.FollowUp, error) {
	if m.ListByParentIDFunc != nil {
		return m.ListByParentIDFunc(ctx, parentID)
	}
	return nil, nil
}

type mockRerouteRepository struct {
	SaveFunc                    func(ctx context.Context, r *complaint.RerouteRequest) error
	UpdateFunc                  func(ctx context.Context, r *complaint.RerouteRequest) error
	GetByIDFunc                 func(ctx context.Context, id uint) (*complaint.RerouteRequest, error)
	GetPendingByComplaintIDFunc func(ctx context.Context, complaintID uint) (*complaint.RerouteRequest, error)
	ListByComplaintIDFunc       func(ctx context.Context, complaintID uint) ([]*complaint.RerouteRequest, error)
}

func (m *mockRerouteRepository) Save(ctx context.Context, r *complaint.RerouteRequest) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, r)
	}
	return nil
}

func (m *mockRerouteRepository) Update(ctx context.Context, r *complaint.RerouteRequest) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, r)
	}
	return nil
}

func (m *mockRerouteRepository) GetByID(ctx context.Context, id uint) (*complaint.RerouteRequest, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockRerouteRepository) GetPendingByComplaintID(ctx context.Context, complaintID uint) (*complaint.RerouteRequest, error) {
	if m.GetPendingByComplaintIDFunc != nil {
		return m.GetPendingByComplaintIDFunc(ctx, complaintID)
	}
	return nil, nil
}

func (m *mockRerouteRepository) ListByComplaintID(ctx context.Context, complaintID uint) ([]*complaint.RerouteRequest, error) {
	if m.ListByComplaintIDFunc != nil {
		return m.ListByComplaintIDFunc(ctx, complaintID)
	}
	return nil, nil
}

type mockNormalizationRepository struct {
	SaveFunc                    func(ctx context.Context, n *complaint.Normalization) error
	GetCurrentByComplaintIDFunc func(ctx context.Context, complaintID uint) (*complaint.Normalization, error)
	MarkSupersededFunc          func(ctx context.Context, complaintID uint) error
}

func (m *mockNormalizationRepository) Save(ctx context.Context, n *complaint.Normalization) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, n)
	}
	return nil
}

func (m *mockNormalizationRepository) GetCurrentByComplaintID(ctx context.Context, complaintID uint) (*complaint.Normalization, error) {
	if m.GetCurrentByComplaintIDFunc != nil {
		return m.GetCurrentByComplaintIDFunc(ctx, complaintID)
	}
	return nil, nil
}

func (m *mockNormalizationRepository) MarkSuperseded(ctx context.Context, complaintID uint) error {
	if m.MarkSupersededFunc != nil {
		return m.MarkSupersededFunc(ctx, complaintID)
	}
	return nil
}

type mockDepartmentRepository struct {
	SaveFunc       func(ctx context.Context, d *department.Department) error
	UpdateFunc     func(ctx context.Context, d *department.Department) error
	GetByIDFunc    func(ctx context.Context, id uint) (*department.Department, error)
	GetByCodeFunc  func(ctx context.Context, code string) (*department.Department, error)
	ListActiveFunc func(ctx context.Context) ([]*department.Department, error)
}

func (m *mockDepartmentRepository) Save(ctx context.Context, d *department.Department) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, d)
	}
	return nil
}

func (m *mockDepartmentRepository) Update(ctx context.Context, d *department.Department) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, d)
	}
	return nil
}

func (m *mockDepartmentRepository) GetByID(ctx context.Context, id uint) (*department.Department, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockDepartmentRepository) GetByCode(ctx context.Context, code string) (*department.Department, error) {
	if m.GetByCodeFunc != nil {
		return m.GetByCodeFunc(ctx, code)
	}
	return nil, nil
}

func (m *mockDepartmentRepository) ListActive(ctx context.Context) ([]*department.Department, error) {
	if m.ListActiveFunc != nil {
		return m.ListActiveFunc(ctx)
	}
	return nil, nil
}

type mockNumberGenerator struct {
	GenerateFunc func(ctx context.Context) (string, error)
}

func (m *mockNumberGenerator) Generate(ctx context.Context) (string, error) {
	if m.GenerateFunc != nil {
		return m.GenerateFunc(ctx)
	}
	return "C-20250101-0001", nil
}

// mockTransactor runs the function inline; the contexts are passed through
// unchanged so repository mocks see the same ctx.
type mockTransactor struct {
	RunInTransactionFunc func(ctx context.Context, fn func(ctx context.Context) error) error
}

func (m *mockTransactor) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if m.RunInTransactionFunc != nil {
		return m.RunInTransactionFunc(ctx, fn)
	}
	return fn(ctx)
}

type mockIncidentLinker struct {
	LinkFunc func(ctx context.Context, complaintID uint, embedding []float64) (*uint, error)
}

func (m *mockIncidentLinker) Link(ctx context.Context, complaintID uint, embedding []float64) (*uint, error) {
	if m.LinkFunc != nil {
		return m.LinkFunc(ctx, complaintID, embedding)
	}
	return nil, nil
}

type mockEventDispatcher struct {
	PublishFunc    func(event events.DomainEvent) error
	PublishAllFunc func(evts []events.DomainEvent) error
}

func (m *mockEventDispatcher) Publish(event events.DomainEvent) error {
	if m.PublishFunc != nil {
		return m.PublishFunc(event)
	}
	return nil
}

func (m *mockEventDispatcher) PublishAll(evts []events.DomainEvent) error {
	if m.PublishAllFunc != nil {
		return m.PublishAllFunc(evts)
	}
	return nil
}

func (m *mockEventDispatcher) Subscribe(eventType string, handler events.EventHandler) error {
	return nil
}

func (m *mockEventDispatcher) Unsubscribe(eventType string, handler events.EventHandler) error {
	return nil
}

func (m *mockEventDispatcher) Start() error { return nil }
func (m *mockEventDispatcher) Stop() error  { return nil }

type mockLogger struct{}

func (m *mockLogger) Debug(msg string, args ...any)                      {}
func (m *mockLogger) Info(msg string, args ...any)                       {}
func (m *mockLogger) Warn(msg string, args ...any)                       {}
func (m *mockLogger) Error(msg string, args ...any)                      {}
func (m *mockLogger) With(args ...any) logger.Interface                  { return m }
func (m *mockLogger) Named(name string) logger.Interface                 { return m }
func (m *mockLogger) Debugw(msg string, keysAndValues ...interface{})    {}
func (m *mockLogger) Infow(msg string, keysAndValues ...interface{})     {}
func (m *mockLogger) Warnw(msg string, keysAndValues ...interface{})     {}
func (m *mockLogger) Errorw(msg string, keysAndValues ...interface{})    {}
