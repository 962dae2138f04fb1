package incident

import "context"

// Repository persists incident clusters.
type Repository interface {
	Save(ctx context.Context, i *Incident) error
	Update(ctx context.Context, i *Incident) error
	GetByID(ctx context.Context, id uint) (*Incident, error)
	List(ctx context.Context, filter Filter) ([]*Incident, int64, error)
	// ListMajor returns incidents whose member count reaches the threshold,
	// largest first.
	ListMajor(ctx context.Context, minComplaints int) ([]*Incident, error)
}

// Filter narrows incident listings.
type Filter struct {
	Status   *string
	Page     int
	PageSize int
}
