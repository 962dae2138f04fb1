package department

import "context"

type Repository interface {
	Save(ctx context.Context, dept *Department) error
	Update(ctx context.Context, dept *Department) error
	GetByID(ctx context.Context, id uint) (*Department, error)
	GetByCode(ctx context.Context, code string) (*Department, error)
	ListActive(ctx context.Context) ([]*Department, error)
}
