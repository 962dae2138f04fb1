package usecases

import "context"

type LinkIncidentExecutor interface {
	Execute(ctx context.Context, cmd LinkIncidentCommand) (*LinkIncidentResult, error)
}

type GetIncidentExecutor interface {
	Execute(ctx context.Context, query GetIncidentQuery) (*IncidentDTO, error)
}

type ListIncidentsExecutor interface {
	Execute(ctx context.Context, query ListIncidentsQuery) (*ListIncidentsResult, error)
}
