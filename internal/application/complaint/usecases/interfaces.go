package usecases

import (
	"context"

	"civicroute/internal/application/complaint/dto"
)

// Transactor runs a function inside a database transaction, carrying the
// transaction in the context. Implemented by db.TransactionManager.
type Transactor interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// IncidentLinker decides incident attachment for a freshly normalized
// complaint. Returns the linked incident ID, or nil when the complaint stays
// unlinked.
type IncidentLinker interface {
	Link(ctx context.Context, complaintID uint, embedding []float64) (*uint, error)
}

type ReceiveComplaintExecutor interface {
	Execute(ctx context.Context, cmd ReceiveComplaintCommand) (*ReceiveComplaintResult, error)
}

type AssignComplaintExecutor interface {
	Execute(ctx context.Context, cmd AssignComplaintCommand) (*AssignComplaintResult, error)
}

type ReleaseComplaintExecutor interface {
	Execute(ctx context.Context, cmd ReleaseComplaintCommand) (*ReleaseComplaintResult, error)
}

type SaveDraftAnswerExecutor interface {
	Execute(ctx context.Context, cmd SaveDraftAnswerCommand) (*SaveDraftAnswerResult, error)
}

type CompleteAnswerExecutor interface {
	Execute(ctx context.Context, cmd CompleteAnswerCommand) (*CompleteAnswerResult, error)
}

type ArchiveComplaintExecutor interface {
	Execute(ctx context.Context, cmd ArchiveComplaintCommand) (*ArchiveComplaintResult, error)
}

type CancelComplaintExecutor interface {
	Execute(ctx context.Context, cmd CancelComplaintCommand) (*CancelComplaintResult, error)
}

type CreateFollowUpExecutor interface {
	Execute(ctx context.Context, cmd CreateFollowUpCommand) (*CreateFollowUpResult, error)
}

type RequestRerouteExecutor interface {
	Execute(ctx context.Context, cmd RequestRerouteCommand) (*RequestRerouteResult, error)
}

type ApproveRerouteExecutor interface {
	Execute(ctx context.Context, cmd ApproveRerouteCommand) (*ApproveRerouteResult, error)
}

type RejectRerouteExecutor interface {
	Execute(ctx context.Context, cmd RejectRerouteCommand) (*RejectRerouteResult, error)
}

type RecordNormalizationExecutor interface {
	Execute(ctx context.Context, cmd RecordNormalizationCommand) (*RecordNormalizationResult, error)
}

type GetComplaintExecutor interface {
	Execute(ctx context.Context, query GetComplaintQuery) (*dto.ComplaintDTO, error)
}

type ListComplaintsExecutor interface {
	Execute(ctx context.Context, query ListComplaintsQuery) (*ListComplaintsResult, error)
}
