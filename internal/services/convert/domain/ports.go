package domain

import "context"

// ServicePort drives conversions and reads the run ledger
type ServicePort interface {
	Convert(ctx context.Context, in ConvertInput) (ConvertResult, error)
	Sample(ctx context.Context) (SamplePreview, error)
	RecentRuns(ctx context.Context, limit int) ([]RunRecord, error)
}

// RunStorePort persists the run ledger
type RunStorePort interface {
	InsertRun(ctx context.Context, rec RunRecord) error
	RecentRuns(ctx context.Context, limit int) ([]RunRecord, error)
}
