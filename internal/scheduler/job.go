package scheduler

import "context"

//go:generate mockgen -source=job.go -destination=mocks/job.go -package=mocks

// Job é uma rotina agendada que também pode ser disparada manualmente
type Job interface {
	Start(ctx context.Context) error
	TriggerManualSync()
	GetStatus() map[string]any
}
