package ports

import "time"

// Metrics records calculator activity.
//
//go:generate mockgen -source=metrics.go -destination=mocks/mock_metrics.go -package=mocks
type Metrics interface {
	// CacheHit counts an evaluation answered from the cache.
	CacheHit()
	// CacheMiss counts an evaluation that ran the pipeline.
	CacheMiss()
	// ObserveRecompute records how long a pipeline run took.
	ObserveRecompute(d time.Duration)
	// RecordError counts a failed evaluation by error kind.
	RecordError(kind string)
}
