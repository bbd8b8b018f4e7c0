package jobs

import (
	"context"
	"time"

	"go.uber.org/zap"
)

const JobSessionSweep = "session_sweep"

type Service struct {
	log   *zap.Logger
	queue chan job
}

type job struct {
	Type string
	Run  func(context.Context) (any, error)
}

func New(log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{
		log:   log,
		queue: make(chan job, 128),
	}
}

// Start runs the worker until ctx is cancelled.
func (s *Service) Start(ctx context.Context) {
	go s.worker(ctx)
}

func (s *Service) Enqueue(jobType string, run func(context.Context) (any, error)) bool {
	select {
	case s.queue <- job{Type: jobType, Run: run}:
		return true
	default:
		s.log.Warn("job queue full", zap.String("jobType", jobType))
		return false
	}
}

func (s *Service) RunNow(ctx context.Context, jobType string, run func(context.Context) (any, error)) (any, error) {
	return s.runJob(ctx, job{Type: jobType, Run: run})
}

// Every enqueues run on each tick of interval until ctx is cancelled.
func (s *Service) Every(ctx context.Context, jobType string, interval time.Duration, run func(context.Context) (any, error)) {
	if interval <= 0 {
		return
	}
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				s.Enqueue(jobType, run)
			}
		}
	}()
}

func (s *Service) worker(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case j := <-s.queue:
			if _, err := s.runJob(ctx, j); err != nil {
				s.log.Warn("job run failed", zap.String("jobType", j.Type), zap.Error(err))
			}
		}
	}
}

func (s *Service) runJob(ctx context.Context, j job) (any, error) {
	start := time.Now()
	details, err := j.Run(ctx)
	status := "completed"
	if err != nil {
		status = "failed"
	}
	s.log.Debug("job run",
		zap.String("jobType", j.Type),
		zap.String("status", status),
		zap.Any("details", details),
		zap.Duration("took", time.Since(start)),
	)
	return details, err
}
