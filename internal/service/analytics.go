package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/hr3-suite/hr3-admin/internal/core"
	"github.com/hr3-suite/hr3-admin/internal/domain/model"
	"github.com/hr3-suite/hr3-admin/internal/observability/metrics"
	"github.com/hr3-suite/hr3-admin/internal/observability/statsd"
)

const (
	defaultAnalyticsQueueSize = 256
	defaultAnalyticsWorkers   = 2
	analyticsWriteTimeout     = 5 * time.Second
)

// AnalyticsServiceOptions groups dependencies for AnalyticsService.
type AnalyticsServiceOptions struct {
	Visits    core.PageVisitRepository
	QueueSize int          // default 256 when zero
	Logger    *slog.Logger // Optional: structured logger
	Metrics   statsd.Sink  // Optional: beacon and queue metrics
}

// AnalyticsService records page-visit beacons. Recording is fire-and-forget:
// Record validates and enqueues, background workers persist, and a full queue
// drops the beacon rather than stall a navigation response.
type AnalyticsService struct {
	visits core.PageVisitRepository
	logger *slog.Logger
	sink   statsd.Sink

	queue  chan model.RecordPageVisitRequest
	group  *errgroup.Group
	cancel context.CancelFunc
}

// NewAnalyticsService constructs an AnalyticsService and starts its workers.
func NewAnalyticsService(opts AnalyticsServiceOptions) (*AnalyticsService, error) {
	if opts.Visits == nil {
		return nil, errors.New("analytics service: Visits repository is required")
	}
	queueSize := opts.QueueSize
	if queueSize <= 0 {
		queueSize = defaultAnalyticsQueueSize
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	ctx, cancel := context.WithCancel(context.Background())
	s := &AnalyticsService{
		visits: opts.Visits,
		logger: logger.With("component", "analytics"),
		sink:   opts.Metrics,
		queue:  make(chan model.RecordPageVisitRequest, queueSize),
		cancel: cancel,
	}

	g, gctx := errgroup.WithContext(ctx)
	s.group = g
	for i := 0; i < defaultAnalyticsWorkers; i++ {
		g.Go(func() error { return s.worker(gctx) })
	}

	return s, nil
}

// MustNewAnalyticsService constructs an AnalyticsService and panics on invalid options.
func MustNewAnalyticsService(opts AnalyticsServiceOptions) *AnalyticsService {
	s, err := NewAnalyticsService(opts)
	if err != nil {
		panic(err)
	}
	return s
}

// Record validates and enqueues one beacon. It never blocks the caller; the
// beacon is dropped when the queue is full.
func (s *AnalyticsService) Record(ctx context.Context, req model.RecordPageVisitRequest) error {
	if err := req.Validate(); err != nil {
		metrics.EmitBeacon(s.sink, metrics.BeaconRejected)
		return err
	}

	select {
	case s.queue <- req:
		metrics.EmitBeacon(s.sink, metrics.BeaconAccepted)
		metrics.EmitQueueDepth(s.sink, len(s.queue))
		return nil
	default:
		s.logger.WarnContext(ctx, "analytics queue full, dropping beacon", "path", req.Path)
		metrics.EmitBeacon(s.sink, metrics.BeaconDropped)
		return nil
	}
}

// ListRecent returns the most recent beacons, newest first.
func (s *AnalyticsService) ListRecent(ctx context.Context, limit int) ([]model.PageVisit, error) {
	return s.visits.ListRecent(ctx, limit)
}

// Close stops the workers after draining queued beacons.
func (s *AnalyticsService) Close() error {
	close(s.queue)
	err := s.group.Wait()
	s.cancel()
	return err
}

func (s *AnalyticsService) worker(ctx context.Context) error {
	for {
		select {
		case req, ok := <-s.queue:
			if !ok {
				return nil
			}
			s.persist(ctx, req)
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

func (s *AnalyticsService) persist(ctx context.Context, req model.RecordPageVisitRequest) {
	writeCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), analyticsWriteTimeout)
	defer cancel()

	if _, err := s.visits.Record(writeCtx, req); err != nil {
		s.logger.ErrorContext(ctx, "failed to persist page visit", "path", req.Path, "err", err)
	}
}
