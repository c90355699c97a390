package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/hr3-suite/hr3-admin/internal/core"
)

// ResourceServiceOptions groups dependencies for ResourceService.
type ResourceServiceOptions[T any, C any, U any] struct {
	Repo   core.CRUDRepository[T, C, U]
	Name   string       // resource name used in log records, e.g. "benefit"
	Logger *slog.Logger // Optional: structured logger
}

// ResourceService is the shared orchestration layer for every management
// resource. All five entities go through the same five operations; the
// repository carries the entity-specific SQL.
type ResourceService[T any, C any, U any] struct {
	repo   core.CRUDRepository[T, C, U]
	name   string
	logger *slog.Logger
}

// NewResourceService constructs a new ResourceService.
func NewResourceService[T any, C any, U any](opts ResourceServiceOptions[T, C, U]) (*ResourceService[T, C, U], error) {
	if opts.Repo == nil {
		return nil, errors.New("resource service: Repo is required")
	}
	if opts.Name == "" {
		return nil, errors.New("resource service: Name is required")
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &ResourceService[T, C, U]{
		repo:   opts.Repo,
		name:   opts.Name,
		logger: logger.With("component", "resource_service", "resource", opts.Name),
	}, nil
}

// MustNewResourceService constructs a ResourceService and panics on invalid options.
func MustNewResourceService[T any, C any, U any](opts ResourceServiceOptions[T, C, U]) *ResourceService[T, C, U] {
	s, err := NewResourceService(opts)
	if err != nil {
		panic(err)
	}
	return s
}

// Create creates a new resource record.
func (s *ResourceService[T, C, U]) Create(ctx context.Context, req C) (*T, error) {
	out, err := s.repo.Create(ctx, req)
	if err != nil {
		return nil, err
	}
	s.logger.InfoContext(ctx, "resource created")
	return out, nil
}

// GetByID retrieves one record by ID.
func (s *ResourceService[T, C, U]) GetByID(ctx context.Context, id string) (*T, error) {
	return s.repo.GetByID(ctx, id)
}

// List returns the complete collection for this resource. Pagination is a
// presentation concern; callers page over the full result.
func (s *ResourceService[T, C, U]) List(ctx context.Context) ([]T, error) {
	return s.repo.List(ctx)
}

// Update updates a record by ID.
func (s *ResourceService[T, C, U]) Update(ctx context.Context, id string, req U) (*T, error) {
	out, err := s.repo.Update(ctx, id, req)
	if err != nil {
		return nil, err
	}
	s.logger.InfoContext(ctx, "resource updated", "id", id)
	return out, nil
}

// Delete removes a record by ID. Returns whether a row was removed.
func (s *ResourceService[T, C, U]) Delete(ctx context.Context, id string) (bool, error) {
	ok, err := s.repo.Delete(ctx, id)
	if err != nil {
		return false, err
	}
	if ok {
		s.logger.InfoContext(ctx, "resource deleted", "id", id)
	}
	return ok, nil
}
