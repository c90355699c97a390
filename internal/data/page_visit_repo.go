package data

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/hr3-suite/hr3-admin/internal/data/pgxutil"
	"github.com/hr3-suite/hr3-admin/internal/domain/model"
)

// PageVisitRepo stores behavioural-analytics beacons. Writes are append-only;
// there is no update or delete path for visit records.
type PageVisitRepo struct {
	DB           *sql.DB
	timeProvider TimeProvider
}

// NewPageVisitRepo creates a new PageVisitRepo with real time provider.
func NewPageVisitRepo(db *sql.DB) *PageVisitRepo {
	return &PageVisitRepo{DB: db, timeProvider: &RealTimeProvider{}}
}

// NewPageVisitRepoWithTimeProvider creates a PageVisitRepo with a custom time provider.
func NewPageVisitRepoWithTimeProvider(db *sql.DB, tp TimeProvider) *PageVisitRepo {
	return &PageVisitRepo{DB: db, timeProvider: tp}
}

const pageVisitColumns = "id, user_id, path, duration_ms, visited_at"

// Record appends one visit beacon.
func (r *PageVisitRepo) Record(ctx context.Context, req model.RecordPageVisitRequest) (*model.PageVisit, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	visitedAt := r.timeProvider.Now().UTC()
	var out model.PageVisit
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			INSERT INTO page_visits (user_id, path, duration_ms, visited_at)
			VALUES ($1, $2, $3, $4)
			RETURNING `+pageVisitColumns,
			req.UserID,
			req.Path,
			req.DurationMS,
			visitedAt,
		)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.PageVisit])
		return err
	}); err != nil {
		return nil, mapWriteErr(writeErrParams{err: err})
	}
	return &out, nil
}

// ListRecent returns the most recent visit beacons, newest first.
func (r *PageVisitRepo) ListRecent(ctx context.Context, limit int) ([]model.PageVisit, error) {
	if limit <= 0 {
		limit = 100
	}

	var out []model.PageVisit
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx,
			`SELECT `+pageVisitColumns+` FROM page_visits ORDER BY visited_at DESC LIMIT $1`, limit)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectRows(rows, pgx.RowToStructByName[model.PageVisit])
		return err
	}); err != nil {
		return nil, fmt.Errorf("failed to list page visits: %w", err)
	}
	return out, nil
}
