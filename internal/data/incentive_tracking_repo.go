package data

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/hr3-suite/hr3-admin/internal/data/pgxutil"
	"github.com/hr3-suite/hr3-admin/internal/domain/model"
)

// IncentiveTrackingRepo provides database operations for incentive progress records.
type IncentiveTrackingRepo struct {
	DB           *sql.DB
	timeProvider TimeProvider
}

// NewIncentiveTrackingRepo creates a new IncentiveTrackingRepo with real time provider.
func NewIncentiveTrackingRepo(db *sql.DB) *IncentiveTrackingRepo {
	return &IncentiveTrackingRepo{DB: db, timeProvider: &RealTimeProvider{}}
}

// NewIncentiveTrackingRepoWithTimeProvider creates an IncentiveTrackingRepo with a custom time provider.
func NewIncentiveTrackingRepoWithTimeProvider(db *sql.DB, tp TimeProvider) *IncentiveTrackingRepo {
	return &IncentiveTrackingRepo{DB: db, timeProvider: tp}
}

const incentiveTrackingSelect = `
	SELECT it.id, it.incentive_id, it.user_id, it.status, it.amount, it.earned_at,
	       i.name AS incentive_name,
	       CASE WHEN u.id IS NULL THEN NULL ELSE u.first_name || ' ' || u.last_name END AS employee_name,
	       it.created_at, it.updated_at
	FROM incentive_tracking it
	LEFT JOIN incentives i ON i.id = it.incentive_id
	LEFT JOIN users u ON u.id = it.user_id`

// Create starts tracking an incentive for an employee in pending status.
func (r *IncentiveTrackingRepo) Create(
	ctx context.Context,
	req model.CreateIncentiveTrackingRequest,
) (*model.IncentiveTracking, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	createdAt := r.timeProvider.Now().UTC()
	var out model.IncentiveTracking
	err := pgxutil.WithPgxTx(ctx, r.DB, pgxutil.TxConfig{Fn: func(tx pgx.Tx) error {
		var id string
		if scanErr := tx.QueryRow(ctx, `
			INSERT INTO incentive_tracking (incentive_id, user_id, status, amount, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $5)
			RETURNING id`,
			req.IncentiveID,
			req.UserID,
			model.TrackingStatusPending,
			req.Amount,
			createdAt,
		).Scan(&id); scanErr != nil {
			return scanErr
		}

		rows, qerr := tx.Query(ctx, incentiveTrackingSelect+` WHERE it.id = $1`, id)
		if qerr != nil {
			return qerr
		}
		defer rows.Close()
		var e error
		out, e = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.IncentiveTracking])
		return e
	}})
	if err != nil {
		return nil, mapWriteErr(writeErrParams{err: err, notFound: ErrIncentiveTrackingNotFound})
	}
	return &out, nil
}

// GetByID retrieves a tracking record by ID.
func (r *IncentiveTrackingRepo) GetByID(ctx context.Context, id string) (*model.IncentiveTracking, error) {
	var out model.IncentiveTracking
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, incentiveTrackingSelect+` WHERE it.id = $1`, id)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.IncentiveTracking])
		return err
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrIncentiveTrackingNotFound
		}
		return nil, fmt.Errorf("failed to get incentive tracking by ID: %w", err)
	}
	return &out, nil
}

// List retrieves all tracking records, newest first.
func (r *IncentiveTrackingRepo) List(ctx context.Context) ([]model.IncentiveTracking, error) {
	var out []model.IncentiveTracking
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, incentiveTrackingSelect+` ORDER BY it.created_at DESC`)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectRows(rows, pgx.RowToStructByName[model.IncentiveTracking])
		return err
	}); err != nil {
		return nil, fmt.Errorf("failed to list incentive tracking: %w", err)
	}
	return out, nil
}

// Update advances a tracking record (status, amount, earned timestamp).
func (r *IncentiveTrackingRepo) Update(
	ctx context.Context,
	id string,
	req model.UpdateIncentiveTrackingRequest,
) (*model.IncentiveTracking, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	setParts := make([]string, 0, 4)
	args := make([]any, 0, 5)
	nextIdx := func() int { return len(args) + 1 }

	if req.Status != nil {
		setParts = append(setParts, fmt.Sprintf("status = $%d", nextIdx()))
		args = append(args, *req.Status)
	}
	if req.Amount != nil {
		setParts = append(setParts, fmt.Sprintf("amount = $%d", nextIdx()))
		args = append(args, *req.Amount)
	}
	if req.EarnedAt != nil {
		setParts = append(setParts, fmt.Sprintf("earned_at = $%d", nextIdx()))
		args = append(args, *req.EarnedAt)
	}
	setParts = append(setParts, fmt.Sprintf("updated_at = $%d", nextIdx()))
	args = append(args, r.timeProvider.Now().UTC())

	var out model.IncentiveTracking
	err := pgxutil.WithPgxTx(ctx, r.DB, pgxutil.TxConfig{Fn: func(tx pgx.Tx) error {
		args = append(args, id)
		ct, execErr := tx.Exec(ctx,
			"UPDATE incentive_tracking SET "+strings.Join(setParts, ", ")+
				" WHERE id = $"+strconv.Itoa(len(args)),
			args...,
		)
		if execErr != nil {
			return execErr
		}
		if ct.RowsAffected() == 0 {
			return pgx.ErrNoRows
		}

		rows, qerr := tx.Query(ctx, incentiveTrackingSelect+` WHERE it.id = $1`, id)
		if qerr != nil {
			return qerr
		}
		defer rows.Close()
		var e error
		out, e = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.IncentiveTracking])
		return e
	}})
	if err != nil {
		return nil, mapWriteErr(writeErrParams{err: err, notFound: ErrIncentiveTrackingNotFound, mapNoRows: true})
	}
	return &out, nil
}

// Delete deletes a tracking record by ID. Returns whether a row was removed.
func (r *IncentiveTrackingRepo) Delete(ctx context.Context, id string) (bool, error) {
	var rows int64
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		ct, err := conn.Exec(ctx, `DELETE FROM incentive_tracking WHERE id = $1`, id)
		if err != nil {
			return err
		}
		rows = ct.RowsAffected()
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("failed to delete incentive tracking: %w", err)
	}
	return rows > 0, nil
}
