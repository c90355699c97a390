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

// IncentiveRepo provides database operations for the incentives catalog.
type IncentiveRepo struct {
	DB           *sql.DB
	timeProvider TimeProvider
}

// NewIncentiveRepo creates a new IncentiveRepo with real time provider.
func NewIncentiveRepo(db *sql.DB) *IncentiveRepo {
	return &IncentiveRepo{DB: db, timeProvider: &RealTimeProvider{}}
}

// NewIncentiveRepoWithTimeProvider creates an IncentiveRepo with a custom time provider.
func NewIncentiveRepoWithTimeProvider(db *sql.DB, tp TimeProvider) *IncentiveRepo {
	return &IncentiveRepo{DB: db, timeProvider: tp}
}

const incentiveColumns = "id, name, description, reward_type, reward_value, created_at, updated_at"

// Create inserts a new incentive. Validation enforces that paying reward
// types carry a value before the insert is attempted.
func (r *IncentiveRepo) Create(ctx context.Context, req model.CreateIncentiveRequest) (*model.Incentive, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	createdAt := r.timeProvider.Now().UTC()
	var out model.Incentive
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			INSERT INTO incentives (name, description, reward_type, reward_value, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $5)
			RETURNING `+incentiveColumns,
			strings.TrimSpace(req.Name),
			req.Description,
			req.RewardType,
			req.RewardValue,
			createdAt,
		)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Incentive])
		return err
	}); err != nil {
		return nil, mapWriteErr(writeErrParams{err: err, notFound: ErrIncentiveNotFound})
	}
	return &out, nil
}

// GetByID retrieves an incentive by ID.
func (r *IncentiveRepo) GetByID(ctx context.Context, id string) (*model.Incentive, error) {
	var out model.Incentive
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `SELECT `+incentiveColumns+` FROM incentives WHERE id = $1`, id)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Incentive])
		return err
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrIncentiveNotFound
		}
		return nil, fmt.Errorf("failed to get incentive by ID: %w", err)
	}
	return &out, nil
}

// List retrieves the full incentives catalog, newest first.
func (r *IncentiveRepo) List(ctx context.Context) ([]model.Incentive, error) {
	var out []model.Incentive
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `SELECT `+incentiveColumns+` FROM incentives ORDER BY created_at DESC`)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectRows(rows, pgx.RowToStructByName[model.Incentive])
		return err
	}); err != nil {
		return nil, fmt.Errorf("failed to list incentives: %w", err)
	}
	return out, nil
}

// Update updates fields of an incentive.
func (r *IncentiveRepo) Update(ctx context.Context, id string, req model.UpdateIncentiveRequest) (*model.Incentive, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	setParts := make([]string, 0, 5)
	args := make([]any, 0, 6)
	nextIdx := func() int { return len(args) + 1 }

	if req.Name != nil {
		setParts = append(setParts, fmt.Sprintf("name = $%d", nextIdx()))
		args = append(args, strings.TrimSpace(*req.Name))
	}
	if req.Description != nil {
		setParts = append(setParts, fmt.Sprintf("description = $%d", nextIdx()))
		args = append(args, *req.Description)
	}
	if req.RewardType != nil {
		setParts = append(setParts, fmt.Sprintf("reward_type = $%d", nextIdx()))
		args = append(args, *req.RewardType)
	}
	if req.RewardValue != nil {
		setParts = append(setParts, fmt.Sprintf("reward_value = $%d", nextIdx()))
		args = append(args, *req.RewardValue)
	}
	setParts = append(setParts, fmt.Sprintf("updated_at = $%d", nextIdx()))
	args = append(args, r.timeProvider.Now().UTC())

	var out model.Incentive
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		args = append(args, id)
		query := "UPDATE incentives SET " + strings.Join(setParts, ", ") +
			" WHERE id = $" + strconv.Itoa(len(args)) +
			" RETURNING " + incentiveColumns
		rows, err := conn.Query(ctx, query, args...)
		if err != nil {
			return err
		}
		defer rows.Close()
		var e error
		out, e = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Incentive])
		return e
	})
	if err != nil {
		return nil, mapWriteErr(writeErrParams{err: err, notFound: ErrIncentiveNotFound, mapNoRows: true})
	}
	return &out, nil
}

// Delete deletes an incentive by ID. Returns whether a row was removed.
func (r *IncentiveRepo) Delete(ctx context.Context, id string) (bool, error) {
	var rows int64
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		ct, err := conn.Exec(ctx, `DELETE FROM incentives WHERE id = $1`, id)
		if err != nil {
			return err
		}
		rows = ct.RowsAffected()
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("failed to delete incentive: %w", err)
	}
	return rows > 0, nil
}
