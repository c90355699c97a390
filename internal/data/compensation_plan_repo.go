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

// CompensationPlanRepo provides database operations for compensation plans.
type CompensationPlanRepo struct {
	DB           *sql.DB
	timeProvider TimeProvider
}

// NewCompensationPlanRepo creates a new CompensationPlanRepo with real time provider.
func NewCompensationPlanRepo(db *sql.DB) *CompensationPlanRepo {
	return &CompensationPlanRepo{DB: db, timeProvider: &RealTimeProvider{}}
}

// NewCompensationPlanRepoWithTimeProvider creates a CompensationPlanRepo with a custom time provider.
func NewCompensationPlanRepoWithTimeProvider(db *sql.DB, tp TimeProvider) *CompensationPlanRepo {
	return &CompensationPlanRepo{DB: db, timeProvider: tp}
}

const compensationPlanColumns = "id, name, grade, base_salary, allowance, effective_date, created_at, updated_at"

// Create inserts a new compensation plan.
func (r *CompensationPlanRepo) Create(
	ctx context.Context,
	req model.CreateCompensationPlanRequest,
) (*model.CompensationPlan, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	createdAt := r.timeProvider.Now().UTC()
	var out model.CompensationPlan
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			INSERT INTO compensation_plans (name, grade, base_salary, allowance, effective_date, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $6)
			RETURNING `+compensationPlanColumns,
			strings.TrimSpace(req.Name),
			strings.TrimSpace(req.Grade),
			req.BaseSalary,
			req.Allowance,
			req.EffectiveDate,
			createdAt,
		)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.CompensationPlan])
		return err
	}); err != nil {
		return nil, mapWriteErr(writeErrParams{err: err, notFound: ErrCompensationPlanNotFound})
	}
	return &out, nil
}

// GetByID retrieves a compensation plan by ID.
func (r *CompensationPlanRepo) GetByID(ctx context.Context, id string) (*model.CompensationPlan, error) {
	var out model.CompensationPlan
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `SELECT `+compensationPlanColumns+` FROM compensation_plans WHERE id = $1`, id)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.CompensationPlan])
		return err
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrCompensationPlanNotFound
		}
		return nil, fmt.Errorf("failed to get compensation plan by ID: %w", err)
	}
	return &out, nil
}

// List retrieves all compensation plans, newest first.
func (r *CompensationPlanRepo) List(ctx context.Context) ([]model.CompensationPlan, error) {
	var out []model.CompensationPlan
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `SELECT `+compensationPlanColumns+` FROM compensation_plans ORDER BY created_at DESC`)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectRows(rows, pgx.RowToStructByName[model.CompensationPlan])
		return err
	}); err != nil {
		return nil, fmt.Errorf("failed to list compensation plans: %w", err)
	}
	return out, nil
}

// Update updates fields of a compensation plan.
func (r *CompensationPlanRepo) Update(
	ctx context.Context,
	id string,
	req model.UpdateCompensationPlanRequest,
) (*model.CompensationPlan, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	setParts := make([]string, 0, 6)
	args := make([]any, 0, 7)
	nextIdx := func() int { return len(args) + 1 }

	if req.Name != nil {
		setParts = append(setParts, fmt.Sprintf("name = $%d", nextIdx()))
		args = append(args, strings.TrimSpace(*req.Name))
	}
	if req.Grade != nil {
		setParts = append(setParts, fmt.Sprintf("grade = $%d", nextIdx()))
		args = append(args, strings.TrimSpace(*req.Grade))
	}
	if req.BaseSalary != nil {
		setParts = append(setParts, fmt.Sprintf("base_salary = $%d", nextIdx()))
		args = append(args, *req.BaseSalary)
	}
	if req.Allowance != nil {
		setParts = append(setParts, fmt.Sprintf("allowance = $%d", nextIdx()))
		args = append(args, *req.Allowance)
	}
	if req.EffectiveDate != nil {
		setParts = append(setParts, fmt.Sprintf("effective_date = $%d", nextIdx()))
		args = append(args, *req.EffectiveDate)
	}
	setParts = append(setParts, fmt.Sprintf("updated_at = $%d", nextIdx()))
	args = append(args, r.timeProvider.Now().UTC())

	var out model.CompensationPlan
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		args = append(args, id)
		query := "UPDATE compensation_plans SET " + strings.Join(setParts, ", ") +
			" WHERE id = $" + strconv.Itoa(len(args)) +
			" RETURNING " + compensationPlanColumns
		rows, err := conn.Query(ctx, query, args...)
		if err != nil {
			return err
		}
		defer rows.Close()
		var e error
		out, e = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.CompensationPlan])
		return e
	})
	if err != nil {
		return nil, mapWriteErr(writeErrParams{err: err, notFound: ErrCompensationPlanNotFound, mapNoRows: true})
	}
	return &out, nil
}

// Delete deletes a compensation plan by ID. Returns whether a row was removed.
func (r *CompensationPlanRepo) Delete(ctx context.Context, id string) (bool, error) {
	var rows int64
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		ct, err := conn.Exec(ctx, `DELETE FROM compensation_plans WHERE id = $1`, id)
		if err != nil {
			return err
		}
		rows = ct.RowsAffected()
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("failed to delete compensation plan: %w", err)
	}
	return rows > 0, nil
}
