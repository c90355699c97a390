package data

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/hr3-suite/hr3-admin/internal/data/pgxutil"
	"github.com/hr3-suite/hr3-admin/internal/domain/model"
)

// BenefitRepo provides database operations for the benefits catalog.
type BenefitRepo struct {
	DB           *sql.DB
	timeProvider TimeProvider
}

// NewBenefitRepo creates a new BenefitRepo with real time provider.
func NewBenefitRepo(db *sql.DB) *BenefitRepo {
	return &BenefitRepo{DB: db, timeProvider: &RealTimeProvider{}}
}

// NewBenefitRepoWithTimeProvider creates a BenefitRepo with a custom time provider (useful for tests).
func NewBenefitRepoWithTimeProvider(db *sql.DB, tp TimeProvider) *BenefitRepo {
	return &BenefitRepo{DB: db, timeProvider: tp}
}

const benefitColumns = "id, name, description, type, created_at, updated_at"

// Create inserts a new benefit.
func (r *BenefitRepo) Create(ctx context.Context, req model.CreateBenefitRequest) (*model.Benefit, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	createdAt := r.timeProvider.Now().UTC()
	var out model.Benefit
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			INSERT INTO benefits (name, description, type, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $4)
			RETURNING `+benefitColumns,
			strings.TrimSpace(req.Name),
			req.Description,
			req.Type,
			createdAt,
		)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Benefit])
		return err
	}); err != nil {
		return nil, mapWriteErr(writeErrParams{err: err, notFound: ErrBenefitNotFound})
	}
	return &out, nil
}

// GetByID retrieves a benefit by ID.
func (r *BenefitRepo) GetByID(ctx context.Context, id string) (*model.Benefit, error) {
	var out model.Benefit
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `SELECT `+benefitColumns+` FROM benefits WHERE id = $1`, id)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Benefit])
		return err
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrBenefitNotFound
		}
		return nil, fmt.Errorf("failed to get benefit by ID: %w", err)
	}
	return &out, nil
}

// List retrieves the full benefits catalog, newest first.
func (r *BenefitRepo) List(ctx context.Context) ([]model.Benefit, error) {
	var out []model.Benefit
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `SELECT `+benefitColumns+` FROM benefits ORDER BY created_at DESC`)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectRows(rows, pgx.RowToStructByName[model.Benefit])
		return err
	}); err != nil {
		return nil, fmt.Errorf("failed to list benefits: %w", err)
	}
	return out, nil
}

// Update updates fields of a benefit.
func (r *BenefitRepo) Update(ctx context.Context, id string, req model.UpdateBenefitRequest) (*model.Benefit, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	setParts := make([]string, 0, 4)
	args := make([]any, 0, 5)
	nextIdx := func() int { return len(args) + 1 }

	if req.Name != nil {
		setParts = append(setParts, fmt.Sprintf("name = $%d", nextIdx()))
		args = append(args, strings.TrimSpace(*req.Name))
	}
	if req.Description != nil {
		setParts = append(setParts, fmt.Sprintf("description = $%d", nextIdx()))
		args = append(args, *req.Description)
	}
	if req.Type != nil {
		setParts = append(setParts, fmt.Sprintf("type = $%d", nextIdx()))
		args = append(args, *req.Type)
	}
	setParts = append(setParts, fmt.Sprintf("updated_at = $%d", nextIdx()))
	args = append(args, r.timeProvider.Now().UTC())

	var out model.Benefit
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		args = append(args, id)
		query := "UPDATE benefits SET " + strings.Join(setParts, ", ") +
			" WHERE id = $" + strconv.Itoa(len(args)) +
			" RETURNING " + benefitColumns
		rows, err := conn.Query(ctx, query, args...)
		if err != nil {
			return err
		}
		defer rows.Close()
		var e error
		out, e = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Benefit])
		return e
	})
	if err != nil {
		return nil, mapWriteErr(writeErrParams{err: err, notFound: ErrBenefitNotFound, mapNoRows: true})
	}
	return &out, nil
}

// Delete deletes a benefit by ID. Returns whether a row was removed.
func (r *BenefitRepo) Delete(ctx context.Context, id string) (bool, error) {
	var rows int64
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		ct, err := conn.Exec(ctx, `DELETE FROM benefits WHERE id = $1`, id)
		if err != nil {
			return err
		}
		rows = ct.RowsAffected()
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("failed to delete benefit: %w", err)
	}
	return rows > 0, nil
}

// writeErrParams groups parameters for mapWriteErr to keep parameter count <= 3.
type writeErrParams struct {
	err       error
	notFound  error
	conflict  error
	mapNoRows bool
}

// mapWriteErr converts driver errors from writes into shared sentinels.
func mapWriteErr(p writeErrParams) error {
	if p.err == nil {
		return nil
	}
	if p.mapNoRows && errors.Is(p.err, pgx.ErrNoRows) {
		return p.notFound
	}
	var pgErr *pgconn.PgError
	if errors.As(p.err, &pgErr) {
		switch pgErr.Code {
		case pgerrcode.UniqueViolation:
			if p.conflict != nil {
				return p.conflict
			}
		case pgerrcode.ForeignKeyViolation:
			return ErrInvalidReference
		}
	}
	return p.err
}
