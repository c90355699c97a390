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

// BenefitRequestRepo provides database operations for benefit enrollment requests.
type BenefitRequestRepo struct {
	DB           *sql.DB
	timeProvider TimeProvider
}

// NewBenefitRequestRepo creates a new BenefitRequestRepo with real time provider.
func NewBenefitRequestRepo(db *sql.DB) *BenefitRequestRepo {
	return &BenefitRequestRepo{DB: db, timeProvider: &RealTimeProvider{}}
}

// NewBenefitRequestRepoWithTimeProvider creates a BenefitRequestRepo with a custom time provider.
func NewBenefitRequestRepoWithTimeProvider(db *sql.DB, tp TimeProvider) *BenefitRequestRepo {
	return &BenefitRequestRepo{DB: db, timeProvider: tp}
}

// benefitRequestSelect joins the benefit and user rows so lists carry the
// display names; LEFT JOINs keep requests visible when a reference is gone.
const benefitRequestSelect = `
	SELECT br.id, br.benefit_id, br.user_id, br.status, br.note,
	       b.name AS benefit_name,
	       CASE WHEN u.id IS NULL THEN NULL ELSE u.first_name || ' ' || u.last_name END AS employee_name,
	       br.created_at, br.updated_at
	FROM benefit_requests br
	LEFT JOIN benefits b ON b.id = br.benefit_id
	LEFT JOIN users u ON u.id = br.user_id`

// Create files a new enrollment request in pending status.
func (r *BenefitRequestRepo) Create(
	ctx context.Context,
	req model.CreateBenefitRequestRequest,
) (*model.BenefitRequest, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	createdAt := r.timeProvider.Now().UTC()
	var out model.BenefitRequest
	// Insert and re-read through the join in one transaction so the
	// projections reflect the same snapshot.
	err := pgxutil.WithPgxTx(ctx, r.DB, pgxutil.TxConfig{Fn: func(tx pgx.Tx) error {
		var id string
		if scanErr := tx.QueryRow(ctx, `
			INSERT INTO benefit_requests (benefit_id, user_id, status, note, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $5)
			RETURNING id`,
			req.BenefitID,
			req.UserID,
			model.RequestStatusPending,
			req.Note,
			createdAt,
		).Scan(&id); scanErr != nil {
			return scanErr
		}

		rows, qerr := tx.Query(ctx, benefitRequestSelect+` WHERE br.id = $1`, id)
		if qerr != nil {
			return qerr
		}
		defer rows.Close()
		var e error
		out, e = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.BenefitRequest])
		return e
	}})
	if err != nil {
		return nil, mapWriteErr(writeErrParams{err: err, notFound: ErrBenefitRequestNotFound})
	}
	return &out, nil
}

// GetByID retrieves an enrollment request by ID.
func (r *BenefitRequestRepo) GetByID(ctx context.Context, id string) (*model.BenefitRequest, error) {
	var out model.BenefitRequest
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, benefitRequestSelect+` WHERE br.id = $1`, id)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.BenefitRequest])
		return err
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrBenefitRequestNotFound
		}
		return nil, fmt.Errorf("failed to get benefit request by ID: %w", err)
	}
	return &out, nil
}

// List retrieves all enrollment requests, newest first.
func (r *BenefitRequestRepo) List(ctx context.Context) ([]model.BenefitRequest, error) {
	var out []model.BenefitRequest
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, benefitRequestSelect+` ORDER BY br.created_at DESC`)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectRows(rows, pgx.RowToStructByName[model.BenefitRequest])
		return err
	}); err != nil {
		return nil, fmt.Errorf("failed to list benefit requests: %w", err)
	}
	return out, nil
}

// Update reviews an enrollment request (status and/or note).
func (r *BenefitRequestRepo) Update(
	ctx context.Context,
	id string,
	req model.UpdateBenefitRequestRequest,
) (*model.BenefitRequest, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	setParts := make([]string, 0, 3)
	args := make([]any, 0, 4)
	nextIdx := func() int { return len(args) + 1 }

	if req.Status != nil {
		setParts = append(setParts, fmt.Sprintf("status = $%d", nextIdx()))
		args = append(args, *req.Status)
	}
	if req.Note != nil {
		setParts = append(setParts, fmt.Sprintf("note = $%d", nextIdx()))
		args = append(args, *req.Note)
	}
	setParts = append(setParts, fmt.Sprintf("updated_at = $%d", nextIdx()))
	args = append(args, r.timeProvider.Now().UTC())

	var out model.BenefitRequest
	err := pgxutil.WithPgxTx(ctx, r.DB, pgxutil.TxConfig{Fn: func(tx pgx.Tx) error {
		args = append(args, id)
		ct, execErr := tx.Exec(ctx,
			"UPDATE benefit_requests SET "+strings.Join(setParts, ", ")+
				" WHERE id = $"+strconv.Itoa(len(args)),
			args...,
		)
		if execErr != nil {
			return execErr
		}
		if ct.RowsAffected() == 0 {
			return pgx.ErrNoRows
		}

		rows, qerr := tx.Query(ctx, benefitRequestSelect+` WHERE br.id = $1`, id)
		if qerr != nil {
			return qerr
		}
		defer rows.Close()
		var e error
		out, e = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.BenefitRequest])
		return e
	}})
	if err != nil {
		return nil, mapWriteErr(writeErrParams{err: err, notFound: ErrBenefitRequestNotFound, mapNoRows: true})
	}
	return &out, nil
}

// Delete deletes an enrollment request by ID. Returns whether a row was removed.
func (r *BenefitRequestRepo) Delete(ctx context.Context, id string) (bool, error) {
	var rows int64
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		ct, err := conn.Exec(ctx, `DELETE FROM benefit_requests WHERE id = $1`, id)
		if err != nil {
			return err
		}
		rows = ct.RowsAffected()
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("failed to delete benefit request: %w", err)
	}
	return rows > 0, nil
}
