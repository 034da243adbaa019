// Copyright (c) 2026 Payvel. All rights reserved.
// Author: eng@payvel.app

package payable

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/payvel/payvel/internal/platform/dberr"
)

// PostgresRepository implements [Repository] on top of pgxpool.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository creates the PostgreSQL-backed payable repository.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const payableColumns = `id, value, emission_date, assignor_id, created_at, updated_at`

func scanPayable(row interface{ Scan(dest ...any) error }) (*Payable, error) {
	p := &Payable{}
	err := row.Scan(
		&p.ID, &p.Value, &p.EmissionDate, &p.AssignorID, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (repository *PostgresRepository) Create(context context.Context, p *Payable) error {
	query := `
		INSERT INTO payable (id, value, emission_date, assignor_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		RETURNING created_at, updated_at
	`

	err := repository.db.QueryRow(context, query,
		p.ID, p.Value, p.EmissionDate, p.AssignorID,
	).Scan(&p.CreatedAt, &p.UpdatedAt)
	return dberr.Wrap(err, "create_payable")
}

func (repository *PostgresRepository) FindByID(context context.Context, id string) (*Payable, error) {
	query := `SELECT ` + payableColumns + ` FROM payable WHERE id = $1`

	p, err := scanPayable(repository.db.QueryRow(context, query, id))
	if err != nil {
		return nil, dberr.Wrap(err, "find_payable_by_id")
	}
	return p, nil
}

func (repository *PostgresRepository) List(context context.Context, filter Filter, limit, offset int) ([]*Payable, int, error) {
	query := `SELECT ` + payableColumns + ` FROM payable`
	countQuery := `SELECT count(*) FROM payable`

	args := []any{}
	countArgs := []any{}

	if filter.AssignorID != "" {
		query += ` WHERE assignor_id = $1`
		countQuery += ` WHERE assignor_id = $1`
		args = append(args, filter.AssignorID)
		countArgs = append(countArgs, filter.AssignorID)
	}

	var total int
	if err := repository.db.QueryRow(context, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_payables")
	}

	if filter.AssignorID != "" {
		query += ` ORDER BY emission_date DESC LIMIT $2 OFFSET $3`
	} else {
		query += ` ORDER BY emission_date DESC LIMIT $1 OFFSET $2`
	}
	args = append(args, limit, offset)

	rows, err := repository.db.Query(context, query, args...)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_payables")
	}
	defer rows.Close()

	var payables []*Payable
	for rows.Next() {
		p, err := scanPayable(rows)
		if err != nil {
			return nil, 0, dberr.Wrap(err, "scan_payable")
		}
		payables = append(payables, p)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, dberr.Wrap(err, "list_payables")
	}

	return payables, total, nil
}

func (repository *PostgresRepository) Update(context context.Context, p *Payable) error {
	query := `
		UPDATE payable
		SET value = $2, emission_date = $3, assignor_id = $4, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at
	`

	err := repository.db.QueryRow(context, query,
		p.ID, p.Value, p.EmissionDate, p.AssignorID,
	).Scan(&p.UpdatedAt)
	return dberr.Wrap(err, "update_payable")
}

func (repository *PostgresRepository) Delete(context context.Context, id string) error {
	cmd, err := repository.db.Exec(context, `DELETE FROM payable WHERE id = $1`, id)
	if err != nil {
		return dberr.Wrap(err, "delete_payable")
	}

	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}
