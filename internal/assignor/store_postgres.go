// Copyright (c) 2026 Payvel. All rights reserved.
// Author: eng@payvel.app

package assignor

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/payvel/payvel/internal/platform/dberr"
)

// PostgresRepository implements [Repository] on top of pgxpool.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository creates the PostgreSQL-backed assignor repository.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const assignorColumns = `id, document, email, name, phone, login, password, created_at, updated_at`

func scanAssignor(row interface{ Scan(dest ...any) error }) (*Assignor, error) {
	a := &Assignor{}
	err := row.Scan(
		&a.ID, &a.Document, &a.Email, &a.Name, &a.Phone,
		&a.Login, &a.Password, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return a, nil
}

func (repository *PostgresRepository) Create(context context.Context, a *Assignor) error {
	query := `
		INSERT INTO assignor (id, document, email, name, phone, login, password, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
		RETURNING created_at, updated_at
	`

	err := repository.db.QueryRow(context, query,
		a.ID, a.Document, a.Email, a.Name, a.Phone, a.Login, a.Password,
	).Scan(&a.CreatedAt, &a.UpdatedAt)
	return dberr.Wrap(err, "create_assignor")
}

func (repository *PostgresRepository) FindByID(context context.Context, id string) (*Assignor, error) {
	query := `SELECT ` + assignorColumns + ` FROM assignor WHERE id = $1`

	a, err := scanAssignor(repository.db.QueryRow(context, query, id))
	if err != nil {
		return nil, dberr.Wrap(err, "find_assignor_by_id")
	}
	return a, nil
}

func (repository *PostgresRepository) FindByLogin(context context.Context, login string) (*Assignor, error) {
	query := `SELECT ` + assignorColumns + ` FROM assignor WHERE login = $1`

	a, err := scanAssignor(repository.db.QueryRow(context, query, login))
	if err != nil {
		return nil, dberr.Wrap(err, "find_assignor_by_login")
	}
	return a, nil
}

func (repository *PostgresRepository) List(context context.Context, limit, offset int) ([]*Assignor, int, error) {
	var total int
	if err := repository.db.QueryRow(context, `SELECT count(*) FROM assignor`).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_assignors")
	}

	query := `SELECT ` + assignorColumns + ` FROM assignor ORDER BY created_at DESC LIMIT $1 OFFSET $2`

	rows, err := repository.db.Query(context, query, limit, offset)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_assignors")
	}
	defer rows.Close()

	var assignors []*Assignor
	for rows.Next() {
		a, err := scanAssignor(rows)
		if err != nil {
			return nil, 0, dberr.Wrap(err, "scan_assignor")
		}
		assignors = append(assignors, a)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, dberr.Wrap(err, "list_assignors")
	}

	return assignors, total, nil
}

func (repository *PostgresRepository) Update(context context.Context, a *Assignor) error {
	query := `
		UPDATE assignor
		SET document = $2, email = $3, name = $4, phone = $5, login = $6, password = $7, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at
	`

	err := repository.db.QueryRow(context, query,
		a.ID, a.Document, a.Email, a.Name, a.Phone, a.Login, a.Password,
	).Scan(&a.UpdatedAt)
	return dberr.Wrap(err, "update_assignor")
}

func (repository *PostgresRepository) Delete(context context.Context, id string) error {
	cmd, err := repository.db.Exec(context, `DELETE FROM assignor WHERE id = $1`, id)
	if err != nil {
		return dberr.Wrap(err, "delete_assignor")
	}

	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}
