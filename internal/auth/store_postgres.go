// Copyright (c) 2026 Payvel. All rights reserved.
// Author: eng@payvel.app

package auth

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/payvel/payvel/internal/platform/dberr"
	uuidv7 "github.com/payvel/payvel/pkg/uuid"
)

// PostgresRefreshTokenRepository implements [RefreshTokenRepository] on top
// of pgxpool. The assignor_id column carries a unique constraint, which is
// what physically enforces the single-active-token invariant.
type PostgresRefreshTokenRepository struct {
	db  *pgxpool.Pool
	ttl time.Duration
}

// NewPostgresRefreshTokenRepository creates the PostgreSQL-backed repository.
// ttl is how long a freshly created refresh token stays valid.
func NewPostgresRefreshTokenRepository(db *pgxpool.Pool, ttl time.Duration) *PostgresRefreshTokenRepository {
	return &PostgresRefreshTokenRepository{db: db, ttl: ttl}
}

func (repository *PostgresRefreshTokenRepository) Create(context context.Context, assignorID string) (*RefreshToken, error) {
	record := &RefreshToken{
		ID:         uuidv7.New(),
		ExpiresIn:  time.Now().Add(repository.ttl).Unix(),
		AssignorID: assignorID,
	}

	query := `
		INSERT INTO refresh_token (id, expires_in, assignor_id, created_at)
		VALUES ($1, $2, $3, NOW())
		RETURNING created_at
	`

	err := repository.db.QueryRow(context, query,
		record.ID, record.ExpiresIn, record.AssignorID,
	).Scan(&record.CreatedAt)
	if err != nil {
		return nil, dberr.Wrap(err, "create_refresh_token")
	}

	return record, nil
}

func (repository *PostgresRefreshTokenRepository) FindByID(context context.Context, tokenID string) (*RefreshToken, error) {
	query := `SELECT id, expires_in, assignor_id, created_at FROM refresh_token WHERE id = $1`

	record := &RefreshToken{}
	err := repository.db.QueryRow(context, query, tokenID).Scan(
		&record.ID, &record.ExpiresIn, &record.AssignorID, &record.CreatedAt,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "find_refresh_token_by_id")
	}

	return record, nil
}

func (repository *PostgresRefreshTokenRepository) FindByAssignorID(context context.Context, assignorID string) (*RefreshToken, error) {
	query := `SELECT id, expires_in, assignor_id, created_at FROM refresh_token WHERE assignor_id = $1`

	record := &RefreshToken{}
	err := repository.db.QueryRow(context, query, assignorID).Scan(
		&record.ID, &record.ExpiresIn, &record.AssignorID, &record.CreatedAt,
	)
	if err != nil {
		// Absence is a normal state for this lookup.
		wrapped := dberr.Wrap(err, "find_refresh_token_by_assignor")
		if errors.Is(wrapped, dberr.ErrNotFound) {
			return nil, nil
		}
		return nil, wrapped
	}

	return record, nil
}

func (repository *PostgresRefreshTokenRepository) DeleteByAssignorID(context context.Context, assignorID string) error {
	_, err := repository.db.Exec(context, `DELETE FROM refresh_token WHERE assignor_id = $1`, assignorID)
	return dberr.Wrap(err, "delete_refresh_token")
}
