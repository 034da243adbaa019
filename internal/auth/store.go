// Copyright (c) 2026 Payvel. All rights reserved.
// Author: eng@payvel.app

package auth

import "context"

// RefreshTokenRepository is the persistence port for refresh-token records.
//
// FindByAssignorID reports an absent record as (nil, nil) because "no active
// token yet" is a normal state, not a failure. FindByID returns a not-found
// error instead: a refresh call with an unknown ID is a rejection.
type RefreshTokenRepository interface {
	Create(context context.Context, assignorID string) (*RefreshToken, error)
	FindByID(context context.Context, tokenID string) (*RefreshToken, error)
	FindByAssignorID(context context.Context, assignorID string) (*RefreshToken, error)
	DeleteByAssignorID(context context.Context, assignorID string) error
}
