// Copyright (c) 2026 Payvel. All rights reserved.
// Author: eng@payvel.app

package auth

import (
	"context"
	"errors"
	"log/slog"

	"github.com/payvel/payvel/internal/assignor"
	"github.com/payvel/payvel/internal/platform/apperr"
	"github.com/payvel/payvel/internal/platform/dberr"
	"github.com/payvel/payvel/internal/platform/sec"
)

// AssignorFinder is the slice of the assignor service the auth flow needs.
type AssignorFinder interface {
	FindByLogin(context context.Context, login string) (*assignor.Assignor, error)
}

// TokenGenerator issues signed access tokens for a subject.
type TokenGenerator interface {
	GenerateAccessToken(subjectID string) (string, error)
}

// Service implements sign-in and refresh-token rotation.
type Service struct {
	assignors AssignorFinder
	tokens    TokenGenerator
	refresh   RefreshTokenRepository
	logger    *slog.Logger
}

// NewService wires the auth service with its collaborators.
func NewService(assignors AssignorFinder, tokens TokenGenerator, refresh RefreshTokenRepository, logger *slog.Logger) *Service {
	return &Service{
		assignors: assignors,
		tokens:    tokens,
		refresh:   refresh,
		logger:    logger,
	}
}

// SignIn authenticates a login/password pair and rotates the refresh token.
//
// # Flow
//  1. Look up the assignor by login.
//  2. Compare the password against the stored bcrypt hash.
//  3. Generate a fresh access token.
//  4. Delete any existing refresh token for this assignor (single-active invariant).
//  5. Create and return a new refresh token.
//
// Steps 1 and 2 fail with the identical error so a caller cannot tell an
// unknown login from a wrong password.
func (service *Service) SignIn(context context.Context, login, password string) (SignInResponse, error) {
	account, err := service.assignors.FindByLogin(context, login)
	if err != nil {
		if errors.Is(err, dberr.ErrNotFound) {
			return SignInResponse{}, apperr.Unauthorized(MsgEmailOrPasswordWrong)
		}
		return SignInResponse{}, err
	}

	if !sec.CheckPasswordHash(password, account.Password) {
		return SignInResponse{}, apperr.Unauthorized(MsgEmailOrPasswordWrong)
	}

	accessToken, err := service.tokens.GenerateAccessToken(account.ID)
	if err != nil {
		return SignInResponse{}, apperr.Internal(err)
	}

	existing, err := service.refresh.FindByAssignorID(context, account.ID)
	if err != nil {
		return SignInResponse{}, err
	}
	if existing != nil {
		if err := service.refresh.DeleteByAssignorID(context, account.ID); err != nil {
			return SignInResponse{}, err
		}
	}

	refreshToken, err := service.refresh.Create(context, account.ID)
	if err != nil {
		return SignInResponse{}, err
	}

	service.logger.Info("assignor_signed_in", slog.String("assignor_id", account.ID))

	return SignInResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		Assignor:     account.ToDTO(),
	}, nil
}

// Refresh re-issues an access token from a refresh-token ID.
//
// # Flow
//  1. Look up the refresh-token record; an unknown ID is a rejection.
//  2. Generate a new access token for the associated assignor regardless of age.
//  3. If the record is past its expiry, rotate it: delete the old record,
//     create a new one, and return both tokens.
//  4. Otherwise return only the access token; the record stays active.
func (service *Service) Refresh(context context.Context, refreshTokenID string) (RefreshResponse, error) {
	record, err := service.refresh.FindByID(context, refreshTokenID)
	if err != nil {
		if errors.Is(err, dberr.ErrNotFound) {
			return RefreshResponse{}, apperr.Unauthorized(MsgTokenInvalidOrExpired)
		}
		return RefreshResponse{}, err
	}

	expired := sec.IsExpired(record.ExpiresIn)

	accessToken, err := service.tokens.GenerateAccessToken(record.AssignorID)
	if err != nil {
		return RefreshResponse{}, apperr.Internal(err)
	}

	if expired {
		if err := service.refresh.DeleteByAssignorID(context, record.AssignorID); err != nil {
			return RefreshResponse{}, err
		}

		rotated, err := service.refresh.Create(context, record.AssignorID)
		if err != nil {
			return RefreshResponse{}, err
		}

		service.logger.Info("refresh_token_rotated", slog.String("assignor_id", record.AssignorID))

		return RefreshResponse{
			AccessToken:  accessToken,
			RefreshToken: rotated,
		}, nil
	}

	return RefreshResponse{AccessToken: accessToken}, nil
}
