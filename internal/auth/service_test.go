// Copyright (c) 2026 Payvel. All rights reserved.
// Author: eng@payvel.app

package auth_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/payvel/payvel/internal/assignor"
	"github.com/payvel/payvel/internal/auth"
	"github.com/payvel/payvel/internal/platform/apperr"
	"github.com/payvel/payvel/internal/platform/dberr"
	"github.com/payvel/payvel/internal/platform/sec"
)

const (
	testAssignorID = "123e4567-e89b-12d3-a456-426614174000"
	testPassword   = "P@ssw0rd"
)

// fakeFinder serves a single known assignor by login.
type fakeFinder struct {
	account *assignor.Assignor
	err     error
}

func (f *fakeFinder) FindByLogin(_ context.Context, login string) (*assignor.Assignor, error) {
	if f.err != nil {
		return nil, f.err
	}
	if f.account != nil && f.account.Login == login {
		clone := *f.account
		return &clone, nil
	}
	return nil, dberr.ErrNotFound
}

// fakeTokens issues a predictable access token.
type fakeTokens struct{}

func (fakeTokens) GenerateAccessToken(subjectID string) (string, error) {
	return "access-token-for-" + subjectID, nil
}

// fakeRefreshRepo is an in-memory RefreshTokenRepository recording calls.
type fakeRefreshRepo struct {
	byAssignor  map[string]*auth.RefreshToken
	nextExpires int64
	findErr     error
	deleteCalls int
	createCalls int
}

func newFakeRefreshRepo() *fakeRefreshRepo {
	return &fakeRefreshRepo{
		byAssignor:  make(map[string]*auth.RefreshToken),
		nextExpires: time.Now().Add(time.Hour).Unix(),
	}
}

func (f *fakeRefreshRepo) Create(_ context.Context, assignorID string) (*auth.RefreshToken, error) {
	f.createCalls++
	record := &auth.RefreshToken{
		ID:         "refresh-" + assignorID,
		ExpiresIn:  f.nextExpires,
		AssignorID: assignorID,
		CreatedAt:  time.Now(),
	}
	f.byAssignor[assignorID] = record
	return record, nil
}

func (f *fakeRefreshRepo) FindByID(_ context.Context, tokenID string) (*auth.RefreshToken, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	for _, record := range f.byAssignor {
		if record.ID == tokenID {
			clone := *record
			return &clone, nil
		}
	}
	return nil, dberr.ErrNotFound
}

func (f *fakeRefreshRepo) FindByAssignorID(_ context.Context, assignorID string) (*auth.RefreshToken, error) {
	record, ok := f.byAssignor[assignorID]
	if !ok {
		return nil, nil
	}
	clone := *record
	return &clone, nil
}

func (f *fakeRefreshRepo) DeleteByAssignorID(_ context.Context, assignorID string) error {
	f.deleteCalls++
	delete(f.byAssignor, assignorID)
	return nil
}

func newTestService(t *testing.T) (*auth.Service, *fakeFinder, *fakeRefreshRepo) {
	t.Helper()

	hash, err := sec.HashPassword(testPassword)
	require.NoError(t, err)

	finder := &fakeFinder{account: &assignor.Assignor{
		ID:       testAssignorID,
		Document: "1234567890",
		Email:    "a@b.com",
		Name:     "A",
		Login:    "alogin",
		Password: hash,
	}}

	repo := newFakeRefreshRepo()
	service := auth.NewService(finder, fakeTokens{}, repo, slog.New(slog.NewTextHandler(io.Discard, nil)))
	return service, finder, repo
}

/*
TestSignIn_Indistinguishable verifies an unknown login and a wrong password
produce the identical failure, so callers cannot enumerate accounts.
*/
func TestSignIn_Indistinguishable(t *testing.T) {
	service, _, _ := newTestService(t)
	ctx := context.Background()

	_, unknownLoginErr := service.SignIn(ctx, "no-such-login", testPassword)
	require.Error(t, unknownLoginErr)

	_, wrongPasswordErr := service.SignIn(ctx, "alogin", "wrong-password")
	require.Error(t, wrongPasswordErr)

	unknownAE := apperr.As(unknownLoginErr)
	wrongAE := apperr.As(wrongPasswordErr)
	require.NotNil(t, unknownAE)
	require.NotNil(t, wrongAE)

	assert.Equal(t, auth.MsgEmailOrPasswordWrong, unknownAE.Message)
	assert.Equal(t, unknownAE.Message, wrongAE.Message)
	assert.Equal(t, unknownAE.HTTPStatus, wrongAE.HTTPStatus)
	assert.Equal(t, 401, unknownAE.HTTPStatus)
}

/*
TestSignIn_StorageFailurePropagates verifies a broken lookup is not disguised
as a credential error: only a genuine miss maps to the 401 message.
*/
func TestSignIn_StorageFailurePropagates(t *testing.T) {
	service, finder, _ := newTestService(t)
	finder.err = apperr.Internal(errors.New("connection refused"))

	_, err := service.SignIn(context.Background(), "alogin", testPassword)
	require.Error(t, err)

	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, 500, ae.HTTPStatus)
	assert.NotEqual(t, auth.MsgEmailOrPasswordWrong, ae.Message)
}

/*
TestSignIn_Success verifies token issuance and the response shape.
*/
func TestSignIn_Success(t *testing.T) {
	service, _, repo := newTestService(t)

	response, err := service.SignIn(context.Background(), "alogin", testPassword)
	require.NoError(t, err)

	assert.Equal(t, "access-token-for-"+testAssignorID, response.AccessToken)
	require.NotNil(t, response.RefreshToken)
	assert.Equal(t, testAssignorID, response.RefreshToken.AssignorID)
	assert.Equal(t, testAssignorID, response.Assignor.ID)

	// First sign-in: nothing to rotate out.
	assert.Equal(t, 0, repo.deleteCalls)
	assert.Equal(t, 1, repo.createCalls)
}

/*
TestSignIn_RotatesExistingToken verifies the single-active-token invariant:
a second sign-in deletes the previous refresh token before creating a new one.
*/
func TestSignIn_RotatesExistingToken(t *testing.T) {
	service, _, repo := newTestService(t)
	ctx := context.Background()

	_, err := service.SignIn(ctx, "alogin", testPassword)
	require.NoError(t, err)

	_, err = service.SignIn(ctx, "alogin", testPassword)
	require.NoError(t, err)

	assert.Equal(t, 1, repo.deleteCalls)
	assert.Equal(t, 2, repo.createCalls)
	assert.Len(t, repo.byAssignor, 1)
}

/*
TestRefresh_UnknownToken verifies an unknown refresh-token ID is rejected.
*/
func TestRefresh_UnknownToken(t *testing.T) {
	service, _, _ := newTestService(t)

	_, err := service.Refresh(context.Background(), "no-such-token")
	require.Error(t, err)

	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, auth.MsgTokenInvalidOrExpired, ae.Message)
	assert.Equal(t, 401, ae.HTTPStatus)
}

/*
TestRefresh_StorageFailurePropagates verifies a broken token lookup surfaces
as-is instead of being reported as an invalid token.
*/
func TestRefresh_StorageFailurePropagates(t *testing.T) {
	service, _, repo := newTestService(t)
	repo.findErr = apperr.Internal(errors.New("connection refused"))

	_, err := service.Refresh(context.Background(), "any-token")
	require.Error(t, err)

	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, 500, ae.HTTPStatus)
	assert.NotEqual(t, auth.MsgTokenInvalidOrExpired, ae.Message)
}

/*
TestRefresh_FreshToken verifies a non-expired record yields only a new access
token and the stored record is not touched.
*/
func TestRefresh_FreshToken(t *testing.T) {
	service, _, repo := newTestService(t)
	ctx := context.Background()

	signIn, err := service.SignIn(ctx, "alogin", testPassword)
	require.NoError(t, err)
	repo.deleteCalls = 0
	repo.createCalls = 0

	response, err := service.Refresh(ctx, signIn.RefreshToken.ID)
	require.NoError(t, err)

	assert.Equal(t, "access-token-for-"+testAssignorID, response.AccessToken)
	assert.Nil(t, response.RefreshToken)
	assert.Equal(t, 0, repo.deleteCalls)
	assert.Equal(t, 0, repo.createCalls)
}

/*
TestRefreshResponse_JSONKeys verifies the wire contract: the re-issued access
token is serialized as "token" and "refresh_token" is omitted when no rotation
happened.
*/
func TestRefreshResponse_JSONKeys(t *testing.T) {
	payload, err := json.Marshal(auth.RefreshResponse{AccessToken: "abc"})
	require.NoError(t, err)

	assert.JSONEq(t, `{"token":"abc"}`, string(payload))
}

/*
TestRefresh_ExpiredToken verifies rotation: the old record is deleted, a new
one created, and both tokens returned.
*/
func TestRefresh_ExpiredToken(t *testing.T) {
	service, _, repo := newTestService(t)
	ctx := context.Background()

	// Arrange an already-expired stored record.
	repo.nextExpires = time.Now().Add(-time.Hour).Unix()
	signIn, err := service.SignIn(ctx, "alogin", testPassword)
	require.NoError(t, err)

	repo.nextExpires = time.Now().Add(time.Hour).Unix()
	repo.deleteCalls = 0
	repo.createCalls = 0

	response, err := service.Refresh(ctx, signIn.RefreshToken.ID)
	require.NoError(t, err)

	assert.NotEmpty(t, response.AccessToken)
	require.NotNil(t, response.RefreshToken)
	assert.Equal(t, testAssignorID, response.RefreshToken.AssignorID)
	assert.Equal(t, 1, repo.deleteCalls)
	assert.Equal(t, 1, repo.createCalls)
}
