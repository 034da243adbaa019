// Copyright (c) 2026 Payvel. All rights reserved.
// Author: eng@payvel.app

package payable_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/payvel/payvel/internal/payable"
	"github.com/payvel/payvel/internal/platform/apperr"
	"github.com/payvel/payvel/internal/platform/dberr"
	"github.com/payvel/payvel/pkg/pointer"
)

// fakeRepository is an in-memory Repository used to isolate the service.
type fakeRepository struct {
	byID map[string]*payable.Payable
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{byID: make(map[string]*payable.Payable)}
}

func (f *fakeRepository) Create(_ context.Context, p *payable.Payable) error {
	stored := *p
	f.byID[p.ID] = &stored
	return nil
}

func (f *fakeRepository) FindByID(_ context.Context, id string) (*payable.Payable, error) {
	stored, ok := f.byID[id]
	if !ok {
		return nil, dberr.ErrNotFound
	}
	clone := *stored
	return &clone, nil
}

func (f *fakeRepository) List(_ context.Context, filter payable.Filter, limit, offset int) ([]*payable.Payable, int, error) {
	var all []*payable.Payable
	for _, stored := range f.byID {
		if filter.AssignorID != "" && stored.AssignorID != filter.AssignorID {
			continue
		}
		clone := *stored
		all = append(all, &clone)
	}
	return all, len(all), nil
}

func (f *fakeRepository) Update(_ context.Context, p *payable.Payable) error {
	if _, ok := f.byID[p.ID]; !ok {
		return dberr.ErrNotFound
	}
	stored := *p
	f.byID[p.ID] = &stored
	return nil
}

func (f *fakeRepository) Delete(_ context.Context, id string) error {
	if _, ok := f.byID[id]; !ok {
		return dberr.ErrNotFound
	}
	delete(f.byID, id)
	return nil
}

func newTestService(t *testing.T) (*payable.Service, *fakeRepository) {
	t.Helper()
	repo := newFakeRepository()
	return payable.NewService(repo, slog.New(slog.NewTextHandler(io.Discard, nil))), repo
}

/*
TestService_Create verifies the missing-assignor precheck and the success path.
*/
func TestService_Create(t *testing.T) {
	service, repo := newTestService(t)
	ctx := context.Background()

	t.Run("missing_assignor_id", func(t *testing.T) {
		input := validInput()
		input.AssignorID = "  "

		_, err := service.Create(ctx, input)
		require.Error(t, err)
		ae := apperr.As(err)
		require.NotNil(t, ae)
		assert.Equal(t, payable.MsgAssignorIDMissing, ae.Message)
		assert.Equal(t, 422, ae.HTTPStatus)
	})

	t.Run("malformed_assignor_id", func(t *testing.T) {
		input := validInput()
		input.AssignorID = "not-a-uuid"

		_, err := service.Create(ctx, input)
		require.Error(t, err)
		assert.Equal(t, payable.MsgInvalidUUID, err.Error())
	})

	t.Run("success_assigns_id", func(t *testing.T) {
		dto, err := service.Create(ctx, validInput())
		require.NoError(t, err)
		require.NotEmpty(t, dto.ID)
		assert.Contains(t, repo.byID, dto.ID)
	})
}

/*
TestService_Get verifies the not-found mapping.
*/
func TestService_Get(t *testing.T) {
	service, _ := newTestService(t)
	ctx := context.Background()

	_, err := service.Get(ctx, "123e4567-e89b-12d3-a456-426614174000")
	require.Error(t, err)
	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, payable.MsgPayableNotFound, ae.Message)
	assert.Equal(t, 404, ae.HTTPStatus)
}

/*
TestService_List verifies the assignor filter is honored.
*/
func TestService_List(t *testing.T) {
	service, _ := newTestService(t)
	ctx := context.Background()

	_, err := service.Create(ctx, validInput())
	require.NoError(t, err)

	other := validInput()
	other.AssignorID = "123e4567-e89b-12d3-a456-426614174999"
	_, err = service.Create(ctx, other)
	require.NoError(t, err)

	dtos, total, err := service.List(ctx, payable.Filter{AssignorID: testAssignorID}, 20, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Len(t, dtos, 1)
	assert.Equal(t, testAssignorID, dtos[0].AssignorID)
}

/*
TestService_Update verifies patch application and storage atomicity.
*/
func TestService_Update(t *testing.T) {
	service, repo := newTestService(t)
	ctx := context.Background()

	dto, err := service.Create(ctx, validInput())
	require.NoError(t, err)

	t.Run("applies_patch", func(t *testing.T) {
		updated, err := service.Update(ctx, dto.ID, payable.UpdateInput{
			Value: pointer.To(300.00),
		})
		require.NoError(t, err)
		assert.Equal(t, 300.00, updated.Value)
		assert.Equal(t, 300.00, repo.byID[dto.ID].Value)
	})

	t.Run("invalid_patch_leaves_record_untouched", func(t *testing.T) {
		before := *repo.byID[dto.ID]

		_, err := service.Update(ctx, dto.ID, payable.UpdateInput{
			Value:      pointer.To(500.00),
			AssignorID: pointer.To("invalid-id"),
		})
		require.Error(t, err)
		assert.Equal(t, before, *repo.byID[dto.ID])
	})

	t.Run("not_found", func(t *testing.T) {
		_, err := service.Update(ctx, "123e4567-e89b-12d3-a456-426614174888", payable.UpdateInput{})
		require.Error(t, err)
		assert.Equal(t, payable.MsgPayableNotFound, apperr.As(err).Message)
	})
}

/*
TestService_Delete verifies the fixed success message and removal.
*/
func TestService_Delete(t *testing.T) {
	service, _ := newTestService(t)
	ctx := context.Background()

	dto, err := service.Create(ctx, validInput())
	require.NoError(t, err)

	message, err := service.Delete(ctx, dto.ID)
	require.NoError(t, err)
	assert.Equal(t, payable.MsgDeletedSuccessfully, message)

	_, err = service.Get(ctx, dto.ID)
	require.Error(t, err)
	assert.Equal(t, payable.MsgPayableNotFound, apperr.As(err).Message)
}
