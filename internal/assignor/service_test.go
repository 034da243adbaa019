// Copyright (c) 2026 Payvel. All rights reserved.
// Author: eng@payvel.app

package assignor_test

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/payvel/payvel/internal/assignor"
	"github.com/payvel/payvel/internal/platform/apperr"
	"github.com/payvel/payvel/internal/platform/dberr"
	"github.com/payvel/payvel/internal/platform/sec"
	"github.com/payvel/payvel/pkg/pointer"
)

// fakeRepository is an in-memory Repository used to isolate the service.
type fakeRepository struct {
	byID        map[string]*assignor.Assignor
	findByIDHit int
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{byID: make(map[string]*assignor.Assignor)}
}

func (f *fakeRepository) Create(_ context.Context, a *assignor.Assignor) error {
	stored := *a
	f.byID[a.ID] = &stored
	return nil
}

func (f *fakeRepository) FindByID(_ context.Context, id string) (*assignor.Assignor, error) {
	f.findByIDHit++
	stored, ok := f.byID[id]
	if !ok {
		return nil, dberr.ErrNotFound
	}
	clone := *stored
	return &clone, nil
}

func (f *fakeRepository) FindByLogin(_ context.Context, login string) (*assignor.Assignor, error) {
	for _, stored := range f.byID {
		if stored.Login == login {
			clone := *stored
			return &clone, nil
		}
	}
	return nil, dberr.ErrNotFound
}

func (f *fakeRepository) List(_ context.Context, limit, offset int) ([]*assignor.Assignor, int, error) {
	all := make([]*assignor.Assignor, 0, len(f.byID))
	for _, stored := range f.byID {
		clone := *stored
		all = append(all, &clone)
	}
	return all, len(all), nil
}

func (f *fakeRepository) Update(_ context.Context, a *assignor.Assignor) error {
	if _, ok := f.byID[a.ID]; !ok {
		return dberr.ErrNotFound
	}
	stored := *a
	f.byID[a.ID] = &stored
	return nil
}

func (f *fakeRepository) Delete(_ context.Context, id string) error {
	if _, ok := f.byID[id]; !ok {
		return dberr.ErrNotFound
	}
	delete(f.byID, id)
	return nil
}

// fakeCache is an in-memory Cache recording invalidations.
type fakeCache struct {
	entries     map[string]assignor.DTO
	invalidated []string
}

func newFakeCache() *fakeCache {
	return &fakeCache{entries: make(map[string]assignor.DTO)}
}

func (f *fakeCache) Get(_ context.Context, id string) (*assignor.DTO, error) {
	dto, ok := f.entries[id]
	if !ok {
		return nil, nil
	}
	return &dto, nil
}

func (f *fakeCache) Set(_ context.Context, dto assignor.DTO) error {
	f.entries[dto.ID] = dto
	return nil
}

func (f *fakeCache) Invalidate(_ context.Context, id string) error {
	f.invalidated = append(f.invalidated, id)
	delete(f.entries, id)
	return nil
}

func newTestService(t *testing.T) (*assignor.Service, *fakeRepository, *fakeCache) {
	t.Helper()
	repo := newFakeRepository()
	cache := newFakeCache()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return assignor.NewService(repo, cache, logger), repo, cache
}

/*
TestService_Create_RequiredPrechecks verifies missing document/email are
rejected before the factory runs.
*/
func TestService_Create_RequiredPrechecks(t *testing.T) {
	service, _, _ := newTestService(t)
	ctx := context.Background()

	t.Run("missing_document", func(t *testing.T) {
		input := validInput()
		input.Document = "  "

		_, err := service.Create(ctx, input)
		require.Error(t, err)
		ae := apperr.As(err)
		require.NotNil(t, ae)
		assert.Equal(t, assignor.MsgDocumentRequired, ae.Message)
		assert.Equal(t, 422, ae.HTTPStatus)
	})

	t.Run("missing_email", func(t *testing.T) {
		input := validInput()
		input.Email = ""

		_, err := service.Create(ctx, input)
		require.Error(t, err)
		assert.Equal(t, assignor.MsgEmailRequired, apperr.As(err).Message)
	})
}

/*
TestService_Create_HashesPassword verifies the stored credential is a bcrypt
hash and the returned DTO never exposes it.
*/
func TestService_Create_HashesPassword(t *testing.T) {
	service, repo, _ := newTestService(t)
	ctx := context.Background()

	dto, err := service.Create(ctx, validInput())
	require.NoError(t, err)
	require.NotEmpty(t, dto.ID)

	stored := repo.byID[dto.ID]
	require.NotNil(t, stored)
	assert.NotEqual(t, "P@ssw0rd", stored.Password)
	assert.True(t, sec.CheckPasswordHash("P@ssw0rd", stored.Password))
}

/*
TestService_Create_PropagatesFactoryError verifies an invalid field surfaces
the factory's validation message.
*/
func TestService_Create_PropagatesFactoryError(t *testing.T) {
	service, _, _ := newTestService(t)

	input := validInput()
	input.Email = "invalid-email"

	_, err := service.Create(context.Background(), input)
	require.Error(t, err)
	assert.Equal(t, assignor.MsgInvalidEmailFormat, err.Error())
}

/*
TestService_Get verifies the not-found mapping and the read-through cache.
*/
func TestService_Get(t *testing.T) {
	service, repo, cache := newTestService(t)
	ctx := context.Background()

	t.Run("not_found", func(t *testing.T) {
		_, err := service.Get(ctx, "123e4567-e89b-12d3-a456-426614174000")
		require.Error(t, err)
		ae := apperr.As(err)
		require.NotNil(t, ae)
		assert.Equal(t, assignor.MsgAssignorNotFound, ae.Message)
		assert.Equal(t, 404, ae.HTTPStatus)
	})

	t.Run("cache_hit_skips_repository", func(t *testing.T) {
		dto, err := service.Create(ctx, validInput())
		require.NoError(t, err)

		// Create warmed the cache; drop the repo hit counter and read twice.
		repo.findByIDHit = 0

		first, err := service.Get(ctx, dto.ID)
		require.NoError(t, err)
		assert.Equal(t, dto.Document, first.Document)
		assert.Equal(t, 0, repo.findByIDHit)

		// Cold cache falls through to the repository and re-warms.
		delete(cache.entries, dto.ID)
		second, err := service.Get(ctx, dto.ID)
		require.NoError(t, err)
		assert.Equal(t, dto.Email, second.Email)
		assert.Equal(t, 1, repo.findByIDHit)
		assert.Contains(t, cache.entries, dto.ID)
	})
}

/*
TestService_Update verifies patch application, atomicity against storage,
and cache invalidation.
*/
func TestService_Update(t *testing.T) {
	service, repo, cache := newTestService(t)
	ctx := context.Background()

	dto, err := service.Create(ctx, validInput())
	require.NoError(t, err)

	t.Run("applies_patch_and_invalidates_cache", func(t *testing.T) {
		updated, err := service.Update(ctx, dto.ID, assignor.UpdateInput{
			Name: pointer.To("Renamed"),
		})
		require.NoError(t, err)
		assert.Equal(t, "Renamed", updated.Name)
		assert.Equal(t, "Renamed", repo.byID[dto.ID].Name)
		assert.Contains(t, cache.invalidated, dto.ID)
	})

	t.Run("invalid_patch_leaves_record_untouched", func(t *testing.T) {
		before := *repo.byID[dto.ID]

		_, err := service.Update(ctx, dto.ID, assignor.UpdateInput{
			Phone: pointer.To(strings.Repeat("9", 21)),
		})
		require.Error(t, err)
		assert.Equal(t, assignor.MsgPhoneTooLong, err.Error())
		assert.Equal(t, before, *repo.byID[dto.ID])
	})

	t.Run("not_found", func(t *testing.T) {
		_, err := service.Update(ctx, "123e4567-e89b-12d3-a456-426614174999", assignor.UpdateInput{})
		require.Error(t, err)
		assert.Equal(t, assignor.MsgAssignorNotFound, apperr.As(err).Message)
	})
}

/*
TestService_Delete verifies the fixed success message and that the record
is actually gone afterwards.
*/
func TestService_Delete(t *testing.T) {
	service, _, cache := newTestService(t)
	ctx := context.Background()

	dto, err := service.Create(ctx, validInput())
	require.NoError(t, err)

	message, err := service.Delete(ctx, dto.ID)
	require.NoError(t, err)
	assert.Equal(t, assignor.MsgDeletedSuccessfully, message)
	assert.Contains(t, cache.invalidated, dto.ID)

	_, err = service.Get(ctx, dto.ID)
	require.Error(t, err)
	assert.Equal(t, assignor.MsgAssignorNotFound, apperr.As(err).Message)

	_, err = service.Delete(ctx, dto.ID)
	require.Error(t, err)
	assert.Equal(t, assignor.MsgAssignorNotFound, apperr.As(err).Message)
}
