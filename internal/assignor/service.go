// Copyright (c) 2026 Payvel. All rights reserved.
// Author: eng@payvel.app

package assignor

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/payvel/payvel/internal/platform/apperr"
	"github.com/payvel/payvel/internal/platform/dberr"
	"github.com/payvel/payvel/internal/platform/sec"
	"github.com/payvel/payvel/internal/platform/validate"
	uuidv7 "github.com/payvel/payvel/pkg/uuid"
)

// Service implements the assignor application logic: it composes entity
// validation, password hashing, persistence, and the read cache.
type Service struct {
	repo   Repository
	cache  Cache
	logger *slog.Logger
}

// NewService wires the assignor service with its collaborators.
func NewService(repo Repository, cache Cache, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		cache:  cache,
		logger: logger,
	}
}

// Create validates and persists a new assignor.
//
// Required-field prechecks run before the entity factory so a missing
// document or email is reported as unprocessable rather than as a field
// validation failure.
func (service *Service) Create(context context.Context, input NewInput) (DTO, error) {
	if strings.TrimSpace(input.Document) == "" {
		return DTO{}, apperr.Unprocessable(MsgDocumentRequired)
	}
	if strings.TrimSpace(input.Email) == "" {
		return DTO{}, apperr.Unprocessable(MsgEmailRequired)
	}

	entity, err := New(input)
	if err != nil {
		return DTO{}, err
	}

	// Hash the accepted plaintext before the entity reaches storage.
	if entity.Password != "" {
		hash, err := sec.HashPassword(entity.Password)
		if err != nil {
			return DTO{}, apperr.Internal(err)
		}
		entity.Password = hash
	}

	if entity.ID == "" {
		entity.ID = uuidv7.New()
	}

	if err := service.repo.Create(context, entity); err != nil {
		return DTO{}, err
	}

	dto := entity.ToDTO()
	service.warmCache(context, dto)

	service.logger.Info("assignor_created", slog.String("assignor_id", entity.ID))
	return dto, nil
}

// Get returns a single assignor by ID, going through the read cache first.
func (service *Service) Get(context context.Context, id string) (DTO, error) {
	if !validate.IsUUID(id) {
		return DTO{}, apperr.ValidationError(MsgInvalidUUID)
	}

	if cached, err := service.cache.Get(context, id); err != nil {
		service.logger.Warn("assignor_cache_read_failed", slog.String("error", err.Error()))
	} else if cached != nil {
		return *cached, nil
	}

	entity, err := service.repo.FindByID(context, id)
	if err != nil {
		return DTO{}, service.mapNotFound(err)
	}

	dto := entity.ToDTO()
	service.warmCache(context, dto)
	return dto, nil
}

// List returns a page of assignors plus the total count.
func (service *Service) List(context context.Context, limit, offset int) ([]DTO, int, error) {
	entities, total, err := service.repo.List(context, limit, offset)
	if err != nil {
		return nil, 0, err
	}

	dtos := make([]DTO, 0, len(entities))
	for _, entity := range entities {
		dtos = append(dtos, entity.ToDTO())
	}
	return dtos, total, nil
}

// Update applies a partial patch to an existing assignor.
//
// The patch is validated atomically: either every provided field passes and
// the whole patch is committed, or the stored record stays untouched.
func (service *Service) Update(context context.Context, id string, patch UpdateInput) (DTO, error) {
	if !validate.IsUUID(id) {
		return DTO{}, apperr.ValidationError(MsgInvalidUUID)
	}

	entity, err := service.repo.FindByID(context, id)
	if err != nil {
		return DTO{}, service.mapNotFound(err)
	}

	previousHash := entity.Password
	if _, err := Update(entity, patch); err != nil {
		return DTO{}, err
	}

	// Re-hash only when the patch actually changed the password.
	if patch.Password != nil && entity.Password != previousHash {
		hash, err := sec.HashPassword(entity.Password)
		if err != nil {
			return DTO{}, apperr.Internal(err)
		}
		entity.Password = hash
	}

	if err := service.repo.Update(context, entity); err != nil {
		return DTO{}, service.mapNotFound(err)
	}

	service.invalidateCache(context, id)

	service.logger.Info("assignor_updated", slog.String("assignor_id", id))
	return entity.ToDTO(), nil
}

// Delete removes an assignor and returns the fixed success message.
func (service *Service) Delete(context context.Context, id string) (string, error) {
	if !validate.IsUUID(id) {
		return "", apperr.ValidationError(MsgInvalidUUID)
	}

	if _, err := service.repo.FindByID(context, id); err != nil {
		return "", service.mapNotFound(err)
	}

	if err := service.repo.Delete(context, id); err != nil {
		return "", service.mapNotFound(err)
	}

	service.invalidateCache(context, id)

	service.logger.Warn("assignor_deleted", slog.String("assignor_id", id))
	return MsgDeletedSuccessfully, nil
}

// FindByLogin exposes the credential lookup needed by the auth service.
// The returned entity still carries the password hash.
func (service *Service) FindByLogin(context context.Context, login string) (*Assignor, error) {
	return service.repo.FindByLogin(context, login)
}

// mapNotFound rewrites the generic storage not-found into the domain message.
func (service *Service) mapNotFound(err error) error {
	if errors.Is(err, dberr.ErrNotFound) {
		return apperr.NotFound(MsgAssignorNotFound)
	}
	return err
}

// warmCache stores the DTO in the read cache, tolerating failures.
func (service *Service) warmCache(context context.Context, dto DTO) {
	if err := service.cache.Set(context, dto); err != nil {
		service.logger.Warn("assignor_cache_write_failed", slog.String("error", err.Error()))
	}
}

// invalidateCache drops a cached entry, tolerating failures.
func (service *Service) invalidateCache(context context.Context, id string) {
	if err := service.cache.Invalidate(context, id); err != nil {
		service.logger.Warn("assignor_cache_invalidate_failed", slog.String("error", err.Error()))
	}
}
