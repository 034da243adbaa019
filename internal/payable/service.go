// Copyright (c) 2026 Payvel. All rights reserved.
// Author: eng@payvel.app

package payable

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/payvel/payvel/internal/platform/apperr"
	"github.com/payvel/payvel/internal/platform/dberr"
	"github.com/payvel/payvel/internal/platform/validate"
	uuidv7 "github.com/payvel/payvel/pkg/uuid"
)

// Service implements the payable application logic.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService wires the payable service with its repository.
func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// Create validates and persists a new payable.
//
// A missing assignor ID is reported as unprocessable before the entity
// factory runs; a malformed one fails UUID validation inside the factory.
func (service *Service) Create(context context.Context, input NewInput) (DTO, error) {
	if strings.TrimSpace(input.AssignorID) == "" {
		return DTO{}, apperr.Unprocessable(MsgAssignorIDMissing)
	}

	entity, err := New(input)
	if err != nil {
		return DTO{}, err
	}

	if entity.ID == "" {
		entity.ID = uuidv7.New()
	}

	if err := service.repo.Create(context, entity); err != nil {
		return DTO{}, err
	}

	service.logger.Info("payable_created",
		slog.String("payable_id", entity.ID),
		slog.String("assignor_id", entity.AssignorID),
	)
	return entity.ToDTO(), nil
}

// Get returns a single payable by ID.
func (service *Service) Get(context context.Context, id string) (DTO, error) {
	if !validate.IsUUID(id) {
		return DTO{}, apperr.ValidationError(MsgInvalidUUID)
	}

	entity, err := service.repo.FindByID(context, id)
	if err != nil {
		return DTO{}, service.mapNotFound(err)
	}
	return entity.ToDTO(), nil
}

// List returns a page of payables plus the total count.
func (service *Service) List(context context.Context, filter Filter, limit, offset int) ([]DTO, int, error) {
	entities, total, err := service.repo.List(context, filter, limit, offset)
	if err != nil {
		return nil, 0, err
	}

	dtos := make([]DTO, 0, len(entities))
	for _, entity := range entities {
		dtos = append(dtos, entity.ToDTO())
	}
	return dtos, total, nil
}

// Update applies a partial patch to an existing payable.
func (service *Service) Update(context context.Context, id string, patch UpdateInput) (DTO, error) {
	if !validate.IsUUID(id) {
		return DTO{}, apperr.ValidationError(MsgInvalidUUID)
	}

	entity, err := service.repo.FindByID(context, id)
	if err != nil {
		return DTO{}, service.mapNotFound(err)
	}

	if _, err := Update(entity, patch); err != nil {
		return DTO{}, err
	}

	if err := service.repo.Update(context, entity); err != nil {
		return DTO{}, service.mapNotFound(err)
	}

	service.logger.Info("payable_updated", slog.String("payable_id", id))
	return entity.ToDTO(), nil
}

// Delete removes a payable and returns the fixed success message.
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

	service.logger.Warn("payable_deleted", slog.String("payable_id", id))
	return MsgDeletedSuccessfully, nil
}

// mapNotFound rewrites the generic storage not-found into the domain message.
func (service *Service) mapNotFound(err error) error {
	if errors.Is(err, dberr.ErrNotFound) {
		return apperr.NotFound(MsgPayableNotFound)
	}
	return err
}
