// Copyright (c) 2026 Payvel. All rights reserved.
// Author: eng@payvel.app

package payable

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/payvel/payvel/internal/platform/middleware"
	requestutil "github.com/payvel/payvel/internal/platform/request"
	"github.com/payvel/payvel/internal/platform/respond"
	"github.com/payvel/payvel/pkg/pagination"
)

// Handler is the HTTP delivery layer for payables.
type Handler struct {
	service *Service
}

// NewHandler creates the payable HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes mounts the payable routes on the given router.
// Every payable operation requires authentication.
func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Group(func(protected chi.Router) {
		protected.Use(middleware.RequireAuth)

		protected.Post("/", handler.createPayable)
		protected.Get("/", handler.listPayables)
		protected.Get("/{id}", handler.getPayable)
		protected.Patch("/{id}", handler.updatePayable)
		protected.Delete("/{id}", handler.deletePayable)
	})
}

type createPayableRequest struct {
	ID           string    `json:"id"`
	Value        float64   `json:"value"`
	EmissionDate time.Time `json:"emission_date"`
	AssignorID   string    `json:"assignor_id"`
}

type updatePayableRequest struct {
	Value        *float64   `json:"value"`
	EmissionDate *time.Time `json:"emission_date"`
	AssignorID   *string    `json:"assignor_id"`
}

type deleteResponse struct {
	Message string `json:"message"`
}

func (handler *Handler) createPayable(writer http.ResponseWriter, request *http.Request) {
	var input createPayableRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	dto, err := handler.service.Create(request.Context(), NewInput{
		ID:           input.ID,
		Value:        input.Value,
		EmissionDate: input.EmissionDate,
		AssignorID:   input.AssignorID,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, dto)
}

func (handler *Handler) listPayables(writer http.ResponseWriter, request *http.Request) {
	paginationParams := pagination.FromRequest(request)

	filter := Filter{
		AssignorID: request.URL.Query().Get("assignor_id"),
	}

	dtos, total, err := handler.service.List(request.Context(), filter, paginationParams.Limit, paginationParams.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, dtos, pagination.NewMeta(paginationParams.Page, paginationParams.Limit, total))
}

func (handler *Handler) getPayable(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.ID(request, "id")

	dto, err := handler.service.Get(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, dto)
}

func (handler *Handler) updatePayable(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.ID(request, "id")

	var input updatePayableRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	dto, err := handler.service.Update(request.Context(), id, UpdateInput{
		Value:        input.Value,
		EmissionDate: input.EmissionDate,
		AssignorID:   input.AssignorID,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, dto)
}

func (handler *Handler) deletePayable(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.ID(request, "id")

	message, err := handler.service.Delete(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, deleteResponse{Message: message})
}
