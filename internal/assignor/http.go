// Copyright (c) 2026 Payvel. All rights reserved.
// Author: eng@payvel.app

package assignor

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/payvel/payvel/internal/platform/middleware"
	requestutil "github.com/payvel/payvel/internal/platform/request"
	"github.com/payvel/payvel/internal/platform/respond"
	"github.com/payvel/payvel/pkg/pagination"
)

// Handler is the HTTP delivery layer for assignors.
type Handler struct {
	service *Service
}

// NewHandler creates the assignor HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes mounts the assignor routes on the given router.
func (handler *Handler) RegisterRoutes(router chi.Router) {
	// Public: account creation happens before any token exists.
	router.Post("/", handler.createAssignor)

	// Authenticated
	router.Group(func(protected chi.Router) {
		protected.Use(middleware.RequireAuth)

		protected.Get("/", handler.listAssignors)
		protected.Get("/{id}", handler.getAssignor)
		protected.Patch("/{id}", handler.updateAssignor)
		protected.Delete("/{id}", handler.deleteAssignor)
	})
}

type createAssignorRequest struct {
	ID       string  `json:"id"`
	Document string  `json:"document"`
	Email    string  `json:"email"`
	Name     string  `json:"name"`
	Phone    string  `json:"phone"`
	Login    string  `json:"login"`
	Password *string `json:"password"`
}

type updateAssignorRequest struct {
	Document *string `json:"document"`
	Email    *string `json:"email"`
	Name     *string `json:"name"`
	Phone    *string `json:"phone"`
	Login    *string `json:"login"`
	Password *string `json:"password"`
}

type deleteResponse struct {
	Message string `json:"message"`
}

func (handler *Handler) createAssignor(writer http.ResponseWriter, request *http.Request) {
	var input createAssignorRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	dto, err := handler.service.Create(request.Context(), NewInput{
		ID:       input.ID,
		Document: input.Document,
		Email:    input.Email,
		Name:     input.Name,
		Phone:    input.Phone,
		Login:    input.Login,
		Password: input.Password,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, dto)
}

func (handler *Handler) listAssignors(writer http.ResponseWriter, request *http.Request) {
	paginationParams := pagination.FromRequest(request)

	dtos, total, err := handler.service.List(request.Context(), paginationParams.Limit, paginationParams.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, dtos, pagination.NewMeta(paginationParams.Page, paginationParams.Limit, total))
}

func (handler *Handler) getAssignor(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.ID(request, "id")

	dto, err := handler.service.Get(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, dto)
}

func (handler *Handler) updateAssignor(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.ID(request, "id")

	var input updateAssignorRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	dto, err := handler.service.Update(request.Context(), id, UpdateInput{
		Document: input.Document,
		Email:    input.Email,
		Name:     input.Name,
		Phone:    input.Phone,
		Login:    input.Login,
		Password: input.Password,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, dto)
}

func (handler *Handler) deleteAssignor(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.ID(request, "id")

	message, err := handler.service.Delete(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, deleteResponse{Message: message})
}
