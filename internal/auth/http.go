// Copyright (c) 2026 Payvel. All rights reserved.
// Author: eng@payvel.app

package auth

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/payvel/payvel/internal/platform/request"
	"github.com/payvel/payvel/internal/platform/respond"
	"github.com/payvel/payvel/internal/platform/validate"
)

// Handler is the HTTP delivery layer for authentication.
type Handler struct {
	service *Service
}

// NewHandler creates the auth HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes mounts the public authentication routes.
func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Post("/login", handler.signIn)
	router.Post("/refresh-token", handler.refresh)
}

type signInRequest struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

type refreshRequest struct {
	RefreshTokenID string `json:"refresh_token_id"`
}

func (handler *Handler) signIn(writer http.ResponseWriter, request *http.Request) {
	var input signInRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	validator := &validate.Validator{}
	validator.Required("login", input.Login).Required("password", input.Password)
	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	response, err := handler.service.SignIn(request.Context(), input.Login, input.Password)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, response)
}

func (handler *Handler) refresh(writer http.ResponseWriter, request *http.Request) {
	var input refreshRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	validator := &validate.Validator{}
	validator.Required("refresh_token_id", input.RefreshTokenID)
	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	response, err := handler.service.Refresh(request.Context(), input.RefreshTokenID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, response)
}
