// Copyright (c) 2026 Payvel. All rights reserved.
// Author: eng@payvel.app

/*
Package request provides utilities for extracting data from HTTP requests.

It abstracts away the underlying router's parameter extraction and common
body decoding patterns, ensuring consistent error handling and type safety.
*/
package requestutil

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/payvel/payvel/internal/platform/apperr"
	"github.com/payvel/payvel/internal/platform/ctxutil"
	"github.com/payvel/payvel/internal/platform/sec"
	"github.com/payvel/payvel/internal/platform/validate"
)

/*
DecodeJSON reads the request body and decodes it into the target structure.

Parameters:
  - request: *http.Request
  - target: interface{} (Pointer to the destination struct)

Returns:
  - error: validate.ErrInvalidJSON if decoding fails, otherwise nil
*/
func DecodeJSON(request *http.Request, target interface{}) error {
	if err := json.NewDecoder(request.Body).Decode(target); err != nil {
		return validate.ErrInvalidJSON
	}
	return nil
}

/*
ID retrieves a named URL parameter (UUID) from the request.
*/
func ID(request *http.Request, name string) string {
	return chi.URLParam(request, name)
}

/*
Param retrieves a named URL parameter from the request.
*/
func Param(request *http.Request, name string) string {
	return chi.URLParam(request, name)
}

/*
Claims extracts the authenticated caller claims from the request context.

Returns nil if the request is not authenticated.
*/
func Claims(request *http.Request) *sec.AuthClaims {
	return ctxutil.GetCaller(request.Context())
}

/*
RequiredClaims ensures the request is authenticated and returns the caller claims.

Returns:
  - *sec.AuthClaims: The authenticated caller claims
  - error: apperr.Unauthorized if the request is not authenticated
*/
func RequiredClaims(request *http.Request) (*sec.AuthClaims, error) {

	// Get caller claims
	claims := ctxutil.GetCaller(request.Context())

	// If the caller is not authenticated, return an error
	if claims == nil {
		return nil, apperr.Unauthorized("Authentication required")
	}

	return claims, nil
}

/*
RequiredSubjectID returns the assignor ID of the currently authenticated caller.

Returns:
  - string: Assignor UUID
  - error: apperr.Unauthorized if not authenticated
*/
func RequiredSubjectID(request *http.Request) (string, error) {

	// Get caller claims
	claims, err := RequiredClaims(request)

	// If the caller is not authenticated, return an error
	if err != nil {
		return "", err
	}

	return claims.SubjectID(), nil
}
