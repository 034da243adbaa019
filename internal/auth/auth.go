// Copyright (c) 2026 Payvel. All rights reserved.
// Author: eng@payvel.app

/*
Package auth implements credential sign-in and refresh-token rotation.

The access token is a short-lived JWT; the refresh token is a server-side
record with a single-active-per-assignor invariant: signing in or refreshing
an expired token replaces the previous record instead of accumulating them.
*/
package auth

import (
	"time"

	"github.com/payvel/payvel/internal/assignor"
)

// Authentication failure messages.
//
// Sign-in failures are deliberately indistinguishable: an unknown login and a
// wrong password return the identical message to prevent user enumeration.
const (
	MsgEmailOrPasswordWrong  = "Email or password incorrect."
	MsgTokenInvalidOrExpired = "Refresh token invalid or expired."
)

// RefreshToken is the server-side refresh-token record.
//
// ExpiresIn is an absolute unix-seconds expiry timestamp, not a duration.
type RefreshToken struct {
	ID         string    `json:"id"`
	ExpiresIn  int64     `json:"expires_in"`
	AssignorID string    `json:"assignor_id"`
	CreatedAt  time.Time `json:"created_at"`
}

// SignInResponse bundles everything a client needs after authentication.
type SignInResponse struct {
	AccessToken  string        `json:"access_token"`
	RefreshToken *RefreshToken `json:"refresh_token"`
	Assignor     assignor.DTO  `json:"assignor"`
}

// RefreshResponse carries the re-issued access token under the `token` key.
// RefreshToken is only populated when the old record was expired and had to
// be rotated.
type RefreshResponse struct {
	AccessToken  string        `json:"token"`
	RefreshToken *RefreshToken `json:"refresh_token,omitempty"`
}
