// Copyright (c) 2026 Payvel. All rights reserved.
// Author: eng@payvel.app

// Package sec provides cryptographic primitives and token management.
//
// # Architecture
//
// This package isolates security-sensitive code (Hashing, JWT signing, token
// age checks) from the domain logic. It acts as an Infrastructure service
// injected into the Application layer via small interfaces declared where
// they are consumed.
package sec

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// AuthClaims represents the payload embedded inside a JWT access token.
//
// The subject carries the assignor ID, which is all the middleware needs to
// reconstruct the caller context without querying the database per request.
type AuthClaims struct {
	jwt.RegisteredClaims
}

// SubjectID returns the assignor ID the token was issued for.
func (c *AuthClaims) SubjectID() string {
	return c.Subject
}

// TokenService handles generation and verification of JWT tokens using HS256.
type TokenService struct {
	secret []byte
	issuer string
	ttl    time.Duration
}

// NewTokenService creates a new TokenService signing with the shared secret.
func NewTokenService(secret, issuer string, ttl time.Duration) (*TokenService, error) {
	if secret == "" {
		return nil, fmt.Errorf("sec: JWT secret must not be empty")
	}

	return &TokenService{
		secret: []byte(secret),
		issuer: issuer,
		ttl:    ttl,
	}, nil
}

// GenerateAccessToken creates a signed JWT access token for the given subject.
//
// The subject is the assignor ID; expiry is the configured access-token TTL.
func (service *TokenService) GenerateAccessToken(subjectID string) (string, error) {
	currentTime := time.Now()
	claims := AuthClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subjectID,
			Issuer:    service.issuer,
			IssuedAt:  jwt.NewNumericDate(currentTime),
			ExpiresAt: jwt.NewNumericDate(currentTime.Add(service.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedToken, err := token.SignedString(service.secret)
	if err != nil {
		return "", fmt.Errorf("sec: failed to sign token: %w", err)
	}

	return signedToken, nil
}

// VerifyToken checks the signature and validity of a JWT string.
func (service *TokenService) VerifyToken(tokenString string) (*AuthClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &AuthClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("sec: unexpected signing method: %v", token.Header["alg"])
		}
		return service.secret, nil
	})

	if err != nil {
		return nil, fmt.Errorf("sec: invalid token: %w", err)
	}

	claims, ok := token.Claims.(*AuthClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("sec: invalid token claims")
	}

	return claims, nil
}

// IsExpired reports whether a unix-seconds expiry timestamp lies in the past.
//
// It is the pure age check used by the refresh-token rotation flow.
func IsExpired(expiresInUnixSeconds int64) bool {
	return time.Now().After(time.Unix(expiresInUnixSeconds, 0))
}
