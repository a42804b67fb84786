// Copyright 2026 LegalDoc Contributors
// SPDX-License-Identifier: Apache-2.0

package http

import "errors"

// Sentinel errors used by the access-guard middleware when extracting the
// session credential. Callers can match against them with [errors.Is].
var (
	// ErrNoCredential is returned when the request carries neither an
	// "Authorization" header nor a session cookie.
	ErrNoCredential = errors.New("authorization required")

	// ErrInvalidAuthorizationHeader is returned when the "Authorization"
	// header is present but cannot be split into at least two space-separated
	// parts (i.e. the token value is missing entirely).
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrEmptyToken is returned when the credential carrier is present but
	// the token value itself is an empty string.
	ErrEmptyToken = errors.New("empty token")
)
