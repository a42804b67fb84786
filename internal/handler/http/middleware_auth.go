// Package http implements the HTTP transport layer of the application.
// It provides middleware, route handlers, and request/response utilities
// for the REST API. Authentication, logging, tracing, and compression
// concerns are all handled at this layer before requests are forwarded to
// the service layer.
package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/legaldoc-app/legaldoc-server/internal/logger"
	"github.com/legaldoc-app/legaldoc-server/internal/service"
	"github.com/legaldoc-app/legaldoc-server/internal/utils"
	"github.com/legaldoc-app/legaldoc-server/models"
)

// tokenCookieName is the session cookie set at login and honoured by the
// access guard as a fallback credential carrier.
const tokenCookieName = "token"

// auth is the access-guard middleware protecting every route that requires a
// signed-in account.
//
// The credential is read from the "Authorization" header first; when the
// header is absent the guard falls back to the session cookie. A request
// carrying both uses the header. On success the authenticated user's ID is
// stored in the request context via [utils.SetUserIDToContext] before
// delegating to the next handler.
//
// The middleware rejects requests with HTTP 401 Unauthorized in three
// distinguishable categories:
//   - no credential: neither header nor cookie is present;
//   - token expired: the token verified but its expiry has passed;
//   - bad token: every other failure (malformed header, bad signature,
//     wrong issuer, garbage token).
//
// Rejections are logged with the outcome category only; the raw token string
// never appears in log output.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		tokenString, err := credentialFromRequest(r)
		if err != nil {
			if errors.Is(err, ErrNoCredential) {
				log.Error().Str("reason", "no_credential").Msg("request rejected by access guard")
				utils.WriteJSON(w, models.MessageResponse{Message: ErrNoCredential.Error()}, http.StatusUnauthorized)
				return
			}
			log.Error().Str("reason", "bad_token").Msg("request rejected by access guard")
			utils.WriteJSON(w, models.MessageResponse{Message: "invalid token"}, http.StatusUnauthorized)
			return
		}

		ctx := r.Context()
		token, err := h.services.Auth.ParseToken(ctx, tokenString)
		if err != nil {
			switch {
			case errors.Is(err, service.ErrTokenIsExpired):
				log.Error().Str("reason", "token_expired").Msg("request rejected by access guard")
				utils.WriteJSON(w, models.MessageResponse{Message: "token expired"}, http.StatusUnauthorized)
				return
			default:
				log.Error().Str("reason", "bad_token").Msg("request rejected by access guard")
				utils.WriteJSON(w, models.MessageResponse{Message: "invalid token"}, http.StatusUnauthorized)
				return
			}
		}

		// Store the authenticated user's ID in the context so that downstream
		// handlers can retrieve it without re-parsing the token.
		ctx = utils.SetUserIDToContext(ctx, token.UserID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// credentialFromRequest extracts the raw token string from the request.
// The "Authorization" header takes precedence; the session cookie is the
// fallback. Returns [ErrNoCredential] when neither carrier is present.
func credentialFromRequest(r *http.Request) (string, error) {
	if authHeader := r.Header.Get("Authorization"); authHeader != "" {
		return getTokenFromAuthHeader(authHeader)
	}

	cookie, err := r.Cookie(tokenCookieName)
	if err != nil {
		return "", ErrNoCredential
	}
	if cookie.Value == "" {
		return "", ErrEmptyToken
	}

	return cookie.Value, nil
}

// getTokenFromAuthHeader extracts the bearer token string from a raw
// "Authorization" HTTP header value.
//
// The header is expected to follow the standard format:
//
//	Authorization: <scheme> <token>
//
// It returns the following sentinel errors:
//   - [ErrInvalidAuthorizationHeader] — if the header contains fewer than
//     two space-separated parts (i.e. the token is missing entirely).
//   - [ErrEmptyToken] — if the second part exists but is an empty string.
func getTokenFromAuthHeader(authHeader string) (string, error) {
	parts := strings.Split(authHeader, " ")
	if len(parts) < 2 {
		return "", ErrInvalidAuthorizationHeader
	}

	tokenString := parts[1]
	if tokenString == "" {
		return "", ErrEmptyToken
	}

	return tokenString, nil
}
