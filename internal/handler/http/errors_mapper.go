package http

import (
	"errors"
	"net/http"

	"github.com/legaldoc-app/legaldoc-server/internal/adapter"
)

func assistStatusFromError(err error) int {
	switch {
	case errors.Is(err, adapter.ErrBadRequest):
		return http.StatusBadRequest
	case errors.Is(err, adapter.ErrServiceUnavailable):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func assistMessageForStatus(serviceName string, status int) string {
	switch status {
	case http.StatusBadRequest:
		return serviceName + " rejected the request"
	case http.StatusBadGateway:
		return serviceName + " is unavailable"
	default:
		return http.StatusText(status)
	}
}
