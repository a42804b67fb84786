// Copyright 2026 LegalDoc Contributors
// SPDX-License-Identifier: Apache-2.0

package http

import (
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/legaldoc-app/legaldoc-server/internal/logger"
	"github.com/legaldoc-app/legaldoc-server/internal/utils"
	"github.com/legaldoc-app/legaldoc-server/models"
)

// maxAssistPayloadSize bounds the JSON body relayed to an assist service.
const maxAssistPayloadSize = 4 << 20 // 4 MiB

func (h *Handler) summarize(w http.ResponseWriter, r *http.Request) {
	h.relayAssist(w, r, "summarizer", h.assist.Summarize)
}

func (h *Handler) translate(w http.ResponseWriter, r *http.Request) {
	h.relayAssist(w, r, "translator", h.assist.Translate)
}

func (h *Handler) chat(w http.ResponseWriter, r *http.Request) {
	h.relayAssist(w, r, "chatbot", h.assist.Chat)
}

// relayAssist forwards the request body to the named assist service and
// writes the upstream response back verbatim. The body must be valid JSON;
// its structure is otherwise opaque to this server.
func (h *Handler) relayAssist(w http.ResponseWriter, r *http.Request, serviceName string, relay func(context.Context, json.RawMessage) (json.RawMessage, error)) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	payload, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxAssistPayloadSize))
	if err != nil {
		log.Err(err).Str("service", serviceName).Msg("error reading assist request body")
		utils.WriteJSON(w, models.MessageResponse{Message: "request body too large or unreadable"}, http.StatusBadRequest)
		return
	}

	if !json.Valid(payload) {
		log.Error().Str("service", serviceName).Msg("Invalid JSON was passed")
		utils.WriteJSON(w, models.MessageResponse{Message: "Invalid JSON was passed"}, http.StatusBadRequest)
		return
	}

	response, err := relay(ctx, payload)
	if err != nil {
		status := assistStatusFromError(err)
		log.Err(err).Str("service", serviceName).Int("status", status).Msg("assist relay failed")
		utils.WriteJSON(w, models.MessageResponse{Message: assistMessageForStatus(serviceName, status)}, status)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(response)
}
