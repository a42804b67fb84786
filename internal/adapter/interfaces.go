// Copyright 2026 LegalDoc Contributors
// SPDX-License-Identifier: Apache-2.0

// Package adapter provides the outbound transport layer for the document
// assistance services: summarization, translation, and the legal chatbot.
//
// The primary abstraction is [AssistAdapter], which decouples the HTTP
// handlers from the upstream protocol. The package ships an HTTP/REST
// implementation ([NewHTTPAssistAdapter]) that relays opaque JSON payloads
// to the configured upstream endpoints.
//
// Error values defined in errors.go are mapped from upstream HTTP status
// codes by mapAssistError so that callers can use [errors.Is] for
// transport-agnostic error handling (e.g. [ErrServiceUnavailable] when an
// upstream is down).
package adapter

import (
	"context"
	"encoding/json"
)

// AssistAdapter defines transport-agnostic communication with the document
// assistance services. Payloads and responses are opaque JSON: the server
// relays them without inspecting their structure, so upstream services can
// evolve their schemas independently.
type AssistAdapter interface {
	// Summarize relays a summarization request to the summarizer service.
	Summarize(ctx context.Context, payload json.RawMessage) (json.RawMessage, error)

	// Translate relays a translation request to the translator service.
	Translate(ctx context.Context, payload json.RawMessage) (json.RawMessage, error)

	// Chat relays a chat turn to the legal chatbot service.
	Chat(ctx context.Context, payload json.RawMessage) (json.RawMessage, error)
}
