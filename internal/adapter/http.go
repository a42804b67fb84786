// Copyright 2026 LegalDoc Contributors
// SPDX-License-Identifier: Apache-2.0

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/legaldoc-app/legaldoc-server/internal/config"
	"github.com/legaldoc-app/legaldoc-server/internal/logger"
	"github.com/legaldoc-app/legaldoc-server/internal/utils"
)

type httpAssistAdapter struct {
	client *utils.HTTPClient

	summarizerURL string
	translatorURL string
	chatbotURL    string

	logger *logger.Logger
}

// NewHTTPAssistAdapter constructs an HTTP/REST implementation of
// [AssistAdapter]. It normalises and validates the three upstream URLs from
// cfg and configures the underlying HTTP client with the shared request
// timeout.
//
// Returns an error if any configured URL is empty or cannot be parsed.
func NewHTTPAssistAdapter(cfg config.Services, logger *logger.Logger) (AssistAdapter, error) {
	summarizerURL, err := normalizeServiceURL(cfg.SummarizerURL)
	if err != nil {
		return nil, fmt.Errorf("invalid summarizer url: %w", err)
	}
	translatorURL, err := normalizeServiceURL(cfg.TranslatorURL)
	if err != nil {
		return nil, fmt.Errorf("invalid translator url: %w", err)
	}
	chatbotURL, err := normalizeServiceURL(cfg.ChatbotURL)
	if err != nil {
		return nil, fmt.Errorf("invalid chatbot url: %w", err)
	}

	client := utils.NewHTTPClient()
	client.SetTimeout(cfg.RequestTimeout)

	return &httpAssistAdapter{
		client:        client,
		summarizerURL: summarizerURL,
		translatorURL: translatorURL,
		chatbotURL:    chatbotURL,
		logger:        logger,
	}, nil
}

func normalizeServiceURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Summarize implements [AssistAdapter]. It POSTs payload to the summarizer
// service and returns its JSON response verbatim.
func (h *httpAssistAdapter) Summarize(ctx context.Context, payload json.RawMessage) (json.RawMessage, error) {
	return h.relay(ctx, "summarizer", h.summarizerURL, payload)
}

// Translate implements [AssistAdapter]. It POSTs payload to the translator
// service and returns its JSON response verbatim.
func (h *httpAssistAdapter) Translate(ctx context.Context, payload json.RawMessage) (json.RawMessage, error) {
	return h.relay(ctx, "translator", h.translatorURL, payload)
}

// Chat implements [AssistAdapter]. It POSTs payload to the chatbot service
// and returns its JSON response verbatim.
func (h *httpAssistAdapter) Chat(ctx context.Context, payload json.RawMessage) (json.RawMessage, error) {
	return h.relay(ctx, "chatbot", h.chatbotURL, payload)
}

func (h *httpAssistAdapter) relay(ctx context.Context, service, serviceURL string, payload json.RawMessage) (json.RawMessage, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody([]byte(payload)).
		Post(serviceURL)
	if err != nil {
		h.logger.Err(err).Str("service", service).Msg("assist request failed")
		return nil, fmt.Errorf("%w: %s request failed: %w", ErrServiceUnavailable, service, err)
	}

	if err = mapAssistError(service, resp); err != nil {
		return nil, err
	}

	return json.RawMessage(resp.Body()), nil
}
