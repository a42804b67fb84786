package handler

import (
	"github.com/legaldoc-app/legaldoc-server/internal/adapter"
	"github.com/legaldoc-app/legaldoc-server/internal/config"
	"github.com/legaldoc-app/legaldoc-server/internal/handler/http"
	"github.com/legaldoc-app/legaldoc-server/internal/logger"
	"github.com/legaldoc-app/legaldoc-server/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, assist adapter.AssistAdapter, cfg *config.StructuredConfig, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.Server.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	return &Handlers{
		HTTP: http.NewHandler(services, assist, cfg, logger),
	}, nil
}
