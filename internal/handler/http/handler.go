package http

import (
	"time"

	"github.com/legaldoc-app/legaldoc-server/internal/adapter"
	"github.com/legaldoc-app/legaldoc-server/internal/config"
	"github.com/legaldoc-app/legaldoc-server/internal/logger"
	"github.com/legaldoc-app/legaldoc-server/internal/service"
)

// defaultMaxUploadSize caps multipart uploads when no explicit limit is
// configured.
const defaultMaxUploadSize = 32 << 20 // 32 MiB

type Handler struct {
	services *service.Services
	assist   adapter.AssistAdapter

	tokenDuration time.Duration
	maxUploadSize int64

	logger *logger.Logger
}

func NewHandler(services *service.Services, assist adapter.AssistAdapter, cfg *config.StructuredConfig, logger *logger.Logger) *Handler {
	maxUploadSize := cfg.Storage.Files.MaxUploadSize
	if maxUploadSize <= 0 {
		maxUploadSize = defaultMaxUploadSize
	}

	logger.Info().Msg("http handler created")
	return &Handler{
		services:      services,
		assist:        assist,
		tokenDuration: cfg.Auth.TokenDuration,
		maxUploadSize: maxUploadSize,
		logger:        logger,
	}
}
