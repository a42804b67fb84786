package service

import (
	"github.com/legaldoc-app/legaldoc-server/internal/config"
	"github.com/legaldoc-app/legaldoc-server/internal/logger"
	"github.com/legaldoc-app/legaldoc-server/internal/store"
)

// Services aggregates every business-logic service the server exposes.
type Services struct {
	Auth     AuthService
	Document DocumentService
}

// NewServices wires the services on top of the given storages.
func NewServices(storages *store.Storages, cfg config.Auth, log *logger.Logger) *Services {
	log.Debug().Msg("creating services")

	return &Services{
		Auth:     NewAuthService(storages.UserRepository, cfg, log),
		Document: NewDocumentService(storages.DocumentRepository, storages.FileStorage, log),
	}
}
