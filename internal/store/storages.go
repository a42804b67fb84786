package store

import (
	"context"

	"github.com/legaldoc-app/legaldoc-server/internal/config"
	"github.com/legaldoc-app/legaldoc-server/internal/logger"
)

// Storages aggregates every persistence backend the server uses.
type Storages struct {
	DB                 *DB
	UserRepository     UserRepository
	DocumentRepository DocumentRepository
	FileStorage        FileStorage
}

// NewStorages connects to PostgreSQL, prepares the uploaded-document file
// store, and wires the repositories on top.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewConnectPostgres(ctx, cfg.DB, log)
	if err != nil {
		return nil, err
	}

	fileStorage, err := NewDocumentFileStorage(cfg.Files.UploadDir, log)
	if err != nil {
		return nil, err
	}

	return &Storages{
		DB:                 db,
		UserRepository:     NewUserRepository(db, log),
		DocumentRepository: NewDocumentRepository(db, log),
		FileStorage:        fileStorage,
	}, nil
}
