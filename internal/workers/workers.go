// Copyright 2026 LegalDoc Contributors
// SPDX-License-Identifier: Apache-2.0

package workers

import (
	"context"

	"github.com/legaldoc-app/legaldoc-server/internal/config"
	"github.com/legaldoc-app/legaldoc-server/internal/logger"
	"github.com/legaldoc-app/legaldoc-server/internal/store"
)

type Workers struct {
	workers []Worker
}

// NewWorkers assembles the background workers enabled by cfg. With a zero
// cleanup interval no janitor is created and the returned aggregate is empty.
func NewWorkers(cfg config.Workers, storages *store.Storages, log *logger.Logger) *Workers {
	ws := &Workers{}

	if cfg.CleanupInterval > 0 {
		ws.workers = append(ws.workers, NewUploadJanitor(
			storages.DocumentRepository,
			storages.FileStorage,
			cfg.CleanupInterval,
			log,
		))
	}

	return ws
}

// Run starts every worker in its own goroutine. It returns immediately;
// the workers stop when ctx is cancelled.
func (w *Workers) Run(ctx context.Context) {
	for _, worker := range w.workers {
		go worker.Run(ctx)
	}
}
