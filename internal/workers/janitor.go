package workers

import (
	"context"
	"time"

	"github.com/legaldoc-app/legaldoc-server/internal/logger"
	"github.com/legaldoc-app/legaldoc-server/internal/store"
)

// UploadJanitor periodically removes files from the upload directory that no
// document record references. Such orphans appear when a descriptor insert
// fails after the file was written, or when rows are deleted directly in the
// database.
type UploadJanitor struct {
	documentRepository store.DocumentRepository
	fileStorage        store.FileStorage
	interval           time.Duration
	logger             *logger.Logger
}

func NewUploadJanitor(documentRepository store.DocumentRepository, fileStorage store.FileStorage, interval time.Duration, logger *logger.Logger) *UploadJanitor {
	return &UploadJanitor{
		documentRepository: documentRepository,
		fileStorage:        fileStorage,
		interval:           interval,
		logger:             logger,
	}
}

// Run sweeps the upload directory on every tick until ctx is cancelled.
func (j *UploadJanitor) Run(ctx context.Context) {
	j.logger.Info().Dur("interval", j.interval).Msg("upload janitor started")

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			j.logger.Info().Msg("upload janitor stopped")
			return
		case <-ticker.C:
			if err := j.Sweep(ctx); err != nil {
				j.logger.Err(err).Msg("upload janitor sweep failed")
			}
		}
	}
}

// Sweep removes every stored file whose name is not referenced by a document
// record. Files modified within the last sweep interval are left for the
// next pass: an upload whose descriptor insert has not landed yet must not
// be mistaken for an orphan. The referenced set is snapshotted after the
// directory listing, so an upload completing in between is never missed by
// both. A single failed removal does not abort the sweep.
func (j *UploadJanitor) Sweep(ctx context.Context) error {
	stored, err := j.fileStorage.StoredFileNames(ctx, j.interval)
	if err != nil {
		return err
	}

	referenced, err := j.documentRepository.ListFileNames(ctx)
	if err != nil {
		return err
	}

	referencedSet := make(map[string]struct{}, len(referenced))
	for _, name := range referenced {
		referencedSet[name] = struct{}{}
	}

	removed := 0
	for _, name := range stored {
		if _, ok := referencedSet[name]; ok {
			continue
		}
		if err := j.fileStorage.Remove(ctx, name); err != nil {
			j.logger.Err(err).Str("file", name).Msg("error removing orphaned file")
			continue
		}
		removed++
	}

	if removed > 0 {
		j.logger.Info().Int("removed", removed).Msg("orphaned upload files removed")
	}

	return nil
}
