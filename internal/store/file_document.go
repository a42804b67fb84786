// Copyright 2026 LegalDoc Contributors
// SPDX-License-Identifier: Apache-2.0

package store

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/legaldoc-app/legaldoc-server/internal/logger"
)

// documentFileStorage is the local-filesystem implementation of
// [FileStorage]. Uploaded document bytes are kept flat under a single
// configured directory; the database only holds descriptors, so the
// directory contents plus the documents table together form the full
// upload state.
type documentFileStorage struct {
	dir    string
	logger *logger.Logger
}

// NewDocumentFileStorage constructs a [FileStorage] rooted at dir,
// creating the directory if it does not exist.
func NewDocumentFileStorage(dir string, logger *logger.Logger) (FileStorage, error) {
	if dir == "" {
		return nil, fmt.Errorf("empty upload directory")
	}

	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("error creating upload directory: %w", err)
	}

	logger.Debug().Str("dir", dir).Msg("creating document file storage")
	return &documentFileStorage{dir: dir, logger: logger}, nil
}

// Save streams contents into dir/fileName. The write goes through a
// temporary file renamed into place, so a request cancelled mid-upload
// never leaves a partially written document under its final name.
func (s *documentFileStorage) Save(ctx context.Context, fileName string, contents io.Reader) (string, int64, error) {
	if err := ctx.Err(); err != nil {
		return "", 0, err
	}

	finalPath := filepath.Join(s.dir, filepath.Base(fileName))

	tmp, err := os.CreateTemp(s.dir, ".upload-*")
	if err != nil {
		return "", 0, fmt.Errorf("error creating temp upload file: %w", err)
	}
	tmpPath := tmp.Name()

	size, err := io.Copy(tmp, contents)
	if closeErr := tmp.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		os.Remove(tmpPath)
		return "", 0, fmt.Errorf("error writing upload file: %w", err)
	}

	if err := os.Rename(tmpPath, finalPath); err != nil {
		os.Remove(tmpPath)
		return "", 0, fmt.Errorf("error finalizing upload file: %w", err)
	}

	return finalPath, size, nil
}

// Remove deletes the stored file with the given name. Removing a file that
// is already gone is not an error.
func (s *documentFileStorage) Remove(ctx context.Context, fileName string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	err := os.Remove(filepath.Join(s.dir, filepath.Base(fileName)))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("error removing stored file: %w", err)
	}
	return nil
}

// StoredFileNames lists the names of the regular files in the upload
// directory, skipping in-flight temporary files. With a non-zero minAge only
// files whose last modification is at least that old are listed; callers use
// this to leave freshly written uploads alone.
func (s *documentFileStorage) StoredFileNames(ctx context.Context, minAge time.Duration) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("error listing upload directory: %w", err)
	}

	cutoff := time.Now().Add(-minAge)

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if len(name) > 0 && name[0] == '.' {
			continue
		}
		if minAge > 0 {
			info, err := entry.Info()
			if err != nil {
				// the file vanished between ReadDir and Info
				continue
			}
			if info.ModTime().After(cutoff) {
				continue
			}
		}
		names = append(names, name)
	}

	return names, nil
}
