// Copyright 2026 LegalDoc Contributors
// SPDX-License-Identifier: Apache-2.0

package workers

import (
	"context"
	"errors"
	"io"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/legaldoc-app/legaldoc-server/internal/logger"
	"github.com/legaldoc-app/legaldoc-server/models"
)

// stubDocumentRepository returns a fixed set of referenced file names.
type stubDocumentRepository struct {
	fileNames []string
	err       error
}

func (s *stubDocumentRepository) SaveDocument(ctx context.Context, document models.Document) (models.Document, error) {
	return document, nil
}

func (s *stubDocumentRepository) ListDocuments(ctx context.Context, userID int64, mimeType string) ([]models.Document, error) {
	return nil, nil
}

func (s *stubDocumentRepository) GetDocument(ctx context.Context, userID, documentID int64) (models.Document, error) {
	return models.Document{}, nil
}

func (s *stubDocumentRepository) ListFileNames(ctx context.Context) ([]string, error) {
	return s.fileNames, s.err
}

// stubFileStorage tracks removals against an in-memory file set with
// per-file modification times.
type stubFileStorage struct {
	mu    sync.Mutex
	files map[string]time.Time
}

// newStubFileStorage seeds files old enough to be visible to any sweep.
func newStubFileStorage(names ...string) *stubFileStorage {
	files := make(map[string]time.Time, len(names))
	for _, name := range names {
		files[name] = time.Now().Add(-time.Hour)
	}
	return &stubFileStorage{files: files}
}

func (s *stubFileStorage) add(name string, modTime time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.files[name] = modTime
}

func (s *stubFileStorage) Save(ctx context.Context, fileName string, contents io.Reader) (string, int64, error) {
	s.add(fileName, time.Now())
	return fileName, 0, nil
}

func (s *stubFileStorage) Remove(ctx context.Context, fileName string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.files, fileName)
	return nil
}

func (s *stubFileStorage) StoredFileNames(ctx context.Context, minAge time.Duration) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cutoff := time.Now().Add(-minAge)
	names := make([]string, 0, len(s.files))
	for name, modTime := range s.files {
		if minAge > 0 && modTime.After(cutoff) {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

func TestUploadJanitor_Sweep_RemovesOrphansOnly(t *testing.T) {
	repo := &stubDocumentRepository{fileNames: []string{"keep-1.pdf", "keep-2.txt"}}
	files := newStubFileStorage("keep-1.pdf", "keep-2.txt", "orphan-1.pdf", "orphan-2.txt")

	janitor := NewUploadJanitor(repo, files, time.Minute, logger.Nop())

	if err := janitor.Sweep(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	remaining, err := files.StoredFileNames(context.Background(), 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	expected := []string{"keep-1.pdf", "keep-2.txt"}
	if len(remaining) != len(expected) {
		t.Fatalf("expected %v, got %v", expected, remaining)
	}
	for i, name := range expected {
		if remaining[i] != name {
			t.Errorf("expected %v, got %v", expected, remaining)
			break
		}
	}
}

func TestUploadJanitor_Sweep_SparesRecentUploads(t *testing.T) {
	// an upload that finished moments ago may not have its descriptor in the
	// repository snapshot yet; the sweep must not treat it as an orphan
	repo := &stubDocumentRepository{}
	files := newStubFileStorage("old-orphan.pdf")
	files.add("fresh.pdf", time.Now())

	janitor := NewUploadJanitor(repo, files, time.Minute, logger.Nop())

	if err := janitor.Sweep(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	remaining, err := files.StoredFileNames(context.Background(), 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(remaining) != 1 || remaining[0] != "fresh.pdf" {
		t.Fatalf("expected only fresh.pdf to survive, got %v", remaining)
	}
}

func TestUploadJanitor_Sweep_RepositoryError(t *testing.T) {
	repo := &stubDocumentRepository{err: errors.New("db is down")}
	files := newStubFileStorage("orphan.pdf")

	janitor := NewUploadJanitor(repo, files, time.Minute, logger.Nop())

	if err := janitor.Sweep(context.Background()); err == nil {
		t.Fatal("expected error, got nil")
	}

	// nothing must be removed when the referenced set is unknown
	remaining, _ := files.StoredFileNames(context.Background(), 0)
	if len(remaining) != 1 {
		t.Fatalf("expected file to survive a failed sweep, got %v", remaining)
	}
}

func TestUploadJanitor_Run_StopsOnContextCancel(t *testing.T) {
	repo := &stubDocumentRepository{}
	files := newStubFileStorage()
	janitor := NewUploadJanitor(repo, files, time.Millisecond, logger.Nop())

	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		janitor.Run(ctx)
		close(done)
	}()

	time.Sleep(5 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("janitor did not stop after context cancellation")
	}
}

func TestNewWorkers_ZeroIntervalDisablesJanitor(t *testing.T) {
	ws := &Workers{}
	if len(ws.workers) != 0 {
		t.Fatal("expected no workers")
	}

	// Run on an empty aggregate must not panic
	ws.Run(context.Background())
}
