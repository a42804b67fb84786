package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/legaldoc-app/legaldoc-server/internal/config"
	"github.com/legaldoc-app/legaldoc-server/internal/logger"
	"github.com/legaldoc-app/legaldoc-server/internal/service"
	"github.com/legaldoc-app/legaldoc-server/internal/store"
	"github.com/legaldoc-app/legaldoc-server/models"
	"golang.org/x/crypto/bcrypt"
)

// memoryUserRepository is an in-memory store.UserRepository with the same
// uniqueness and lookup semantics as the PostgreSQL implementation.
type memoryUserRepository struct {
	mu     sync.Mutex
	nextID int64
	users  []models.User
}

func newMemoryUserRepository() *memoryUserRepository {
	return &memoryUserRepository{nextID: 1}
}

func (m *memoryUserRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, existing := range m.users {
		if existing.Username == user.Username || strings.EqualFold(existing.Email, user.Email) {
			return models.User{}, store.ErrUserAlreadyExists
		}
	}

	user.UserID = m.nextID
	user.CreatedAt = time.Now()
	m.nextID++
	m.users = append(m.users, user)
	return user, nil
}

func (m *memoryUserRepository) FindUserByIdentifier(ctx context.Context, identifier string) (models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, user := range m.users {
		if user.Username == identifier || strings.EqualFold(user.Email, identifier) {
			return user, nil
		}
	}
	return models.User{}, store.ErrNoUserWasFound
}

func (m *memoryUserRepository) FindUserByID(ctx context.Context, userID int64) (models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, user := range m.users {
		if user.UserID == userID {
			return user, nil
		}
	}
	return models.User{}, store.ErrNoUserWasFound
}

// memoryDocumentRepository is an in-memory store.DocumentRepository.
type memoryDocumentRepository struct {
	mu        sync.Mutex
	nextID    int64
	documents []models.Document
}

func newMemoryDocumentRepository() *memoryDocumentRepository {
	return &memoryDocumentRepository{nextID: 1}
}

func (m *memoryDocumentRepository) SaveDocument(ctx context.Context, document models.Document) (models.Document, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	document.DocumentID = m.nextID
	document.CreatedAt = time.Now()
	m.nextID++
	m.documents = append(m.documents, document)
	return document, nil
}

func (m *memoryDocumentRepository) ListDocuments(ctx context.Context, userID int64, mimeType string) ([]models.Document, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	result := make([]models.Document, 0)
	// newest first
	for i := len(m.documents) - 1; i >= 0; i-- {
		document := m.documents[i]
		if document.UserID != userID {
			continue
		}
		if mimeType != "" && document.MimeType != mimeType {
			continue
		}
		result = append(result, document)
	}
	return result, nil
}

func (m *memoryDocumentRepository) GetDocument(ctx context.Context, userID, documentID int64) (models.Document, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, document := range m.documents {
		if document.DocumentID == documentID && document.UserID == userID {
			return document, nil
		}
	}
	return models.Document{}, store.ErrDocumentNotFound
}

func (m *memoryDocumentRepository) ListFileNames(ctx context.Context) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	names := make([]string, 0, len(m.documents))
	for _, document := range m.documents {
		names = append(names, document.FileName)
	}
	return names, nil
}

// memoryFileStorage is an in-memory store.FileStorage.
type memoryFileStorage struct {
	mu      sync.Mutex
	files   map[string][]byte
	savedAt map[string]time.Time
}

func newMemoryFileStorage() *memoryFileStorage {
	return &memoryFileStorage{
		files:   make(map[string][]byte),
		savedAt: make(map[string]time.Time),
	}
}

func (m *memoryFileStorage) Save(ctx context.Context, fileName string, contents io.Reader) (string, int64, error) {
	data, err := io.ReadAll(contents)
	if err != nil {
		return "", 0, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.files[fileName] = data
	m.savedAt[fileName] = time.Now()
	return "/uploads/" + fileName, int64(len(data)), nil
}

func (m *memoryFileStorage) Remove(ctx context.Context, fileName string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.files, fileName)
	delete(m.savedAt, fileName)
	return nil
}

func (m *memoryFileStorage) StoredFileNames(ctx context.Context, minAge time.Duration) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	cutoff := time.Now().Add(-minAge)
	names := make([]string, 0, len(m.files))
	for name := range m.files {
		if minAge > 0 && m.savedAt[name].After(cutoff) {
			continue
		}
		names = append(names, name)
	}
	return names, nil
}

// mockAssistAdapter is a function-field test double for adapter.AssistAdapter.
type mockAssistAdapter struct {
	SummarizeFunc func(ctx context.Context, payload json.RawMessage) (json.RawMessage, error)
	TranslateFunc func(ctx context.Context, payload json.RawMessage) (json.RawMessage, error)
	ChatFunc      func(ctx context.Context, payload json.RawMessage) (json.RawMessage, error)
}

func (m *mockAssistAdapter) Summarize(ctx context.Context, payload json.RawMessage) (json.RawMessage, error) {
	return m.SummarizeFunc(ctx, payload)
}

func (m *mockAssistAdapter) Translate(ctx context.Context, payload json.RawMessage) (json.RawMessage, error) {
	return m.TranslateFunc(ctx, payload)
}

func (m *mockAssistAdapter) Chat(ctx context.Context, payload json.RawMessage) (json.RawMessage, error) {
	return m.ChatFunc(ctx, payload)
}

func echoAssistAdapter() *mockAssistAdapter {
	echo := func(ctx context.Context, payload json.RawMessage) (json.RawMessage, error) {
		return payload, nil
	}
	return &mockAssistAdapter{SummarizeFunc: echo, TranslateFunc: echo, ChatFunc: echo}
}

// test environment

const (
	testTokenSignKey = "handler-test-sign-key"
	testTokenIssuer  = "legaldoc-test"
)

type testEnv struct {
	router    *chi.Mux
	handler   *Handler
	services  *service.Services
	users     *memoryUserRepository
	documents *memoryDocumentRepository
	files     *memoryFileStorage
	assist    *mockAssistAdapter
}

func newTestEnv() *testEnv {
	return newTestEnvWithTokenDuration(time.Hour)
}

func newTestEnvWithTokenDuration(tokenDuration time.Duration) *testEnv {
	users := newMemoryUserRepository()
	documents := newMemoryDocumentRepository()
	files := newMemoryFileStorage()
	assist := echoAssistAdapter()

	cfg := &config.StructuredConfig{
		Auth: config.Auth{
			TokenSignKey:  testTokenSignKey,
			TokenIssuer:   testTokenIssuer,
			TokenDuration: tokenDuration,
			BcryptCost:    bcrypt.MinCost,
		},
		Server: config.Server{HTTPAddress: "localhost:8080"},
	}

	services := service.NewServices(&store.Storages{
		UserRepository:     users,
		DocumentRepository: documents,
		FileStorage:        files,
	}, cfg.Auth, logger.Nop())

	handler := NewHandler(services, assist, cfg, logger.Nop())

	return &testEnv{
		router:    handler.Init(),
		handler:   handler,
		services:  services,
		users:     users,
		documents: documents,
		files:     files,
		assist:    assist,
	}
}

func jsonBody(v any) *bytes.Reader {
	data, _ := json.Marshal(v)
	return bytes.NewReader(data)
}
