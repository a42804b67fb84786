package store

import (
	"context"
	"io"
	"time"

	"github.com/legaldoc-app/legaldoc-server/models"
)

// UserRepository is the credential store: the durable, uniqueness-enforcing
// mapping from account identity to stored credential record.
type UserRepository interface {
	// CreateUser persists a new account in a single atomic INSERT and returns
	// it with server-assigned fields. A username or email collision yields
	// [ErrUserAlreadyExists].
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByIdentifier looks up an account by username or email
	// (email comparison is case-insensitive). A miss yields
	// [ErrNoUserWasFound].
	FindUserByIdentifier(ctx context.Context, identifier string) (models.User, error)

	// FindUserByID looks up an account by its internal identifier.
	FindUserByID(ctx context.Context, userID int64) (models.User, error)
}

// DocumentRepository persists uploaded-document descriptors.
type DocumentRepository interface {
	SaveDocument(ctx context.Context, document models.Document) (models.Document, error)
	ListDocuments(ctx context.Context, userID int64, mimeType string) ([]models.Document, error)
	GetDocument(ctx context.Context, userID, documentID int64) (models.Document, error)

	// ListFileNames returns the stored file names of every document record.
	// Used by the upload janitor to detect orphaned files.
	ListFileNames(ctx context.Context) ([]string, error)
}

// FileStorage persists uploaded file contents outside the database.
type FileStorage interface {
	// Save writes the reader's contents under fileName and returns the
	// resulting absolute path and the number of bytes written.
	Save(ctx context.Context, fileName string, contents io.Reader) (path string, size int64, err error)

	// Remove deletes the stored file with the given name.
	Remove(ctx context.Context, fileName string) error

	// StoredFileNames lists the names of files on disk whose last
	// modification is at least minAge old. A zero minAge lists everything.
	StoredFileNames(ctx context.Context, minAge time.Duration) ([]string, error)
}

// ErrorClassificator maps driver-level errors to a retryability verdict.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
