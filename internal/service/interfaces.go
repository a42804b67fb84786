package service

import (
	"context"
	"io"

	"github.com/legaldoc-app/legaldoc-server/models"
)

// AuthService covers the full account lifecycle: registration, credential
// verification, and JWT issue/parse.
type AuthService interface {
	// Register creates a new account from the supplied registration data.
	// The plain-text password is hashed before it ever reaches storage.
	Register(ctx context.Context, registration models.RegisterRequest) (models.User, error)

	// Login verifies the supplied credentials and returns the matching
	// account. The identifier may be a username or an email address.
	Login(ctx context.Context, identifier string, password string) (models.User, error)

	// CreateToken issues a signed JWT for the given account.
	CreateToken(ctx context.Context, userID int64) (models.Token, error)

	// ParseToken validates a raw JWT string and returns the decoded token.
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)

	// GetUser returns the account with the given internal identifier.
	GetUser(ctx context.Context, userID int64) (models.User, error)
}

// DocumentUpload carries an incoming file before it is persisted.
type DocumentUpload struct {
	OriginalName string
	Contents     io.Reader
}

// DocumentService manages uploaded documents on behalf of a single account.
type DocumentService interface {
	// Upload validates the file type, stores the contents, and persists a
	// descriptor owned by userID.
	Upload(ctx context.Context, userID int64, upload DocumentUpload) (models.Document, error)

	// List returns userID's documents, newest first, optionally narrowed to
	// a single MIME type.
	List(ctx context.Context, userID int64, mimeType string) ([]models.Document, error)

	// Get returns the document with the given identifier if userID owns it.
	Get(ctx context.Context, userID, documentID int64) (models.Document, error)
}
