package store

import (
	"fmt"

	"github.com/Masterminds/squirrel"
)

const (
	createUser = `INSERT INTO users (username, email, name, password_hash)
    VALUES ($1, $2, $3, $4)
    RETURNING user_id, username, email, name, password_hash, created_at;`

	findUserByIdentifier = `SELECT user_id, username, email, name, password_hash, created_at
    FROM users
    WHERE username = $1 OR lower(email) = lower($1);`

	findUserByID = `SELECT user_id, username, email, name, password_hash, created_at
    FROM users
    WHERE user_id = $1;`

	saveDocument = `INSERT INTO documents (user_id, file_name, original_name, path, mime_type, size)
    VALUES ($1, $2, $3, $4, $5, $6)
    RETURNING document_id, user_id, file_name, original_name, path, mime_type, size, created_at;`

	getDocument = `SELECT document_id, user_id, file_name, original_name, path, mime_type, size, created_at
    FROM documents
    WHERE document_id = $1 AND user_id = $2;`

	listDocumentFileNames = `SELECT file_name FROM documents;`
)

var documentColumns = []string{
	"document_id",
	"user_id",
	"file_name",
	"original_name",
	"path",
	"mime_type",
	"size",
	"created_at",
}

// buildListDocumentsQuery builds the SELECT for a user's documents, newest
// first, optionally narrowed to a single MIME type.
func buildListDocumentsQuery(userID int64, mimeType string) (string, []any, error) {
	builder := squirrel.
		Select(documentColumns...).
		From("documents").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("created_at DESC").
		PlaceholderFormat(squirrel.Dollar)

	if mimeType != "" {
		builder = builder.Where(squirrel.Eq{"mime_type": mimeType})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}
