package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/legaldoc-app/legaldoc-server/internal/logger"
	"github.com/legaldoc-app/legaldoc-server/models"
)

// documentRepository is the PostgreSQL-backed implementation of
// [DocumentRepository]. It persists descriptors of uploaded files against
// the "documents" table; the file bytes themselves live in [FileStorage].
type documentRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewDocumentRepository constructs a [DocumentRepository] backed by the
// provided database connection and logger.
func NewDocumentRepository(db *DB, logger *logger.Logger) DocumentRepository {
	logger.Debug().Msg("creating document repository")
	return &documentRepository{
		db:     db,
		logger: logger,
	}
}

// SaveDocument persists a new document descriptor and returns it with
// server-assigned fields (DocumentID, CreatedAt).
func (r *documentRepository) SaveDocument(ctx context.Context, document models.Document) (models.Document, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, saveDocument,
		document.UserID, document.FileName, document.OriginalName, document.Path, document.MimeType, document.Size)

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*documentRepository.SaveDocument").Msg("error: insert failed")
		return models.Document{}, fmt.Errorf("%w: %w", ErrDocumentNotSaved, err)
	}

	var saved models.Document
	if err := scanDocument(row, &saved); err != nil {
		log.Err(err).Str("func", "*documentRepository.SaveDocument").Msg("error: scanning error")
		return models.Document{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return saved, nil
}

// ListDocuments returns the documents owned by userID, newest first,
// optionally narrowed to a single MIME type.
func (r *documentRepository) ListDocuments(ctx context.Context, userID int64, mimeType string) ([]models.Document, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListDocumentsQuery(userID, mimeType)
	if err != nil {
		log.Err(err).Str("func", "*documentRepository.ListDocuments").Msg("error: building query")
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*documentRepository.ListDocuments").Msg("error: query failed")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	documents := make([]models.Document, 0)
	for rows.Next() {
		var document models.Document
		if err := scanDocument(rows, &document); err != nil {
			log.Err(err).Str("func", "*documentRepository.ListDocuments").Msg("error: scanning error")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		documents = append(documents, document)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return documents, nil
}

// GetDocument returns the document with the given identifier if it belongs
// to userID. A miss yields [ErrDocumentNotFound] — including the case where
// the document exists but is owned by somebody else.
func (r *documentRepository) GetDocument(ctx context.Context, userID, documentID int64) (models.Document, error) {
	log := logger.FromContext(ctx)

	var document models.Document
	row := r.db.QueryRowContext(ctx, getDocument, documentID, userID)

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*documentRepository.GetDocument").Msg("error: query failed")
		return models.Document{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if err := scanDocument(row, &document); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Document{}, ErrDocumentNotFound
		}
		log.Err(err).Str("func", "*documentRepository.GetDocument").Msg("error: scanning error")
		return models.Document{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return document, nil
}

// ListFileNames returns the stored file name of every document record.
func (r *documentRepository) ListFileNames(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, listDocumentFileNames)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	names := make([]string, 0)
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		names = append(names, name)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return names, nil
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanDocument(row rowScanner, d *models.Document) error {
	return row.Scan(&d.DocumentID, &d.UserID, &d.FileName, &d.OriginalName, &d.Path, &d.MimeType, &d.Size, &d.CreatedAt)
}
