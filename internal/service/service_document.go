// Copyright 2026 LegalDoc Contributors
// SPDX-License-Identifier: Apache-2.0

package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/legaldoc-app/legaldoc-server/internal/logger"
	"github.com/legaldoc-app/legaldoc-server/internal/store"
	"github.com/legaldoc-app/legaldoc-server/internal/utils"
	"github.com/legaldoc-app/legaldoc-server/models"
)

// allowedExtensions maps every accepted file extension to the MIME types a
// file with that extension may sniff as. Extension and content must agree:
// a .pdf whose bytes are not a PDF is rejected.
var allowedExtensions = map[string][]string{
	".pdf":  {"application/pdf"},
	".doc":  {"application/msword", "application/x-ole-storage"},
	".docx": {"application/vnd.openxmlformats-officedocument.wordprocessingml.document", "application/zip"},
	".txt":  {"text/plain"},
	".jpg":  {"image/jpeg"},
	".jpeg": {"image/jpeg"},
	".png":  {"image/png"},
}

// documentService is the concrete implementation of DocumentService.
// File bytes go to a FileStorage under a collision-free generated name;
// the descriptor goes to the DocumentRepository. When the descriptor insert
// fails the stored file is removed again, so the two stay consistent.
type documentService struct {
	documentRepository store.DocumentRepository
	fileStorage        store.FileStorage
	uuidGenerator      *utils.UUIDGenerator
	logger             *logger.Logger
}

// NewDocumentService constructs a DocumentService on top of the given
// repository and file storage.
func NewDocumentService(documentRepository store.DocumentRepository, fileStorage store.FileStorage, logger *logger.Logger) DocumentService {
	return &documentService{
		documentRepository: documentRepository,
		fileStorage:        fileStorage,
		uuidGenerator:      utils.NewUUIDGenerator(),
		logger:             logger,
	}
}

// Upload validates and persists an incoming file for userID.
//
// The file type is checked twice: the original name's extension must be on
// the allow-list, and the sniffed content type must be one the extension
// permits. The stored name is a generated UUID prefixed onto the sanitised
// original base name, so uploads never collide and never escape the upload
// directory.
func (s *documentService) Upload(ctx context.Context, userID int64, upload DocumentUpload) (models.Document, error) {
	log := logger.FromContext(ctx)

	originalName := filepath.Base(strings.TrimSpace(upload.OriginalName))
	extension := strings.ToLower(filepath.Ext(originalName))

	allowedMIMETypes, ok := allowedExtensions[extension]
	if !ok {
		log.Error().Str("extension", extension).Msg("upload rejected: extension not allowed")
		return models.Document{}, fmt.Errorf("%w: extension %q is not allowed", ErrUnsupportedFileType, extension)
	}

	header := make([]byte, 3072)
	headerLen, err := io.ReadFull(upload.Contents, header)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return models.Document{}, fmt.Errorf("error reading upload: %w", err)
	}
	header = header[:headerLen]

	if len(header) == 0 {
		return models.Document{}, ErrEmptyFile
	}

	detected := mimetype.Detect(header)
	if !mimeTypeAllowed(detected, allowedMIMETypes) {
		log.Error().
			Str("extension", extension).
			Str("detected", detected.String()).
			Msg("upload rejected: content does not match extension")
		return models.Document{}, fmt.Errorf("%w: content type %s does not match extension %q",
			ErrUnsupportedFileType, detected.String(), extension)
	}

	fileName := s.uuidGenerator.Generate() + "-" + originalName
	contents := io.MultiReader(bytes.NewReader(header), upload.Contents)

	path, size, err := s.fileStorage.Save(ctx, fileName, contents)
	if err != nil {
		log.Err(err).Msg("error saving uploaded file")
		return models.Document{}, fmt.Errorf("error saving uploaded file: %w", err)
	}

	document, err := s.documentRepository.SaveDocument(ctx, models.Document{
		UserID:       userID,
		FileName:     fileName,
		OriginalName: originalName,
		Path:         path,
		MimeType:     detected.String(),
		Size:         size,
	})
	if err != nil {
		if removeErr := s.fileStorage.Remove(ctx, fileName); removeErr != nil {
			log.Err(removeErr).Str("file", fileName).Msg("error removing file after failed descriptor insert")
		}
		log.Err(err).Msg("error saving document descriptor")
		return models.Document{}, fmt.Errorf("error saving document descriptor: %w", err)
	}

	log.Info().
		Int64("id", document.DocumentID).
		Int64("user_id", userID).
		Int64("size", size).
		Msg("document uploaded")
	return document, nil
}

// List returns userID's documents, newest first, optionally narrowed to a
// single MIME type.
func (s *documentService) List(ctx context.Context, userID int64, mimeType string) ([]models.Document, error) {
	documents, err := s.documentRepository.ListDocuments(ctx, userID, mimeType)
	if err != nil {
		return nil, fmt.Errorf("error listing documents: %w", err)
	}

	return documents, nil
}

// Get returns the document with the given identifier if userID owns it.
func (s *documentService) Get(ctx context.Context, userID, documentID int64) (models.Document, error) {
	document, err := s.documentRepository.GetDocument(ctx, userID, documentID)
	if err != nil {
		return models.Document{}, fmt.Errorf("error getting document: %w", err)
	}

	return document, nil
}

func mimeTypeAllowed(detected *mimetype.MIME, allowed []string) bool {
	for _, mimeType := range allowed {
		if detected.Is(mimeType) {
			return true
		}
	}
	return false
}
