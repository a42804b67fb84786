package models

import "time"

// Document is the descriptor of an uploaded file kept on behalf of a user.
// The file contents live in the configured upload directory; only this
// metadata record is stored in the database.
type Document struct {
	// DocumentID is the internal unique identifier of the record.
	DocumentID int64 `json:"id"`

	// UserID is the owner of the document. Documents are only ever visible
	// to their owner.
	UserID int64 `json:"-"`

	// FileName is the server-generated name the file is stored under
	// (uuid-prefixed to avoid collisions between identical uploads).
	FileName string `json:"filename"`

	// OriginalName is the client-supplied name of the uploaded file.
	OriginalName string `json:"original_name"`

	// Path is the server-side location of the stored file.
	Path string `json:"path"`

	// MimeType is the content type detected from the file bytes,
	// not the one declared by the client.
	MimeType string `json:"mime_type"`

	// Size is the stored file size in bytes.
	Size int64 `json:"size"`

	// CreatedAt is the timestamp the upload completed.
	CreatedAt time.Time `json:"created_at,omitzero"`
}

// TableName returns the name of the database table
// associated with the Document model.
func (d Document) TableName() string {
	return "documents"
}
