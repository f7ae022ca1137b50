package docModel

import (
	"context"
	"time"
)

type Document struct {
	Id          string    `json:"document_id"`
	FileName    string    `json:"filename"`
	StoredPath  string    `json:"stored_path"`
	ContentType DocType   `json:"content_type"`
	SizeBytes   int64     `json:"size_bytes"`
	UploadedAt  time.Time `json:"uploaded_at"`
}

type DocType string

var (
	PDF    DocType = "PDF"
	Office DocType = "OFFICE"
	Image  DocType = "IMAGE"
	ERR    DocType = "ERROR"
)

type DocumentStore interface {
	SaveDocument(ctx context.Context, doc Document) error
	GetDocument(ctx context.Context, id string) (Document, bool)
	ListDocuments(ctx context.Context) ([]Document, error)
	DeleteDocument(ctx context.Context, id string) error
}
