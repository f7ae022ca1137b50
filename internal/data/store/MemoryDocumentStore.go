package store

import (
	"context"
	"sync"

	"github.com/cramcortex/backend/internal/domain/docModel"
	"github.com/cramcortex/backend/pkg/logger_i"
)

// MemoryDocumentStore keeps documents in process memory. Used when Redis is
// down so uploads keep working for the lifetime of the process.
type MemoryDocumentStore struct {
	mu     sync.RWMutex
	docs   map[string]docModel.Document
	logger *logger_i.Logger
}

func NewMemoryDocumentStore() *MemoryDocumentStore {
	return &MemoryDocumentStore{
		docs:   make(map[string]docModel.Document),
		logger: logger_i.NewLogger("MemoryDocumentStore"),
	}
}

func (s *MemoryDocumentStore) SaveDocument(_ context.Context, doc docModel.Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.docs[doc.Id] = doc
	return nil
}

func (s *MemoryDocumentStore) GetDocument(_ context.Context, documentId string) (docModel.Document, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	doc, ok := s.docs[documentId]
	return doc, ok
}

func (s *MemoryDocumentStore) ListDocuments(_ context.Context) ([]docModel.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	docs := make([]docModel.Document, 0, len(s.docs))
	for _, doc := range s.docs {
		docs = append(docs, doc)
	}
	return docs, nil
}

func (s *MemoryDocumentStore) DeleteDocument(_ context.Context, documentId string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.docs, documentId)
	return nil
}
