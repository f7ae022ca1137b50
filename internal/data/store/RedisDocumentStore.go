package store

import (
	"context"
	"encoding/json"

	"github.com/cramcortex/backend/internal/config"
	"github.com/cramcortex/backend/internal/data/redisStore"
	"github.com/cramcortex/backend/internal/domain/docModel"
	"github.com/cramcortex/backend/pkg/logger_i"
)

const documentKeyPrefix = "doc:"

type RedisDocumentStore struct {
	store  *redisStore.Store
	logger *logger_i.Logger
}

// GetRedisDocumentStore returns a document store backed by the shared Redis
// connection, or nil when Redis is unavailable.
func GetRedisDocumentStore(ctx context.Context) *RedisDocumentStore {
	backing := redisStore.GetRedisStore(ctx, config.RedisDocumentStore)
	if backing == nil {
		return nil
	}
	return &RedisDocumentStore{
		store:  backing,
		logger: logger_i.NewLogger("DocumentStore"),
	}
}

func (s *RedisDocumentStore) SaveDocument(ctx context.Context, doc docModel.Document) error {
	log := s.logger.With("traceId", ctx.Value(config.TRACE_ID_KEY), "documentId", doc.Id)
	data, err := json.Marshal(doc)
	if err != nil {
		return err
	}

	err = s.store.Set(ctx, documentKeyPrefix+doc.Id, data, config.RedisDocumentStoreTTL)
	if err == nil {
		log.Debug("saved document to redis")
	}
	return err
}

func (s *RedisDocumentStore) GetDocument(ctx context.Context, documentId string) (docModel.Document, bool) {
	var doc docModel.Document
	log := s.logger.With("traceId", ctx.Value(config.TRACE_ID_KEY), "documentId", documentId)

	val, err := s.store.Get(ctx, documentKeyPrefix+documentId)
	if s.store.IsNil(err) {
		return doc, false
	} else if err != nil {
		log.Error("error reading document from redis", "error", err)
		return doc, false
	}

	if err := json.Unmarshal([]byte(val), &doc); err != nil {
		log.Error("error unmarshalling document", "error", err)
		return doc, false
	}
	return doc, true
}

func (s *RedisDocumentStore) ListDocuments(ctx context.Context) ([]docModel.Document, error) {
	keys, err := s.store.Keys(ctx, documentKeyPrefix+"*")
	if err != nil {
		return nil, err
	}

	docs := make([]docModel.Document, 0, len(keys))
	for _, key := range keys {
		val, err := s.store.Get(ctx, key)
		if err != nil {
			continue
		}
		var doc docModel.Document
		if err := json.Unmarshal([]byte(val), &doc); err != nil {
			continue
		}
		docs = append(docs, doc)
	}
	return docs, nil
}

func (s *RedisDocumentStore) DeleteDocument(ctx context.Context, documentId string) error {
	err := s.store.Del(ctx, documentKeyPrefix+documentId)
	if err != nil {
		s.logger.Error("error deleting document from redis", "documentId", documentId, "error", err)
		return err
	}
	s.logger.Debug("document deleted from redis", "documentId", documentId)
	return nil
}

// TestDocumentStore wires a store around a caller-supplied backing store.
// Test use only.
func TestDocumentStore(store *redisStore.Store) *RedisDocumentStore {
	return &RedisDocumentStore{
		store:  store,
		logger: logger_i.NewLogger("test document store"),
	}
}
