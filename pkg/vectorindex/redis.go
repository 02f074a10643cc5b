package vectorindex

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/redis/go-redis/v9"
)

// RedisIndex stores documents and their embeddings in Redis hashes under a
// shared key set. Scoring happens client-side; the backend only provides
// durable shared storage across runtime replicas.
type RedisIndex struct {
	client    *redis.Client
	embedder  Embedder
	keyPrefix string
}

type redisDoc struct {
	Document Document  `json:"document"`
	Vector   []float32 `json:"vector"`
}

// NewRedisIndex creates a Redis-backed index. A nil embedder falls back to
// the hashing embedder.
func NewRedisIndex(client *redis.Client, keyPrefix string, embedder Embedder) *RedisIndex {
	if keyPrefix == "" {
		keyPrefix = "edged:vectorindex"
	}
	if embedder == nil {
		embedder = HashingEmbedder{}
	}
	return &RedisIndex{
		client:    client,
		embedder:  embedder,
		keyPrefix: keyPrefix,
	}
}

func (r *RedisIndex) docKey(id string) string {
	return r.keyPrefix + ":doc:" + id
}

func (r *RedisIndex) idsKey() string {
	return r.keyPrefix + ":ids"
}

// Add implements Index.
func (r *RedisIndex) Add(ctx context.Context, doc Document) error {
	vec, err := r.embedder.Embed(ctx, doc.Text)
	if err != nil {
		return err
	}
	data, err := json.Marshal(redisDoc{Document: doc, Vector: vec})
	if err != nil {
		return fmt.Errorf("failed to marshal document: %w", err)
	}
	pipe := r.client.TxPipeline()
	pipe.Set(ctx, r.docKey(doc.ID), data, 0)
	pipe.SAdd(ctx, r.idsKey(), doc.ID)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to store document: %w", err)
	}
	return nil
}

// Query implements Index.
func (r *RedisIndex) Query(ctx context.Context, text string, topK int, filter map[string]any) ([]Match, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyQuery
	}
	if topK <= 0 {
		topK = 5
	}
	qvec, err := r.embedder.Embed(ctx, text)
	if err != nil {
		return nil, err
	}

	ids, err := r.client.SMembers(ctx, r.idsKey()).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list document ids: %w", err)
	}
	if len(ids) == 0 {
		return nil, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = r.docKey(id)
	}
	values, err := r.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to fetch documents: %w", err)
	}

	matches := make([]Match, 0, len(values))
	for _, v := range values {
		raw, ok := v.(string)
		if !ok {
			continue
		}
		var rd redisDoc
		if err := json.Unmarshal([]byte(raw), &rd); err != nil {
			continue
		}
		if !matchesFilter(rd.Document.Metadata, filter) {
			continue
		}
		matches = append(matches, Match{Document: rd.Document, Score: cosine(qvec, rd.Vector)})
	}

	sort.Slice(matches, func(i, j int) bool { return matches[i].Score > matches[j].Score })
	if len(matches) > topK {
		matches = matches[:topK]
	}
	return matches, nil
}

// Delete implements Index.
func (r *RedisIndex) Delete(ctx context.Context, id string) error {
	pipe := r.client.TxPipeline()
	pipe.Del(ctx, r.docKey(id))
	pipe.SRem(ctx, r.idsKey(), id)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete document: %w", err)
	}
	return nil
}
