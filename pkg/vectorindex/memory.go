package vectorindex

import (
	"context"
	"sort"
	"strings"
	"sync"
)

type memoryDoc struct {
	doc Document
	vec []float32
}

// MemoryIndex is the in-process backend, used in tests and single-node
// deployments.
type MemoryIndex struct {
	mu       sync.RWMutex
	docs     map[string]memoryDoc
	embedder Embedder
}

// NewMemoryIndex creates an in-memory index. A nil embedder falls back to
// the hashing embedder.
func NewMemoryIndex(embedder Embedder) *MemoryIndex {
	if embedder == nil {
		embedder = HashingEmbedder{}
	}
	return &MemoryIndex{
		docs:     make(map[string]memoryDoc),
		embedder: embedder,
	}
}

// Add implements Index.
func (m *MemoryIndex) Add(ctx context.Context, doc Document) error {
	vec, err := m.embedder.Embed(ctx, doc.Text)
	if err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.docs[doc.ID] = memoryDoc{doc: doc, vec: vec}
	return nil
}

// Query implements Index.
func (m *MemoryIndex) Query(ctx context.Context, text string, topK int, filter map[string]any) ([]Match, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyQuery
	}
	if topK <= 0 {
		topK = 5
	}
	qvec, err := m.embedder.Embed(ctx, text)
	if err != nil {
		return nil, err
	}

	m.mu.RLock()
	matches := make([]Match, 0, len(m.docs))
	for _, md := range m.docs {
		if !matchesFilter(md.doc.Metadata, filter) {
			continue
		}
		matches = append(matches, Match{Document: md.doc, Score: cosine(qvec, md.vec)})
	}
	m.mu.RUnlock()

	sort.Slice(matches, func(i, j int) bool { return matches[i].Score > matches[j].Score })
	if len(matches) > topK {
		matches = matches[:topK]
	}
	return matches, nil
}

// Delete implements Index.
func (m *MemoryIndex) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.docs, id)
	return nil
}

// Len returns the number of indexed documents.
func (m *MemoryIndex) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.docs)
}
