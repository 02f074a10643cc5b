// Package vectorindex provides semantic retrieval over lifelog contexts.
// Documents are embedded, stored in a backend (in-memory or Redis), and
// queried by cosine similarity with metadata filtering.
package vectorindex

import (
	"context"
	"errors"
	"hash/fnv"
	"math"
	"strings"
)

// Document is one indexed record, keyed by the image or event id it
// describes.
type Document struct {
	ID       string         `json:"id"`
	Text     string         `json:"text"`
	Metadata map[string]any `json:"metadata,omitempty"`
}

// Match is one query hit.
type Match struct {
	Document Document `json:"document"`
	Score    float64  `json:"score"`
}

// Index is the narrow retrieval contract the ingest pipeline depends on.
type Index interface {
	Add(ctx context.Context, doc Document) error
	Query(ctx context.Context, text string, topK int, filter map[string]any) ([]Match, error)
	Delete(ctx context.Context, id string) error
}

// Embedder turns text into a fixed-size vector. Implementations may call a
// remote model; the default is a local hashing embedder good enough for
// keyword-overlap retrieval.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float32, error)
}

// ErrEmptyQuery is returned when a query has no usable text.
var ErrEmptyQuery = errors.New("empty query text")

const hashDims = 256

// HashingEmbedder is a deterministic local embedder: token frequencies
// folded into a fixed number of dimensions. No external calls, stable
// across restarts.
type HashingEmbedder struct{}

// Embed implements Embedder.
func (HashingEmbedder) Embed(_ context.Context, text string) ([]float32, error) {
	vec := make([]float32, hashDims)
	for _, tok := range tokenize(text) {
		h := fnv.New32a()
		_, _ = h.Write([]byte(tok))
		vec[h.Sum32()%hashDims]++
	}
	normalize(vec)
	return vec, nil
}

func tokenize(text string) []string {
	fields := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !('a' <= r && r <= 'z' || '0' <= r && r <= '9' || r > 127)
	})
	out := fields[:0]
	for _, f := range fields {
		if len(f) > 1 {
			out = append(out, f)
		}
	}
	return out
}

func normalize(vec []float32) {
	var sum float64
	for _, v := range vec {
		sum += float64(v) * float64(v)
	}
	if sum == 0 {
		return
	}
	norm := float32(math.Sqrt(sum))
	for i := range vec {
		vec[i] /= norm
	}
}

func cosine(a, b []float32) float64 {
	if len(a) != len(b) {
		return 0
	}
	var dot float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
	}
	return dot
}

// matchesFilter reports whether every filter key equals the document's
// metadata value.
func matchesFilter(meta map[string]any, filter map[string]any) bool {
	for k, want := range filter {
		if meta == nil {
			return false
		}
		got, ok := meta[k]
		if !ok || got != want {
			return false
		}
	}
	return true
}
