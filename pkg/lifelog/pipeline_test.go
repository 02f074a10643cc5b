package lifelog

import (
	"context"
	"encoding/base64"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opencane/edged/pkg/store"
	"github.com/opencane/edged/pkg/vectorindex"
)

type fakeRecorder struct {
	mu          sync.Mutex
	hashes      []string
	images      []store.Image
	contexts    []store.ContextRow
	events      []store.Event
	deletedURIs []string
}

func (f *fakeRecorder) RecentImageHashes(_ context.Context, _ string, _ int) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, len(f.hashes))
	copy(out, f.hashes)
	return out, nil
}

func (f *fakeRecorder) SaveImage(_ context.Context, img store.Image) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	img.ID = fmt.Sprintf("img-%d", len(f.images)+1)
	f.images = append(f.images, img)
	f.hashes = append([]string{img.DHash}, f.hashes...)
	return img.ID, nil
}

func (f *fakeRecorder) MarkImageURIDeleted(_ context.Context, uri string) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deletedURIs = append(f.deletedURIs, uri)
	return 1, nil
}

func (f *fakeRecorder) SaveContext(_ context.Context, cr store.ContextRow) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	cr.ID = fmt.Sprintf("ctx-%d", len(f.contexts)+1)
	f.contexts = append(f.contexts, cr)
	return cr.ID, nil
}

func (f *fakeRecorder) AppendEvent(_ context.Context, ev store.Event) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	ev.ID = fmt.Sprintf("ev-%d", len(f.events)+1)
	f.events = append(f.events, ev)
	return ev.ID, nil
}

type mapAnalyzer struct {
	calls  atomic.Int32
	result map[string]any
}

func (a *mapAnalyzer) Analyze(context.Context, AnalyzeRequest) (map[string]any, error) {
	a.calls.Add(1)
	return a.result, nil
}

// blockingAnalyzer holds every call until release is closed.
type blockingAnalyzer struct {
	started chan struct{}
	release chan struct{}
	once    sync.Once
}

func newBlockingAnalyzer() *blockingAnalyzer {
	return &blockingAnalyzer{
		started: make(chan struct{}),
		release: make(chan struct{}),
	}
}

func (a *blockingAnalyzer) Analyze(ctx context.Context, _ AnalyzeRequest) (map[string]any, error) {
	a.once.Do(func() { close(a.started) })
	select {
	case <-a.release:
	case <-ctx.Done():
	}
	return map[string]any{"summary": "slow frame"}, nil
}

func startPipeline(t *testing.T, cfg Config, rec Recorder, index vectorindex.Index, analyzer Analyzer) *Pipeline {
	t.Helper()
	p := NewPipeline(cfg, rec, index, analyzer, nil, nil)
	p.Start(context.Background())
	t.Cleanup(p.Stop)
	return p
}

func imageB64(t *testing.T, reversed bool) string {
	t.Helper()
	return base64.StdEncoding.EncodeToString(gradientPNG(t, reversed))
}

func TestIngestRecordsImageContextEventAndIndex(t *testing.T) {
	rec := &fakeRecorder{}
	index := vectorindex.NewMemoryIndex(nil)
	analyzer := &mapAnalyzer{result: map[string]any{
		"summary":            "A red bicycle leaning on a rack. Street scene.",
		"objects":            []any{"bicycle", map[string]any{"label": "rack", "confidence": 0.8}},
		"ocr":                []any{map[string]any{"text": "NO PARKING"}},
		"risk_hints":         []any{"kerb edge"},
		"actionable_summary": "bicycle blocks the kerb cut",
		"risk_level":         "P2",
		"risk_score":         0.7,
		"confidence":         0.9,
	}}
	p := startPipeline(t, Config{}, rec, index, analyzer)

	res := p.Ingest(context.Background(), IngestRequest{
		SessionID:   "sess-1",
		DeviceID:    "dev-1",
		ImageBase64: imageB64(t, false),
		MIME:        "image/png",
		Question:    "what is ahead?",
	})
	require.True(t, res.Success, "ingest failed: %s", res.Error)
	assert.False(t, res.Dedup)
	assert.Equal(t, "img-1", res.ImageID)
	assert.Equal(t, "A red bicycle leaning on a rack. Street scene.", res.Summary)

	require.Len(t, rec.images, 1)
	assert.Contains(t, rec.images[0].DHash, "dhash:")
	assert.Contains(t, rec.images[0].DHash, "blake2:")
	assert.Greater(t, rec.images[0].SizeBytes, 0)

	require.Len(t, rec.contexts, 1)
	ctxRow := rec.contexts[0]
	assert.Equal(t, "A red bicycle leaning on a rack", ctxRow.SemanticTitle)
	assert.Equal(t, []string{"bicycle", "rack"}, ctxRow.Objects)
	assert.Equal(t, []string{"NO PARKING"}, ctxRow.OCR)
	assert.Equal(t, "P2", ctxRow.RiskLevel)
	assert.InDelta(t, 0.9, ctxRow.Confidence, 0.001)

	require.Len(t, rec.events, 1)
	assert.Equal(t, "image_ingested", rec.events[0].EventType)
	assert.Equal(t, "img-1", rec.events[0].Payload["image_id"])

	assert.Equal(t, 1, index.Len())
	matches, err := index.Query(context.Background(), "bicycle rack", 5, map[string]any{"session_id": "sess-1"})
	require.NoError(t, err)
	require.NotEmpty(t, matches)
	assert.Equal(t, "img-1", matches[0].Document.ID)

	status := p.Status()
	assert.Equal(t, int64(1), status.EnqueuedTotal)
	assert.Equal(t, int64(1), status.ProcessedTotal)
}

func TestIngestDedupSkipsAnalyzer(t *testing.T) {
	rec := &fakeRecorder{}
	analyzer := &mapAnalyzer{result: map[string]any{"summary": "first frame"}}
	p := startPipeline(t, Config{DedupMaxDistance: 3}, rec, nil, analyzer)

	img := imageB64(t, false)
	first := p.Ingest(context.Background(), IngestRequest{SessionID: "s1", ImageBase64: img, MIME: "image/png"})
	require.True(t, first.Success)
	assert.False(t, first.Dedup)

	second := p.Ingest(context.Background(), IngestRequest{SessionID: "s1", ImageBase64: img, MIME: "image/png"})
	require.True(t, second.Success)
	assert.True(t, second.Dedup)
	assert.Equal(t, "deduplicated frame", second.Summary)
	assert.Equal(t, int32(1), analyzer.calls.Load())
}

func TestIngestBackpressureReject(t *testing.T) {
	rec := &fakeRecorder{}
	analyzer := newBlockingAnalyzer()
	p := startPipeline(t, Config{MaxQueueSize: 1, Workers: 1, OverflowPolicy: OverflowReject}, rec, nil, analyzer)

	ctx := context.Background()
	imgA, imgB := imageB64(t, false), imageB64(t, true)
	firstDone := make(chan IngestResult, 1)
	go func() {
		firstDone <- p.Ingest(ctx, IngestRequest{SessionID: "s1", ImageBase64: imgA, MIME: "image/png"})
	}()
	<-analyzer.started

	secondDone := make(chan IngestResult, 1)
	go func() {
		secondDone <- p.Ingest(ctx, IngestRequest{SessionID: "s1", ImageBase64: imgB, MIME: "image/png"})
	}()
	require.Eventually(t, func() bool { return p.Status().Depth == 1 }, time.Second, 5*time.Millisecond)

	third := p.Ingest(ctx, IngestRequest{SessionID: "s1", ImageBase64: imgB, MIME: "image/png"})
	assert.False(t, third.Success)
	assert.Equal(t, ErrCodeQueueFull, third.ErrorCode)
	assert.GreaterOrEqual(t, p.Status().RejectedTotal, int64(1))

	close(analyzer.release)
	assert.True(t, (<-firstDone).Success)
	assert.True(t, (<-secondDone).Success)
}

func TestIngestOverflowDropOldest(t *testing.T) {
	rec := &fakeRecorder{}
	analyzer := newBlockingAnalyzer()
	p := startPipeline(t, Config{MaxQueueSize: 1, Workers: 1, OverflowPolicy: OverflowDropOldest}, rec, nil, analyzer)

	ctx := context.Background()
	imgA, imgB := imageB64(t, false), imageB64(t, true)
	firstDone := make(chan IngestResult, 1)
	go func() {
		firstDone <- p.Ingest(ctx, IngestRequest{SessionID: "s1", ImageBase64: imgA, MIME: "image/png"})
	}()
	<-analyzer.started

	secondDone := make(chan IngestResult, 1)
	go func() {
		secondDone <- p.Ingest(ctx, IngestRequest{SessionID: "s1", ImageBase64: imgB, MIME: "image/png"})
	}()
	require.Eventually(t, func() bool { return p.Status().Depth == 1 }, time.Second, 5*time.Millisecond)

	thirdDone := make(chan IngestResult, 1)
	go func() {
		thirdDone <- p.Ingest(ctx, IngestRequest{SessionID: "s1", ImageBase64: imgB, MIME: "image/png"})
	}()

	second := <-secondDone
	assert.False(t, second.Success)
	assert.Equal(t, ErrCodeQueueDropped, second.ErrorCode)
	assert.Equal(t, int64(1), p.Status().DroppedTotal)

	close(analyzer.release)
	assert.True(t, (<-firstDone).Success)
	assert.True(t, (<-thirdDone).Success)
}

func TestIngestOverflowWaitTimesOut(t *testing.T) {
	rec := &fakeRecorder{}
	analyzer := newBlockingAnalyzer()
	p := startPipeline(t, Config{
		MaxQueueSize:   1,
		Workers:        1,
		OverflowPolicy: OverflowWait,
		EnqueueTimeout: 50 * time.Millisecond,
	}, rec, nil, analyzer)

	ctx := context.Background()
	imgA, imgB := imageB64(t, false), imageB64(t, true)
	firstDone := make(chan IngestResult, 1)
	go func() {
		firstDone <- p.Ingest(ctx, IngestRequest{SessionID: "s1", ImageBase64: imgA, MIME: "image/png"})
	}()
	<-analyzer.started

	secondDone := make(chan IngestResult, 1)
	go func() {
		secondDone <- p.Ingest(ctx, IngestRequest{SessionID: "s1", ImageBase64: imgB, MIME: "image/png"})
	}()
	require.Eventually(t, func() bool { return p.Status().Depth == 1 }, time.Second, 5*time.Millisecond)

	third := p.Ingest(ctx, IngestRequest{SessionID: "s1", ImageBase64: imgB, MIME: "image/png"})
	assert.False(t, third.Success)
	assert.Equal(t, ErrCodeQueueFull, third.ErrorCode)

	close(analyzer.release)
	assert.True(t, (<-firstDone).Success)
	assert.True(t, (<-secondDone).Success)
}

func TestIngestValidation(t *testing.T) {
	rec := &fakeRecorder{}
	p := startPipeline(t, Config{}, rec, nil, nil)

	res := p.Ingest(context.Background(), IngestRequest{ImageBase64: "aGk="})
	assert.Equal(t, ErrCodeBadRequest, res.ErrorCode)

	res = p.Ingest(context.Background(), IngestRequest{SessionID: "s1"})
	assert.Equal(t, ErrCodeBadRequest, res.ErrorCode)

	res = p.Ingest(context.Background(), IngestRequest{SessionID: "s1", ImageBase64: "!!not-base64!!"})
	assert.False(t, res.Success)
	assert.Equal(t, ErrCodeBadImage, res.ErrorCode)
}

func TestIngestAfterStop(t *testing.T) {
	p := NewPipeline(Config{}, &fakeRecorder{}, nil, nil, nil, nil)
	p.Start(context.Background())
	p.Stop()

	res := p.Ingest(context.Background(), IngestRequest{SessionID: "s1", ImageBase64: "aGk="})
	assert.Equal(t, ErrCodeShuttingDown, res.ErrorCode)
}

func TestStopReleasesBlockedIngest(t *testing.T) {
	rec := &fakeRecorder{}
	analyzer := newBlockingAnalyzer()
	p := startPipeline(t, Config{
		MaxQueueSize:   1,
		Workers:        1,
		OverflowPolicy: OverflowWait,
		EnqueueTimeout: time.Minute,
	}, rec, nil, analyzer)

	ctx := context.Background()
	imgA, imgB := imageB64(t, false), imageB64(t, true)
	firstDone := make(chan IngestResult, 1)
	go func() {
		firstDone <- p.Ingest(ctx, IngestRequest{SessionID: "s1", ImageBase64: imgA, MIME: "image/png"})
	}()
	<-analyzer.started

	secondDone := make(chan IngestResult, 1)
	go func() {
		secondDone <- p.Ingest(ctx, IngestRequest{SessionID: "s1", ImageBase64: imgB, MIME: "image/png"})
	}()
	require.Eventually(t, func() bool { return p.Status().Depth == 1 }, time.Second, 5*time.Millisecond)

	// Third caller parks inside the wait-policy enqueue with the queue full.
	thirdDone := make(chan IngestResult, 1)
	go func() {
		thirdDone <- p.Ingest(ctx, IngestRequest{SessionID: "s1", ImageBase64: imgB, MIME: "image/png"})
	}()
	time.Sleep(20 * time.Millisecond)

	stopDone := make(chan struct{})
	go func() {
		p.Stop()
		close(stopDone)
	}()

	select {
	case third := <-thirdDone:
		assert.False(t, third.Success)
		assert.Equal(t, ErrCodeShuttingDown, third.ErrorCode)
	case <-time.After(time.Second):
		t.Fatal("blocked ingest was not released by Stop")
	}

	// Queued work still drains before Stop returns.
	close(analyzer.release)
	assert.True(t, (<-firstDone).Success)
	assert.True(t, (<-secondDone).Success)
	select {
	case <-stopDone:
	case <-time.After(time.Second):
		t.Fatal("Stop did not return after the queue drained")
	}
}

// slowHashRecorder widens the gap between the recent-hash read and the row
// write, the window where two workers could both miss a duplicate.
type slowHashRecorder struct {
	*fakeRecorder
	delay time.Duration
}

func (s *slowHashRecorder) RecentImageHashes(ctx context.Context, sessionID string, limit int) ([]string, error) {
	time.Sleep(s.delay)
	return s.fakeRecorder.RecentImageHashes(ctx, sessionID, limit)
}

func TestConcurrentIdenticalFramesAnalyzeOnce(t *testing.T) {
	rec := &slowHashRecorder{fakeRecorder: &fakeRecorder{}, delay: 30 * time.Millisecond}
	analyzer := &mapAnalyzer{result: map[string]any{"summary": "same frame"}}
	p := startPipeline(t, Config{Workers: 2, DedupMaxDistance: 3}, rec, nil, analyzer)

	img := imageB64(t, false)
	results := make(chan IngestResult, 2)
	for i := 0; i < 2; i++ {
		go func() {
			results <- p.Ingest(context.Background(), IngestRequest{SessionID: "s1", ImageBase64: img, MIME: "image/png"})
		}()
	}

	dedups := 0
	for i := 0; i < 2; i++ {
		res := <-results
		require.True(t, res.Success, "ingest failed: %s", res.Error)
		if res.Dedup {
			dedups++
		}
	}
	assert.Equal(t, 1, dedups)
	assert.Equal(t, int32(1), analyzer.calls.Load())
}
