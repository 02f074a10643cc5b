package lifelog

import (
	"context"
	"encoding/base64"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/opencane/edged/pkg/store"
	"github.com/opencane/edged/pkg/vectorindex"
)

// Overflow policies for a full ingest queue.
const (
	OverflowReject     = "reject"
	OverflowWait       = "wait"
	OverflowDropOldest = "drop_oldest"
)

// Error codes surfaced on rejected ingest requests.
const (
	ErrCodeQueueFull    = "queue_full"
	ErrCodeQueueDropped = "queue_dropped"
	ErrCodeBadRequest   = "bad_request"
	ErrCodeBadImage     = "bad_image"
	ErrCodeStoreError   = "store_error"
	ErrCodeShuttingDown = "shutting_down"
)

// Recorder is the slice of the store the pipeline writes through.
type Recorder interface {
	RecentImageHashes(ctx context.Context, sessionID string, limit int) ([]string, error)
	SaveImage(ctx context.Context, img store.Image) (string, error)
	MarkImageURIDeleted(ctx context.Context, imageURI string) (int, error)
	SaveContext(ctx context.Context, cr store.ContextRow) (string, error)
	AppendEvent(ctx context.Context, ev store.Event) (string, error)
}

// Config sizes the ingest queue and tunes the dedup gate.
type Config struct {
	MaxQueueSize     int
	Workers          int
	OverflowPolicy   string
	EnqueueTimeout   time.Duration
	DedupMaxDistance int
	RecentHashLimit  int
}

func (c Config) withDefaults() Config {
	if c.MaxQueueSize < 1 {
		c.MaxQueueSize = 16
	}
	if c.Workers < 1 {
		c.Workers = 2
	}
	switch c.OverflowPolicy {
	case OverflowReject, OverflowWait, OverflowDropOldest:
	default:
		c.OverflowPolicy = OverflowReject
	}
	if c.EnqueueTimeout <= 0 {
		c.EnqueueTimeout = 2 * time.Second
	}
	if c.DedupMaxDistance < 0 {
		c.DedupMaxDistance = 0
	}
	if c.RecentHashLimit <= 0 {
		c.RecentHashLimit = 50
	}
	return c
}

// IngestRequest is one image submitted for analysis.
type IngestRequest struct {
	SessionID   string
	DeviceID    string
	ImageBase64 string
	Question    string
	MIME        string
	Metadata    map[string]any
	TSMS        int64
}

// IngestResult is the caller-visible outcome of one ingest.
type IngestResult struct {
	Success           bool           `json:"success"`
	SessionID         string         `json:"session_id,omitempty"`
	ImageID           string         `json:"image_id,omitempty"`
	Dedup             bool           `json:"dedup"`
	Summary           string         `json:"summary,omitempty"`
	StructuredContext map[string]any `json:"structured_context,omitempty"`
	ImageURI          string         `json:"image_uri,omitempty"`
	TSMS              int64          `json:"ts,omitempty"`
	Error             string         `json:"error,omitempty"`
	ErrorCode         string         `json:"error_code,omitempty"`
}

// QueueStatus is a point-in-time snapshot of the ingest queue.
type QueueStatus struct {
	Policy         string  `json:"policy"`
	Capacity       int     `json:"capacity"`
	Workers        int     `json:"workers"`
	Depth          int     `json:"depth"`
	Utilization    float64 `json:"utilization"`
	InFlight       int     `json:"in_flight"`
	MaxDepthSeen   int     `json:"max_depth_seen"`
	EnqueuedTotal  int64   `json:"enqueued_total"`
	ProcessedTotal int64   `json:"processed_total"`
	FailedTotal    int64   `json:"failed_total"`
	RejectedTotal  int64   `json:"rejected_total"`
	DroppedTotal   int64   `json:"dropped_total"`
	AvgLatencyMS   float64 `json:"avg_latency_ms"`
}

type ingestJob struct {
	req    IngestRequest
	result chan IngestResult
}

// Pipeline runs the bounded ingest queue: dedup, asset persistence,
// analysis, context recording, and vector indexing.
type Pipeline struct {
	cfg      Config
	recorder Recorder
	index    vectorindex.Index
	analyzer Analyzer
	assets   *AssetStore
	logger   *slog.Logger

	queue chan *ingestJob
	done  chan struct{}
	wg    sync.WaitGroup

	// sendMu fences producers out of the queue while Stop closes it.
	// Producers hold the read side for the duration of one enqueue attempt.
	sendMu sync.RWMutex

	// claimMu guards claims; each entry serializes the dedup
	// check-and-claim window for one session so identical frames on two
	// workers cannot both miss the recent-hash window.
	claimMu sync.Mutex
	claims  map[string]*sync.Mutex

	mu             sync.Mutex
	closed         bool
	inFlight       int
	maxDepthSeen   int
	enqueuedTotal  int64
	processedTotal int64
	failedTotal    int64
	rejectedTotal  int64
	droppedTotal   int64
	latencyTotalMS float64
	latencySamples int64
}

// NewPipeline wires the pipeline. index, analyzer, and assets may be nil:
// without an index nothing is indexed, without an analyzer contexts carry
// defaults only, without an asset store images get inline URIs.
func NewPipeline(cfg Config, recorder Recorder, index vectorindex.Index, analyzer Analyzer, assets *AssetStore, logger *slog.Logger) *Pipeline {
	cfg = cfg.withDefaults()
	if logger == nil {
		logger = slog.Default()
	}
	return &Pipeline{
		cfg:      cfg,
		recorder: recorder,
		index:    index,
		analyzer: analyzer,
		assets:   assets,
		logger:   logger.With("component", "lifelog.pipeline"),
		queue:    make(chan *ingestJob, cfg.MaxQueueSize),
		done:     make(chan struct{}),
		claims:   make(map[string]*sync.Mutex),
	}
}

// Start launches the worker pool. Workers exit when ctx is canceled or the
// queue closes.
func (p *Pipeline) Start(ctx context.Context) {
	for i := 0; i < p.cfg.Workers; i++ {
		p.wg.Add(1)
		go p.worker(ctx)
	}
	p.logger.Info("ingest pipeline started",
		"workers", p.cfg.Workers,
		"max_queue_size", p.cfg.MaxQueueSize,
		"overflow_policy", p.cfg.OverflowPolicy)
}

// Stop rejects new submissions, waits for queued jobs to drain, and stops
// the workers. Producers blocked in an enqueue are released via done and
// answered with shutting_down; the queue itself is only closed once every
// producer has left the send path, so Ingest can never hit a closed channel.
func (p *Pipeline) Stop() {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return
	}
	p.closed = true
	p.mu.Unlock()

	close(p.done)
	p.sendMu.Lock()
	close(p.queue)
	p.sendMu.Unlock()
	p.wg.Wait()
	p.logger.Info("ingest pipeline stopped")
}

// Ingest submits one image and blocks until it is processed or rejected by
// the overflow policy.
func (p *Pipeline) Ingest(ctx context.Context, req IngestRequest) IngestResult {
	if req.SessionID == "" {
		return IngestResult{Error: "session_id is required", ErrorCode: ErrCodeBadRequest}
	}
	if strings.TrimSpace(req.ImageBase64) == "" {
		return IngestResult{SessionID: req.SessionID, Error: "image_base64 is required", ErrorCode: ErrCodeBadRequest}
	}
	if req.TSMS == 0 {
		req.TSMS = time.Now().UnixMilli()
	}
	if req.MIME == "" {
		req.MIME = "image/jpeg"
	}

	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return IngestResult{SessionID: req.SessionID, Error: "pipeline is shutting down", ErrorCode: ErrCodeShuttingDown}
	}
	p.mu.Unlock()

	job := &ingestJob{req: req, result: make(chan IngestResult, 1)}
	if rejected, ok := p.enqueue(ctx, job); !ok {
		return rejected
	}

	select {
	case res := <-job.result:
		return res
	case <-ctx.Done():
		return IngestResult{SessionID: req.SessionID, Error: ctx.Err().Error(), ErrorCode: "canceled"}
	}
}

// enqueue applies the overflow policy. The second return is false when the
// job was not queued; the first then carries the rejection result. The read
// side of sendMu is held across the attempt so Stop cannot close the queue
// under a sender.
func (p *Pipeline) enqueue(ctx context.Context, job *ingestJob) (IngestResult, bool) {
	queueFull := IngestResult{
		SessionID: job.req.SessionID,
		Error:     "ingest queue is full",
		ErrorCode: ErrCodeQueueFull,
	}
	shuttingDown := IngestResult{
		SessionID: job.req.SessionID,
		Error:     "pipeline is shutting down",
		ErrorCode: ErrCodeShuttingDown,
	}

	p.sendMu.RLock()
	defer p.sendMu.RUnlock()
	select {
	case <-p.done:
		return shuttingDown, false
	default:
	}

	switch p.cfg.OverflowPolicy {
	case OverflowWait:
		select {
		case p.queue <- job:
		case <-p.done:
			return shuttingDown, false
		case <-time.After(p.cfg.EnqueueTimeout):
			p.countRejected()
			return queueFull, false
		case <-ctx.Done():
			p.countRejected()
			return queueFull, false
		}

	case OverflowDropOldest:
		for {
			select {
			case p.queue <- job:
			case <-p.done:
				return shuttingDown, false
			default:
				select {
				case dropped := <-p.queue:
					p.countDropped()
					dropped.result <- IngestResult{
						SessionID: dropped.req.SessionID,
						Error:     "ingest queue dropped by overflow policy",
						ErrorCode: ErrCodeQueueDropped,
					}
				default:
				}
				continue
			}
			break
		}

	default: // reject
		select {
		case p.queue <- job:
		case <-p.done:
			return shuttingDown, false
		default:
			p.countRejected()
			return queueFull, false
		}
	}

	p.mu.Lock()
	p.enqueuedTotal++
	if depth := len(p.queue); depth > p.maxDepthSeen {
		p.maxDepthSeen = depth
	}
	p.mu.Unlock()
	return IngestResult{}, true
}

func (p *Pipeline) worker(ctx context.Context) {
	defer p.wg.Done()
	for {
		select {
		case <-ctx.Done():
			return
		case job, ok := <-p.queue:
			if !ok {
				return
			}
			p.mu.Lock()
			p.inFlight++
			p.mu.Unlock()

			start := time.Now()
			res := p.process(ctx, job.req)

			p.mu.Lock()
			p.inFlight--
			if res.Success {
				p.processedTotal++
			} else {
				p.failedTotal++
			}
			p.latencyTotalMS += float64(time.Since(start).Milliseconds())
			p.latencySamples++
			p.mu.Unlock()

			job.result <- res
		}
	}
}

func (p *Pipeline) process(ctx context.Context, req IngestRequest) IngestResult {
	imageBytes, err := decodeBase64(req.ImageBase64)
	if err != nil {
		return IngestResult{SessionID: req.SessionID, Error: "invalid image_base64", ErrorCode: ErrCodeBadImage}
	}

	imageHash := ComputeImageHash(imageBytes)

	imageURI := "inline:" + req.MIME + ";hash=" + imageHash
	var deletedURIs []string
	if p.assets != nil {
		uri, deleted, err := p.assets.Persist(req.SessionID, imageBytes, req.MIME, imageHash, req.TSMS)
		if err != nil {
			p.logger.Warn("failed to persist image asset", "session_id", req.SessionID, "error", err)
		} else {
			imageURI = uri
			deletedURIs = deleted
		}
	}

	// The recent-hash read and the row write form one claim: without the
	// session lock two workers carrying identical frames can both miss the
	// window and both run the analyzer.
	claim := p.sessionClaim(req.SessionID)
	claim.Lock()
	recentHashes, err := p.recorder.RecentImageHashes(ctx, req.SessionID, p.cfg.RecentHashLimit)
	if err != nil {
		p.logger.Warn("failed to load recent image hashes", "session_id", req.SessionID, "error", err)
	}
	isDedup := IsNearDuplicate(imageHash, recentHashes, p.cfg.DedupMaxDistance)

	imageID, err := p.recorder.SaveImage(ctx, store.Image{
		SessionID:   req.SessionID,
		DeviceID:    req.DeviceID,
		ImageURI:    imageURI,
		DHash:       imageHash,
		IsDedup:     isDedup,
		ContentType: req.MIME,
		SizeBytes:   len(imageBytes),
		TSMS:        req.TSMS,
	})
	claim.Unlock()
	if err != nil {
		return IngestResult{SessionID: req.SessionID, Error: err.Error(), ErrorCode: ErrCodeStoreError}
	}
	for _, uri := range deletedURIs {
		if _, err := p.recorder.MarkImageURIDeleted(ctx, uri); err != nil {
			p.logger.Warn("failed to mark evicted asset deleted", "image_uri", uri, "error", err)
		}
	}

	analysis := p.analyze(ctx, req, imageBytes, isDedup)
	summary := strings.TrimSpace(analysis.Summary)
	if summary == "" {
		summary = "analysis pending"
	}
	title := summary
	if idx := strings.Index(title, "."); idx > 0 {
		title = title[:idx]
	}
	if len(title) > 80 {
		title = title[:80]
	}

	if _, err := p.recorder.SaveContext(ctx, store.ContextRow{
		ImageID:           imageID,
		SessionID:         req.SessionID,
		SemanticTitle:     title,
		SemanticSummary:   summary,
		Objects:           analysis.Objects,
		OCR:               analysis.OCR,
		RiskHints:         analysis.RiskHints,
		ActionableSummary: analysis.ActionableSummary,
		RiskLevel:         analysis.RiskLevel,
		RiskScore:         analysis.RiskScore,
		Confidence:        analysis.Confidence,
		CreatedAtMS:       req.TSMS,
	}); err != nil {
		p.logger.Warn("failed to save context row", "image_id", imageID, "error", err)
	}

	p.indexContext(ctx, req, imageID, title, summary, analysis, isDedup)

	structured := map[string]any{
		"summary":            summary,
		"actionable_summary": analysis.ActionableSummary,
		"objects":            analysis.Objects,
		"ocr":                analysis.OCR,
		"risk_hints":         analysis.RiskHints,
		"risk_level":         analysis.RiskLevel,
		"risk_score":         analysis.RiskScore,
		"confidence":         analysis.Confidence,
	}
	if _, err := p.recorder.AppendEvent(ctx, store.Event{
		SessionID: req.SessionID,
		DeviceID:  req.DeviceID,
		EventType: "image_ingested",
		Payload: map[string]any{
			"image_id":           imageID,
			"dedup":              isDedup,
			"summary":            summary,
			"question":           req.Question,
			"image_uri":          imageURI,
			"structured_context": structured,
		},
		Text:       summary,
		RiskLevel:  analysis.RiskLevel,
		Confidence: analysis.Confidence,
		TSMS:       req.TSMS,
	}); err != nil {
		p.logger.Warn("failed to append image_ingested event", "image_id", imageID, "error", err)
	}

	return IngestResult{
		Success:           true,
		SessionID:         req.SessionID,
		ImageID:           imageID,
		Dedup:             isDedup,
		Summary:           summary,
		StructuredContext: structured,
		ImageURI:          imageURI,
		TSMS:              req.TSMS,
	}
}

// analyze returns metadata-seeded defaults for deduplicated frames and runs
// the analyzer otherwise. Analyzer failures degrade to the defaults.
func (p *Pipeline) analyze(ctx context.Context, req IngestRequest, imageBytes []byte, isDedup bool) Analysis {
	defaults := Analysis{
		Summary:    "",
		RiskLevel:  "P3",
		RiskScore:  0,
		Confidence: 0,
	}
	if v := strings.TrimSpace(asString(req.Metadata["risk_level"])); v != "" {
		defaults.RiskLevel = v
	}
	if v, ok := asFloat(req.Metadata["risk_score"]); ok {
		defaults.RiskScore = v
	}
	if v, ok := asFloat(req.Metadata["confidence"]); ok {
		defaults.Confidence = v
	}

	if isDedup {
		defaults.Summary = "deduplicated frame"
		return defaults
	}
	if p.analyzer == nil {
		return defaults
	}

	raw, err := p.analyzer.Analyze(ctx, AnalyzeRequest{
		SessionID:  req.SessionID,
		ImageBytes: imageBytes,
		MIME:       req.MIME,
		Question:   req.Question,
	})
	if err != nil {
		p.logger.Warn("image analysis failed", "session_id", req.SessionID, "error", err)
		return defaults
	}
	return normalizeAnalysis(raw, defaults)
}

func (p *Pipeline) indexContext(ctx context.Context, req IngestRequest, imageID, title, summary string, analysis Analysis, isDedup bool) {
	if p.index == nil {
		return
	}
	text := strings.TrimSpace(strings.Join([]string{
		title,
		summary,
		strings.Join(analysis.Objects, " "),
		strings.Join(analysis.OCR, " "),
		strings.Join(analysis.RiskHints, " "),
	}, " "))
	err := p.index.Add(ctx, vectorindex.Document{
		ID:   imageID,
		Text: text,
		Metadata: map[string]any{
			"session_id": req.SessionID,
			"image_id":   imageID,
			"ts":         req.TSMS,
			"dedup":      isDedup,
			"risk_level": analysis.RiskLevel,
		},
	})
	if err != nil {
		p.logger.Warn("failed to index context", "image_id", imageID, "error", err)
	}
}

// Status returns the queue metrics snapshot.
func (p *Pipeline) Status() QueueStatus {
	p.mu.Lock()
	defer p.mu.Unlock()

	depth := len(p.queue)
	status := QueueStatus{
		Policy:         p.cfg.OverflowPolicy,
		Capacity:       p.cfg.MaxQueueSize,
		Workers:        p.cfg.Workers,
		Depth:          depth,
		Utilization:    float64(depth) / float64(p.cfg.MaxQueueSize),
		InFlight:       p.inFlight,
		MaxDepthSeen:   p.maxDepthSeen,
		EnqueuedTotal:  p.enqueuedTotal,
		ProcessedTotal: p.processedTotal,
		FailedTotal:    p.failedTotal,
		RejectedTotal:  p.rejectedTotal,
		DroppedTotal:   p.droppedTotal,
	}
	if p.latencySamples > 0 {
		status.AvgLatencyMS = p.latencyTotalMS / float64(p.latencySamples)
	}
	return status
}

// sessionClaim returns the dedup claim lock for one session, creating it on
// first use. Entries are never removed; the map is bounded by the number of
// sessions seen in one process lifetime.
func (p *Pipeline) sessionClaim(sessionID string) *sync.Mutex {
	p.claimMu.Lock()
	defer p.claimMu.Unlock()
	lock, ok := p.claims[sessionID]
	if !ok {
		lock = &sync.Mutex{}
		p.claims[sessionID] = lock
	}
	return lock
}

func (p *Pipeline) countRejected() {
	p.mu.Lock()
	p.rejectedTotal++
	p.mu.Unlock()
}

func (p *Pipeline) countDropped() {
	p.mu.Lock()
	p.droppedTotal++
	p.mu.Unlock()
}

func decodeBase64(value string) ([]byte, error) {
	data, err := base64.StdEncoding.DecodeString(value)
	if err == nil {
		return data, nil
	}
	return base64.RawStdEncoding.DecodeString(strings.TrimRight(value, "="))
}
