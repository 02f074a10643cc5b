package runtime

import (
	"context"
	"encoding/base64"
	"log/slog"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/opencane/edged/pkg/protocol"
)

// CaptureConfig tunes the per-session audio buffer.
type CaptureConfig struct {
	// MaxBytes caps buffered audio per capture. Default 8 MiB.
	MaxBytes int
	// EnableVAD gates the prebuffer/silence logic. Default true.
	EnableVAD *bool
	// PrebufferChunks is the pre-speech window kept before voice activity.
	// Default 3; negative disables the prebuffer.
	PrebufferChunks int
	// JitterWindow is how many non-contiguous chunks may stay pending before
	// the oldest is force-released. Default 8, floor 1.
	JitterWindow int
	// VADSilenceChunks is how many trailing silence chunks end a voice
	// segment. Default 6, floor 1.
	VADSilenceChunks int
}

func (c CaptureConfig) withDefaults() CaptureConfig {
	if c.MaxBytes <= 0 {
		c.MaxBytes = 8 * 1024 * 1024
	}
	if c.EnableVAD == nil {
		v := true
		c.EnableVAD = &v
	}
	if c.PrebufferChunks == 0 {
		c.PrebufferChunks = 3
	}
	if c.PrebufferChunks < 0 {
		c.PrebufferChunks = 0
	}
	if c.JitterWindow < 1 {
		c.JitterWindow = 8
	}
	if c.VADSilenceChunks < 1 {
		c.VADSilenceChunks = 6
	}
	return c
}

// AppendResult reports the effect of one audio_chunk.
type AppendResult struct {
	// Partial is the transcript composed from text chunks seen so far.
	Partial string
	// OutOfOrder is set when the chunk arrived behind a newer one.
	OutOfOrder bool
}

type captureKey struct {
	deviceID  string
	sessionID string
}

const noOrder = int64(-1)

// audioCapture is the buffer state for one (device, session) capture.
type audioCapture struct {
	started         bool
	orderedAudio    map[int64][]byte
	orderedText     map[int64]string
	pendingAudio    map[int64][]byte
	prebuffer       []prebufferedChunk
	totalAudioBytes int
	nextLocalOrder  int64
	nextExpected    int64
	maxOrderSeen    int64
	vadActive       bool
	silenceChunks   int
	speechChunks    int
}

type prebufferedChunk struct {
	order int64
	data  []byte
}

func newAudioCapture() *audioCapture {
	return &audioCapture{
		orderedAudio:   make(map[int64][]byte),
		orderedText:    make(map[int64]string),
		pendingAudio:   make(map[int64][]byte),
		nextLocalOrder: 1,
		nextExpected:   noOrder,
		maxOrderSeen:   noOrder,
	}
}

// CapturePipeline buffers audio and text chunks per session, re-sequences
// jittered chunks, applies device VAD hints, and produces the final
// transcript on listen_stop.
type CapturePipeline struct {
	cfg         CaptureConfig
	transcriber Transcriber
	logger      *slog.Logger

	mu       sync.Mutex
	captures map[captureKey]*audioCapture
}

// NewCapturePipeline builds a pipeline. transcriber may be nil; captures
// without text chunks then finalize to an empty transcript.
func NewCapturePipeline(cfg CaptureConfig, transcriber Transcriber, logger *slog.Logger) *CapturePipeline {
	if logger == nil {
		logger = slog.Default()
	}
	return &CapturePipeline{
		cfg:         cfg.withDefaults(),
		transcriber: transcriber,
		logger:      logger.With("component", "runtime.capture"),
		captures:    make(map[captureKey]*audioCapture),
	}
}

// StartCapture resets the buffer for the session and marks it live.
func (p *CapturePipeline) StartCapture(deviceID, sessionID string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	buf := newAudioCapture()
	buf.started = true
	p.captures[captureKey{deviceID, sessionID}] = buf
}

// AppendChunk folds one audio_chunk payload into the session buffer.
// eventSeq is the envelope sequence, or negative when unknown; it is the
// ordering fallback when the payload carries no chunk index.
func (p *CapturePipeline) AppendChunk(deviceID, sessionID string, payload map[string]any, eventSeq int64) AppendResult {
	p.mu.Lock()
	defer p.mu.Unlock()

	key := captureKey{deviceID, sessionID}
	buf := p.captures[key]
	if buf == nil {
		buf = newAudioCapture()
		p.captures[key] = buf
	}
	buf.started = true

	order := resolveChunkOrder(payload, eventSeq, buf)
	var res AppendResult
	if buf.maxOrderSeen != noOrder && order < buf.maxOrderSeen {
		res.OutOfOrder = true
	}
	if order > buf.maxOrderSeen {
		buf.maxOrderSeen = order
	}

	if piece := strings.TrimSpace(protocol.PayloadString(payload, "text", "transcript")); piece != "" {
		textOrder := order
		if existing, ok := buf.orderedText[textOrder]; ok && existing != piece {
			textOrder = nextFreeTextOrder(textOrder, buf)
		}
		buf.orderedText[textOrder] = piece
	}

	if encoded := protocol.PayloadString(payload, "audio_b64", "audio"); encoded != "" {
		chunk := decodeAudio(encoded)
		if chunk == nil {
			p.logger.Debug("invalid base64 audio payload ignored", "device_id", deviceID)
		} else if len(chunk) > 0 && !audioOrderExists(buf, order) {
			p.appendAudio(buf, order, chunk, resolveSpeechFlag(payload))
		}
	}

	res.Partial = composeText(buf)
	return res
}

// FinalizeCapture returns the turn transcript: an explicit payload
// transcript wins, then buffered text chunks, then the transcriber fallback
// over the joined audio. The capture is consumed.
func (p *CapturePipeline) FinalizeCapture(ctx context.Context, deviceID, sessionID string, payload map[string]any) string {
	if explicit := strings.TrimSpace(protocol.PayloadString(payload, "transcript", "text")); explicit != "" {
		p.ResetCapture(deviceID, sessionID)
		return explicit
	}

	p.mu.Lock()
	key := captureKey{deviceID, sessionID}
	buf := p.captures[key]
	delete(p.captures, key)
	if buf == nil {
		p.mu.Unlock()
		return ""
	}
	p.flushPrebuffer(buf)
	p.flushPendingAudio(buf, true)
	transcript := composeText(buf)
	var audio []byte
	if transcript == "" {
		audio = joinAudio(buf)
	}
	p.mu.Unlock()

	if transcript != "" {
		return transcript
	}
	if len(audio) == 0 || p.transcriber == nil {
		return ""
	}
	text, err := p.transcriber.Transcribe(ctx, audio)
	if err != nil {
		p.logger.Warn("audio transcription failed", "device_id", deviceID, "error", err)
		return ""
	}
	return strings.TrimSpace(text)
}

// PartialTranscript composes the text chunks seen so far, shortened to
// maxChars runes.
func (p *CapturePipeline) PartialTranscript(deviceID, sessionID string, maxChars int) string {
	p.mu.Lock()
	buf := p.captures[captureKey{deviceID, sessionID}]
	text := ""
	if buf != nil {
		text = composeText(buf)
	}
	p.mu.Unlock()
	return shorten(text, maxChars)
}

// ResetCapture discards any buffered state for the session.
func (p *CapturePipeline) ResetCapture(deviceID, sessionID string) {
	p.mu.Lock()
	delete(p.captures, captureKey{deviceID, sessionID})
	p.mu.Unlock()
}

func (p *CapturePipeline) appendAudio(buf *audioCapture, order int64, chunk []byte, speech *bool) {
	if buf.totalAudioBytes+len(chunk) > p.cfg.MaxBytes {
		p.logger.Warn("audio buffer reached limit, dropping chunk", "limit_bytes", p.cfg.MaxBytes)
		return
	}

	if !*p.cfg.EnableVAD {
		p.storePendingAudio(buf, order, chunk)
		p.flushPendingAudio(buf, false)
		return
	}

	// Sources with no VAD hint are treated as speech.
	isSpeech := true
	if speech != nil {
		isSpeech = *speech
	}

	if isSpeech {
		buf.vadActive = true
		buf.silenceChunks = 0
		buf.speechChunks++
		p.flushPrebuffer(buf)
		p.storePendingAudio(buf, order, chunk)
		p.flushPendingAudio(buf, false)
		return
	}

	if buf.vadActive {
		// Trailing silence is kept so the segment does not end abruptly.
		buf.silenceChunks++
		p.storePendingAudio(buf, order, chunk)
		p.flushPendingAudio(buf, false)
		if buf.silenceChunks >= p.cfg.VADSilenceChunks {
			buf.vadActive = false
		}
		return
	}

	p.storePrebufferAudio(buf, order, chunk)
}

func (p *CapturePipeline) storePendingAudio(buf *audioCapture, order int64, chunk []byte) {
	if _, ok := buf.pendingAudio[order]; ok {
		return
	}
	if _, ok := buf.orderedAudio[order]; ok {
		return
	}
	buf.pendingAudio[order] = chunk
	buf.totalAudioBytes += len(chunk)
	if buf.nextExpected == noOrder {
		buf.nextExpected = minOrder(buf.pendingAudio)
	}
}

func (p *CapturePipeline) storePrebufferAudio(buf *audioCapture, order int64, chunk []byte) {
	if p.cfg.PrebufferChunks <= 0 {
		return
	}
	for _, pre := range buf.prebuffer {
		if pre.order == order {
			return
		}
	}
	buf.prebuffer = append(buf.prebuffer, prebufferedChunk{order: order, data: chunk})
	buf.totalAudioBytes += len(chunk)
	for len(buf.prebuffer) > p.cfg.PrebufferChunks {
		dropped := buf.prebuffer[0]
		buf.prebuffer = buf.prebuffer[1:]
		buf.totalAudioBytes -= len(dropped.data)
		if buf.totalAudioBytes < 0 {
			buf.totalAudioBytes = 0
		}
	}
}

func (p *CapturePipeline) flushPrebuffer(buf *audioCapture) {
	if len(buf.prebuffer) == 0 {
		return
	}
	sort.Slice(buf.prebuffer, func(i, j int) bool { return buf.prebuffer[i].order < buf.prebuffer[j].order })
	for _, pre := range buf.prebuffer {
		if _, ok := buf.pendingAudio[pre.order]; ok {
			continue
		}
		if _, ok := buf.orderedAudio[pre.order]; ok {
			continue
		}
		buf.pendingAudio[pre.order] = pre.data
		if buf.nextExpected == noOrder {
			buf.nextExpected = pre.order
		}
	}
	buf.prebuffer = nil
}

func (p *CapturePipeline) flushPendingAudio(buf *audioCapture, force bool) {
	if len(buf.pendingAudio) == 0 {
		return
	}
	if force {
		for order, chunk := range buf.pendingAudio {
			buf.orderedAudio[order] = chunk
		}
		buf.pendingAudio = make(map[int64][]byte)
		buf.nextExpected = noOrder
		return
	}

	if buf.nextExpected == noOrder {
		buf.nextExpected = minOrder(buf.pendingAudio)
	}
	for buf.nextExpected != noOrder {
		chunk, ok := buf.pendingAudio[buf.nextExpected]
		if !ok {
			break
		}
		buf.orderedAudio[buf.nextExpected] = chunk
		delete(buf.pendingAudio, buf.nextExpected)
		buf.nextExpected++
	}

	// Beyond the jitter window the oldest pending chunk is released even if
	// the gap never fills.
	for len(buf.pendingAudio) > p.cfg.JitterWindow {
		order := minOrder(buf.pendingAudio)
		buf.orderedAudio[order] = buf.pendingAudio[order]
		delete(buf.pendingAudio, order)
		if buf.nextExpected == noOrder || order+1 > buf.nextExpected {
			buf.nextExpected = order + 1
		}
	}
}

func resolveChunkOrder(payload map[string]any, eventSeq int64, buf *audioCapture) int64 {
	for _, key := range []string{"chunk_index", "chunk_idx", "frame_index", "index", "order", "timestamp"} {
		raw, ok := payload[key]
		if !ok {
			continue
		}
		value, ok := orderValue(raw)
		if !ok || value < 0 {
			continue
		}
		if value+1 > buf.nextLocalOrder {
			buf.nextLocalOrder = value + 1
		}
		return value
	}
	if eventSeq >= 0 {
		if eventSeq+1 > buf.nextLocalOrder {
			buf.nextLocalOrder = eventSeq + 1
		}
		return eventSeq
	}
	value := buf.nextLocalOrder
	buf.nextLocalOrder++
	return value
}

func orderValue(raw any) (int64, bool) {
	switch v := raw.(type) {
	case int:
		return int64(v), true
	case int32:
		return int64(v), true
	case int64:
		return v, true
	case float64:
		return int64(v), true
	case float32:
		return int64(v), true
	case string:
		n, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
		if err != nil {
			return 0, false
		}
		return n, true
	default:
		return 0, false
	}
}

func nextFreeTextOrder(order int64, buf *audioCapture) int64 {
	next := order
	if buf.nextLocalOrder > next {
		next = buf.nextLocalOrder
	}
	for {
		if _, ok := buf.orderedText[next]; !ok {
			break
		}
		next++
	}
	if next+1 > buf.nextLocalOrder {
		buf.nextLocalOrder = next + 1
	}
	return next
}

func composeText(buf *audioCapture) string {
	if len(buf.orderedText) == 0 {
		return ""
	}
	orders := make([]int64, 0, len(buf.orderedText))
	for order := range buf.orderedText {
		orders = append(orders, order)
	}
	sort.Slice(orders, func(i, j int) bool { return orders[i] < orders[j] })
	parts := make([]string, 0, len(orders))
	for _, order := range orders {
		if piece := strings.TrimSpace(buf.orderedText[order]); piece != "" {
			parts = append(parts, piece)
		}
	}
	return strings.TrimSpace(strings.Join(parts, " "))
}

func joinAudio(buf *audioCapture) []byte {
	if len(buf.orderedAudio) == 0 {
		return nil
	}
	orders := make([]int64, 0, len(buf.orderedAudio))
	total := 0
	for order, chunk := range buf.orderedAudio {
		orders = append(orders, order)
		total += len(chunk)
	}
	sort.Slice(orders, func(i, j int) bool { return orders[i] < orders[j] })
	out := make([]byte, 0, total)
	for _, order := range orders {
		out = append(out, buf.orderedAudio[order]...)
	}
	return out
}

func audioOrderExists(buf *audioCapture, order int64) bool {
	if _, ok := buf.orderedAudio[order]; ok {
		return true
	}
	if _, ok := buf.pendingAudio[order]; ok {
		return true
	}
	for _, pre := range buf.prebuffer {
		if pre.order == order {
			return true
		}
	}
	return false
}

func resolveSpeechFlag(payload map[string]any) *bool {
	for _, key := range []string{"is_speech", "speech", "vad_speech", "vad", "voice"} {
		raw, ok := payload[key]
		if !ok {
			continue
		}
		return boolHint(raw)
	}
	if strings.TrimSpace(protocol.PayloadString(payload, "text", "transcript")) != "" {
		v := true
		return &v
	}
	return nil
}

func boolHint(raw any) *bool {
	if raw == nil {
		return nil
	}
	if b, ok := raw.(bool); ok {
		return &b
	}
	switch strings.ToLower(strings.TrimSpace(toString(raw))) {
	case "1", "true", "yes", "on", "speech", "voice":
		v := true
		return &v
	case "0", "false", "no", "off", "silence", "noise":
		v := false
		return &v
	default:
		return nil
	}
}

func minOrder(chunks map[int64][]byte) int64 {
	min := noOrder
	for order := range chunks {
		if min == noOrder || order < min {
			min = order
		}
	}
	return min
}

func decodeAudio(encoded string) []byte {
	if data, err := base64.StdEncoding.DecodeString(encoded); err == nil {
		return data
	}
	if data, err := base64.RawStdEncoding.DecodeString(encoded); err == nil {
		return data
	}
	return nil
}
