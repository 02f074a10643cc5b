package runtime

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/opencane/edged/pkg/adapter"
	"github.com/opencane/edged/pkg/policy"
	"github.com/opencane/edged/pkg/protocol"
	"github.com/opencane/edged/pkg/session"
	"github.com/opencane/edged/pkg/store"
)

// Options wires a Runtime. Adapter and Sessions are required; every other
// collaborator degrades gracefully when nil (voice turns answer with
// fallbacks, lifelog rows are skipped, auth denies when enabled without a
// store).
type Options struct {
	Adapter     adapter.Adapter
	Sessions    *session.Manager
	Store       Store
	Safety      *policy.SafetyPolicy
	Interaction *policy.InteractionPolicy
	Agent       AgentLoop
	Tools       ToolSource
	Policies    PolicyResolver
	Tasks       TaskService
	Ingest      Ingestor
	Vision      VisionService
	TTS         TTSEngine
	Transcriber Transcriber
	Intent      IntentClassifier
	Masker      Masker
	Logger      *slog.Logger
	Config      Config
}

// Runtime owns one southbound adapter and supervises every device session
// riding on it.
type Runtime struct {
	adapter     adapter.Adapter
	sessions    *session.Manager
	store       Store
	safety      *policy.SafetyPolicy
	interaction *policy.InteractionPolicy
	agent       AgentLoop
	tools       ToolSource
	policies    PolicyResolver
	tasks       TaskService
	ingest      Ingestor
	vision      VisionService
	tts         TTSEngine
	intent      IntentClassifier
	masker      Masker
	logger      *slog.Logger
	cfg         Config

	capture *CapturePipeline
	metrics *Metrics
	nowMS   func() int64

	baseCtx context.Context
	cancel  context.CancelFunc
	wg      sync.WaitGroup
	turnWG  sync.WaitGroup

	mu      sync.Mutex
	running bool
	workers map[string]*sessionWorker

	partialMu sync.Mutex
	partials  map[captureKey]partialEntry

	policyMu              sync.Mutex
	safetyApplied         int64
	safetyDowngraded      int64
	interactionApplied    int64
	interactionSuppressed int64
}

type partialEntry struct {
	text string
	tsMS int64
}

// New validates the wiring and builds a stopped Runtime.
func New(opts Options) (*Runtime, error) {
	if opts.Adapter == nil {
		return nil, fmt.Errorf("adapter is required")
	}
	if opts.Sessions == nil {
		return nil, fmt.Errorf("session manager is required")
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	cfg := opts.Config.withDefaults()
	intent := opts.Intent
	if intent == nil {
		intent = &KeywordIntentClassifier{}
	}
	rt := &Runtime{
		adapter:     opts.Adapter,
		sessions:    opts.Sessions,
		store:       opts.Store,
		safety:      opts.Safety,
		interaction: opts.Interaction,
		agent:       opts.Agent,
		tools:       opts.Tools,
		policies:    opts.Policies,
		tasks:       opts.Tasks,
		ingest:      opts.Ingest,
		vision:      opts.Vision,
		tts:         opts.TTS,
		intent:      intent,
		masker:      opts.Masker,
		logger:      logger.With("component", "runtime"),
		cfg:         cfg,
		metrics:     newMetrics(protocol.NowMS()),
		nowMS:       protocol.NowMS,
		workers:     make(map[string]*sessionWorker),
		partials:    make(map[captureKey]partialEntry),
	}
	rt.capture = NewCapturePipeline(cfg.Capture, opts.Transcriber, logger)
	return rt, nil
}

// Metrics exposes the runtime counters.
func (rt *Runtime) Metrics() *Metrics { return rt.metrics }

// Start connects the adapter and launches the event and watchdog loops.
func (rt *Runtime) Start(ctx context.Context) error {
	rt.mu.Lock()
	if rt.running {
		rt.mu.Unlock()
		return fmt.Errorf("runtime already running")
	}
	rt.running = true
	rt.baseCtx, rt.cancel = context.WithCancel(context.Background())
	rt.mu.Unlock()

	if err := rt.adapter.Start(ctx); err != nil {
		rt.mu.Lock()
		rt.running = false
		rt.mu.Unlock()
		rt.cancel()
		return fmt.Errorf("start adapter %s: %w", rt.adapter.Name(), err)
	}

	rt.wg.Add(2)
	go rt.eventLoop()
	go rt.sweepLoop()

	rt.logger.Info("device runtime started",
		"adapter", rt.adapter.Name(),
		"transport", rt.adapter.Transport(),
		"tts_mode", rt.cfg.TTSMode,
		"no_heartbeat_timeout", rt.cfg.NoHeartbeatTimeout)
	return nil
}

// Stop closes every open session with reason "runtime_stop", stops the
// adapter, and waits for workers and in-flight turns to drain.
func (rt *Runtime) Stop(ctx context.Context) error {
	rt.mu.Lock()
	if !rt.running {
		rt.mu.Unlock()
		return nil
	}
	rt.running = false
	rt.mu.Unlock()

	for _, snap := range rt.sessions.AllStatus() {
		if snap.State != session.StateClosed {
			rt.closeSession(snap.DeviceID, snap.SessionID, "runtime_stop", "runtime-stop")
		}
	}

	rt.cancel()
	err := rt.adapter.Stop(ctx)

	rt.mu.Lock()
	for _, w := range rt.workers {
		w.stop()
	}
	rt.mu.Unlock()

	rt.wg.Wait()
	rt.turnWG.Wait()

	rt.partialMu.Lock()
	rt.partials = make(map[captureKey]partialEntry)
	rt.partialMu.Unlock()

	rt.logger.Info("device runtime stopped")
	if err != nil {
		return fmt.Errorf("stop adapter %s: %w", rt.adapter.Name(), err)
	}
	return nil
}

func (rt *Runtime) eventLoop() {
	defer rt.wg.Done()
	for {
		select {
		case <-rt.baseCtx.Done():
			return
		case env, ok := <-rt.adapter.Events():
			if !ok {
				return
			}
			rt.routeEvent(env)
		}
	}
}

// routeEvent hands the envelope to the device's worker. One worker per
// device keeps a device's events strictly ordered even while a turn for an
// earlier event is still running; different devices proceed in parallel.
func (rt *Runtime) routeEvent(env protocol.Envelope) {
	if err := env.Validate(); err != nil {
		rt.logger.Warn("invalid envelope dropped", "error", err, "device_id", env.DeviceID)
		return
	}
	if env.Direction != protocol.DirectionEvent {
		rt.logger.Warn("non-event envelope dropped", "direction", env.Direction, "type", env.Type)
		return
	}

	rt.mu.Lock()
	if !rt.running {
		rt.mu.Unlock()
		return
	}
	w := rt.workers[env.DeviceID]
	if w == nil {
		w = newSessionWorker(rt, env.DeviceID)
		rt.workers[env.DeviceID] = w
		rt.wg.Add(1)
		go w.run()
	}
	rt.mu.Unlock()

	w.enqueue(env)
}

func (rt *Runtime) lookupWorker(deviceID string) *sessionWorker {
	rt.mu.Lock()
	defer rt.mu.Unlock()
	return rt.workers[deviceID]
}

// sweepLoop closes sessions whose last_seen is older than the heartbeat
// timeout.
func (rt *Runtime) sweepLoop() {
	defer rt.wg.Done()
	ticker := time.NewTicker(rt.cfg.SweepInterval)
	defer ticker.Stop()
	for {
		select {
		case <-rt.baseCtx.Done():
			return
		case <-ticker.C:
			rt.sweepStaleSessions()
		}
	}
}

func (rt *Runtime) sweepStaleSessions() {
	now := rt.nowMS()
	timeoutMS := rt.cfg.NoHeartbeatTimeout.Milliseconds()
	for _, snap := range rt.sessions.AllStatus() {
		if snap.State == session.StateClosed {
			continue
		}
		if snap.LastSeenMS == 0 || now-snap.LastSeenMS <= timeoutMS {
			continue
		}
		rt.logger.Info("closing stale session",
			"device_id", snap.DeviceID,
			"session_id", snap.SessionID,
			"idle_ms", now-snap.LastSeenMS)
		rt.metrics.RecordHeartbeatTimeout()
		rt.closeSession(snap.DeviceID, snap.SessionID, "heartbeat_timeout", "heartbeat-timeout")
	}
}

// closeSession cancels any in-flight turn, discards capture state, marks
// the session closed, and tells the device.
func (rt *Runtime) closeSession(deviceID, sessionID, reason, traceID string) {
	if w := rt.lookupWorker(deviceID); w != nil {
		w.cancelTurn()
	}
	rt.capture.ResetCapture(deviceID, sessionID)
	rt.clearPartial(deviceID, sessionID)
	rt.sessions.Close(deviceID, sessionID, reason)
	rt.sendCommand(rt.baseCtx, deviceID, sessionID, protocol.CommandClose, map[string]any{"reason": reason}, traceID)
}

// sessionWorker serializes event handling for one device. Turns spawn as
// cancelable goroutines so barge-in and abort events are still processed
// while the agent is thinking or speaking.
type sessionWorker struct {
	rt       *Runtime
	deviceID string

	mu      sync.Mutex
	queue   []protocol.Envelope
	wake    chan struct{}
	stopped bool

	turnMu     sync.Mutex
	turnCancel context.CancelFunc
}

func newSessionWorker(rt *Runtime, deviceID string) *sessionWorker {
	return &sessionWorker{
		rt:       rt,
		deviceID: deviceID,
		wake:     make(chan struct{}, 1),
	}
}

func (w *sessionWorker) enqueue(env protocol.Envelope) {
	w.mu.Lock()
	if w.stopped {
		w.mu.Unlock()
		return
	}
	w.queue = append(w.queue, env)
	w.mu.Unlock()
	select {
	case w.wake <- struct{}{}:
	default:
	}
}

func (w *sessionWorker) stop() {
	w.mu.Lock()
	w.stopped = true
	w.mu.Unlock()
	select {
	case w.wake <- struct{}{}:
	default:
	}
}

func (w *sessionWorker) run() {
	defer w.rt.wg.Done()
	for {
		w.mu.Lock()
		for len(w.queue) == 0 && !w.stopped {
			w.mu.Unlock()
			select {
			case <-w.rt.baseCtx.Done():
				return
			case <-w.wake:
			}
			w.mu.Lock()
		}
		if len(w.queue) == 0 {
			w.mu.Unlock()
			return
		}
		batch := w.queue
		w.queue = nil
		w.mu.Unlock()

		for _, env := range batch {
			if w.rt.baseCtx.Err() != nil {
				return
			}
			w.rt.handleEvent(w, env)
		}
	}
}

// beginTurn cancels the previous turn and opens a context for the next one.
func (w *sessionWorker) beginTurn() context.Context {
	w.turnMu.Lock()
	defer w.turnMu.Unlock()
	if w.turnCancel != nil {
		w.turnCancel()
	}
	ctx, cancel := context.WithCancel(w.rt.baseCtx)
	w.turnCancel = cancel
	return ctx
}

func (w *sessionWorker) cancelTurn() {
	w.turnMu.Lock()
	if w.turnCancel != nil {
		w.turnCancel()
		w.turnCancel = nil
	}
	w.turnMu.Unlock()
}

// spawnTurn runs fn as the session's single in-flight turn.
func (rt *Runtime) spawnTurn(ctx context.Context, fn func(context.Context)) {
	rt.turnWG.Add(1)
	go func() {
		defer rt.turnWG.Done()
		fn(ctx)
	}()
}

// handleEvent applies one inbound event: trace resolution, auth, sequence
// bookkeeping, then the per-type transition.
func (rt *Runtime) handleEvent(w *sessionWorker, env protocol.Envelope) {
	eventType, known := env.EventType()
	traceID := traceIDForEvent(env)
	rt.metrics.RecordEvent(env.Type)
	rt.logger.Debug("hw-event",
		"type", env.Type,
		"trace_id", traceID,
		"device_id", env.DeviceID,
		"session_id", env.SessionID,
		"seq", env.Seq)
	if !known {
		rt.logger.Debug("unsupported device event type", "type", env.Type)
		return
	}

	snap := rt.sessions.GetOrCreate(env.DeviceID, env.SessionID)

	if !rt.ensureDeviceAuthorized(&snap, env, eventType, traceID) {
		return
	}

	fresh := rt.sessions.CheckAndCommitSeq(snap.DeviceID, snap.SessionID, env.Seq)
	if fresh && snap.LastInboundSeq > 0 && env.Seq > snap.LastInboundSeq+1 {
		rt.metrics.RecordOutOfOrderEvent()
	}
	if !fresh && eventType != protocol.EventAudioChunk {
		rt.metrics.RecordDuplicate()
		switch eventType {
		case protocol.EventHello:
			rt.onHello(snap, env, traceID)
		case protocol.EventHeartbeat, protocol.EventListenStart, protocol.EventListenStop,
			protocol.EventTelemetry, protocol.EventToolResult:
			rt.sendAck(snap, env.Seq, traceID)
		}
		rt.logger.Debug("duplicate event discarded",
			"seq", env.Seq, "device_id", snap.DeviceID, "session_id", snap.SessionID)
		return
	}

	switch eventType {
	case protocol.EventHello:
		rt.onHello(snap, env, traceID)
		rt.recordLifelog(snap, "hello", map[string]any{
			"trace_id":     traceID,
			"capabilities": protocol.PayloadMap(env.Payload, "capabilities"),
		}, "P3", 0)

	case protocol.EventHeartbeat:
		// Liveness only; the conversational state is left alone.
		rt.sendAck(snap, env.Seq, traceID)

	case protocol.EventListenStart:
		w.cancelTurn()
		if snap.State == session.StateSpeaking {
			rt.metrics.RecordBargeIn()
			rt.sendCommand(rt.baseCtx, snap.DeviceID, snap.SessionID, protocol.CommandTTSStop,
				map[string]any{"aborted": true, "reason": "barge_in"}, traceID)
			rt.recordLifelog(snap, "voice_interrupt", map[string]any{
				"trace_id": traceID,
				"reason":   "barge_in",
			}, "P3", 1.0)
		}
		rt.sessions.UpdateState(snap.DeviceID, snap.SessionID, session.StateListening)
		rt.capture.StartCapture(snap.DeviceID, snap.SessionID)
		rt.clearPartial(snap.DeviceID, snap.SessionID)
		rt.sendAck(snap, env.Seq, traceID)
		rt.recordLifelog(snap, "listen_start", map[string]any{
			"trace_id": traceID,
			"seq":      env.Seq,
		}, "P3", 0)

	case protocol.EventAudioChunk:
		res := rt.capture.AppendChunk(snap.DeviceID, snap.SessionID, env.Payload, env.Seq)
		if res.OutOfOrder {
			rt.metrics.RecordOutOfOrderAudio()
		}
		rt.maybeEmitSTTPartial(snap, res.Partial, traceID)

	case protocol.EventListenStop:
		rt.clearPartial(snap.DeviceID, snap.SessionID)
		rt.sessions.UpdateState(snap.DeviceID, snap.SessionID, session.StateThinking)
		rt.sendAck(snap, env.Seq, traceID)
		payload := env.Payload
		turnCtx := w.beginTurn()
		rt.spawnTurn(turnCtx, func(ctx context.Context) {
			rt.runVoiceTurn(ctx, snap, payload, traceID)
		})

	case protocol.EventAbort:
		w.cancelTurn()
		rt.capture.ResetCapture(snap.DeviceID, snap.SessionID)
		rt.clearPartial(snap.DeviceID, snap.SessionID)
		rt.sessions.UpdateState(snap.DeviceID, snap.SessionID, session.StateReady)
		reason := protocol.PayloadString(env.Payload, "reason")
		if reason == "" {
			reason = "device_abort"
		}
		rt.sendCommand(rt.baseCtx, snap.DeviceID, snap.SessionID, protocol.CommandTTSStop,
			map[string]any{"aborted": true, "reason": reason}, traceID)
		rt.recordLifelog(snap, "abort", map[string]any{
			"trace_id": traceID,
			"reason":   env.Payload["reason"],
		}, "P3", 0)

	case protocol.EventImageReady:
		rt.sessions.UpdateState(snap.DeviceID, snap.SessionID, session.StateThinking)
		payload := env.Payload
		turnCtx := w.beginTurn()
		rt.spawnTurn(turnCtx, func(ctx context.Context) {
			rt.runVisionTurn(ctx, snap, payload, traceID)
		})

	case protocol.EventTelemetry:
		rt.onTelemetry(snap, env, traceID)

	case protocol.EventToolResult:
		rt.onToolResult(snap, env, traceID)

	case protocol.EventError:
		rt.logger.Warn("device reported error",
			"device_id", snap.DeviceID,
			"session_id", snap.SessionID,
			"payload", env.Payload)
		rt.recordLifelog(snap, "device_error", map[string]any{
			"trace_id": traceID,
			"error":    env.Payload,
		}, "P1", 0)

	case protocol.EventClose:
		reason := protocol.PayloadString(env.Payload, "reason")
		if reason == "" {
			reason = "device_close"
		}
		w.cancelTurn()
		rt.capture.ResetCapture(snap.DeviceID, snap.SessionID)
		rt.clearPartial(snap.DeviceID, snap.SessionID)
		rt.sessions.Close(snap.DeviceID, snap.SessionID, reason)
		rt.recordLifelog(snap, "session_close", map[string]any{
			"trace_id": traceID,
			"reason":   reason,
		}, "P3", 0)
	}
}

// onHello re-runs in full for duplicate hellos: the ack is idempotent and a
// rebooted device needs its session_id back.
func (rt *Runtime) onHello(snap session.Snapshot, env protocol.Envelope, traceID string) {
	if caps := protocol.PayloadMap(env.Payload, "capabilities"); len(caps) > 0 {
		rt.sessions.UpdateMetadata(snap.DeviceID, snap.SessionID, caps)
	}
	rt.sessions.UpdateState(snap.DeviceID, snap.SessionID, session.StateReady)
	rt.sendCommand(rt.baseCtx, snap.DeviceID, snap.SessionID, protocol.CommandHelloAck, map[string]any{
		"runtime":    "edged",
		"protocol":   protocol.Version,
		"session_id": snap.SessionID,
		"ack_seq":    env.Seq,
	}, traceID)

	if rt.tasks != nil {
		rt.turnWG.Add(1)
		go func() {
			defer rt.turnWG.Done()
			rt.flushTaskPushes(snap, traceID)
		}()
	}
	if rt.store != nil {
		rt.turnWG.Add(1)
		go func() {
			defer rt.turnWG.Done()
			rt.replayQueuedOperations(snap, traceID)
		}()
	}
}

func (rt *Runtime) onTelemetry(snap session.Snapshot, env protocol.Envelope, traceID string) {
	telemetry := env.Payload
	if telemetry == nil {
		telemetry = map[string]any{}
	}
	rt.sessions.UpdateTelemetry(snap.DeviceID, snap.SessionID, telemetry)

	var structured map[string]any
	if rt.cfg.TelemetryNormalize {
		structured = NormalizeTelemetry(telemetry, env.TS)
		if len(structured) > 0 {
			rt.sessions.UpdateMetadata(snap.DeviceID, snap.SessionID, map[string]any{
				"telemetry_structured":     structured,
				"telemetry_schema_version": toString(structured["schema_version"]),
			})
			rt.persistTelemetrySample(snap, telemetry, structured)
		}
	}

	rt.sendAck(snap, env.Seq, traceID)

	lifelogPayload := map[string]any{
		"trace_id":  traceID,
		"telemetry": telemetry,
	}
	if len(structured) > 0 {
		lifelogPayload["telemetry_structured"] = structured
	}
	rt.recordLifelog(snap, "telemetry", lifelogPayload, "P3", 0)
}

func (rt *Runtime) persistTelemetrySample(snap session.Snapshot, raw, structured map[string]any) {
	if !rt.cfg.TelemetryPersist || rt.store == nil {
		return
	}
	sample := TelemetrySample(snap.DeviceID, snap.SessionID, structured, raw)
	if err := rt.store.InsertSample(rt.baseCtx, sample); err != nil {
		rt.logger.Debug("telemetry sample persistence failed", "device_id", snap.DeviceID, "error", err)
	}
}

// ensureDeviceAuthorized verifies the binding on hello and requires the
// cached pass on everything after. Denial closes the session.
func (rt *Runtime) ensureDeviceAuthorized(snap *session.Snapshot, env protocol.Envelope, eventType protocol.EventType, traceID string) bool {
	if !rt.cfg.DeviceAuthEnabled {
		return true
	}
	if eventType == protocol.EventHello {
		token := extractDeviceToken(env.Payload)
		if token == "" {
			return rt.denyDeviceEvent(snap, traceID, "missing_device_token", env.Type)
		}
		if rt.store == nil {
			return rt.denyDeviceEvent(snap, traceID, "device_auth_service_unavailable", env.Type)
		}
		binding, err := rt.store.VerifyDeviceBinding(rt.baseCtx, env.DeviceID, token,
			rt.cfg.RequireActivated, rt.cfg.AllowUnbound)
		if err != nil {
			reason := "device_auth_error"
			if errors.Is(err, store.ErrUnauthorized) {
				reason = "device_auth_failed"
			}
			return rt.denyDeviceEvent(snap, traceID, reason, env.Type)
		}
		*snap = rt.sessions.UpdateMetadata(snap.DeviceID, snap.SessionID, map[string]any{
			"auth_passed":     true,
			"auth_reason":     "ok",
			"binding_status":  binding.Status,
			"binding_user_id": binding.UserID,
		})
		return true
	}
	if passed, _ := snap.Metadata["auth_passed"].(bool); passed {
		return true
	}
	return rt.denyDeviceEvent(snap, traceID, "unauthenticated_session", env.Type)
}

func (rt *Runtime) denyDeviceEvent(snap *session.Snapshot, traceID, reason, eventType string) bool {
	rt.metrics.RecordAuthDenied()
	rt.logger.Warn("device auth denied",
		"device_id", snap.DeviceID,
		"session_id", snap.SessionID,
		"reason", reason)
	rt.sessions.UpdateMetadata(snap.DeviceID, snap.SessionID, map[string]any{
		"auth_passed": false,
		"auth_reason": reason,
	})
	rt.sendCommand(rt.baseCtx, snap.DeviceID, snap.SessionID, protocol.CommandClose,
		map[string]any{"reason": reason}, traceID)
	rt.sessions.Close(snap.DeviceID, snap.SessionID, reason)
	rt.recordLifelog(*snap, "device_auth_denied", map[string]any{
		"trace_id":   traceID,
		"reason":     reason,
		"event_type": eventType,
	}, "P1", 1.0)
	return false
}

// sendCommand allocates the outbound seq, stamps the trace, and hands the
// command to the adapter. The error is logged, not propagated; callers that
// must know use the return.
func (rt *Runtime) sendCommand(ctx context.Context, deviceID, sessionID string, t protocol.CommandType, payload map[string]any, traceID string) (protocol.Envelope, error) {
	if err := ctx.Err(); err != nil {
		return protocol.Envelope{}, err
	}
	seq := rt.sessions.NextOutboundSeq(deviceID, sessionID)
	cmd := protocol.MakeCommand(t, deviceID, sessionID, seq, payload)
	cmd.TraceID = traceID
	rt.metrics.RecordCommand(string(t))
	rt.logger.Debug("hw-command",
		"type", t,
		"trace_id", traceID,
		"device_id", deviceID,
		"session_id", sessionID,
		"seq", seq)
	if err := rt.adapter.Send(ctx, cmd); err != nil {
		// One synchronous retry, then the command is dropped and counted.
		if retryErr := rt.adapter.Send(ctx, cmd); retryErr != nil {
			rt.metrics.RecordSendFailure()
			rt.logger.Warn("adapter send failed", "type", t, "device_id", deviceID, "error", retryErr)
			return cmd, retryErr
		}
	}
	return cmd, nil
}

func (rt *Runtime) sendAck(snap session.Snapshot, ackSeq int64, traceID string) {
	rt.sendCommand(rt.baseCtx, snap.DeviceID, snap.SessionID, protocol.CommandAck,
		map[string]any{"ack_seq": ackSeq}, traceID)
}

// maybeEmitSTTPartial forwards a partial transcript unless it repeats the
// last one within 1s or grows it by under 3 runes within 250ms.
func (rt *Runtime) maybeEmitSTTPartial(snap session.Snapshot, partial, traceID string) {
	text := strings.TrimSpace(partial)
	if text == "" {
		return
	}
	key := captureKey{snap.DeviceID, snap.SessionID}
	now := rt.nowMS()

	rt.partialMu.Lock()
	last, ok := rt.partials[key]
	if ok {
		if text == last.text && now-last.tsMS < 1000 {
			rt.partialMu.Unlock()
			return
		}
		growth := len([]rune(text)) - len([]rune(last.text))
		if growth >= 0 && growth < 3 && now-last.tsMS < 250 && strings.HasPrefix(text, last.text) {
			rt.partialMu.Unlock()
			return
		}
	}
	rt.partials[key] = partialEntry{text: text, tsMS: now}
	rt.partialMu.Unlock()

	rt.sendCommand(rt.baseCtx, snap.DeviceID, snap.SessionID, protocol.CommandSTTPartial,
		map[string]any{"text": text}, traceID)
}

func (rt *Runtime) clearPartial(deviceID, sessionID string) {
	rt.partialMu.Lock()
	delete(rt.partials, captureKey{deviceID, sessionID})
	rt.partialMu.Unlock()
}

// recordLifelog appends a runtime event row; failures are logged and
// swallowed so storage trouble never stalls a session.
func (rt *Runtime) recordLifelog(snap session.Snapshot, eventType string, payload map[string]any, riskLevel string, confidence float64) {
	if rt.store == nil {
		return
	}
	if rt.masker != nil {
		payload = rt.masker.MaskMap(payload)
	}
	_, err := rt.store.AppendEvent(rt.baseCtx, store.Event{
		SessionID:  snap.SessionID,
		DeviceID:   snap.DeviceID,
		EventType:  eventType,
		Payload:    payload,
		RiskLevel:  riskLevel,
		Confidence: confidence,
		TSMS:       rt.nowMS(),
	})
	if err != nil {
		rt.logger.Debug("lifelog event append failed", "event_type", eventType, "error", err)
	}
}

// recordTrace appends a thought-trace step; best effort like recordLifelog.
func (rt *Runtime) recordTrace(snap session.Snapshot, traceID, stage string, payload map[string]any) {
	if rt.store == nil || traceID == "" {
		return
	}
	if rt.masker != nil {
		payload = rt.masker.MaskMap(payload)
	}
	err := rt.store.AppendTraceStep(rt.baseCtx, store.TraceStep{
		TraceID:   traceID,
		SessionID: snap.SessionID,
		Source:    "hardware_runtime",
		Stage:     stage,
		Payload:   payload,
		TSMS:      rt.nowMS(),
	})
	if err != nil {
		rt.logger.Debug("trace step append failed", "stage", stage, "error", err)
	}
}

func traceIDForEvent(env protocol.Envelope) string {
	if env.TraceID != "" {
		return env.TraceID
	}
	if trace := protocol.PayloadString(env.Payload, "trace_id", "traceId"); trace != "" {
		return trace
	}
	return env.MsgID
}

func extractDeviceToken(payload map[string]any) string {
	token := strings.TrimSpace(protocol.PayloadString(payload,
		"device_token", "deviceToken", "auth_token", "authToken", "token", "authorization"))
	if len(token) >= 7 && strings.EqualFold(token[:7], "bearer ") {
		token = strings.TrimSpace(token[7:])
	}
	return token
}
