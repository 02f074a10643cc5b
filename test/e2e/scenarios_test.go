package e2e

import (
	"bytes"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opencane/edged/pkg/lifelog"
	"github.com/opencane/edged/pkg/protocol"
	"github.com/opencane/edged/pkg/runtime"
	"github.com/opencane/edged/pkg/session"
)

// TestE2E_VoiceTurnRoundTrip drives a complete voice turn through the whole
// stack: hello handshake, listen window with device-side partials, agent
// reply through both policy gates, TTS streaming, and the durable turn
// record queryable afterward.
func TestE2E_VoiceTurnRoundTrip(t *testing.T) {
	const reply = "The pharmacy is open until nine."
	app := NewTestApp(t, WithAgent(&ScriptedAgent{Script: []AgentReply{{Text: reply}}}))
	dev, sess := "glass-a1", "sess-a1"

	ack := app.Hello(dev, sess, nil)
	assert.Equal(t, "edged", ack.Payload["runtime"])
	assert.Equal(t, protocol.Version, ack.Payload["protocol"])
	assert.Equal(t, sess, ack.Payload["session_id"])
	assert.EqualValues(t, 1, ack.Payload["ack_seq"])

	app.Inject(protocol.EventListenStart, dev, sess, 2, nil)
	app.Inject(protocol.EventAudioChunk, dev, sess, 3, map[string]any{"chunk_index": 1, "text": "hello"})
	app.Inject(protocol.EventAudioChunk, dev, sess, 4, map[string]any{"chunk_index": 2, "text": "world"})
	app.Inject(protocol.EventListenStop, dev, sess, 5, nil)

	stop := app.WaitCommandFor(dev, protocol.CommandTTSStop)
	assert.Equal(t, false, stop.Payload["aborted"])

	require.Equal(t, []string{
		"hello_ack",
		"ack",
		"stt_partial",
		"stt_partial",
		"ack",
		"stt_final",
		"tts_start",
		"tts_chunk",
		"tts_stop",
	}, app.SentTypesFor(dev))

	var lastSeq int64
	for _, env := range app.SentFor(dev) {
		assert.Greater(t, env.Seq, lastSeq, "outbound seq must be strictly increasing")
		lastSeq = env.Seq
	}

	final := app.WaitCommandFor(dev, protocol.CommandSTTFinal)
	assert.Equal(t, "hello world", final.Payload["text"])
	start := app.WaitCommandFor(dev, protocol.CommandTTSStart)
	assert.Equal(t, reply, start.Payload["text"])
	chunk := app.WaitCommandFor(dev, protocol.CommandTTSChunk)
	assert.Equal(t, reply, chunk.Payload["text"])

	app.WaitState(dev, sess, session.StateReady)

	// The turn is durable with its transcript and spoken response.
	app.WaitEvents(sess, "hello", 1)
	turns := app.WaitEvents(sess, "voice_turn", 1)
	assert.Equal(t, "hello world", turns[0].Payload["transcript"])
	assert.Equal(t, reply, turns[0].Payload["response"])
	assert.Equal(t, true, turns[0].Payload["success"])

	// And visible to operators over the control API.
	device := asMap(t, app.getJSON("/v1/device/"+dev+"/status", http.StatusOK), "device")
	assert.Equal(t, "ready", device["state"])

	rtStatus := app.getJSON("/v1/runtime/status", http.StatusOK)
	assert.Equal(t, "mock", rtStatus["adapter"])
	assert.Equal(t, true, rtStatus["running"])
	metrics := asMap(t, rtStatus, "metrics")
	assert.EqualValues(t, 1, num(metrics, "voice_turn_total"))
	assert.EqualValues(t, 0, num(metrics, "voice_turn_failed"))
	safety := asMap(t, rtStatus, "safety")
	assert.Equal(t, true, safety["enabled"])
	assert.GreaterOrEqual(t, num(safety, "applied"), int64(1))
}

// TestE2E_ReorderedAudioRecomposes sends audio chunks out of order and
// expects the capture pipeline to reassemble the transcript by chunk index.
// With no agent wired the turn closes with a bare tts_stop.
func TestE2E_ReorderedAudioRecomposes(t *testing.T) {
	app := NewTestApp(t)
	dev, sess := "glass-b2", "sess-b2"

	app.Hello(dev, sess, nil)
	app.Inject(protocol.EventListenStart, dev, sess, 2, nil)
	app.Inject(protocol.EventAudioChunk, dev, sess, 3, map[string]any{"chunk_index": 2, "text": "world"})
	app.Inject(protocol.EventAudioChunk, dev, sess, 4, map[string]any{"chunk_index": 1, "text": "hello"})
	app.Inject(protocol.EventListenStop, dev, sess, 5, nil)

	final := app.WaitCommandFor(dev, protocol.CommandSTTFinal)
	assert.Equal(t, "hello world", final.Payload["text"])

	stop := app.WaitCommandFor(dev, protocol.CommandTTSStop)
	assert.Equal(t, false, stop.Payload["aborted"])
	assert.NotContains(t, app.SentTypesFor(dev), "tts_start")

	assert.EqualValues(t, 1, app.Runtime.Metrics().Snapshot().OutOfOrderAudioTotal)
}

// TestE2E_BargeInStopsSpeech interrupts active speech with a new listen
// window: the device gets an aborted tts_stop, the session flips to
// listening, and the interrupt lands in the durable timeline.
func TestE2E_BargeInStopsSpeech(t *testing.T) {
	app := NewTestApp(t)
	dev, sess := "glass-c3", "sess-c3"

	app.Hello(dev, sess, nil)
	app.Sessions.UpdateState(dev, sess, session.StateSpeaking)
	app.Inject(protocol.EventListenStart, dev, sess, 2, nil)

	stop := app.WaitCommandFor(dev, protocol.CommandTTSStop)
	assert.Equal(t, true, stop.Payload["aborted"])
	assert.Equal(t, "barge_in", stop.Payload["reason"])
	app.WaitState(dev, sess, session.StateListening)

	assert.EqualValues(t, 1, app.Runtime.Metrics().Snapshot().BargeInTotal)

	app.WaitEvents(sess, "voice_interrupt", 1)
	doc := app.postJSON("/v1/lifelog/timeline", map[string]any{
		"session_id":  sess,
		"event_types": []string{"voice_interrupt"},
	}, http.StatusOK)
	assert.Equal(t, true, doc["success"])
	assert.EqualValues(t, 1, num(doc, "count"))
	first, ok := asSlice(t, doc, "events")[0].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "voice_interrupt", first["event_type"])
}

// TestE2E_HeartbeatSeqDiscipline replays gapped, stale, and duplicate
// heartbeat sequence numbers: every one is re-acked with its own seq, the
// session high-water mark holds, and the counters classify each anomaly.
func TestE2E_HeartbeatSeqDiscipline(t *testing.T) {
	app := NewTestApp(t)
	dev, sess := "glass-d4", "sess-d4"

	app.Hello(dev, sess, nil)
	app.Inject(protocol.EventHeartbeat, dev, sess, 3, nil) // gap: seq 2 skipped
	app.Inject(protocol.EventHeartbeat, dev, sess, 2, nil) // stale
	app.Inject(protocol.EventHeartbeat, dev, sess, 3, nil) // duplicate

	sent := app.WaitSentCountFor(dev, 4)
	require.Equal(t, []string{"hello_ack", "ack", "ack", "ack"}, app.SentTypesFor(dev))
	assert.EqualValues(t, 3, sent[1].Payload["ack_seq"])
	assert.EqualValues(t, 2, sent[2].Payload["ack_seq"])
	assert.EqualValues(t, 3, sent[3].Payload["ack_seq"])

	snap, ok := app.Sessions.Get(dev, sess)
	require.True(t, ok)
	assert.EqualValues(t, 3, snap.LastInboundSeq)
	assert.Equal(t, session.StateReady, snap.State)

	metrics := asMap(t, app.getJSON("/v1/runtime/status", http.StatusOK), "metrics")
	assert.EqualValues(t, 2, num(metrics, "duplicate_events_total"))
	assert.EqualValues(t, 1, num(metrics, "out_of_order_events_total"))
}

// TestE2E_DeviceBindingGatesSessions provisions a binding through the
// control API, then checks both sides of the gate: the bound device passes
// hello with its binding in session metadata, a stray device is closed
// before any ack and leaves an elevated-risk denial event.
func TestE2E_DeviceBindingGatesSessions(t *testing.T) {
	app := NewTestApp(t, WithRuntimeConfig(runtime.Config{
		DeviceAuthEnabled: true,
		RequireActivated:  true,
	}))
	const (
		boundDev = "glass-e5"
		strayDev = "glass-e5-stray"
		token    = "tok-e5-secret"
	)

	app.postJSON("/v1/device/register", map[string]any{
		"device_id": boundDev,
		"metadata":  map[string]any{"model": "g2"},
	}, http.StatusCreated)
	app.postJSON("/v1/device/bind", map[string]any{
		"device_id":    boundDev,
		"user_id":      "user-42",
		"device_token": token,
	}, http.StatusOK)
	app.postJSON("/v1/device/activate", map[string]any{"device_id": boundDev}, http.StatusOK)

	binding := asMap(t, app.getJSON("/v1/device/binding?device_id="+boundDev, http.StatusOK), "binding")
	assert.Equal(t, "activated", binding["status"])
	assert.Equal(t, "user-42", binding["user_id"])

	app.Hello(boundDev, "sess-e5", map[string]any{"device_token": "Bearer " + token})
	snap := app.WaitState(boundDev, "sess-e5", session.StateReady)
	assert.Equal(t, true, snap.Metadata["auth_passed"])
	assert.Equal(t, "activated", snap.Metadata["binding_status"])
	assert.Equal(t, "user-42", snap.Metadata["binding_user_id"])

	app.Inject(protocol.EventHello, strayDev, "sess-stray", 1, map[string]any{"device_token": "bogus"})
	closeCmd := app.WaitCommandFor(strayDev, protocol.CommandClose)
	assert.Equal(t, "device_auth_failed", closeCmd.Payload["reason"])
	assert.NotContains(t, app.SentTypesFor(strayDev), "hello_ack")

	stray := app.WaitState(strayDev, "sess-stray", session.StateClosed)
	assert.Equal(t, "device_auth_failed", stray.CloseReason)
	assert.EqualValues(t, 1, app.Runtime.Metrics().Snapshot().AuthDeniedTotal)

	denied := app.WaitEvents("sess-stray", "device_auth_denied", 1)
	assert.Equal(t, "P1", denied[0].RiskLevel)
	assert.Equal(t, "device_auth_failed", denied[0].Payload["reason"])
}

// TestE2E_IngestBackpressureRejects fills a single-worker, capacity-one
// ingest queue behind a parked analyzer: the overflow frame is rejected
// synchronously with 429 while the held frames complete once the analyzer
// releases.
func TestE2E_IngestBackpressureRejects(t *testing.T) {
	analyzer := NewBlockingAnalyzer()
	defer analyzer.Release()
	app := NewTestApp(t,
		WithAnalyzer(analyzer),
		WithIngestConfig(lifelog.Config{MaxQueueSize: 1, Workers: 1}),
	)
	const sess = "sess-f6"

	type outcome struct {
		status int
		body   map[string]any
		err    error
	}
	post := func(marker string) outcome {
		raw, err := json.Marshal(map[string]any{
			"session_id":   sess,
			"device_id":    "glass-f6",
			"image_base64": fakeImageB64(marker),
		})
		if err != nil {
			return outcome{err: err}
		}
		resp, err := http.Post(app.BaseURL+"/v1/lifelog/ingest", "application/json", bytes.NewReader(raw))
		if err != nil {
			return outcome{err: err}
		}
		defer resp.Body.Close()
		var body map[string]any
		if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
			return outcome{err: err}
		}
		return outcome{status: resp.StatusCode, body: body}
	}

	results := make(chan outcome, 2)

	// First frame occupies the only worker inside the parked analyzer.
	go func() { results <- post("frame-1") }()
	select {
	case <-analyzer.Entered:
	case <-time.After(waitTimeout):
		t.Fatal("analyzer never saw the first frame")
	}

	// Second frame fills the queue behind the busy worker.
	go func() { results <- post("frame-2") }()
	require.Eventually(t, func() bool {
		return app.Pipeline.Status().Depth == 1
	}, waitTimeout, waitTick, "second frame never queued")

	// Third frame has nowhere to go and is rejected synchronously.
	rejected := post("frame-3")
	require.NoError(t, rejected.err)
	assert.Equal(t, http.StatusTooManyRequests, rejected.status)
	assert.Equal(t, "queue_full", rejected.body["error_code"])
	assert.Equal(t, false, rejected.body["success"])

	// Releasing the analyzer drains the backlog; both held frames succeed.
	analyzer.Release()
	for i := 0; i < 2; i++ {
		select {
		case res := <-results:
			require.NoError(t, res.err)
			assert.Equal(t, http.StatusOK, res.status)
			assert.Equal(t, true, res.body["success"])
			assert.Equal(t, false, res.body["dedup"])
		case <-time.After(waitTimeout):
			t.Fatal("held ingest requests did not complete")
		}
	}

	status := app.Pipeline.Status()
	assert.EqualValues(t, 1, status.RejectedTotal)
	assert.EqualValues(t, 2, status.ProcessedTotal)
	assert.EqualValues(t, 0, status.Depth)

	// The queue counters surface on the runtime status document too.
	queue := asMap(t, app.getJSON("/v1/runtime/status", http.StatusOK), "lifelog")
	assert.EqualValues(t, 1, num(queue, "rejected_total"))

	app.WaitEvents(sess, "image_ingested", 2)
}

// TestE2E_TaskInterruptHandsOver starts a long-running digital task, then
// submits a second one with interrupt_previous: the first ends canceled with
// the interrupt reason, the second completes, and the device sees both
// outcomes as task_update pushes.
func TestE2E_TaskInterruptHandsOver(t *testing.T) {
	const busReply = "The 42 bus arrives in six minutes."
	executor := NewScriptedTaskExecutor(
		ExecEntry{BlockUntilCanceled: true},
		ExecEntry{Text: busReply},
	)
	app := NewTestApp(t, WithTaskExecutor(executor))
	dev, sess := "glass-g7", "sess-g7"

	// A live session so status pushes land as task_update commands.
	app.Hello(dev, sess, nil)

	execA := app.postJSON("/v1/digital_task/execute", map[string]any{
		"session_id": sess,
		"device_id":  dev,
		"goal":       "navigate to the pharmacy",
		"notify":     true,
		"speak":      false,
	}, http.StatusAccepted)
	assert.Equal(t, true, execA["success"])
	assert.Equal(t, true, execA["accepted"])
	taskA, _ := execA["task_id"].(string)
	require.NotEmpty(t, taskA)

	select {
	case <-executor.Started:
	case <-time.After(waitTimeout):
		t.Fatal("first task never reached the executor")
	}
	app.WaitTaskStatus(taskA, "running")

	execB := app.postJSON("/v1/digital_task/execute", map[string]any{
		"session_id":         sess,
		"device_id":          dev,
		"goal":               "check the bus schedule",
		"notify":             true,
		"speak":              false,
		"interrupt_previous": true,
	}, http.StatusAccepted)
	taskB, _ := execB["task_id"].(string)
	require.NotEmpty(t, taskB)

	rowA := app.WaitTaskStatus(taskA, "canceled")
	assert.Equal(t, "interrupted_by_new_task", rowA.ErrorMessage)

	rowB := app.WaitTaskStatus(taskB, "success")
	assert.Contains(t, rowB.Result, busReply)
	assert.Equal(t, 2, executor.Calls())

	// Both outcomes reached the device as task_update pushes; speak=false
	// keeps the turns silent.
	waitTaskUpdate := func(taskID, status string) {
		t.Helper()
		require.Eventually(t, func() bool {
			for _, env := range app.SentFor(dev) {
				if env.Type != string(protocol.CommandTaskUpdate) {
					continue
				}
				if env.Payload["task_id"] == taskID && env.Payload["status"] == status {
					return true
				}
			}
			return false
		}, waitTimeout, waitTick, "waiting for task_update %s/%s", taskID, status)
	}
	waitTaskUpdate(taskA, "canceled")
	waitTaskUpdate(taskB, "success")
	assert.NotContains(t, app.SentTypesFor(dev), "tts_start")

	listDoc := app.postJSON("/v1/digital_task/list", map[string]any{"device_id": dev}, http.StatusOK)
	assert.EqualValues(t, 2, num(listDoc, "count"))

	stats := asMap(t, app.postJSON("/v1/digital_task/stats", map[string]any{"device_id": dev}, http.StatusOK), "stats")
	assert.EqualValues(t, 1, num(stats, "canceled"))
	assert.EqualValues(t, 1, num(stats, "success"))
}

// TestE2E_HealthSurface sanity-checks the unauthenticated liveness probe
// and the database probe inside the observability report.
func TestE2E_HealthSurface(t *testing.T) {
	app := NewTestApp(t)

	doc := app.getJSON("/healthz", http.StatusOK)
	assert.Equal(t, "ok", doc["status"])
	assert.Equal(t, "edged", doc["service"])
	assert.NotEmpty(t, doc["version"])

	report := app.getJSON("/v1/runtime/observability", http.StatusOK)
	dbHealth, ok := report["database"].(map[string]any)
	require.True(t, ok, "observability report is missing the database probe")
	assert.Equal(t, "healthy", dbHealth["status"])
}
