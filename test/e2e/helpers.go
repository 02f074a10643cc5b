package e2e

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/opencane/edged/pkg/protocol"
	"github.com/opencane/edged/pkg/session"
	"github.com/opencane/edged/pkg/store"
)

const (
	waitTimeout = 10 * time.Second
	waitTick    = 10 * time.Millisecond
)

// ─────────────────────────────────────────────────────────────────────────────
// Device-side drivers
// ─────────────────────────────────────────────────────────────────────────────

// Inject feeds one device event through the mock adapter.
func (app *TestApp) Inject(eventType protocol.EventType, deviceID, sessionID string, seq int64, payload map[string]any) {
	app.t.Helper()
	require.NoError(app.t, app.Adapter.Inject(protocol.MakeEvent(eventType, deviceID, sessionID, seq, payload)))
}

// Hello opens a session with seq 1 and waits for the hello_ack. A nil
// payload sends plain capabilities.
func (app *TestApp) Hello(deviceID, sessionID string, payload map[string]any) protocol.Envelope {
	app.t.Helper()
	if payload == nil {
		payload = map[string]any{"capabilities": map[string]any{"firmware": "2.1.0"}}
	}
	app.Inject(protocol.EventHello, deviceID, sessionID, 1, payload)
	return app.WaitCommandFor(deviceID, protocol.CommandHelloAck)
}

// SentFor returns every command sent to one device, in order.
func (app *TestApp) SentFor(deviceID string) []protocol.Envelope {
	var out []protocol.Envelope
	for _, env := range app.Adapter.Sent() {
		if env.DeviceID == deviceID {
			out = append(out, env)
		}
	}
	return out
}

// SentTypesFor returns the command type sequence sent to one device.
func (app *TestApp) SentTypesFor(deviceID string) []string {
	sent := app.SentFor(deviceID)
	out := make([]string, 0, len(sent))
	for _, env := range sent {
		out = append(out, env.Type)
	}
	return out
}

// WaitCommandFor blocks until a command of the given type reaches the device
// and returns the first match.
func (app *TestApp) WaitCommandFor(deviceID string, cmdType protocol.CommandType) protocol.Envelope {
	app.t.Helper()
	var found protocol.Envelope
	require.Eventually(app.t, func() bool {
		for _, env := range app.SentFor(deviceID) {
			if env.Type == string(cmdType) {
				found = env
				return true
			}
		}
		return false
	}, waitTimeout, waitTick, "waiting for %s to %s, have %v", cmdType, deviceID, app.SentTypesFor(deviceID))
	return found
}

// WaitSentCountFor blocks until at least n commands reached the device and
// returns them.
func (app *TestApp) WaitSentCountFor(deviceID string, n int) []protocol.Envelope {
	app.t.Helper()
	require.Eventually(app.t, func() bool {
		return len(app.SentFor(deviceID)) >= n
	}, waitTimeout, waitTick, "waiting for %d commands to %s, have %v", n, deviceID, app.SentTypesFor(deviceID))
	return app.SentFor(deviceID)
}

// WaitState blocks until the session reaches the given state.
func (app *TestApp) WaitState(deviceID, sessionID string, state session.State) session.Snapshot {
	app.t.Helper()
	var snap session.Snapshot
	require.Eventually(app.t, func() bool {
		var ok bool
		snap, ok = app.Sessions.Get(deviceID, sessionID)
		return ok && snap.State == state
	}, waitTimeout, waitTick, "waiting for session %s/%s state %s", deviceID, sessionID, state)
	return snap
}

// ─────────────────────────────────────────────────────────────────────────────
// Durable-row waiters
// ─────────────────────────────────────────────────────────────────────────────

// WaitEvents blocks until at least n lifelog events of the given type exist
// for the session and returns them, newest first.
func (app *TestApp) WaitEvents(sessionID, eventType string, n int) []store.Event {
	app.t.Helper()
	var events []store.Event
	require.Eventually(app.t, func() bool {
		var err error
		events, err = app.Store.Timeline(context.Background(), sessionID, 0, 0, []string{eventType}, 50)
		return err == nil && len(events) >= n
	}, waitTimeout, waitTick, "waiting for %d %s events in session %s", n, eventType, sessionID)
	return events
}

// WaitTaskStatus blocks until the task row reaches the given status and
// returns it.
func (app *TestApp) WaitTaskStatus(taskID, status string) store.Task {
	app.t.Helper()
	var row store.Task
	require.Eventually(app.t, func() bool {
		var err error
		row, err = app.Store.GetTask(context.Background(), taskID)
		return err == nil && row.Status == status
	}, waitTimeout, waitTick, "waiting for task %s status %s, have %s", taskID, status, row.Status)
	return row
}

// ─────────────────────────────────────────────────────────────────────────────
// Control-API drivers
// ─────────────────────────────────────────────────────────────────────────────

// postJSON posts the body to a control-API path, asserts the status code,
// and decodes the JSON response.
func (app *TestApp) postJSON(path string, body map[string]any, wantStatus int) map[string]any {
	app.t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(app.t, err)

	resp, err := http.Post(app.BaseURL+path, "application/json", bytes.NewReader(raw))
	require.NoError(app.t, err)
	defer resp.Body.Close()

	var out map[string]any
	require.NoError(app.t, json.NewDecoder(resp.Body).Decode(&out))
	require.Equal(app.t, wantStatus, resp.StatusCode, "POST %s: %v", path, out)
	return out
}

// getJSON fetches a control-API path, asserts the status code, and decodes
// the JSON response.
func (app *TestApp) getJSON(path string, wantStatus int) map[string]any {
	app.t.Helper()
	resp, err := http.Get(app.BaseURL + path)
	require.NoError(app.t, err)
	defer resp.Body.Close()

	var out map[string]any
	require.NoError(app.t, json.NewDecoder(resp.Body).Decode(&out))
	require.Equal(app.t, wantStatus, resp.StatusCode, "GET %s: %v", path, out)
	return out
}

// asMap digs a nested JSON object out of a decoded response.
func asMap(t require.TestingT, doc map[string]any, key string) map[string]any {
	v, ok := doc[key].(map[string]any)
	require.True(t, ok, "expected %q to be an object, got %T", key, doc[key])
	return v
}

// asSlice digs a nested JSON array out of a decoded response.
func asSlice(t require.TestingT, doc map[string]any, key string) []any {
	v, ok := doc[key].([]any)
	require.True(t, ok, "expected %q to be an array, got %T", key, doc[key])
	return v
}

// num reads a JSON number as int64. Decoded JSON numbers arrive as float64.
func num(doc map[string]any, key string) int64 {
	if v, ok := doc[key].(float64); ok {
		return int64(v)
	}
	return 0
}

// fakeImageB64 builds a distinct base64 payload per marker. The bytes are
// not a decodable image, which the pipeline tolerates: content hashing falls
// back to the byte digest, so distinct markers never collide in dedup.
func fakeImageB64(marker string) string {
	data := bytes.Repeat([]byte(marker+"|"), 32)
	return base64.StdEncoding.EncodeToString(data)
}
