package runtime

import (
	"context"
	"errors"
	"fmt"

	"github.com/opencane/edged/pkg/protocol"
	"github.com/opencane/edged/pkg/session"
)

// ErrNoSession is returned when a command targets a device with no live
// session to allocate outbound seqs from.
var ErrNoSession = errors.New("no active session for device")

// ErrNotRunning is returned when event injection reaches a stopped runtime.
var ErrNotRunning = errors.New("runtime is not running")

// Status reports the runtime control document: adapter identity, event and
// turn counters, ingest queue depth, policy counters, task stats, and every
// session snapshot.
func (rt *Runtime) Status(ctx context.Context) map[string]any {
	rt.mu.Lock()
	running := rt.running
	rt.mu.Unlock()

	rt.policyMu.Lock()
	safetyApplied := rt.safetyApplied
	safetyDowngraded := rt.safetyDowngraded
	interactionApplied := rt.interactionApplied
	interactionSuppressed := rt.interactionSuppressed
	rt.policyMu.Unlock()

	status := map[string]any{
		"adapter":   rt.adapter.Name(),
		"transport": rt.adapter.Transport(),
		"running":   running,
		"metrics":   rt.metrics.Snapshot(),
		"safety": map[string]any{
			"enabled":    rt.safety != nil && rt.safety.Enabled(),
			"applied":    safetyApplied,
			"downgraded": safetyDowngraded,
		},
		"interaction": map[string]any{
			"enabled":    rt.interaction != nil && rt.interaction.Enabled(),
			"applied":    interactionApplied,
			"suppressed": interactionSuppressed,
		},
		"devices": rt.sessions.AllStatus(),
	}
	if rt.ingest != nil {
		status["lifelog"] = rt.ingest.Status()
	}
	if rt.tasks != nil {
		if stats, err := rt.tasks.Stats(ctx, ""); err == nil {
			status["digital_task"] = stats
		}
	}
	return status
}

// DeviceStatus returns the latest session snapshot for one device.
func (rt *Runtime) DeviceStatus(deviceID string) (session.Snapshot, bool) {
	return rt.sessions.Status(deviceID)
}

// Abort interrupts the device's latest session: the in-flight turn is
// canceled, capture state discarded, and the device told to stop speaking.
func (rt *Runtime) Abort(deviceID, reason string) bool {
	if reason == "" {
		reason = "manual_abort"
	}
	snap, ok := rt.sessions.Latest(deviceID)
	if !ok || snap.State == session.StateClosed {
		return false
	}
	if w := rt.lookupWorker(deviceID); w != nil {
		w.cancelTurn()
	}
	rt.capture.ResetCapture(snap.DeviceID, snap.SessionID)
	rt.clearPartial(snap.DeviceID, snap.SessionID)
	rt.sessions.UpdateState(snap.DeviceID, snap.SessionID, session.StateReady)
	rt.sendCommand(rt.baseCtx, snap.DeviceID, snap.SessionID, protocol.CommandTTSStop,
		map[string]any{"aborted": true, "reason": reason}, "manual-abort")
	return true
}

// CloseDeviceSession force-closes one session with the given reason.
func (rt *Runtime) CloseDeviceSession(deviceID, sessionID, reason string) bool {
	if reason == "" {
		reason = "manual_close"
	}
	snap, ok := rt.sessions.Get(deviceID, sessionID)
	if !ok || snap.State == session.StateClosed {
		return false
	}
	rt.closeSession(deviceID, sessionID, reason, "manual-close")
	return true
}

// SendCommand validates and emits one outbound command through the session
// seq allocator. An empty session id targets the device's latest session.
func (rt *Runtime) SendCommand(ctx context.Context, deviceID, sessionID, cmdType string, payload map[string]any, traceID string) (protocol.Envelope, error) {
	t, ok := protocol.ParseCommandType(cmdType)
	if !ok {
		return protocol.Envelope{}, fmt.Errorf("%w: unknown command type %q", protocol.ErrBadEnvelope, cmdType)
	}
	if deviceID == "" {
		return protocol.Envelope{}, fmt.Errorf("%w: device_id is required", protocol.ErrBadEnvelope)
	}
	if sessionID == "" {
		snap, ok := rt.sessions.Latest(deviceID)
		if !ok {
			return protocol.Envelope{}, fmt.Errorf("%w: %s", ErrNoSession, deviceID)
		}
		sessionID = snap.SessionID
	}
	return rt.sendCommand(ctx, deviceID, sessionID, t, payload, traceID)
}

// InjectEvent feeds one inbound envelope into the runtime as though the
// adapter delivered it. The control API uses it to drive mock-adapter
// deployments and replay captured traffic.
func (rt *Runtime) InjectEvent(env protocol.Envelope) error {
	if err := env.Validate(); err != nil {
		return err
	}
	if env.Direction != protocol.DirectionEvent {
		return fmt.Errorf("%w: inject expects direction %q, got %q", protocol.ErrBadEnvelope, protocol.DirectionEvent, env.Direction)
	}
	rt.mu.Lock()
	running := rt.running
	rt.mu.Unlock()
	if !running {
		return ErrNotRunning
	}
	rt.routeEvent(env)
	return nil
}
