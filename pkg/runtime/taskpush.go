package runtime

import (
	"context"
	"fmt"
	"strings"

	"github.com/opencane/edged/pkg/protocol"
	"github.com/opencane/edged/pkg/session"
	"github.com/opencane/edged/pkg/task"
)

// TaskStatusCallback adapts the runtime push path to the task service's
// delivery contract. A returned error tells the service to retry and, when
// retries run out, queue the payload durably for the next hello.
func (rt *Runtime) TaskStatusCallback() task.StatusCallback {
	return func(ctx context.Context, payload map[string]any) error {
		return rt.DeliverTaskUpdate(ctx, payload)
	}
}

// DeliverTaskUpdate pushes one digital-task status to a live device session
// as a task_update command, optionally spoken. The message passes the safety
// gate exactly once, before the command; the spoken copy reuses the
// sanitized text.
func (rt *Runtime) DeliverTaskUpdate(ctx context.Context, payload map[string]any) error {
	deviceID := protocol.PayloadString(payload, "device_id")
	if deviceID == "" {
		return fmt.Errorf("task update without device_id")
	}
	sessionID := protocol.PayloadString(payload, "session_id")

	var snap session.Snapshot
	var ok bool
	if sessionID != "" {
		snap, ok = rt.sessions.Get(deviceID, sessionID)
	} else {
		snap, ok = rt.sessions.Latest(deviceID)
	}
	if !ok || snap.State == session.StateClosed {
		return fmt.Errorf("no live session for device %s", deviceID)
	}

	taskID := protocol.PayloadString(payload, "task_id")
	status := protocol.PayloadString(payload, "status")
	event := protocol.PayloadString(payload, "event")
	speak := protocol.PayloadBool(payload, true, "speak")
	message := strings.TrimSpace(protocol.PayloadString(payload, "message"))
	traceID := protocol.PayloadString(payload, "trace_id")
	if traceID == "" {
		traceID = "digital-task"
	}

	confidence := statusDefaultConfidence(status)
	risk := statusDefaultRisk(status)
	policyContext := map[string]any{
		"task_id": taskID,
		"status":  status,
		"event":   event,
	}
	if message != "" {
		message = rt.applySafetyText(snap, message, traceID, speakOptions{
			Source:     "task_update",
			Confidence: confidence,
			RiskLevel:  risk,
			Context:    policyContext,
		})
	}

	cmdPayload := map[string]any{
		"task_id": taskID,
		"status":  status,
		"message": message,
	}
	extra := map[string]any{}
	if event != "" {
		extra["event"] = event
	}
	if doc, exists := payload["task"]; exists && doc != nil {
		extra["task"] = doc
	}
	if len(extra) > 0 {
		cmdPayload["extra"] = extra
	}

	if _, err := rt.sendCommand(ctx, snap.DeviceID, snap.SessionID, protocol.CommandTaskUpdate, cmdPayload, traceID); err != nil {
		return fmt.Errorf("push task_update %s: %w", taskID, err)
	}

	if speak && message != "" {
		if err := rt.speakText(ctx, snap, message, traceID, speakOptions{
			Source:     "task_update",
			Confidence: confidence,
			RiskLevel:  risk,
			Context:    policyContext,
			SkipSafety: true,
		}); err != nil {
			return nil
		}
		rt.sessions.UpdateState(snap.DeviceID, snap.SessionID, session.StateReady)
	}
	return nil
}

// flushTaskPushes replays queued status notices after hello so a device that
// slept through a task's lifetime still hears the outcome.
func (rt *Runtime) flushTaskPushes(snap session.Snapshot, traceID string) {
	res, err := rt.tasks.FlushPendingUpdates(rt.baseCtx, snap.DeviceID, snap.SessionID, rt.cfg.TaskPushFlushLimit)
	if err != nil {
		rt.logger.Debug("digital task flush failed",
			"device_id", snap.DeviceID,
			"trace_id", traceID,
			"error", err)
		return
	}
	rt.logger.Debug("digital-task flush",
		"trace_id", traceID,
		"device_id", snap.DeviceID,
		"session_id", snap.SessionID,
		"sent", res.Sent,
		"retry", res.Retry)
}

func statusDefaultConfidence(status string) float64 {
	switch strings.ToLower(strings.TrimSpace(status)) {
	case "success", "running", "pending":
		return 0.9
	case "failed", "timeout", "canceled":
		return 0.8
	default:
		return 0.75
	}
}

func statusDefaultRisk(status string) string {
	switch strings.ToLower(strings.TrimSpace(status)) {
	case "failed", "timeout":
		return "P2"
	default:
		return "P3"
	}
}
