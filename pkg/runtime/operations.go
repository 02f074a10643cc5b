package runtime

import (
	"context"
	"fmt"
	"strings"

	"github.com/opencane/edged/pkg/protocol"
	"github.com/opencane/edged/pkg/session"
	"github.com/opencane/edged/pkg/store"
)

// OperationDispatch reports one device command sent on behalf of the
// control plane.
type OperationDispatch struct {
	DeviceID    string `json:"device_id"`
	SessionID   string `json:"session_id"`
	OpType      string `json:"op_type"`
	CommandType string `json:"command_type"`
	Seq         int64  `json:"seq"`
}

// DispatchOperation sends one control-plane operation to a live device
// session immediately. Callers that need store-backed delivery enqueue the
// operation instead and let the hello replay pick it up.
func (rt *Runtime) DispatchOperation(ctx context.Context, deviceID, sessionID, opType string, payload map[string]any, traceID string) (OperationDispatch, error) {
	deviceID = strings.TrimSpace(deviceID)
	if deviceID == "" {
		return OperationDispatch{}, store.NewValidationError("device_id", "required")
	}
	cmdType, ok := protocol.OperationCommandType(opType)
	if !ok {
		return OperationDispatch{}, store.NewValidationError("op_type", fmt.Sprintf("unsupported op_type %q", opType))
	}

	var snap session.Snapshot
	var live bool
	if sessionID != "" {
		snap, live = rt.sessions.Get(deviceID, sessionID)
	} else {
		snap, live = rt.sessions.Latest(deviceID)
	}
	if !live || snap.State == session.StateClosed {
		return OperationDispatch{}, store.ErrNotFound
	}
	if traceID == "" {
		traceID = "device-op"
	}

	cmd, err := rt.sendCommand(ctx, snap.DeviceID, snap.SessionID, cmdType, copyMap(payload), traceID)
	if err != nil {
		return OperationDispatch{}, fmt.Errorf("dispatch %s to %s: %w", opType, deviceID, err)
	}
	rt.recordLifelog(snap, "device_operation_dispatch", map[string]any{
		"trace_id":     traceID,
		"op_type":      opType,
		"command_type": string(cmdType),
		"seq":          cmd.Seq,
		"payload":      payload,
	}, "P3", 1.0)
	return OperationDispatch{
		DeviceID:    snap.DeviceID,
		SessionID:   snap.SessionID,
		OpType:      opType,
		CommandType: string(cmdType),
		Seq:         cmd.Seq,
	}, nil
}

// replayQueuedOperations re-dispatches operations that were enqueued while
// the device was offline. Runs off the hello path; operations that fail to
// send stay queued for the next hello.
func (rt *Runtime) replayQueuedOperations(snap session.Snapshot, traceID string) {
	ops, err := rt.store.QueuedOperations(rt.baseCtx, snap.DeviceID, rt.cfg.OperationReplayLimit)
	if err != nil {
		rt.logger.Debug("queued operation lookup failed",
			"device_id", snap.DeviceID,
			"trace_id", traceID,
			"error", err)
		return
	}
	for _, op := range ops {
		payload := copyMap(op.Payload)
		if payload == nil {
			payload = map[string]any{}
		}
		// The device echoes operation_id back in tool_result so the store
		// row can be resolved.
		payload["operation_id"] = op.ID

		cmd, err := rt.sendCommand(rt.baseCtx, snap.DeviceID, snap.SessionID,
			protocol.CommandType(op.CommandType), payload, traceID)
		if err != nil {
			continue
		}
		if err := rt.store.MarkOperationSent(rt.baseCtx, op.ID); err != nil {
			rt.logger.Debug("mark operation sent failed", "operation_id", op.ID, "error", err)
		}
		rt.recordLifelog(snap, "device_operation_dispatch", map[string]any{
			"trace_id":     traceID,
			"operation_id": op.ID,
			"op_type":      op.OpType,
			"command_type": op.CommandType,
			"seq":          cmd.Seq,
			"replayed":     true,
			"payload":      op.Payload,
		}, "P3", 1.0)
	}
}

// onToolResult acks the event, records it, and resolves the matching device
// operation when the feature is on.
func (rt *Runtime) onToolResult(snap session.Snapshot, env protocol.Envelope, traceID string) {
	rt.sendAck(snap, env.Seq, traceID)
	payload := env.Payload

	operationID := protocol.PayloadString(payload, "operation_id", "operationId", "op_id")
	toolName := protocol.PayloadString(payload, "tool_name", "toolName", "name")
	errMsg := protocol.PayloadString(payload, "error")
	success := protocol.PayloadBool(payload, errMsg == "", "success")
	result := protocol.PayloadMap(payload, "result")
	if result == nil {
		if raw, exists := payload["result"]; exists && raw != nil && raw != "" {
			result = map[string]any{"value": raw}
		}
	}

	eventPayload := map[string]any{
		"trace_id":     traceID,
		"operation_id": operationID,
		"tool_name":    toolName,
		"success":      success,
		"result":       result,
		"error":        errMsg,
	}

	if !rt.cfg.ToolResultEnabled {
		eventPayload["accepted"] = false
		eventPayload["reason"] = "feature_disabled"
		rt.recordLifelog(snap, "tool_result_ignored", eventPayload, "P3", 1.0)
		return
	}

	eventPayload["accepted"] = true
	risk := "P3"
	if !success && errMsg != "" {
		risk = "P2"
	}
	confidence := 0.9
	if !success {
		confidence = 0.7
	}
	rt.recordLifelog(snap, "tool_result", eventPayload, risk, confidence)

	if rt.cfg.ToolResultMarkOperations != nil && *rt.cfg.ToolResultMarkOperations &&
		operationID != "" && rt.store != nil {
		if err := rt.store.MarkOperationResult(rt.baseCtx, operationID, result, success, errMsg); err != nil {
			rt.logger.Debug("operation mark from tool_result failed",
				"operation_id", operationID,
				"error", err)
		}
	}
}
