package runtime

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opencane/edged/pkg/lifelog"
	"github.com/opencane/edged/pkg/policy"
	"github.com/opencane/edged/pkg/protocol"
	"github.com/opencane/edged/pkg/session"
	"github.com/opencane/edged/pkg/store"
)

func TestDeliverTaskUpdateSendsCommandAndSpeaks(t *testing.T) {
	fx := newFixture(t, Options{
		Store:  newMemStore(),
		Safety: policy.NewSafetyPolicy(policy.DefaultSafetyConfig()),
	})
	fx.hello()

	err := fx.rt.DeliverTaskUpdate(context.Background(), map[string]any{
		"device_id":  testDevice,
		"session_id": testSession,
		"task_id":    "t-1",
		"status":     "success",
		"event":      "success",
		"message":    "Task finished.",
		"speak":      true,
	})
	require.NoError(t, err)

	update := fx.waitCommand(protocol.CommandTaskUpdate)
	assert.Equal(t, "t-1", update.Payload["task_id"])
	assert.Equal(t, "success", update.Payload["status"])
	assert.Equal(t, "Task finished.", update.Payload["message"])
	extra, ok := update.Payload["extra"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "success", extra["event"])

	start := fx.waitCommand(protocol.CommandTTSStart)
	assert.Equal(t, "Task finished.", start.Payload["text"])
	fx.waitCommand(protocol.CommandTTSStop)
	fx.waitState(session.StateReady)

	// The safety gate ran once, before the command; the spoken copy reuses
	// the sanitized text.
	assert.Len(t, fx.store.eventsOfType("safety_policy"), 1)
	status := fx.rt.Status(context.Background())
	gate, ok := status["safety"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, true, gate["enabled"])
	assert.EqualValues(t, 1, gate["applied"])
}

func TestDeliverTaskUpdateSilentWhenSpeakFalse(t *testing.T) {
	fx := newFixture(t, Options{})
	fx.hello()

	err := fx.rt.DeliverTaskUpdate(context.Background(), map[string]any{
		"device_id": testDevice,
		"task_id":   "t-2",
		"status":    "running",
		"message":   "Working on it.",
		"speak":     false,
	})
	require.NoError(t, err)

	fx.waitCommand(protocol.CommandTaskUpdate)
	assert.Equal(t, []string{"hello_ack", "task_update"}, fx.mock.SentTypes())
}

func TestDeliverTaskUpdateRequiresLiveSession(t *testing.T) {
	fx := newFixture(t, Options{})

	err := fx.rt.DeliverTaskUpdate(context.Background(), map[string]any{
		"device_id": "ghost-device",
		"task_id":   "t-3",
		"status":    "success",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no live session")

	err = fx.rt.DeliverTaskUpdate(context.Background(), map[string]any{"task_id": "t-4"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "device_id")
}

func TestHelloFlushesPendingTaskUpdates(t *testing.T) {
	tasks := &recordingTasks{}
	fx := newFixture(t, Options{Tasks: tasks})

	fx.hello()

	require.Eventually(t, func() bool {
		return len(tasks.flushCalls()) == 1
	}, 3*time.Second, 5*time.Millisecond)
	call := tasks.flushCalls()[0]
	assert.Equal(t, testDevice, call.deviceID)
	assert.Equal(t, testSession, call.sessionID)
	assert.Equal(t, 20, call.limit)
}

func TestHelloReplaysQueuedOperations(t *testing.T) {
	ms := newMemStore()
	ms.enqueue(store.Operation{
		ID:          "op-1",
		DeviceID:    testDevice,
		OpType:      "set_config",
		CommandType: "set_config",
		Status:      "queued",
		Payload:     map[string]any{"volume": 3},
	})
	fx := newFixture(t, Options{Store: ms})

	fx.hello()

	cmd := fx.waitCommand(protocol.CommandSetConfig)
	assert.EqualValues(t, 3, cmd.Payload["volume"])
	assert.Equal(t, "op-1", cmd.Payload["operation_id"])

	require.Eventually(t, func() bool {
		return ms.operation("op-1").Status == "sent"
	}, 3*time.Second, 5*time.Millisecond)

	require.Eventually(t, func() bool {
		rows := ms.eventsOfType("device_operation_dispatch")
		return len(rows) == 1 && rows[0].Payload["replayed"] == true
	}, 3*time.Second, 5*time.Millisecond)
}

func TestToolResultResolvesOperation(t *testing.T) {
	ms := newMemStore()
	ms.enqueue(store.Operation{
		ID:          "op-1",
		DeviceID:    testDevice,
		OpType:      "set_config",
		CommandType: "set_config",
		Status:      "sent",
	})
	fx := newFixture(t, Options{Store: ms, Config: Config{ToolResultEnabled: true}})

	fx.hello()
	fx.inject(protocol.EventToolResult, 2, map[string]any{
		"operation_id": "op-1",
		"tool_name":    "set_config",
		"success":      true,
		"result":       map[string]any{"applied": true},
	})

	sent := fx.waitSent(2)
	assert.Equal(t, "ack", sent[1].Type)
	assert.EqualValues(t, 2, sent[1].Payload["ack_seq"])

	require.Eventually(t, func() bool {
		op := ms.operation("op-1")
		return op.Status == "acked" && op.Result != nil
	}, 3*time.Second, 5*time.Millisecond)
	assert.Equal(t, true, ms.operation("op-1").Result["applied"])

	require.Eventually(t, func() bool {
		rows := ms.eventsOfType("tool_result")
		return len(rows) == 1 &&
			rows[0].Payload["accepted"] == true &&
			rows[0].Payload["tool_name"] == "set_config"
	}, 3*time.Second, 5*time.Millisecond)
}

func TestToolResultFailureMarksOperationFailed(t *testing.T) {
	ms := newMemStore()
	ms.enqueue(store.Operation{
		ID:          "op-2",
		DeviceID:    testDevice,
		OpType:      "tool_call",
		CommandType: "tool_call",
		Status:      "sent",
	})
	fx := newFixture(t, Options{Store: ms, Config: Config{ToolResultEnabled: true}})

	fx.hello()
	fx.inject(protocol.EventToolResult, 2, map[string]any{
		"operation_id": "op-2",
		"tool_name":    "camera_snapshot",
		"error":        "lens covered",
	})

	require.Eventually(t, func() bool {
		return ms.operation("op-2").Status == "failed"
	}, 3*time.Second, 5*time.Millisecond)
	assert.Equal(t, "lens covered", ms.operation("op-2").ErrorMessage)

	rows := ms.eventsOfType("tool_result")
	require.Len(t, rows, 1)
	assert.Equal(t, "P2", rows[0].RiskLevel)
	assert.Equal(t, false, rows[0].Payload["success"])
}

func TestToolResultIgnoredWhenFeatureOff(t *testing.T) {
	ms := newMemStore()
	ms.enqueue(store.Operation{
		ID:          "op-1",
		DeviceID:    testDevice,
		OpType:      "set_config",
		CommandType: "set_config",
		Status:      "sent",
	})
	fx := newFixture(t, Options{Store: ms})

	fx.hello()
	fx.inject(protocol.EventToolResult, 2, map[string]any{
		"operation_id": "op-1",
		"success":      true,
	})

	require.Eventually(t, func() bool {
		rows := ms.eventsOfType("tool_result_ignored")
		return len(rows) == 1 && rows[0].Payload["reason"] == "feature_disabled"
	}, 3*time.Second, 5*time.Millisecond)
	assert.Equal(t, "sent", ms.operation("op-1").Status)
	assert.Empty(t, ms.eventsOfType("tool_result"))
}

func TestDispatchOperationValidatesInput(t *testing.T) {
	fx := newFixture(t, Options{})

	_, err := fx.rt.DispatchOperation(context.Background(), "", "", "set_config", nil, "")
	assert.True(t, store.IsValidationError(err))

	_, err = fx.rt.DispatchOperation(context.Background(), testDevice, "", "reboot", nil, "")
	assert.True(t, store.IsValidationError(err))

	_, err = fx.rt.DispatchOperation(context.Background(), testDevice, "", "set_config", nil, "")
	assert.True(t, errors.Is(err, store.ErrNotFound))
}

func TestDispatchOperationSendsToLiveSession(t *testing.T) {
	fx := newFixture(t, Options{Store: newMemStore()})
	fx.hello()

	dispatch, err := fx.rt.DispatchOperation(context.Background(), testDevice, "", "tool_call",
		map[string]any{"tool": "camera_snapshot"}, "")
	require.NoError(t, err)
	assert.Equal(t, testDevice, dispatch.DeviceID)
	assert.Equal(t, testSession, dispatch.SessionID)
	assert.Equal(t, "tool_call", dispatch.OpType)
	assert.Equal(t, "tool_call", dispatch.CommandType)
	assert.EqualValues(t, 2, dispatch.Seq)

	cmd := fx.waitCommand(protocol.CommandToolCall)
	assert.Equal(t, "camera_snapshot", cmd.Payload["tool"])

	require.Eventually(t, func() bool {
		return len(fx.store.eventsOfType("device_operation_dispatch")) == 1
	}, 3*time.Second, 5*time.Millisecond)
}

func TestRuntimeStatusSnapshot(t *testing.T) {
	fx := newFixture(t, Options{
		Store:  newMemStore(),
		Safety: policy.NewSafetyPolicy(policy.DefaultSafetyConfig()),
		Ingest: &recordingIngest{},
		Tasks:  &recordingTasks{stats: map[string]int{"running": 2}},
	})
	fx.hello()

	status := fx.rt.Status(context.Background())
	assert.Equal(t, "mock", status["adapter"])
	assert.Equal(t, "memory", status["transport"])
	assert.Equal(t, true, status["running"])

	metrics, ok := status["metrics"].(MetricsSnapshot)
	require.True(t, ok)
	assert.GreaterOrEqual(t, metrics.EventsTotal, int64(1))

	gate, ok := status["safety"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, true, gate["enabled"])

	queue, ok := status["lifelog"].(lifelog.QueueStatus)
	require.True(t, ok)
	assert.Equal(t, "wait", queue.Policy)

	assert.Equal(t, map[string]int{"running": 2}, status["digital_task"])

	devices, ok := status["devices"].([]session.Snapshot)
	require.True(t, ok)
	require.Len(t, devices, 1)
	assert.Equal(t, testDevice, devices[0].DeviceID)

	snap, ok := fx.rt.DeviceStatus(testDevice)
	require.True(t, ok)
	assert.Equal(t, testSession, snap.SessionID)
}

func TestManualAbortInterruptsDevice(t *testing.T) {
	fx := newFixture(t, Options{})
	fx.hello()

	require.True(t, fx.rt.Abort(testDevice, ""))

	stop := fx.waitCommand(protocol.CommandTTSStop)
	assert.Equal(t, true, stop.Payload["aborted"])
	assert.Equal(t, "manual_abort", stop.Payload["reason"])
	fx.waitState(session.StateReady)

	assert.False(t, fx.rt.Abort("ghost-device", "nope"))
}

func TestCloseDeviceSessionManually(t *testing.T) {
	fx := newFixture(t, Options{})
	fx.hello()

	require.True(t, fx.rt.CloseDeviceSession(testDevice, testSession, ""))

	closeCmd := fx.waitCommand(protocol.CommandClose)
	assert.Equal(t, "manual_close", closeCmd.Payload["reason"])

	snap := fx.waitState(session.StateClosed)
	assert.Equal(t, "manual_close", snap.CloseReason)

	assert.False(t, fx.rt.CloseDeviceSession(testDevice, testSession, ""))
}

func TestInjectEventValidation(t *testing.T) {
	fx := newFixture(t, Options{})

	cmd := protocol.MakeCommand(protocol.CommandAck, testDevice, testSession, 1, nil)
	err := fx.rt.InjectEvent(cmd)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "direction")

	bogus := protocol.Envelope{Direction: protocol.DirectionEvent, Type: "bogus", DeviceID: testDevice}
	err = fx.rt.InjectEvent(bogus)
	assert.True(t, errors.Is(err, protocol.ErrBadEnvelope))

	require.NoError(t, fx.rt.InjectEvent(protocol.MakeEvent(protocol.EventHello, testDevice, testSession, 1, nil)))
	fx.waitCommand(protocol.CommandHelloAck)

	require.NoError(t, fx.rt.Stop(context.Background()))
	err = fx.rt.InjectEvent(protocol.MakeEvent(protocol.EventHeartbeat, testDevice, testSession, 2, nil))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotRunning))
}
