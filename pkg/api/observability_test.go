package api

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opencane/edged/pkg/lifelog"
	"github.com/opencane/edged/pkg/runtime"
	"github.com/opencane/edged/pkg/session"
	"github.com/opencane/edged/pkg/store"
)

func healthyStatus() map[string]any {
	return map[string]any{
		"running": true,
		"metrics": runtime.MetricsSnapshot{
			VoiceTurnTotal:        100,
			VoiceTurnFailed:       2,
			VoiceTurnAvgLatencyMS: 420.5,
			STTAvgLatencyMS:       120.0,
			AgentAvgLatencyMS:     250.0,
		},
		"devices": []session.Snapshot{
			{DeviceID: "glass-1", State: session.StateReady},
			{DeviceID: "glass-2", State: session.StateListening},
		},
		"lifelog":      lifelog.QueueStatus{Depth: 2, Capacity: 64, Utilization: 0.03},
		"digital_task": map[string]int{store.TaskPending: 1, store.TaskSuccess: 17, store.TaskFailed: 2},
		"safety":       map[string]any{"applied": int64(40), "downgraded": int64(3)},
	}
}

func TestBuildHealthReport(t *testing.T) {
	t.Run("healthy when every rate is under threshold", func(t *testing.T) {
		report := buildHealthReport(healthyStatus(), defaultHealthThresholds(), 1234)

		assert.True(t, report.Success)
		assert.True(t, report.Healthy)
		assert.Empty(t, report.Alerts)
		assert.Equal(t, int64(1234), report.TSMS)
		assert.Equal(t, 20, report.Metrics["task_total"])
		assert.Equal(t, 2, report.Metrics["task_failures"])
		assert.Equal(t, 0.1, report.Metrics["task_failure_rate"])
		assert.Equal(t, 0.02, report.Metrics["voice_turn_failure_rate"])
	})

	t.Run("task failures over the rate raise an alert", func(t *testing.T) {
		status := healthyStatus()
		status["digital_task"] = map[string]int{
			store.TaskSuccess:  5,
			store.TaskFailed:   3,
			store.TaskTimeout:  1,
			store.TaskCanceled: 1,
		}
		report := buildHealthReport(status, defaultHealthThresholds(), 0)

		assert.False(t, report.Healthy)
		require.Len(t, report.Alerts, 1)
		assert.Equal(t, "task_failure_rate", report.Alerts[0].Metric)
		assert.Equal(t, 0.5, report.Alerts[0].Value)
		assert.Equal(t, 0.3, report.Alerts[0].Threshold)
	})

	t.Run("volume floor suppresses small-sample alarms", func(t *testing.T) {
		status := healthyStatus()
		// One task, one failure: 100% failure rate but under the floor.
		status["digital_task"] = map[string]int{store.TaskFailed: 1}
		report := buildHealthReport(status, defaultHealthThresholds(), 0)

		assert.True(t, report.Healthy)
	})

	t.Run("safety downgrades over the rate raise an alert", func(t *testing.T) {
		status := healthyStatus()
		status["safety"] = map[string]any{"applied": int64(20), "downgraded": int64(10)}
		report := buildHealthReport(status, defaultHealthThresholds(), 0)

		assert.False(t, report.Healthy)
		require.Len(t, report.Alerts, 1)
		assert.Equal(t, "safety_downgrade_rate", report.Alerts[0].Metric)
	})

	t.Run("offline devices over the rate raise an alert", func(t *testing.T) {
		status := healthyStatus()
		status["devices"] = []session.Snapshot{
			{DeviceID: "glass-1", State: session.StateClosed},
			{DeviceID: "glass-2", State: session.StateClosed},
			{DeviceID: "glass-3", State: session.StateReady},
		}
		report := buildHealthReport(status, defaultHealthThresholds(), 0)

		assert.False(t, report.Healthy)
		require.Len(t, report.Alerts, 1)
		assert.Equal(t, "device_offline_rate", report.Alerts[0].Metric)
		assert.Equal(t, 2, report.Metrics["devices_offline"])
	})

	t.Run("queue utilization over the cap raises an alert", func(t *testing.T) {
		status := healthyStatus()
		status["lifelog"] = lifelog.QueueStatus{Depth: 60, Capacity: 64, Utilization: 0.94}
		report := buildHealthReport(status, defaultHealthThresholds(), 0)

		assert.False(t, report.Healthy)
		require.Len(t, report.Alerts, 1)
		assert.Equal(t, "ingest_queue_utilization", report.Alerts[0].Metric)
	})

	t.Run("historic rejections alone do not alarm", func(t *testing.T) {
		status := healthyStatus()
		// Rejections happened earlier, queue now idle.
		status["lifelog"] = lifelog.QueueStatus{Depth: 0, Capacity: 64, Utilization: 0, RejectedTotal: 9}
		report := buildHealthReport(status, defaultHealthThresholds(), 0)

		assert.True(t, report.Healthy)
	})

	t.Run("rejections with current pressure alarm", func(t *testing.T) {
		status := healthyStatus()
		status["lifelog"] = lifelog.QueueStatus{Depth: 5, Capacity: 64, Utilization: 0.08, RejectedTotal: 9}
		report := buildHealthReport(status, defaultHealthThresholds(), 0)

		assert.False(t, report.Healthy)
		require.Len(t, report.Alerts, 1)
		assert.Equal(t, "ingest_queue_rejected_total", report.Alerts[0].Metric)
	})

	t.Run("tolerates a sparse status document", func(t *testing.T) {
		report := buildHealthReport(map[string]any{"running": false}, defaultHealthThresholds(), 0)

		assert.True(t, report.Healthy)
		assert.Equal(t, 0, report.Metrics["task_total"])
	})
}

func TestSnapshotCounters(t *testing.T) {
	report := buildHealthReport(healthyStatus(), defaultHealthThresholds(), 99)
	counters := snapshotCounters(report)

	assert.Equal(t, true, counters["healthy"])
	assert.Equal(t, report.Metrics["task_failure_rate"], counters["task_failure_rate"])
}

func TestBuildHealthHistory(t *testing.T) {
	const nowMS = int64(1_700_000_000_000)

	sample := func(offsetMS int64, healthy bool, failureRate float64) store.CounterSnapshot {
		return store.CounterSnapshot{
			Scope: observabilityScope,
			TSMS:  nowMS - offsetMS,
			Counters: map[string]any{
				"healthy":           healthy,
				"task_failure_rate": failureRate,
			},
		}
	}

	t.Run("buckets aggregate avg and max", func(t *testing.T) {
		samples := []store.CounterSnapshot{
			sample(90_000, false, 0.5), // first bucket
			sample(80_000, true, 0.1),  // first bucket
			sample(30_000, true, 0.2),  // second bucket
		}
		points, bucketSeconds, used := buildHealthHistory(samples, nowMS, 120, 60, 100)

		assert.Equal(t, 60, bucketSeconds)
		assert.Equal(t, 3, used)
		require.Len(t, points, 2)

		first := points[0]
		assert.Equal(t, 2, first.Count)
		assert.Equal(t, 1, first.HealthyCount)
		assert.Equal(t, 0.3, first.Metrics["task_failure_rate"].Avg)
		assert.Equal(t, 0.5, first.Metrics["task_failure_rate"].Max)

		second := points[1]
		assert.Equal(t, 1, second.Count)
		assert.Equal(t, 1, second.HealthyCount)
		assert.True(t, second.TSMS > first.TSMS)
	})

	t.Run("samples outside the window are discarded", func(t *testing.T) {
		samples := []store.CounterSnapshot{
			sample(10_000, true, 0.1),
			sample(300_000, true, 0.9), // beyond the 120s window
		}
		points, _, used := buildHealthHistory(samples, nowMS, 120, 60, 100)

		assert.Equal(t, 1, used)
		require.Len(t, points, 1)
		assert.Equal(t, 0.1, points[0].Metrics["task_failure_rate"].Avg)
	})

	t.Run("bucket width stretches to honor max points", func(t *testing.T) {
		samples := []store.CounterSnapshot{sample(10_000, true, 0.1)}
		points, bucketSeconds, _ := buildHealthHistory(samples, nowMS, 3600, 5, 10)

		assert.Equal(t, 360, bucketSeconds)
		assert.LessOrEqual(t, len(points), 10)
	})

	t.Run("window and bucket are clamped", func(t *testing.T) {
		samples := []store.CounterSnapshot{sample(1_000, true, 0.1)}
		// window below the 60s floor, bucket below the 5s floor
		points, bucketSeconds, used := buildHealthHistory(samples, nowMS, 1, 1, 100)

		assert.Equal(t, 5, bucketSeconds)
		assert.Equal(t, 1, used)
		require.Len(t, points, 1)
	})
}
