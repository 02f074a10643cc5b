package api

import (
	"sort"

	"github.com/opencane/edged/pkg/database"
	"github.com/opencane/edged/pkg/lifelog"
	"github.com/opencane/edged/pkg/runtime"
	"github.com/opencane/edged/pkg/session"
	"github.com/opencane/edged/pkg/store"
)

// HealthThresholds bound the derived runtime rates; crossing one raises an
// alert in the health report. Minimum-volume floors keep a single failed
// task on a fresh deployment from tripping the rate alarms.
type HealthThresholds struct {
	TaskFailureRateMax     float64
	SafetyDowngradeRateMax float64
	DeviceOfflineRateMax   float64
	IngestUtilizationMax   float64

	MinTaskTotal     int
	MinSafetyApplied int
	MinDevicesTotal  int

	// Rejected/dropped ingest totals only alert while the queue shows
	// current pressure, so a long-resolved spike does not alarm forever.
	RejectedActiveDepthMin int
	RejectedActiveUtilMin  float64
}

func defaultHealthThresholds() HealthThresholds {
	return HealthThresholds{
		TaskFailureRateMax:     0.3,
		SafetyDowngradeRateMax: 0.35,
		DeviceOfflineRateMax:   0.3,
		IngestUtilizationMax:   0.85,
		MinTaskTotal:           10,
		MinSafetyApplied:       10,
		MinDevicesTotal:        1,
		RejectedActiveDepthMin: 1,
		RejectedActiveUtilMin:  0.2,
	}
}

// HealthAlert flags one metric over its threshold.
type HealthAlert struct {
	Metric    string  `json:"metric"`
	Value     float64 `json:"value"`
	Threshold float64 `json:"threshold"`
}

// HealthReport is the derived health document for one point in time.
// Database is filled only when the server was wired with a database handle.
type HealthReport struct {
	Success    bool                   `json:"success"`
	Healthy    bool                   `json:"healthy"`
	TSMS       int64                  `json:"ts_ms"`
	Metrics    map[string]any         `json:"metrics"`
	Thresholds map[string]any         `json:"thresholds"`
	Alerts     []HealthAlert          `json:"alerts"`
	Database   *database.HealthStatus `json:"database,omitempty"`
}

// buildHealthReport derives failure rates from a runtime status document and
// evaluates them against the thresholds.
func buildHealthReport(status map[string]any, th HealthThresholds, tsMS int64) HealthReport {
	var taskTotal, taskFailures int
	if stats, ok := status["digital_task"].(map[string]int); ok {
		for _, n := range stats {
			taskTotal += n
		}
		taskFailures = stats[store.TaskFailed] + stats[store.TaskTimeout] + stats[store.TaskCanceled]
	}
	taskFailureRate := ratio(float64(taskFailures), float64(taskTotal))

	var safetyApplied, safetyDowngraded int64
	if saf, ok := status["safety"].(map[string]any); ok {
		safetyApplied = asInt64(saf["applied"])
		safetyDowngraded = asInt64(saf["downgraded"])
	}
	safetyDowngradeRate := ratio(float64(safetyDowngraded), float64(safetyApplied))

	var devicesTotal, devicesOffline int
	if devs, ok := status["devices"].([]session.Snapshot); ok {
		devicesTotal = len(devs)
		for _, d := range devs {
			if d.State == session.StateClosed {
				devicesOffline++
			}
		}
	}
	deviceOfflineRate := ratio(float64(devicesOffline), float64(devicesTotal))

	var queue lifelog.QueueStatus
	if qs, ok := status["lifelog"].(lifelog.QueueStatus); ok {
		queue = qs
	}

	var m runtime.MetricsSnapshot
	if ms, ok := status["metrics"].(runtime.MetricsSnapshot); ok {
		m = ms
	}
	voiceFailureRate := ratio(float64(m.VoiceTurnFailed), float64(m.VoiceTurnTotal))

	metrics := map[string]any{
		"task_total":                  taskTotal,
		"task_failures":               taskFailures,
		"task_failure_rate":           round4(taskFailureRate),
		"safety_applied":              safetyApplied,
		"safety_downgraded":           safetyDowngraded,
		"safety_downgrade_rate":       round4(safetyDowngradeRate),
		"devices_total":               devicesTotal,
		"devices_offline":             devicesOffline,
		"device_offline_rate":         round4(deviceOfflineRate),
		"ingest_queue_depth":          queue.Depth,
		"ingest_queue_capacity":       queue.Capacity,
		"ingest_queue_utilization":    round4(queue.Utilization),
		"ingest_queue_rejected_total": queue.RejectedTotal,
		"ingest_queue_dropped_total":  queue.DroppedTotal,
		"voice_turn_total":            m.VoiceTurnTotal,
		"voice_turn_failed":           m.VoiceTurnFailed,
		"voice_turn_failure_rate":     round4(voiceFailureRate),
		"voice_turn_avg_latency_ms":   m.VoiceTurnAvgLatencyMS,
		"voice_turn_max_latency_ms":   m.VoiceTurnMaxLatencyMS,
		"stt_avg_latency_ms":          m.STTAvgLatencyMS,
		"agent_avg_latency_ms":        m.AgentAvgLatencyMS,
	}

	var alerts []HealthAlert
	if taskTotal >= th.MinTaskTotal && taskFailureRate > th.TaskFailureRateMax {
		alerts = append(alerts, HealthAlert{"task_failure_rate", round4(taskFailureRate), th.TaskFailureRateMax})
	}
	if safetyApplied >= int64(th.MinSafetyApplied) && safetyDowngradeRate > th.SafetyDowngradeRateMax {
		alerts = append(alerts, HealthAlert{"safety_downgrade_rate", round4(safetyDowngradeRate), th.SafetyDowngradeRateMax})
	}
	if devicesTotal >= th.MinDevicesTotal && deviceOfflineRate > th.DeviceOfflineRateMax {
		alerts = append(alerts, HealthAlert{"device_offline_rate", round4(deviceOfflineRate), th.DeviceOfflineRateMax})
	}
	if queue.Utilization > th.IngestUtilizationMax {
		alerts = append(alerts, HealthAlert{"ingest_queue_utilization", round4(queue.Utilization), th.IngestUtilizationMax})
	}
	queueActive := queue.Depth >= th.RejectedActiveDepthMin || queue.Utilization >= th.RejectedActiveUtilMin
	if queue.RejectedTotal > 0 && queueActive {
		alerts = append(alerts, HealthAlert{"ingest_queue_rejected_total", float64(queue.RejectedTotal), 0})
	}
	if queue.DroppedTotal > 0 && queueActive {
		alerts = append(alerts, HealthAlert{"ingest_queue_dropped_total", float64(queue.DroppedTotal), 0})
	}

	return HealthReport{
		Success: true,
		Healthy: len(alerts) == 0,
		TSMS:    tsMS,
		Metrics: metrics,
		Thresholds: map[string]any{
			"task_failure_rate_max":      th.TaskFailureRateMax,
			"safety_downgrade_rate_max":  th.SafetyDowngradeRateMax,
			"device_offline_rate_max":    th.DeviceOfflineRateMax,
			"ingest_utilization_max":     th.IngestUtilizationMax,
			"min_task_total":             th.MinTaskTotal,
			"min_safety_applied":         th.MinSafetyApplied,
			"min_devices_total":          th.MinDevicesTotal,
			"rejected_active_depth_min":  th.RejectedActiveDepthMin,
			"rejected_active_util_min":   th.RejectedActiveUtilMin,
		},
		Alerts: alerts,
	}
}

// snapshotCounters flattens a health report into the persisted counter form.
func snapshotCounters(report HealthReport) map[string]any {
	counters := make(map[string]any, len(report.Metrics)+1)
	for k, v := range report.Metrics {
		counters[k] = v
	}
	counters["healthy"] = report.Healthy
	return counters
}

// The series aggregated per bucket in history responses.
var historyMetrics = []string{
	"task_failure_rate",
	"safety_downgrade_rate",
	"device_offline_rate",
	"ingest_queue_utilization",
	"voice_turn_failure_rate",
	"voice_turn_avg_latency_ms",
	"stt_avg_latency_ms",
	"agent_avg_latency_ms",
}

type metricAgg struct {
	Avg float64 `json:"avg"`
	Max float64 `json:"max"`
}

// HistoryPoint aggregates the snapshots that landed in one time bucket.
type HistoryPoint struct {
	TSMS         int64                `json:"ts_ms"`
	Count        int                  `json:"count"`
	HealthyCount int                  `json:"healthy_count"`
	Metrics      map[string]metricAgg `json:"metrics"`
}

type historyBucket struct {
	count   int
	healthy int
	sum     map[string]float64
	max     map[string]float64
}

// buildHealthHistory buckets persisted counter snapshots over a trailing
// window. Bucket width stretches when the window would exceed maxPoints.
func buildHealthHistory(samples []store.CounterSnapshot, nowMS int64, windowSeconds, bucketSeconds, maxPoints int) ([]HistoryPoint, int, int) {
	windowSeconds = clampInt(windowSeconds, 60, 24*60*60)
	bucketSeconds = clampInt(bucketSeconds, 5, 60*60)
	maxPoints = clampInt(maxPoints, 1, 1000)

	windowMS := int64(windowSeconds) * 1000
	bucketMS := int64(bucketSeconds) * 1000
	if total := (windowMS + bucketMS - 1) / bucketMS; total > int64(maxPoints) {
		bucketMS = (windowMS + int64(maxPoints) - 1) / int64(maxPoints)
		if bucketMS < 1000 {
			bucketMS = 1000
		}
	}
	startMS := nowMS - windowMS

	buckets := make(map[int64]*historyBucket)
	used := 0
	for _, sample := range samples {
		if sample.TSMS < startMS || sample.TSMS > nowMS {
			continue
		}
		used++
		idx := (sample.TSMS - startMS) / bucketMS
		b, ok := buckets[idx]
		if !ok {
			b = &historyBucket{
				sum: make(map[string]float64, len(historyMetrics)),
				max: make(map[string]float64, len(historyMetrics)),
			}
			buckets[idx] = b
		}
		b.count++
		if healthy, _ := sample.Counters["healthy"].(bool); healthy {
			b.healthy++
		}
		for _, name := range historyMetrics {
			v := asFloat64(sample.Counters[name])
			b.sum[name] += v
			if v > b.max[name] {
				b.max[name] = v
			}
		}
	}

	indexes := make([]int64, 0, len(buckets))
	for idx := range buckets {
		indexes = append(indexes, idx)
	}
	sort.Slice(indexes, func(i, j int) bool { return indexes[i] < indexes[j] })

	points := make([]HistoryPoint, 0, len(indexes))
	for _, idx := range indexes {
		b := buckets[idx]
		point := HistoryPoint{
			TSMS:         startMS + idx*bucketMS,
			Count:        b.count,
			HealthyCount: b.healthy,
			Metrics:      make(map[string]metricAgg, len(historyMetrics)),
		}
		for _, name := range historyMetrics {
			point.Metrics[name] = metricAgg{
				Avg: round4(b.sum[name] / float64(b.count)),
				Max: round4(b.max[name]),
			}
		}
		points = append(points, point)
	}
	return points, int(bucketMS / 1000), used
}

func ratio(part, whole float64) float64 {
	if whole <= 0 {
		return 0
	}
	return part / whole
}

func round4(v float64) float64 {
	return float64(int64(v*10000+0.5)) / 10000
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func asInt64(v any) int64 {
	switch n := v.(type) {
	case int64:
		return n
	case int:
		return int64(n)
	case float64:
		return int64(n)
	default:
		return 0
	}
}

func asFloat64(v any) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case int64:
		return float64(n)
	case int:
		return float64(n)
	default:
		return 0
	}
}
