package runtime

import (
	"math"
	"sync"
)

// Metrics aggregates runtime counters and voice-turn latency stats. All
// methods are safe for concurrent use.
type Metrics struct {
	mu sync.Mutex

	startedAtMS int64

	eventsTotal          int64
	commandsTotal        int64
	duplicateEventsTotal int64
	eventsByType         map[string]int64
	commandsByType       map[string]int64

	voiceTurnTotal  int64
	voiceTurnFailed int64
	voiceLatencySum float64
	voiceLatencyMax float64
	sttLatencySum   float64
	sttLatencyMax   float64
	agentLatencySum float64
	agentLatencyMax float64

	bargeInTotal           int64
	heartbeatTimeoutsTotal int64
	authDeniedTotal        int64
	outOfOrderEventsTotal  int64
	outOfOrderAudioTotal   int64
	sendFailuresTotal      int64
}

// MetricsSnapshot is a point-in-time copy of Metrics, shaped for the status
// and observability endpoints.
type MetricsSnapshot struct {
	StartedAtMS          int64            `json:"started_at_ms"`
	EventsTotal          int64            `json:"events_total"`
	CommandsTotal        int64            `json:"commands_total"`
	DuplicateEventsTotal int64            `json:"duplicate_events_total"`
	EventsByType         map[string]int64 `json:"events_by_type"`
	CommandsByType       map[string]int64 `json:"commands_by_type"`

	VoiceTurnTotal        int64   `json:"voice_turn_total"`
	VoiceTurnFailed       int64   `json:"voice_turn_failed"`
	VoiceTurnAvgLatencyMS float64 `json:"voice_turn_avg_latency_ms"`
	VoiceTurnMaxLatencyMS float64 `json:"voice_turn_max_latency_ms"`
	STTAvgLatencyMS       float64 `json:"stt_avg_latency_ms"`
	STTMaxLatencyMS       float64 `json:"stt_max_latency_ms"`
	AgentAvgLatencyMS     float64 `json:"agent_avg_latency_ms"`
	AgentMaxLatencyMS     float64 `json:"agent_max_latency_ms"`

	BargeInTotal           int64 `json:"barge_in_total"`
	HeartbeatTimeoutsTotal int64 `json:"heartbeat_timeouts_total"`
	AuthDeniedTotal        int64 `json:"auth_denied_total"`
	OutOfOrderEventsTotal  int64 `json:"out_of_order_events_total"`
	OutOfOrderAudioTotal   int64 `json:"out_of_order_audio_total"`
	SendFailuresTotal      int64 `json:"send_failures_total"`
}

func newMetrics(startedAtMS int64) *Metrics {
	return &Metrics{
		startedAtMS:    startedAtMS,
		eventsByType:   make(map[string]int64),
		commandsByType: make(map[string]int64),
	}
}

// RecordEvent counts one inbound device event.
func (m *Metrics) RecordEvent(eventType string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.eventsTotal++
	m.eventsByType[eventType]++
}

// RecordCommand counts one outbound command.
func (m *Metrics) RecordCommand(commandType string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.commandsTotal++
	m.commandsByType[commandType]++
}

// RecordDuplicate counts a stale-sequence event.
func (m *Metrics) RecordDuplicate() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.duplicateEventsTotal++
}

// RecordVoiceTurn folds one finished voice turn into the latency stats.
// Latencies are milliseconds; pass zero for stages that did not run.
func (m *Metrics) RecordVoiceTurn(success bool, totalMS, sttMS, agentMS float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.voiceTurnTotal++
	if !success {
		m.voiceTurnFailed++
	}
	m.voiceLatencySum += totalMS
	m.voiceLatencyMax = math.Max(m.voiceLatencyMax, totalMS)
	m.sttLatencySum += sttMS
	m.sttLatencyMax = math.Max(m.sttLatencyMax, sttMS)
	m.agentLatencySum += agentMS
	m.agentLatencyMax = math.Max(m.agentLatencyMax, agentMS)
}

// RecordBargeIn counts a listen_start that interrupted active speech.
func (m *Metrics) RecordBargeIn() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.bargeInTotal++
}

// RecordHeartbeatTimeout counts a session closed by the idle sweeper.
func (m *Metrics) RecordHeartbeatTimeout() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.heartbeatTimeoutsTotal++
}

// RecordAuthDenied counts an event rejected by the device binding check.
func (m *Metrics) RecordAuthDenied() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.authDeniedTotal++
}

// RecordOutOfOrderEvent counts an inbound sequence gap.
func (m *Metrics) RecordOutOfOrderEvent() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.outOfOrderEventsTotal++
}

// RecordOutOfOrderAudio counts audio chunks that arrived behind a newer
// chunk and had to be re-sequenced.
func (m *Metrics) RecordOutOfOrderAudio() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.outOfOrderAudioTotal++
}

// RecordSendFailure counts a command the adapter could not deliver after
// the retry.
func (m *Metrics) RecordSendFailure() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sendFailuresTotal++
}

// Snapshot copies the counters. Averages are rounded to two decimals, the
// way the observability endpoints report them.
func (m *Metrics) Snapshot() MetricsSnapshot {
	m.mu.Lock()
	defer m.mu.Unlock()

	snap := MetricsSnapshot{
		StartedAtMS:            m.startedAtMS,
		EventsTotal:            m.eventsTotal,
		CommandsTotal:          m.commandsTotal,
		DuplicateEventsTotal:   m.duplicateEventsTotal,
		EventsByType:           make(map[string]int64, len(m.eventsByType)),
		CommandsByType:         make(map[string]int64, len(m.commandsByType)),
		VoiceTurnTotal:         m.voiceTurnTotal,
		VoiceTurnFailed:        m.voiceTurnFailed,
		VoiceTurnMaxLatencyMS:  round2(m.voiceLatencyMax),
		STTMaxLatencyMS:        round2(m.sttLatencyMax),
		AgentMaxLatencyMS:      round2(m.agentLatencyMax),
		BargeInTotal:           m.bargeInTotal,
		HeartbeatTimeoutsTotal: m.heartbeatTimeoutsTotal,
		AuthDeniedTotal:        m.authDeniedTotal,
		OutOfOrderEventsTotal:  m.outOfOrderEventsTotal,
		OutOfOrderAudioTotal:   m.outOfOrderAudioTotal,
		SendFailuresTotal:      m.sendFailuresTotal,
	}
	for k, v := range m.eventsByType {
		snap.EventsByType[k] = v
	}
	for k, v := range m.commandsByType {
		snap.CommandsByType[k] = v
	}
	if m.voiceTurnTotal > 0 {
		n := float64(m.voiceTurnTotal)
		snap.VoiceTurnAvgLatencyMS = round2(m.voiceLatencySum / n)
		snap.STTAvgLatencyMS = round2(m.sttLatencySum / n)
		snap.AgentAvgLatencyMS = round2(m.agentLatencySum / n)
	}
	return snap
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
