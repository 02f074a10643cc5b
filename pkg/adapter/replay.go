package adapter

import (
	"sync"
	"time"
)

// ReplayResult classifies one inbound control message.
type ReplayResult int

const (
	ReplayAccept ReplayResult = iota
	ReplayDuplicate
	ReplayRejected
)

// defaultReplayWindow bounds the per-device record of recent sequence
// numbers when the profile does not say otherwise.
const defaultReplayWindow = 64

type seqKey struct {
	sessionID string
	seq       int64
}

type deviceWindow struct {
	order []seqKey
	seen  map[seqKey]struct{}
}

// ReplayGuard tracks, per device, a rolling window of recently accepted
// (session, seq) pairs and rejects stale-timestamp messages. Unsequenced
// messages (seq < 0) always pass.
type ReplayGuard struct {
	mu      sync.Mutex
	window  int
	maxSkew time.Duration
	devices map[string]*deviceWindow
	metrics *Metrics

	now func() time.Time
}

// NewReplayGuard builds a guard. window <= 0 selects the default; maxSkew 0
// disables the timestamp check. metrics may be nil.
func NewReplayGuard(window int, maxSkew time.Duration, metrics *Metrics) *ReplayGuard {
	if window <= 0 {
		window = defaultReplayWindow
	}
	return &ReplayGuard{
		window:  window,
		maxSkew: maxSkew,
		devices: make(map[string]*deviceWindow),
		metrics: metrics,
		now:     time.Now,
	}
}

// Check classifies one message and commits it to the window when accepted.
// tsMS 0 skips the skew check.
func (g *ReplayGuard) Check(deviceID, sessionID string, seq, tsMS int64) ReplayResult {
	if g.maxSkew > 0 && tsMS > 0 {
		skew := g.now().UnixMilli() - tsMS
		if skew < 0 {
			skew = -skew
		}
		if skew > g.maxSkew.Milliseconds() {
			if g.metrics != nil {
				g.metrics.ReplayRejected.Add(1)
			}
			return ReplayRejected
		}
	}
	if seq < 0 {
		return ReplayAccept
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	w := g.devices[deviceID]
	if w == nil {
		w = &deviceWindow{seen: make(map[seqKey]struct{})}
		g.devices[deviceID] = w
	}
	key := seqKey{sessionID: sessionID, seq: seq}
	if _, dup := w.seen[key]; dup {
		if g.metrics != nil {
			g.metrics.Duplicates.Add(1)
		}
		return ReplayDuplicate
	}
	w.seen[key] = struct{}{}
	w.order = append(w.order, key)
	for len(w.order) > g.window {
		oldest := w.order[0]
		w.order = w.order[1:]
		delete(w.seen, oldest)
	}
	return ReplayAccept
}

// Forget drops all replay state for one device.
func (g *ReplayGuard) Forget(deviceID string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	delete(g.devices, deviceID)
}
