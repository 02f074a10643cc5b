package adapter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestReplayGuardDuplicates(t *testing.T) {
	metrics := &Metrics{}
	g := NewReplayGuard(8, 0, metrics)

	assert.Equal(t, ReplayAccept, g.Check("d", "s", 1, 0))
	assert.Equal(t, ReplayAccept, g.Check("d", "s", 2, 0))
	assert.Equal(t, ReplayDuplicate, g.Check("d", "s", 1, 0))
	assert.Equal(t, ReplayDuplicate, g.Check("d", "s", 2, 0))

	// Same seq in a different session is not a duplicate.
	assert.Equal(t, ReplayAccept, g.Check("d", "s2", 1, 0))
	// Unsequenced messages always pass.
	assert.Equal(t, ReplayAccept, g.Check("d", "s", -1, 0))
	assert.Equal(t, ReplayAccept, g.Check("d", "s", -1, 0))

	assert.Equal(t, int64(2), metrics.Duplicates.Load())
}

func TestReplayGuardWindowEviction(t *testing.T) {
	g := NewReplayGuard(2, 0, nil)

	assert.Equal(t, ReplayAccept, g.Check("d", "s", 1, 0))
	assert.Equal(t, ReplayAccept, g.Check("d", "s", 2, 0))
	assert.Equal(t, ReplayAccept, g.Check("d", "s", 3, 0))
	// Seq 1 has been evicted from the window.
	assert.Equal(t, ReplayAccept, g.Check("d", "s", 1, 0))
	assert.Equal(t, ReplayDuplicate, g.Check("d", "s", 3, 0))
}

func TestReplayGuardClockSkew(t *testing.T) {
	metrics := &Metrics{}
	g := NewReplayGuard(8, time.Minute, metrics)
	now := time.Unix(1700000000, 0)
	g.now = func() time.Time { return now }

	fresh := now.Add(-30 * time.Second).UnixMilli()
	stale := now.Add(-5 * time.Minute).UnixMilli()
	future := now.Add(5 * time.Minute).UnixMilli()

	assert.Equal(t, ReplayAccept, g.Check("d", "s", 1, fresh))
	assert.Equal(t, ReplayRejected, g.Check("d", "s", 2, stale))
	assert.Equal(t, ReplayRejected, g.Check("d", "s", 3, future))
	// ts 0 skips the skew check.
	assert.Equal(t, ReplayAccept, g.Check("d", "s", 4, 0))
	assert.Equal(t, int64(2), metrics.ReplayRejected.Load())
}

func TestReplayGuardForget(t *testing.T) {
	g := NewReplayGuard(8, 0, nil)
	assert.Equal(t, ReplayAccept, g.Check("d", "s", 1, 0))
	g.Forget("d")
	assert.Equal(t, ReplayAccept, g.Check("d", "s", 1, 0))
}
