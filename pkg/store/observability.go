package store

import (
	"context"
	"fmt"

	"github.com/opencane/edged/ent/observabilitysample"
)

// CounterSnapshot is one periodic counter dump from a runtime subsystem.
type CounterSnapshot struct {
	Scope    string         `json:"scope"`
	Counters map[string]any `json:"counters"`
	TSMS     int64          `json:"ts_ms"`
}

// InsertCounterSnapshot stores one counter snapshot.
func (s *Store) InsertCounterSnapshot(ctx context.Context, snap CounterSnapshot) error {
	if snap.Scope == "" {
		return NewValidationError("scope", "required")
	}
	if snap.TSMS == 0 {
		snap.TSMS = nowMS()
	}
	_, err := s.client.ObservabilitySample.Create().
		SetScope(snap.Scope).
		SetCounters(snap.Counters).
		SetTsMs(snap.TSMS).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to insert counter snapshot: %w", err)
	}
	return nil
}

// RecentCounterSnapshots returns snapshots for one scope, newest first.
func (s *Store) RecentCounterSnapshots(ctx context.Context, scope string, limit int) ([]CounterSnapshot, error) {
	if limit <= 0 {
		limit = 100
	}
	rows, err := s.client.ObservabilitySample.Query().
		Where(observabilitysample.ScopeEQ(scope)).
		Order(observabilitysample.ByTsMs(orderDesc())).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query counter snapshots: %w", err)
	}
	out := make([]CounterSnapshot, 0, len(rows))
	for _, row := range rows {
		out = append(out, CounterSnapshot{
			Scope:    row.Scope,
			Counters: row.Counters,
			TSMS:     row.TsMs,
		})
	}
	return out, nil
}
