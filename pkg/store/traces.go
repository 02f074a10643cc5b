package store

import (
	"context"
	"fmt"

	"github.com/opencane/edged/ent/thoughttrace"
)

// TraceStep is one append-only thought-trace row. Several steps share one
// trace_id, one per stage.
type TraceStep struct {
	TraceID   string         `json:"trace_id"`
	SessionID string         `json:"session_id"`
	Source    string         `json:"source"`
	Stage     string         `json:"stage"`
	Payload   map[string]any `json:"payload,omitempty"`
	TSMS      int64          `json:"ts_ms"`
}

// AppendTraceStep stores one thought-trace step.
func (s *Store) AppendTraceStep(ctx context.Context, step TraceStep) error {
	if step.TraceID == "" {
		return NewValidationError("trace_id", "required")
	}
	if step.SessionID == "" {
		return NewValidationError("session_id", "required")
	}
	if step.TSMS == 0 {
		step.TSMS = nowMS()
	}

	builder := s.client.ThoughtTrace.Create().
		SetTraceID(step.TraceID).
		SetSessionID(step.SessionID).
		SetSource(step.Source).
		SetStage(step.Stage).
		SetTsMs(step.TSMS)
	if step.Payload != nil {
		builder.SetPayload(step.Payload)
	}
	if _, err := builder.Save(ctx); err != nil {
		return fmt.Errorf("failed to append trace step: %w", err)
	}
	return nil
}

// ReplayTrace returns every step of one trace in recorded order.
func (s *Store) ReplayTrace(ctx context.Context, traceID string) ([]TraceStep, error) {
	rows, err := s.client.ThoughtTrace.Query().
		Where(thoughttrace.TraceIDEQ(traceID)).
		Order(thoughttrace.ByTsMs()).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to replay trace: %w", err)
	}
	out := make([]TraceStep, 0, len(rows))
	for _, row := range rows {
		out = append(out, TraceStep{
			TraceID:   row.TraceID,
			SessionID: row.SessionID,
			Source:    row.Source,
			Stage:     row.Stage,
			Payload:   row.Payload,
			TSMS:      row.TsMs,
		})
	}
	return out, nil
}

// QueryTraces returns recent steps for one session, newest first.
func (s *Store) QueryTraces(ctx context.Context, sessionID string, limit int) ([]TraceStep, error) {
	if limit <= 0 {
		limit = 100
	}
	rows, err := s.client.ThoughtTrace.Query().
		Where(thoughttrace.SessionIDEQ(sessionID)).
		Order(thoughttrace.ByTsMs(orderDesc())).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query traces: %w", err)
	}
	out := make([]TraceStep, 0, len(rows))
	for _, row := range rows {
		out = append(out, TraceStep{
			TraceID:   row.TraceID,
			SessionID: row.SessionID,
			Source:    row.Source,
			Stage:     row.Stage,
			Payload:   row.Payload,
			TSMS:      row.TsMs,
		})
	}
	return out, nil
}
