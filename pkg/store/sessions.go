package store

import (
	"context"
	"fmt"

	"github.com/opencane/edged/ent/devicesession"
	"github.com/opencane/edged/pkg/session"
)

// UpsertDeviceSession writes one session row through, keyed on
// (device_id, session_id). Implements session.PersistenceStore.
func (s *Store) UpsertDeviceSession(ctx context.Context, rec session.Record) error {
	err := s.client.DeviceSession.Create().
		SetDeviceID(rec.DeviceID).
		SetSessionID(rec.SessionID).
		SetState(devicesession.State(rec.State)).
		SetCreatedAtMs(rec.CreatedAtMS).
		SetLastSeenMs(rec.LastSeenMS).
		SetLastInboundSeq(rec.LastInboundSeq).
		SetLastOutboundSeq(rec.LastOutboundSeq).
		SetClosedAtMs(rec.ClosedAtMS).
		SetCloseReason(rec.CloseReason).
		SetSessionMetadata(rec.Metadata).
		SetTelemetry(rec.Telemetry).
		SetUpdatedAtMs(rec.UpdatedAtMS).
		OnConflictColumns(devicesession.FieldDeviceID, devicesession.FieldSessionID).
		UpdateNewValues().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to upsert device session: %w", err)
	}
	return nil
}

// CloseDeviceSession marks a persisted session closed. Implements
// session.PersistenceStore.
func (s *Store) CloseDeviceSession(ctx context.Context, deviceID, sessionID, reason string, closedAtMS int64) error {
	n, err := s.client.DeviceSession.Update().
		Where(
			devicesession.DeviceIDEQ(deviceID),
			devicesession.SessionIDEQ(sessionID),
		).
		SetState(devicesession.StateClosed).
		SetCloseReason(reason).
		SetClosedAtMs(closedAtMS).
		SetUpdatedAtMs(nowMS()).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to close device session: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// ListDeviceSessions returns recent sessions for one device, newest first.
func (s *Store) ListDeviceSessions(ctx context.Context, deviceID string, limit int) ([]session.Record, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := s.client.DeviceSession.Query().
		Where(devicesession.DeviceIDEQ(deviceID)).
		Order(devicesession.ByLastSeenMs(orderDesc())).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list device sessions: %w", err)
	}

	out := make([]session.Record, 0, len(rows))
	for _, row := range rows {
		out = append(out, session.Record{
			DeviceID:        row.DeviceID,
			SessionID:       row.SessionID,
			State:           string(row.State),
			CreatedAtMS:     row.CreatedAtMs,
			LastSeenMS:      row.LastSeenMs,
			LastInboundSeq:  row.LastInboundSeq,
			LastOutboundSeq: row.LastOutboundSeq,
			ClosedAtMS:      row.ClosedAtMs,
			CloseReason:     row.CloseReason,
			Metadata:        row.SessionMetadata,
			Telemetry:       row.Telemetry,
			UpdatedAtMS:     row.UpdatedAtMs,
		})
	}
	return out, nil
}
