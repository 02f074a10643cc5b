package store

import (
	"context"
	"fmt"

	"github.com/opencane/edged/ent/telemetrysample"
)

// Sample is one normalized telemetry row in the opencane.telemetry.v1 shape.
// The raw payload rides along for audit.
type Sample struct {
	DeviceID      string         `json:"device_id"`
	SessionID     string         `json:"session_id,omitempty"`
	SchemaVersion string         `json:"schema_version"`
	Battery       map[string]any `json:"battery,omitempty"`
	Network       map[string]any `json:"network,omitempty"`
	Location      map[string]any `json:"location,omitempty"`
	IMU           map[string]any `json:"imu,omitempty"`
	TemperatureC  *float64       `json:"temperature_c,omitempty"`
	Raw           map[string]any `json:"raw,omitempty"`
	TSMS          int64          `json:"ts_ms"`
}

// InsertSample stores one telemetry sample.
func (s *Store) InsertSample(ctx context.Context, sample Sample) error {
	if sample.DeviceID == "" {
		return NewValidationError("device_id", "required")
	}
	if sample.SchemaVersion == "" {
		sample.SchemaVersion = "opencane.telemetry.v1"
	}
	if sample.TSMS == 0 {
		sample.TSMS = nowMS()
	}

	builder := s.client.TelemetrySample.Create().
		SetDeviceID(sample.DeviceID).
		SetSessionID(sample.SessionID).
		SetSchemaVersion(sample.SchemaVersion).
		SetNillableTemperatureC(sample.TemperatureC).
		SetTsMs(sample.TSMS).
		SetCreatedAtMs(nowMS())
	if sample.Battery != nil {
		builder.SetBattery(sample.Battery)
	}
	if sample.Network != nil {
		builder.SetNetwork(sample.Network)
	}
	if sample.Location != nil {
		builder.SetLocation(sample.Location)
	}
	if sample.IMU != nil {
		builder.SetImu(sample.IMU)
	}
	if sample.Raw != nil {
		builder.SetRaw(sample.Raw)
	}
	if _, err := builder.Save(ctx); err != nil {
		return fmt.Errorf("failed to insert telemetry sample: %w", err)
	}
	return nil
}

// RecentSamples returns telemetry for one device since a cutoff, newest first.
func (s *Store) RecentSamples(ctx context.Context, deviceID string, sinceMS int64, limit int) ([]Sample, error) {
	if limit <= 0 {
		limit = 200
	}
	rows, err := s.client.TelemetrySample.Query().
		Where(
			telemetrysample.DeviceIDEQ(deviceID),
			telemetrysample.TsMsGTE(sinceMS),
		).
		Order(telemetrysample.ByTsMs(orderDesc())).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query telemetry samples: %w", err)
	}
	out := make([]Sample, 0, len(rows))
	for _, row := range rows {
		out = append(out, Sample{
			DeviceID:      row.DeviceID,
			SessionID:     row.SessionID,
			SchemaVersion: row.SchemaVersion,
			Battery:       row.Battery,
			Network:       row.Network,
			Location:      row.Location,
			IMU:           row.Imu,
			TemperatureC:  row.TemperatureC,
			Raw:           row.Raw,
			TSMS:          row.TsMs,
		})
	}
	return out, nil
}
