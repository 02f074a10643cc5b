package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/opencane/edged/ent"
	"github.com/opencane/edged/ent/deviceoperation"
	"github.com/opencane/edged/pkg/protocol"
)

// Operation is a durable control-plane command and its outcome.
type Operation struct {
	ID           string         `json:"operation_id"`
	DeviceID     string         `json:"device_id"`
	SessionID    string         `json:"session_id,omitempty"`
	OpType       string         `json:"op_type"`
	CommandType  string         `json:"command_type"`
	Status       string         `json:"status"`
	Payload      map[string]any `json:"payload,omitempty"`
	Result       map[string]any `json:"result,omitempty"`
	ErrorMessage string         `json:"error,omitempty"`
	CreatedAtMS  int64          `json:"created_at_ms"`
	SentAtMS     int64          `json:"sent_at_ms,omitempty"`
	AckedAtMS    int64          `json:"acked_at_ms,omitempty"`
}

// EnqueueOperation records a queued operation and returns its id. The
// command type is derived 1:1 from op_type.
func (s *Store) EnqueueOperation(ctx context.Context, deviceID, sessionID, opType string, payload map[string]any) (string, error) {
	if deviceID == "" {
		return "", NewValidationError("device_id", "required")
	}
	cmdType, ok := protocol.OperationCommandType(opType)
	if !ok {
		return "", NewValidationError("op_type", fmt.Sprintf("unknown op_type %q", opType))
	}

	id := uuid.New().String()
	builder := s.client.DeviceOperation.Create().
		SetID(id).
		SetDeviceID(deviceID).
		SetSessionID(sessionID).
		SetOpType(opType).
		SetCommandType(string(cmdType)).
		SetStatus(deviceoperation.StatusQueued).
		SetCreatedAtMs(nowMS())
	if payload != nil {
		builder.SetPayload(payload)
	}
	if _, err := builder.Save(ctx); err != nil {
		return "", fmt.Errorf("failed to enqueue operation: %w", err)
	}
	return id, nil
}

// MarkOperationSent flips a queued operation to sent once its command has
// actually gone out on the adapter.
func (s *Store) MarkOperationSent(ctx context.Context, operationID string) error {
	n, err := s.client.DeviceOperation.Update().
		Where(
			deviceoperation.IDEQ(operationID),
			deviceoperation.StatusEQ(deviceoperation.StatusQueued),
		).
		SetStatus(deviceoperation.StatusSent).
		SetSentAtMs(nowMS()).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to mark operation sent: %w", err)
	}
	if n == 0 {
		return ErrStatusConflict
	}
	return nil
}

// MarkOperationResult records the device's tool_result: acked on success,
// failed otherwise. Guarded so only queued/sent operations can complete.
func (s *Store) MarkOperationResult(ctx context.Context, operationID string, result map[string]any, success bool, errMsg string) error {
	status := deviceoperation.StatusAcked
	if !success {
		status = deviceoperation.StatusFailed
	}
	builder := s.client.DeviceOperation.Update().
		Where(
			deviceoperation.IDEQ(operationID),
			deviceoperation.StatusIn(deviceoperation.StatusQueued, deviceoperation.StatusSent),
		).
		SetStatus(status).
		SetAckedAtMs(nowMS())
	if result != nil {
		builder.SetResult(result)
	}
	if errMsg != "" {
		builder.SetErrorMessage(errMsg)
	}
	n, err := builder.Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to mark operation result: %w", err)
	}
	if n == 0 {
		return ErrStatusConflict
	}
	return nil
}

// CancelOperation cancels an undelivered operation.
func (s *Store) CancelOperation(ctx context.Context, operationID, reason string) error {
	n, err := s.client.DeviceOperation.Update().
		Where(
			deviceoperation.IDEQ(operationID),
			deviceoperation.StatusIn(deviceoperation.StatusQueued, deviceoperation.StatusSent),
		).
		SetStatus(deviceoperation.StatusCanceled).
		SetErrorMessage(reason).
		SetAckedAtMs(nowMS()).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to cancel operation: %w", err)
	}
	if n == 0 {
		return ErrStatusConflict
	}
	return nil
}

// GetOperation returns one operation by id.
func (s *Store) GetOperation(ctx context.Context, operationID string) (Operation, error) {
	row, err := s.client.DeviceOperation.Get(ctx, operationID)
	if err != nil {
		if isEntNotFound(err) {
			return Operation{}, ErrNotFound
		}
		return Operation{}, fmt.Errorf("failed to get operation: %w", err)
	}
	return operationFromRow(row), nil
}

// ListOperations returns recent operations for one device, newest first.
func (s *Store) ListOperations(ctx context.Context, deviceID string, limit int) ([]Operation, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := s.client.DeviceOperation.Query().
		Where(deviceoperation.DeviceIDEQ(deviceID)).
		Order(deviceoperation.ByCreatedAtMs(orderDesc())).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list operations: %w", err)
	}
	out := make([]Operation, 0, len(rows))
	for _, row := range rows {
		out = append(out, operationFromRow(row))
	}
	return out, nil
}

// QueuedOperations returns undelivered operations for one device in enqueue
// order, for dispatch when the device has a live session.
func (s *Store) QueuedOperations(ctx context.Context, deviceID string, limit int) ([]Operation, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := s.client.DeviceOperation.Query().
		Where(
			deviceoperation.DeviceIDEQ(deviceID),
			deviceoperation.StatusEQ(deviceoperation.StatusQueued),
		).
		Order(deviceoperation.ByCreatedAtMs()).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list queued operations: %w", err)
	}
	out := make([]Operation, 0, len(rows))
	for _, row := range rows {
		out = append(out, operationFromRow(row))
	}
	return out, nil
}

func operationFromRow(row *ent.DeviceOperation) Operation {
	return Operation{
		ID:           row.ID,
		DeviceID:     row.DeviceID,
		SessionID:    row.SessionID,
		OpType:       row.OpType,
		CommandType:  row.CommandType,
		Status:       string(row.Status),
		Payload:      row.Payload,
		Result:       row.Result,
		ErrorMessage: row.ErrorMessage,
		CreatedAtMS:  row.CreatedAtMs,
		SentAtMS:     row.SentAtMs,
		AckedAtMS:    row.AckedAtMs,
	}
}
