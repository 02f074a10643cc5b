package store

import (
	"context"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"

	"github.com/opencane/edged/ent"
	"github.com/opencane/edged/ent/devicebinding"
)

// Binding is the device credential lifecycle record.
type Binding struct {
	DeviceID      string         `json:"device_id"`
	Status        string         `json:"status"`
	UserID        string         `json:"user_id,omitempty"`
	Metadata      map[string]any `json:"metadata,omitempty"`
	ActivatedAtMS int64          `json:"activated_at_ms,omitempty"`
	RevokedAtMS   int64          `json:"revoked_at_ms,omitempty"`
	RevokeReason  string         `json:"revoke_reason,omitempty"`
	CreatedAtMS   int64          `json:"created_at_ms"`
	UpdatedAtMS   int64          `json:"updated_at_ms"`
}

// HashDeviceToken returns the stored form of a per-device token.
func HashDeviceToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

// RegisterDevice creates a binding in registered state. Registering an
// existing device is an error.
func (s *Store) RegisterDevice(ctx context.Context, deviceID string, metadata map[string]any) error {
	if deviceID == "" {
		return NewValidationError("device_id", "required")
	}
	now := nowMS()
	builder := s.client.DeviceBinding.Create().
		SetDeviceID(deviceID).
		SetStatus(devicebinding.StatusRegistered).
		SetCreatedAtMs(now).
		SetUpdatedAtMs(now)
	if metadata != nil {
		builder.SetBindingMetadata(metadata)
	}
	if err := builder.Exec(ctx); err != nil {
		if ent.IsConstraintError(err) {
			return ErrAlreadyExists
		}
		return fmt.Errorf("failed to register device: %w", err)
	}
	return nil
}

// BindDevice attaches a user and token to a registered device.
func (s *Store) BindDevice(ctx context.Context, deviceID, userID, token string) error {
	if userID == "" {
		return NewValidationError("user_id", "required")
	}
	if token == "" {
		return NewValidationError("device_token", "required")
	}
	n, err := s.client.DeviceBinding.Update().
		Where(
			devicebinding.DeviceIDEQ(deviceID),
			devicebinding.StatusIn(devicebinding.StatusRegistered, devicebinding.StatusBound),
		).
		SetStatus(devicebinding.StatusBound).
		SetUserID(userID).
		SetDeviceTokenHash(HashDeviceToken(token)).
		SetUpdatedAtMs(nowMS()).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to bind device: %w", err)
	}
	if n == 0 {
		return s.bindingTransitionError(ctx, deviceID)
	}
	return nil
}

// ActivateDevice flips a bound device to activated.
func (s *Store) ActivateDevice(ctx context.Context, deviceID string) error {
	now := nowMS()
	n, err := s.client.DeviceBinding.Update().
		Where(
			devicebinding.DeviceIDEQ(deviceID),
			devicebinding.StatusEQ(devicebinding.StatusBound),
		).
		SetStatus(devicebinding.StatusActivated).
		SetActivatedAtMs(now).
		SetUpdatedAtMs(now).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to activate device: %w", err)
	}
	if n == 0 {
		return s.bindingTransitionError(ctx, deviceID)
	}
	return nil
}

// RevokeDevice revokes a binding in any state.
func (s *Store) RevokeDevice(ctx context.Context, deviceID, reason string) error {
	now := nowMS()
	n, err := s.client.DeviceBinding.Update().
		Where(devicebinding.DeviceIDEQ(deviceID)).
		SetStatus(devicebinding.StatusRevoked).
		SetRevokedAtMs(now).
		SetRevokeReason(reason).
		SetUpdatedAtMs(now).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to revoke device: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// GetBinding returns the binding for a device.
func (s *Store) GetBinding(ctx context.Context, deviceID string) (Binding, error) {
	row, err := s.client.DeviceBinding.Query().
		Where(devicebinding.DeviceIDEQ(deviceID)).
		Only(ctx)
	if err != nil {
		if isEntNotFound(err) {
			return Binding{}, ErrNotFound
		}
		return Binding{}, fmt.Errorf("failed to get binding: %w", err)
	}
	return bindingFromRow(row), nil
}

// VerifyDeviceBinding checks a presented device token against the stored
// binding. requireActivated demands status=activated (bound is otherwise
// acceptable); allowUnbound lets unknown devices through, for fleets that
// enroll lazily.
func (s *Store) VerifyDeviceBinding(ctx context.Context, deviceID, token string, requireActivated, allowUnbound bool) (Binding, error) {
	row, err := s.client.DeviceBinding.Query().
		Where(devicebinding.DeviceIDEQ(deviceID)).
		Only(ctx)
	if err != nil {
		if isEntNotFound(err) {
			if allowUnbound {
				return Binding{DeviceID: deviceID, Status: "unbound"}, nil
			}
			return Binding{}, ErrUnauthorized
		}
		return Binding{}, fmt.Errorf("failed to verify binding: %w", err)
	}

	switch row.Status {
	case devicebinding.StatusRevoked, devicebinding.StatusRegistered:
		return Binding{}, ErrUnauthorized
	case devicebinding.StatusBound:
		if requireActivated {
			return Binding{}, ErrUnauthorized
		}
	}

	presented := HashDeviceToken(token)
	if subtle.ConstantTimeCompare([]byte(presented), []byte(row.DeviceTokenHash)) != 1 {
		return Binding{}, ErrUnauthorized
	}
	return bindingFromRow(row), nil
}

func (s *Store) bindingTransitionError(ctx context.Context, deviceID string) error {
	exists, err := s.client.DeviceBinding.Query().
		Where(devicebinding.DeviceIDEQ(deviceID)).
		Exist(ctx)
	if err != nil {
		return fmt.Errorf("failed to check binding existence: %w", err)
	}
	if !exists {
		return ErrNotFound
	}
	return ErrStatusConflict
}

func bindingFromRow(row *ent.DeviceBinding) Binding {
	return Binding{
		DeviceID:      row.DeviceID,
		Status:        string(row.Status),
		UserID:        row.UserID,
		Metadata:      row.BindingMetadata,
		ActivatedAtMS: row.ActivatedAtMs,
		RevokedAtMS:   row.RevokedAtMs,
		RevokeReason:  row.RevokeReason,
		CreatedAtMS:   row.CreatedAtMs,
		UpdatedAtMS:   row.UpdatedAtMs,
	}
}
