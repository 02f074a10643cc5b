package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	testdb "github.com/opencane/edged/test/database"
)

func TestStore_BindingLifecycle(t *testing.T) {
	client := testdb.NewTestClient(t)
	s := New(client.Client)
	ctx := context.Background()

	t.Run("register creates a registered binding", func(t *testing.T) {
		err := s.RegisterDevice(ctx, "glass-1", map[string]any{"model": "g2"})
		require.NoError(t, err)

		b, err := s.GetBinding(ctx, "glass-1")
		require.NoError(t, err)
		assert.Equal(t, "registered", b.Status)
		assert.Equal(t, "g2", b.Metadata["model"])
		assert.NotZero(t, b.CreatedAtMS)
	})

	t.Run("register requires a device id", func(t *testing.T) {
		err := s.RegisterDevice(ctx, "", nil)
		assert.True(t, IsValidationError(err))
	})

	t.Run("duplicate registration is rejected", func(t *testing.T) {
		err := s.RegisterDevice(ctx, "glass-1", nil)
		assert.ErrorIs(t, err, ErrAlreadyExists)
	})

	t.Run("activate before bind conflicts", func(t *testing.T) {
		err := s.ActivateDevice(ctx, "glass-1")
		assert.ErrorIs(t, err, ErrStatusConflict)
	})

	t.Run("bind attaches user and token", func(t *testing.T) {
		err := s.BindDevice(ctx, "glass-1", "user-7", "tok-1")
		require.NoError(t, err)

		b, err := s.GetBinding(ctx, "glass-1")
		require.NoError(t, err)
		assert.Equal(t, "bound", b.Status)
		assert.Equal(t, "user-7", b.UserID)
	})

	t.Run("bind validates inputs", func(t *testing.T) {
		assert.True(t, IsValidationError(s.BindDevice(ctx, "glass-1", "", "tok-1")))
		assert.True(t, IsValidationError(s.BindDevice(ctx, "glass-1", "user-7", "")))
	})

	t.Run("bind unknown device is not found", func(t *testing.T) {
		err := s.BindDevice(ctx, "glass-404", "user-7", "tok-1")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("rebind replaces user and token", func(t *testing.T) {
		err := s.BindDevice(ctx, "glass-1", "user-8", "tok-2")
		require.NoError(t, err)

		b, err := s.GetBinding(ctx, "glass-1")
		require.NoError(t, err)
		assert.Equal(t, "bound", b.Status)
		assert.Equal(t, "user-8", b.UserID)
	})

	t.Run("activate flips bound to activated", func(t *testing.T) {
		err := s.ActivateDevice(ctx, "glass-1")
		require.NoError(t, err)

		b, err := s.GetBinding(ctx, "glass-1")
		require.NoError(t, err)
		assert.Equal(t, "activated", b.Status)
		assert.NotZero(t, b.ActivatedAtMS)
	})

	t.Run("revoke works from any state", func(t *testing.T) {
		err := s.RevokeDevice(ctx, "glass-1", "lost device")
		require.NoError(t, err)

		b, err := s.GetBinding(ctx, "glass-1")
		require.NoError(t, err)
		assert.Equal(t, "revoked", b.Status)
		assert.Equal(t, "lost device", b.RevokeReason)
		assert.NotZero(t, b.RevokedAtMS)
	})

	t.Run("bind after revoke conflicts", func(t *testing.T) {
		err := s.BindDevice(ctx, "glass-1", "user-9", "tok-3")
		assert.ErrorIs(t, err, ErrStatusConflict)
	})

	t.Run("revoke unknown device is not found", func(t *testing.T) {
		err := s.RevokeDevice(ctx, "glass-404", "test")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("get unknown binding is not found", func(t *testing.T) {
		_, err := s.GetBinding(ctx, "glass-404")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestStore_VerifyDeviceBinding(t *testing.T) {
	client := testdb.NewTestClient(t)
	s := New(client.Client)
	ctx := context.Background()

	require.NoError(t, s.RegisterDevice(ctx, "glass-1", nil))

	t.Run("registered device is not yet authorized", func(t *testing.T) {
		_, err := s.VerifyDeviceBinding(ctx, "glass-1", "tok-1", false, false)
		assert.ErrorIs(t, err, ErrUnauthorized)
	})

	require.NoError(t, s.BindDevice(ctx, "glass-1", "user-7", "tok-1"))

	t.Run("bound device passes with the right token", func(t *testing.T) {
		b, err := s.VerifyDeviceBinding(ctx, "glass-1", "tok-1", false, false)
		require.NoError(t, err)
		assert.Equal(t, "bound", b.Status)
		assert.Equal(t, "user-7", b.UserID)
	})

	t.Run("wrong token is rejected", func(t *testing.T) {
		_, err := s.VerifyDeviceBinding(ctx, "glass-1", "tok-wrong", false, false)
		assert.ErrorIs(t, err, ErrUnauthorized)
	})

	t.Run("bound device fails when activation is required", func(t *testing.T) {
		_, err := s.VerifyDeviceBinding(ctx, "glass-1", "tok-1", true, false)
		assert.ErrorIs(t, err, ErrUnauthorized)
	})

	t.Run("activated device passes the strict check", func(t *testing.T) {
		require.NoError(t, s.ActivateDevice(ctx, "glass-1"))

		b, err := s.VerifyDeviceBinding(ctx, "glass-1", "tok-1", true, false)
		require.NoError(t, err)
		assert.Equal(t, "activated", b.Status)
	})

	t.Run("revoked device is rejected", func(t *testing.T) {
		require.NoError(t, s.RevokeDevice(ctx, "glass-1", "returned"))

		_, err := s.VerifyDeviceBinding(ctx, "glass-1", "tok-1", false, false)
		assert.ErrorIs(t, err, ErrUnauthorized)
	})

	t.Run("unknown device is rejected by default", func(t *testing.T) {
		_, err := s.VerifyDeviceBinding(ctx, "glass-404", "tok-1", false, false)
		assert.ErrorIs(t, err, ErrUnauthorized)
	})

	t.Run("unknown device passes when unbound devices are allowed", func(t *testing.T) {
		b, err := s.VerifyDeviceBinding(ctx, "glass-404", "tok-1", false, true)
		require.NoError(t, err)
		assert.Equal(t, "unbound", b.Status)
		assert.Equal(t, "glass-404", b.DeviceID)
	})
}

func TestHashDeviceToken(t *testing.T) {
	first := HashDeviceToken("tok-1")
	second := HashDeviceToken("tok-1")
	other := HashDeviceToken("tok-2")

	assert.Equal(t, first, second)
	assert.NotEqual(t, first, other)
	assert.Len(t, first, 64)
	assert.NotContains(t, first, "tok-1")
}
