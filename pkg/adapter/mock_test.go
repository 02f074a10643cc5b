package adapter

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opencane/edged/pkg/protocol"
)

func TestMockAdapterInjectAndSend(t *testing.T) {
	m := NewMock()
	ctx := context.Background()
	require.NoError(t, m.Start(ctx))

	hello := protocol.MakeEvent(protocol.EventHello, "cane-1", "s1", 1, nil)
	require.NoError(t, m.Inject(hello))

	got := <-m.Events()
	assert.Equal(t, "hello", got.Type)
	assert.Equal(t, "cane-1", got.DeviceID)

	require.NoError(t, Ack(ctx, m, "cane-1", "s1", 1, 1))
	require.NoError(t, CloseSession(ctx, m, "cane-1", "s1", 2, "test_done"))
	assert.Equal(t, []string{"ack", "close"}, m.SentTypes())

	sent := m.Sent()
	require.Len(t, sent, 2)
	assert.Equal(t, int64(1), sent[0].Payload["ack_seq"])
	assert.Equal(t, "test_done", sent[1].Payload["reason"])
}

func TestMockAdapterStopTerminatesStream(t *testing.T) {
	m := NewMock()
	ctx := context.Background()
	require.NoError(t, m.Start(ctx))
	require.NoError(t, m.Stop(ctx))
	require.NoError(t, m.Stop(ctx)) // idempotent

	_, open := <-m.Events()
	assert.False(t, open)

	require.Error(t, m.Inject(protocol.MakeEvent(protocol.EventHeartbeat, "d", "s", 1, nil)))
	require.Error(t, m.Send(ctx, protocol.MakeCommand(protocol.CommandAck, "d", "s", 1, nil)))
}
