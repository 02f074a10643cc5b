package adapter

import (
	"context"
	"encoding/base64"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/coder/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opencane/edged/pkg/protocol"
)

func newTestWSAdapter(t *testing.T, cfg WSConfig) (*WSAdapter, *httptest.Server) {
	t.Helper()
	a := NewWSAdapter(cfg, nil, &Metrics{})
	srv := httptest.NewServer(a)
	t.Cleanup(func() {
		srv.Close()
		_ = a.Stop(context.Background())
	})
	return a, srv
}

func dialWS(t *testing.T, srv *httptest.Server, query string) *websocket.Conn {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	url := strings.Replace(srv.URL, "http", "ws", 1) + "/?" + query
	conn, _, err := websocket.Dial(ctx, url, &websocket.DialOptions{})
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close(websocket.StatusNormalClosure, "") })
	return conn
}

func waitEvent(t *testing.T, events <-chan protocol.Envelope) protocol.Envelope {
	t.Helper()
	select {
	case env := <-events:
		return env
	case <-time.After(3 * time.Second):
		t.Fatal("timed out waiting for adapter event")
		return protocol.Envelope{}
	}
}

func TestWSAdapterJSONEvent(t *testing.T) {
	a, srv := newTestWSAdapter(t, WSConfig{})
	conn := dialWS(t, srv, "device_id=cane-1&session_id=s1")

	hello := protocol.MakeEvent(protocol.EventHello, "cane-1", "s1", 1, map[string]any{
		"capabilities": map[string]any{"mic": true},
	})
	data, err := hello.Marshal()
	require.NoError(t, err)
	require.NoError(t, conn.Write(context.Background(), websocket.MessageText, data))

	env := waitEvent(t, a.Events())
	assert.Equal(t, "hello", env.Type)
	assert.Equal(t, "cane-1", env.DeviceID)
	assert.Equal(t, "s1", env.SessionID)
	assert.Equal(t, int64(1), env.Seq)
}

func TestWSAdapterFramedBinaryAudio(t *testing.T) {
	a, srv := newTestWSAdapter(t, WSConfig{})
	conn := dialWS(t, srv, "device_id=cane-1&session_id=s1")

	audio := []byte{0x11, 0x22, 0x33}
	packet := BuildAudioPacket(DefaultPacketMagic, 7, 1234, audio)
	require.NoError(t, conn.Write(context.Background(), websocket.MessageBinary, packet))

	env := waitEvent(t, a.Events())
	assert.Equal(t, "audio_chunk", env.Type)
	assert.Equal(t, int64(7), env.Seq)
	assert.Equal(t, "opus", env.Payload["encoding"])
	decoded, err := base64.StdEncoding.DecodeString(env.Payload["audio_b64"].(string))
	require.NoError(t, err)
	assert.Equal(t, audio, decoded)
}

func TestWSAdapterUnframedBinaryForwardedOpaque(t *testing.T) {
	a, srv := newTestWSAdapter(t, WSConfig{})
	conn := dialWS(t, srv, "device_id=cane-1")

	require.NoError(t, conn.Write(context.Background(), websocket.MessageBinary, []byte{0x01, 0x02}))

	env := waitEvent(t, a.Events())
	assert.Equal(t, "audio_chunk", env.Type)
	assert.Equal(t, "binary", env.Payload["encoding"])
	assert.Equal(t, "cane-1-default", env.SessionID)
}

func TestWSAdapterSendRoutesToSocket(t *testing.T) {
	a, srv := newTestWSAdapter(t, WSConfig{})
	conn := dialWS(t, srv, "device_id=cane-1&session_id=s1")

	// An inbound event guarantees the server side has bound the socket.
	hb := protocol.MakeEvent(protocol.EventHeartbeat, "cane-1", "s1", 1, nil)
	data, err := hb.Marshal()
	require.NoError(t, err)
	require.NoError(t, conn.Write(context.Background(), websocket.MessageText, data))
	waitEvent(t, a.Events())

	cmd := protocol.MakeCommand(protocol.CommandTTSStart, "cane-1", "s1", 1, map[string]any{"text": "你好"})
	require.NoError(t, a.Send(context.Background(), cmd))

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	typ, data, err := conn.Read(ctx)
	require.NoError(t, err)
	assert.Equal(t, websocket.MessageText, typ)

	got, err := protocol.Unmarshal(data)
	require.NoError(t, err)
	assert.Equal(t, "tts_start", got.Type)
	assert.Equal(t, "你好", got.Payload["text"])
}

func TestWSAdapterSendUnknownDeviceDrops(t *testing.T) {
	a, _ := newTestWSAdapter(t, WSConfig{})
	cmd := protocol.MakeCommand(protocol.CommandAck, "ghost", "s1", 1, nil)
	require.NoError(t, a.Send(context.Background(), cmd))
}

func TestWSAdapterHelloRebindsSocket(t *testing.T) {
	a, srv := newTestWSAdapter(t, WSConfig{})
	conn := dialWS(t, srv, "")

	hello := protocol.MakeEvent(protocol.EventHello, "cane-9", "s9", 1, nil)
	data, err := hello.Marshal()
	require.NoError(t, err)
	require.NoError(t, conn.Write(context.Background(), websocket.MessageText, data))
	waitEvent(t, a.Events())

	// After hello the socket is addressable by the announced identity.
	cmd := protocol.MakeCommand(protocol.CommandHelloAck, "cane-9", "s9", 1, nil)
	require.NoError(t, a.Send(context.Background(), cmd))

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	_, reply, err := conn.Read(ctx)
	require.NoError(t, err)
	got, err := protocol.Unmarshal(reply)
	require.NoError(t, err)
	assert.Equal(t, "hello_ack", got.Type)
}

func TestWSAdapterRejectsBadToken(t *testing.T) {
	_, srv := newTestWSAdapter(t, WSConfig{RequireToken: true, Token: "secret"})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	url := strings.Replace(srv.URL, "http", "ws", 1) + "/?device_id=cane-1&token=wrong"
	_, _, err := websocket.Dial(ctx, url, &websocket.DialOptions{})
	require.Error(t, err)
}

func TestWSAdapterAcceptsBearerToken(t *testing.T) {
	a, srv := newTestWSAdapter(t, WSConfig{RequireToken: true, Token: "secret"})
	conn := dialWS(t, srv, "device_id=cane-1&token=Bearer+secret")

	hb := protocol.MakeEvent(protocol.EventHeartbeat, "cane-1", "s1", 2, nil)
	data, err := hb.Marshal()
	require.NoError(t, err)
	require.NoError(t, conn.Write(context.Background(), websocket.MessageText, data))
	env := waitEvent(t, a.Events())
	assert.Equal(t, "heartbeat", env.Type)
}
