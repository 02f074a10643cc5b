package adapter

import (
	"context"
	"encoding/base64"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/coder/websocket"

	"github.com/opencane/edged/pkg/protocol"
)

// wsWriteTimeout bounds one outbound command write so a stalled device
// cannot block the sender.
const wsWriteTimeout = 10 * time.Second

// WSConfig configures the WebSocket adapter.
type WSConfig struct {
	Host         string
	Port         int
	RequireToken bool
	Token        string
	PacketMagic  byte
	QueueSize    int
}

// WSAdapter terminates raw WebSocket device connections. JSON text frames
// are canonical envelopes; binary frames are framed audio packets. The
// adapter also implements http.Handler so it can be mounted on an existing
// server in tests.
type WSAdapter struct {
	cfg     WSConfig
	logger  *slog.Logger
	metrics *Metrics

	events   chan protocol.Envelope
	done     chan struct{}
	stopOnce sync.Once

	server *http.Server

	mu           sync.Mutex
	deviceConns  map[string]*websocket.Conn
	sessionConns map[connKey]*websocket.Conn
}

type connKey struct {
	deviceID  string
	sessionID string
}

var _ Adapter = (*WSAdapter)(nil)
var _ http.Handler = (*WSAdapter)(nil)

// NewWSAdapter builds a WebSocket adapter. logger and metrics may be nil.
func NewWSAdapter(cfg WSConfig, logger *slog.Logger, metrics *Metrics) *WSAdapter {
	if cfg.PacketMagic == 0 {
		cfg.PacketMagic = DefaultPacketMagic
	}
	if cfg.QueueSize <= 0 {
		cfg.QueueSize = 256
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &WSAdapter{
		cfg:          cfg,
		logger:       logger,
		metrics:      metrics,
		events:       make(chan protocol.Envelope, cfg.QueueSize),
		done:         make(chan struct{}),
		deviceConns:  make(map[string]*websocket.Conn),
		sessionConns: make(map[connKey]*websocket.Conn),
	}
}

func (a *WSAdapter) Name() string      { return "websocket" }
func (a *WSAdapter) Transport() string { return "ws" }

// Start listens on the configured address and serves connections until Stop.
func (a *WSAdapter) Start(ctx context.Context) error {
	addr := fmt.Sprintf("%s:%d", a.cfg.Host, a.cfg.Port)
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("%w: listen on %s: %v", ErrTransportUnavailable, addr, err)
	}
	a.server = &http.Server{Handler: a}
	go func() {
		if serveErr := a.server.Serve(ln); serveErr != nil && serveErr != http.ErrServerClosed {
			a.logger.Error("websocket adapter serve failed", "error", serveErr)
		}
	}()
	a.logger.Info("websocket adapter listening", "addr", addr)
	return nil
}

// Stop shuts the listener down, closes all device connections, and
// terminates the event stream. Idempotent.
func (a *WSAdapter) Stop(ctx context.Context) error {
	var err error
	a.stopOnce.Do(func() {
		close(a.done)
		if a.server != nil {
			err = a.server.Shutdown(ctx)
		}
		a.mu.Lock()
		conns := make([]*websocket.Conn, 0, len(a.deviceConns))
		for _, c := range a.deviceConns {
			conns = append(conns, c)
		}
		a.deviceConns = make(map[string]*websocket.Conn)
		a.sessionConns = make(map[connKey]*websocket.Conn)
		a.mu.Unlock()
		for _, c := range conns {
			_ = c.Close(websocket.StatusGoingAway, "adapter stopping")
		}
		close(a.events)
	})
	return err
}

func (a *WSAdapter) Events() <-chan protocol.Envelope { return a.events }

// Send routes one command to the socket bound to (device, session), falling
// back to the device's most recent socket. A missing socket is logged and
// dropped; the transport is fire-and-forget.
func (a *WSAdapter) Send(ctx context.Context, cmd protocol.Envelope) error {
	a.mu.Lock()
	conn := a.sessionConns[connKey{cmd.DeviceID, cmd.SessionID}]
	if conn == nil {
		conn = a.deviceConns[cmd.DeviceID]
	}
	a.mu.Unlock()
	if conn == nil {
		a.logger.Warn("no websocket for device",
			"device_id", cmd.DeviceID, "session_id", cmd.SessionID)
		return nil
	}

	data, err := cmd.Marshal()
	if err != nil {
		return fmt.Errorf("failed to marshal command: %w", err)
	}
	writeCtx, cancel := context.WithTimeout(ctx, wsWriteTimeout)
	defer cancel()
	if err := conn.Write(writeCtx, websocket.MessageText, data); err != nil {
		if a.metrics != nil {
			a.metrics.PublishFailures.Add(1)
		}
		a.logger.Warn("websocket command write failed",
			"device_id", cmd.DeviceID, "type", cmd.Type, "error", err)
		return nil
	}
	if a.metrics != nil {
		a.metrics.CommandsOut.Add(1)
	}
	return nil
}

// ServeHTTP upgrades one device connection and runs its read loop.
func (a *WSAdapter) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	deviceID := firstQuery(query, "device_id", "device-id")
	sessionID := firstQuery(query, "session_id", "session-id")
	token := strings.TrimPrefix(firstQuery(query, "token", "authorization"), "Bearer ")

	if a.cfg.RequireToken && a.cfg.Token != "" && token != a.cfg.Token {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		OriginPatterns: []string{"*"},
	})
	if err != nil {
		a.logger.Warn("websocket accept failed", "error", err)
		return
	}

	a.readLoop(r.Context(), conn, deviceID, sessionID)
}

func (a *WSAdapter) readLoop(ctx context.Context, conn *websocket.Conn, deviceID, sessionID string) {
	if deviceID != "" {
		a.bind(conn, deviceID, sessionID)
	}
	defer func() {
		a.unbind(conn, deviceID, sessionID)
		_ = conn.Close(websocket.StatusNormalClosure, "")
	}()

	for {
		typ, data, err := conn.Read(ctx)
		if err != nil {
			return
		}
		switch typ {
		case websocket.MessageBinary:
			if deviceID == "" {
				continue
			}
			a.emit(a.parseBinaryAudio(data, deviceID, sessionID))
		case websocket.MessageText:
			env, err := protocol.Unmarshal(data)
			if err != nil {
				if a.metrics != nil {
					a.metrics.InvalidPayloads.Add(1)
				}
				a.logger.Warn("invalid websocket envelope", "device_id", deviceID, "error", err)
				continue
			}
			env.Direction = protocol.DirectionEvent
			if env.DeviceID == "" {
				env.DeviceID = deviceID
			}
			if env.SessionID == "" {
				env.SessionID = sessionID
			}
			if env.Type == string(protocol.EventHello) {
				// A hello rebinds the socket to the identity it announces.
				a.unbind(conn, deviceID, sessionID)
				deviceID = env.DeviceID
				sessionID = env.SessionID
				a.bind(conn, deviceID, sessionID)
			}
			a.emit(env)
		}
	}
}

func (a *WSAdapter) parseBinaryAudio(packet []byte, deviceID, sessionID string) protocol.Envelope {
	if sessionID == "" {
		sessionID = deviceID + "-default"
	}
	seq, ts, audio, err := ParseAudioPacket(a.cfg.PacketMagic, packet)
	if err != nil {
		// Unframed binary is forwarded opaquely; the runtime decides
		// whether it can decode it.
		return protocol.MakeEvent(protocol.EventAudioChunk, deviceID, sessionID, 0, map[string]any{
			"audio_b64": base64.StdEncoding.EncodeToString(packet),
			"encoding":  "binary",
		})
	}
	return protocol.MakeEvent(protocol.EventAudioChunk, deviceID, sessionID, seq, map[string]any{
		"audio_b64": base64.StdEncoding.EncodeToString(audio),
		"encoding":  "opus",
		"timestamp": ts,
	})
}

func (a *WSAdapter) emit(env protocol.Envelope) {
	if a.metrics != nil {
		a.metrics.EventsIn.Add(1)
	}
	select {
	case a.events <- env:
	case <-a.done:
	}
}

func (a *WSAdapter) bind(conn *websocket.Conn, deviceID, sessionID string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if deviceID != "" {
		a.deviceConns[deviceID] = conn
	}
	if deviceID != "" && sessionID != "" {
		a.sessionConns[connKey{deviceID, sessionID}] = conn
	}
}

func (a *WSAdapter) unbind(conn *websocket.Conn, deviceID, sessionID string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if deviceID != "" && a.deviceConns[deviceID] == conn {
		delete(a.deviceConns, deviceID)
	}
	key := connKey{deviceID, sessionID}
	if a.sessionConns[key] == conn {
		delete(a.sessionConns, key)
	}
}

func firstQuery(query map[string][]string, names ...string) string {
	for _, name := range names {
		if vals := query[name]; len(vals) > 0 {
			return vals[0]
		}
	}
	return ""
}
