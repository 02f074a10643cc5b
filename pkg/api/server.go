// Package api exposes the control HTTP surface of the device runtime:
// event/command injection, binding and operation lifecycle, lifelog and
// thought-trace queries, digital task control, and runtime health.
//
// Every failure is rendered as {"success":false,"error":...,"error_code":...}
// so callers can branch on error_code without parsing messages.
package api

import (
	"context"
	stdsql "database/sql"
	"net/http"
	"time"

	echo "github.com/labstack/echo/v5"

	"github.com/opencane/edged/pkg/config"
	"github.com/opencane/edged/pkg/lifelog"
	"github.com/opencane/edged/pkg/protocol"
	"github.com/opencane/edged/pkg/runtime"
	"github.com/opencane/edged/pkg/session"
	"github.com/opencane/edged/pkg/store"
	"github.com/opencane/edged/pkg/task"
	"github.com/opencane/edged/pkg/vectorindex"
)

// Runtime is the live control surface the API drives. *runtime.Runtime
// implements it.
type Runtime interface {
	Status(ctx context.Context) map[string]any
	DeviceStatus(deviceID string) (session.Snapshot, bool)
	InjectEvent(env protocol.Envelope) error
	SendCommand(ctx context.Context, deviceID, sessionID, cmdType string, payload map[string]any, traceID string) (protocol.Envelope, error)
	DispatchOperation(ctx context.Context, deviceID, sessionID, opType string, payload map[string]any, traceID string) (runtime.OperationDispatch, error)
	Abort(deviceID, reason string) bool
	CloseDeviceSession(deviceID, sessionID, reason string) bool
}

// Store is the durable surface the API reads and writes. *store.Store
// implements it.
type Store interface {
	RegisterDevice(ctx context.Context, deviceID string, metadata map[string]any) error
	BindDevice(ctx context.Context, deviceID, userID, token string) error
	ActivateDevice(ctx context.Context, deviceID string) error
	RevokeDevice(ctx context.Context, deviceID, reason string) error
	GetBinding(ctx context.Context, deviceID string) (store.Binding, error)

	EnqueueOperation(ctx context.Context, deviceID, sessionID, opType string, payload map[string]any) (string, error)
	MarkOperationSent(ctx context.Context, operationID string) error
	MarkOperationResult(ctx context.Context, operationID string, result map[string]any, success bool, errMsg string) error
	CancelOperation(ctx context.Context, operationID, reason string) error
	GetOperation(ctx context.Context, operationID string) (store.Operation, error)
	ListOperations(ctx context.Context, deviceID string, limit int) ([]store.Operation, error)

	Timeline(ctx context.Context, sessionID string, fromMS, toMS int64, eventTypes []string, limit int) ([]store.Event, error)
	SafetyQuery(ctx context.Context, sessionID, maxRiskLevel string, limit int) ([]store.Event, error)
	SafetyStats(ctx context.Context, sessionID string) (map[string]int, error)
	GetContextByImage(ctx context.Context, imageID string) (store.ContextRow, error)
	ListDeviceSessions(ctx context.Context, deviceID string, limit int) ([]session.Record, error)
	RecentSamples(ctx context.Context, deviceID string, sinceMS int64, limit int) ([]store.Sample, error)

	AppendTraceStep(ctx context.Context, step store.TraceStep) error
	QueryTraces(ctx context.Context, sessionID string, limit int) ([]store.TraceStep, error)
	ReplayTrace(ctx context.Context, traceID string) ([]store.TraceStep, error)

	InsertCounterSnapshot(ctx context.Context, snap store.CounterSnapshot) error
	RecentCounterSnapshots(ctx context.Context, scope string, limit int) ([]store.CounterSnapshot, error)
	PurgeExpired(ctx context.Context, policy store.RetentionPolicy) (store.RetentionResult, error)
}

// IngestQueue is the lifelog ingest surface. *lifelog.Pipeline implements it.
type IngestQueue interface {
	Ingest(ctx context.Context, req lifelog.IngestRequest) lifelog.IngestResult
	Status() lifelog.QueueStatus
}

// TaskService is the digital task surface. *task.Service implements it.
type TaskService interface {
	Execute(ctx context.Context, req task.ExecuteRequest) (task.ExecuteResult, error)
	Cancel(ctx context.Context, taskID, reason string) (store.Task, error)
	List(ctx context.Context, deviceID string, statuses []string, limit int) ([]store.Task, error)
	Stats(ctx context.Context, deviceID string) (map[string]int, error)
	FlushPendingUpdates(ctx context.Context, deviceID, sessionID string, limit int) (task.FlushResult, error)
}

// Masker scrubs sensitive values from payloads before they are persisted.
type Masker interface {
	MaskMap(m map[string]any) map[string]any
}

// Server hosts the control API over an echo router. Dependencies are
// optional: a handler whose service is absent answers 503.
type Server struct {
	echo       *echo.Echo
	httpServer *http.Server

	auth      config.AuthConfig
	lifelog   config.LifelogConfig
	retention config.RetentionConfig

	runtime Runtime
	store   Store
	ingest  IngestQueue
	tasks   TaskService
	index   vectorindex.Index
	masker  Masker
	db      *stdsql.DB
}

// Deps carries the service wiring for NewServer. DB is optional; when set
// the observability report includes a database health probe.
type Deps struct {
	Runtime Runtime
	Store   Store
	Ingest  IngestQueue
	Tasks   TaskService
	Index   vectorindex.Index
	Masker  Masker
	DB      *stdsql.DB
}

// NewServer builds the router with auth, rate limiting, replay protection,
// and security headers applied from config.
func NewServer(cfg *config.Config, deps Deps) *Server {
	s := &Server{
		runtime: deps.Runtime,
		store:   deps.Store,
		ingest:  deps.Ingest,
		tasks:   deps.Tasks,
		index:   deps.Index,
		masker:  deps.Masker,
		db:      deps.DB,
	}
	if cfg.Hardware != nil {
		s.auth = cfg.Hardware.Auth
	}
	if cfg.Lifelog != nil {
		s.lifelog = *cfg.Lifelog
	}
	if cfg.Retention != nil {
		s.retention = *cfg.Retention
	}

	e := echo.New()
	e.Use(securityHeaders())
	if s.auth.ControlAPIRateLimit.Enabled {
		e.Use(rateLimit(s.auth.ControlAPIRateLimit))
	}
	e.Use(requireAuth(s.auth))
	if s.auth.ControlAPIReplayProtection.Enabled {
		e.Use(replayProtection(s.auth.ControlAPIReplayProtection))
	}
	s.registerRoutes(e)
	s.echo = e
	return s
}

func (s *Server) registerRoutes(e *echo.Echo) {
	e.GET("/healthz", s.healthHandler)

	e.GET("/v1/runtime/status", s.runtimeStatusHandler)
	e.GET("/v1/runtime/observability", s.observabilityHandler)
	e.GET("/v1/runtime/observability/history", s.observabilityHistoryHandler)

	e.POST("/v1/device/event", s.deviceEventHandler)
	e.POST("/v1/device/command", s.deviceCommandHandler)
	e.GET("/v1/device/:device_id/status", s.deviceStatusHandler)
	e.POST("/v1/device/:device_id/abort", s.deviceAbortHandler)
	e.POST("/v1/device/:device_id/close", s.deviceCloseHandler)

	e.POST("/v1/device/register", s.deviceRegisterHandler)
	e.POST("/v1/device/bind", s.deviceBindHandler)
	e.POST("/v1/device/activate", s.deviceActivateHandler)
	e.POST("/v1/device/revoke", s.deviceRevokeHandler)
	e.GET("/v1/device/binding", s.deviceBindingHandler)

	e.POST("/v1/device/operation/enqueue", s.operationEnqueueHandler)
	e.POST("/v1/device/operation/mark", s.operationMarkHandler)
	e.POST("/v1/device/operation/query", s.operationQueryHandler)

	e.POST("/v1/lifelog/ingest", s.lifelogIngestHandler)
	e.POST("/v1/lifelog/query", s.lifelogQueryHandler)
	e.POST("/v1/lifelog/timeline", s.lifelogTimelineHandler)
	e.POST("/v1/lifelog/safety/query", s.safetyQueryHandler)
	e.POST("/v1/lifelog/safety/stats", s.safetyStatsHandler)
	e.POST("/v1/lifelog/thought_trace/append", s.traceAppendHandler)
	e.POST("/v1/lifelog/thought_trace/query", s.traceQueryHandler)
	e.POST("/v1/lifelog/thought_trace/replay", s.traceReplayHandler)
	e.GET("/v1/lifelog/device_sessions", s.deviceSessionsHandler)
	e.GET("/v1/lifelog/telemetry_samples", s.telemetrySamplesHandler)
	e.POST("/v1/lifelog/retention/cleanup", s.retentionCleanupHandler)

	e.POST("/v1/digital_task/execute", s.taskExecuteHandler)
	e.POST("/v1/digital_task/cancel", s.taskCancelHandler)
	e.POST("/v1/digital_task/list", s.taskListHandler)
	e.POST("/v1/digital_task/stats", s.taskStatsHandler)
	e.POST("/v1/digital_task/flush_pending_updates", s.taskFlushHandler)
}

// Start blocks serving HTTP until Shutdown or a listener error.
func (s *Server) Start(addr string) error {
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.echo,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s.httpServer.ListenAndServe()
}

// Shutdown drains in-flight requests until ctx expires.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	return s.httpServer.Shutdown(ctx)
}

// Handler exposes the router for tests.
func (s *Server) Handler() http.Handler {
	return s.echo
}
