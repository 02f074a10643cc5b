// Package e2e boots the complete device runtime stack (Postgres-backed
// store, session manager, lifelog ingest pipeline, policy gates, digital
// task service, and the control HTTP API) on top of the in-memory mock
// adapter, then drives it the way a real device and operator would:
// canonical envelopes in through the adapter, control calls over HTTP,
// assertions against adapter output and durable rows.
//
// Each test gets an isolated database schema (shared Postgres container or
// EDGED_TEST_DATABASE_URL), so scenarios run in parallel without bleeding
// state.
package e2e

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/opencane/edged/pkg/adapter"
	"github.com/opencane/edged/pkg/api"
	"github.com/opencane/edged/pkg/config"
	"github.com/opencane/edged/pkg/lifelog"
	"github.com/opencane/edged/pkg/masking"
	"github.com/opencane/edged/pkg/policy"
	"github.com/opencane/edged/pkg/runtime"
	"github.com/opencane/edged/pkg/session"
	"github.com/opencane/edged/pkg/store"
	"github.com/opencane/edged/pkg/task"
	"github.com/opencane/edged/pkg/vectorindex"
	testdb "github.com/opencane/edged/test/database"
)

// TestApp is one fully wired runtime under test. Every collaborator is
// exported so scenarios can assert at whichever layer is most direct: the
// adapter for command ordering, the store for durable rows, the HTTP
// surface for operator flows.
type TestApp struct {
	t *testing.T

	Config   *config.Config
	Store    *store.Store
	Sessions *session.Manager
	Adapter  *adapter.Mock
	Runtime  *runtime.Runtime
	Pipeline *lifelog.Pipeline
	Index    vectorindex.Index
	Tasks    *task.Service

	HTTP    *httptest.Server
	BaseURL string
}

type testAppConfig struct {
	cfg        *config.Config
	runtimeCfg runtime.Config
	agent      runtime.AgentLoop
	analyzer   lifelog.Analyzer
	ingestCfg  lifelog.Config
	taskCfg    task.Config
	executor   task.Executor
}

// TestAppOption customizes the stack before it boots.
type TestAppOption func(*testAppConfig)

// WithConfig replaces the whole application config.
func WithConfig(cfg *config.Config) TestAppOption {
	return func(tc *testAppConfig) { tc.cfg = cfg }
}

// WithRuntimeConfig tunes the session runtime (auth gates, TTS chunking,
// heartbeat supervision).
func WithRuntimeConfig(cfg runtime.Config) TestAppOption {
	return func(tc *testAppConfig) { tc.runtimeCfg = cfg }
}

// WithAgent wires an agent loop. The default is none: voice turns then
// close with a bare tts_stop, which several scenarios rely on.
func WithAgent(a runtime.AgentLoop) TestAppOption {
	return func(tc *testAppConfig) { tc.agent = a }
}

// WithAnalyzer wires a lifelog image analyzer.
func WithAnalyzer(a lifelog.Analyzer) TestAppOption {
	return func(tc *testAppConfig) { tc.analyzer = a }
}

// WithIngestConfig sizes the lifelog ingest queue.
func WithIngestConfig(cfg lifelog.Config) TestAppOption {
	return func(tc *testAppConfig) { tc.ingestCfg = cfg }
}

// WithTaskExecutor enables the digital task service around the given
// executor. Without it the task surface answers 503.
func WithTaskExecutor(ex task.Executor) TestAppOption {
	return func(tc *testAppConfig) { tc.executor = ex }
}

// WithTaskConfig tunes the task service. Only meaningful together with
// WithTaskExecutor.
func WithTaskConfig(cfg task.Config) TestAppOption {
	return func(tc *testAppConfig) { tc.taskCfg = cfg }
}

// defaultTestConfig is the production default config with every control-API
// hardening knob switched off, so scenario requests stay plain POSTs.
func defaultTestConfig() *config.Config {
	cfg := &config.Config{
		Hardware:    config.DefaultHardwareConfig(),
		Safety:      config.DefaultSafetyConfig(),
		Interaction: config.DefaultInteractionConfig(),
		Lifelog:     config.DefaultLifelogConfig(),
		DigitalTask: config.DefaultDigitalTaskConfig(),
		Masking:     config.DefaultMaskingConfig(),
		Retention:   config.DefaultRetentionConfig(),
	}
	cfg.Hardware.Auth = config.AuthConfig{}
	return cfg
}

// NewTestApp boots the stack and registers teardown in reverse creation
// order. The interaction policy clock is pinned to mid-morning so quiet-hour
// behavior never depends on when CI runs.
func NewTestApp(t *testing.T, opts ...TestAppOption) *TestApp {
	t.Helper()

	tc := &testAppConfig{
		cfg:       defaultTestConfig(),
		ingestCfg: lifelog.Config{MaxQueueSize: 8, Workers: 2},
		taskCfg: task.Config{
			DefaultTimeout:     10 * time.Second,
			MaxConcurrent:      2,
			StatusRetryCount:   0,
			StatusRetryBackoff: 50 * time.Millisecond,
		},
	}
	for _, opt := range opts {
		opt(tc)
	}

	// 1. Durable store on an isolated schema.
	client := testdb.NewTestClient(t)
	st := store.New(client.Client)

	// 2. Session manager persisting through the store.
	sessions := session.NewManager(st)

	// 3. Lifelog pipeline with an in-memory vector index. The worker context
	// is canceled first during teardown so a scenario that parked the
	// analyzer can never wedge Stop.
	index := vectorindex.NewMemoryIndex(nil)
	pipeline := lifelog.NewPipeline(tc.ingestCfg, st, index, tc.analyzer, nil, nil)
	pipeCtx, pipeCancel := context.WithCancel(context.Background())
	pipeline.Start(pipeCtx)
	t.Cleanup(pipeline.Stop)

	// 4. Policy gates with a pinned daytime clock.
	safety := policy.NewSafetyPolicy(policy.DefaultSafetyConfig())
	interaction := policy.NewInteractionPolicy(policy.DefaultInteractionConfig(), func() int { return 10 })

	// 5. Digital task service, only when a scenario supplies an executor.
	var tasks *task.Service
	if tc.executor != nil {
		tasks = task.NewService(st, tc.executor, tc.taskCfg, nil, nil)
		t.Cleanup(tasks.Stop)
	}

	// 6. Runtime on the mock adapter. Optional collaborators are assigned
	// conditionally so absent ones stay nil interfaces.
	mock := adapter.NewMock()
	rtOpts := runtime.Options{
		Adapter:     mock,
		Sessions:    sessions,
		Store:       st,
		Safety:      safety,
		Interaction: interaction,
		Ingest:      pipeline,
		Config:      tc.runtimeCfg,
	}
	if tc.agent != nil {
		rtOpts.Agent = tc.agent
	}
	if tasks != nil {
		rtOpts.Tasks = tasks
	}
	rt, err := runtime.New(rtOpts)
	require.NoError(t, err)
	require.NoError(t, rt.Start(context.Background()))
	t.Cleanup(func() { _ = rt.Stop(context.Background()) })
	if tasks != nil {
		tasks.SetStatusCallback(rt.TaskStatusCallback())
	}

	// 7. Control API over a test listener.
	deps := api.Deps{
		Runtime: rt,
		Store:   st,
		Ingest:  pipeline,
		Index:   index,
		Masker:  masking.NewService(tc.cfg.Masking),
		DB:      client.DB(),
	}
	if tasks != nil {
		deps.Tasks = tasks
	}
	server := api.NewServer(tc.cfg, deps)
	httpServer := httptest.NewServer(server.Handler())
	t.Cleanup(httpServer.Close)
	t.Cleanup(pipeCancel)

	return &TestApp{
		t:        t,
		Config:   tc.cfg,
		Store:    st,
		Sessions: sessions,
		Adapter:  mock,
		Runtime:  rt,
		Pipeline: pipeline,
		Index:    index,
		Tasks:    tasks,
		HTTP:     httpServer,
		BaseURL:  httpServer.URL,
	}
}
