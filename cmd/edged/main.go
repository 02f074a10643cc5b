// edged device runtime server — terminates device sessions over the
// configured southbound adapter, brokers voice and vision turns through the
// agent loop, and serves the control HTTP API.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/opencane/edged/pkg/adapter"
	"github.com/opencane/edged/pkg/agent"
	"github.com/opencane/edged/pkg/api"
	"github.com/opencane/edged/pkg/cleanup"
	"github.com/opencane/edged/pkg/config"
	"github.com/opencane/edged/pkg/database"
	"github.com/opencane/edged/pkg/lifelog"
	"github.com/opencane/edged/pkg/masking"
	"github.com/opencane/edged/pkg/mcptools"
	"github.com/opencane/edged/pkg/policy"
	"github.com/opencane/edged/pkg/runtime"
	"github.com/opencane/edged/pkg/session"
	"github.com/opencane/edged/pkg/store"
	"github.com/opencane/edged/pkg/task"
	"github.com/opencane/edged/pkg/vectorindex"
	"github.com/redis/go-redis/v9"
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// buildAdapter constructs the southbound adapter selected by the hardware
// config. Profile-alias kinds (ec600, generic_mqtt) were already resolved to
// mqtt with a device profile by the config loader. A disabled hardware link
// falls back to the inert mock adapter so the control API stays up.
func buildAdapter(hw *config.HardwareConfig, metrics *adapter.Metrics) (adapter.Adapter, error) {
	if !hw.Enabled {
		return adapter.NewMock(), nil
	}

	switch hw.Adapter {
	case config.AdapterMock:
		return adapter.NewMock(), nil

	case config.AdapterWebSocket:
		return adapter.NewWSAdapter(adapter.WSConfig{
			Host:         hw.Host,
			Port:         hw.Port,
			RequireToken: hw.Auth.Enabled,
			Token:        hw.Auth.Token,
			PacketMagic:  hw.PacketMagic,
		}, nil, metrics), nil

	case config.AdapterMQTT:
		profile, err := adapter.ResolveProfile(hw.DeviceProfile)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve device profile: %w", err)
		}
		overrides, err := adapter.ParseOverrides(hw.ProfileOverrides)
		if err != nil {
			return nil, fmt.Errorf("failed to parse profile overrides: %w", err)
		}
		profile, err = profile.WithOverrides(overrides)
		if err != nil {
			return nil, fmt.Errorf("failed to apply profile overrides: %w", err)
		}
		return adapter.NewMQTTAdapter(adapter.MQTTConfig{
			Host:                     hw.MQTT.Host,
			Port:                     hw.MQTT.Port,
			Username:                 hw.MQTT.Username,
			Password:                 hw.MQTT.Password,
			ClientID:                 hw.MQTT.ClientID,
			KeepaliveSeconds:         hw.MQTT.KeepaliveSeconds,
			ReconnectMinSeconds:      hw.MQTT.ReconnectMinSeconds,
			ReconnectMaxSeconds:      hw.MQTT.ReconnectMaxSeconds,
			QoSControl:               byte(hw.MQTT.QoSControl),
			QoSAudio:                 byte(hw.MQTT.QoSAudio),
			UpControlTopic:           hw.MQTT.UpControlTopic,
			UpAudioTopic:             hw.MQTT.UpAudioTopic,
			DownControlTopicTemplate: hw.MQTT.DownControlTopicTemplate,
			DownAudioTopicTemplate:   hw.MQTT.DownAudioTopicTemplate,
			ReplayEnabled:            hw.MQTT.ReplayEnabled,
			ControlReplayWindow:      hw.MQTT.ControlReplayWindow,
			OfflineControlBuffer:     hw.MQTT.OfflineControlBuffer,
		}, profile, nil, metrics), nil

	default:
		return nil, fmt.Errorf("unknown adapter kind %q", hw.Adapter)
	}
}

// mcpServerSpecs converts the configured MCP server map into client specs.
func mcpServerSpecs(servers map[string]*config.MCPServerConfig) []mcptools.ServerSpec {
	specs := make([]mcptools.ServerSpec, 0, len(servers))
	for id, server := range servers {
		specs = append(specs, mcptools.ServerSpec{
			ID: id,
			Transport: mcptools.TransportSpec{
				Type:        string(server.Transport.Type),
				Command:     server.Transport.Command,
				Args:        server.Transport.Args,
				Env:         server.Transport.Env,
				URL:         server.Transport.URL,
				BearerToken: server.Transport.BearerToken,
				TimeoutSec:  server.Transport.Timeout,
				VerifySSL:   server.Transport.VerifySSL,
			},
			Tools: server.Tools,
		})
	}
	return specs
}

// visionService adapts the agent's vision analyzer to the runtime's
// image-turn interface.
type visionService struct {
	analyzer *agent.VisionAnalyzer
}

func (v *visionService) AnalyzePayload(ctx context.Context, payload map[string]any) (runtime.VisionAnswer, error) {
	reply, err := v.analyzer.AnalyzePayload(ctx, payload)
	if err != nil {
		return runtime.VisionAnswer{}, err
	}
	return runtime.VisionAnswer{
		Text:       reply.Text,
		Confidence: reply.Confidence,
		RiskLevel:  reply.RiskLevel,
		Structured: reply.Structured,
	}, nil
}

func main() {
	// Parse command-line flags
	configDir := flag.String("config-dir",
		getEnv("CONFIG_DIR", "./deploy/config"),
		"Path to configuration directory")
	flag.Parse()

	// Load .env file from config directory
	envPath := filepath.Join(*configDir, ".env")
	if err := godotenv.Load(envPath); err != nil {
		slog.Warn("Could not load .env file, continuing with existing environment",
			"path", envPath, "error", err)
	} else {
		slog.Info("Loaded environment", "path", envPath)
	}

	slog.Info("Starting edged", "config_dir", *configDir)

	ctx := context.Background()

	// 1. Initialize configuration
	cfg, err := config.Initialize(ctx, *configDir)
	if err != nil {
		slog.Error("Failed to initialize configuration", "error", err)
		os.Exit(1)
	}
	hw := cfg.Hardware

	// 2. Initialize database
	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		slog.Error("Failed to load database config", "error", err)
		os.Exit(1)
	}

	dbClient, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("Error closing database client", "error", err)
		}
	}()
	slog.Info("Connected to PostgreSQL database")

	st := store.New(dbClient.Client)

	// 3. Masking service (scrubs secrets before text reaches the store,
	// the agent, or a device)
	maskSvc := masking.NewService(cfg.Masking)

	// 4. Lifelog retrieval index
	var index vectorindex.Index
	if cfg.Lifelog.VectorBackend == config.VectorRedis {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Lifelog.Redis.Addr,
			Password: cfg.Lifelog.Redis.Password,
			DB:       cfg.Lifelog.Redis.DB,
		})
		index = vectorindex.NewRedisIndex(redisClient, cfg.Lifelog.Redis.KeyPrefix, nil)
	} else {
		index = vectorindex.NewMemoryIndex(nil)
	}
	slog.Info("Vector index initialized", "backend", cfg.Lifelog.VectorBackend)

	// 5. Vision analyzer and lifelog ingest pipeline. Without an API key
	// frames are stored with default contexts only.
	apiKey := os.Getenv(cfg.LLM.APIKeyEnv)
	var vision *agent.VisionAnalyzer
	if apiKey != "" {
		vision, err = agent.NewVisionAnalyzerFromAPIKey(apiKey,
			agent.VisionConfig{Model: cfg.LLM.VisionModel, MaxTokens: cfg.LLM.MaxTokens}, nil)
		if err != nil {
			slog.Error("Failed to initialize vision analyzer", "error", err)
			os.Exit(1)
		}
	}
	var analyzer lifelog.Analyzer
	if vision != nil {
		analyzer = vision
	}

	assets, err := lifelog.NewAssetStore(cfg.Lifelog.Assets.Dir,
		cfg.Lifelog.Assets.MaxFiles, cfg.Lifelog.Assets.CleanupInterval)
	if err != nil {
		slog.Error("Failed to initialize asset store", "error", err)
		os.Exit(1)
	}
	pipeline := lifelog.NewPipeline(lifelog.Config{
		MaxQueueSize:     cfg.Lifelog.IngestQueueMaxSize,
		Workers:          cfg.Lifelog.IngestWorkers,
		OverflowPolicy:   string(cfg.Lifelog.IngestOverflowPolicy),
		EnqueueTimeout:   cfg.Lifelog.IngestEnqueueTimeout,
		DedupMaxDistance: cfg.Lifelog.DedupMaxDistance,
		RecentHashLimit:  cfg.Lifelog.RecentHashLimit,
	}, st, index, analyzer, assets, nil)
	pipeline.Start(ctx)

	// 6. MCP tool provider. Partial initialization is acceptable: turns run
	// with whatever tools connected.
	mcpClient := mcptools.NewClient(mcpServerSpecs(cfg.MCPServers), nil)
	if err := mcpClient.Initialize(ctx); err != nil {
		slog.Error("Failed to initialize MCP servers", "error", err)
		os.Exit(1)
	}
	if failed := mcpClient.FailedServers(); len(failed) > 0 {
		slog.Warn("Some MCP servers failed to initialize", "failed_servers", failed)
	}
	toolProvider := mcptools.NewProvider(mcpClient, nil)
	defer func() {
		if err := toolProvider.Close(); err != nil {
			slog.Error("Error closing MCP provider", "error", err)
		}
	}()

	// 7. Tool domain registry for per-turn channel gating
	domains := policy.NewToolDomainManager()
	if defs, err := toolProvider.Definitions(ctx); err != nil {
		slog.Warn("Failed to list MCP tools", "error", err)
	} else if len(defs) > 0 {
		domains.RegisterMCPTools(toolProvider.Names())
		slog.Info("MCP tools registered", "count", len(defs))
	}

	// 8. Agent loop. Without an API key voice turns degrade to canned
	// replies and digital tasks are unavailable.
	var loop agent.Loop
	if apiKey != "" {
		anthropicLoop, err := agent.NewAnthropicLoopFromAPIKey(apiKey, toolProvider, domains,
			agent.AnthropicConfig{
				Model:         cfg.LLM.Model,
				MaxTokens:     cfg.LLM.MaxTokens,
				Temperature:   cfg.LLM.Temperature,
				MaxIterations: cfg.LLM.MaxIterations,
			}, nil)
		if err != nil {
			slog.Error("Failed to initialize agent loop", "error", err)
			os.Exit(1)
		}
		loop = anthropicLoop
		slog.Info("Agent loop initialized", "model", cfg.LLM.Model)
	} else {
		slog.Warn("Agent loop disabled: API key not set", "env", cfg.LLM.APIKeyEnv)
	}

	// 9. Control plane client (auto-disabled without a base URL)
	controlPlane := agent.NewControlPlaneClient(agent.ControlPlaneConfig{
		Enabled:  hw.ControlPlane.Enabled,
		BaseURL:  hw.ControlPlane.BaseURL,
		APIToken: hw.ControlPlane.APIToken,
		Timeout:  time.Duration(hw.ControlPlane.TimeoutSeconds) * time.Second,
		CacheTTL: time.Duration(hw.ControlPlane.CacheTTLSeconds) * time.Second,
	})

	// 10. Digital task service (needs the agent loop to do anything)
	var taskSvc *task.Service
	if loop != nil {
		taskSvc = task.NewService(st, task.NewAgentExecutor(loop, toolProvider, nil),
			task.Config{
				DefaultTimeout:     cfg.DigitalTask.DefaultTimeout,
				MaxConcurrent:      cfg.DigitalTask.MaxConcurrentTasks,
				StatusRetryCount:   cfg.DigitalTask.StatusRetryCount,
				StatusRetryBackoff: cfg.DigitalTask.StatusRetryBackoff,
			}, nil, nil)
	}

	// 11. Output policies
	safety := policy.NewSafetyPolicy(policy.SafetyConfig{
		Enabled:                        cfg.Safety.Enabled,
		LowConfidenceThreshold:         cfg.Safety.LowConfidenceThreshold,
		MaxOutputChars:                 cfg.Safety.MaxOutputChars,
		PrependCautionForRisk:          cfg.Safety.PrependCautionForRisk,
		SemanticGuardEnabled:           cfg.Safety.SemanticGuardEnabled,
		DirectionalConfidenceThreshold: cfg.Safety.DirectionalConfidenceThreshold,
	})
	interaction := policy.NewInteractionPolicy(policy.InteractionConfig{
		Enabled:                         cfg.Interaction.Enabled,
		EmotionEnabled:                  cfg.Interaction.EmotionEnabled,
		ProactiveEnabled:                cfg.Interaction.ProactiveEnabled,
		SilentEnabled:                   cfg.Interaction.SilentEnabled,
		LowConfidenceThreshold:          cfg.Interaction.LowConfidenceThreshold,
		HighRiskLevels:                  cfg.Interaction.HighRiskLevels,
		ProactiveSources:                cfg.Interaction.ProactiveSources,
		SilentSources:                   cfg.Interaction.SilentSources,
		QuietHoursEnabled:               cfg.Interaction.QuietHoursEnabled,
		QuietHoursStartHour:             cfg.Interaction.QuietHoursStartHour,
		QuietHoursEndHour:               cfg.Interaction.QuietHoursEndHour,
		SuppressLowPriorityInQuietHours: cfg.Interaction.SuppressLowPriorityInQuietHours,
	}, nil)

	// 12. Southbound adapter and device runtime
	adapterMetrics := new(adapter.Metrics)
	south, err := buildAdapter(hw, adapterMetrics)
	if err != nil {
		slog.Error("Failed to build adapter", "error", err)
		os.Exit(1)
	}
	if !hw.Enabled {
		slog.Warn("Hardware link disabled, running with the mock adapter")
	}

	enableVAD := hw.Audio.EnableVAD
	rtOpts := runtime.Options{
		Adapter:     south,
		Sessions:    session.NewManager(st),
		Store:       st,
		Safety:      safety,
		Interaction: interaction,
		Tools:       toolProvider,
		Policies:    controlPlane,
		Ingest:      pipeline,
		Masker:      maskSvc,
		Config: runtime.Config{
			TTSMode:            string(hw.TTSMode),
			TTSAudioChunkBytes: hw.TTSAudioChunkBytes,
			TTSTextChunkChars:  hw.TTSTextChunkChars,
			NoHeartbeatTimeout: time.Duration(hw.HeartbeatSeconds) * time.Second,
			DeviceAuthEnabled:  hw.Auth.DeviceAuthEnabled,
			AllowUnbound:       hw.Auth.AllowUnboundDevices,
			RequireActivated:   hw.Auth.RequireActivatedDevices,
			ToolResultEnabled:  true,
			TelemetryNormalize: true,
			TelemetryPersist:   true,
			Capture: runtime.CaptureConfig{
				MaxBytes:         hw.Audio.MaxCaptureBytes,
				EnableVAD:        &enableVAD,
				PrebufferChunks:  hw.Audio.PrebufferChunks,
				JitterWindow:     hw.Audio.JitterWindow,
				VADSilenceChunks: hw.Audio.VADSilenceChunks,
			},
		},
	}
	if loop != nil {
		rtOpts.Agent = loop
	}
	if taskSvc != nil {
		rtOpts.Tasks = taskSvc
	}
	if vision != nil {
		rtOpts.Vision = &visionService{analyzer: vision}
	}

	rt, err := runtime.New(rtOpts)
	if err != nil {
		slog.Error("Failed to build device runtime", "error", err)
		os.Exit(1)
	}

	// Task status updates flow back to devices through the runtime.
	if taskSvc != nil {
		taskSvc.SetStatusCallback(rt.TaskStatusCallback())
		if recovered, err := taskSvc.RecoverUnfinished(ctx); err != nil {
			slog.Error("Failed to recover unfinished tasks", "error", err)
			// Non-fatal — continue
		} else if recovered > 0 {
			slog.Info("Recovered unfinished tasks", "count", recovered)
		}
	}

	if err := rt.Start(ctx); err != nil {
		slog.Error("Failed to start device runtime", "error", err)
		os.Exit(1)
	}

	// 13. Retention cleanup loop (no-op unless enabled)
	retention := cleanup.NewService(cfg.Retention, st)
	retention.Start(ctx)

	// 14. Control HTTP API
	deps := api.Deps{
		Runtime: rt,
		Store:   st,
		Ingest:  pipeline,
		Index:   index,
		Masker:  maskSvc,
		DB:      dbClient.DB(),
	}
	if taskSvc != nil {
		deps.Tasks = taskSvc
	}
	httpServer := api.NewServer(cfg, deps)

	// 15. Start HTTP server (non-blocking)
	errCh := make(chan error, 1)
	go func() {
		addr := fmt.Sprintf("%s:%d", hw.ControlHost, hw.ControlPort)
		slog.Info("Control API listening", "addr", addr)
		if err := httpServer.Start(addr); err != nil && err != http.ErrServerClosed {
			slog.Error("HTTP server error", "error", err)
			errCh <- err
		}
	}()

	slog.Info("edged started successfully",
		"adapter", south.Name(),
		"transport", south.Transport(),
		"tts_mode", hw.TTSMode)

	// 16. Wait for shutdown signal or server error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	// 17. Graceful shutdown
	retention.Stop()

	// Stop accepting control traffic first so no new ingest or event work
	// arrives while the collaborators behind the handlers wind down.
	httpShutdownCtx, httpCancel := context.WithTimeout(ctx, 5*time.Second)
	defer httpCancel()
	if err := httpServer.Shutdown(httpShutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	// Stop the runtime next so sessions close and in-flight turns drain
	// before their collaborators go away.
	rtShutdownCtx, rtCancel := context.WithTimeout(ctx, 15*time.Second)
	defer rtCancel()
	rtDone := make(chan struct{})
	go func() {
		if err := rt.Stop(rtShutdownCtx); err != nil {
			slog.Error("Device runtime stop error", "error", err)
		}
		close(rtDone)
	}()

	select {
	case <-rtDone:
		slog.Info("Device runtime stopped gracefully")
	case <-rtShutdownCtx.Done():
		slog.Warn("Device runtime shutdown timeout exceeded")
	}

	if taskSvc != nil {
		taskDone := make(chan struct{})
		go func() {
			taskSvc.Stop()
			close(taskDone)
		}()

		select {
		case <-taskDone:
			slog.Info("Task service stopped gracefully")
		case <-time.After(10 * time.Second):
			slog.Warn("Task service shutdown timeout exceeded")
		}
	}

	pipeline.Stop()

	slog.Info("Shutdown complete")
}
