package config

import "time"

// LifelogConfig holds the resolved ingest-pipeline and retrieval settings.
type LifelogConfig struct {
	VectorBackend VectorBackend
	Redis         RedisConfig

	IngestQueueMaxSize   int
	IngestWorkers        int
	IngestOverflowPolicy OverflowPolicy
	IngestEnqueueTimeout time.Duration

	// DefaultTopK caps vector query results when the caller does not ask
	// for a count; MaxTimelineItems caps timeline reads.
	DefaultTopK      int
	MaxTimelineItems int

	// DedupMaxDistance is the Hamming distance at or under which an
	// ingested image counts as a near-duplicate. 0 means exact match only.
	DedupMaxDistance int
	RecentHashLimit  int

	// Assets is the file-backed image store behind asset:// URIs.
	Assets AssetConfig
}

// RedisConfig points the redis vector backend at its server.
type RedisConfig struct {
	Addr      string `yaml:"addr"`
	Password  string `yaml:"password"`
	DB        int    `yaml:"db"`
	KeyPrefix string `yaml:"key_prefix"`
}

// AssetConfig bounds the on-disk image asset store.
type AssetConfig struct {
	Dir             string `yaml:"dir"`
	MaxFiles        int    `yaml:"max_files"`
	CleanupInterval int    `yaml:"cleanup_interval"`
}

// DefaultLifelogConfig returns the built-in lifelog defaults: in-memory
// vectors, small bounded queue, reject on overflow.
func DefaultLifelogConfig() *LifelogConfig {
	return &LifelogConfig{
		VectorBackend:        VectorMemory,
		Redis:                RedisConfig{Addr: "127.0.0.1:6379", KeyPrefix: "edged:lifelog"},
		IngestQueueMaxSize:   16,
		IngestWorkers:        2,
		IngestOverflowPolicy: OverflowReject,
		IngestEnqueueTimeout: 2 * time.Second,
		DefaultTopK:          5,
		MaxTimelineItems:     200,
		DedupMaxDistance:     3,
		RecentHashLimit:      50,
		Assets: AssetConfig{
			Dir:             "data/assets",
			MaxFiles:        5000,
			CleanupInterval: 100,
		},
	}
}
