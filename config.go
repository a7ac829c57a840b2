package tempbox

import "time"

type (
	Config struct {
		Bolt      BoltConfig
		Redis     RedisConfig
		Postgres  PostgresConfig
		Worker    WorkerConfig
		MaxBoxes  int
		CacheSize int
	}

	BoltConfig struct {
		Path    string
		Bucket  string
		Timeout time.Duration
	}

	RedisConfig struct {
		Addr     string
		Password string
		Prefix   string
		DB       int
	}

	PostgresConfig struct {
		DSN            string
		Table          string
		ConnectTimeout time.Duration
	}

	WorkerConfig struct {
		WorkerCount  int
		MaxQueueSize int
		PutTimeout   time.Duration
	}
)

const (
	DefaultMaxBoxes       = 16
	DefaultCacheSize      = 4096
	DefaultBoltPath       = "tempbox.db"
	DefaultBoltBucket     = "entries"
	DefaultBoltTimeout    = time.Second
	DefaultRedisEndpoint  = "localhost:6379"
	DefaultRedisPrefix    = "tempbox"
	DefaultRedisDB        = 0
	DefaultPostgresDSN    = "postgres://localhost:5432/tempbox"
	DefaultPostgresTable  = "tempbox_entries"
	DefaultConnectTimeout = 5 * time.Second
	DefaultWorkerCount    = 4
	DefaultMaxQueueSize   = 1024
	DefaultPutTimeout     = 10 * time.Second
)

func DefaultConfig() Config {
	return Config{
		Bolt:      DefaultBoltConfig(),
		Redis:     DefaultRedisConfig(),
		Postgres:  DefaultPostgresConfig(),
		Worker:    DefaultWorkerConfig(),
		MaxBoxes:  DefaultMaxBoxes,
		CacheSize: DefaultCacheSize,
	}
}

func DefaultBoltConfig() BoltConfig {
	return BoltConfig{
		Path:    DefaultBoltPath,
		Bucket:  DefaultBoltBucket,
		Timeout: DefaultBoltTimeout,
	}
}

func DefaultRedisConfig() RedisConfig {
	return RedisConfig{
		Addr:     DefaultRedisEndpoint,
		Password: "",
		Prefix:   DefaultRedisPrefix,
		DB:       DefaultRedisDB,
	}
}

func DefaultPostgresConfig() PostgresConfig {
	return PostgresConfig{
		DSN:            DefaultPostgresDSN,
		Table:          DefaultPostgresTable,
		ConnectTimeout: DefaultConnectTimeout,
	}
}

func DefaultWorkerConfig() WorkerConfig {
	return WorkerConfig{
		WorkerCount:  DefaultWorkerCount,
		MaxQueueSize: DefaultMaxQueueSize,
		PutTimeout:   DefaultPutTimeout,
	}
}
