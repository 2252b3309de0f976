package config

import (
	"flag"
	"os"
	"sync"
	"time"
)

const (
	defaultStoragePath = "./orders"
	defaultOMSBaseURL  = "http://localhost:8181"
	defaultDatabaseDSN = ""
	defaultLogLevel    = "info"
)

type Config struct {
	StoragePath  string
	OMSBaseURL   string
	DatabaseDSN  string
	LogLevel     string
	PollInterval time.Duration
}

var (
	once      sync.Once
	singleton *Config
	parseErr  error
)

// New returns new Config. It parses command line and environment variables only once.
func New() (*Config, error) {
	once.Do(func() {
		cfg := Config{}

		// initialize flags
		flag.StringVar(&cfg.StoragePath, "s", defaultStoragePath, "directory with incoming order files")
		flag.StringVar(&cfg.OMSBaseURL, "o", defaultOMSBaseURL, "order management system base URL")
		flag.StringVar(&cfg.DatabaseDSN, "d", defaultDatabaseDSN, "database DSN, empty runs on in-memory fixtures")
		flag.StringVar(&cfg.LogLevel, "l", defaultLogLevel, "log level")
		flag.DurationVar(&cfg.PollInterval, "p", 0, "storage poll interval, 0 processes a single batch")

		flag.Parse()

		// if environment variable is set, then using it
		if storagePathEnv := os.Getenv("ORDER_STORAGE_PATH"); storagePathEnv != "" {
			cfg.StoragePath = storagePathEnv
		}
		if omsBaseURLEnv := os.Getenv("OMS_BASE_URL"); omsBaseURLEnv != "" {
			cfg.OMSBaseURL = omsBaseURLEnv
		}
		if databaseDSNEnv := os.Getenv("DATABASE_URI"); databaseDSNEnv != "" {
			cfg.DatabaseDSN = databaseDSNEnv
		}
		if logLevelEnv := os.Getenv("LOG_LEVEL"); logLevelEnv != "" {
			cfg.LogLevel = logLevelEnv
		}
		if pollIntervalEnv := os.Getenv("POLL_INTERVAL"); pollIntervalEnv != "" {
			cfg.PollInterval, parseErr = time.ParseDuration(pollIntervalEnv)
		}

		singleton = &cfg
	})

	if parseErr != nil {
		return nil, parseErr
	}
	return singleton, nil
}
