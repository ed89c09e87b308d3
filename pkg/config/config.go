// Package config provides configuration management for the
// connected-components benchmark harness.
package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
type Config struct {
	Benchmark BenchmarkConfig `mapstructure:"benchmark"`
	Database  DatabaseConfig  `mapstructure:"database"`
	Storage   StorageConfig   `mapstructure:"storage"`
	Telemetry TelemetryConfig `mapstructure:"telemetry"`
	Log       LogConfig       `mapstructure:"log"`
}

// BenchmarkConfig holds default benchmark run parameters.
type BenchmarkConfig struct {
	DataDir     string `mapstructure:"data_dir"`
	Threads     int    `mapstructure:"threads"`
	Trials      int    `mapstructure:"trials"`
	ChunkSize   int    `mapstructure:"chunk_size"`
	DefaultMode string `mapstructure:"default_mode"` // "propagation" or "union_find"
}

// DatabaseConfig holds the result-repository connection configuration.
// Type selects the GORM driver: sqlite is the local single-machine
// default, postgres/mysql support pushing trial rows from a fleet of
// benchmark machines at a shared server for cross-machine aggregation.
type DatabaseConfig struct {
	Type     string `mapstructure:"type"` // sqlite, postgres, or mysql
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Database string `mapstructure:"database"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	MaxConns int    `mapstructure:"max_conns"`
}

// StorageConfig holds object storage configuration used to upload the
// JSON benchmark report.
type StorageConfig struct {
	Type      string `mapstructure:"type"` // cos or local
	Bucket    string `mapstructure:"bucket"`
	Region    string `mapstructure:"region"`
	SecretID  string `mapstructure:"secret_id"`
	SecretKey string `mapstructure:"secret_key"`
	Domain    string `mapstructure:"domain"`
	Scheme    string `mapstructure:"scheme"`
	LocalPath string `mapstructure:"local_path"`
}

// TelemetryConfig holds the tracing section of the config file.
// pkg/telemetry does not read it: tracing is switched on and configured
// only through the OTel environment variables (see
// pkg/telemetry.LoadFromEnv).
type TelemetryConfig struct {
	Enabled     bool   `mapstructure:"enabled"`
	ServiceName string `mapstructure:"service_name"`
	Endpoint    string `mapstructure:"endpoint"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level      string `mapstructure:"level"`
	OutputPath string `mapstructure:"output_path"`
	Format     string `mapstructure:"format"` // json or text
}

// Load reads configuration from the specified file path.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./configs")
		v.AddConfigPath("/etc/conncomp-bench")
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			fmt.Println("Config file not found, using defaults")
		} else if os.IsNotExist(err) {
			fmt.Printf("Config file %s not found, using defaults\n", configPath)
		} else {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// LoadFromReader loads configuration from raw bytes (useful for testing).
func LoadFromReader(configType string, content []byte) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigType(configType)
	if err := v.ReadConfig(bytes.NewReader(content)); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("benchmark.data_dir", "./data")
	v.SetDefault("benchmark.threads", 8)
	v.SetDefault("benchmark.trials", 1)
	v.SetDefault("benchmark.chunk_size", 4096)
	v.SetDefault("benchmark.default_mode", "propagation")

	v.SetDefault("database.type", "sqlite")
	v.SetDefault("database.database", "./data/results.db")
	v.SetDefault("database.max_conns", 10)

	v.SetDefault("storage.type", "local")
	v.SetDefault("storage.local_path", "./reports")

	v.SetDefault("telemetry.enabled", false)
	v.SetDefault("telemetry.service_name", "conncomp-bench")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.output_path", "./logs")
	v.SetDefault("log.format", "text")
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	switch c.Database.Type {
	case "sqlite", "postgres", "mysql":
	default:
		return fmt.Errorf("unsupported database type: %s", c.Database.Type)
	}
	if c.Database.Type != "sqlite" && c.Database.Host == "" {
		return fmt.Errorf("database host is required for %s", c.Database.Type)
	}

	if c.Benchmark.Threads < 1 {
		return fmt.Errorf("benchmark threads must be at least 1")
	}
	if c.Benchmark.Trials < 1 {
		return fmt.Errorf("benchmark trials must be at least 1")
	}

	return nil
}

// EnsureDataDir creates the data directory if it doesn't exist.
func (c *Config) EnsureDataDir() error {
	if c.Benchmark.DataDir == "" {
		return nil
	}
	return os.MkdirAll(c.Benchmark.DataDir, 0755)
}

// ReportPath returns the path a run's JSON report should be written to.
func (c *Config) ReportPath(runID string) string {
	return filepath.Join(c.Benchmark.DataDir, runID+".json")
}
