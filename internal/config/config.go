package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"node-finder/internal/domain/entity"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
type Config struct {
	App       AppConfig       `mapstructure:"app"`
	Server    ServerConfig    `mapstructure:"server"`
	Logger    LoggerConfig    `mapstructure:"logger"`
	Shodan    ShodanConfig    `mapstructure:"shodan"`
	Validator ValidatorConfig `mapstructure:"validator"`
	Archive   ArchiveConfig   `mapstructure:"archive"`
	Discovery DiscoveryConfig `mapstructure:"discovery"`
	Cache     CacheConfig     `mapstructure:"cache"`
	Chainlist ChainlistConfig `mapstructure:"chainlist"`
	Settings  SettingsConfig  `mapstructure:"settings"`
	Chains    []entity.Chain  `mapstructure:"chains"`
}

// AppConfig holds application-level configuration.
type AppConfig struct {
	Name    string `mapstructure:"name"`
	Version string `mapstructure:"version"`
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Port string `mapstructure:"port"`
	// RequestsPerSecond throttles the API; zero disables throttling.
	RequestsPerSecond float64 `mapstructure:"requests_per_second"`
	Burst             int     `mapstructure:"burst"`
}

// LoggerConfig holds logging configuration.
type LoggerConfig struct {
	Level    string `mapstructure:"level"`
	Encoding string `mapstructure:"encoding"`
}

// ShodanConfig holds settings for the host-search service.
type ShodanConfig struct {
	BaseURL     string        `mapstructure:"base_url"`
	APIKey      string        `mapstructure:"api_key"`
	Timeout     time.Duration `mapstructure:"timeout"`
	MinInterval time.Duration `mapstructure:"min_interval"`
	Ports       []int         `mapstructure:"ports"`
}

// ValidatorConfig holds settings for the protocol validators.
type ValidatorConfig struct {
	CallTimeout     time.Duration `mapstructure:"call_timeout"`
	SequenceTimeout time.Duration `mapstructure:"sequence_timeout"`
	WSMaxConcurrent int64         `mapstructure:"ws_max_concurrent"`
}

// ArchiveConfig holds settings for the archive prober.
type ArchiveConfig struct {
	Timeout     time.Duration `mapstructure:"timeout"`
	CallTimeout time.Duration `mapstructure:"call_timeout"`
	Heights     []uint64      `mapstructure:"heights"`
}

// DiscoveryConfig holds orchestration settings.
type DiscoveryConfig struct {
	OverprovisionFactor int `mapstructure:"overprovision_factor"`
	BulkCount           int `mapstructure:"bulk_count"`
	HTTPPort            int `mapstructure:"http_port"`
	WSPort              int `mapstructure:"ws_port"`
}

// CacheConfig holds settings for the caching layer.
type CacheConfig struct {
	DefaultExpiration time.Duration `mapstructure:"default_expiration"`
	CleanupInterval   time.Duration `mapstructure:"cleanup_interval"`
}

// ChainlistConfig holds configuration for the public chain metadata source.
type ChainlistConfig struct {
	URL      string        `mapstructure:"url"`
	Enabled  bool          `mapstructure:"enabled"`
	Timeout  time.Duration `mapstructure:"timeout"`
	CacheTTL time.Duration `mapstructure:"cache_ttl"`
}

// SettingsConfig holds configuration for the per-user settings store.
type SettingsConfig struct {
	// Path of the YAML snapshot. Empty keeps settings in memory only.
	Path string `mapstructure:"path"`
}

// Load reads configuration from .env, an optional config file and environment variables.
func Load(configPath string) (*Config, error) {
	// A missing .env is the normal case outside local development.
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(configPath)
	v.AddConfigPath(".")

	if err := v.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		fmt.Printf("Warning: Config file not found in %s or '.', using defaults/env vars\n", configPath)
	}

	v.SetEnvPrefix("NODE_FINDER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	if err := v.BindEnv("shodan.api_key", "NODE_FINDER_SHODAN_API_KEY", "SHODAN_TOKEN"); err != nil {
		return nil, fmt.Errorf("failed to bind shodan api key env: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "node-finder")
	v.SetDefault("app.version", "1.0.0")
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.requests_per_second", 5)
	v.SetDefault("server.burst", 10)
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.encoding", "json")
	v.SetDefault("shodan.base_url", "https://api.shodan.io")
	v.SetDefault("shodan.timeout", "30s")
	v.SetDefault("shodan.min_interval", "1s")
	v.SetDefault("shodan.ports", []int{8545, 8546})
	v.SetDefault("validator.call_timeout", "5s")
	v.SetDefault("validator.sequence_timeout", "15s")
	v.SetDefault("validator.ws_max_concurrent", 25)
	v.SetDefault("archive.timeout", "10s")
	v.SetDefault("archive.call_timeout", "15s")
	v.SetDefault("archive.heights", []uint64{1, 100, 1000000})
	v.SetDefault("discovery.overprovision_factor", 3)
	v.SetDefault("discovery.bulk_count", 50)
	v.SetDefault("discovery.http_port", 8545)
	v.SetDefault("discovery.ws_port", 8546)
	v.SetDefault("cache.default_expiration", "30m")
	v.SetDefault("cache.cleanup_interval", "1h")
	v.SetDefault("chainlist.url", "https://chainid.network/chains.json")
	v.SetDefault("chainlist.enabled", true)
	v.SetDefault("chainlist.timeout", "15s")
	v.SetDefault("chainlist.cache_ttl", "6h")
	v.SetDefault("settings.path", "")
}

func (c ShodanConfig) GetTimeout() time.Duration {
	return c.Timeout
}

func (c ShodanConfig) GetMinInterval() time.Duration {
	return c.MinInterval
}

func (c ValidatorConfig) GetCallTimeout() time.Duration {
	return c.CallTimeout
}

func (c ValidatorConfig) GetSequenceTimeout() time.Duration {
	return c.SequenceTimeout
}

func (c ArchiveConfig) GetTimeout() time.Duration {
	return c.Timeout
}

func (c CacheConfig) GetDefaultExpiration() time.Duration {
	return c.DefaultExpiration
}

func (c CacheConfig) GetCleanupInterval() time.Duration {
	return c.CleanupInterval
}

func (c ChainlistConfig) GetCacheTTL() time.Duration {
	return c.CacheTTL
}

// PortFor returns the canonical discovery port for a transport.
func (c DiscoveryConfig) PortFor(t entity.Transport) int {
	if t == entity.TransportWS {
		return c.WSPort
	}
	return c.HTTPPort
}
