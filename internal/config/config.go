package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/vango-dev/gallery/internal/errors"
)

const (
	// JSONFileName is the default JSON configuration file.
	JSONFileName = "gallery.json"

	// TOMLFileName is the default TOML configuration file.
	TOMLFileName = "gallery.toml"

	// DefaultPort is the default HTTP port.
	DefaultPort = 8080

	// DefaultHost is the default bind host.
	DefaultHost = "localhost"
)

// Provider kinds.
const (
	ProviderSeed  = "seed"
	ProviderREST  = "rest"
	ProviderSQL   = "sql"
	ProviderMongo = "mongo"
	ProviderS3    = "s3"
)

// Cache stores.
const (
	StoreMemory = "memory"
	StoreRedis  = "redis"
)

// Log formats.
const (
	LogFormatText = "text"
	LogFormatJSON = "json"
)

// Duration is a time.Duration that reads and writes as "30s" style strings.
type Duration struct {
	time.Duration
}

// D wraps a time.Duration.
func D(d time.Duration) Duration { return Duration{d} }

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// Config represents the complete gallery configuration.
type Config struct {
	// Server contains HTTP listener settings.
	Server ServerConfig `json:"server" toml:"server"`

	// Provider selects and configures the catalog metadata provider.
	Provider ProviderConfig `json:"provider" toml:"provider"`

	// Cache configures the query cache in front of the provider.
	Cache CacheConfig `json:"cache" toml:"cache"`

	// Render contains page rendering settings.
	Render RenderConfig `json:"render" toml:"render"`

	// Log contains logger settings.
	Log LogConfig `json:"log" toml:"log"`

	// Realtime configures change-feed cache invalidation.
	Realtime RealtimeConfig `json:"realtime" toml:"realtime"`

	configPath string
}

// ServerConfig contains HTTP listener settings.
type ServerConfig struct {
	Host string `json:"host,omitempty" toml:"host,omitempty"`
	Port int    `json:"port,omitempty" toml:"port,omitempty"`

	ReadTimeout     Duration `json:"readTimeout,omitempty" toml:"readTimeout,omitempty"`
	WriteTimeout    Duration `json:"writeTimeout,omitempty" toml:"writeTimeout,omitempty"`
	ShutdownTimeout Duration `json:"shutdownTimeout,omitempty" toml:"shutdownTimeout,omitempty"`

	// InvalidateToken guards POST /api/cache/invalidate. Empty disables
	// the endpoint.
	InvalidateToken string `json:"invalidateToken,omitempty" toml:"invalidateToken,omitempty"`
}

// ProviderConfig configures the catalog metadata provider.
type ProviderConfig struct {
	// Kind is one of seed, rest, sql, mongo or s3.
	Kind string `json:"kind,omitempty" toml:"kind,omitempty"`

	// SeedFile overrides the embedded seed catalog (seed kind).
	SeedFile string `json:"seedFile,omitempty" toml:"seedFile,omitempty"`

	// URL is the REST base URL (rest kind).
	URL    string `json:"url,omitempty" toml:"url,omitempty"`
	APIKey string `json:"apiKey,omitempty" toml:"apiKey,omitempty"`

	// DSN is the sqlite data source (sql kind).
	DSN string `json:"dsn,omitempty" toml:"dsn,omitempty"`

	MongoURI      string `json:"mongoUri,omitempty" toml:"mongoUri,omitempty"`
	MongoDatabase string `json:"mongoDatabase,omitempty" toml:"mongoDatabase,omitempty"`

	Bucket   string `json:"bucket,omitempty" toml:"bucket,omitempty"`
	Key      string `json:"key,omitempty" toml:"key,omitempty"`
	Region   string `json:"region,omitempty" toml:"region,omitempty"`
	Endpoint string `json:"endpoint,omitempty" toml:"endpoint,omitempty"`

	// Timeout bounds a single provider call.
	Timeout Duration `json:"timeout,omitempty" toml:"timeout,omitempty"`

	// Sanitize filters documentation HTML before it is rendered.
	Sanitize bool `json:"sanitize" toml:"sanitize"`
}

// CacheConfig configures the query cache.
type CacheConfig struct {
	Store           string   `json:"store,omitempty" toml:"store,omitempty"`
	TTL             Duration `json:"ttl,omitempty" toml:"ttl,omitempty"`
	CleanupInterval Duration `json:"cleanupInterval,omitempty" toml:"cleanupInterval,omitempty"`

	RedisAddr     string `json:"redisAddr,omitempty" toml:"redisAddr,omitempty"`
	RedisPassword string `json:"redisPassword,omitempty" toml:"redisPassword,omitempty"`
	RedisDB       int    `json:"redisDb,omitempty" toml:"redisDb,omitempty"`
	KeyPrefix     string `json:"keyPrefix,omitempty" toml:"keyPrefix,omitempty"`
}

// RenderConfig contains page rendering settings.
type RenderConfig struct {
	// Streaming flushes the loading skeleton when data is slow.
	Streaming bool `json:"streaming,omitempty" toml:"streaming,omitempty"`

	// LoadingGrace is how long to wait for data before flushing the
	// skeleton in streaming mode.
	LoadingGrace Duration `json:"loadingGrace,omitempty" toml:"loadingGrace,omitempty"`

	Pretty bool `json:"pretty,omitempty" toml:"pretty,omitempty"`
}

// LogConfig contains logger settings.
type LogConfig struct {
	// Level is debug, info, warn or error.
	Level string `json:"level,omitempty" toml:"level,omitempty"`

	// Format is text or json.
	Format string `json:"format,omitempty" toml:"format,omitempty"`
}

// RealtimeConfig configures change-feed cache invalidation.
type RealtimeConfig struct {
	Enabled    bool     `json:"enabled,omitempty" toml:"enabled,omitempty"`
	URL        string   `json:"url,omitempty" toml:"url,omitempty"`
	Backoff    Duration `json:"backoff,omitempty" toml:"backoff,omitempty"`
	MaxBackoff Duration `json:"maxBackoff,omitempty" toml:"maxBackoff,omitempty"`
}

// New creates a new Config with default values.
func New() *Config {
	return &Config{
		Server: ServerConfig{
			Host:            DefaultHost,
			Port:            DefaultPort,
			ReadTimeout:     D(10 * time.Second),
			WriteTimeout:    D(30 * time.Second),
			ShutdownTimeout: D(10 * time.Second),
		},
		Provider: ProviderConfig{
			Kind:          ProviderSeed,
			MongoDatabase: "gallery",
			Key:           "catalog.json",
			Timeout:       D(5 * time.Second),
			Sanitize:      true,
		},
		Cache: CacheConfig{
			Store:           StoreMemory,
			TTL:             D(5 * time.Minute),
			CleanupInterval: D(10 * time.Minute),
			RedisAddr:       "localhost:6379",
			KeyPrefix:       "gallery:",
		},
		Render: RenderConfig{
			LoadingGrace: D(50 * time.Millisecond),
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
		Realtime: RealtimeConfig{
			Backoff:    D(time.Second),
			MaxBackoff: D(30 * time.Second),
		},
	}
}

// Load reads configuration from path. An empty path looks for
// gallery.json, then gallery.toml, in the working directory and falls
// back to defaults when neither exists. Environment overrides are applied
// last.
func Load(path string) (*Config, error) {
	if path == "" {
		for _, name := range []string{JSONFileName, TOMLFileName} {
			if _, err := os.Stat(name); err == nil {
				path = name
				break
			}
		}
	}

	cfg := New()
	if path != "" {
		loaded, err := LoadFile(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFile reads configuration from the specified file path, choosing the
// decoder by extension.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.New("E140").
				WithDetail("No configuration file at " + path).
				WithSuggestion("Create " + JSONFileName + " or drop the --config flag to use defaults")
		}
		return nil, errors.New("E120").Wrap(err)
	}

	cfg := New()
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if _, err := toml.Decode(string(data), cfg); err != nil {
			return nil, errors.New("E120").
				WithDetail("Failed to parse " + filepath.Base(path) + ": " + err.Error()).
				WithSuggestion("Check that the file is valid TOML")
		}
	default:
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, errors.New("E120").
				WithDetail("Failed to parse " + filepath.Base(path) + ": " + err.Error()).
				WithSuggestion("Check that the file is valid JSON")
		}
	}

	cfg.configPath = path
	cfg.applyDefaults()
	return cfg, nil
}

// Path returns the path where the config was loaded from.
func (c *Config) Path() string {
	return c.configPath
}

// applyDefaults fills in zero values left by a partial file.
func (c *Config) applyDefaults() {
	d := New()
	if c.Server.Host == "" {
		c.Server.Host = d.Server.Host
	}
	if c.Server.Port == 0 {
		c.Server.Port = d.Server.Port
	}
	if c.Provider.Kind == "" {
		c.Provider.Kind = d.Provider.Kind
	}
	if c.Cache.Store == "" {
		c.Cache.Store = d.Cache.Store
	}
	if c.Cache.TTL.Duration == 0 {
		c.Cache.TTL = d.Cache.TTL
	}
	if c.Render.LoadingGrace.Duration == 0 {
		c.Render.LoadingGrace = d.Render.LoadingGrace
	}
	if c.Log.Level == "" {
		c.Log.Level = d.Log.Level
	}
	if c.Log.Format == "" {
		c.Log.Format = d.Log.Format
	}
}

// LookupFunc matches os.LookupEnv.
type LookupFunc func(key string) (string, bool)

// ApplyEnv overrides fields from GALLERY_* variables.
func (c *Config) ApplyEnv(lookup LookupFunc) error {
	str := map[string]*string{
		"GALLERY_SERVER_HOST":             &c.Server.Host,
		"GALLERY_SERVER_INVALIDATE_TOKEN": &c.Server.InvalidateToken,
		"GALLERY_PROVIDER_KIND":           &c.Provider.Kind,
		"GALLERY_PROVIDER_SEED_FILE":      &c.Provider.SeedFile,
		"GALLERY_PROVIDER_URL":            &c.Provider.URL,
		"GALLERY_PROVIDER_API_KEY":        &c.Provider.APIKey,
		"GALLERY_PROVIDER_DSN":            &c.Provider.DSN,
		"GALLERY_PROVIDER_MONGO_URI":      &c.Provider.MongoURI,
		"GALLERY_PROVIDER_BUCKET":         &c.Provider.Bucket,
		"GALLERY_PROVIDER_KEY":            &c.Provider.Key,
		"GALLERY_PROVIDER_REGION":         &c.Provider.Region,
		"GALLERY_PROVIDER_ENDPOINT":       &c.Provider.Endpoint,
		"GALLERY_CACHE_STORE":             &c.Cache.Store,
		"GALLERY_CACHE_REDIS_ADDR":        &c.Cache.RedisAddr,
		"GALLERY_CACHE_REDIS_PASSWORD":    &c.Cache.RedisPassword,
		"GALLERY_LOG_LEVEL":               &c.Log.Level,
		"GALLERY_LOG_FORMAT":              &c.Log.Format,
		"GALLERY_REALTIME_URL":            &c.Realtime.URL,
	}
	for key, dst := range str {
		if v, ok := lookup(key); ok {
			*dst = v
		}
	}

	ints := map[string]*int{
		"GALLERY_SERVER_PORT":    &c.Server.Port,
		"GALLERY_CACHE_REDIS_DB": &c.Cache.RedisDB,
	}
	for key, dst := range ints {
		v, ok := lookup(key)
		if !ok {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return errors.New("E121").WithDetailf("%s must be an integer, got %q", key, v)
		}
		*dst = n
	}

	bools := map[string]*bool{
		"GALLERY_PROVIDER_SANITIZE": &c.Provider.Sanitize,
		"GALLERY_RENDER_STREAMING":  &c.Render.Streaming,
		"GALLERY_REALTIME_ENABLED":  &c.Realtime.Enabled,
	}
	for key, dst := range bools {
		v, ok := lookup(key)
		if !ok {
			continue
		}
		b, err := strconv.ParseBool(v)
		if err != nil {
			return errors.New("E121").WithDetailf("%s must be a boolean, got %q", key, v)
		}
		*dst = b
	}

	durations := map[string]*Duration{
		"GALLERY_CACHE_TTL":            &c.Cache.TTL,
		"GALLERY_RENDER_LOADING_GRACE": &c.Render.LoadingGrace,
	}
	for key, dst := range durations {
		v, ok := lookup(key)
		if !ok {
			continue
		}
		if err := dst.UnmarshalText([]byte(v)); err != nil {
			return errors.New("E121").WithDetailf("%s must be a duration, got %q", key, v)
		}
	}
	return nil
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return errors.New("E121").
			WithDetail("server.port must be between 0 and 65535")
	}

	switch c.Provider.Kind {
	case ProviderSeed:
	case ProviderREST:
		if c.Provider.URL == "" {
			return errors.New("E121").WithDetail("provider.url is required for the rest provider")
		}
	case ProviderSQL:
		if c.Provider.DSN == "" {
			return errors.New("E121").WithDetail("provider.dsn is required for the sql provider")
		}
	case ProviderMongo:
		if c.Provider.MongoURI == "" {
			return errors.New("E121").WithDetail("provider.mongoUri is required for the mongo provider")
		}
	case ProviderS3:
		if c.Provider.Bucket == "" || c.Provider.Key == "" {
			return errors.New("E121").WithDetail("provider.bucket and provider.key are required for the s3 provider")
		}
	default:
		return errors.New("E122").WithDetailf("provider.kind %q is not supported", c.Provider.Kind)
	}

	switch c.Cache.Store {
	case StoreMemory, StoreRedis:
	default:
		return errors.New("E123").WithDetailf("cache.store %q is not supported", c.Cache.Store)
	}

	if c.Cache.TTL.Duration < 0 {
		return errors.New("E121").WithDetail("cache.ttl must not be negative")
	}

	switch c.Log.Format {
	case LogFormatText, LogFormatJSON:
	default:
		return errors.New("E121").WithDetailf("log.format %q must be text or json", c.Log.Format)
	}

	if c.Realtime.Enabled && c.Realtime.URL == "" {
		return errors.New("E121").WithDetail("realtime.url is required when realtime is enabled")
	}
	return nil
}

// Address returns the host:port the server listens on.
func (c *Config) Address() string {
	return c.Server.Host + ":" + strconv.Itoa(c.Server.Port)
}
