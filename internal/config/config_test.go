package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/vango-dev/gallery/internal/errors"
)

func TestNew(t *testing.T) {
	cfg := New()

	if cfg.Server.Port != DefaultPort {
		t.Errorf("Server.Port = %d, want %d", cfg.Server.Port, DefaultPort)
	}
	if cfg.Provider.Kind != ProviderSeed {
		t.Errorf("Provider.Kind = %q, want %q", cfg.Provider.Kind, ProviderSeed)
	}
	if !cfg.Provider.Sanitize {
		t.Error("Provider.Sanitize should default to true")
	}
	if cfg.Cache.Store != StoreMemory {
		t.Errorf("Cache.Store = %q, want %q", cfg.Cache.Store, StoreMemory)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestLoadFileJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), JSONFileName)
	data := `{
  "server": {"port": 9090, "invalidateToken": "tok"},
  "provider": {"kind": "rest", "url": "https://db.example.co", "apiKey": "anon"},
  "cache": {"ttl": "90s"},
  "render": {"streaming": true, "loadingGrace": "20ms"}
}
`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile error: %v", err)
	}
	if cfg.Server.Port != 9090 {
		t.Errorf("Server.Port = %d, want 9090", cfg.Server.Port)
	}
	if cfg.Server.Host != DefaultHost {
		t.Errorf("Server.Host = %q, want default", cfg.Server.Host)
	}
	if cfg.Provider.Kind != ProviderREST || cfg.Provider.APIKey != "anon" {
		t.Errorf("Provider = %+v", cfg.Provider)
	}
	if !cfg.Provider.Sanitize {
		t.Error("omitted sanitize should keep the default")
	}
	if cfg.Cache.TTL.Duration != 90*time.Second {
		t.Errorf("Cache.TTL = %v, want 90s", cfg.Cache.TTL)
	}
	if !cfg.Render.Streaming || cfg.Render.LoadingGrace.Duration != 20*time.Millisecond {
		t.Errorf("Render = %+v", cfg.Render)
	}
	if cfg.Path() != path {
		t.Errorf("Path() = %q, want %q", cfg.Path(), path)
	}
}

func TestLoadFileTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), TOMLFileName)
	data := `
[server]
port = 7070

[provider]
kind = "sql"
dsn = "file:catalog.db"
sanitize = false

[cache]
store = "redis"
redisAddr = "cache:6379"
`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile error: %v", err)
	}
	if cfg.Server.Port != 7070 {
		t.Errorf("Server.Port = %d, want 7070", cfg.Server.Port)
	}
	if cfg.Provider.Kind != ProviderSQL || cfg.Provider.DSN != "file:catalog.db" {
		t.Errorf("Provider = %+v", cfg.Provider)
	}
	if cfg.Provider.Sanitize {
		t.Error("sanitize = false should be honored")
	}
	if cfg.Cache.Store != StoreRedis || cfg.Cache.RedisAddr != "cache:6379" {
		t.Errorf("Cache = %+v", cfg.Cache)
	}
}

func TestLoadFileErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadFile(filepath.Join(dir, "missing.json"))
	if errors.Code(err) != "E140" {
		t.Errorf("missing file code = %q, want E140", errors.Code(err))
	}

	bad := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(bad, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}
	_, err = LoadFile(bad)
	if errors.Code(err) != "E120" {
		t.Errorf("invalid file code = %q, want E120", errors.Code(err))
	}
}

func TestApplyEnv(t *testing.T) {
	env := map[string]string{
		"GALLERY_SERVER_PORT":       "9191",
		"GALLERY_PROVIDER_KIND":     "mongo",
		"GALLERY_PROVIDER_SANITIZE": "false",
		"GALLERY_CACHE_TTL":         "1m",
		"GALLERY_LOG_FORMAT":        "json",
	}
	lookup := func(k string) (string, bool) {
		v, ok := env[k]
		return v, ok
	}

	cfg := New()
	if err := cfg.ApplyEnv(lookup); err != nil {
		t.Fatalf("ApplyEnv error: %v", err)
	}
	if cfg.Server.Port != 9191 {
		t.Errorf("Server.Port = %d, want 9191", cfg.Server.Port)
	}
	if cfg.Provider.Kind != ProviderMongo {
		t.Errorf("Provider.Kind = %q", cfg.Provider.Kind)
	}
	if cfg.Provider.Sanitize {
		t.Error("Provider.Sanitize should be false")
	}
	if cfg.Cache.TTL.Duration != time.Minute {
		t.Errorf("Cache.TTL = %v", cfg.Cache.TTL)
	}
	if cfg.Log.Format != "json" {
		t.Errorf("Log.Format = %q", cfg.Log.Format)
	}
}

func TestApplyEnvInvalid(t *testing.T) {
	tests := []struct {
		key, value string
	}{
		{"GALLERY_SERVER_PORT", "eighty"},
		{"GALLERY_RENDER_STREAMING", "maybe"},
		{"GALLERY_CACHE_TTL", "soon"},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			lookup := func(k string) (string, bool) {
				if k == tt.key {
					return tt.value, true
				}
				return "", false
			}
			err := New().ApplyEnv(lookup)
			if errors.Code(err) != "E121" {
				t.Errorf("code = %q, want E121", errors.Code(err))
			}
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		code   string
	}{
		{"bad port", func(c *Config) { c.Server.Port = 70000 }, "E121"},
		{"unknown provider", func(c *Config) { c.Provider.Kind = "ftp" }, "E122"},
		{"rest without url", func(c *Config) { c.Provider.Kind = ProviderREST }, "E121"},
		{"s3 without bucket", func(c *Config) { c.Provider.Kind = ProviderS3 }, "E121"},
		{"unknown store", func(c *Config) { c.Cache.Store = "memcached" }, "E123"},
		{"bad log format", func(c *Config) { c.Log.Format = "xml" }, "E121"},
		{"realtime without url", func(c *Config) { c.Realtime.Enabled = true }, "E121"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := New()
			tt.mutate(cfg)
			if got := errors.Code(cfg.Validate()); got != tt.code {
				t.Errorf("Validate() code = %q, want %q", got, tt.code)
			}
		})
	}
}

func TestAddress(t *testing.T) {
	cfg := New()
	cfg.Server.Host = "0.0.0.0"
	cfg.Server.Port = 3000
	if cfg.Address() != "0.0.0.0:3000" {
		t.Errorf("Address() = %q", cfg.Address())
	}
}
