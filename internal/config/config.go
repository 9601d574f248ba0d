// Package config holds the settings of the spirogen service, loaded from a
// YAML file.
package config

import (
	"errors"
	"fmt"
	"io"
	"net"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

var ErrInvalidConfig = errors.New("invalid configuration")

type Config struct {
	Server Server `json:"server" yaml:"server"`
	Log    Log    `json:"log" yaml:"log"`
	Cache  Cache  `json:"cache" yaml:"cache"`
}

type Server struct {
	ListenAddr      string        `json:"listen_addr" yaml:"listen_addr"`
	ReadTimeout     time.Duration `json:"read_timeout" yaml:"read_timeout"`
	WriteTimeout    time.Duration `json:"write_timeout" yaml:"write_timeout"`
	ShutdownTimeout time.Duration `json:"shutdown_timeout" yaml:"shutdown_timeout"`

	// HTTP3Addr enables an additional HTTP/3 listener. It requires TLSCert
	// and TLSKey.
	HTTP3Addr string `json:"http3_addr,omitempty" yaml:"http3_addr,omitempty"`
	TLSCert   string `json:"tls_cert,omitempty" yaml:"tls_cert,omitempty"`
	TLSKey    string `json:"tls_key,omitempty" yaml:"tls_key,omitempty"`
}

type Log struct {
	// Level is one of debug, info, warn and error.
	Level string `json:"level" yaml:"level"`
	// Encoding is json or console.
	Encoding string `json:"encoding" yaml:"encoding"`
}

type Cache struct {
	// Capacity is the total number of patterns kept in memory. Zero
	// disables caching.
	Capacity int `json:"capacity" yaml:"capacity"`
	Shards   int `json:"shards" yaml:"shards"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Server: Server{
			ListenAddr:      "0.0.0.0:8000",
			ReadTimeout:     10 * time.Second,
			WriteTimeout:    10 * time.Second,
			ShutdownTimeout: 5 * time.Second,
		},
		Log: Log{
			Level:    "info",
			Encoding: "json",
		},
		Cache: Cache{
			Capacity: 16 * 1024,
			Shards:   16,
		},
	}
}

// Load reads a YAML configuration file. Settings missing from the file keep
// their default values.
func Load(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("opening config: %w", err)
	}
	defer f.Close()
	cfg, err := Decode(f)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Decode parses and validates a YAML configuration.
func Decode(r io.Reader) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if _, _, err := net.SplitHostPort(c.Server.ListenAddr); err != nil {
		return fmt.Errorf("%w: listen_addr: %v", ErrInvalidConfig, err)
	}
	if c.Server.ReadTimeout < 0 || c.Server.WriteTimeout < 0 || c.Server.ShutdownTimeout < 0 {
		return fmt.Errorf("%w: timeouts must not be negative", ErrInvalidConfig)
	}
	if c.Server.HTTP3Addr != "" && (c.Server.TLSCert == "" || c.Server.TLSKey == "") {
		return fmt.Errorf("%w: http3_addr requires tls_cert and tls_key", ErrInvalidConfig)
	}
	switch c.Log.Level {
	case "", "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("%w: unknown log level %q", ErrInvalidConfig, c.Log.Level)
	}
	switch c.Log.Encoding {
	case "", "json", "console":
	default:
		return fmt.Errorf("%w: unknown log encoding %q", ErrInvalidConfig, c.Log.Encoding)
	}
	if c.Cache.Capacity < 0 {
		return fmt.Errorf("%w: cache capacity must not be negative", ErrInvalidConfig)
	}
	if c.Cache.Capacity > 0 && c.Cache.Shards <= 0 {
		return fmt.Errorf("%w: cache needs at least one shard", ErrInvalidConfig)
	}
	return nil
}
