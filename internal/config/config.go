package config

import (
	"net"
	"strconv"
	"strings"
	"time"
)

// Config is the root configuration of the morphkit server.
type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Morpheus   MorpheusConfig   `yaml:"morpheus"`
	Log        LogConfig        `yaml:"log"`
	CORS       CORSConfig       `yaml:"cors"`
	Similarity SimilarityConfig `yaml:"similarity"`
	Batch      BatchConfig      `yaml:"batch"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"60s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// Addr is the listen address.
func (c ServerConfig) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

// MorpheusConfig holds the settings of the Morpheus analysis server.
// MORPHKIT_TIMEOUT and MORPHKIT_RETRY_DELAY take seconds ("30", "0.5") or
// duration strings ("30s").
type MorpheusConfig struct {
	// Endpoint is "host:port" without scheme.
	Endpoint      string   `yaml:"endpoint"       env:"MORPHEUS_ENDPOINT"       env-default:"localhost:1315"`
	Output        string   `yaml:"output"         env:"MORPHEUS_OUTPUT"         env-default:"full"`
	Timeout       Duration `yaml:"timeout"        env:"MORPHKIT_TIMEOUT"        env-default:"30s"`
	RetryAttempts int      `yaml:"retry_attempts" env:"MORPHKIT_RETRY_ATTEMPTS" env-default:"3"`
	RetryDelay    Duration `yaml:"retry_delay"    env:"MORPHKIT_RETRY_DELAY"    env-default:"1s"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// CORSConfig holds CORS settings. List values are comma separated.
type CORSConfig struct {
	AllowedOrigins string `yaml:"allowed_origins" env:"CORS_ALLOWED_ORIGINS" env-default:"*"`
	AllowedMethods string `yaml:"allowed_methods" env:"CORS_ALLOWED_METHODS" env-default:"GET,POST,OPTIONS"`
	AllowedHeaders string `yaml:"allowed_headers" env:"CORS_ALLOWED_HEADERS" env-default:"Content-Type,X-Request-ID"`
	MaxAge         int    `yaml:"max_age"         env:"CORS_MAX_AGE"         env-default:"86400"`
}

// Origins splits AllowedOrigins.
func (c CORSConfig) Origins() []string { return splitList(c.AllowedOrigins) }

// Methods splits AllowedMethods.
func (c CORSConfig) Methods() []string { return splitList(c.AllowedMethods) }

// Headers splits AllowedHeaders.
func (c CORSConfig) Headers() []string { return splitList(c.AllowedHeaders) }

// SimilarityConfig points at an optional replacement for the built-in
// weight and matrix tables.
type SimilarityConfig struct {
	Path string `yaml:"path" env:"SIMILARITY_PATH"`
}

// BatchConfig bounds batch analysis requests.
type BatchConfig struct {
	Concurrency int `yaml:"concurrency" env:"BATCH_CONCURRENCY" env-default:"4"`
	MaxWords    int `yaml:"max_words"   env:"BATCH_MAX_WORDS"   env-default:"100"`
}

func splitList(s string) []string {
	var out []string
	for part := range strings.SplitSeq(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
