package config

import (
	"fmt"
	"net"
	"slices"
	"strconv"
	"strings"
)

// Validate checks the loaded configuration. Load calls it automatically.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1..65535 (got %d)", c.Server.Port)
	}
	if err := c.Morpheus.validate(); err != nil {
		return fmt.Errorf("morpheus: %w", err)
	}
	if err := c.Log.validate(); err != nil {
		return fmt.Errorf("log: %w", err)
	}
	if c.Batch.Concurrency < 1 {
		return fmt.Errorf("batch.concurrency must be >= 1 (got %d)", c.Batch.Concurrency)
	}
	if c.Batch.MaxWords < 1 {
		return fmt.Errorf("batch.max_words must be >= 1 (got %d)", c.Batch.MaxWords)
	}
	return nil
}

func (m *MorpheusConfig) validate() error {
	if err := ValidateEndpoint(m.Endpoint); err != nil {
		return err
	}
	if m.Output != "full" && m.Output != "compact" {
		return fmt.Errorf("output must be full or compact (got %q)", m.Output)
	}
	if m.Timeout <= 0 {
		return fmt.Errorf("timeout must be > 0 (got %s)", m.Timeout)
	}
	if m.RetryAttempts < 0 {
		return fmt.Errorf("retry_attempts must be >= 0 (got %d)", m.RetryAttempts)
	}
	if m.RetryDelay < 0 {
		return fmt.Errorf("retry_delay must be >= 0 (got %s)", m.RetryDelay)
	}
	return nil
}

func (l *LogConfig) validate() error {
	if !slices.Contains([]string{"json", "text"}, strings.ToLower(l.Format)) {
		return fmt.Errorf("format must be json or text (got %q)", l.Format)
	}
	if !slices.Contains([]string{"debug", "info", "warn", "error"}, strings.ToLower(strings.TrimSpace(l.Level))) {
		return fmt.Errorf("level must be debug, info, warn or error (got %q)", l.Level)
	}
	return nil
}

// ValidateEndpoint checks a "host:port" endpoint with a numeric port.
func ValidateEndpoint(endpoint string) error {
	host, port, err := net.SplitHostPort(endpoint)
	if err != nil {
		return fmt.Errorf("endpoint %q must be host:port: %w", endpoint, err)
	}
	if host == "" {
		return fmt.Errorf("endpoint %q has no host", endpoint)
	}
	n, err := strconv.Atoi(port)
	if err != nil || n < 1 || n > 65535 {
		return fmt.Errorf("endpoint %q: port %q is not numeric", endpoint, port)
	}
	return nil
}
