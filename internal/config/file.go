package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// FileConfig is the optional YAML configuration file. Every field is a
// pointer so only keys actually present in the file override anything.
// Durations are strings in Go syntax (ex: "5s", "1m30s").
type FileConfig struct {
	ListenPort      *string `yaml:"listen_port"`
	ShutdownTimeout *string `yaml:"shutdown_timeout"`

	LogLevel  *string `yaml:"log_level"`
	PrettyLog *bool   `yaml:"pretty_log"`

	FetchTimeout *string `yaml:"fetch_timeout"`
	UserAgent    *string `yaml:"user_agent"`

	AllowedHosts []string `yaml:"allowed_hosts"`
	AllowedCIDRS []string `yaml:"allowed_cidrs"`
	TrustProxy   *bool    `yaml:"trust_proxy"`
}

// LoadFile reads and parses a YAML config file.
func LoadFile(path string) (*FileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var fc FileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return nil, fmt.Errorf("failed to parse config yaml: %w", err)
	}

	for key, v := range map[string]*string{
		"shutdown_timeout": fc.ShutdownTimeout,
		"fetch_timeout":    fc.FetchTimeout,
	} {
		if v == nil {
			continue
		}
		if _, err := time.ParseDuration(*v); err != nil {
			return nil, fmt.Errorf("invalid duration for %s: %w", key, err)
		}
	}

	return &fc, nil
}

func (fc *FileConfig) apply(cfg *Config) {
	if fc.ListenPort != nil {
		cfg.ListenPort = *fc.ListenPort
	}
	if fc.ShutdownTimeout != nil {
		// Validated in LoadFile
		cfg.ShutdownTimeout, _ = time.ParseDuration(*fc.ShutdownTimeout)
	}
	if fc.LogLevel != nil {
		cfg.LogLevel = *fc.LogLevel
	}
	if fc.PrettyLog != nil {
		cfg.PrettyLog = *fc.PrettyLog
	}
	if fc.FetchTimeout != nil {
		cfg.FetchTimeout, _ = time.ParseDuration(*fc.FetchTimeout)
	}
	if fc.UserAgent != nil {
		cfg.UserAgent = *fc.UserAgent
	}
	if len(fc.AllowedHosts) > 0 {
		cfg.AllowedHosts = fc.AllowedHosts
	}
	if len(fc.AllowedCIDRS) > 0 {
		cfg.AllowedCIDRS = fc.AllowedCIDRS
	}
	if fc.TrustProxy != nil {
		cfg.TrustProxy = *fc.TrustProxy
	}
}
