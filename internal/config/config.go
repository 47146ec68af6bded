package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	ListenPort      string        // ex: ":8080"
	ShutdownTimeout time.Duration // ex: 5s

	LogLevel  string // "debug" | "info" | "warn" | "error"
	PrettyLog bool   // true => zap dev (color), false => zap prod (JSON)

	FetchTimeout time.Duration // shared deadline for the meta POST+GET attempts (default: 5s)
	UserAgent    string        // User-Agent sent to queried hosts

	AllowedHosts []string // optional, restrict access to specific Host headers
	AllowedCIDRS []string // optional, restrict ops endpoints to specific IPs/CIDRs
	TrustProxy   bool     // true => trust X-Forwarded-For headers (e.g. cloudflared)
}

// Load builds the configuration: hardcoded defaults, overlaid by the
// optional YAML file (FEDIPEEK_CONFIG_FILE), overlaid by env vars.
func Load() *Config {
	cfg := &Config{
		ListenPort:      ":8080",
		ShutdownTimeout: 5 * time.Second,
		LogLevel:        "info",
		PrettyLog:       true,
		FetchTimeout:    5 * time.Second,
		UserAgent:       "fedipeek (+https://github.com/fedipeek/fedipeek)",
		TrustProxy:      true,
	}

	if path := os.Getenv("FEDIPEEK_CONFIG_FILE"); path != "" {
		fc, err := LoadFile(path)
		if err != nil {
			panic("❌ FATAL: failed to load config file " + path + ": " + err.Error())
		}
		fc.apply(cfg)
	}

	applyEnv(cfg)

	// Log config only in debug mode
	if cfg.LogLevel == "debug" {
		log.Printf("[DEBUG] cfg: %+v\n", *cfg)
	}

	return cfg
}

// applyEnv overlays env vars on top of the current values, so an unset
// variable keeps whatever the file (or default) provided.
func applyEnv(cfg *Config) {
	cfg.ListenPort = getenv("FEDIPEEK_LISTEN_PORT", cfg.ListenPort)
	cfg.ShutdownTimeout = mustDuration("FEDIPEEK_SHUTDOWN_TIMEOUT", cfg.ShutdownTimeout)

	cfg.LogLevel = getenv("FEDIPEEK_LOG_LEVEL", cfg.LogLevel)
	cfg.PrettyLog = mustBool("FEDIPEEK_PRETTY_LOG", cfg.PrettyLog)

	cfg.FetchTimeout = mustDuration("FEDIPEEK_FETCH_TIMEOUT", cfg.FetchTimeout)
	cfg.UserAgent = getenv("FEDIPEEK_USER_AGENT", cfg.UserAgent)

	if v := os.Getenv("FEDIPEEK_ALLOWED_HOSTS"); v != "" {
		cfg.AllowedHosts = splitAndTrim(v)
	}
	if v := os.Getenv("FEDIPEEK_ALLOWED_CIDRS"); v != "" {
		cfg.AllowedCIDRS = splitAndTrim(v)
	}
	cfg.TrustProxy = mustBool("FEDIPEEK_TRUST_PROXY", cfg.TrustProxy)
}

// helpers
func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func mustBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}

func mustDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

func splitAndTrim(s string) []string {
	if s == "" {
		return nil
	}
	raw := strings.Split(s, ",")
	parts := make([]string, 0, len(raw))
	for _, part := range raw {
		trimmed := strings.TrimSpace(part)
		// Remove surrounding quotes if present
		trimmed = strings.Trim(trimmed, `"'`)
		if trimmed != "" {
			parts = append(parts, trimmed)
		}
	}
	return parts
}
