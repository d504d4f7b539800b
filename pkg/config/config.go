package config

import (
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Config is the process-level configuration. The default backend lives
// here and is handed to agent factories explicitly; nothing in the core
// reads process environment at call sites.
type Config struct {
	Log       LogConfig       `koanf:"log"`
	Agent     AgentConfig     `koanf:"agent"`
	ActionLog ActionLogConfig `koanf:"actionlog"`
	Telemetry TelemetryConfig `koanf:"telemetry"`
}

type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"` // json, text
}

type AgentConfig struct {
	// DefaultBackend is used when a variant is constructed without an
	// explicit backend identifier.
	DefaultBackend string `koanf:"default_backend"`
}

type ActionLogConfig struct {
	Path      string `koanf:"path"`
	IndexPath string `koanf:"index_path"` // sqlite index, optional
}

type TelemetryConfig struct {
	Exporter     string `koanf:"exporter"` // stdout, otlp, none
	OTLPEndpoint string `koanf:"otlp_endpoint"`
	OTLPInsecure bool   `koanf:"otlp_insecure"`
}

// Load reads configuration with defaults, then an optional YAML file, then
// ERGON_-prefixed environment variables (ERGON_AGENT_DEFAULT_BACKEND ->
// agent.default_backend).
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	k.Set("log.level", "info")
	k.Set("log.format", "text")
	k.Set("agent.default_backend", "google/gemini-2.0-flash")
	k.Set("actionlog.path", "agents/AGENT_ACTIONS.md")
	k.Set("actionlog.index_path", "")
	k.Set("telemetry.exporter", "none")
	k.Set("telemetry.otlp_endpoint", "")
	k.Set("telemetry.otlp_insecure", false)

	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, err
		}
	}

	if err := k.Load(env.Provider("ERGON_", ".", func(s string) string {
		return strings.Replace(strings.ToLower(
			strings.TrimPrefix(s, "ERGON_")), "_", ".", 1)
	}), nil); err != nil {
		return nil, err
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
