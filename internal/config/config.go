// Package config loads process-wide settings. Priority: env vars >
// settings file > defaults. The settings file may be JSON or YAML and is
// validated against an embedded JSON Schema before use, so a typo fails
// loudly instead of silently falling back to a default.
package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v6"
	"gopkg.in/yaml.v3"
)

// Config holds all flowlens configuration.
type Config struct {
	Syntax    string `json:"syntax" yaml:"syntax"`
	RepoRoot  string `json:"repo_root" yaml:"repo_root"`
	OutDir    string `json:"out_dir" yaml:"out_dir"`
	PoolSize  int    `json:"pool_size" yaml:"pool_size"`
	LogLevel  string `json:"log_level" yaml:"log_level"`
	HistoryDB string `json:"history_db" yaml:"history_db"`
}

// settingsSchemaJSON constrains the settings file. Embedded as a constant to
// avoid filesystem dependencies.
const settingsSchemaJSON = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "$id": "https://flowlens.dev/schemas/settings.json",
  "type": "object",
  "properties": {
    "syntax": {
      "type": "string",
      "enum": ["mermaid", "plantuml", "dot"]
    },
    "repo_root": { "type": "string" },
    "out_dir": { "type": "string" },
    "pool_size": {
      "type": "integer",
      "minimum": 1
    },
    "log_level": {
      "type": "string",
      "enum": ["debug", "info", "warn", "error"]
    },
    "history_db": { "type": "string" }
  },
  "additionalProperties": false
}`

func Default() Config {
	return Config{
		Syntax:    "mermaid",
		OutDir:    "flowlens-out",
		PoolSize:  4,
		LogLevel:  "info",
		HistoryDB: filepath.Join(Dir(), "history.db"),
	}
}

// Dir is the flowlens home directory, ~/.flowlens unless overridden by
// FLOWLENS_CONFIG_DIR.
func Dir() string {
	if v := os.Getenv("FLOWLENS_CONFIG_DIR"); v != "" {
		return v
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".flowlens"
	}
	return filepath.Join(home, ".flowlens")
}

// Load builds the effective configuration: defaults, then the first settings
// file found under dir (settings.json or settings.yaml), then FLOWLENS_* env
// overrides. A missing settings file is fine; an invalid one is an error.
func Load(dir string) (Config, error) {
	cfg := Default()
	if dir == "" {
		dir = Dir()
	}

	for _, name := range []string{"settings.json", "settings.yaml", "settings.yml"} {
		path := filepath.Join(dir, name)
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if err := applySettings(&cfg, path, data); err != nil {
			return cfg, err
		}
		break
	}

	applyEnv(&cfg)
	return cfg, nil
}

// applySettings validates the settings document against the embedded schema
// and merges it over cfg.
func applySettings(cfg *Config, path string, data []byte) error {
	jsonData := data
	if strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml") {
		var v any
		if err := yaml.Unmarshal(data, &v); err != nil {
			return fmt.Errorf("config: parse %s: %w", path, err)
		}
		converted, err := json.Marshal(v)
		if err != nil {
			return fmt.Errorf("config: convert %s: %w", path, err)
		}
		jsonData = converted
	}

	sch, err := compileSettingsSchema()
	if err != nil {
		return err
	}
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(jsonData))
	if err != nil {
		return fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := sch.Validate(doc); err != nil {
		return fmt.Errorf("config: invalid settings in %s: %w", path, err)
	}

	if err := json.Unmarshal(jsonData, cfg); err != nil {
		return fmt.Errorf("config: apply %s: %w", path, err)
	}
	return nil
}

func compileSettingsSchema() (*jsonschema.Schema, error) {
	c := jsonschema.NewCompiler()
	doc, err := jsonschema.UnmarshalJSON(strings.NewReader(settingsSchemaJSON))
	if err != nil {
		return nil, fmt.Errorf("config: unmarshal settings schema: %w", err)
	}
	if err := c.AddResource("https://flowlens.dev/schemas/settings.json", doc); err != nil {
		return nil, fmt.Errorf("config: add settings schema resource: %w", err)
	}
	sch, err := c.Compile("https://flowlens.dev/schemas/settings.json")
	if err != nil {
		return nil, fmt.Errorf("config: compile settings schema: %w", err)
	}
	return sch, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("FLOWLENS_SYNTAX"); v != "" {
		cfg.Syntax = v
	}
	if v := os.Getenv("FLOWLENS_REPO_ROOT"); v != "" {
		cfg.RepoRoot = v
	}
	if v := os.Getenv("FLOWLENS_OUT_DIR"); v != "" {
		cfg.OutDir = v
	}
	if v := os.Getenv("FLOWLENS_POOL_SIZE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.PoolSize = n
		}
	}
	if v := os.Getenv("FLOWLENS_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("FLOWLENS_HISTORY_DB"); v != "" {
		cfg.HistoryDB = v
	}
}
