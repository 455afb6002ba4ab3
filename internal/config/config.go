// Copyright 2025 go-vgi Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package config loads the YAML configuration shared by the vgi CLI and its
// HTTP server.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the application.
type Config struct {
	Debug  bool         `yaml:"debug"`
	Server ServerConfig `yaml:"server"`
	Eval   EvalConfig   `yaml:"eval"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

// Addr returns host:port.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// EvalConfig controls how index evaluations are run.
type EvalConfig struct {
	// Workers sizes the shared worker pool; 0 means GOMAXPROCS.
	Workers int `yaml:"workers"`
	// ParallelThreshold is the smallest pixel count evaluated on the pool.
	// Shorter bands run on the calling goroutine.
	ParallelThreshold int `yaml:"parallel_threshold"`
	// Catalog is tried first for keys without a "catalog:" prefix.
	Catalog string `yaml:"catalog"`
	// MaxPixels caps the band length accepted by the server.
	MaxPixels int `yaml:"max_pixels"`
}

// Load reads and parses the config file at path and applies defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	ApplyDefaults(&cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Save writes cfg to path.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// Validate reports settings that cannot be used as given.
func (c *Config) Validate() error {
	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return fmt.Errorf("config: server.port %d out of range", c.Server.Port)
	}
	if c.Eval.Workers < 0 {
		return fmt.Errorf("config: eval.workers must not be negative, got %d", c.Eval.Workers)
	}
	switch c.Eval.Catalog {
	case "vgi", "indices":
	default:
		return fmt.Errorf("config: eval.catalog must be vgi or indices, got %q", c.Eval.Catalog)
	}
	return nil
}
