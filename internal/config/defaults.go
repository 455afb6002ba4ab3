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

package config

// DefaultParallelThreshold is the band length above which evaluations are
// split across the worker pool.
const DefaultParallelThreshold = 1 << 14

// ApplyDefaults sets default values for any zero values in cfg.
func ApplyDefaults(cfg *Config) {
	if cfg.Server.Host == "" {
		cfg.Server.Host = "localhost"
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Eval.ParallelThreshold == 0 {
		cfg.Eval.ParallelThreshold = DefaultParallelThreshold
	}
	if cfg.Eval.Catalog == "" {
		cfg.Eval.Catalog = "vgi"
	}
	if cfg.Eval.MaxPixels == 0 {
		cfg.Eval.MaxPixels = 1 << 24
	}
}

// Default returns a Config with every default applied.
func Default() *Config {
	var cfg Config
	ApplyDefaults(&cfg)
	return &cfg
}
