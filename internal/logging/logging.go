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

// Package logging builds the zap loggers used by the vgi command and server.
package logging

import "go.uber.org/zap"

// New returns a zap logger. When debug is true it uses the development
// config (console output, debug level); otherwise the production config
// (JSON, info level).
func New(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

// Must is New that falls back to a no-op logger on error.
func Must(debug bool) *zap.Logger {
	logger, err := New(debug)
	if err != nil {
		return zap.NewNop()
	}
	return logger
}
