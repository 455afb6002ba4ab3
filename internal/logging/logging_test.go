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

package logging

import (
	"testing"

	"go.uber.org/zap"
)

func TestNew(t *testing.T) {
	t.Run("debug mode returns development logger", func(t *testing.T) {
		logger, err := New(true)
		if err != nil {
			t.Fatalf("New(true) error: %v", err)
		}
		if !logger.Core().Enabled(zap.DebugLevel) {
			t.Error("development logger should enable debug level")
		}
		_ = logger.Sync()
	})

	t.Run("production mode returns production logger", func(t *testing.T) {
		logger, err := New(false)
		if err != nil {
			t.Fatalf("New(false) error: %v", err)
		}
		if logger.Core().Enabled(zap.DebugLevel) {
			t.Error("production logger should not enable debug level")
		}
		_ = logger.Sync()
	})

	if Must(false) == nil {
		t.Error("Must returned nil")
	}
}
