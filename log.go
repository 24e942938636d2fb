// Copyright 2025 Ahmad Sameh(asmsh)
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//    http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package outcome

import (
	"log/slog"
	"sync/atomic"
)

// defLogger is used for overriding the logger used by the constructors
// below, for the purpose of testing, or for routing the diagnostics of
// this package into the program's own logging setup.
var defLogger atomic.Pointer[slog.Logger]

// SetLogger sets the logger used for reporting misused constructor calls,
// like a Failure call with a nil error.
// Passing nil restores slog's default logger.
//
// It's safe to call SetLogger concurrently with any other call in this
// package, but it's typically called once, at program setup.
func SetLogger(l *slog.Logger) {
	defLogger.Store(l)
}

func logger() *slog.Logger {
	if l := defLogger.Load(); l != nil {
		return l
	}
	return slog.Default()
}
