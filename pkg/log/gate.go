// Copyright 2018 The Kura Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package log

// Per-level gates. These are constants, so a statement guarded by one that is
// false compiles to nothing, arguments included:
//
//	if log.TraceEnabled {
//		log.Tracef("state: %v", expensiveDump())
//	}
//
// The package-level call sites consult the same constants internally, which
// drops the formatting and the write but not the evaluation of arguments at
// an unguarded call site.
const (
	TraceEnabled     = LevelTrace >= Threshold
	DebugEnabled     = LevelDebug >= Threshold
	InfoEnabled      = LevelInfo >= Threshold
	NoticeEnabled    = LevelNotice >= Threshold
	WarningEnabled   = LevelWarning >= Threshold
	ErrorEnabled     = LevelError >= Threshold
	CriticalEnabled  = LevelCritical >= Threshold
	AlertEnabled     = LevelAlert >= Threshold
	EmergencyEnabled = LevelEmergency >= Threshold
)

// Enabled reports whether statements at level l are retained by this build.
// The comparison is purely numeric, so any weight is accepted.
func Enabled(l Level) bool {
	return l >= Threshold
}
