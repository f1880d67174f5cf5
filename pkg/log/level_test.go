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

import "testing"

func TestLevelNames(t *testing.T) {
	testCases := []struct {
		level Level
		name  string
	}{
		{LevelTrace, "TRACE"},
		{LevelDebug, "DEBUG"},
		{LevelInfo, "INFO"},
		{LevelNotice, "NOTICE"},
		{LevelWarning, "WARNING"},
		{LevelError, "ERROR"},
		{LevelCritical, "CRITICAL"},
		{LevelAlert, "ALERT"},
		{LevelEmergency, "EMERGENCY"},

		// Anything unnamed falls back to TRACE.
		{Level(-1), "TRACE"},
		{Level(1), "TRACE"},
		{Level(199), "TRACE"},
		{Level(999), "TRACE"},
		{Level(250001), "TRACE"},
	}
	for _, tc := range testCases {
		if got := tc.level.String(); got != tc.name {
			t.Errorf("Level(%d).String() = %q, expected %q", int(tc.level), got, tc.name)
		}
	}
}

func TestProfileNameTablesAgree(t *testing.T) {
	for w := -50; w <= 1000; w++ {
		hosted, packed := hostedName(Level(w)), packedName(Level(w))
		if hosted != packed {
			t.Errorf("weight %d: hosted name %q, constrained name %q", w, hosted, packed)
		}
	}
	for _, w := range []int{-1 << 31, 1<<31 - 1, 250001} {
		if hostedName(Level(w)) != "TRACE" || packedName(Level(w)) != "TRACE" {
			t.Errorf("weight %d: expected TRACE from both tables", w)
		}
	}
}

func TestLevelsAscending(t *testing.T) {
	levels := Levels()
	if len(levels) != 9 {
		t.Fatalf("expected 9 levels, got %d", len(levels))
	}
	weights := []int{0, 100, 200, 250, 300, 400, 500, 550, 600}
	for i, level := range levels {
		if int(level) != weights[i] {
			t.Errorf("level %d: expected weight %d, got %d", i, weights[i], int(level))
		}
		if i > 0 && levels[i-1] >= level {
			t.Errorf("levels not strictly increasing at %s", level)
		}
	}

	// Callers get their own copy.
	levels[0] = LevelEmergency
	if Levels()[0] != LevelTrace {
		t.Error("expected Levels to return a fresh slice")
	}
}
