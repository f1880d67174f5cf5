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

import (
	"bytes"
	"fmt"
	"path/filepath"
	"regexp"
	"runtime"
	"strings"
	"sync"
	"testing"
)

// here returns the base file name and the line following the call, for
// asserting on the location of a statement written directly below it.
func here() (string, int) {
	_, file, line, _ := runtime.Caller(1)
	return filepath.Base(file), line + 1
}

func TestFixedMessageLine(t *testing.T) {
	buffer := new(bytes.Buffer)
	logger := New(Writer(buffer), AtThreshold(LevelTrace))

	file, line := here()
	logger.Info("hello")

	expected := fmt.Sprintf("[INFO]::(%s:%d):hello\n", file, line)
	if buffer.String() != expected {
		t.Errorf("expected %q, got %q", expected, buffer.String())
	}
}

func TestFormattedMessageLine(t *testing.T) {
	buffer := new(bytes.Buffer)
	logger := New(Writer(buffer), AtThreshold(LevelTrace))

	file, line := here()
	logger.Errorf("failed: %d %s %t", 7, "twice", true)

	expected := fmt.Sprintf("[ERROR]::(%s:%d():failed: 7 twice true\n", file, line)
	if buffer.String() != expected {
		t.Errorf("expected %q, got %q", expected, buffer.String())
	}
}

func TestLevelMethods(t *testing.T) {
	buffer := new(bytes.Buffer)
	logger := New(Writer(buffer), AtThreshold(LevelTrace))

	testCases := []struct {
		name      string
		fixed     func(string)
		formatted func(string, ...interface{})
	}{
		{"TRACE", logger.Trace, logger.Tracef},
		{"DEBUG", logger.Debug, logger.Debugf},
		{"INFO", logger.Info, logger.Infof},
		{"NOTICE", logger.Notice, logger.Noticef},
		{"WARNING", logger.Warning, logger.Warningf},
		{"ERROR", logger.Error, logger.Errorf},
		{"CRITICAL", logger.Critical, logger.Criticalf},
		{"ALERT", logger.Alert, logger.Alertf},
		{"EMERGENCY", logger.Emergency, logger.Emergencyf},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			buffer.Reset()
			tc.fixed("fixed")
			regex := fmt.Sprintf(`^\[%s\]::\(.+:\d+\):fixed\n$`, tc.name)
			if match, _ := regexp.Match(regex, buffer.Bytes()); !match {
				t.Errorf("expected pattern: %q, got: %q", regex, buffer.String())
			}

			buffer.Reset()
			tc.formatted("n=%d", 3)
			regex = fmt.Sprintf(`^\[%s\]::\(.+:\d+\(\):n=3\n$`, tc.name)
			if match, _ := regexp.Match(regex, buffer.Bytes()); !match {
				t.Errorf("expected pattern: %q, got: %q", regex, buffer.String())
			}
		})
	}
}

func TestWarningThreshold(t *testing.T) {
	buffer := new(bytes.Buffer)
	logger := New(Writer(buffer), AtThreshold(LevelWarning))

	logger.Info("hello")
	if buffer.Len() != 0 {
		t.Errorf("expected no output for INFO, got %q", buffer.String())
	}

	logger.Errorf("failed: %d", 7)
	if !strings.HasSuffix(buffer.String(), "failed: 7\n") {
		t.Errorf("expected line ending in %q, got %q", "failed: 7", buffer.String())
	}
	if strings.Count(buffer.String(), "\n") != 1 {
		t.Errorf("expected exactly one line, got %q", buffer.String())
	}

	buffer.Reset()
	logger.Warning("low battery")
	out := buffer.String()
	if !strings.Contains(out, "[WARNING]") || !strings.Contains(out, "low battery") {
		t.Errorf("expected a WARNING line about the battery, got %q", out)
	}
}

func TestThresholdIsInclusive(t *testing.T) {
	buffer := new(bytes.Buffer)
	logger := New(Writer(buffer), AtThreshold(LevelInfo))

	logger.Trace("trace")
	logger.Debug("debug")
	logger.Debugf("debug %d", 1)
	if buffer.Len() != 0 {
		t.Errorf("expected TRACE and DEBUG to be filtered, got %q", buffer.String())
	}

	logger.Info("info")
	regex := `^\[INFO\]::\(.*\):info\n$`
	if match, _ := regexp.Match(regex, buffer.Bytes()); !match {
		t.Errorf("expected pattern: %q, got: %q", regex, buffer.String())
	}
}

func TestUnnamedThreshold(t *testing.T) {
	testCases := []struct {
		threshold Level
		enabled   []Level
	}{
		{Level(275), []Level{LevelWarning, LevelError, LevelCritical, LevelAlert, LevelEmergency}},
		{Level(601), nil},
		{Level(-5), Levels()},
	}
	for _, tc := range testCases {
		buffer := new(bytes.Buffer)
		logger := New(Writer(buffer), AtThreshold(tc.threshold))

		var expected []string
		for _, level := range tc.enabled {
			expected = append(expected, level.String())
		}
		for _, level := range Levels() {
			if logger.Enabled(level) != (level >= tc.threshold) {
				t.Errorf("threshold %d: Enabled(%s) = %t", int(tc.threshold), level, logger.Enabled(level))
			}
		}

		logger.Trace("x")
		logger.Debug("x")
		logger.Info("x")
		logger.Notice("x")
		logger.Warning("x")
		logger.Error("x")
		logger.Critical("x")
		logger.Alert("x")
		logger.Emergency("x")

		var got []string
		for _, line := range strings.Split(strings.TrimSuffix(buffer.String(), "\n"), "\n") {
			if line == "" {
				continue
			}
			got = append(got, line[1:strings.IndexByte(line, ']')])
		}
		if strings.Join(got, ",") != strings.Join(expected, ",") {
			t.Errorf("threshold %d: expected levels %v, got %v", int(tc.threshold), expected, got)
		}
	}
}

func TestLinesKeepCallOrder(t *testing.T) {
	buffer := new(bytes.Buffer)
	logger := New(Writer(buffer), AtThreshold(LevelTrace))

	const n = 50
	for i := 0; i < n; i++ {
		logger.Errorf("line %d", i)
	}

	lines := strings.Split(strings.TrimSuffix(buffer.String(), "\n"), "\n")
	if len(lines) != n {
		t.Fatalf("expected %d lines, got %d", n, len(lines))
	}
	for i, line := range lines {
		if !strings.HasSuffix(line, fmt.Sprintf(":line %d", i)) {
			t.Errorf("line %d out of order: %q", i, line)
		}
	}
}

type countingStringer struct{ calls int }

func (c *countingStringer) String() string {
	c.calls++
	return "counted"
}

func TestFilteredLevelSkipsFormatting(t *testing.T) {
	buffer := new(bytes.Buffer)
	logger := New(Writer(buffer), AtThreshold(LevelError))

	arg := &countingStringer{}
	logger.Warningf("%v", arg)
	if arg.calls != 0 || buffer.Len() != 0 {
		t.Errorf("expected filtered line to skip formatting, got %d calls and %q", arg.calls, buffer.String())
	}

	logger.Errorf("%v", arg)
	if arg.calls != 1 {
		t.Errorf("expected one String call, got %d", arg.calls)
	}
}

func TestLongFile(t *testing.T) {
	_, path, _, _ := runtime.Caller(0)
	dir := filepath.Dir(path)

	buffer := new(bytes.Buffer)
	New(Writer(buffer), AtThreshold(LevelTrace), Flags(Llongfile)).Error("full")
	if !strings.HasPrefix(buffer.String(), "[ERROR]::("+path+":") {
		t.Errorf("expected full path %s, got %q", path, buffer.String())
	}

	buffer.Reset()
	New(Writer(buffer), AtThreshold(LevelTrace), Flags(Llongfile), BasePath(filepath.Dir(dir))).Error("trimmed")
	expected := "[ERROR]::(" + filepath.Base(dir) + "/" + filepath.Base(path) + ":"
	if !strings.HasPrefix(buffer.String(), expected) {
		t.Errorf("expected prefix %q, got %q", expected, buffer.String())
	}

	buffer.Reset()
	New(Writer(buffer), AtThreshold(LevelTrace), Flags(Llongfile), BasePath("/no/such/prefix")).Error("untouched")
	if !strings.HasPrefix(buffer.String(), "[ERROR]::("+path+":") {
		t.Errorf("expected unmatched base path to be ignored, got %q", buffer.String())
	}
}

func TestMessageIsVerbatim(t *testing.T) {
	buffer := new(bytes.Buffer)
	logger := New(Writer(buffer), AtThreshold(LevelTrace))

	// Fixed messages are not templates.
	logger.Error("100% done %d")
	if !strings.HasSuffix(buffer.String(), "):100% done %d\n") {
		t.Errorf("expected verbatim message, got %q", buffer.String())
	}
}

func TestDiscarder(t *testing.T) {
	logger := Discarder()
	logger.Emergency("dropped")
	logger.Emergencyf("dropped %d", 1)
}

func TestPackageLevelLocation(t *testing.T) {
	buffer := new(bytes.Buffer)
	prev := std()
	SetOutput(buffer)
	defer gstate.std.Store(prev)

	// EMERGENCY is the highest level, retained under every threshold tag.
	file, line := here()
	Emergency("reactor")
	expected := fmt.Sprintf("[EMERGENCY]::(%s:%d):reactor\n", file, line)
	if buffer.String() != expected {
		t.Errorf("expected %q, got %q", expected, buffer.String())
	}

	buffer.Reset()
	file, line = here()
	Emergencyf("reactor %d", 4)
	expected = fmt.Sprintf("[EMERGENCY]::(%s:%d():reactor 4\n", file, line)
	if buffer.String() != expected {
		t.Errorf("expected %q, got %q", expected, buffer.String())
	}
}

func TestPackageLevelGates(t *testing.T) {
	buffer := new(bytes.Buffer)
	prev := std()
	SetOutput(buffer)
	defer gstate.std.Store(prev)

	testCases := []struct {
		level     Level
		enabled   bool
		fixed     func(string)
		formatted func(string, ...interface{})
	}{
		{LevelTrace, TraceEnabled, Trace, Tracef},
		{LevelDebug, DebugEnabled, Debug, Debugf},
		{LevelInfo, InfoEnabled, Info, Infof},
		{LevelNotice, NoticeEnabled, Notice, Noticef},
		{LevelWarning, WarningEnabled, Warning, Warningf},
		{LevelError, ErrorEnabled, Error, Errorf},
		{LevelCritical, CriticalEnabled, Critical, Criticalf},
		{LevelAlert, AlertEnabled, Alert, Alertf},
		{LevelEmergency, EmergencyEnabled, Emergency, Emergencyf},
	}
	for _, tc := range testCases {
		if tc.enabled != Enabled(tc.level) {
			t.Errorf("%s: gate constant %t disagrees with Enabled", tc.level, tc.enabled)
		}

		buffer.Reset()
		tc.fixed("m")
		tc.formatted("m%d", 1)
		lines := strings.Count(buffer.String(), "\n")
		if tc.enabled && lines != 2 {
			t.Errorf("%s: expected two lines, got %q", tc.level, buffer.String())
		}
		if !tc.enabled && lines != 0 {
			t.Errorf("%s: expected no output below threshold %s, got %q", tc.level, Threshold, buffer.String())
		}
	}
}

func TestSynchronizedWriterKeepsLinesWhole(t *testing.T) {
	buffer := new(bytes.Buffer)
	logger := New(Writer(SynchronizedWriter(buffer)), AtThreshold(LevelTrace))

	const goroutines, perGoroutine = 8, 100
	var wg sync.WaitGroup
	for g := 0; g < goroutines; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < perGoroutine; i++ {
				logger.Errorf("goroutine %d line %d", g, i)
			}
		}(g)
	}
	wg.Wait()

	regex := regexp.MustCompile(`^\[ERROR\]::\(log_test\.go:\d+\(\):goroutine \d+ line \d+$`)
	lines := strings.Split(strings.TrimSuffix(buffer.String(), "\n"), "\n")
	if len(lines) != goroutines*perGoroutine {
		t.Fatalf("expected %d lines, got %d", goroutines*perGoroutine, len(lines))
	}
	for _, line := range lines {
		if !regex.MatchString(line) {
			t.Errorf("expected pattern: %q, got: %q", regex, line)
		}
	}
}

func TestLoggerThresholdOverridesBuild(t *testing.T) {
	buffer := new(bytes.Buffer)
	logger := New(Writer(buffer), AtThreshold(LevelTrace))

	// Whatever kslog_<level> tag the package is built with, a Logger's own
	// threshold decides what it emits.
	for _, level := range Levels() {
		if !logger.Enabled(level) {
			t.Errorf("expected %s to be enabled at TRACE under build threshold %s", level, Threshold)
		}
	}
	logger.Trace("lowest")
	logger.Error("middle")
	if lines := strings.Count(buffer.String(), "\n"); lines != 2 {
		t.Errorf("expected two lines under build threshold %s, got %q", Threshold, buffer.String())
	}
	if d := New(); !d.Enabled(Threshold) || d.Enabled(Threshold-1) {
		t.Errorf("expected a default Logger to start at the build threshold %s", Threshold)
	}
}
