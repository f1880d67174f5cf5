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
	"fmt"
	"io"
	"runtime"
	"strings"
)

// Logger writes leveled lines to an io.Writer. Its configuration is fixed by
// the options given to New and never changes afterwards; the package-level
// call sites use a Logger configured with the build Threshold.
type Logger struct {
	w         io.Writer // Where lines are written to
	threshold Level     // Least level emitted
	flag      Flag      // How the source file is rendered. See options.go
	basePath  string    // Prefix trimmed from Llongfile paths, optional
}

// configure sets up the default options for the Logger: the profile's default
// sink, the build Threshold and short file names, producing lines like:
//
//	[INFO]::(main.go:42):message
//	[INFO]::(main.go:43():formatted message
func configure(l *Logger) {
	l.w = defaultWriter()
	l.threshold = Threshold
	l.flag = LstdFlags
	l.basePath = ""
}

// New returns a new Logger, configured with the provided options, if any.
func New(options ...option) *Logger {
	l := &Logger{}
	configure(l)

	for _, option := range options {
		option(l)
	}
	return l
}

// Discarder returns a Logger configured to discard all writes.
func Discarder() *Logger {
	return New(Writer(io.Discard))
}

// Enabled reports whether the Logger emits lines at the given level.
func (l *Logger) Enabled(level Level) bool {
	return level >= l.threshold
}

// The level methods mirror the package-level call sites, filtered against the
// Logger's own threshold. The f variants format in the manner of fmt.Printf.

func (l *Logger) Trace(msg string) { l.log(LevelTrace, msg) }
func (l *Logger) Tracef(format string, v ...interface{}) {
	l.logf(LevelTrace, format, v...)
}

func (l *Logger) Debug(msg string) { l.log(LevelDebug, msg) }
func (l *Logger) Debugf(format string, v ...interface{}) {
	l.logf(LevelDebug, format, v...)
}

func (l *Logger) Info(msg string) { l.log(LevelInfo, msg) }
func (l *Logger) Infof(format string, v ...interface{}) {
	l.logf(LevelInfo, format, v...)
}

func (l *Logger) Notice(msg string) { l.log(LevelNotice, msg) }
func (l *Logger) Noticef(format string, v ...interface{}) {
	l.logf(LevelNotice, format, v...)
}

func (l *Logger) Warning(msg string) { l.log(LevelWarning, msg) }
func (l *Logger) Warningf(format string, v ...interface{}) {
	l.logf(LevelWarning, format, v...)
}

func (l *Logger) Error(msg string) { l.log(LevelError, msg) }
func (l *Logger) Errorf(format string, v ...interface{}) {
	l.logf(LevelError, format, v...)
}

func (l *Logger) Critical(msg string) { l.log(LevelCritical, msg) }
func (l *Logger) Criticalf(format string, v ...interface{}) {
	l.logf(LevelCritical, format, v...)
}

func (l *Logger) Alert(msg string) { l.log(LevelAlert, msg) }
func (l *Logger) Alertf(format string, v ...interface{}) {
	l.logf(LevelAlert, format, v...)
}

func (l *Logger) Emergency(msg string) { l.log(LevelEmergency, msg) }
func (l *Logger) Emergencyf(format string, v ...interface{}) {
	l.logf(LevelEmergency, format, v...)
}

// Logger.log and Logger.logf are only to be called from the level methods and
// the package-level call sites. We use a depth of two to retrieve the caller
// immediately preceding them.
func (l *Logger) log(level Level, msg string) {
	if level < l.threshold {
		return
	}
	file, line := caller(2)
	l.output(level, false, file, line, msg)
}

func (l *Logger) logf(level Level, format string, v ...interface{}) {
	if level < l.threshold {
		return
	}
	file, line := caller(2)
	l.output(level, true, file, line, fmt.Sprintf(format, v...))
}

// output renders a single line and hands it to the writer in one Write call.
// Write errors are the sink's business and are dropped.
func (l *Logger) output(level Level, formatted bool, file string, line int, msg string) {
	buf := make([]byte, 0, 32+len(file)+len(msg))
	buf = l.header(buf, level, formatted, file, line)
	buf = append(buf, msg...)
	buf = append(buf, '\n')
	l.w.Write(buf)
}

// header appends "[NAME]::(file:line):" to buf, or "[NAME]::(file:line():" for
// formatted lines.
func (l *Logger) header(buf []byte, level Level, formatted bool, file string, line int) []byte {
	buf = append(buf, '[')
	buf = append(buf, level.String()...)
	buf = append(buf, "]::("...)
	buf = append(buf, l.fileName(file)...)
	buf = append(buf, ':')
	itoa(&buf, line, -1)
	if formatted {
		buf = append(buf, "():"...)
	} else {
		buf = append(buf, "):"...)
	}
	return buf
}

func (l *Logger) fileName(file string) string {
	if l.flag&Lshortfile != 0 {
		if i := strings.LastIndexByte(file, '/'); i >= 0 {
			return file[i+1:]
		}
		return file
	}
	if l.basePath != "" && strings.HasPrefix(file, l.basePath) {
		file = strings.TrimPrefix(file[len(l.basePath):], "/")
	}
	return file
}

// Cheap integer to fixed-width decimal ASCII. Give a negative width to avoid
// zero-padding.
func itoa(buf *[]byte, i int, wid int) {
	// Assemble decimal in reverse order.
	var b [20]byte
	bp := len(b) - 1
	for i >= 10 || wid > 1 {
		wid--
		q := i / 10
		b[bp] = byte('0' + i - q*10)
		bp--
		i = q
	}
	// i < 10
	b[bp] = byte('0' + i)
	*buf = append(*buf, b[bp:]...)
}

// caller returns the file and line number of the caller's caller's call site,
// depth frames above the function invoking caller.
//
//	f.go: 12 func f() {
//	f.go: 13     g()
//	f.go: 14 }
//
//	g.go: 25 func g() {
//	g.go: 26     file, line := caller(1) // f.go, 13
//	g.go: 27 }
func caller(depth int) (file string, line int) {
	// +1 to account for call to caller itself.
	_, file, line, ok := runtime.Caller(depth + 1)
	if !ok {
		file = "???"
		line = 0
	}
	return file, line
}
