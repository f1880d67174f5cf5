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

// Level is the severity weight attached to a logging statement. Weights mirror
// the syslog severities, with NOTICE and ALERT wedged in between, and are
// stable: code outside this package may hardcode them.
type Level int

const (
	LevelTrace     Level = 0
	LevelDebug     Level = 100
	LevelInfo      Level = 200
	LevelNotice    Level = 250
	LevelWarning   Level = 300
	LevelError     Level = 400
	LevelCritical  Level = 500
	LevelAlert     Level = 550
	LevelEmergency Level = 600
)

// Levels returns the named levels in ascending order of weight.
func Levels() []Level {
	return []Level{
		LevelTrace,
		LevelDebug,
		LevelInfo,
		LevelNotice,
		LevelWarning,
		LevelError,
		LevelCritical,
		LevelAlert,
		LevelEmergency,
	}
}

// String returns the display name of the level. Weights outside the named set
// resolve to "TRACE".
func (l Level) String() string {
	return levelName(l)
}

// hostedNames is the name table as ordinary heap-resident strings.
var hostedNames = map[Level]string{
	LevelDebug:     "DEBUG",
	LevelInfo:      "INFO",
	LevelNotice:    "NOTICE",
	LevelWarning:   "WARNING",
	LevelError:     "ERROR",
	LevelCritical:  "CRITICAL",
	LevelAlert:     "ALERT",
	LevelEmergency: "EMERGENCY",
}

func hostedName(l Level) string {
	if name, ok := hostedNames[l]; ok {
		return name
	}
	return "TRACE"
}

// The constrained table is a single constant string sliced by offset. TinyGo
// keeps constant strings in flash, so the names cost no RAM.
const packedNames = "TRACEDEBUGINFONOTICEWARNINGERRORCRITICALALERTEMERGENCY"

var packedIndex = [...]uint8{0, 5, 10, 14, 20, 27, 32, 40, 45, 54}

func packedName(l Level) string {
	var i int
	switch l {
	case LevelDebug:
		i = 1
	case LevelInfo:
		i = 2
	case LevelNotice:
		i = 3
	case LevelWarning:
		i = 4
	case LevelError:
		i = 5
	case LevelCritical:
		i = 6
	case LevelAlert:
		i = 7
	case LevelEmergency:
		i = 8
	}
	return packedNames[packedIndex[i]:packedIndex[i+1]]
}
