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

// Call sites. Each one hardwires its level and is gated by that level's own
// constant, so the body is dropped by the compiler for levels below the build
// Threshold.

// Trace writes msg at LevelTrace.
func Trace(msg string) {
	if TraceEnabled {
		std().log(LevelTrace, msg)
	}
}

// Tracef writes a line at LevelTrace. Arguments are handled in the manner of
// fmt.Printf.
func Tracef(format string, v ...interface{}) {
	if TraceEnabled {
		std().logf(LevelTrace, format, v...)
	}
}

// Debug writes msg at LevelDebug.
func Debug(msg string) {
	if DebugEnabled {
		std().log(LevelDebug, msg)
	}
}

// Debugf writes a line at LevelDebug. Arguments are handled in the manner of
// fmt.Printf.
func Debugf(format string, v ...interface{}) {
	if DebugEnabled {
		std().logf(LevelDebug, format, v...)
	}
}

// Info writes msg at LevelInfo.
func Info(msg string) {
	if InfoEnabled {
		std().log(LevelInfo, msg)
	}
}

// Infof writes a line at LevelInfo. Arguments are handled in the manner of
// fmt.Printf.
func Infof(format string, v ...interface{}) {
	if InfoEnabled {
		std().logf(LevelInfo, format, v...)
	}
}

// Notice writes msg at LevelNotice.
func Notice(msg string) {
	if NoticeEnabled {
		std().log(LevelNotice, msg)
	}
}

// Noticef writes a line at LevelNotice. Arguments are handled in the manner of
// fmt.Printf.
func Noticef(format string, v ...interface{}) {
	if NoticeEnabled {
		std().logf(LevelNotice, format, v...)
	}
}

// Warning writes msg at LevelWarning.
func Warning(msg string) {
	if WarningEnabled {
		std().log(LevelWarning, msg)
	}
}

// Warningf writes a line at LevelWarning. Arguments are handled in the manner
// of fmt.Printf.
func Warningf(format string, v ...interface{}) {
	if WarningEnabled {
		std().logf(LevelWarning, format, v...)
	}
}

// Error writes msg at LevelError.
func Error(msg string) {
	if ErrorEnabled {
		std().log(LevelError, msg)
	}
}

// Errorf writes a line at LevelError. Arguments are handled in the manner of
// fmt.Printf.
func Errorf(format string, v ...interface{}) {
	if ErrorEnabled {
		std().logf(LevelError, format, v...)
	}
}

// Critical writes msg at LevelCritical.
func Critical(msg string) {
	if CriticalEnabled {
		std().log(LevelCritical, msg)
	}
}

// Criticalf writes a line at LevelCritical. Arguments are handled in the
// manner of fmt.Printf.
func Criticalf(format string, v ...interface{}) {
	if CriticalEnabled {
		std().logf(LevelCritical, format, v...)
	}
}

// Alert writes msg at LevelAlert.
func Alert(msg string) {
	if AlertEnabled {
		std().log(LevelAlert, msg)
	}
}

// Alertf writes a line at LevelAlert. Arguments are handled in the manner of
// fmt.Printf.
func Alertf(format string, v ...interface{}) {
	if AlertEnabled {
		std().logf(LevelAlert, format, v...)
	}
}

// Emergency writes msg at LevelEmergency.
func Emergency(msg string) {
	if EmergencyEnabled {
		std().log(LevelEmergency, msg)
	}
}

// Emergencyf writes a line at LevelEmergency. Arguments are handled in the
// manner of fmt.Printf.
func Emergencyf(format string, v ...interface{}) {
	if EmergencyEnabled {
		std().logf(LevelEmergency, format, v...)
	}
}
