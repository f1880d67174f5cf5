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

import "io"

// Flag selects how the calling source file is rendered in a line.
type Flag int

const (
	// Llongfile renders the full path of the source file, less the base path
	// if one is configured.
	Llongfile Flag = 1 << iota
	// Lshortfile renders the final path element only. Overrides Llongfile.
	Lshortfile

	LstdFlags = Lshortfile
)

type option func(*Logger)

// Writer sets the sink lines are written to. The Logger never closes it.
func Writer(w io.Writer) option {
	return func(l *Logger) {
		l.w = w
	}
}

// AtThreshold sets the least level the Logger emits, in place of the build
// Threshold. Any weight is accepted; the comparison is numeric.
func AtThreshold(level Level) option {
	return func(l *Logger) {
		l.threshold = level
	}
}

// Flags sets the file rendering flags.
func Flags(f Flag) option {
	return func(l *Logger) {
		l.flag = f
	}
}

// BasePath sets the prefix trimmed from source paths under Llongfile, such as
// the root of the consumer's repository.
func BasePath(path string) option {
	return func(l *Logger) {
		l.basePath = path
	}
}
