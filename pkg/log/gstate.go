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
	"io"
	"sync/atomic"
)

type gstateT struct {
	std atomic.Value // type: *Logger
}

var gstate gstateT

// Need to initialize the atomics; to be used once during init time.
func init() {
	gstate.std.Store(New())
}

// SetOutput points the package-level call sites at w. It is meant to be called
// once during startup, before anything is logged; the threshold stays the build
// Threshold.
func SetOutput(w io.Writer) {
	gstate.std.Store(New(Writer(w)))
}

func std() *Logger {
	return gstate.std.Load().(*Logger)
}
