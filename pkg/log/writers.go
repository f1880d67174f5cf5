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
	"sync"
)

// SynchronizedWriter wraps an io.Writer with a mutex for concurrent access.
// Loggers hand each line to their writer in a single Write, so wrapping the
// sink this way keeps lines from concurrent goroutines whole. Nothing else in
// this package locks.
func SynchronizedWriter(w io.Writer) io.Writer {
	return &synchronizedWriter{
		w: w,
	}
}

type synchronizedWriter struct {
	sync.Mutex
	w io.Writer
}

func (s *synchronizedWriter) Write(b []byte) (n int, err error) {
	s.Lock()
	n, err = s.w.Write(b)
	s.Unlock()
	return n, err
}
