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

package levels

import (
	"fmt"

	"github.com/kurafs/kslog/pkg/log"
)

// Flag is a flag.Value accepting a level by name or weight, as Parse does.
type Flag struct {
	Level log.Level
	set   bool
}

func (f *Flag) String() string {
	if f == nil {
		return ""
	}
	if Named(f.Level) {
		return f.Level.String()
	}
	return fmt.Sprint(int(f.Level))
}

func (f *Flag) Set(value string) error {
	level, err := Parse(value)
	if err != nil {
		return err
	}
	f.Level, f.set = level, true
	return nil
}

// IsSet reports whether the flag was given on the command line.
func (f *Flag) IsSet() bool {
	return f.set
}
