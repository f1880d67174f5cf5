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

// Package levels indexes the severity scale of package log for host-side
// tooling: parsing level names from flags and the environment, and answering
// which named levels a threshold keeps or drops. Firmware has no need for it
// and should not import it.
package levels

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/btree"
	"github.com/kurafs/kslog/pkg/log"
)

// ErrUnknownLevel is returned by Parse for input that is neither a level name
// nor an integer weight.
var ErrUnknownLevel = errors.New("unknown level")

type item log.Level

func (a item) Less(than btree.Item) bool {
	return a < than.(item)
}

var (
	scale  = btree.New(2)
	byName = make(map[string]log.Level)
)

func init() {
	for _, level := range log.Levels() {
		scale.ReplaceOrInsert(item(level))
		byName[level.String()] = level
	}
}

// Parse returns the level named by s, matched case-insensitively, or the
// weight s spells out in decimal. Weights outside the named set are accepted
// since they are valid thresholds.
func Parse(s string) (log.Level, error) {
	s = strings.TrimSpace(s)
	if level, ok := byName[strings.ToUpper(s)]; ok {
		return level, nil
	}
	w, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrUnknownLevel, s)
	}
	return log.Level(w), nil
}

// AtOrAbove returns, in ascending order, the named levels a threshold of t
// retains.
func AtOrAbove(t log.Level) []log.Level {
	var levels []log.Level
	scale.AscendGreaterOrEqual(item(t), func(i btree.Item) bool {
		levels = append(levels, log.Level(i.(item)))
		return true
	})
	return levels
}

// Below returns, in ascending order, the named levels a threshold of t drops.
func Below(t log.Level) []log.Level {
	var levels []log.Level
	scale.AscendLessThan(item(t), func(i btree.Item) bool {
		levels = append(levels, log.Level(i.(item)))
		return true
	})
	return levels
}

// Lowest returns the least named level a threshold of t retains. It reports
// false when t is above every named level.
func Lowest(t log.Level) (level log.Level, ok bool) {
	scale.AscendGreaterOrEqual(item(t), func(i btree.Item) bool {
		level, ok = log.Level(i.(item)), true
		return false
	})
	return level, ok
}

// Named reports whether l is one of the named levels.
func Named(l log.Level) bool {
	return scale.Has(item(l))
}
