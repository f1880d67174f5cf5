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

// Package log implements leveled logging whose severity threshold is fixed at
// build time. Call sites for levels below the threshold compile to nothing,
// which makes the package usable on microcontrollers (via TinyGo) as well as
// on hosted targets.
//
// Levels and their weights:
//
//	TRACE 0, DEBUG 100, INFO 200, NOTICE 250, WARNING 300,
//	ERROR 400, CRITICAL 500, ALERT 550, EMERGENCY 600
//
// The threshold is chosen with a build tag and defaults to DEBUG:
//
//	$ go build -tags kslog_warning ./...
//
// Every level has a fixed-message and a formatted call site:
//
//	log.Info("booted")
//	log.Errorf("failed: %d", 7)
//
// which write, respectively:
//
//	[INFO]::(main.go:12):booted
//	[ERROR]::(main.go:13():failed: 7
//
// Go evaluates call arguments before the call, even for a disabled level. If
// an argument is expensive or has side effects, guard the statement with the
// level's constant and the whole block is compiled out:
//
//	if log.DebugEnabled {
//		log.Debugf("table: %v", dump())
//	}
//
// Lines go to os.Stdout, or to machine.Serial under TinyGo, unless SetOutput
// names another sink. A Logger built with New carries its own sink and
// threshold, both fixed at construction:
//
//	logger := log.New(log.Writer(os.Stderr), log.AtThreshold(log.LevelNotice))
//	logger.Warning("low battery")
//
// Building with the tinygo or kslog_constrained tag selects the constrained
// profile, which keeps level names in a single constant string rather than in
// a heap table. Output is identical across profiles.
package log
