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

package log_test

import (
	"os"

	"github.com/kurafs/kslog/pkg/log"
)

func ExampleNew() {
	logger := log.New(log.Writer(os.Stdout), log.AtThreshold(log.LevelWarning))

	logger.Info("hello")
	logger.Errorf("failed: %d", 7)
	logger.Warning("low battery")

	// Output:
	// [ERROR]::(example_test.go:27():failed: 7
	// [WARNING]::(example_test.go:28):low battery
}
