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

//go:build !kslog_trace && !kslog_debug && !kslog_info && !kslog_notice && !kslog_warning && !kslog_error && !kslog_critical && !kslog_alert && !kslog_emergency

package log

// Threshold is the minimum level retained in this build. Without one of the
// kslog_<level> build tags it defaults to LevelDebug.
const Threshold = LevelDebug
