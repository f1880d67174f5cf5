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

package doc

import "github.com/kurafs/kslog/pkg/cli"

var LineFormatCmd = &cli.Command{
	UsageLine: "line-format",
	Short:     "shape of emitted log lines",
	Long: `
Every call writes exactly one newline-terminated line. Fixed-message call
sites (log.Info, log.Error, ...) write:

    [<LEVEL>]::(<file>:<line>):<message>

Formatted call sites (log.Infof, log.Errorf, ...) mark the enclosing call
with a trailing "()" after the line number:

    [<LEVEL>]::(<file>:<line>():<formatted message>

For example:

    [WARNING]::(power.go:88):low battery
    [ERROR]::(power.go:92():failed: 7

<file> is the base name of the calling source file, or its full path when
the logger is built with log.Flags(log.Llongfile). The numeric weight of
the level is never printed. Consumers matching on these lines may rely on
both shapes, including the asymmetry between them.
`,
}
