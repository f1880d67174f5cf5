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

var BuildTagsCmd = &cli.Command{
	UsageLine: "build-tags",
	Short:     "choosing the threshold and profile at build time",
	Long: `
The threshold is a constant chosen by at most one build tag:

    kslog_trace      TRACE      0
    kslog_debug      DEBUG      100   (default when no tag is given)
    kslog_info       INFO       200
    kslog_notice     NOTICE     250
    kslog_warning    WARNING    300
    kslog_error      ERROR      400
    kslog_critical   CRITICAL   500
    kslog_alert      ALERT      550
    kslog_emergency  EMERGENCY  600

Call sites below the threshold are compiled out, for example:

    $ go build -tags kslog_warning ./...

Giving two threshold tags fails the build.

Only the nine named weights can be picked by tag. Any other integer is a
valid threshold for a Logger built with log.AtThreshold, and for 'kslog emit'
through -threshold or $KSLOG_THRESHOLD; 'kslog levels -threshold' shows what
such a weight keeps.

The constrained profile is selected automatically by TinyGo (the tinygo
tag), which writes to machine.Serial and keeps level names in flash. It can
be selected on a host with the kslog_constrained tag to check that output
is unchanged. Run 'kslog levels' to see what the current build keeps.
`,
}
