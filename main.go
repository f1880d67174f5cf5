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

package main

import (
	"os"

	"github.com/kurafs/kslog/doc"
	"github.com/kurafs/kslog/pkg/cli"

	democmd "github.com/kurafs/kslog/cmd/demo"
	emitcmd "github.com/kurafs/kslog/cmd/emit"
	levelscmd "github.com/kurafs/kslog/cmd/levels"
)

func main() {
	// We aggregate all the top-level commands (i.e. 'kslog <command> ...') as
	// needed.
	var commands cli.Commands

	commands = append(commands, democmd.DemoCmd)
	commands = append(commands, emitcmd.EmitCmd)
	commands = append(commands, levelscmd.LevelsCmd)

	// Documentation pseudo-commands for the line format and build tags.
	commands = append(commands, doc.LineFormatCmd)
	commands = append(commands, doc.BuildTagsCmd)

	abstract := "kslog emits and inspects build-time gated log lines."
	if err := cli.Process(abstract, commands); err != nil {
		os.Exit(1)
	}
}
