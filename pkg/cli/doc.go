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

// Package cli allows the construction of structured command-line interfaces with sub-commands and
// help topics, in the manner of git where the top-level program name is followed by a qualifier
// that determines what sub-command to execute (git {reflog,commit,cherry-pick}).
//
// Example (from the kslog binary):
//
//	var commands cli.Commands
//	commands = append(commands, democmd.DemoCmd)
//	commands = append(commands, emitcmd.EmitCmd)
//	commands = append(commands, doc.LineFormatCmd)
//
//	abstract := "kslog emits and inspects build-time gated log lines."
//	if err := cli.Process(abstract, commands); err != nil {
//		os.Exit(1)
//	}
//
// Which generates the following top-level behaviour:
//
//	$ kslog help
//	kslog emits and inspects build-time gated log lines.
//
//	Usage:
//
//	    kslog command [arguments]
//
//	The commands are:
//
//	        demo                   run every call site retained by this build
//	        emit                   emit a single log line
//
//	Use 'kslog help [command]' for more information about a command.
//
//	Additional help topics:
//
//	        line-format            shape of emitted log lines
//
//	Use "kslog help [topic]" for more information about that topic.
//
// Individual commands also have their own '-h' switches listing their flags.
package cli
