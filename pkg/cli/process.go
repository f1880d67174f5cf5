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

package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// UsageError is returned by Run for invocations that never reached a command: unknown commands or
// help topics, and flag parsing failures. The relevant usage has already been printed.
type UsageError struct {
	msg string
}

func (e *UsageError) Error() string { return e.msg }

// Process is the entry point for CLI commands. User provided arguments are captured and processed
// through the defined commands, and the appropriate one (if any), is executed.
//
// All CLI errors are printed out to os.Stderr and follow with os.Exit(2). Command execution errors
// are printed out to os.Stderr as well, then propagated to the caller. All remaining printed output
// is directed at os.Stdout.
//
// The abstract is used in generating structured help messages. Example:
//
//	$ <program> -h
//	<abstract>
//
//	Usage:
//	    ...
func Process(abstract string, commands Commands) error {
	program := filepath.Base(os.Args[0])
	err := Run(program, abstract, os.Args[1:], commands, os.Stdout, os.Stderr)
	var uerr *UsageError
	if errors.As(err, &uerr) {
		os.Exit(2)
	}
	return err
}

// Run is Process with the program name, arguments and output streams made explicit.
func Run(program, abstract string, args []string, commands Commands, stdout, stderr io.Writer) error {
	// Commands define their flags when run, so each run starts from an empty FlagSet. FlagSet
	// outputs are discarded for composability with the rest of this package.
	for _, cmd := range commands {
		cmd.FlagSet = flag.FlagSet{}
		cmd.FlagSet.Init(cmd.Name(), flag.ContinueOnError)
		cmd.FlagSet.SetOutput(io.Discard)
	}

	// We fall back to printing out default usage when no commands are provided.
	if len(args) == 0 {
		printFullUsage(stdout, program, abstract, commands)
		return nil
	}

	command := args[0]
	// '<program> help' prints out default usage, as does '<program> -h'.
	if (command == "help" || command == "-h") && len(args) == 1 {
		printFullUsage(stdout, program, abstract, commands)
		return nil
	}

	if command == "help" && len(args) > 2 {
		fmt.Fprintf(stderr, "Usage: %s help [command]\n\n", program)
		fmt.Fprintln(stderr, "Too many arguments given.")
		return &UsageError{"too many arguments to help"}
	}

	// '<program> help' also works with every other command (i.e. '<program> help cmd').
	if command == "help" && len(args) == 2 {
		topic := args[1]
		if err := printCommandUsage(stdout, program, topic, commands); err != nil {
			fmt.Fprintf(stderr, "Unknown help topic '%s'\n\n", topic)
			fmt.Fprintf(stderr, "Run '%s help' for available topics.\n", program)
			return &UsageError{fmt.Sprintf("unknown help topic %q", topic)}
		}
		return nil
	}

	// A non-help command is executed, we look to find the one provided and if runnable, we run it.
	for _, cmd := range commands {
		if cmd.Name() != command || !cmd.Runnable() {
			continue
		}

		err := cmd.Run(cmd, stdout, args[1:])
		if err == nil {
			return nil
		}
		var perr cmdParseError
		if !errors.As(err, &perr) {
			fmt.Fprintf(stderr, "%s %s: %v\n", program, cmd.Name(), err)
			return err
		}

		// Help requested through '-h' is a valid state, despite the flag.Parse error response. We
		// check after cmd.Run as the flags are defined there.
		if errors.Is(err, flag.ErrHelp) {
			printCommandHelp(stdout, program, cmd)
			return nil
		}

		printCommandParsingError(stderr, program, cmd, err)
		return &UsageError{err.Error()}
	}

	fmt.Fprintf(stderr, "Unknown command '%s'\n\n", command)
	fmt.Fprintf(stderr, "Run '%s help' for available commands.\n", program)
	return &UsageError{fmt.Sprintf("unknown command %q", command)}
}
