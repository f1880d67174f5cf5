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
	"errors"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/kurafs/kslog/pkg/cli"
	"github.com/kurafs/kslog/pkg/levels"
	"github.com/kurafs/kslog/pkg/log"
)

var LevelsCmd = &cli.Command{
	Run:       levelsCmdRun,
	UsageLine: "levels [-threshold level]",
	Short:     "list severity levels and which ones a threshold keeps",
	Long: `
Levels prints the severity scale along with whether each level is emitted
under the given threshold (the build threshold by default). Thresholds need
not be named levels; comparisons are numeric.
    `,
}

func levelsCmdRun(cmd *cli.Command, stdout io.Writer, args []string) error {
	thresholdFlag := levels.Flag{Level: log.Threshold}
	cmd.FlagSet.Var(&thresholdFlag, "threshold", "Threshold to evaluate (default: the build threshold)")

	if err := cmd.FlagSet.Parse(args); err != nil {
		return cli.CmdParseError(err)
	}
	if cmd.FlagSet.NArg() > 0 {
		return cli.CmdParseError(
			errors.New(fmt.Sprintf("unrecognized arguments: %v", cmd.FlagSet.Args())))
	}

	threshold := thresholdFlag.Level
	fmt.Fprintf(stdout, "build threshold: %s (%d), profile: %s\n\n", log.Threshold, int(log.Threshold), log.Profile)

	w := tabwriter.NewWriter(stdout, 0, 8, 2, ' ', 0)
	fmt.Fprintln(w, "LEVEL\tWEIGHT\tEMITTED")
	for _, level := range levels.Below(threshold) {
		fmt.Fprintf(w, "%s\t%d\tno\n", level, int(level))
	}
	for _, level := range levels.AtOrAbove(threshold) {
		fmt.Fprintf(w, "%s\t%d\tyes\n", level, int(level))
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Fprintln(stdout)
	if lowest, ok := levels.Lowest(threshold); ok {
		fmt.Fprintf(stdout, "threshold %d: %s and above are emitted\n", int(threshold), lowest)
	} else {
		fmt.Fprintf(stdout, "threshold %d: nothing is emitted\n", int(threshold))
	}
	return nil
}
