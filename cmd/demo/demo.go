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

package demo

import (
	"errors"
	"fmt"
	"io"

	"github.com/kurafs/kslog/pkg/cli"
	"github.com/kurafs/kslog/pkg/log"
	"github.com/kurafs/kslog/pkg/serial"
)

var DemoCmd = &cli.Command{
	Run:       demoCmdRun,
	UsageLine: "demo [-serial <device> [-baud rate]]",
	Short:     "run every call site retained by this build",
	Long: `
Demo runs the fixed-message and formatted call site of every level once,
through the package-level entry points. Levels below the build threshold
are compiled out and print nothing; rebuild with -tags kslog_<level> to
move the threshold.

Lines go to standard output, or to the serial device named by -serial,
which is put in raw mode at the given baud rate.
    `,
}

func demoCmdRun(cmd *cli.Command, stdout io.Writer, args []string) error {
	var (
		serialFlag string
		baudFlag   int
	)
	cmd.FlagSet.StringVar(&serialFlag, "serial", "", "Serial device to write lines to")
	cmd.FlagSet.IntVar(&baudFlag, "baud", 115200, "Baud rate of the serial device")

	if err := cmd.FlagSet.Parse(args); err != nil {
		return cli.CmdParseError(err)
	}
	if cmd.FlagSet.NArg() > 0 {
		return cli.CmdParseError(
			errors.New(fmt.Sprintf("unrecognized arguments: %v", cmd.FlagSet.Args())))
	}

	sink := stdout
	if serialFlag != "" {
		f, err := serial.Open(serialFlag, baudFlag)
		if err != nil {
			return err
		}
		defer f.Close()
		sink = f
	}
	log.SetOutput(sink)

	if log.DebugEnabled {
		log.Debugf("build threshold %s (%d), profile %s", log.Threshold, int(log.Threshold), log.Profile)
	}

	log.Trace("trace call site")
	log.Tracef("trace call site, weight %d", int(log.LevelTrace))
	log.Debug("debug call site")
	log.Debugf("debug call site, weight %d", int(log.LevelDebug))
	log.Info("info call site")
	log.Infof("info call site, weight %d", int(log.LevelInfo))
	log.Notice("notice call site")
	log.Noticef("notice call site, weight %d", int(log.LevelNotice))
	log.Warning("warning call site")
	log.Warningf("warning call site, weight %d", int(log.LevelWarning))
	log.Error("error call site")
	log.Errorf("error call site, weight %d", int(log.LevelError))
	log.Critical("critical call site")
	log.Criticalf("critical call site, weight %d", int(log.LevelCritical))
	log.Alert("alert call site")
	log.Alertf("alert call site, weight %d", int(log.LevelAlert))
	log.Emergency("emergency call site")
	log.Emergencyf("emergency call site, weight %d", int(log.LevelEmergency))
	return nil
}
