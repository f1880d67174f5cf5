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

package emit

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/kurafs/kslog/pkg/cli"
	"github.com/kurafs/kslog/pkg/env"
	"github.com/kurafs/kslog/pkg/levels"
	"github.com/kurafs/kslog/pkg/log"
	"github.com/kurafs/kslog/pkg/serial"
)

// ThresholdEnv names the environment variable consulted for the threshold
// when -threshold is not given.
const ThresholdEnv = "KSLOG_THRESHOLD"

var EmitCmd = &cli.Command{
	Run:       emitCmdRun,
	UsageLine: "emit [-level level] [-threshold level] [-f] [-long] [-env file] [-serial <device> [-baud rate]] message [args...]",
	Short:     "emit a single log line",
	Long: `
Emit writes one line at the given level (default INFO) through a logger
whose threshold is fixed when it is created. The threshold is taken from
-threshold, else from $KSLOG_THRESHOLD (which may be set in the file named
by -env), else the build threshold. Levels may be given by name or weight.

With -f the message is a fmt template and the remaining arguments fill it
in; arguments that parse as integers are passed as integers.

    $ kslog emit -level error -f "failed: %d" 7
    [ERROR]::(emit.go:183():failed: 7
    `,
}

func emitCmdRun(cmd *cli.Command, stdout io.Writer, args []string) error {
	levelFlag := levels.Flag{Level: log.LevelInfo}
	var (
		thresholdFlag levels.Flag
		formatFlag    bool
		longFlag      bool
		envFlag       string
		serialFlag    string
		baudFlag      int
	)

	cmd.FlagSet.Var(&levelFlag, "level", "Level of the emitted line")
	cmd.FlagSet.Var(&thresholdFlag, "threshold",
		"Least level emitted (overrides $"+ThresholdEnv+" and the build threshold)")
	cmd.FlagSet.BoolVar(&formatFlag, "f", false, "Treat the message as a format template")
	cmd.FlagSet.BoolVar(&longFlag, "long", false, "Print the full path of the source file")
	cmd.FlagSet.StringVar(&envFlag, "env", ".env", "Dotenv file to read before consulting the environment")
	cmd.FlagSet.StringVar(&serialFlag, "serial", "", "Serial device to write the line to")
	cmd.FlagSet.IntVar(&baudFlag, "baud", 115200, "Baud rate of the serial device")

	if err := cmd.FlagSet.Parse(args); err != nil {
		return cli.CmdParseError(err)
	}
	if cmd.FlagSet.NArg() == 0 {
		return cli.CmdParseError(errors.New("missing message"))
	}
	if !levels.Named(levelFlag.Level) {
		return cli.CmdParseError(
			errors.New(fmt.Sprintf("level %d has no call site", int(levelFlag.Level))))
	}

	threshold, err := resolveThreshold(thresholdFlag, envFlag)
	if err != nil {
		return err
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

	flags := log.LstdFlags
	if longFlag {
		flags = log.Llongfile
	}
	logger := log.New(log.Writer(sink), log.AtThreshold(threshold), log.Flags(flags))

	msg, rest := cmd.FlagSet.Arg(0), cmd.FlagSet.Args()[1:]
	if formatFlag {
		emitf(logger, levelFlag.Level, msg, formatArgs(rest)...)
		return nil
	}
	if len(rest) > 0 {
		return cli.CmdParseError(
			errors.New(fmt.Sprintf("unrecognized arguments: %v (use -f for templates)", rest)))
	}
	emit(logger, levelFlag.Level, msg)
	return nil
}

func resolveThreshold(flag levels.Flag, envFile string) (log.Level, error) {
	if flag.IsSet() {
		return flag.Level, nil
	}
	if err := env.Load(envFile); err != nil {
		return 0, fmt.Errorf("loading %s: %w", envFile, err)
	}
	value := env.GetString(ThresholdEnv, "")
	if value == "" {
		return log.Threshold, nil
	}
	threshold, err := levels.Parse(value)
	if err != nil {
		return 0, fmt.Errorf("$%s: %w", ThresholdEnv, err)
	}
	return threshold, nil
}

func formatArgs(args []string) []interface{} {
	v := make([]interface{}, 0, len(args))
	for _, arg := range args {
		if i, err := strconv.ParseInt(arg, 10, 64); err == nil {
			v = append(v, i)
			continue
		}
		v = append(v, arg)
	}
	return v
}

func emit(logger *log.Logger, level log.Level, msg string) {
	switch level {
	case log.LevelTrace:
		logger.Trace(msg)
	case log.LevelDebug:
		logger.Debug(msg)
	case log.LevelInfo:
		logger.Info(msg)
	case log.LevelNotice:
		logger.Notice(msg)
	case log.LevelWarning:
		logger.Warning(msg)
	case log.LevelError:
		logger.Error(msg)
	case log.LevelCritical:
		logger.Critical(msg)
	case log.LevelAlert:
		logger.Alert(msg)
	case log.LevelEmergency:
		logger.Emergency(msg)
	}
}

func emitf(logger *log.Logger, level log.Level, format string, v ...interface{}) {
	switch level {
	case log.LevelTrace:
		logger.Tracef(format, v...)
	case log.LevelDebug:
		logger.Debugf(format, v...)
	case log.LevelInfo:
		logger.Infof(format, v...)
	case log.LevelNotice:
		logger.Noticef(format, v...)
	case log.LevelWarning:
		logger.Warningf(format, v...)
	case log.LevelError:
		logger.Errorf(format, v...)
	case log.LevelCritical:
		logger.Criticalf(format, v...)
	case log.LevelAlert:
		logger.Alertf(format, v...)
	case log.LevelEmergency:
		logger.Emergencyf(format, v...)
	}
}
