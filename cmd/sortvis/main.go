// Copyright 2025 go-sortvis Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"os"

	"github.com/ajroetker/go-sortvis/config"
	logger "github.com/multiversx/mx-chain-logger-go"
	"github.com/pkg/errors"
	"github.com/urfave/cli"
)

const version = "v0.1.0"

var log = logger.GetOrCreate("sortvis")

var helpTemplate = `NAME:
   {{.Name}} - {{.Usage}}
USAGE:
   {{.HelpName}} {{if .VisibleFlags}}[global options]{{end}} command [command options]
   {{if .Commands}}
COMMANDS:
   {{range .Commands}}{{join .Names ", "}}{{ "\t" }}{{.Usage}}
   {{end}}{{end}}{{if .VisibleFlags}}
GLOBAL OPTIONS:
   {{range .VisibleFlags}}{{.}}
   {{end}}{{end}}
VERSION:
   {{.Version}}
`

// session is the state shared by the commands of one invocation.
type session struct {
	cfg     config.Config
	logFile *os.File
}

func main() {
	s := &session{}

	app := cli.NewApp()
	cli.AppHelpTemplate = helpTemplate
	app.Name = "sortvis"
	app.Version = version
	app.Usage = "Watch sorting algorithms work, step by step, in the terminal"
	app.Flags = []cli.Flag{configFile, logLevel, logFile}
	app.Before = s.setup
	app.After = s.teardown
	app.Commands = []cli.Command{
		{
			Name:   "list",
			Usage:  "List the available algorithms",
			Action: s.list,
		},
		{
			Name:   "run",
			Usage:  "Run one algorithm in the terminal shell, or plainly with --plain",
			Flags:  []cli.Flag{algorithm, size, input, speed, seed, plain, metricsAddr},
			Action: s.run,
		},
		{
			Name:   "race",
			Usage:  "Run every algorithm over the same input and rank them",
			Flags:  []cli.Flag{size, input, workers, seed, metricsAddr},
			Action: s.race,
		},
	}

	err := app.Run(os.Args)
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
}

// setup loads the configuration and configures logging.
func (s *session) setup(c *cli.Context) error {
	s.cfg = config.Default()
	if path := c.GlobalString(configFile.Name); path != "" {
		cfg, err := config.LoadConfig(path)
		if err != nil {
			return err
		}
		s.cfg = cfg
	}

	if c.GlobalIsSet(logLevel.Name) {
		s.cfg.Log.Level = c.GlobalString(logLevel.Name)
	}
	if c.GlobalIsSet(logFile.Name) {
		s.cfg.Log.File = c.GlobalString(logFile.Name)
	}

	if err := logger.SetLogLevel(s.cfg.Log.Level); err != nil {
		return errors.Wrapf(err, "log level %q", s.cfg.Log.Level)
	}
	if s.cfg.Log.File != "" {
		f, err := os.OpenFile(s.cfg.Log.File, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return errors.Wrap(err, "opening log file")
		}
		if err = logger.AddLogObserver(f, &logger.PlainFormatter{}); err != nil {
			_ = f.Close()
			return errors.Wrap(err, "attaching log file")
		}
		s.logFile = f
	}

	log.Debug("configuration loaded", "config", c.GlobalString(configFile.Name), "log level", s.cfg.Log.Level)
	return nil
}

func (s *session) teardown(_ *cli.Context) error {
	if s.logFile == nil {
		return nil
	}
	_ = logger.RemoveLogObserver(s.logFile)
	return s.logFile.Close()
}
