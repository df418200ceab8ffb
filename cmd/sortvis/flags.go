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

import "github.com/urfave/cli"

var (
	configFile = cli.StringFlag{
		Name:  "config",
		Usage: "The `filepath` of the TOML configuration file. Built-in defaults are used when empty",
	}
	logLevel = cli.StringFlag{
		Name:  "log-level",
		Usage: "The logger `level(s)`, as pattern:LEVEL pairs, e.g. \"*:INFO,vis/run:DEBUG\"",
	}
	logFile = cli.StringFlag{
		Name:  "log-file",
		Usage: "Also write log lines to this `file`. The interactive shell only logs there",
	}

	algorithm = cli.StringFlag{
		Name:  "algorithm",
		Usage: "The `key` of the algorithm to run (see the list command)",
	}
	size = cli.IntFlag{
		Name:  "size",
		Usage: "The number of elements to sort",
	}
	input = cli.StringFlag{
		Name:  "input",
		Usage: "The input `distribution`: random, sorted, reverse or few-unique",
	}
	speed = cli.IntFlag{
		Name:  "speed",
		Usage: "The speed on a 0..100 scale; each step waits max(1, 101-speed) ms",
	}
	seed = cli.Int64Flag{
		Name:  "seed",
		Usage: "The seed of the input generator. 0 picks one from the clock",
	}
	plain = cli.BoolFlag{
		Name:  "plain",
		Usage: "Run without the terminal shell and print a summary",
	}
	metricsAddr = cli.StringFlag{
		Name:  "metrics-addr",
		Usage: "Serve Prometheus metrics on this `address` while running",
	}
	workers = cli.IntFlag{
		Name:  "workers",
		Usage: "The number of algorithms raced at once. 0 uses GOMAXPROCS",
	}
)
