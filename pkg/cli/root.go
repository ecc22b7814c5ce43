// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
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

package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/urfave/cli/v3"

	"github.com/mchmarny/cookjob/pkg/logging"
	"github.com/mchmarny/cookjob/pkg/version"
)

const name = "cookjob"

// Execute runs the CLI and exits non-zero on failure.
func Execute() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := NewCommand().Run(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// NewCommand returns the root command.
func NewCommand() *cli.Command {
	info := version.Get()
	return &cli.Command{
		Name:                  name,
		Usage:                 "Enumerate and score cookjobs",
		Version:               info.String(),
		EnableShellCompletion: true,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Usage:   "YAML or JSON config file",
				Sources: cli.EnvVars("COOKJOB_CONFIG"),
			},
			&cli.StringFlag{
				Name:    "log-level",
				Value:   "info",
				Usage:   "log level (debug, info, warn, error)",
				Sources: cli.EnvVars(logging.EnvVarLogLevel),
			},
			&cli.StringFlag{
				Name:    "data",
				Usage:   "game data JSON file",
				Sources: cli.EnvVars("COOKJOB_DATA"),
			},
			&cli.StringFlag{
				Name:    "recipes",
				Usage:   "recipe CSV file",
				Sources: cli.EnvVars("COOKJOB_RECIPES"),
			},
			&cli.StringFlag{
				Name:    "cache",
				Usage:   "cache backend (file, sqlite, none)",
				Sources: cli.EnvVars("COOKJOB_CACHE"),
			},
			&cli.StringFlag{
				Name:    "cache-dir",
				Usage:   "cache directory",
				Sources: cli.EnvVars("COOKJOB_CACHE_DIR"),
			},
			&cli.StringFlag{
				Name:    "cache-format",
				Usage:   "file cache encoding (json, yaml)",
				Sources: cli.EnvVars("COOKJOB_CACHE_FORMAT"),
			},
			&cli.StringFlag{
				Name:    "penalty",
				Usage:   "category penalty rule (default, legacy)",
				Sources: cli.EnvVars("COOKJOB_PENALTY"),
			},
			&cli.IntFlag{
				Name:    "concurrency",
				Usage:   "parallel recipe expansions",
				Sources: cli.EnvVars("COOKJOB_CONCURRENCY"),
			},
			&cli.StringFlag{
				Name:    "metrics-out",
				Usage:   "write Prometheus metrics to this file on exit",
				Sources: cli.EnvVars("COOKJOB_METRICS_OUT"),
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			logging.SetDefaultStructuredLoggerWithLevel(name, info.Version, cmd.String("log-level"))
			slog.Debug("starting",
				"name", name,
				"version", info.Version,
				"commit", info.Commit,
				"date", info.Date)
			return ctx, nil
		},
		After: func(_ context.Context, cmd *cli.Command) error {
			path := cmd.String("metrics-out")
			if path == "" {
				return nil
			}
			if err := prometheus.WriteToTextfile(path, prometheus.DefaultGatherer); err != nil {
				return fmt.Errorf("failed to write metrics to %q: %w", path, err)
			}
			slog.Debug("metrics written", "path", path)
			return nil
		},
		Commands: []*cli.Command{
			buildCmd(),
			cookjobsCmd(),
			explainCmd(),
			isolateCmd(),
			recipesCmd(),
			serveCmd(),
		},
	}
}
