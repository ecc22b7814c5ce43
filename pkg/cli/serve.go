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
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/mchmarny/cookjob/pkg/engine"
	"github.com/mchmarny/cookjob/pkg/server"
)

func serveCmd() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Serve cookjob queries over HTTP",
		Description: `Loads a snapshot and answers read-only queries on /v1/cookjobs,
/v1/explain, /v1/isolate and /v1/recipes. Sending SIGHUP reloads the game
data and recipe files; queries keep using the previous snapshot until the
new one is published.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "address",
				Usage: "listen address",
			},
			&cli.IntFlag{
				Name:    "port",
				Usage:   "listen port",
				Sources: cli.EnvVars("PORT"),
			},
			&cli.FloatFlag{
				Name:  "rate-limit",
				Usage: "sustained API requests per second",
			},
			&cli.IntFlag{
				Name:  "rate-burst",
				Usage: "API request burst size",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			store, err := engine.OpenStore(ctx, cfg)
			if err != nil {
				return err
			}
			defer func() {
				if err := store.Close(); err != nil {
					slog.Warn("failed to close cache", "error", err)
				}
			}()

			eng := engine.New(cfg, store)
			if _, err := eng.Load(ctx, false); err != nil {
				return err
			}

			srvCfg := server.NewConfig()
			if cmd.IsSet("address") {
				srvCfg.Address = cmd.String("address")
			}
			if cmd.IsSet("port") {
				srvCfg.Port = int(cmd.Int("port"))
			}
			if cmd.IsSet("rate-limit") {
				srvCfg.RateLimit = rate.Limit(cmd.Float("rate-limit"))
			}
			if cmd.IsSet("rate-burst") {
				srvCfg.RateLimitBurst = int(cmd.Int("rate-burst"))
			}

			g, gctx := errgroup.WithContext(ctx)
			g.Go(func() error {
				return server.NewServer(srvCfg, eng).Start(gctx)
			})
			g.Go(func() error {
				return reloadOnHangup(gctx, eng)
			})
			return g.Wait()
		},
	}
}

// reloadOnHangup reloads the engine on every SIGHUP until ctx is done.
// A failed reload keeps the current snapshot.
func reloadOnHangup(ctx context.Context, eng *engine.Engine) error {
	hup := make(chan os.Signal, 1)
	signal.Notify(hup, syscall.SIGHUP)
	defer signal.Stop(hup)

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-hup:
			if _, err := eng.Load(ctx, false); err != nil {
				slog.Error("reload failed, keeping current snapshot", "error", err)
				continue
			}
			slog.Info("snapshot reloaded")
		}
	}
}
