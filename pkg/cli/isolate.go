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

	"github.com/urfave/cli/v3"

	"github.com/mchmarny/cookjob/pkg/engine"
	cjerrors "github.com/mchmarny/cookjob/pkg/errors"
	"github.com/mchmarny/cookjob/pkg/gamedata"
	"github.com/mchmarny/cookjob/pkg/isolation"
	"github.com/mchmarny/cookjob/pkg/stats"
)

// IsolateResult is the output of the isolate command. Previous and
// StatsFingerprint are set when --apply stored the contribution.
type IsolateResult struct {
	Ingredient       string                 `json:"ingredient" yaml:"ingredient"`
	Pairs            []engine.IsolationPair `json:"pairs" yaml:"pairs"`
	Contribution     *stats.Record          `json:"contribution,omitempty" yaml:"contribution,omitempty"`
	Applied          bool                   `json:"applied" yaml:"applied"`
	Previous         *stats.Record          `json:"previous,omitempty" yaml:"previous,omitempty"`
	StatsFingerprint string                 `json:"stats_fingerprint,omitempty" yaml:"stats_fingerprint,omitempty"`
}

func isolateCmd() *cli.Command {
	return &cli.Command{
		Name:  "isolate",
		Usage: "Find cookjob pairs that differ only by one ingredient",
		Description: `Lists pairs of craftable cookjobs where one is the other plus the given
ingredient, ranked by the stress of the cookjob without it. Cooking both
members of a pair and passing their measured stats with --without and
--with infers the ingredient's contribution. With --apply the contribution
is written to the game data file as the ingredient's stats and the cached
stats table is refreshed.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "ingredient",
				Usage:    "ingredient to isolate",
				Required: true,
			},
			&cli.StringFlag{
				Name:  "have",
				Usage: "comma separated ingredient inventory",
			},
			&cli.StringFlag{
				Name:  "without",
				Usage: "measured hunger,stress,sell_value of the cookjob without the ingredient",
			},
			&cli.StringFlag{
				Name:  "with",
				Usage: "measured hunger,stress,sell_value of the cookjob with the ingredient",
			},
			&cli.BoolFlag{
				Name:  "apply",
				Usage: "store the inferred contribution as the ingredient's stats",
			},
			outputFlag(),
			formatFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.IsSet("without") != cmd.IsSet("with") {
				return cjerrors.New(cjerrors.ErrCodeInvalidRequest, "--without and --with must be given together")
			}
			if cmd.Bool("apply") && !cmd.IsSet("without") {
				return cjerrors.New(cjerrors.ErrCodeInvalidRequest, "--apply requires --without and --with")
			}

			eng, cfg, closeFn, err := loadEngine(ctx, cmd, false)
			if err != nil {
				return err
			}
			defer closeFn()

			snap := eng.Current()
			avail, err := parseInventory(snap.Encoder(), cmd.String("have"))
			if err != nil {
				return err
			}

			name := cmd.String("ingredient")
			if resolved, ok := snap.Encoder().Lookup(name); ok {
				name = resolved
			}
			pairs, err := snap.Isolate(name, avail)
			if err != nil {
				return err
			}
			res := IsolateResult{Ingredient: name, Pairs: pairs}

			if cmd.IsSet("without") {
				without, err := parseRecord(cmd.String("without"))
				if err != nil {
					return err
				}
				with, err := parseRecord(cmd.String("with"))
				if err != nil {
					return err
				}
				c := isolation.Infer(without, with)
				res.Contribution = &c
			}

			if cmd.Bool("apply") {
				next, prev, err := eng.Apply(ctx, name, *res.Contribution)
				if err != nil {
					return err
				}
				if err := gamedata.WriteIngredientStats(cfg.DataPath(), name, *res.Contribution); err != nil {
					return err
				}
				slog.Info("ingredient stats applied",
					slog.String("ingredient", name),
					slog.Any("stats", *res.Contribution),
					slog.String("fingerprint", next.StatsFingerprint))
				res.Previous = prev
				res.Applied = true
				res.StatsFingerprint = next.StatsFingerprint
			}
			return writeOutput(ctx, cmd, res)
		},
	}
}
