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

	"github.com/urfave/cli/v3"
)

func cookjobsCmd() *cli.Command {
	return &cli.Command{
		Name:  "cookjobs",
		Usage: "List cookjobs craftable from an inventory",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "have",
				Usage:    "comma separated ingredient inventory",
				Required: true,
			},
			&cli.BoolFlag{
				Name:  "known-only",
				Usage: "drop cookjobs with ingredients that have no stats",
			},
			outputFlag(),
			formatFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			snap, err := loadSnapshot(ctx, cmd, false)
			if err != nil {
				return err
			}
			avail, err := parseInventory(snap.Encoder(), cmd.String("have"))
			if err != nil {
				return err
			}
			return writeOutput(ctx, cmd, snap.Craftable(avail, cmd.Bool("known-only")))
		},
	}
}
