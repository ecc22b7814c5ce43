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

	"github.com/mchmarny/cookjob/pkg/inventory"
)

func explainCmd() *cli.Command {
	return &cli.Command{
		Name:  "explain",
		Usage: "Show the canonical recipe, candidates and stats of a cookjob",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "cookjob",
				Usage:    "comma separated ingredients of the cookjob",
				Required: true,
			},
			outputFlag(),
			formatFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			snap, err := loadSnapshot(ctx, cmd, false)
			if err != nil {
				return err
			}
			job, err := inventory.ParseCookjob(snap.Encoder(), cmd.String("cookjob"))
			if err != nil {
				return err
			}
			ex, err := snap.Explain(job)
			if err != nil {
				return err
			}
			return writeOutput(ctx, cmd, ex)
		},
	}
}
