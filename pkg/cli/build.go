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

	"github.com/mchmarny/cookjob/pkg/header"
	"github.com/mchmarny/cookjob/pkg/index"
	"github.com/mchmarny/cookjob/pkg/version"
)

// BuildResult is the output of the build command.
type BuildResult struct {
	header.Header    `json:",inline" yaml:",inline"`
	Report           index.BuildReport `json:"report" yaml:"report"`
	IndexFingerprint string            `json:"indexFingerprint" yaml:"indexFingerprint"`
	StatsFingerprint string            `json:"statsFingerprint" yaml:"statsFingerprint"`
	Entries          int               `json:"entries" yaml:"entries"`
	KnownEntries     int               `json:"knownEntries" yaml:"knownEntries"`
}

func buildCmd() *cli.Command {
	return &cli.Command{
		Name:  "build",
		Usage: "Load or rebuild the cookjob index and stats caches",
		Description: `Loads the recipe index and stats table from the cache when the game
data, recipes, grammar syntax and penalty rule are unchanged, and rebuilds
and re-caches whatever is stale. Prints the build report.`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "force",
				Usage: "ignore cached artifacts and rebuild everything",
			},
			outputFlag(),
			formatFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			snap, err := loadSnapshot(ctx, cmd, cmd.Bool("force"))
			if err != nil {
				return err
			}

			res := BuildResult{
				Report:           snap.Index.Report(),
				IndexFingerprint: snap.IndexFingerprint,
				StatsFingerprint: snap.StatsFingerprint,
				Entries:          snap.Stats.Len(),
				KnownEntries:     len(snap.Stats.Known()),
			}
			res.Init(header.KindBuildReport, header.APIVersion, version.Get().Version)
			return writeOutput(ctx, cmd, res)
		},
	}
}
