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
	"strconv"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/mchmarny/cookjob/pkg/config"
	"github.com/mchmarny/cookjob/pkg/engine"
	cjerrors "github.com/mchmarny/cookjob/pkg/errors"
	"github.com/mchmarny/cookjob/pkg/ingredient"
	"github.com/mchmarny/cookjob/pkg/inventory"
	"github.com/mchmarny/cookjob/pkg/serializer"
	"github.com/mchmarny/cookjob/pkg/stats"
	"github.com/mchmarny/cookjob/pkg/version"
)

// outputFlag and formatFlag return fresh flags for each command; urfave
// flags keep parsed state and cannot be shared between command instances.
func outputFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "output file path (default: stdout)",
	}
}

func formatFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"t"},
		Value:   string(serializer.FormatTable),
		Usage:   fmt.Sprintf("output format (supported values: %s)", strings.Join(serializer.SupportedFormats(), ", ")),
	}
}

func parseOutputFormat(cmd *cli.Command) (serializer.Format, error) {
	f := serializer.Format(strings.ToLower(cmd.String("format")))
	if f.IsUnknown() {
		return "", fmt.Errorf("unknown output format: %q", cmd.String("format"))
	}
	return f, nil
}

// writeOutput serializes v in the requested format to the requested output.
func writeOutput(ctx context.Context, cmd *cli.Command, v any) error {
	format, err := parseOutputFormat(cmd)
	if err != nil {
		return err
	}
	ser := serializer.NewFileWriterOrStdout(format, cmd.String("output"))
	defer func() {
		if closer, ok := ser.(serializer.Closer); ok {
			if err := closer.Close(); err != nil {
				slog.Warn("failed to close serializer", "error", err)
			}
		}
	}()
	return ser.Serialize(ctx, v)
}

// loadConfig layers the config file, then explicitly set flags and
// environment variables, over the defaults.
func loadConfig(cmd *cli.Command) (*config.Config, error) {
	opts := []config.Option{config.WithVersion(version.Get().Version)}

	if path := cmd.String("config"); path != "" {
		f, err := config.LoadFile(path)
		if err != nil {
			return nil, err
		}
		opts = append(opts, f.Options()...)
	}

	if cmd.IsSet("data") {
		opts = append(opts, config.WithDataPath(cmd.String("data")))
	}
	if cmd.IsSet("recipes") {
		opts = append(opts, config.WithRecipesPath(cmd.String("recipes")))
	}
	if cmd.IsSet("cache") {
		opts = append(opts, config.WithCacheBackend(cmd.String("cache")))
	}
	if cmd.IsSet("cache-dir") {
		opts = append(opts, config.WithCacheDir(cmd.String("cache-dir")))
	}
	if cmd.IsSet("cache-format") {
		opts = append(opts, config.WithCacheFormat(serializer.Format(strings.ToLower(cmd.String("cache-format")))))
	}
	if cmd.IsSet("penalty") {
		rule, err := config.PenaltyRuleFor(cmd.String("penalty"))
		if err != nil {
			return nil, err
		}
		opts = append(opts, config.WithPenaltyRule(rule))
	}
	if cmd.IsSet("concurrency") {
		opts = append(opts, config.WithConcurrency(int(cmd.Int("concurrency"))))
	}

	cfg := config.NewConfig(opts...)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// loadSnapshot opens the configured cache and loads a snapshot through it.
func loadSnapshot(ctx context.Context, cmd *cli.Command, force bool) (*engine.Snapshot, error) {
	eng, _, closeFn, err := loadEngine(ctx, cmd, force)
	if err != nil {
		return nil, err
	}
	defer closeFn()
	return eng.Current(), nil
}

// loadEngine returns an engine with a loaded snapshot. The caller must call
// the returned func to release the cache.
func loadEngine(ctx context.Context, cmd *cli.Command, force bool) (*engine.Engine, *config.Config, func(), error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, nil, nil, err
	}
	store, err := engine.OpenStore(ctx, cfg)
	if err != nil {
		return nil, nil, nil, err
	}
	closeFn := func() {
		if err := store.Close(); err != nil {
			slog.Warn("failed to close cache", "error", err)
		}
	}

	eng := engine.New(cfg, store)
	if _, err := eng.Load(ctx, force); err != nil {
		closeFn()
		return nil, nil, nil, err
	}
	return eng, cfg, closeFn, nil
}

// parseInventory resolves a comma separated ingredient list. Unrecognized
// names fail with UNKNOWN_INGREDIENT.
func parseInventory(enc *ingredient.Encoder, input string) (ingredient.Cookjob, error) {
	mask, unknown := inventory.Parse(enc, input)
	if len(unknown) > 0 {
		return 0, cjerrors.NewWithContext(cjerrors.ErrCodeUnknownIngredient,
			fmt.Sprintf("unrecognized ingredients: %s", strings.Join(unknown, ", ")),
			map[string]any{"tokens": unknown})
	}
	return mask, nil
}

// parseRecord parses "hunger,stress,sell_value".
func parseRecord(s string) (stats.Record, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return stats.Record{}, cjerrors.New(cjerrors.ErrCodeInvalidRequest,
			fmt.Sprintf("expected hunger,stress,sell_value, got %q", s))
	}
	var vals [3]int
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return stats.Record{}, cjerrors.Wrap(cjerrors.ErrCodeInvalidRequest,
				fmt.Sprintf("invalid stat %q", p), err)
		}
		vals[i] = n
	}
	return stats.Record{Hunger: vals[0], Stress: vals[1], SellValue: vals[2]}, nil
}
