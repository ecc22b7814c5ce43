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
	"testing"

	"github.com/urfave/cli/v3"

	cjerrors "github.com/mchmarny/cookjob/pkg/errors"
	"github.com/mchmarny/cookjob/pkg/ingredient"
	"github.com/mchmarny/cookjob/pkg/serializer"
	"github.com/mchmarny/cookjob/pkg/stats"
)

func TestParseOutputFormat(t *testing.T) {
	tests := []struct {
		name       string
		format     string
		wantFormat serializer.Format
		wantErr    bool
	}{
		{
			name:       "valid yaml format",
			format:     "yaml",
			wantFormat: serializer.FormatYAML,
		},
		{
			name:       "valid json format",
			format:     "JSON",
			wantFormat: serializer.FormatJSON,
		},
		{
			name:       "valid table format",
			format:     "table",
			wantFormat: serializer.FormatTable,
		},
		{
			name:    "invalid format csv",
			format:  "csv",
			wantErr: true,
		},
		{
			name:    "empty format",
			format:  "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := &cli.Command{
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "format",
						Value: tt.format,
					},
				},
				Action: func(_ context.Context, c *cli.Command) error {
					got, err := parseOutputFormat(c)
					if (err != nil) != tt.wantErr {
						t.Errorf("parseOutputFormat() error = %v, wantErr %v", err, tt.wantErr)
						return nil
					}
					if !tt.wantErr && got != tt.wantFormat {
						t.Errorf("parseOutputFormat() = %v, want %v", got, tt.wantFormat)
					}
					return nil
				},
			}

			if err := cmd.Run(context.Background(), []string{"test"}); err != nil {
				t.Fatalf("failed to run command: %v", err)
			}
		})
	}
}

func TestParseRecord(t *testing.T) {
	tests := []struct {
		in      string
		want    stats.Record
		wantErr bool
	}{
		{in: "100,35,155", want: stats.Record{Hunger: 100, Stress: 35, SellValue: 155}},
		{in: " 0, -4 , -12", want: stats.Record{Stress: -4, SellValue: -12}},
		{in: "1,2", wantErr: true},
		{in: "1,2,3,4", wantErr: true},
		{in: "a,b,c", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseRecord(tt.in)
			if tt.wantErr {
				if !cjerrors.Is(err, cjerrors.ErrCodeInvalidRequest) {
					t.Fatalf("parseRecord(%q) error = %v, want INVALID_REQUEST", tt.in, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseRecord(%q) unexpected error: %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("parseRecord(%q) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseInventory(t *testing.T) {
	enc, err := ingredient.NewEncoder([]string{"Cheese", "Ham", "Bacon"})
	if err != nil {
		t.Fatal(err)
	}

	got, err := parseInventory(enc, "ham, cheese")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 0b011 {
		t.Errorf("parseInventory() = %s, want 0x3", got)
	}

	got, err = parseInventory(enc, "all,-Ham")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 0b101 {
		t.Errorf("parseInventory() = %s, want 0x5", got)
	}

	if _, err := parseInventory(enc, "Ham,Unicorn"); !cjerrors.Is(err, cjerrors.ErrCodeUnknownIngredient) {
		t.Errorf("parseInventory() error = %v, want UNKNOWN_INGREDIENT", err)
	}
}
