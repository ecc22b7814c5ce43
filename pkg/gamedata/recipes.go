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

package gamedata

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	cjerrors "github.com/mchmarny/cookjob/pkg/errors"
	"github.com/mchmarny/cookjob/pkg/grammar"
)

// Recipe CSV column headers.
const (
	ColumnID      = "Recipe"
	ColumnName    = "Name"
	ColumnGrammar = "Ingredient"
)

// LoadRecipes reads the recipe CSV at path.
func LoadRecipes(path string) ([]grammar.Source, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, cjerrors.WrapWithContext(cjerrors.ErrCodeNotFound, "failed to open recipes", err,
			map[string]any{"path": path})
	}
	defer f.Close()

	sources, err := ParseRecipes(f)
	if err != nil {
		return nil, cjerrors.WrapWithContext(cjerrors.ErrCodeInvalidRequest, "failed to parse recipes", err,
			map[string]any{"path": path})
	}
	return sources, nil
}

// ParseRecipes reads recipe rows from CSV. Rows whose id is not an integer
// are skipped.
func ParseRecipes(r io.Reader) ([]grammar.Source, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return nil, cjerrors.Wrap(cjerrors.ErrCodeInvalidRequest, "missing header row", err)
	}
	cols := map[string]int{}
	for i, h := range header {
		cols[strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))] = i
	}
	for _, want := range []string{ColumnID, ColumnName, ColumnGrammar} {
		if _, ok := cols[want]; !ok {
			return nil, cjerrors.New(cjerrors.ErrCodeInvalidRequest, fmt.Sprintf("missing column %q", want))
		}
	}

	field := func(row []string, col string) string {
		if i := cols[col]; i < len(row) {
			return strings.TrimSpace(row[i])
		}
		return ""
	}

	var out []grammar.Source
	for line := 2; ; line++ {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, cjerrors.Wrap(cjerrors.ErrCodeInvalidRequest, fmt.Sprintf("malformed row %d", line), err)
		}

		id, err := strconv.Atoi(field(row, ColumnID))
		if err != nil {
			slog.Warn("skipping recipe row with non-integer id",
				slog.Int("line", line),
				slog.String("id", field(row, ColumnID)))
			continue
		}
		out = append(out, grammar.Source{
			ID:      id,
			Name:    field(row, ColumnName),
			Grammar: field(row, ColumnGrammar),
		})
	}
	return out, nil
}
