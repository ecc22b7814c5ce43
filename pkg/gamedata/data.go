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
	"fmt"
	"os"

	cjerrors "github.com/mchmarny/cookjob/pkg/errors"
	"github.com/mchmarny/cookjob/pkg/stats"
	"github.com/tidwall/gjson"
)

// Data is the parsed game data file.
type Data struct {
	// Catalog is the ingredient catalog in bit order.
	Catalog []string
	// Categories maps category names to their members.
	Categories map[string][]string
	// CategoryOrder lists category names in file order.
	CategoryOrder []string
	// Ingredients holds per-ingredient stats.
	Ingredients stats.Ingredients
}

// LoadData reads and parses the game data file at path.
func LoadData(path string) (*Data, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, cjerrors.WrapWithContext(cjerrors.ErrCodeNotFound, "failed to read game data", err,
			map[string]any{"path": path})
	}
	d, err := ParseData(raw)
	if err != nil {
		return nil, cjerrors.WrapWithContext(cjerrors.ErrCodeInvalidRequest, "failed to parse game data", err,
			map[string]any{"path": path})
	}
	return d, nil
}

// ParseData parses game data JSON.
func ParseData(raw []byte) (*Data, error) {
	if !gjson.ValidBytes(raw) {
		return nil, cjerrors.New(cjerrors.ErrCodeInvalidRequest, "game data is not valid JSON")
	}

	catalog := gjson.GetBytes(raw, "valid_ingredients")
	if !catalog.IsArray() {
		return nil, cjerrors.New(cjerrors.ErrCodeInvalidRequest, "valid_ingredients must be an array")
	}

	d := &Data{
		Categories:  make(map[string][]string),
		Ingredients: make(stats.Ingredients),
	}
	catalog.ForEach(func(_, v gjson.Result) bool {
		d.Catalog = append(d.Catalog, v.String())
		return true
	})

	var parseErr error
	gjson.GetBytes(raw, "categories").ForEach(func(k, v gjson.Result) bool {
		if !v.IsArray() {
			parseErr = cjerrors.New(cjerrors.ErrCodeInvalidRequest,
				fmt.Sprintf("category %q must be an array", k.String()))
			return false
		}
		members := make([]string, 0)
		v.ForEach(func(_, m gjson.Result) bool {
			members = append(members, m.String())
			return true
		})
		d.Categories[k.String()] = members
		d.CategoryOrder = append(d.CategoryOrder, k.String())
		return true
	})
	if parseErr != nil {
		return nil, parseErr
	}

	gjson.GetBytes(raw, "ingredient_stats").ForEach(func(k, v gjson.Result) bool {
		h, s, sv := v.Get("hunger"), v.Get("stress"), v.Get("sell_value")
		d.Ingredients[k.String()] = stats.Record{
			Hunger:    int(h.Int()),
			Stress:    int(s.Int()),
			SellValue: int(sv.Int()),
			Partial:   !h.Exists() || !s.Exists() || !sv.Exists(),
		}
		return true
	})

	return d, nil
}
