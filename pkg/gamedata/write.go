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
	"os"
	"path/filepath"
	"strings"

	cjerrors "github.com/mchmarny/cookjob/pkg/errors"
	"github.com/mchmarny/cookjob/pkg/stats"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// SetIngredientStats returns raw with the stats of name replaced by rec.
// Other keys and the rest of the document are left as they are.
func SetIngredientStats(raw []byte, name string, rec stats.Record) ([]byte, error) {
	if !gjson.ValidBytes(raw) {
		return nil, cjerrors.New(cjerrors.ErrCodeInvalidRequest, "game data is not valid JSON")
	}
	if strings.TrimSpace(name) == "" {
		return nil, cjerrors.New(cjerrors.ErrCodeInvalidRequest, "ingredient name is required")
	}

	base := "ingredient_stats." + escapePath(name)
	out := raw
	var err error
	for _, f := range []struct {
		key string
		val int
	}{
		{"hunger", rec.Hunger},
		{"stress", rec.Stress},
		{"sell_value", rec.SellValue},
	} {
		if out, err = sjson.SetBytes(out, base+"."+f.key, f.val); err != nil {
			return nil, cjerrors.WrapWithContext(cjerrors.ErrCodeInternal, "failed to update game data", err,
				map[string]any{"ingredient": name, "field": f.key})
		}
	}
	return out, nil
}

// WriteIngredientStats stores rec as the stats of name in the game data
// file at path. The file is replaced atomically.
func WriteIngredientStats(path, name string, rec stats.Record) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return cjerrors.WrapWithContext(cjerrors.ErrCodeNotFound, "failed to read game data", err,
			map[string]any{"path": path})
	}
	out, err := SetIngredientStats(raw, name, rec)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+"-*")
	if err != nil {
		return cjerrors.WrapWithContext(cjerrors.ErrCodeInternal, "failed to write game data", err,
			map[string]any{"path": path})
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(out); err != nil {
		tmp.Close()
		return cjerrors.WrapWithContext(cjerrors.ErrCodeInternal, "failed to write game data", err,
			map[string]any{"path": path})
	}
	if err := tmp.Close(); err != nil {
		return cjerrors.WrapWithContext(cjerrors.ErrCodeInternal, "failed to write game data", err,
			map[string]any{"path": path})
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return cjerrors.WrapWithContext(cjerrors.ErrCodeInternal, "failed to replace game data", err,
			map[string]any{"path": path})
	}
	return nil
}

// escapePath escapes the path separator and wildcards in a key.
func escapePath(key string) string {
	var b strings.Builder
	for _, r := range key {
		switch r {
		case '.', '*', '?', '\\':
			b.WriteRune('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}
