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

// Package inventory edits ingredient availability masks from short text
// commands such as "ham, cheese, -salt".
package inventory

import (
	"fmt"
	"strings"

	cjerrors "github.com/mchmarny/cookjob/pkg/errors"
	"github.com/mchmarny/cookjob/pkg/ingredient"
)

// Action is the outcome of one inventory token.
type Action string

const (
	ActionAdded        Action = "added"
	ActionRemoved      Action = "removed"
	ActionPresent      Action = "present"
	ActionAbsent       Action = "absent"
	ActionUnrecognized Action = "unrecognized"
	ActionCleared      Action = "cleared"
	ActionAll          Action = "all"
)

// Keywords.
const (
	KeywordClear = "clear"
	KeywordAll   = "all"
	RemovePrefix = "-"
)

// Change describes what one token did.
type Change struct {
	Token  string `json:"token" yaml:"token"`
	Name   string `json:"name,omitempty" yaml:"name,omitempty"`
	Action Action `json:"action" yaml:"action"`
}

// Apply applies comma separated tokens to mask. A plain name adds the
// ingredient, a "-" prefixed name removes it, "clear" empties the mask and
// "all" selects the whole catalog. Names resolve through Encoder.Lookup.
func Apply(enc *ingredient.Encoder, input string, mask ingredient.Cookjob) (ingredient.Cookjob, []Change) {
	changes := make([]Change, 0)
	for _, raw := range strings.Split(input, ",") {
		tok := strings.TrimSpace(raw)
		if tok == "" {
			continue
		}

		switch strings.ToLower(tok) {
		case KeywordClear:
			mask = 0
			changes = append(changes, Change{Token: tok, Action: ActionCleared})
			continue
		case KeywordAll:
			mask = enc.All()
			changes = append(changes, Change{Token: tok, Action: ActionAll})
			continue
		}

		remove := strings.HasPrefix(tok, RemovePrefix)
		name, ok := enc.Lookup(strings.TrimPrefix(tok, RemovePrefix))
		if !ok {
			changes = append(changes, Change{Token: tok, Action: ActionUnrecognized})
			continue
		}
		bit, _ := enc.Bit(name)

		c := Change{Token: tok, Name: name}
		switch {
		case remove && mask.Has(bit):
			mask &^= bit
			c.Action = ActionRemoved
		case remove:
			c.Action = ActionAbsent
		case mask.Has(bit):
			c.Action = ActionPresent
		default:
			mask |= bit
			c.Action = ActionAdded
		}
		changes = append(changes, c)
	}
	return mask, changes
}

// Parse builds a mask from scratch and returns the tokens that did not
// resolve to an ingredient.
func Parse(enc *ingredient.Encoder, input string) (ingredient.Cookjob, []string) {
	mask, changes := Apply(enc, input, 0)
	var bad []string
	for _, c := range changes {
		if c.Action == ActionUnrecognized {
			bad = append(bad, c.Token)
		}
	}
	return mask, bad
}

// ParseCookjob resolves a comma separated list of ingredient names into a
// cookjob. Unlike Parse it accepts names only: the inventory keywords and
// the removal prefix fail with INVALID_REQUEST, unknown names with
// UNKNOWN_INGREDIENT.
func ParseCookjob(enc *ingredient.Encoder, input string) (ingredient.Cookjob, error) {
	var job ingredient.Cookjob
	var unknown []string
	for _, raw := range strings.Split(input, ",") {
		tok := strings.TrimSpace(raw)
		if tok == "" {
			continue
		}
		switch lower := strings.ToLower(tok); {
		case lower == KeywordClear, lower == KeywordAll, strings.HasPrefix(tok, RemovePrefix):
			return 0, cjerrors.NewWithContext(cjerrors.ErrCodeInvalidRequest,
				fmt.Sprintf("%q is not an ingredient name", tok), map[string]any{"token": tok})
		}

		name, ok := enc.Lookup(tok)
		if !ok {
			unknown = append(unknown, tok)
			continue
		}
		bit, _ := enc.Bit(name)
		job |= bit
	}

	if len(unknown) > 0 {
		return 0, cjerrors.NewWithContext(cjerrors.ErrCodeUnknownIngredient,
			fmt.Sprintf("unrecognized ingredients: %s", strings.Join(unknown, ", ")),
			map[string]any{"tokens": unknown})
	}
	if job == 0 {
		return 0, cjerrors.New(cjerrors.ErrCodeInvalidRequest, "cookjob has no ingredients")
	}
	return job, nil
}
