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

package ingredient

import (
	"fmt"
	"strings"

	"github.com/mchmarny/cookjob/pkg/defaults"
	cjerrors "github.com/mchmarny/cookjob/pkg/errors"
	"golang.org/x/text/cases"
)

// Encoder maps catalog ingredient names to bits and back.
type Encoder struct {
	names  []string
	index  map[string]int
	folded []string
}

// NewEncoder creates an encoder for the given catalog. Bit i belongs to
// catalog[i]. Names must be unique and non-empty, and the catalog may hold at
// most 64 ingredients.
func NewEncoder(catalog []string) (*Encoder, error) {
	if len(catalog) > defaults.MaxCatalogSize {
		return nil, cjerrors.NewWithContext(cjerrors.ErrCodeInvalidRequest,
			fmt.Sprintf("catalog holds %d ingredients, at most %d are supported", len(catalog), defaults.MaxCatalogSize),
			map[string]any{"size": len(catalog)})
	}

	fold := cases.Fold()
	e := &Encoder{
		names:  make([]string, len(catalog)),
		index:  make(map[string]int, len(catalog)),
		folded: make([]string, len(catalog)),
	}
	for i, name := range catalog {
		if name == "" {
			return nil, cjerrors.NewWithContext(cjerrors.ErrCodeInvalidRequest,
				"catalog contains an empty ingredient name", map[string]any{"position": i})
		}
		if _, dup := e.index[name]; dup {
			return nil, cjerrors.NewWithContext(cjerrors.ErrCodeInvalidRequest,
				fmt.Sprintf("duplicate ingredient %q in catalog", name), map[string]any{"name": name})
		}
		e.names[i] = name
		e.index[name] = i
		e.folded[i] = fold.String(name)
	}
	return e, nil
}

// Len returns the catalog size.
func (e *Encoder) Len() int {
	return len(e.names)
}

// Names returns a copy of the catalog in bit order.
func (e *Encoder) Names() []string {
	out := make([]string, len(e.names))
	copy(out, e.names)
	return out
}

// All returns the cookjob holding every catalog ingredient.
func (e *Encoder) All() Cookjob {
	if len(e.names) == 64 {
		return ^Cookjob(0)
	}
	return Cookjob(1)<<len(e.names) - 1
}

// Bit returns the one-hot bit of the named ingredient.
func (e *Encoder) Bit(name string) (Cookjob, error) {
	i, ok := e.index[name]
	if !ok {
		return 0, cjerrors.NewWithContext(cjerrors.ErrCodeUnknownIngredient,
			fmt.Sprintf("unknown ingredient %q", name), map[string]any{"name": name})
	}
	return Cookjob(1) << i, nil
}

// Name returns the ingredient owning a single in-range bit.
func (e *Encoder) Name(bit Cookjob) (string, error) {
	if !bit.IsSingle() || bit.position() >= len(e.names) {
		return "", cjerrors.NewWithContext(cjerrors.ErrCodeInvalidBit,
			fmt.Sprintf("bit %s is not a single catalog ingredient", bit), map[string]any{"bit": uint64(bit)})
	}
	return e.names[bit.position()], nil
}

// Encode ORs the bits of names. The first unknown name fails the whole call.
func (e *Encoder) Encode(names ...string) (Cookjob, error) {
	var job Cookjob
	for _, name := range names {
		bit, err := e.Bit(name)
		if err != nil {
			return 0, err
		}
		job |= bit
	}
	return job, nil
}

// Decode returns the names of the set bits of job, low bit first.
// Bits outside the catalog are ignored.
func (e *Encoder) Decode(job Cookjob) []string {
	out := make([]string, 0, job.Count())
	for _, bit := range job.Bits() {
		if p := bit.position(); p < len(e.names) {
			out = append(out, e.names[p])
		}
	}
	return out
}

// Contains reports whether job includes the named ingredient.
func (e *Encoder) Contains(job Cookjob, name string) (bool, error) {
	bit, err := e.Bit(name)
	if err != nil {
		return false, err
	}
	return job.Has(bit), nil
}

// Lookup resolves user input to a catalog name. It tries an exact match,
// then a case-insensitive match, then a unique case-insensitive prefix.
func (e *Encoder) Lookup(input string) (string, bool) {
	input = strings.TrimSpace(input)
	if input == "" {
		return "", false
	}
	if _, ok := e.index[input]; ok {
		return input, true
	}

	want := cases.Fold().String(input)
	for i, f := range e.folded {
		if f == want {
			return e.names[i], true
		}
	}

	match := -1
	for i, f := range e.folded {
		if !strings.HasPrefix(f, want) {
			continue
		}
		if match >= 0 {
			return "", false
		}
		match = i
	}
	if match < 0 {
		return "", false
	}
	return e.names[match], true
}
