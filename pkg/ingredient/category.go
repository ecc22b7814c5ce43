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
	"slices"
	"sort"

	cjerrors "github.com/mchmarny/cookjob/pkg/errors"
)

// Categories holds named groups of catalog ingredients.
type Categories struct {
	names   []string
	members map[string][]string
	masks   map[string]Cookjob
	of      map[string][]string
}

// NewCategories validates category definitions against the encoder.
// Member order is preserved and duplicates within a category are dropped.
func NewCategories(enc *Encoder, defs map[string][]string) (*Categories, error) {
	c := &Categories{
		names:   make([]string, 0, len(defs)),
		members: make(map[string][]string, len(defs)),
		masks:   make(map[string]Cookjob, len(defs)),
		of:      make(map[string][]string),
	}

	for name, list := range defs {
		if name == "" {
			return nil, cjerrors.New(cjerrors.ErrCodeInvalidRequest, "category name must not be empty")
		}
		if _, err := enc.Bit(name); err == nil {
			return nil, cjerrors.NewWithContext(cjerrors.ErrCodeInvalidRequest,
				fmt.Sprintf("category %q collides with an ingredient name", name), map[string]any{"category": name})
		}

		var mask Cookjob
		members := make([]string, 0, len(list))
		for _, m := range list {
			bit, err := enc.Bit(m)
			if err != nil {
				return nil, cjerrors.WrapWithContext(cjerrors.ErrCodeUnknownIngredient,
					fmt.Sprintf("category %q references an unknown ingredient", name), err,
					map[string]any{"category": name, "member": m})
			}
			if mask.Has(bit) {
				continue
			}
			mask |= bit
			members = append(members, m)
			c.of[m] = append(c.of[m], name)
		}

		c.names = append(c.names, name)
		c.members[name] = members
		c.masks[name] = mask
	}

	sort.Strings(c.names)
	for _, cats := range c.of {
		sort.Strings(cats)
	}
	return c, nil
}

// Has reports whether name is a category.
func (c *Categories) Has(name string) bool {
	_, ok := c.members[name]
	return ok
}

// Len returns the number of categories.
func (c *Categories) Len() int {
	return len(c.names)
}

// Names returns the category names in ascending order.
func (c *Categories) Names() []string {
	return slices.Clone(c.names)
}

// Members returns the members of a category in definition order, or nil.
func (c *Categories) Members(name string) []string {
	return slices.Clone(c.members[name])
}

// Mask returns the bitmask of a category's members, or zero.
func (c *Categories) Mask(name string) Cookjob {
	return c.masks[name]
}

// Of returns the categories an ingredient belongs to in ascending order.
func (c *Categories) Of(ingredient string) []string {
	return slices.Clone(c.of[ingredient])
}
