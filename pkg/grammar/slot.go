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

package grammar

import (
	"github.com/mchmarny/cookjob/pkg/ingredient"
)

// Kind tells whether a slot names one ingredient or a category.
type Kind int

const (
	// KindExact slots accept exactly one ingredient.
	KindExact Kind = iota
	// KindCategory slots accept any member of a category.
	KindCategory
)

// String returns the kind name.
func (k Kind) String() string {
	if k == KindCategory {
		return "category"
	}
	return "exact"
}

// Slot is one resolved grammar token.
type Slot struct {
	// Token is the ingredient or category name without the optional marker.
	Token string
	// Kind is exact or category.
	Kind Kind
	// Required is false for optional slots.
	Required bool
	// Choices are the one-hot ingredient bits the slot accepts, ascending.
	Choices []ingredient.Cookjob
}

// Mask returns the union of the slot choices.
func (s Slot) Mask() ingredient.Cookjob {
	var m ingredient.Cookjob
	for _, c := range s.Choices {
		m |= c
	}
	return m
}

// Source is a raw recipe record.
type Source struct {
	ID      int    `json:"id" yaml:"id"`
	Name    string `json:"name" yaml:"name"`
	Grammar string `json:"grammar" yaml:"grammar"`
}

// Profile counts a recipe's slots by kind and requirement.
type Profile struct {
	RequiredExact    int `json:"required_exact" yaml:"required_exact"`
	RequiredCategory int `json:"required_category" yaml:"required_category"`
	OptionalExact    int `json:"optional_exact" yaml:"optional_exact"`
	OptionalCategory int `json:"optional_category" yaml:"optional_category"`
}

// Required returns the number of required slots.
func (p Profile) Required() int {
	return p.RequiredExact + p.RequiredCategory
}

// Optional returns the number of optional slots.
func (p Profile) Optional() int {
	return p.OptionalExact + p.OptionalCategory
}

// Template is a parsed recipe.
type Template struct {
	ID      int
	Name    string
	Grammar string
	Slots   []Slot
}

// Profile returns the slot composition of the template.
func (t *Template) Profile() Profile {
	var p Profile
	for _, s := range t.Slots {
		switch {
		case s.Required && s.Kind == KindExact:
			p.RequiredExact++
		case s.Required:
			p.RequiredCategory++
		case s.Kind == KindExact:
			p.OptionalExact++
		default:
			p.OptionalCategory++
		}
	}
	return p
}

// RequiredSlots returns the required slots in grammar order.
func (t *Template) RequiredSlots() []Slot {
	out := make([]Slot, 0, len(t.Slots))
	for _, s := range t.Slots {
		if s.Required {
			out = append(out, s)
		}
	}
	return out
}
