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

package cache

import (
	"fmt"
	"io"
	"slices"

	"github.com/cespare/xxhash/v2"
	"github.com/mchmarny/cookjob/pkg/grammar"
	"github.com/mchmarny/cookjob/pkg/ingredient"
	"github.com/mchmarny/cookjob/pkg/stats"
)

// IndexFingerprint hashes every input that shapes the index: catalog order,
// categories, recipe sources and grammar syntax.
func IndexFingerprint(enc *ingredient.Encoder, cats *ingredient.Categories, sources []grammar.Source,
	delimiter, marker string) string {
	h := xxhash.New()
	field(h, "catalog")
	for _, name := range enc.Names() {
		field(h, name)
	}
	field(h, "categories")
	if cats != nil {
		for _, name := range cats.Names() {
			field(h, name)
			for _, m := range cats.Members(name) {
				field(h, m)
			}
			field(h, "")
		}
	}
	field(h, "syntax", delimiter, marker)
	field(h, "recipes")
	for _, s := range sources {
		field(h, fmt.Sprint(s.ID), s.Name, s.Grammar)
	}
	return fmt.Sprintf("%016x", h.Sum64())
}

// StatsFingerprint hashes the index fingerprint, ingredient stats and the
// penalty rule.
func StatsFingerprint(indexFingerprint string, ing stats.Ingredients, rule stats.PenaltyRule) string {
	h := xxhash.New()
	field(h, "index", indexFingerprint)
	field(h, "rule", fmt.Sprintf("%+v", rule))

	names := make([]string, 0, len(ing))
	for name := range ing {
		names = append(names, name)
	}
	slices.Sort(names)
	for _, name := range names {
		field(h, name, fmt.Sprintf("%+v", ing[name]))
	}
	return fmt.Sprintf("%016x", h.Sum64())
}

// field writes length-prefixed values so that adjacent values cannot merge.
func field(w io.Writer, values ...string) {
	for _, v := range values {
		fmt.Fprintf(w, "%d:%s;", len(v), v)
	}
}
