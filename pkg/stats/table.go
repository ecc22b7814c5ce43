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

package stats

import (
	"fmt"
	"slices"

	cjerrors "github.com/mchmarny/cookjob/pkg/errors"
	"github.com/mchmarny/cookjob/pkg/ingredient"
)

// Table holds one entry per cookjob in ascending cookjob order.
type Table struct {
	entries []Entry
	rule    PenaltyRule
}

// NewTable wraps entries loaded from a cache. Entries must be strictly
// ascending by cookjob.
func NewTable(entries []Entry, rule PenaltyRule) (*Table, error) {
	for i := 1; i < len(entries); i++ {
		if entries[i].Cookjob <= entries[i-1].Cookjob {
			return nil, cjerrors.New(cjerrors.ErrCodeInvalidRequest,
				fmt.Sprintf("stats entries are not strictly ascending at position %d", i))
		}
	}
	return &Table{entries: slices.Clone(entries), rule: rule}, nil
}

// Rule returns the penalty rule the table was computed with.
func (t *Table) Rule() PenaltyRule {
	return t.rule
}

// Len returns the number of entries.
func (t *Table) Len() int {
	return len(t.entries)
}

// Get returns the entry of job.
func (t *Table) Get(job ingredient.Cookjob) (Entry, bool) {
	i, ok := slices.BinarySearchFunc(t.entries, job, func(e Entry, j ingredient.Cookjob) int {
		switch {
		case e.Cookjob < j:
			return -1
		case e.Cookjob > j:
			return 1
		default:
			return 0
		}
	})
	if !ok {
		return Entry{}, false
	}
	return t.entries[i], true
}

// Entries returns a copy of all entries.
func (t *Table) Entries() []Entry {
	return slices.Clone(t.entries)
}

// Within returns the entries whose cookjob is a subset of avail.
func (t *Table) Within(avail ingredient.Cookjob) []Entry {
	out := make([]Entry, 0)
	for _, e := range t.entries {
		if e.Cookjob.Within(avail) {
			out = append(out, e)
		}
	}
	return out
}

// Known returns the entries whose ingredients all have stats.
func (t *Table) Known() []Entry {
	out := make([]Entry, 0)
	for _, e := range t.entries {
		if e.AllKnown {
			out = append(out, e)
		}
	}
	return out
}
