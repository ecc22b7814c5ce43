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
	"math/bits"
)

// Cookjob is a set of ingredients encoded as a bitmask over the catalog.
type Cookjob uint64

// Count returns the number of ingredients in the cookjob.
func (c Cookjob) Count() int {
	return bits.OnesCount64(uint64(c))
}

// Has reports whether every bit of bit is present in c. A zero bit is never present.
func (c Cookjob) Has(bit Cookjob) bool {
	return bit != 0 && c&bit == bit
}

// Within reports whether c is a subset of avail.
func (c Cookjob) Within(avail Cookjob) bool {
	return c&^avail == 0
}

// IsSingle reports whether c holds exactly one ingredient bit.
func (c Cookjob) IsSingle() bool {
	return c != 0 && c&(c-1) == 0
}

// Bits returns the one-hot ingredient bits of c from low to high.
func (c Cookjob) Bits() []Cookjob {
	out := make([]Cookjob, 0, c.Count())
	for rest := c; rest != 0; rest &= rest - 1 {
		out = append(out, rest&-rest)
	}
	return out
}

// String renders the bitmask in hex.
func (c Cookjob) String() string {
	return fmt.Sprintf("%#x", uint64(c))
}

// position returns the catalog index of a single-bit cookjob.
func (c Cookjob) position() int {
	return bits.TrailingZeros64(uint64(c))
}
