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

// Package grammar parses recipe grammars and expands them into cookjobs.
//
// A grammar is a list of slot tokens separated by "|". Each token names an
// ingredient or a category; a trailing "?" makes the slot optional:
//
//	Game|Salt?|Water
//
// Parsing resolves every token once into a Slot holding its candidate
// ingredient bits. Expand then takes the Cartesian product of the slot
// choices (optional slots add an "absent" choice), discards combinations that
// repeat an ingredient or fall outside 1..5 ingredients, and returns the
// distinct cookjobs in ascending order.
//
//	p := grammar.NewParser(enc, cats)
//	slots, err := p.Parse("Game|Salt?|Water")
//	jobs := grammar.Expand(slots) // 6 cookjobs
package grammar
