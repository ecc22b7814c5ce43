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
	"fmt"
	"strings"

	"github.com/mchmarny/cookjob/pkg/defaults"
	cjerrors "github.com/mchmarny/cookjob/pkg/errors"
	"github.com/mchmarny/cookjob/pkg/ingredient"
)

// Parser resolves grammar tokens against a catalog and its categories.
type Parser struct {
	enc       *ingredient.Encoder
	cats      *ingredient.Categories
	delimiter string
	marker    string
}

// Option configures a Parser.
type Option func(*Parser)

// WithDelimiter sets the slot delimiter.
func WithDelimiter(d string) Option {
	return func(p *Parser) {
		if d != "" {
			p.delimiter = d
		}
	}
}

// WithOptionalMarker sets the suffix that marks an optional slot.
func WithOptionalMarker(m string) Option {
	return func(p *Parser) {
		if m != "" {
			p.marker = m
		}
	}
}

// NewParser creates a parser over enc and cats.
func NewParser(enc *ingredient.Encoder, cats *ingredient.Categories, opts ...Option) *Parser {
	p := &Parser{
		enc:       enc,
		cats:      cats,
		delimiter: defaults.GrammarDelimiter,
		marker:    defaults.OptionalMarker,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Encoder returns the parser's ingredient encoder.
func (p *Parser) Encoder() *ingredient.Encoder { return p.enc }

// Categories returns the parser's categories.
func (p *Parser) Categories() *ingredient.Categories { return p.cats }

// Syntax returns the delimiter and optional marker in use.
func (p *Parser) Syntax() (delimiter, marker string) { return p.delimiter, p.marker }

// Parse resolves a grammar into slots. A token that names neither an
// ingredient nor a category fails with UNRESOLVED_TOKEN.
func (p *Parser) Parse(grammar string) ([]Slot, error) {
	tokens := strings.Split(grammar, p.delimiter)
	slots := make([]Slot, 0, len(tokens))
	for pos, raw := range tokens {
		tok := strings.TrimSpace(raw)
		required := true
		if strings.HasSuffix(tok, p.marker) {
			required = false
			tok = strings.TrimSpace(strings.TrimSuffix(tok, p.marker))
		}

		slot, err := p.resolve(tok)
		if err != nil {
			return nil, cjerrors.WrapWithContext(cjerrors.ErrCodeUnresolvedToken,
				fmt.Sprintf("token %q matches no ingredient or category", tok), err,
				map[string]any{"token": tok, "position": pos})
		}
		slot.Required = required
		slots = append(slots, slot)
	}
	return slots, nil
}

func (p *Parser) resolve(tok string) (Slot, error) {
	if tok == "" {
		return Slot{}, cjerrors.New(cjerrors.ErrCodeInvalidRequest, "empty token")
	}
	if bit, err := p.enc.Bit(tok); err == nil {
		return Slot{Token: tok, Kind: KindExact, Choices: []ingredient.Cookjob{bit}}, nil
	}
	if p.cats != nil && p.cats.Has(tok) {
		return Slot{Token: tok, Kind: KindCategory, Choices: p.cats.Mask(tok).Bits()}, nil
	}
	return Slot{}, cjerrors.New(cjerrors.ErrCodeNotFound, "unknown name")
}

// Template parses src into a Template.
func (p *Parser) Template(src Source) (*Template, error) {
	slots, err := p.Parse(src.Grammar)
	if err != nil {
		return nil, err
	}
	return &Template{
		ID:      src.ID,
		Name:    src.Name,
		Grammar: src.Grammar,
		Slots:   slots,
	}, nil
}
