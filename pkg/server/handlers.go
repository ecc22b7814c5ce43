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

package server

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/mchmarny/cookjob/pkg/engine"
	cjerrors "github.com/mchmarny/cookjob/pkg/errors"
	"github.com/mchmarny/cookjob/pkg/ingredient"
	"github.com/mchmarny/cookjob/pkg/inventory"
	"github.com/mchmarny/cookjob/pkg/stats"
)

// CookjobsResponse is the reply of /v1/cookjobs.
type CookjobsResponse struct {
	Have    []string      `json:"have"`
	Count   int           `json:"count"`
	Entries []stats.Entry `json:"entries"`
}

// IsolateResponse is the reply of /v1/isolate.
type IsolateResponse struct {
	Ingredient string                 `json:"ingredient"`
	Pairs      []engine.IsolationPair `json:"pairs"`
}

// snapshot returns the current snapshot, or replies 503 and returns nil.
func (s *Server) snapshot(w http.ResponseWriter, r *http.Request) *engine.Snapshot {
	var snap *engine.Snapshot
	if s.source != nil {
		snap = s.source.Current()
	}
	if snap == nil {
		writeError(w, r, http.StatusServiceUnavailable, ErrCodeServiceUnavailable,
			"No snapshot loaded", true, nil)
	}
	return snap
}

// ingredients parses an ingredient list query parameter.
func ingredients(enc *ingredient.Encoder, r *http.Request, param string) (ingredient.Cookjob, error) {
	mask, unknown := inventory.Parse(enc, r.URL.Query().Get(param))
	if len(unknown) > 0 {
		return 0, cjerrors.NewWithContext(cjerrors.ErrCodeUnknownIngredient,
			fmt.Sprintf("unrecognized ingredients: %s", strings.Join(unknown, ", ")),
			map[string]any{"param": param, "tokens": unknown})
	}
	return mask, nil
}

func required(r *http.Request, param string) error {
	if strings.TrimSpace(r.URL.Query().Get(param)) == "" {
		return cjerrors.NewWithContext(cjerrors.ErrCodeInvalidRequest,
			fmt.Sprintf("query parameter %q is required", param), map[string]any{"param": param})
	}
	return nil
}

func (s *Server) handleCookjobs(w http.ResponseWriter, r *http.Request) {
	if !allowGet(w, r) {
		return
	}
	snap := s.snapshot(w, r)
	if snap == nil {
		return
	}

	avail, err := ingredients(snap.Encoder(), r, "have")
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	knownOnly := false
	if v := r.URL.Query().Get("known_only"); v != "" {
		if knownOnly, err = strconv.ParseBool(v); err != nil {
			writeDomainError(w, r, cjerrors.Wrap(cjerrors.ErrCodeInvalidRequest, "invalid known_only", err))
			return
		}
	}

	entries := snap.Craftable(avail, knownOnly)
	respondJSON(w, http.StatusOK, CookjobsResponse{
		Have:    snap.Encoder().Decode(avail),
		Count:   len(entries),
		Entries: entries,
	})
}

func (s *Server) handleExplain(w http.ResponseWriter, r *http.Request) {
	if !allowGet(w, r) {
		return
	}
	if err := required(r, "cookjob"); err != nil {
		writeDomainError(w, r, err)
		return
	}
	snap := s.snapshot(w, r)
	if snap == nil {
		return
	}

	job, err := inventory.ParseCookjob(snap.Encoder(), r.URL.Query().Get("cookjob"))
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	ex, err := snap.Explain(job)
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, ex)
}

func (s *Server) handleIsolate(w http.ResponseWriter, r *http.Request) {
	if !allowGet(w, r) {
		return
	}
	if err := required(r, "ingredient"); err != nil {
		writeDomainError(w, r, err)
		return
	}
	snap := s.snapshot(w, r)
	if snap == nil {
		return
	}

	avail, err := ingredients(snap.Encoder(), r, "have")
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	name := r.URL.Query().Get("ingredient")
	if resolved, ok := snap.Encoder().Lookup(name); ok {
		name = resolved
	}
	pairs, err := snap.Isolate(name, avail)
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, IsolateResponse{Ingredient: name, Pairs: pairs})
}

func (s *Server) handleRecipes(w http.ResponseWriter, r *http.Request) {
	if !allowGet(w, r) {
		return
	}
	snap := s.snapshot(w, r)
	if snap == nil {
		return
	}
	respondJSON(w, http.StatusOK, snap.Recipes())
}
