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
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/mchmarny/cookjob/pkg/version"
)

var apiRoutes = []string{
	"GET /v1/cookjobs",
	"GET /v1/explain",
	"GET /v1/isolate",
	"GET /v1/recipes",
}

func (s *Server) routes() http.Handler {
	mux := http.NewServeMux()

	// system endpoints bypass rate limiting
	mux.HandleFunc("/", s.handleDefault)
	mux.HandleFunc("/health", s.handleHealth)
	mux.HandleFunc("/ready", s.handleReady)
	mux.Handle("/metrics", promhttp.Handler())

	mux.HandleFunc("/v1/cookjobs", s.withMiddleware(s.handleCookjobs))
	mux.HandleFunc("/v1/explain", s.withMiddleware(s.handleExplain))
	mux.HandleFunc("/v1/isolate", s.withMiddleware(s.handleIsolate))
	mux.HandleFunc("/v1/recipes", s.withMiddleware(s.handleRecipes))

	return mux
}

// InfoResponse describes the service.
type InfoResponse struct {
	Name             string   `json:"name"`
	Version          string   `json:"version"`
	Ready            bool     `json:"ready"`
	IndexFingerprint string   `json:"indexFingerprint,omitempty"`
	StatsFingerprint string   `json:"statsFingerprint,omitempty"`
	Routes           []string `json:"routes"`
}

func (s *Server) handleDefault(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	resp := InfoResponse{
		Name:    name,
		Version: version.Get().Version,
		Ready:   s.isReady(),
		Routes:  apiRoutes,
	}
	if s.source != nil {
		if snap := s.source.Current(); snap != nil {
			resp.IndexFingerprint = snap.IndexFingerprint
			resp.StatsFingerprint = snap.StatsFingerprint
		}
	}
	respondJSON(w, http.StatusOK, resp)
}

// HealthResponse is the body of health and readiness replies.
type HealthResponse struct {
	Status string `json:"status"`
	Reason string `json:"reason,omitempty"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if !allowGet(w, r) {
		return
	}
	respondJSON(w, http.StatusOK, HealthResponse{Status: "healthy"})
}

func (s *Server) handleReady(w http.ResponseWriter, r *http.Request) {
	if !allowGet(w, r) {
		return
	}
	if !s.isReady() {
		respondJSON(w, http.StatusServiceUnavailable, HealthResponse{
			Status: "not_ready",
			Reason: "no snapshot loaded",
		})
		return
	}
	respondJSON(w, http.StatusOK, HealthResponse{Status: "ready"})
}

func allowGet(w http.ResponseWriter, r *http.Request) bool {
	if r.Method == http.MethodGet {
		return true
	}
	w.Header().Set("Allow", http.MethodGet)
	writeError(w, r, http.StatusMethodNotAllowed, ErrCodeMethodNotAllowed,
		"Method not allowed", false, map[string]any{"method": r.Method})
	return false
}
