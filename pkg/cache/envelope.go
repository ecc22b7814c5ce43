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
	"context"
	"log/slog"

	cjerrors "github.com/mchmarny/cookjob/pkg/errors"
	"github.com/mchmarny/cookjob/pkg/header"
	"github.com/mchmarny/cookjob/pkg/serializer"
)

// Envelope wraps a cached payload.
type Envelope[T any] struct {
	Header      header.Header `json:"header" yaml:"header"`
	Fingerprint string        `json:"fingerprint" yaml:"fingerprint"`
	Payload     T             `json:"payload" yaml:"payload"`
}

// Save encodes payload in an envelope and writes it under key.
func Save[T any](ctx context.Context, s Store, key string, kind header.Kind, fingerprint string, payload T) error {
	env := Envelope[T]{
		Header:      *header.New(header.WithKind(kind)),
		Fingerprint: fingerprint,
		Payload:     payload,
	}
	b, err := serializer.Marshal(s.Format(), env)
	if err != nil {
		return cjerrors.WrapWithContext(cjerrors.ErrCodeInternal, "failed to encode artifact", err,
			map[string]any{"key": key})
	}
	if err := s.Put(ctx, key, b); err != nil {
		return err
	}
	slog.Debug("artifact cached", slog.String("key", key), slog.Int("bytes", len(b)))
	return nil
}

// Load reads the artifact under key. It reports a miss when the record is
// absent, unreadable, of another kind or built from other inputs.
func Load[T any](ctx context.Context, s Store, key string, kind header.Kind, fingerprint string) (T, bool, error) {
	var zero T
	b, ok, err := s.Get(ctx, key)
	if err != nil {
		return zero, false, err
	}
	if !ok {
		cacheMisses.WithLabelValues(key, "absent").Inc()
		return zero, false, nil
	}

	var env Envelope[T]
	if err := serializer.Unmarshal(s.Format(), b, &env); err != nil {
		slog.Warn("discarding unreadable artifact", slog.String("key", key), slog.String("error", err.Error()))
		cacheMisses.WithLabelValues(key, "corrupt").Inc()
		return zero, false, nil
	}
	if !env.Header.Matches(kind) {
		cacheMisses.WithLabelValues(key, "kind").Inc()
		return zero, false, nil
	}
	if env.Fingerprint != fingerprint {
		slog.Debug("artifact is stale",
			slog.String("key", key),
			slog.String("cached", env.Fingerprint),
			slog.String("current", fingerprint))
		cacheMisses.WithLabelValues(key, "stale").Inc()
		return zero, false, nil
	}

	cacheHits.WithLabelValues(key).Inc()
	return env.Payload, true, nil
}
