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
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	cjerrors "github.com/mchmarny/cookjob/pkg/errors"
	"github.com/mchmarny/cookjob/pkg/serializer"
)

// Codes for failures raised by the server itself. Domain failures carry
// the code of their StructuredError.
const (
	ErrCodeRateLimitExceeded  = "RATE_LIMIT_EXCEEDED"
	ErrCodeMethodNotAllowed   = "METHOD_NOT_ALLOWED"
	ErrCodeServiceUnavailable = "SERVICE_UNAVAILABLE"
)

// ErrorResponse is the body of every error reply.
type ErrorResponse struct {
	Code      string         `json:"code"`
	Message   string         `json:"message"`
	Details   map[string]any `json:"details,omitempty"`
	RequestID string         `json:"requestId"`
	Timestamp time.Time      `json:"timestamp"`
	Retryable bool           `json:"retryable"`
}

func writeError(w http.ResponseWriter, r *http.Request, statusCode int,
	code, message string, retryable bool, details map[string]any) {

	requestID, _ := r.Context().Value(contextKeyRequestID).(string)
	if requestID == "" {
		requestID = uuid.New().String()
	}

	respondJSON(w, statusCode, ErrorResponse{
		Code:      code,
		Message:   message,
		Details:   details,
		RequestID: requestID,
		Timestamp: time.Now().UTC(),
		Retryable: retryable,
	})
}

// writeDomainError maps a structured error to its HTTP status.
func writeDomainError(w http.ResponseWriter, r *http.Request, err error) {
	var se *cjerrors.StructuredError
	if !errors.As(err, &se) {
		writeError(w, r, http.StatusInternalServerError, string(cjerrors.ErrCodeInternal), err.Error(), true, nil)
		return
	}
	status := statusFor(se.Code)
	writeError(w, r, status, string(se.Code), se.Message, status >= http.StatusInternalServerError, se.Context)
}

func statusFor(code cjerrors.ErrorCode) int {
	switch code {
	case cjerrors.ErrCodeUnknownIngredient, cjerrors.ErrCodeUnresolvedToken,
		cjerrors.ErrCodeInvalidBit, cjerrors.ErrCodeInvalidRequest:
		return http.StatusBadRequest
	case cjerrors.ErrCodeUnindexedCookjob, cjerrors.ErrCodeNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func respondJSON(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := serializer.NewWriter(serializer.FormatJSON, w).Serialize(context.Background(), data); err != nil {
		slog.Error("failed to encode JSON response", "error", err)
	}
}
