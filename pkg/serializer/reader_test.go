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

package serializer

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

type settings struct {
	Data        string `json:"data" yaml:"data"`
	Concurrency int    `json:"concurrency" yaml:"concurrency"`
}

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path string
		want Format
	}{
		{"cookjob.json", FormatJSON},
		{"cookjob.YAML", FormatYAML},
		{"cookjob.yml", FormatYAML},
		{"report.txt", FormatTable},
		{"report.table", FormatTable},
		{"cookjob", FormatJSON},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := FormatFromPath(tt.path); got != tt.want {
				t.Errorf("FormatFromPath(%q) = %s, want %s", tt.path, got, tt.want)
			}
		})
	}
}

func TestNewReader(t *testing.T) {
	tests := []struct {
		name    string
		format  Format
		wantErr bool
	}{
		{"json", FormatJSON, false},
		{"yaml", FormatYAML, false},
		{"table", FormatTable, true},
		{"unknown", Format("xml"), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewReader(tt.format, strings.NewReader("{}"))
			if (err != nil) != tt.wantErr {
				t.Errorf("NewReader() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestReader_Deserialize(t *testing.T) {
	tests := []struct {
		name   string
		format Format
		input  string
	}{
		{"json", FormatJSON, `{"data": "data.json", "concurrency": 4}`},
		{"yaml", FormatYAML, "data: data.json\nconcurrency: 4\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got settings
			if err := Unmarshal(tt.format, []byte(tt.input), &got); err != nil {
				t.Fatalf("Unmarshal failed: %v", err)
			}
			if got.Data != "data.json" || got.Concurrency != 4 {
				t.Errorf("unexpected result: %+v", got)
			}
		})
	}

	var bad settings
	if err := Unmarshal(FormatJSON, []byte("{"), &bad); err == nil {
		t.Error("expected error for malformed JSON")
	}
}

func TestReader_NilChecks(t *testing.T) {
	var r *Reader
	if err := r.Deserialize(&settings{}); err == nil {
		t.Error("expected error for nil reader")
	}
	if err := r.Close(); err != nil {
		t.Errorf("Close on nil reader returned %v", err)
	}

	r, err := NewReader(FormatJSON, nil)
	if err != nil {
		t.Fatalf("NewReader failed: %v", err)
	}
	if err := r.Deserialize(&settings{}); err == nil {
		t.Error("expected error for nil input")
	}
}

func TestFromFile(t *testing.T) {
	dir := t.TempDir()
	yamlPath := filepath.Join(dir, "cookjob.yaml")
	if err := os.WriteFile(yamlPath, []byte("data: game.json\nconcurrency: 8\n"), 0o600); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	got, err := FromFile[settings](yamlPath)
	if err != nil {
		t.Fatalf("FromFile failed: %v", err)
	}
	if got.Data != "game.json" || got.Concurrency != 8 {
		t.Errorf("unexpected result: %+v", got)
	}

	if _, err := FromFile[settings](filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	} else if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected os.ErrNotExist in chain, got %v", err)
	}

	txt := filepath.Join(dir, "cookjob.txt")
	if err := os.WriteFile(txt, []byte("x"), 0o600); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	if _, err := FromFile[settings](txt); err == nil {
		t.Error("expected error for table format")
	}
}

func TestNewFileReaderAuto(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cookjob.json")
	if err := os.WriteFile(path, []byte(`{"concurrency": 2}`), 0o600); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	r, err := NewFileReaderAuto(path)
	if err != nil {
		t.Fatalf("NewFileReaderAuto failed: %v", err)
	}
	var got settings
	if err := r.Deserialize(&got); err != nil {
		t.Fatalf("Deserialize failed: %v", err)
	}
	if got.Concurrency != 2 {
		t.Errorf("unexpected result: %+v", got)
	}
	if err := r.Close(); err != nil {
		t.Errorf("Close failed: %v", err)
	}
	if err := r.Close(); err != nil {
		t.Errorf("second Close failed: %v", err)
	}
}
