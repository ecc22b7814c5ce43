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

package version

import (
	"errors"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in      string
		want    Semver
		wantErr error
	}{
		{"v1.2.3", Semver{1, 2, 3}, nil},
		{"1.2", Semver{1, 2, 0}, nil},
		{"7", Semver{7, 0, 0}, nil},
		{"v0.4.1-rc.1", Semver{0, 4, 1}, nil},
		{"1.0.0+build.5", Semver{1, 0, 0}, nil},
		{"", Semver{}, ErrEmptyVersion},
		{"1.2.3.4", Semver{}, ErrTooManyComponents},
		{"dev", Semver{}, ErrNonNumeric},
		{"1.-2", Semver{}, ErrNonNumeric},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := Parse(tt.in)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Parse(%q) error = %v, want %v", tt.in, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse(%q) unexpected error: %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("Parse(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestInfo(t *testing.T) {
	info := Get()
	if info.Version != "dev" {
		t.Errorf("Version = %q, want dev", info.Version)
	}
	if info.IsRelease() {
		t.Error("dev build reported as release")
	}
	if got := (Info{Version: "v1.0.0", Commit: "abc", Date: "today"}); !got.IsRelease() {
		t.Error("tagged build not reported as release")
	}
	if got := (Info{Version: "v1.0.0", Commit: "abc", Date: "today"}).String(); got != "v1.0.0 (commit: abc, built: today)" {
		t.Errorf("String() = %q", got)
	}
}

func TestSemverString(t *testing.T) {
	if got := (Semver{1, 2, 3}).String(); got != "v1.2.3" {
		t.Errorf("String() = %q, want v1.2.3", got)
	}
}
