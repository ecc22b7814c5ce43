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
	"errors"
	"fmt"
	"os"
	"path/filepath"

	cjerrors "github.com/mchmarny/cookjob/pkg/errors"
	"github.com/mchmarny/cookjob/pkg/serializer"
)

// FileStore keeps one file per key in a directory.
type FileStore struct {
	dir    string
	format serializer.Format
}

// NewFileStore creates a FileStore. Only JSON and YAML are accepted.
func NewFileStore(dir string, format serializer.Format) (*FileStore, error) {
	if format != serializer.FormatJSON && format != serializer.FormatYAML {
		return nil, cjerrors.New(cjerrors.ErrCodeInvalidRequest,
			fmt.Sprintf("unsupported cache format %q", format))
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, cjerrors.Wrap(cjerrors.ErrCodeInternal, "failed to create cache directory", err)
	}
	return &FileStore{dir: dir, format: format}, nil
}

// Path returns the file that holds key.
func (f *FileStore) Path(key string) string {
	return filepath.Join(f.dir, key+"."+f.format.Extension())
}

// Get implements Store.
func (f *FileStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	if err := ctx.Err(); err != nil {
		return nil, false, err
	}
	b, err := os.ReadFile(f.Path(key))
	if errors.Is(err, os.ErrNotExist) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, cjerrors.Wrap(cjerrors.ErrCodeInternal, "failed to read cache file", err)
	}
	return b, true, nil
}

// Put implements Store.
func (f *FileStore) Put(ctx context.Context, key string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := serializer.WriteToFile(f.Path(key), data); err != nil {
		return cjerrors.Wrap(cjerrors.ErrCodeInternal, "failed to write cache file", err)
	}
	return nil
}

// Format implements Store.
func (f *FileStore) Format() serializer.Format { return f.format }

// Close implements Store.
func (f *FileStore) Close() error { return nil }
