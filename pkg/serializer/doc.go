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

// Package serializer reads and writes cookjob data in JSON, YAML and table form.
//
// Writers render query results and reports for the CLI:
//
//	w := serializer.NewFileWriterOrStdout(serializer.FormatTable, path)
//	defer w.Close()
//	if err := w.Serialize(ctx, entries); err != nil {
//	    return err
//	}
//
// A slice of structs renders as a table with one row per element and one
// column per exported field. Any other value is flattened into FIELD/VALUE
// rows with dotted keys.
//
// Readers load configuration files with format detection by extension:
//
//	cfg, err := serializer.FromFile[config.File]("cookjob.yaml")
//
// Marshal and Unmarshal are the byte-level helpers the cache layer uses.
// Both encoders emit map keys in sorted order, so equal values always
// produce equal bytes.
package serializer
