// Copyright 2025 Poiesic Systems
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


// Package dataset provides the domain registry and record loading.
//
// A Registry is an immutable configuration table mapping each domain
// name to its dataset file, its column schema (search columns, output
// columns, optional stack column), and the keyword set used for domain
// auto-detection. Registries load from YAML; DefaultRegistry returns
// the registry for the curated datasets embedded in the binary.
//
// A Loader reads one domain's CSV dataset from any fs.FS into records,
// preserving row order. Row position is each record's stable identifier.
package dataset
