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


// Package search provides BM25 retrieval over curated tabular datasets.
//
// The Engine type orchestrates a query end to end:
//   - Domain resolution, either explicit or by keyword auto-detection
//   - Lazy, cached per-domain inverted index construction
//   - BM25 ranking with deterministic tie-breaking
//   - Optional stack filtering and top-K truncation
//
// Indices are immutable once built and safe to share across concurrent
// searches. Warm prebuilds all domains on a worker pool for long-lived
// host processes.
package search
