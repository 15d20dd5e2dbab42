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


package core

import "errors"

// Retrieval failure modes. These are the only errors a search is expected
// to surface to a caller; anything else is a bug.
var (
	// ErrEmptyQuery indicates the query text is blank or whitespace-only.
	ErrEmptyQuery = errors.New("query cannot be empty")

	// ErrDomainNotFound indicates an explicitly requested domain is not
	// among the registered domain names.
	ErrDomainNotFound = errors.New("domain not found")

	// ErrAmbiguousQuery indicates domain auto-detection found no keyword
	// evidence for any registered domain.
	ErrAmbiguousQuery = errors.New("cannot determine domain from query")
)
