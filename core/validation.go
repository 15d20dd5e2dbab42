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

import "strings"

// ValidateQuery validates a Query according to domain rules.
//
// Validation rules:
//   - Text must contain at least one non-whitespace character
//
// NOT validated here (resolved by the engine):
//   - Domain (checked against the registry when the search runs)
//   - Stack (an unknown stack value yields an empty result set, not
//     an error)
//   - Limit (zero and negative fall back to DefaultLimit)
func ValidateQuery(query *Query) error {
	if query == nil {
		return ErrEmptyQuery
	}

	if strings.TrimSpace(query.Text) == "" {
		return ErrEmptyQuery
	}

	return nil
}

// EffectiveLimit returns the query's result cap, substituting
// DefaultLimit when the query does not set a positive one.
func (q *Query) EffectiveLimit() int {
	if q.Limit <= 0 {
		return DefaultLimit
	}
	return q.Limit
}
