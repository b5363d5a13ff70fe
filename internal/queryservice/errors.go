/*
 * Copyright 2025 Google LLC
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *    https://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */
package queryservice

import "fmt"

// ErrForbiddenOperation represents an attempted mutation through the
// read-only query path.
type ErrForbiddenOperation struct {
	Keyword string
}

// ErrQuerySyntax represents a parse or execution error reported by the store.
// The original store error is preserved in Err.
type ErrQuerySyntax struct {
	Msg string
	Err error
}

// ErrUnknownQuery represents a predefined query id outside the enumerated set.
type ErrUnknownQuery struct {
	ID string
}

// ErrValidation represents missing or out-of-range predefined query
// parameters.
type ErrValidation struct {
	Msg string
	Err error
}

func (e *ErrForbiddenOperation) Error() string {
	return fmt.Sprintf("forbidden operation: statement contains mutating keyword %q", e.Keyword)
}

func (e *ErrQuerySyntax) Error() string {
	return fmt.Sprintf("query error: %s: %v", e.Msg, e.Err)
}

func (e *ErrQuerySyntax) Unwrap() error {
	return e.Err
}

func (e *ErrUnknownQuery) Error() string {
	return fmt.Sprintf("unknown predefined query: %q", e.ID)
}

func (e *ErrValidation) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("validation error: %s: %v", e.Msg, e.Err)
	}
	return fmt.Sprintf("validation error: %s", e.Msg)
}

func (e *ErrValidation) Unwrap() error {
	return e.Err
}
