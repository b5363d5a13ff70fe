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
package importer

import "fmt"

// ErrValidation represents errors caused by a malformed dataset: an empty
// name, or a name that cannot be sanitized into a valid identifier.
type ErrValidation struct {
	Msg string
	Err error
}

// ErrStorage represents failures of the underlying store while writing a
// table. These abort the whole load; nothing is committed.
type ErrStorage struct {
	Msg string
	Err error
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

func (e *ErrStorage) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("storage error: %s: %v", e.Msg, e.Err)
	}
	return fmt.Sprintf("storage error: %s", e.Msg)
}

func (e *ErrStorage) Unwrap() error {
	return e.Err
}
