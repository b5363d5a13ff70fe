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
package scraper

import "fmt"

// ErrFetch represents a transport-level failure retrieving a page. Fetch
// errors are retryable.
type ErrFetch struct {
	URL string
	Err error
}

// ErrParse represents a page whose markup did not match the expected table
// layout. Parse errors are not retryable; the page is skipped.
type ErrParse struct {
	URL string
	Msg string
}

// ErrCancelled represents a scrape aborted by context.
type ErrCancelled struct {
	Msg string
	Err error
}

func (e *ErrFetch) Error() string {
	return fmt.Sprintf("fetch error: %s: %v", e.URL, e.Err)
}

func (e *ErrFetch) Unwrap() error {
	return e.Err
}

func (e *ErrParse) Error() string {
	return fmt.Sprintf("parse error: %s: %s", e.URL, e.Msg)
}

func (e *ErrCancelled) Error() string {
	return fmt.Sprintf("scrape cancelled: %s: %v", e.Msg, e.Err)
}

func (e *ErrCancelled) Unwrap() error {
	return e.Err
}
