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
package dataset

import (
	"fmt"
	"strings"
	"unicode"
)

// SanitizeIdentifier maps a raw label to a storage-safe identifier: lowercase,
// runs of non-alphanumeric characters collapsed to a single underscore, leading
// and trailing underscores stripped, and a "col_" prefix when the result is
// empty or starts with a digit.
func SanitizeIdentifier(label string) string {
	var b strings.Builder
	lastUnderscore := false
	for _, r := range strings.ToLower(label) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			lastUnderscore = false
		} else if !lastUnderscore {
			b.WriteByte('_')
			lastUnderscore = true
		}
	}
	name := strings.Trim(b.String(), "_")
	if name == "" || unicode.IsDigit(rune(name[0])) {
		name = "col_" + name
	}
	return name
}

// SanitizeIdentifiers sanitizes every label and resolves collisions by
// appending _2, _3, ... in order of first occurrence.
func SanitizeIdentifiers(labels []string) []string {
	used := make(map[string]bool, len(labels))
	counts := make(map[string]int, len(labels))
	names := make([]string, len(labels))
	for i, label := range labels {
		base := SanitizeIdentifier(label)
		name := base
		counts[base]++
		for n := counts[base]; used[name]; n++ {
			name = fmt.Sprintf("%s_%d", base, n)
		}
		used[name] = true
		names[i] = name
	}
	return names
}
