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

import "strconv"

// inferColumn inspects every non-null cell in column i and picks the narrowest
// type that fits all of them: integer, then real, then text. Empty cells count
// toward nullability only; a column with no values at all stays text.
func inferColumn(rows [][]string, i int) (Type, bool) {
	allInteger := true
	allReal := true
	nullable := false
	sawValue := false

	for _, row := range rows {
		if i >= len(row) || row[i] == "" {
			nullable = true
			continue
		}
		sawValue = true
		cell := row[i]
		if allInteger {
			if _, err := strconv.ParseInt(cell, 10, 64); err != nil {
				allInteger = false
			}
		}
		if allReal && !allInteger {
			if _, err := strconv.ParseFloat(cell, 64); err != nil {
				allReal = false
			}
		}
	}

	if !sawValue {
		return TypeText, nullable
	}
	if allInteger {
		return TypeInteger, nullable
	}
	if allReal {
		return TypeReal, nullable
	}
	return TypeText, nullable
}
