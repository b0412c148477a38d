// Copyright 2025-2026 Oliver Eikemeier. All Rights Reserved.
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
//
// SPDX-License-Identifier: Apache-2.0

package explore

import "strings"

// inclusions are the language constructs that execute another file in the current scope.
var inclusions = map[string]struct{}{
	"include":      {},
	"include_once": {},
	"require":      {},
	"require_once": {},
}

// dynamicAccess are functions that read or write local variables by a computed name.
var dynamicAccess = map[string]struct{}{
	"compact":          {},
	"eval":             {},
	"extract":          {},
	"get_defined_vars": {},
	"parse_str":        {},
}

// reserved are variables with predefined meaning. They are never classified as local.
var reserved = map[string]struct{}{
	"this":                 {},
	"GLOBALS":              {},
	"_SERVER":              {},
	"_GET":                 {},
	"_POST":                {},
	"_FILES":               {},
	"_COOKIE":              {},
	"_SESSION":             {},
	"_REQUEST":             {},
	"_ENV":                 {},
	"php_errormsg":         {},
	"HTTP_RAW_POST_DATA":   {},
	"http_response_header": {},
	"argc":                 {},
	"argv":                 {},
}

// IsInclusion reports whether a call of name includes another file. Function names are case-insensitive.
func IsInclusion(name string) bool {
	_, ok := inclusions[strings.ToLower(name)]

	return ok
}

// IsDynamicAccess reports whether a call of name accesses local variables by a computed name.
func IsDynamicAccess(name string) bool {
	_, ok := dynamicAccess[strings.ToLower(name)]

	return ok
}

// IsReserved reports whether name is a predefined variable. Variable names are case-sensitive.
func IsReserved(name string) bool {
	_, ok := reserved[name]

	return ok
}
