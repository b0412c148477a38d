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

package run

import (
	"io"
	"log/slog"

	"fillmore-labs.com/varalias/alias"
	"fillmore-labs.com/varalias/internal/config"
)

// Options represent the configuration of a rename run.
type Options struct {
	// Behavior holds the optional taint sources.
	Behavior config.Behaviors

	// Alias generates the replacement names.
	Alias alias.Generator

	// Listing receives the scope listing after exploration, nil disables it.
	Listing io.Writer

	// Color enables ANSI colors in the listing.
	Color bool

	// Logger receives pass summaries and debug events, nil discards them.
	Logger *slog.Logger
}

// DefaultOptions initializes and returns a new Options instance with default values.
func DefaultOptions() *Options {
	return &Options{
		Behavior: config.DefaultBehavior(),
	}
}

func (r *Options) logger() *slog.Logger {
	if r.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}

	return r.Logger
}
