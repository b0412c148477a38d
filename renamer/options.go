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

package renamer

import (
	"io"
	"log/slog"

	"fillmore-labs.com/varalias/alias"
	"fillmore-labs.com/varalias/internal/config"
	"fillmore-labs.com/varalias/internal/run"
)

// Option configures specific behavior of a [New] renamer.
type Option interface {
	apply(r *run.Options)
	LogAttr() slog.Attr
}

// Options is a list of [Option] values that itself satisfies the [Option] interface.
type Options []Option

// LogValue implements [slog.LogValuer].
func (o Options) LogValue() slog.Value {
	as := make([]slog.Attr, 0, len(o))
	as = appendOptions(as, o)

	return slog.GroupValue(as...)
}

func appendOptions(as []slog.Attr, o Options) []slog.Attr {
	for _, opt := range o {
		switch opt := opt.(type) {
		case nil:
			as = append(as, slog.String("nil", "<nil>"))

		case Options:
			as = appendOptions(as, opt)

		default:
			as = append(as, opt.LogAttr())
		}
	}

	return as
}

func (o Options) apply(r *run.Options) {
	for _, opt := range o {
		if opt == nil {
			continue
		}

		opt.apply(r)
	}
}

// LogAttr is for logging with [slog.Logger.LogAttrs].
func (o Options) LogAttr() slog.Attr {
	return slog.Any("options", o)
}

// WithAlgorithm is an [Option] to select the digest algorithm aliases are derived from.
func WithAlgorithm(algorithm alias.Algorithm) Option { return algorithmOption{algorithm: algorithm} }

type algorithmOption struct{ algorithm alias.Algorithm }

func (o algorithmOption) apply(r *run.Options) {
	r.Alias.Algorithm = o.algorithm
}

func (o algorithmOption) LogAttr() slog.Attr {
	return slog.String("algorithm", o.algorithm.String())
}

// WithDigestBytes is an [Option] to truncate the digest to the given number of bytes.
// Zero selects the full digest.
//
// Short aliases can be brute-forced to recover the original names.
func WithDigestBytes(n int) Option { return digestBytesOption{n: n} }

type digestBytesOption struct{ n int }

func (o digestBytesOption) apply(r *run.Options) {
	r.Alias.Bytes = o.n
}

func (o digestBytesOption) LogAttr() slog.Attr {
	return slog.Int("digest-bytes", o.n)
}

// WithDynamicCalls is an [Option] to keep the names of scopes calling functions that
// access local variables by name, like extract or compact.
func WithDynamicCalls(taint bool) Option { return dynamicCallsOption{taint: taint} }

type dynamicCallsOption struct{ taint bool }

func (o dynamicCallsOption) apply(r *run.Options) {
	r.Behavior.Set(config.TaintDynamicCalls, o.taint)
}

func (o dynamicCallsOption) LogAttr() slog.Attr {
	return slog.Bool("dynamic-calls", o.taint)
}

// WithVariableVariables is an [Option] to keep the names of scopes using variable variables.
func WithVariableVariables(taint bool) Option { return variableVariablesOption{taint: taint} }

type variableVariablesOption struct{ taint bool }

func (o variableVariablesOption) apply(r *run.Options) {
	r.Behavior.Set(config.TaintVariableVariables, o.taint)
}

func (o variableVariablesOption) LogAttr() slog.Attr {
	return slog.Bool("variable-variables", o.taint)
}

// WithScopeListing is an [Option] to write a listing of all scopes after exploration.
// A nil writer disables the listing.
func WithScopeListing(w io.Writer) Option { return listingOption{w: w} }

type listingOption struct{ w io.Writer }

func (o listingOption) apply(r *run.Options) {
	r.Listing = o.w
}

func (o listingOption) LogAttr() slog.Attr {
	return slog.Bool("listing", o.w != nil)
}

// WithColor is an [Option] to enable ANSI colors in listings.
func WithColor(color bool) Option { return colorOption{color: color} }

type colorOption struct{ color bool }

func (o colorOption) apply(r *run.Options) {
	r.Color = o.color
}

func (o colorOption) LogAttr() slog.Attr {
	return slog.Bool("color", o.color)
}

// WithLogger is an [Option] to receive pass summaries and debug events.
func WithLogger(logger *slog.Logger) Option { return loggerOption{logger: logger} }

type loggerOption struct{ logger *slog.Logger }

func (o loggerOption) apply(r *run.Options) {
	r.Logger = o.logger
}

func (o loggerOption) LogAttr() slog.Attr {
	return slog.Bool("logger", o.logger != nil)
}
