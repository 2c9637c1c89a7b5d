// SPDX-License-Identifier: MIT

// Package hungarian: functional configuration for the solver.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each option impacts behavior and is covered by tests.
//   - Silent by default: the logger is logr.Discard() unless WithLogger is used.
package hungarian

import "github.com/go-logr/logr"

// DefaultGreedyBootstrap enables the zero-slack greedy matching pass that runs
// before the phase loop.
const DefaultGreedyBootstrap = true

// Option mutates Options. Safe to apply repeatedly.
type Option func(*Options)

// Options holds the effective solver configuration.
type Options struct {
	// GreedyBootstrap, when true, matches every free zero-slack (source, target)
	// pair in index order before the first phase. Disabling it leaves the
	// result optimal but routes every source through the phase engine.
	GreedyBootstrap bool

	// OnPhase, if non-nil, is invoked when a phase is initialized for root.
	// Returning an error aborts the solve with that error wrapped.
	OnPhase func(root int) error

	// OnAugment, if non-nil, is invoked after an augmenting path from root to
	// target has been flipped; pathLen is the number of sources re-matched
	// along the path (1 when target was directly reachable from root).
	// Returning an error aborts the solve with that error wrapped.
	OnAugment func(root, target, pathLen int) error

	// Logger receives V(1) records for the greedy pass, every phase and the
	// final summary. Defaults to logr.Discard().
	Logger logr.Logger
}

// DefaultOptions returns Options with:
//   - GreedyBootstrap = DefaultGreedyBootstrap
//   - no hooks
//   - a discarding logger
func DefaultOptions() Options {
	return Options{
		GreedyBootstrap: DefaultGreedyBootstrap,
		OnPhase:         nil,
		OnAugment:       nil,
		Logger:          logr.Discard(),
	}
}

// WithLogger routes solver diagnostics to l.
func WithLogger(l logr.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

// WithGreedyBootstrap toggles the greedy zero-slack matching pass.
func WithGreedyBootstrap(enabled bool) Option {
	return func(o *Options) {
		o.GreedyBootstrap = enabled
	}
}

// WithOnPhase installs fn as the phase-start hook.
func WithOnPhase(fn func(root int) error) Option {
	return func(o *Options) {
		o.OnPhase = fn
	}
}

// WithOnAugment installs fn as the augmenting-path hook.
func WithOnAugment(fn func(root, target, pathLen int) error) Option {
	return func(o *Options) {
		o.OnAugment = fn
	}
}

// gatherOptions applies opts over DefaultOptions; nil entries are skipped.
func gatherOptions(opts []Option) Options {
	cfg := DefaultOptions()
	var opt Option
	for _, opt = range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}
