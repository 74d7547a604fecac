// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package workers provides the background workers of the trail service and
// a Workers aggregate that runs them together.
package workers

import "context"

// Worker is a background task. Run blocks until ctx is cancelled.
type Worker interface {
	Run(ctx context.Context)
}

// CachePurger is implemented by caches with expiring entries.
type CachePurger interface {
	PurgeExpired(ctx context.Context) int
}
