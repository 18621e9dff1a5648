// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package secretstore

import "context"

// callBlocking runs fn on its own goroutine and waits for it or for ctx.
// A cancelled ctx stops the wait only; fn keeps running to completion.
func callBlocking[T any](ctx context.Context, fn func() (T, error)) (T, error) {
	type result struct {
		v   T
		err error
	}

	done := make(chan result, 1)
	go func() {
		v, err := fn()
		done <- result{v: v, err: err}
	}()

	select {
	case r := <-done:
		return r.v, r.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}
