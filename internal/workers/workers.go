// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package workers runs the named startup steps of the application in order
// and reports the outcome of each one. Deciding which failures are fatal is
// left to the caller.
package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-key-keeper/internal/logger"
)

// Step is one named unit of startup work.
type Step struct {
	Name string
	Run  func(ctx context.Context) error
}

// Result is the outcome of a single [Step].
type Result struct {
	Name    string
	Err     error
	Elapsed time.Duration
	// Skipped is true when the context was done before the step started.
	Skipped bool
}

// Results keeps the step outcomes in run order.
type Results []Result

// Err returns the error of the step called name, or nil.
func (r Results) Err(name string) error {
	for _, res := range r {
		if res.Name == name {
			return res.Err
		}
	}
	return nil
}

// Failed lists the names of the steps that returned an error.
func (r Results) Failed() []string {
	var names []string
	for _, res := range r {
		if res.Err != nil {
			names = append(names, res.Name)
		}
	}
	return names
}

type Steps struct {
	steps  []Step
	logger *logger.Logger
}

func NewSteps(log *logger.Logger, steps ...Step) *Steps {
	if log == nil {
		log = logger.Nop()
	}
	return &Steps{steps: steps, logger: log}
}

// Add appends steps to the end of the run order.
func (s *Steps) Add(steps ...Step) {
	s.steps = append(s.steps, steps...)
}

// Run executes every step sequentially. A failing step does not stop the
// ones after it; once ctx is done the remaining steps are skipped with
// ctx.Err().
func (s *Steps) Run(ctx context.Context) Results {
	results := make(Results, 0, len(s.steps))

	for _, step := range s.steps {
		if err := ctx.Err(); err != nil {
			results = append(results, Result{Name: step.Name, Err: err, Skipped: true})
			continue
		}

		start := time.Now()
		err := step.Run(ctx)
		res := Result{Name: step.Name, Err: err, Elapsed: time.Since(start)}
		results = append(results, res)

		if err != nil {
			s.logger.Err(err).Str("func", "Steps.Run").Str("step", step.Name).Dur("elapsed", res.Elapsed).Msg("startup step failed")
			continue
		}
		s.logger.Debug().Str("func", "Steps.Run").Str("step", step.Name).Dur("elapsed", res.Elapsed).Msg("startup step finished")
	}

	return results
}
