package question

import (
	"context"
	"fmt"

	"questboard/internal/domain/errs"
	"questboard/internal/domain/question"
)

// CounterMaintainer performs the read-then-increment-then-persist step for the
// derived counters. It is never a standalone mutation: callers invoke it as
// part of a larger operation (displaying a question, registering a
// participation).
//
// The increment and the save are two separate steps, so concurrent bumps on
// the same question can overwrite each other (lost update). The persistence
// backend is not asked for an atomic increment, matching the board's original
// counter semantics.
type CounterMaintainer struct {
	repo Repository
}

// NewCounterMaintainer creates a CounterMaintainer over the question store.
func NewCounterMaintainer(repo Repository) *CounterMaintainer {
	return &CounterMaintainer{repo: repo}
}

// BumpReads increments the read counter and persists the question. Every
// display counts, repeat viewers included.
//
// On failure the in-memory increment is lost for this request; the error is
// returned so the caller decides whether to surface or swallow it.
func (m *CounterMaintainer) BumpReads(ctx context.Context, q *question.Question) error {
	if q == nil {
		return errs.ErrInvalidInput
	}

	q.IncrementReads()
	if err := m.repo.Save(ctx, q); err != nil {
		return fmt.Errorf("failed to persist read counter: %w", err)
	}
	return nil
}

// BumpParticipations increments the participation counter and persists the
// question. Invoked exactly once per successful participation creation.
func (m *CounterMaintainer) BumpParticipations(ctx context.Context, q *question.Question) error {
	if q == nil {
		return errs.ErrInvalidInput
	}

	q.IncrementParticipations()
	if err := m.repo.Save(ctx, q); err != nil {
		return fmt.Errorf("failed to persist participation counter: %w", err)
	}
	return nil
}
