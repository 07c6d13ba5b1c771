// Package participation holds the use case for registering event attendance.
package participation

import (
	"context"
	"errors"
	"fmt"

	questionapp "questboard/internal/application/question"
	"questboard/internal/domain/errs"
	"questboard/internal/domain/participation"
)

// RegisterParticipationUseCase creates a participation and bumps the target
// question's participation counter. The two writes are sequential and
// independent: if the counter save fails after the participation was created,
// the counter drifts low. That window is accepted; the error is propagated so
// the caller at least sees it.
type RegisterParticipationUseCase struct {
	participations Repository
	questions      questionapp.Repository
	counters       *questionapp.CounterMaintainer
}

// NewRegisterParticipationUseCase creates the use case.
func NewRegisterParticipationUseCase(
	participations Repository,
	questions questionapp.Repository,
	counters *questionapp.CounterMaintainer,
) *RegisterParticipationUseCase {
	return &RegisterParticipationUseCase{
		participations: participations,
		questions:      questions,
		counters:       counters,
	}
}

// Execute registers the caller for the question. The question must exist and
// the caller must be signed in.
func (uc *RegisterParticipationUseCase) Execute(
	ctx context.Context,
	cmd RegisterParticipationCommand,
) (Result, error) {
	if cmd.AuthorID.IsZero() {
		return Result{}, errs.ErrUnauthorized
	}
	if cmd.QuestionID.IsZero() {
		return Result{}, errs.ErrInvalidInput
	}

	q, err := uc.questions.FindByID(ctx, cmd.QuestionID)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return Result{}, questionapp.ErrQuestionNotFound
		}
		return Result{}, fmt.Errorf("failed to load question: %w", err)
	}

	p, err := participation.NewParticipation(
		q.ID(),
		cmd.AuthorID,
		cmd.Note,
		cmd.Age,
		cmd.Name,
		cmd.Motive,
	)
	if err != nil {
		return Result{}, fmt.Errorf("failed to create participation: %w", err)
	}

	if saveErr := uc.participations.Save(ctx, p); saveErr != nil {
		return Result{}, fmt.Errorf("failed to save participation: %w", saveErr)
	}

	if bumpErr := uc.counters.BumpParticipations(ctx, q); bumpErr != nil {
		return Result{}, bumpErr
	}

	return Result{Participation: p}, nil
}
