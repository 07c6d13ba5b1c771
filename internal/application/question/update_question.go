package question

import (
	"context"
	"errors"
	"fmt"

	"questboard/internal/domain/errs"
)

// UpdateQuestionUseCase handles editing a question's business fields.
type UpdateQuestionUseCase struct {
	repo Repository
}

// NewUpdateQuestionUseCase creates the use case.
func NewUpdateQuestionUseCase(repo Repository) *UpdateQuestionUseCase {
	return &UpdateQuestionUseCase{repo: repo}
}

// Execute overwrites the business fields of an existing question. Counters and
// the author reference are never touched. The caller only needs to be signed
// in; ownership of the question is not checked.
func (uc *UpdateQuestionUseCase) Execute(ctx context.Context, cmd UpdateQuestionCommand) (Result, error) {
	if cmd.RequestedBy.IsZero() {
		return Result{}, errs.ErrUnauthorized
	}
	if cmd.QuestionID.IsZero() {
		return Result{}, errs.ErrInvalidInput
	}

	q, err := uc.repo.FindByID(ctx, cmd.QuestionID)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return Result{}, ErrQuestionNotFound
		}
		return Result{}, fmt.Errorf("failed to load question: %w", err)
	}

	q.UpdateDetails(cmd.Details)

	if saveErr := uc.repo.Save(ctx, q); saveErr != nil {
		return Result{}, fmt.Errorf("failed to save question: %w", saveErr)
	}

	return Result{Question: q}, nil
}
