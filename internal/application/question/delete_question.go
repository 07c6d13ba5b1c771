package question

import (
	"context"
	"fmt"

	"questboard/internal/domain/errs"
)

// DeleteQuestionUseCase handles removing a question.
type DeleteQuestionUseCase struct {
	repo Repository
}

// NewDeleteQuestionUseCase creates the use case.
func NewDeleteQuestionUseCase(repo Repository) *DeleteQuestionUseCase {
	return &DeleteQuestionUseCase{repo: repo}
}

// Execute removes the question unconditionally. Deleting an absent ID succeeds
// silently, so the operation is idempotent from the caller's point of view.
func (uc *DeleteQuestionUseCase) Execute(ctx context.Context, cmd DeleteQuestionCommand) error {
	if cmd.RequestedBy.IsZero() {
		return errs.ErrUnauthorized
	}
	if cmd.QuestionID.IsZero() {
		return errs.ErrInvalidInput
	}

	if err := uc.repo.Delete(ctx, cmd.QuestionID); err != nil {
		return fmt.Errorf("failed to delete question: %w", err)
	}
	return nil
}
