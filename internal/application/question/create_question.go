package question

import (
	"context"
	"fmt"

	"questboard/internal/domain/errs"
	"questboard/internal/domain/question"
)

// CreateQuestionUseCase handles posting a new question.
type CreateQuestionUseCase struct {
	repo Repository
}

// NewCreateQuestionUseCase creates the use case.
func NewCreateQuestionUseCase(repo Repository) *CreateQuestionUseCase {
	return &CreateQuestionUseCase{repo: repo}
}

// Execute creates a question owned by the authenticated caller. All counters
// start at zero; the author reference is immutable from here on.
func (uc *CreateQuestionUseCase) Execute(ctx context.Context, cmd CreateQuestionCommand) (Result, error) {
	if cmd.AuthorID.IsZero() {
		return Result{}, errs.ErrUnauthorized
	}

	q, err := question.NewQuestion(cmd.AuthorID, cmd.Details)
	if err != nil {
		return Result{}, fmt.Errorf("failed to create question: %w", err)
	}

	if saveErr := uc.repo.Save(ctx, q); saveErr != nil {
		return Result{}, fmt.Errorf("failed to save question: %w", saveErr)
	}

	return Result{Question: q}, nil
}
