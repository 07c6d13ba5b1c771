package question

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"questboard/internal/domain/errs"
	"questboard/internal/domain/uuid"
)

// ShowQuestionUseCase composes the question page view model: the question with
// its author, the registered participations with theirs, and a read-counter
// bump as a side effect of display.
type ShowQuestionUseCase struct {
	repo           Repository
	participations ParticipationLister
	authors        AuthorResolver
	counters       *CounterMaintainer
	logger         *slog.Logger
}

// NewShowQuestionUseCase creates the use case.
func NewShowQuestionUseCase(
	repo Repository,
	participations ParticipationLister,
	authors AuthorResolver,
	counters *CounterMaintainer,
	logger *slog.Logger,
) *ShowQuestionUseCase {
	if logger == nil {
		logger = slog.Default()
	}
	return &ShowQuestionUseCase{
		repo:           repo,
		participations: participations,
		authors:        authors,
		counters:       counters,
		logger:         logger,
	}
}

// Execute loads the question and its participations and bumps the read
// counter. A bump that fails to persist is logged and swallowed: the page is
// still served and that one read is lost, which keeps the view path from ever
// failing on counter maintenance.
func (uc *ShowQuestionUseCase) Execute(ctx context.Context, query ShowQuestionQuery) (ShowResult, error) {
	if query.QuestionID.IsZero() {
		return ShowResult{}, errs.ErrInvalidInput
	}

	q, err := uc.repo.FindByID(ctx, query.QuestionID)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return ShowResult{}, ErrQuestionNotFound
		}
		return ShowResult{}, fmt.Errorf("failed to load question: %w", err)
	}

	parts, err := uc.participations.FindByQuestionID(ctx, q.ID())
	if err != nil {
		return ShowResult{}, fmt.Errorf("failed to load participations: %w", err)
	}

	authorIDs := make([]uuid.UUID, 0, len(parts)+1)
	authorIDs = append(authorIDs, q.AuthorID())
	for _, p := range parts {
		authorIDs = append(authorIDs, p.AuthorID())
	}

	authors, err := uc.authors.FindAuthors(ctx, authorIDs)
	if err != nil {
		return ShowResult{}, fmt.Errorf("failed to resolve authors: %w", err)
	}

	if bumpErr := uc.counters.BumpReads(ctx, q); bumpErr != nil {
		uc.logger.WarnContext(ctx, "read counter bump lost",
			slog.String("question_id", q.ID().String()),
			slog.String("error", bumpErr.Error()),
		)
	}

	result := ShowResult{
		Question:       q,
		Author:         authors[q.AuthorID()],
		Participations: make([]ParticipationWithAuthor, 0, len(parts)),
	}
	for _, p := range parts {
		result.Participations = append(result.Participations, ParticipationWithAuthor{
			Participation: p,
			Author:        authors[p.AuthorID()],
		})
	}

	return result, nil
}
