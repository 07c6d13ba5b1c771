package question

import (
	"context"
	"fmt"

	"questboard/internal/domain/uuid"
)

// ListQuestionsUseCase handles the paginated, searchable question listing.
type ListQuestionsUseCase struct {
	repo    Repository
	authors AuthorResolver
}

// NewListQuestionsUseCase creates the use case.
func NewListQuestionsUseCase(repo Repository, authors AuthorResolver) *ListQuestionsUseCase {
	return &ListQuestionsUseCase{repo: repo, authors: authors}
}

// Execute returns one page of questions newest first, with authors resolved in
// a single batch. An empty term lists everything; the term is echoed back in
// the result for display.
func (uc *ListQuestionsUseCase) Execute(ctx context.Context, query ListQuestionsQuery) (ListResult, error) {
	page := query.Page
	if page < 1 {
		page = DefaultPage
	}
	limit := query.Limit
	if limit < 1 {
		limit = DefaultLimit
	}
	offset := (page - 1) * limit

	questions, total, err := uc.repo.List(ctx, query.Term, offset, limit)
	if err != nil {
		return ListResult{}, fmt.Errorf("failed to list questions: %w", err)
	}

	authorIDs := make([]uuid.UUID, 0, len(questions))
	for _, q := range questions {
		authorIDs = append(authorIDs, q.AuthorID())
	}

	authors, err := uc.authors.FindAuthors(ctx, authorIDs)
	if err != nil {
		return ListResult{}, fmt.Errorf("failed to resolve authors: %w", err)
	}

	result := ListResult{
		Questions:  make([]QuestionWithAuthor, 0, len(questions)),
		TotalCount: total,
		Page:       page,
		Limit:      limit,
		Term:       query.Term,
	}
	for _, q := range questions {
		result.Questions = append(result.Questions, QuestionWithAuthor{
			Question: q,
			Author:   authors[q.AuthorID()],
		})
	}

	return result, nil
}
