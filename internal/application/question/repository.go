package question

import (
	"context"

	"questboard/internal/domain/participation"
	"questboard/internal/domain/question"
	"questboard/internal/domain/uuid"
)

// Repository is the question store contract, declared on the consumer side.
type Repository interface {
	// Save persists the question, inserting or replacing by ID.
	Save(ctx context.Context, q *question.Question) error

	// FindByID returns the question or errs.ErrNotFound.
	FindByID(ctx context.Context, id uuid.UUID) (*question.Question, error)

	// Delete removes the question by ID. Deleting a missing ID is a no-op.
	Delete(ctx context.Context, id uuid.UUID) error

	// List returns one page of questions matching term (every question when
	// term is empty), newest first, plus the total match count.
	List(ctx context.Context, term string, offset, limit int) ([]*question.Question, int, error)
}

// ParticipationLister loads the participations registered for a question.
type ParticipationLister interface {
	FindByQuestionID(ctx context.Context, questionID uuid.UUID) ([]*participation.Participation, error)
}

// Author is the resolved owner of a question or participation.
type Author struct {
	ID    uuid.UUID
	Name  string
	Email string
}

// AuthorResolver hydrates authors for a batch of user IDs in one round trip.
// IDs with no matching user are simply absent from the result map.
type AuthorResolver interface {
	FindAuthors(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]Author, error)
}
