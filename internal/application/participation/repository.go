package participation

import (
	"context"

	"questboard/internal/domain/participation"
	"questboard/internal/domain/uuid"
)

// Repository is the participation store contract. Participations are
// append-only: there is no update or delete operation.
type Repository interface {
	// Save persists a new participation. Existence of the referenced question
	// is the caller's responsibility, not the store's.
	Save(ctx context.Context, p *participation.Participation) error

	// FindByQuestionID returns all participations for a question, oldest
	// first so the order stays stable if paging is added later.
	FindByQuestionID(ctx context.Context, questionID uuid.UUID) ([]*participation.Participation, error)
}
