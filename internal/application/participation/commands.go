package participation

import (
	"questboard/internal/domain/uuid"
)

// RegisterParticipationCommand registers the authenticated caller for a
// question.
type RegisterParticipationCommand struct {
	QuestionID uuid.UUID
	AuthorID   uuid.UUID
	Note       string
	Age        string
	Name       string
	Motive     string
}
