package question

import (
	"questboard/internal/domain/question"
	"questboard/internal/domain/uuid"
)

// CreateQuestionCommand posts a new question owned by AuthorID.
type CreateQuestionCommand struct {
	AuthorID uuid.UUID
	Details  question.Details
}

// UpdateQuestionCommand replaces the business fields of an existing question.
// RequestedBy identifies the authenticated caller; ownership is intentionally
// not checked (any signed-in user may edit, matching the board's behavior).
type UpdateQuestionCommand struct {
	QuestionID  uuid.UUID
	RequestedBy uuid.UUID
	Details     question.Details
}

// DeleteQuestionCommand removes a question. Requires authentication, not
// ownership.
type DeleteQuestionCommand struct {
	QuestionID  uuid.UUID
	RequestedBy uuid.UUID
}
