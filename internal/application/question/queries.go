package question

import (
	"questboard/internal/domain/uuid"
)

// Pagination defaults for question listings.
const (
	DefaultPage  = 1
	DefaultLimit = 10
)

// ListQuestionsQuery selects one page of questions, optionally filtered by a
// free-text search term.
type ListQuestionsQuery struct {
	Term  string
	Page  int
	Limit int
}

// ShowQuestionQuery fetches a single question for display. Displaying a
// question counts as a read.
type ShowQuestionQuery struct {
	QuestionID uuid.UUID
}
