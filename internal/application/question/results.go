package question

import (
	"questboard/internal/domain/participation"
	"questboard/internal/domain/question"
)

// QuestionWithAuthor pairs a question with its resolved author.
type QuestionWithAuthor struct {
	Question *question.Question
	Author   Author
}

// ParticipationWithAuthor pairs a participation with its resolved author.
type ParticipationWithAuthor struct {
	Participation *participation.Participation
	Author        Author
}

// Result carries a single question out of a mutation.
type Result struct {
	Question *question.Question
}

// ListResult is one page of questions plus the original search term, echoed
// back for display.
type ListResult struct {
	Questions  []QuestionWithAuthor
	TotalCount int
	Page       int
	Limit      int
	Term       string
}

// ShowResult is the composed view model for a question page.
type ShowResult struct {
	Question       *question.Question
	Author         Author
	Participations []ParticipationWithAuthor
}
