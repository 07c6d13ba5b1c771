package question_test

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	questionapp "questboard/internal/application/question"
	"questboard/internal/domain/participation"
	"questboard/internal/domain/question"
	"questboard/internal/domain/uuid"
)

type showFixture struct {
	repo    *mockQuestionRepo
	parts   *mockParticipationLister
	authors *mockAuthorResolver
	uc      *questionapp.ShowQuestionUseCase
}

func newShowFixture() *showFixture {
	repo := newMockQuestionRepo()
	parts := newMockParticipationLister()
	authors := newMockAuthorResolver()
	return &showFixture{
		repo:    repo,
		parts:   parts,
		authors: authors,
		uc: questionapp.NewShowQuestionUseCase(
			repo, parts, authors,
			questionapp.NewCounterMaintainer(repo),
			slog.New(slog.DiscardHandler),
		),
	}
}

func (f *showFixture) seedQuestion(t *testing.T) *question.Question {
	t.Helper()
	authorID := uuid.NewUUID()
	f.authors.add(authorID, "Dana", "dana@example.com")
	q, err := question.NewQuestion(authorID, validDetails())
	require.NoError(t, err)
	require.NoError(t, f.repo.Save(context.Background(), q))
	f.repo.saveCalls = 0
	return q
}

func TestShowQuestionUseCase_Execute(t *testing.T) {
	ctx := context.Background()
	f := newShowFixture()
	q := f.seedQuestion(t)

	participantID := uuid.NewUUID()
	f.authors.add(participantID, "Lee", "lee@example.com")
	p, err := participation.NewParticipation(q.ID(), participantID, "count me in", "30", "Lee", "lives nearby")
	require.NoError(t, err)
	f.parts.add(p)

	result, err := f.uc.Execute(ctx, questionapp.ShowQuestionQuery{QuestionID: q.ID()})
	require.NoError(t, err)

	assert.Equal(t, q.ID(), result.Question.ID())
	assert.Equal(t, "Dana", result.Author.Name)
	require.Len(t, result.Participations, 1)
	assert.Equal(t, "Lee", result.Participations[0].Author.Name)
	assert.Equal(t, 1, result.Question.NumReads())
}

func TestShowQuestionUseCase_Execute_EveryViewCounts(t *testing.T) {
	ctx := context.Background()
	f := newShowFixture()
	q := f.seedQuestion(t)

	// Repeat views are not deduplicated: N shows bump the counter by N.
	const views = 5
	for range views {
		_, err := f.uc.Execute(ctx, questionapp.ShowQuestionQuery{QuestionID: q.ID()})
		require.NoError(t, err)
	}

	stored, err := f.repo.FindByID(ctx, q.ID())
	require.NoError(t, err)
	assert.Equal(t, views, stored.NumReads())
	assert.Equal(t, 0, stored.NumParticipations())
	assert.Equal(t, 0, stored.NumLikes())
}

func TestShowQuestionUseCase_Execute_NotFound(t *testing.T) {
	f := newShowFixture()

	_, err := f.uc.Execute(context.Background(), questionapp.ShowQuestionQuery{
		QuestionID: uuid.NewUUID(),
	})
	require.ErrorIs(t, err, questionapp.ErrQuestionNotFound)
}

func TestShowQuestionUseCase_Execute_BumpFailureIsSwallowed(t *testing.T) {
	ctx := context.Background()
	f := newShowFixture()
	q := f.seedQuestion(t)
	f.repo.saveErr = errors.New("write concern timeout")

	result, err := f.uc.Execute(ctx, questionapp.ShowQuestionQuery{QuestionID: q.ID()})
	require.NoError(t, err, "a lost read-counter bump must not fail the view")
	assert.Equal(t, q.ID(), result.Question.ID())
	assert.Equal(t, 1, f.repo.saveCalls)
}
