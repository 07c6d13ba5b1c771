package question_test

import (
	"context"
	"sort"
	"strings"

	questionapp "questboard/internal/application/question"
	"questboard/internal/domain/errs"
	"questboard/internal/domain/participation"
	"questboard/internal/domain/question"
	"questboard/internal/domain/uuid"
)

// mockQuestionRepo is an in-memory question store for use case tests.
type mockQuestionRepo struct {
	questions map[uuid.UUID]*question.Question
	saveErr   error
	findErr   error
	saveCalls int
}

func newMockQuestionRepo() *mockQuestionRepo {
	return &mockQuestionRepo{questions: make(map[uuid.UUID]*question.Question)}
}

func (m *mockQuestionRepo) Save(_ context.Context, q *question.Question) error {
	m.saveCalls++
	if m.saveErr != nil {
		return m.saveErr
	}
	m.questions[q.ID()] = q
	return nil
}

func (m *mockQuestionRepo) FindByID(_ context.Context, id uuid.UUID) (*question.Question, error) {
	if m.findErr != nil {
		return nil, m.findErr
	}
	if q, ok := m.questions[id]; ok {
		return q, nil
	}
	return nil, errs.ErrNotFound
}

func (m *mockQuestionRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(m.questions, id)
	return nil
}

func (m *mockQuestionRepo) List(
	_ context.Context,
	term string,
	offset, limit int,
) ([]*question.Question, int, error) {
	if m.findErr != nil {
		return nil, 0, m.findErr
	}

	matched := make([]*question.Question, 0, len(m.questions))
	for _, q := range m.questions {
		if matchesTerm(q.Details(), term) {
			matched = append(matched, q)
		}
	}
	sort.Slice(matched, func(i, j int) bool {
		return matched[i].CreatedAt().After(matched[j].CreatedAt())
	})

	total := len(matched)
	if offset >= total {
		return []*question.Question{}, total, nil
	}
	end := min(offset+limit, total)
	return matched[offset:end], total, nil
}

func matchesTerm(d question.Details, term string) bool {
	if term == "" {
		return true
	}
	term = strings.ToLower(term)
	for _, field := range []string{
		d.Title, d.Location, d.Starts, d.Ends, d.StartsTime, d.EndsTime,
		d.EventDescription, d.OrganizerName, d.OrganizerDescription,
		d.Price, d.EventType, d.EventTopic,
	} {
		if strings.Contains(strings.ToLower(field), term) {
			return true
		}
	}
	return false
}

// mockParticipationLister is an in-memory participation store.
type mockParticipationLister struct {
	byQuestion map[uuid.UUID][]*participation.Participation
}

func newMockParticipationLister() *mockParticipationLister {
	return &mockParticipationLister{
		byQuestion: make(map[uuid.UUID][]*participation.Participation),
	}
}

func (m *mockParticipationLister) add(p *participation.Participation) {
	m.byQuestion[p.QuestionID()] = append(m.byQuestion[p.QuestionID()], p)
}

func (m *mockParticipationLister) FindByQuestionID(
	_ context.Context,
	questionID uuid.UUID,
) ([]*participation.Participation, error) {
	parts := m.byQuestion[questionID]
	if parts == nil {
		parts = []*participation.Participation{}
	}
	return parts, nil
}

// mockAuthorResolver resolves authors from a fixed map.
type mockAuthorResolver struct {
	authors map[uuid.UUID]questionapp.Author
}

func newMockAuthorResolver() *mockAuthorResolver {
	return &mockAuthorResolver{authors: make(map[uuid.UUID]questionapp.Author)}
}

func (m *mockAuthorResolver) add(id uuid.UUID, name, email string) {
	m.authors[id] = questionapp.Author{ID: id, Name: name, Email: email}
}

func (m *mockAuthorResolver) FindAuthors(
	_ context.Context,
	ids []uuid.UUID,
) (map[uuid.UUID]questionapp.Author, error) {
	result := make(map[uuid.UUID]questionapp.Author, len(ids))
	for _, id := range ids {
		if author, ok := m.authors[id]; ok {
			result[id] = author
		}
	}
	return result, nil
}
