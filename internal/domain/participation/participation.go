// Package participation holds the registration record linking a user to an event.
package participation

import (
	"strings"
	"time"

	"questboard/internal/domain/errs"
	"questboard/internal/domain/uuid"
)

// Participation records a user registering for a question. It is an
// append-only entity: there is no edit or delete path, and the question and
// author references never change once set.
type Participation struct {
	id         uuid.UUID
	questionID uuid.UUID
	authorID   uuid.UUID
	note       string
	age        string
	name       string
	motive     string
	createdAt  time.Time
}

// NewParticipation creates a participation by authorID in questionID.
func NewParticipation(questionID, authorID uuid.UUID, note, age, name, motive string) (*Participation, error) {
	if questionID.IsZero() || authorID.IsZero() {
		return nil, errs.ErrInvalidInput
	}

	return &Participation{
		id:         uuid.NewUUID(),
		questionID: questionID,
		authorID:   authorID,
		note:       strings.TrimSpace(note),
		age:        strings.TrimSpace(age),
		name:       strings.TrimSpace(name),
		motive:     strings.TrimSpace(motive),
		createdAt:  time.Now().UTC(),
	}, nil
}

// Reconstruct rebuilds a participation from storage without validation.
func Reconstruct(
	id, questionID, authorID uuid.UUID,
	note, age, name, motive string,
	createdAt time.Time,
) *Participation {
	return &Participation{
		id:         id,
		questionID: questionID,
		authorID:   authorID,
		note:       note,
		age:        age,
		name:       name,
		motive:     motive,
		createdAt:  createdAt,
	}
}

// ID returns the participation ID.
func (p *Participation) ID() uuid.UUID { return p.id }

// QuestionID returns the target question's ID.
func (p *Participation) QuestionID() uuid.UUID { return p.questionID }

// AuthorID returns the registering user's ID.
func (p *Participation) AuthorID() uuid.UUID { return p.authorID }

// Note returns the free-text note.
func (p *Participation) Note() string { return p.note }

// Age returns the free-text age field.
func (p *Participation) Age() string { return p.age }

// Name returns the participant name.
func (p *Participation) Name() string { return p.name }

// Motive returns the stated motive.
func (p *Participation) Motive() string { return p.motive }

// CreatedAt returns the creation time.
func (p *Participation) CreatedAt() time.Time { return p.createdAt }
