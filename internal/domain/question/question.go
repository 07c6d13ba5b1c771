// Package question holds the event listing entity and its counter rules.
package question

import (
	"strings"
	"time"

	"questboard/internal/domain/errs"
	"questboard/internal/domain/uuid"
)

// Details groups the free-text business fields of a question.
// All values are trimmed of surrounding whitespace on the way in.
type Details struct {
	Title                string
	Location             string
	Starts               string
	Ends                 string
	StartsTime           string
	EndsTime             string
	EventDescription     string
	OrganizerName        string
	OrganizerDescription string
	Price                string
	EventType            string
	EventTopic           string
}

func (d Details) trimmed() Details {
	return Details{
		Title:                strings.TrimSpace(d.Title),
		Location:             strings.TrimSpace(d.Location),
		Starts:               strings.TrimSpace(d.Starts),
		Ends:                 strings.TrimSpace(d.Ends),
		StartsTime:           strings.TrimSpace(d.StartsTime),
		EndsTime:             strings.TrimSpace(d.EndsTime),
		EventDescription:     strings.TrimSpace(d.EventDescription),
		OrganizerName:        strings.TrimSpace(d.OrganizerName),
		OrganizerDescription: strings.TrimSpace(d.OrganizerDescription),
		Price:                strings.TrimSpace(d.Price),
		EventType:            strings.TrimSpace(d.EventType),
		EventTopic:           strings.TrimSpace(d.EventTopic),
	}
}

// Question represents an event listing posted by a user.
// The author and creation time are immutable; the derived counters only move
// through the increment methods, never through edits.
type Question struct {
	id                uuid.UUID
	authorID          uuid.UUID
	details           Details
	numLikes          int
	numParticipations int
	numReads          int
	createdAt         time.Time
}

// NewQuestion creates a question owned by authorID with all counters at zero.
// The author is the only required linkage; every business field is free-form
// and may be empty.
func NewQuestion(authorID uuid.UUID, details Details) (*Question, error) {
	if authorID.IsZero() {
		return nil, errs.ErrInvalidInput
	}

	return &Question{
		id:        uuid.NewUUID(),
		authorID:  authorID,
		details:   details.trimmed(),
		createdAt: time.Now().UTC(),
	}, nil
}

// Reconstruct rebuilds a question from storage without business validation.
func Reconstruct(
	id uuid.UUID,
	authorID uuid.UUID,
	details Details,
	numLikes, numParticipations, numReads int,
	createdAt time.Time,
) *Question {
	return &Question{
		id:                id,
		authorID:          authorID,
		details:           details,
		numLikes:          numLikes,
		numParticipations: numParticipations,
		numReads:          numReads,
		createdAt:         createdAt,
	}
}

// UpdateDetails replaces the business fields in place. Counters, author and
// creation time are untouched.
func (q *Question) UpdateDetails(details Details) {
	q.details = details.trimmed()
}

// IncrementReads bumps the read counter by one.
func (q *Question) IncrementReads() {
	q.numReads++
}

// IncrementParticipations bumps the participation counter by one.
func (q *Question) IncrementParticipations() {
	q.numParticipations++
}

// IncrementLikes bumps the like counter by one.
func (q *Question) IncrementLikes() {
	q.numLikes++
}

// ID returns the question ID.
func (q *Question) ID() uuid.UUID { return q.id }

// AuthorID returns the owning user's ID.
func (q *Question) AuthorID() uuid.UUID { return q.authorID }

// Details returns the business fields.
func (q *Question) Details() Details { return q.details }

// NumLikes returns the like counter.
func (q *Question) NumLikes() int { return q.numLikes }

// NumParticipations returns the participation counter.
func (q *Question) NumParticipations() int { return q.numParticipations }

// NumReads returns the read counter.
func (q *Question) NumReads() int { return q.numReads }

// CreatedAt returns the creation time.
func (q *Question) CreatedAt() time.Time { return q.createdAt }
