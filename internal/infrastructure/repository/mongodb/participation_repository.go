package mongodb

import (
	"context"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"questboard/internal/domain/errs"
	participationdomain "questboard/internal/domain/participation"
	"questboard/internal/domain/uuid"
)

// MongoParticipationRepository implements participationapp.Repository and
// questionapp.ParticipationLister.
type MongoParticipationRepository struct {
	collection *mongo.Collection
	logger     *slog.Logger
}

// ParticipationRepoOption configures MongoParticipationRepository.
type ParticipationRepoOption func(*MongoParticipationRepository)

// WithParticipationRepoLogger sets the logger for the participation repository.
func WithParticipationRepoLogger(logger *slog.Logger) ParticipationRepoOption {
	return func(r *MongoParticipationRepository) {
		r.logger = logger
	}
}

// NewMongoParticipationRepository creates the MongoDB participation repository.
func NewMongoParticipationRepository(
	collection *mongo.Collection,
	opts ...ParticipationRepoOption,
) *MongoParticipationRepository {
	r := &MongoParticipationRepository{
		collection: collection,
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Save inserts the participation. Records are append-only, so this is a plain
// insert rather than an upsert.
func (r *MongoParticipationRepository) Save(ctx context.Context, p *participationdomain.Participation) error {
	if p == nil || p.ID().IsZero() {
		return errs.ErrInvalidInput
	}

	_, err := r.collection.InsertOne(ctx, participationToDocument(p))
	if err != nil {
		r.logger.ErrorContext(ctx, "failed to save participation",
			slog.String("participation_id", p.ID().String()),
			slog.String("question_id", p.QuestionID().String()),
			slog.String("error", err.Error()),
		)
	}
	return HandleMongoError(err, "participation")
}

// FindByQuestionID returns the question's participations oldest first, the
// order they were registered in.
func (r *MongoParticipationRepository) FindByQuestionID(
	ctx context.Context,
	questionID uuid.UUID,
) ([]*participationdomain.Participation, error) {
	if questionID.IsZero() {
		return nil, errs.ErrInvalidInput
	}

	filter := bson.M{"question_id": questionID.String()}
	cursor, err := r.collection.Find(ctx, filter, FindWithSort("created_at", 1))
	if err != nil {
		return nil, HandleMongoError(err, "participations")
	}

	return decodeAll(ctx, cursor, documentToParticipation, "participations")
}

// participationDocument is the MongoDB document shape for a participation.
type participationDocument struct {
	ParticipationID string    `bson:"participation_id"`
	QuestionID      string    `bson:"question_id"`
	AuthorID        string    `bson:"author_id"`
	Note            string    `bson:"note"`
	Age             string    `bson:"age"`
	Name            string    `bson:"name"`
	Motive          string    `bson:"motive"`
	CreatedAt       time.Time `bson:"created_at"`
}

func participationToDocument(p *participationdomain.Participation) participationDocument {
	return participationDocument{
		ParticipationID: p.ID().String(),
		QuestionID:      p.QuestionID().String(),
		AuthorID:        p.AuthorID().String(),
		Note:            p.Note(),
		Age:             p.Age(),
		Name:            p.Name(),
		Motive:          p.Motive(),
		CreatedAt:       p.CreatedAt(),
	}
}

func documentToParticipation(doc *participationDocument) (*participationdomain.Participation, error) {
	if doc == nil {
		return nil, errs.ErrInvalidInput
	}

	id, err := uuid.ParseUUID(doc.ParticipationID)
	if err != nil {
		return nil, errs.ErrInvalidInput
	}
	questionID, err := uuid.ParseUUID(doc.QuestionID)
	if err != nil {
		return nil, errs.ErrInvalidInput
	}
	authorID, err := uuid.ParseUUID(doc.AuthorID)
	if err != nil {
		return nil, errs.ErrInvalidInput
	}

	return participationdomain.Reconstruct(
		id,
		questionID,
		authorID,
		doc.Note,
		doc.Age,
		doc.Name,
		doc.Motive,
		doc.CreatedAt,
	), nil
}
