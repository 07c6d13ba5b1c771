package mongodb

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"questboard/internal/domain/errs"
	questiondomain "questboard/internal/domain/question"
	"questboard/internal/domain/uuid"
)

// MongoQuestionRepository implements questionapp.Repository.
type MongoQuestionRepository struct {
	collection *mongo.Collection
	logger     *slog.Logger
}

// QuestionRepoOption configures MongoQuestionRepository.
type QuestionRepoOption func(*MongoQuestionRepository)

// WithQuestionRepoLogger sets the logger for the question repository.
func WithQuestionRepoLogger(logger *slog.Logger) QuestionRepoOption {
	return func(r *MongoQuestionRepository) {
		r.logger = logger
	}
}

// NewMongoQuestionRepository creates the MongoDB question repository.
func NewMongoQuestionRepository(collection *mongo.Collection, opts ...QuestionRepoOption) *MongoQuestionRepository {
	r := &MongoQuestionRepository{
		collection: collection,
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Save persists the question, inserting or replacing the whole document by ID.
// Counter writes go through here too: the stored counters are whatever the
// in-memory entity carries at save time.
func (r *MongoQuestionRepository) Save(ctx context.Context, q *questiondomain.Question) error {
	if q == nil || q.ID().IsZero() {
		return errs.ErrInvalidInput
	}

	doc := questionToDocument(q)
	filter := bson.M{"question_id": q.ID().String()}
	update := bson.M{"$set": doc}

	_, err := r.collection.UpdateOne(ctx, filter, update, UpsertOptions())
	if err != nil {
		r.logger.ErrorContext(ctx, "failed to save question",
			slog.String("question_id", q.ID().String()),
			slog.String("error", err.Error()),
		)
	}
	return HandleMongoError(err, "question")
}

// FindByID returns the question or errs.ErrNotFound.
func (r *MongoQuestionRepository) FindByID(ctx context.Context, id uuid.UUID) (*questiondomain.Question, error) {
	if id.IsZero() {
		return nil, errs.ErrInvalidInput
	}

	filter := bson.M{"question_id": id.String()}
	var doc questionDocument
	err := r.collection.FindOne(ctx, filter).Decode(&doc)
	if err != nil {
		if !errors.Is(err, mongo.ErrNoDocuments) {
			r.logger.ErrorContext(ctx, "failed to find question",
				slog.String("question_id", id.String()),
				slog.String("error", err.Error()),
			)
		}
		return nil, HandleMongoError(err, "question")
	}

	return documentToQuestion(&doc)
}

// Delete removes the question by ID. Deleting an absent ID is a no-op.
func (r *MongoQuestionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if id.IsZero() {
		return errs.ErrInvalidInput
	}

	filter := bson.M{"question_id": id.String()}
	_, err := r.collection.DeleteOne(ctx, filter)
	if err != nil {
		r.logger.ErrorContext(ctx, "failed to delete question",
			slog.String("question_id", id.String()),
			slog.String("error", err.Error()),
		)
		return HandleMongoError(err, "question")
	}
	return nil
}

// List returns one page of questions matching term, newest first, together
// with the total match count for pagination.
func (r *MongoQuestionRepository) List(
	ctx context.Context,
	term string,
	offset, limit int,
) ([]*questiondomain.Question, int, error) {
	filter := SearchFilter(term)

	total, err := CountFilter(ctx, r.collection, filter)
	if err != nil {
		return nil, 0, HandleMongoError(err, "questions")
	}

	cursor, err := r.collection.Find(ctx, filter, FindNewestFirst(offset, limit))
	if err != nil {
		return nil, 0, HandleMongoError(err, "questions")
	}

	questions, err := decodeAll(ctx, cursor, documentToQuestion, "questions")
	if err != nil {
		return nil, 0, err
	}
	return questions, total, nil
}

// questionDocument is the MongoDB document shape for a question.
type questionDocument struct {
	QuestionID           string    `bson:"question_id"`
	AuthorID             string    `bson:"author_id"`
	Title                string    `bson:"title"`
	Location             string    `bson:"location"`
	Starts               string    `bson:"starts"`
	Ends                 string    `bson:"ends"`
	StartsTime           string    `bson:"starts_time"`
	EndsTime             string    `bson:"ends_time"`
	EventDescription     string    `bson:"event_description"`
	OrganizerName        string    `bson:"organizer_name"`
	OrganizerDescription string    `bson:"organizer_description"`
	Price                string    `bson:"price"`
	EventType            string    `bson:"event_type"`
	EventTopic           string    `bson:"event_topic"`
	NumLikes             int       `bson:"num_likes"`
	NumParticipations    int       `bson:"num_participations"`
	NumReads             int       `bson:"num_reads"`
	CreatedAt            time.Time `bson:"created_at"`
}

func questionToDocument(q *questiondomain.Question) questionDocument {
	d := q.Details()
	return questionDocument{
		QuestionID:           q.ID().String(),
		AuthorID:             q.AuthorID().String(),
		Title:                d.Title,
		Location:             d.Location,
		Starts:               d.Starts,
		Ends:                 d.Ends,
		StartsTime:           d.StartsTime,
		EndsTime:             d.EndsTime,
		EventDescription:     d.EventDescription,
		OrganizerName:        d.OrganizerName,
		OrganizerDescription: d.OrganizerDescription,
		Price:                d.Price,
		EventType:            d.EventType,
		EventTopic:           d.EventTopic,
		NumLikes:             q.NumLikes(),
		NumParticipations:    q.NumParticipations(),
		NumReads:             q.NumReads(),
		CreatedAt:            q.CreatedAt(),
	}
}

func documentToQuestion(doc *questionDocument) (*questiondomain.Question, error) {
	if doc == nil {
		return nil, errs.ErrInvalidInput
	}

	id, err := uuid.ParseUUID(doc.QuestionID)
	if err != nil {
		return nil, errs.ErrInvalidInput
	}
	authorID, err := uuid.ParseUUID(doc.AuthorID)
	if err != nil {
		return nil, errs.ErrInvalidInput
	}

	details := questiondomain.Details{
		Title:                doc.Title,
		Location:             doc.Location,
		Starts:               doc.Starts,
		Ends:                 doc.Ends,
		StartsTime:           doc.StartsTime,
		EndsTime:             doc.EndsTime,
		EventDescription:     doc.EventDescription,
		OrganizerName:        doc.OrganizerName,
		OrganizerDescription: doc.OrganizerDescription,
		Price:                doc.Price,
		EventType:            doc.EventType,
		EventTopic:           doc.EventTopic,
	}

	return questiondomain.Reconstruct(
		id,
		authorID,
		details,
		doc.NumLikes,
		doc.NumParticipations,
		doc.NumReads,
		doc.CreatedAt,
	), nil
}
