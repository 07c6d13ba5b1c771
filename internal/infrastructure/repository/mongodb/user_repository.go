package mongodb

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	questionapp "questboard/internal/application/question"
	"questboard/internal/domain/errs"
	userdomain "questboard/internal/domain/user"
	"questboard/internal/domain/uuid"
)

// MongoUserRepository implements userapp.Repository and
// questionapp.AuthorResolver.
type MongoUserRepository struct {
	collection *mongo.Collection
	logger     *slog.Logger
}

// UserRepoOption configures MongoUserRepository.
type UserRepoOption func(*MongoUserRepository)

// WithUserRepoLogger sets the logger for the user repository.
func WithUserRepoLogger(logger *slog.Logger) UserRepoOption {
	return func(r *MongoUserRepository) {
		r.logger = logger
	}
}

// NewMongoUserRepository creates the MongoDB user repository.
func NewMongoUserRepository(collection *mongo.Collection, opts ...UserRepoOption) *MongoUserRepository {
	r := &MongoUserRepository{
		collection: collection,
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Save persists the user, inserting or replacing by ID.
func (r *MongoUserRepository) Save(ctx context.Context, u *userdomain.User) error {
	if u == nil || u.ID().IsZero() {
		return errs.ErrInvalidInput
	}

	doc := userToDocument(u)
	filter := bson.M{"user_id": u.ID().String()}
	update := bson.M{"$set": doc}

	_, err := r.collection.UpdateOne(ctx, filter, update, UpsertOptions())
	if err != nil {
		r.logger.ErrorContext(ctx, "failed to save user",
			slog.String("user_id", u.ID().String()),
			slog.String("email", u.Email()),
			slog.String("error", err.Error()),
		)
	}
	return HandleMongoError(err, "user")
}

// FindByID returns the user or errs.ErrNotFound.
func (r *MongoUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*userdomain.User, error) {
	if id.IsZero() {
		return nil, errs.ErrInvalidInput
	}

	filter := bson.M{"user_id": id.String()}
	var doc userDocument
	err := r.collection.FindOne(ctx, filter).Decode(&doc)
	if err != nil {
		if !errors.Is(err, mongo.ErrNoDocuments) {
			r.logger.ErrorContext(ctx, "failed to find user",
				slog.String("user_id", id.String()),
				slog.String("error", err.Error()),
			)
		}
		return nil, HandleMongoError(err, "user")
	}

	return documentToUser(&doc)
}

// FindByEmail returns the user or errs.ErrNotFound.
func (r *MongoUserRepository) FindByEmail(ctx context.Context, email string) (*userdomain.User, error) {
	if email == "" {
		return nil, errs.ErrInvalidInput
	}

	filter := bson.M{"email": email}
	var doc userDocument
	err := r.collection.FindOne(ctx, filter).Decode(&doc)
	if err != nil {
		return nil, HandleMongoError(err, "user")
	}

	return documentToUser(&doc)
}

// Delete removes the user by ID. Deleting an absent ID is a no-op.
func (r *MongoUserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if id.IsZero() {
		return errs.ErrInvalidInput
	}

	filter := bson.M{"user_id": id.String()}
	_, err := r.collection.DeleteOne(ctx, filter)
	if err != nil {
		r.logger.ErrorContext(ctx, "failed to delete user",
			slog.String("user_id", id.String()),
			slog.String("error", err.Error()),
		)
		return HandleMongoError(err, "user")
	}
	return nil
}

// List returns all users, newest first.
func (r *MongoUserRepository) List(ctx context.Context) ([]*userdomain.User, error) {
	cursor, err := r.collection.Find(ctx, bson.M{}, FindWithSort("created_at", -1))
	if err != nil {
		return nil, HandleMongoError(err, "users")
	}

	return decodeAll(ctx, cursor, documentToUser, "users")
}

// FindAuthors loads the named users in one $in query and returns them keyed
// by ID. IDs with no matching user are simply absent from the map.
func (r *MongoUserRepository) FindAuthors(
	ctx context.Context,
	ids []uuid.UUID,
) (map[uuid.UUID]questionapp.Author, error) {
	authors := make(map[uuid.UUID]questionapp.Author, len(ids))
	if len(ids) == 0 {
		return authors, nil
	}

	idStrings := make([]string, 0, len(ids))
	for _, id := range ids {
		if !id.IsZero() {
			idStrings = append(idStrings, id.String())
		}
	}

	filter := bson.M{"user_id": bson.M{"$in": idStrings}}
	cursor, err := r.collection.Find(ctx, filter)
	if err != nil {
		return nil, HandleMongoError(err, "users")
	}

	users, err := decodeAll(ctx, cursor, documentToUser, "users")
	if err != nil {
		return nil, err
	}

	for _, u := range users {
		authors[u.ID()] = questionapp.Author{
			ID:    u.ID(),
			Name:  u.Name(),
			Email: u.Email(),
		}
	}
	return authors, nil
}

// userDocument is the MongoDB document shape for a user.
type userDocument struct {
	UserID       string    `bson:"user_id"`
	Name         string    `bson:"name"`
	Email        string    `bson:"email"`
	PasswordHash string    `bson:"password_hash"`
	CreatedAt    time.Time `bson:"created_at"`
	UpdatedAt    time.Time `bson:"updated_at"`
}

func userToDocument(u *userdomain.User) userDocument {
	return userDocument{
		UserID:       u.ID().String(),
		Name:         u.Name(),
		Email:        u.Email(),
		PasswordHash: u.PasswordHash(),
		CreatedAt:    u.CreatedAt(),
		UpdatedAt:    u.UpdatedAt(),
	}
}

func documentToUser(doc *userDocument) (*userdomain.User, error) {
	if doc == nil {
		return nil, errs.ErrInvalidInput
	}

	id, err := uuid.ParseUUID(doc.UserID)
	if err != nil {
		return nil, errs.ErrInvalidInput
	}

	return userdomain.Reconstruct(
		id,
		doc.Name,
		doc.Email,
		doc.PasswordHash,
		doc.CreatedAt,
		doc.UpdatedAt,
	), nil
}
