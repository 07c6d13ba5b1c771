// Package mongodb provides MongoDB infrastructure components including index management.
package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// Collection names as constants for consistency.
const (
	CollectionQuestions      = "questions"
	CollectionParticipations = "participations"
	CollectionUsers          = "users"
)

// IndexDefinition describes a MongoDB index to be created.
type IndexDefinition struct {
	Collection string
	Keys       bson.D
	Options    *options.IndexOptionsBuilder
}

// CreateAllIndexes creates all necessary indexes for the application.
// This function is idempotent - calling it multiple times is safe.
func CreateAllIndexes(ctx context.Context, db *mongo.Database) error {
	for _, idx := range GetAllIndexDefinitions() {
		coll := db.Collection(idx.Collection)
		model := mongo.IndexModel{
			Keys:    idx.Keys,
			Options: idx.Options,
		}

		_, err := coll.Indexes().CreateOne(ctx, model)
		if err != nil {
			return fmt.Errorf("failed to create index on collection %s: %w", idx.Collection, err)
		}
	}

	return nil
}

// GetAllIndexDefinitions returns all index definitions for all collections.
func GetAllIndexDefinitions() []IndexDefinition {
	var indexes []IndexDefinition

	indexes = append(indexes, GetQuestionIndexes()...)
	indexes = append(indexes, GetParticipationIndexes()...)
	indexes = append(indexes, GetUserIndexes()...)

	return indexes
}

// GetQuestionIndexes returns index definitions for the questions collection.
func GetQuestionIndexes() []IndexDefinition {
	return []IndexDefinition{
		{
			// Primary key - unique question ID
			Collection: CollectionQuestions,
			Keys:       bson.D{{Key: "question_id", Value: 1}},
			Options:    options.Index().SetUnique(true).SetName("idx_questions_id_unique"),
		},
		{
			// Listing order: newest first
			Collection: CollectionQuestions,
			Keys:       bson.D{{Key: "created_at", Value: -1}},
			Options:    options.Index().SetName("idx_questions_created_at"),
		},
		{
			// Questions posted by one user
			Collection: CollectionQuestions,
			Keys:       bson.D{{Key: "author_id", Value: 1}, {Key: "created_at", Value: -1}},
			Options:    options.Index().SetName("idx_questions_author_time"),
		},
	}
}

// GetParticipationIndexes returns index definitions for the participations collection.
func GetParticipationIndexes() []IndexDefinition {
	return []IndexDefinition{
		{
			// Primary key - unique participation ID
			Collection: CollectionParticipations,
			Keys:       bson.D{{Key: "participation_id", Value: 1}},
			Options:    options.Index().SetUnique(true).SetName("idx_participations_id_unique"),
		},
		{
			// Main query: a question's participations in registration order
			Collection: CollectionParticipations,
			Keys:       bson.D{{Key: "question_id", Value: 1}, {Key: "created_at", Value: 1}},
			Options:    options.Index().SetName("idx_participations_question_time"),
		},
		{
			// Participations registered by one user
			Collection: CollectionParticipations,
			Keys:       bson.D{{Key: "author_id", Value: 1}},
			Options:    options.Index().SetName("idx_participations_author"),
		},
	}
}

// GetUserIndexes returns index definitions for the users collection.
func GetUserIndexes() []IndexDefinition {
	return []IndexDefinition{
		{
			// Primary key - unique user ID
			Collection: CollectionUsers,
			Keys:       bson.D{{Key: "user_id", Value: 1}},
			Options:    options.Index().SetUnique(true).SetName("idx_users_id_unique"),
		},
		{
			// Unique index for email: one account per address
			Collection: CollectionUsers,
			Keys:       bson.D{{Key: "email", Value: 1}},
			Options:    options.Index().SetUnique(true).SetName("idx_users_email_unique"),
		},
	}
}
