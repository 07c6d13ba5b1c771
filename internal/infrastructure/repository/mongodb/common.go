// Package mongodb implements the application repositories on MongoDB.
package mongodb

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"questboard/internal/domain/errs"
)

// HandleMongoError maps a MongoDB error to a domain error:
//   - nil when err is nil
//   - errs.ErrNotFound when no document matched
//   - errs.ErrAlreadyExists on a unique index violation
//   - a wrapped error otherwise
func HandleMongoError(err error, resourceType string) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, mongo.ErrNoDocuments) {
		return errs.ErrNotFound
	}

	if mongo.IsDuplicateKeyError(err) {
		return errs.ErrAlreadyExists
	}

	return fmt.Errorf("failed to operate on %s: %w", resourceType, err)
}

// UpsertOptions returns the standard options for save-by-replace writes.
func UpsertOptions() *options.UpdateOneOptionsBuilder {
	return options.UpdateOne().SetUpsert(true)
}

// FindWithSort returns find options sorted on one field.
// sortOrder is 1 for ascending, -1 for descending.
func FindWithSort(sortField string, sortOrder int) *options.FindOptionsBuilder {
	return options.Find().SetSort(bson.D{{Key: sortField, Value: sortOrder}})
}

// FindWithPagination returns find options with sorting, offset and limit.
func FindWithPagination(offset, limit int, sortField string, sortOrder int) *options.FindOptionsBuilder {
	return FindWithSort(sortField, sortOrder).
		SetSkip(int64(offset)).
		SetLimit(int64(limit))
}

// FindNewestFirst returns pagination options sorted by created_at DESC, the
// order every listing on the board uses.
func FindNewestFirst(offset, limit int) *options.FindOptionsBuilder {
	return FindWithPagination(offset, limit, "created_at", -1)
}

// CountFilter counts the documents matching filter.
func CountFilter(ctx context.Context, coll *mongo.Collection, filter bson.M) (int, error) {
	count, err := coll.CountDocuments(ctx, filter)
	if err != nil {
		return 0, err
	}
	return int(count), nil
}

// decodeAll drains the cursor, converting each document through decoder.
// Documents that fail to decode or convert are skipped. The returned slice is
// never nil.
func decodeAll[T any, R any](
	ctx context.Context,
	cursor *mongo.Cursor,
	decoder func(*T) (R, error),
	collectionName string,
) ([]R, error) {
	defer cursor.Close(ctx)

	results := make([]R, 0)
	for cursor.Next(ctx) {
		var doc T
		if decodeErr := cursor.Decode(&doc); decodeErr != nil {
			continue
		}

		item, convErr := decoder(&doc)
		if convErr != nil {
			continue
		}
		results = append(results, item)
	}

	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error on %s: %w", collectionName, err)
	}

	return results, nil
}
