package mongodb

import (
	"regexp"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// searchableFields are the question fields the free-text search scans.
// Every business field participates; counters and references do not.
var searchableFields = []string{
	"title",
	"location",
	"starts",
	"ends",
	"starts_time",
	"ends_time",
	"event_description",
	"organizer_name",
	"organizer_description",
	"price",
	"event_type",
	"event_topic",
}

// SearchFilter builds the question listing filter for a search term: a
// case-insensitive substring match OR-ed across every searchable field. The
// term is quoted so regex metacharacters in user input match literally, and is
// otherwise taken verbatim; whitespace is part of the substring. Only an empty
// term matches everything.
func SearchFilter(term string) bson.M {
	if term == "" {
		return bson.M{}
	}

	pattern := regexp.QuoteMeta(term)
	clauses := make([]bson.M, 0, len(searchableFields))
	for _, field := range searchableFields {
		clauses = append(clauses, bson.M{
			field: bson.M{"$regex": pattern, "$options": "i"},
		})
	}

	return bson.M{"$or": clauses}
}
