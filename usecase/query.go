package usecase

import (
	"regexp"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
)

// substringMatch builds a case-insensitive literal substring filter. User
// input is quoted so regex metacharacters match themselves.
func substringMatch(value string) bson.M {
	return bson.M{"$regex": regexp.QuoteMeta(value), "$options": "i"}
}

// parseSort turns a "-createdAt" style sort expression into a Mongo sort
// document. A leading '-' means descending; empty input falls back to
// newest-first by creation time.
func parseSort(sort string) bson.D {
	if sort == "" {
		sort = "-createdAt"
	}

	order := 1
	field := sort
	if strings.HasPrefix(sort, "-") {
		order = -1
		field = sort[1:]
	}
	if field == "" {
		field = "createdAt"
		order = -1
	}

	return bson.D{{Key: field, Value: order}}
}
