// Package store is a narrow abstraction over a schema-less document database.
// Documents are passed through verbatim as bson.M; the only interpreted field
// is the store-assigned _id. The Mongo implementation is the production one,
// the in-memory implementation backs unit tests.
package store

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ErrInvalidID is returned when a path parameter is not a valid ObjectID hex.
var ErrInvalidID = errors.New("invalid id")

// FindOptions carries optional sort/limit modifiers for Find.
type FindOptions struct {
	Sort  bson.D
	Limit int64
}

type FindOption func(*FindOptions)

// SortByIDDesc orders results newest-first (ObjectIDs embed creation time).
func SortByIDDesc() FindOption {
	return func(o *FindOptions) { o.Sort = bson.D{{Key: "_id", Value: -1}} }
}

// WithLimit caps the number of returned documents.
func WithLimit(n int64) FindOption {
	return func(o *FindOptions) { o.Limit = n }
}

// InsertResult mirrors the driver's insert acknowledgement shape.
type InsertResult struct {
	Acknowledged bool        `json:"acknowledged"`
	InsertedID   interface{} `json:"insertedId"`
}

// UpdateResult mirrors the driver's update acknowledgement shape.
type UpdateResult struct {
	Acknowledged  bool        `json:"acknowledged"`
	MatchedCount  int64       `json:"matchedCount"`
	ModifiedCount int64       `json:"modifiedCount"`
	UpsertedCount int64       `json:"upsertedCount"`
	UpsertedID    interface{} `json:"upsertedId"`
}

// DeleteResult mirrors the driver's delete acknowledgement shape.
type DeleteResult struct {
	Acknowledged bool  `json:"acknowledged"`
	DeletedCount int64 `json:"deletedCount"`
}

// Collection is the per-collection operation surface consumed by handlers.
// Filters are simple field-equality maps. Every mutation addresses at most
// one document. FindOne returns (nil, nil) when no document matches.
type Collection interface {
	Find(ctx context.Context, filter bson.M, opts ...FindOption) ([]bson.M, error)
	FindOne(ctx context.Context, filter bson.M) (bson.M, error)
	InsertOne(ctx context.Context, doc bson.M) (*InsertResult, error)
	UpdateOne(ctx context.Context, filter bson.M, update bson.M, upsert bool) (*UpdateResult, error)
	DeleteOne(ctx context.Context, filter bson.M) (*DeleteResult, error)
}

// Store exposes named collections. Implementations must be safe for
// concurrent use by multiple in-flight requests.
type Store interface {
	Collection(name string) Collection
}

// ParseID converts a path parameter into the store's native identifier,
// failing with ErrInvalidID on malformed input.
func ParseID(raw string) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(raw)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w: %q", ErrInvalidID, raw)
	}
	return id, nil
}

func applyOptions(opts []FindOption) *FindOptions {
	o := &FindOptions{}
	for _, fn := range opts {
		fn(o)
	}
	return o
}
