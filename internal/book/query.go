package book

import (
	"fmt"
	"regexp"

	"go.mongodb.org/mongo-driver/v2/bson"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10
	// MaxLimit caps the caller-controlled page size so one request cannot
	// pull the whole collection.
	MaxLimit = 100
)

// Query is one page request over the catalog: pagination plus zero or
// more filter predicates.
type Query struct {
	Page         int
	Limit        int
	Search       string
	Genre        string
	Availability string
}

// Validate rejects non-positive pagination values.
func (q Query) Validate() error {
	if q.Page < 1 {
		return fmt.Errorf("%w: page must be >= 1", ErrInvalidArgument)
	}
	if q.Limit < 1 {
		return fmt.Errorf("%w: limit must be >= 1", ErrInvalidArgument)
	}
	return nil
}

// Filter translates the active predicates into a document-store filter.
// A non-empty search term matches case-insensitively as a substring of
// title, author or publisher (OR-combined); genre and availability are
// exact matches AND-combined with the search group.
func (q Query) Filter() bson.M {
	filter := bson.M{}

	if q.Search != "" {
		rx := bson.M{"$regex": regexp.QuoteMeta(q.Search), "$options": "i"}
		filter["$or"] = []bson.M{
			{"title": rx},
			{"author": rx},
			{"publisher": rx},
		}
	}
	if q.Genre != "" {
		filter["genre"] = q.Genre
	}
	if q.Availability != "" {
		filter["availability"] = q.Availability
	}

	return filter
}

// Sort orders results newest-first; _id breaks ties deterministically.
func (q Query) Sort() bson.D {
	return bson.D{
		{Key: "createdAt", Value: -1},
		{Key: "_id", Value: -1},
	}
}

// Skip is the offset of the requested page.
func (q Query) Skip() int64 {
	return int64(q.Page-1) * int64(q.Limit)
}

// TotalPages is ceil(total/limit); zero when nothing matched.
func (q Query) TotalPages(total int64) int {
	return int((total + int64(q.Limit) - 1) / int64(q.Limit))
}
