package book

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/v2/bson"
)

func TestQuery_Validate(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		assert.NoError(t, Query{Page: 1, Limit: 10}.Validate())
	})

	t.Run("non-positive page", func(t *testing.T) {
		err := Query{Page: 0, Limit: 10}.Validate()
		assert.ErrorIs(t, err, ErrInvalidArgument)
	})

	t.Run("non-positive limit", func(t *testing.T) {
		err := Query{Page: 1, Limit: 0}.Validate()
		assert.ErrorIs(t, err, ErrInvalidArgument)

		err = Query{Page: 1, Limit: -5}.Validate()
		assert.ErrorIs(t, err, ErrInvalidArgument)
	})
}

func TestQuery_Filter(t *testing.T) {
	t.Run("no predicates", func(t *testing.T) {
		filter := Query{Page: 1, Limit: 10}.Filter()
		assert.Empty(t, filter)
	})

	t.Run("search builds case-insensitive OR group", func(t *testing.T) {
		filter := Query{Page: 1, Limit: 10, Search: "tolkien"}.Filter()

		or, ok := filter["$or"].([]bson.M)
		assert.True(t, ok)
		assert.Len(t, or, 3)

		fields := make([]string, 0, 3)
		for _, clause := range or {
			for field, rx := range clause {
				fields = append(fields, field)
				m := rx.(bson.M)
				assert.Equal(t, "tolkien", m["$regex"])
				assert.Equal(t, "i", m["$options"])
			}
		}
		assert.ElementsMatch(t, []string{"title", "author", "publisher"}, fields)
	})

	t.Run("search term is regex-escaped", func(t *testing.T) {
		filter := Query{Page: 1, Limit: 10, Search: "c++ (2nd ed.)"}.Filter()

		or := filter["$or"].([]bson.M)
		m := or[0]["title"].(bson.M)
		assert.Equal(t, `c\+\+ \(2nd ed\.\)`, m["$regex"])
	})

	t.Run("genre and availability are exact matches", func(t *testing.T) {
		filter := Query{Page: 1, Limit: 10, Genre: "Fiction", Availability: "Checked Out"}.Filter()

		assert.Equal(t, "Fiction", filter["genre"])
		assert.Equal(t, "Checked Out", filter["availability"])
		assert.NotContains(t, filter, "$or")
	})

	t.Run("all predicates AND-combined at the top level", func(t *testing.T) {
		filter := Query{Page: 1, Limit: 10, Search: "ring", Genre: "Fantasy", Availability: "Available"}.Filter()

		assert.Len(t, filter, 3)
		assert.Contains(t, filter, "$or")
		assert.Equal(t, "Fantasy", filter["genre"])
		assert.Equal(t, "Available", filter["availability"])
	})
}

func TestQuery_Sort(t *testing.T) {
	sort := Query{Page: 1, Limit: 10}.Sort()

	assert.Equal(t, bson.D{
		{Key: "createdAt", Value: -1},
		{Key: "_id", Value: -1},
	}, sort)
}

func TestQuery_Skip(t *testing.T) {
	tests := []struct {
		name  string
		page  int
		limit int
		want  int64
	}{
		{"first page", 1, 10, 0},
		{"second page", 2, 10, 10},
		{"fifth page small limit", 5, 3, 12},
		{"large page", 1000, 100, 99900},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Query{Page: tt.page, Limit: tt.limit}.Skip())
		})
	}
}

func TestQuery_TotalPages(t *testing.T) {
	tests := []struct {
		name  string
		limit int
		total int64
		want  int
	}{
		{"empty result", 10, 0, 0},
		{"single partial page", 10, 3, 1},
		{"exact multiple", 10, 20, 2},
		{"remainder adds a page", 10, 21, 3},
		{"limit one", 1, 7, 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Query{Page: 1, Limit: tt.limit}.TotalPages(tt.total))
		})
	}
}
