package book

import (
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

var (
	// ErrNotFound is returned when no book matches the requested id.
	ErrNotFound = errors.New("book not found")
	// ErrDuplicateISBN is returned when an insert or update collides with
	// the unique ISBN index.
	ErrDuplicateISBN = errors.New("isbn already exists")
	// ErrInvalidArgument is returned for non-positive page or limit values.
	ErrInvalidArgument = errors.New("invalid argument")
)

// Genres are the fixed genre values a book may carry.
var Genres = []string{
	"Fiction",
	"Non-Fiction",
	"Mystery",
	"Romance",
	"Sci-Fi",
	"Fantasy",
	"Biography",
	"History",
	"Science",
	"Technology",
	"Self-Help",
	"Business",
}

const (
	FormatPaperback = "Paperback"
	FormatHardcover = "Hardcover"
	FormatEbook     = "Ebook"

	AvailabilityAvailable  = "Available"
	AvailabilityCheckedOut = "Checked Out"
	AvailabilityReserved   = "Reserved"

	DefaultLanguage = "English"
)

// Book represents one catalog record. ISBN is globally unique, enforced
// by a unique index on the collection.
type Book struct {
	ID           bson.ObjectID `json:"id" bson:"_id,omitempty"`
	Title        string        `json:"title" bson:"title"`
	Author       string        `json:"author" bson:"author"`
	Publisher    string        `json:"publisher" bson:"publisher"`
	Genre        string        `json:"genre" bson:"genre"`
	ISBN         string        `json:"isbn" bson:"isbn"`
	IssueDate    time.Time     `json:"issueDate" bson:"issueDate"`
	Rating       float64       `json:"rating" bson:"rating"`
	Format       string        `json:"format" bson:"format"`
	Pages        int           `json:"pages" bson:"pages"`
	Language     string        `json:"language" bson:"language"`
	Availability string        `json:"availability" bson:"availability"`
	Description  string        `json:"description,omitempty" bson:"description,omitempty"`
	CreatedAt    time.Time     `json:"createdAt" bson:"createdAt"`
	UpdatedAt    time.Time     `json:"updatedAt" bson:"updatedAt"`
}

// Update carries a partial field replacement; nil fields are untouched.
type Update struct {
	Title        *string    `bson:"title,omitempty"`
	Author       *string    `bson:"author,omitempty"`
	Publisher    *string    `bson:"publisher,omitempty"`
	Genre        *string    `bson:"genre,omitempty"`
	ISBN         *string    `bson:"isbn,omitempty"`
	IssueDate    *time.Time `bson:"issueDate,omitempty"`
	Rating       *float64   `bson:"rating,omitempty"`
	Format       *string    `bson:"format,omitempty"`
	Pages        *int       `bson:"pages,omitempty"`
	Language     *string    `bson:"language,omitempty"`
	Availability *string    `bson:"availability,omitempty"`
	Description  *string    `bson:"description,omitempty"`
}

// IsEmpty reports whether the update touches no fields at all.
func (u Update) IsEmpty() bool {
	return u.Title == nil && u.Author == nil && u.Publisher == nil &&
		u.Genre == nil && u.ISBN == nil && u.IssueDate == nil &&
		u.Rating == nil && u.Format == nil && u.Pages == nil &&
		u.Language == nil && u.Availability == nil && u.Description == nil
}

// ParseDate accepts the day-granular form a catalog form submits as well
// as a full RFC 3339 timestamp.
func ParseDate(s string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}
