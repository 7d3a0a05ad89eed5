package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"libraryapi/internal/auth"
	"libraryapi/internal/book"
	"libraryapi/internal/config"
	"libraryapi/internal/platform/mongodb"
)

// seed wipes the catalog and credential collections, recreates the
// indexes, and loads the bootstrap admin plus a set of sample books.
func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("cannot load configuration", slog.Any("error", err))
		os.Exit(1)
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client, err := mongodb.Connect(ctx, cfg.Mongo)
	if err != nil {
		logger.Error("cannot connect to mongodb", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() { _ = client.Disconnect(context.Background()) }()

	db := client.Database(cfg.Mongo.Database)
	for _, name := range []string{"books", "admins"} {
		if err := db.Collection(name).Drop(ctx); err != nil {
			logger.Error("cannot drop collection", slog.String("collection", name), slog.Any("error", err))
			os.Exit(1)
		}
	}
	logger.Info("cleared existing data")

	bookRepo := book.NewMongoRepo(db)
	adminRepo := auth.NewMongoRepo(db)
	if err := bookRepo.EnsureIndexes(ctx); err != nil {
		logger.Error("cannot create book indexes", slog.Any("error", err))
		os.Exit(1)
	}
	if err := adminRepo.EnsureIndexes(ctx); err != nil {
		logger.Error("cannot create admin indexes", slog.Any("error", err))
		os.Exit(1)
	}

	if err := adminRepo.EnsureAdmin(ctx, logger, cfg.AdminUsername, cfg.AdminPassword); err != nil {
		logger.Error("cannot create admin", slog.Any("error", err))
		os.Exit(1)
	}

	for i := range sampleBooks {
		if err := bookRepo.Insert(ctx, &sampleBooks[i]); err != nil {
			logger.Error("cannot insert book",
				slog.String("isbn", sampleBooks[i].ISBN),
				slog.Any("error", err),
			)
			os.Exit(1)
		}
	}

	logger.Info("database seeded",
		slog.Int("books", len(sampleBooks)),
		slog.String("admin", cfg.AdminUsername),
	)
}

func date(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

var sampleBooks = []book.Book{
	{
		Title: "The Great Gatsby", Author: "F. Scott Fitzgerald", Publisher: "Scribner",
		Genre: "Fiction", ISBN: "978-0-7432-7356-5", IssueDate: date("2004-09-30"),
		Rating: 4.2, Format: book.FormatPaperback, Pages: 180,
		Language: book.DefaultLanguage, Availability: book.AvailabilityAvailable,
		Description: "A classic American novel set in the Jazz Age, exploring themes of wealth, love, and the American Dream.",
	},
	{
		Title: "To Kill a Mockingbird", Author: "Harper Lee", Publisher: "J.B. Lippincott & Co.",
		Genre: "Fiction", ISBN: "978-0-06-112008-4", IssueDate: date("1960-07-11"),
		Rating: 4.8, Format: book.FormatHardcover, Pages: 376,
		Language: book.DefaultLanguage, Availability: book.AvailabilityAvailable,
		Description: "A gripping tale of racial injustice and childhood innocence in the American South.",
	},
	{
		Title: "1984", Author: "George Orwell", Publisher: "Secker & Warburg",
		Genre: "Sci-Fi", ISBN: "978-0-452-28423-4", IssueDate: date("1949-06-08"),
		Rating: 4.6, Format: book.FormatPaperback, Pages: 328,
		Language: book.DefaultLanguage, Availability: book.AvailabilityCheckedOut,
		Description: "A dystopian social science fiction novel about totalitarian control and surveillance.",
	},
	{
		Title: "Pride and Prejudice", Author: "Jane Austen", Publisher: "T. Egerton",
		Genre: "Romance", ISBN: "978-0-14-143951-8", IssueDate: date("1813-01-28"),
		Rating: 4.4, Format: book.FormatEbook, Pages: 432,
		Language: book.DefaultLanguage, Availability: book.AvailabilityAvailable,
		Description: "A romantic novel that critiques the British landed gentry at the end of the 18th century.",
	},
	{
		Title: "The Catcher in the Rye", Author: "J.D. Salinger", Publisher: "Little, Brown and Company",
		Genre: "Fiction", ISBN: "978-0-316-76948-0", IssueDate: date("1951-07-16"),
		Rating: 3.8, Format: book.FormatPaperback, Pages: 277,
		Language: book.DefaultLanguage, Availability: book.AvailabilityReserved,
		Description: "A controversial novel about teenage rebellion and alienation in post-war America.",
	},
	{
		Title: "The Lord of the Rings", Author: "J.R.R. Tolkien", Publisher: "George Allen & Unwin",
		Genre: "Fantasy", ISBN: "978-0-544-00341-5", IssueDate: date("1954-07-29"),
		Rating: 4.9, Format: book.FormatHardcover, Pages: 1216,
		Language: book.DefaultLanguage, Availability: book.AvailabilityAvailable,
		Description: "An epic high fantasy novel about the quest to destroy the One Ring and defeat the Dark Lord Sauron.",
	},
	{
		Title: "The Da Vinci Code", Author: "Dan Brown", Publisher: "Doubleday",
		Genre: "Mystery", ISBN: "978-0-385-50420-1", IssueDate: date("2003-03-18"),
		Rating: 4.1, Format: book.FormatPaperback, Pages: 689,
		Language: book.DefaultLanguage, Availability: book.AvailabilityAvailable,
		Description: "A mystery thriller that follows symbologist Robert Langdon as he investigates a murder in the Louvre.",
	},
	{
		Title: "Steve Jobs", Author: "Walter Isaacson", Publisher: "Simon & Schuster",
		Genre: "Biography", ISBN: "978-1-4516-4853-9", IssueDate: date("2011-10-24"),
		Rating: 4.5, Format: book.FormatHardcover, Pages: 656,
		Language: book.DefaultLanguage, Availability: book.AvailabilityAvailable,
		Description: "The authorized biography of Apple co-founder Steve Jobs, based on extensive interviews.",
	},
	{
		Title: "Sapiens", Author: "Yuval Noah Harari", Publisher: "Harvill Secker",
		Genre: "History", ISBN: "978-0-06-231609-7", IssueDate: date("2014-09-04"),
		Rating: 4.7, Format: book.FormatEbook, Pages: 443,
		Language: book.DefaultLanguage, Availability: book.AvailabilityAvailable,
		Description: "A brief history of humankind, exploring how Homo sapiens came to dominate the world.",
	},
	{
		Title: "The Lean Startup", Author: "Eric Ries", Publisher: "Crown Business",
		Genre: "Business", ISBN: "978-0-307-88789-4", IssueDate: date("2011-09-13"),
		Rating: 4.3, Format: book.FormatPaperback, Pages: 336,
		Language: book.DefaultLanguage, Availability: book.AvailabilityCheckedOut,
		Description: "A methodology for developing businesses and products through validated learning and iterative design.",
	},
}
