package services

import (
	"github.com/authorpages/author-site-backend/errs"
	"github.com/authorpages/author-site-backend/models"
)

// bookCatalog is the static list behind the public books page. Titles change
// rarely enough that they ship with the binary.
var bookCatalog = []models.Book{
	{
		Slug:  "to-vow-or-not-to-vow",
		Title: "To Vow or Not to Vow",
		Cover: "/vow.jpg",
		Description: "Exploring the topic of whether making vows in the current day is Biblical. " +
			"The importance is rather in fulfilling the vows that are made.",
	},
	{
		Slug:  "behind-closed-doors",
		Title: "Behind Closed Doors: Guarding Your Dreams",
		Cover: "/behind.jpg",
		Description: "An insight into how we must keep our dreams private so we don't " +
			"'cast our fruit before it's time'.",
	},
}

// ListBooks returns the full catalog.
func ListBooks() []models.Book {
	books := make([]models.Book, len(bookCatalog))
	copy(books, bookCatalog)
	return books
}

// FindBookBySlug looks a book up by its public slug.
func FindBookBySlug(slug string) (*models.Book, error) {
	for _, book := range bookCatalog {
		if book.Slug == slug {
			return &book, nil
		}
	}
	return nil, errs.NewNotFound("book")
}
