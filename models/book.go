package models

// Book is an entry in the static books catalog shown on the public site.
// The catalog is compiled in; there is no books table.
type Book struct {
	Slug        string `json:"slug"`
	Title       string `json:"title"`
	Cover       string `json:"cover"`
	Description string `json:"description"`
}
