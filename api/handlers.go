package api

import (
	"github.com/authorpages/author-site-backend/database"
	"github.com/authorpages/author-site-backend/services"
)

// initializeHandlers creates and returns all handlers organized in a routeHandlers struct
func initializeHandlers(db database.Database, objectStore services.ObjectStore, contactService *services.ContactService) *routeHandlers {
	postService := services.NewPostService(db.BlogPostRepo(), db.BlogStatusRepo())

	return &routeHandlers{
		blogPostHandler: newBlogPostHandler(postService),
		statusHandler:   newStatusHandler(db.BlogStatusRepo()),
		imageHandler:    newImageHandler(db.ImageRepo(), objectStore),
		bookHandler:     newBookHandler(),
		contactHandler:  newContactHandler(contactService),
	}
}
