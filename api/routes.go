package api

import (
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/httprate"
)

// setupRoutes wires the public site surface and the dashboard surface.
func setupRoutes(r chi.Router, handlers *routeHandlers) {
	// Public site endpoints
	r.Group(func(r chi.Router) {
		r.Use(ColoredHTTPLoggingMiddleware)

		r.Get("/posts/published", handlers.blogPostHandler.getPublishedPosts())
		r.Get("/post/slug/{slug}", handlers.blogPostHandler.getBlogPostBySlug())

		r.Get("/books", handlers.bookHandler.getAllBooks())
		r.Get("/book/{bookSlug}", handlers.bookHandler.getBook())

		r.Get("/gallery", handlers.imageHandler.getAllImages())

		// Contact form is the only unauthenticated write; keep it throttled.
		r.With(httprate.LimitByIP(5, time.Minute)).
			Post("/contact", handlers.contactHandler.submitContact())
	})

	// Dashboard endpoints
	r.Group(func(r chi.Router) {
		r.Use(ColoredHTTPLoggingMiddleware)

		r.Get("/blog-posts", handlers.blogPostHandler.getAllBlogPosts())
		r.Get("/blog-post/{blogPostID}", handlers.blogPostHandler.getBlogPost())
		r.Post("/blog-post", handlers.blogPostHandler.createBlogPost())
		r.Put("/blog-post/{blogPostID}", handlers.blogPostHandler.updateBlogPost())
		r.Post("/blog-post/{blogPostID}/status", handlers.blogPostHandler.transitionBlogPostStatus())
		r.Delete("/blog-post/{blogPostID}", handlers.blogPostHandler.deleteBlogPost())

		r.Get("/statuses", handlers.statusHandler.getAllStatuses())
		r.Post("/status", handlers.statusHandler.createStatus())

		r.Get("/images", handlers.imageHandler.getAllImages())
		r.Get("/uploads/sign", handlers.imageHandler.signUpload())
		r.Post("/uploads/complete", handlers.imageHandler.completeUpload())
		r.Delete("/image/{imageID}", handlers.imageHandler.deleteImage())

		r.Get("/analytics", handlers.blogPostHandler.getAnalytics())
	})
}
