package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/samber/lo"

	"github.com/authorpages/author-site-backend/errs"
	"github.com/authorpages/author-site-backend/models"
	"github.com/authorpages/author-site-backend/services"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type blogPostHandler struct {
	responder   Responder
	logger      zerolog.Logger
	postService *services.PostService
}

func newBlogPostHandler(postService *services.PostService) blogPostHandler {
	logger := log.With().Str("handlerName", "blogPostHandler").Logger()

	return blogPostHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		postService: postService,
	}
}

// BlogPostCollection represents multiple blog posts
type BlogPostCollection struct {
	BlogPosts []models.BlogPost `json:"blogPosts"`
	Total     int               `json:"total,omitempty"`
}

func collectPosts(posts []*models.BlogPost) BlogPostCollection {
	items := lo.Map(posts, func(post *models.BlogPost, _ int) models.BlogPost {
		return *post
	})
	return BlogPostCollection{BlogPosts: items, Total: len(items)}
}

// getAllBlogPosts retrieves all blog posts for the dashboard
// @Summary Get all blog posts
// @Description Retrieves all blog posts from the database regardless of status
// @Tags Blog Posts
// @Produce json
// @Success 200 {object} BlogPostCollection "List of blog posts"
// @Failure 500 {object} ErrorResponse "Internal Server Error - Error fetching blog posts"
// @Router /blog-posts [get]
func (h blogPostHandler) getAllBlogPosts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		statusName := r.URL.Query().Get("status")

		var (
			posts []*models.BlogPost
			err   error
		)
		if statusName != "" {
			posts, err = h.postService.ListByStatusName(statusName)
		} else {
			posts, err = h.postService.ListAll()
		}
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, collectPosts(posts))
	}
}

// getPublishedPosts retrieves the public blog listing
// @Summary Get published blog posts
// @Description Retrieves posts whose status is "published", ordered by creation time ascending
// @Tags Blog Posts
// @Produce json
// @Success 200 {object} BlogPostCollection "Published posts in creation order"
// @Failure 500 {object} ErrorResponse "Internal Server Error - Error fetching blog posts"
// @Router /posts/published [get]
func (h blogPostHandler) getPublishedPosts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		posts, err := h.postService.ListPublished()
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, collectPosts(posts))
	}
}

// getBlogPost retrieves a specific blog post by ID
// @Summary Get blog post
// @Tags Blog Posts
// @Produce json
// @Param blogPostID path int true "Blog Post ID"
// @Success 200 {object} models.BlogPost "Blog post details"
// @Failure 400 {object} ErrorResponse "Bad Request - Invalid blogPostID"
// @Failure 404 {object} ErrorResponse "Not Found - Blog post not found"
// @Router /blog-post/{blogPostID} [get]
func (h blogPostHandler) getBlogPost() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		blogPostID, err := parseID(chi.URLParam(r, "blogPostID"), "blogPostID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		post, err := h.postService.GetByID(blogPostID)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, post)
	}
}

// getBlogPostBySlug retrieves a blog post by its public slug
// @Summary Get blog post by slug
// @Tags Blog Posts
// @Produce json
// @Param slug path string true "Blog post slug"
// @Success 200 {object} models.BlogPost "Blog post details"
// @Failure 404 {object} ErrorResponse "Not Found - Blog post not found"
// @Router /post/slug/{slug} [get]
func (h blogPostHandler) getBlogPostBySlug() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slug := chi.URLParam(r, "slug")
		if slug == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("missing slug"))
			return
		}

		post, err := h.postService.GetBySlug(slug)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, post)
	}
}

// createBlogPost creates a new blog post
// @Summary Create blog post
// @Description Creates a new blog post; the slug is derived from the title and made unique
// @Tags Blog Posts
// @Accept json
// @Produce json
// @Param blogPost body blogPostRequest true "Blog post data"
// @Success 201 {object} models.BlogPost "Created blog post"
// @Failure 400 {object} ErrorResponse "Bad Request - Invalid blog post data"
// @Failure 409 {object} ErrorResponse "Conflict - Slug race lost, safe to retry"
// @Failure 500 {object} ErrorResponse "Internal Server Error - Error creating blog post"
// @Router /blog-post [post]
func (h blogPostHandler) createBlogPost() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		bodyBytes, err := io.ReadAll(r.Body)
		if err != nil {
			h.logger.Error().Err(err).Msg("Failed to read request body")
			h.responder.WriteError(w, errs.NewBadRequestError("failed to read request body"))
			return
		}

		var payload blogPostRequest
		if err := json.NewDecoder(bytes.NewReader(bodyBytes)).Decode(&payload); err != nil {
			h.logger.Error().Err(err).Str("body", string(bodyBytes)).Msg("Failed to decode blog post request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if err := validatePayload(payload); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		post, err := h.postService.Create(payload.Title, payload.Content, payload.StatusID)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, post)
	}
}

// updateBlogPost updates an existing blog post
// @Summary Update blog post
// @Description Updates an existing blog post; the slug is re-derived, excluding the post itself
// @Tags Blog Posts
// @Accept json
// @Produce json
// @Param blogPostID path int true "Blog Post ID"
// @Param blogPost body blogPostRequest true "Updated blog post data"
// @Success 200 {object} models.BlogPost "Updated blog post"
// @Failure 400 {object} ErrorResponse "Bad Request - Invalid blog post data"
// @Failure 404 {object} ErrorResponse "Not Found - Blog post not found"
// @Router /blog-post/{blogPostID} [put]
func (h blogPostHandler) updateBlogPost() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		blogPostID, err := parseID(chi.URLParam(r, "blogPostID"), "blogPostID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		var payload blogPostRequest
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if err := validatePayload(payload); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		post, err := h.postService.Update(blogPostID, payload.Title, payload.Content, payload.StatusID)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, post)
	}
}

// transitionBlogPostStatus moves a post between draft, published and archived
// @Summary Transition blog post status
// @Tags Blog Posts
// @Accept json
// @Produce json
// @Param blogPostID path int true "Blog Post ID"
// @Param transition body statusTransitionRequest true "Target status name"
// @Success 200 {object} models.BlogPost "Post with its new status"
// @Failure 400 {object} ErrorResponse "Bad Request - Unrecognized status name"
// @Failure 404 {object} ErrorResponse "Not Found - Post or status row not found"
// @Router /blog-post/{blogPostID}/status [post]
func (h blogPostHandler) transitionBlogPostStatus() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		blogPostID, err := parseID(chi.URLParam(r, "blogPostID"), "blogPostID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		var payload statusTransitionRequest
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if err := validatePayload(payload); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		post, err := h.postService.TransitionStatus(blogPostID, payload.Status)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, post)
	}
}

// deleteBlogPost deletes a blog post by ID
// @Summary Delete blog post
// @Description Permanently deletes a blog post; deleting a missing ID is a no-op success
// @Tags Blog Posts
// @Produce json
// @Param blogPostID path int true "Blog Post ID"
// @Success 200 {object} map[string]string "Success message"
// @Failure 400 {object} ErrorResponse "Bad Request - Invalid blogPostID"
// @Router /blog-post/{blogPostID} [delete]
func (h blogPostHandler) deleteBlogPost() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		blogPostID, err := parseID(chi.URLParam(r, "blogPostID"), "blogPostID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := h.postService.Delete(blogPostID); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "blog post deleted successfully",
		})
	}
}

// getAnalytics summarizes post counts for the dashboard analytics tab
// @Summary Get analytics
// @Tags Analytics
// @Produce json
// @Success 200 {object} services.Analytics "Post totals"
// @Router /analytics [get]
func (h blogPostHandler) getAnalytics() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		analytics, err := h.postService.GetAnalytics()
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, analytics)
	}
}
