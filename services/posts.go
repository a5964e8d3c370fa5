package services

import (
	"errors"
	"time"

	"github.com/authorpages/author-site-backend/errs"
	"github.com/authorpages/author-site-backend/models"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// PostStore is the persistence capability the lifecycle manager needs.
// *database.BlogPostRepo satisfies it.
type PostStore interface {
	SlugStore
	FindAll() ([]*models.BlogPost, error)
	FindByID(id uint) (*models.BlogPost, error)
	FindBySlug(slug string) (*models.BlogPost, error)
	FindByStatusID(statusID uint) ([]*models.BlogPost, error)
	Add(post *models.BlogPost) error
	Update(post *models.BlogPost) error
	Delete(id uint) error
	CountAll() (int64, error)
	CountByStatusID(statusID uint) (int64, error)
}

// StatusStore is the status-vocabulary capability. *database.BlogStatusRepo
// satisfies it.
type StatusStore interface {
	FindAll() ([]*models.BlogStatus, error)
	FindByID(id uint) (*models.BlogStatus, error)
	FindByName(name string) (*models.BlogStatus, error)
	Add(status *models.BlogStatus) error
}

// PostService orchestrates the blog post lifecycle: create, update, status
// transition, delete, and the published listing. Slug assignment is delegated
// to GenerateUniqueSlug on create and on every title-carrying update.
type PostService struct {
	logger   zerolog.Logger
	posts    PostStore
	statuses StatusStore
	now      func() time.Time
}

func NewPostService(posts PostStore, statuses StatusStore) *PostService {
	return &PostService{
		logger:   log.With().Str("serviceName", "postService").Logger(),
		posts:    posts,
		statuses: statuses,
		now:      time.Now,
	}
}

// Analytics summarizes the dashboard analytics tab: total posts plus a
// per-status breakdown over the seeded vocabulary.
type Analytics struct {
	TotalPosts    int64            `json:"totalPosts"`
	PostsByStatus map[string]int64 `json:"postsByStatus"`
}

func (s *PostService) validateInput(title, content string) error {
	if title == "" {
		return errs.NewValidationError("title", "title is required")
	}
	if content == "" {
		return errs.NewValidationError("content", "content is required")
	}
	return nil
}

func (s *PostService) resolveStatusID(statusID uint) (*models.BlogStatus, error) {
	status, err := s.statuses.FindByID(statusID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errs.NewValidationError("statusId", "no such status")
	}
	if err != nil {
		return nil, errs.NewPersistenceError("find", "blog_status", err)
	}
	return status, nil
}

// Create validates the input, assigns a unique slug, stamps both timestamps
// with the same instant, and persists the post. A duplicate-slug constraint
// violation from a lost race comes back as a retryable conflict; the caller
// may re-run Create, which re-derives the slug.
func (s *PostService) Create(title, content string, statusID uint) (*models.BlogPost, error) {
	if err := s.validateInput(title, content); err != nil {
		return nil, err
	}
	status, err := s.resolveStatusID(statusID)
	if err != nil {
		return nil, err
	}

	slug, err := GenerateUniqueSlug(s.posts, title, 0)
	if err != nil {
		return nil, err
	}

	now := s.now()
	post := &models.BlogPost{
		Title:     title,
		Slug:      slug,
		Content:   content,
		StatusID:  statusID,
		Status:    *status,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.posts.Add(post); err != nil {
		return nil, s.translateWriteError("create", slug, err)
	}

	s.logger.Info().Uint("postID", post.ID).Str("slug", slug).Msg("Blog post created")
	return post, nil
}

// Update re-derives the slug excluding the post itself, so an unchanged title
// keeps its slug while a changed one acquires a fresh unique slug. CreatedAt
// is never touched; UpdatedAt is refreshed.
func (s *PostService) Update(id uint, title, content string, statusID uint) (*models.BlogPost, error) {
	if err := s.validateInput(title, content); err != nil {
		return nil, err
	}
	status, err := s.resolveStatusID(statusID)
	if err != nil {
		return nil, err
	}

	post, err := s.posts.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errs.NewNotFound("blog post")
	}
	if err != nil {
		return nil, errs.NewPersistenceError("find", "blog_post", err)
	}

	slug, err := GenerateUniqueSlug(s.posts, title, id)
	if err != nil {
		return nil, err
	}

	post.Title = title
	post.Slug = slug
	post.Content = content
	post.StatusID = statusID
	post.Status = *status
	post.UpdatedAt = s.now()

	if err := s.posts.Update(post); err != nil {
		return nil, s.translateWriteError("update", slug, err)
	}

	return post, nil
}

// TransitionStatus moves a post to the status named statusName. The name must
// belong to the closed vocabulary even though the status table is open; rows
// an operator added beyond it are not reachable through transitions.
func (s *PostService) TransitionStatus(id uint, statusName string) (*models.BlogPost, error) {
	if !models.IsKnownStatusName(statusName) {
		return nil, errs.NewValidationError("status", "unrecognized status name")
	}

	status, err := s.statuses.FindByName(statusName)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errs.NewStatusNotFound(statusName)
	}
	if err != nil {
		return nil, errs.NewPersistenceError("find", "blog_status", err)
	}

	post, err := s.posts.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errs.NewNotFound("blog post")
	}
	if err != nil {
		return nil, errs.NewPersistenceError("find", "blog_post", err)
	}

	post.StatusID = status.ID
	post.Status = *status
	post.UpdatedAt = s.now()

	if err := s.posts.Update(post); err != nil {
		return nil, s.translateWriteError("transition", post.Slug, err)
	}

	s.logger.Info().Uint("postID", id).Str("status", statusName).Msg("Blog post status changed")
	return post, nil
}

// Delete permanently removes a post. Deleting an id that does not exist is a
// no-op success: the store reports zero affected rows without an error, and
// image deletion behaves the same way, so the choice is applied consistently.
func (s *PostService) Delete(id uint) error {
	if err := s.posts.Delete(id); err != nil {
		return errs.NewPersistenceError("delete", "blog_post", err)
	}
	return nil
}

// ListPublished returns every post whose status row is named "published",
// ordered by creation time ascending. A missing "published" row yields an
// empty list rather than an error.
func (s *PostService) ListPublished() ([]*models.BlogPost, error) {
	return s.ListByStatusName(models.StatusPublished)
}

// ListByStatusName backs the dashboard tabs (drafts, archived) as well as the
// public published listing.
func (s *PostService) ListByStatusName(statusName string) ([]*models.BlogPost, error) {
	if !models.IsKnownStatusName(statusName) {
		return nil, errs.NewValidationError("status", "unrecognized status name")
	}

	status, err := s.statuses.FindByName(statusName)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return []*models.BlogPost{}, nil
	}
	if err != nil {
		return nil, errs.NewPersistenceError("find", "blog_status", err)
	}

	posts, err := s.posts.FindByStatusID(status.ID)
	if err != nil {
		return nil, errs.NewPersistenceError("list", "blog_post", err)
	}
	return posts, nil
}

// ListAll returns every post regardless of status. No ordering is guaranteed.
func (s *PostService) ListAll() ([]*models.BlogPost, error) {
	posts, err := s.posts.FindAll()
	if err != nil {
		return nil, errs.NewPersistenceError("list", "blog_post", err)
	}
	return posts, nil
}

// GetByID returns a single post by id.
func (s *PostService) GetByID(id uint) (*models.BlogPost, error) {
	post, err := s.posts.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errs.NewNotFound("blog post")
	}
	if err != nil {
		return nil, errs.NewPersistenceError("find", "blog_post", err)
	}
	return post, nil
}

// GetBySlug returns a single post by slug, used by the public post page.
func (s *PostService) GetBySlug(slug string) (*models.BlogPost, error) {
	post, err := s.posts.FindBySlug(slug)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errs.NewNotFound("blog post")
	}
	if err != nil {
		return nil, errs.NewPersistenceError("find", "blog_post", err)
	}
	return post, nil
}

// GetAnalytics counts all posts and breaks the total down by status row.
func (s *PostService) GetAnalytics() (*Analytics, error) {
	total, err := s.posts.CountAll()
	if err != nil {
		return nil, errs.NewPersistenceError("count", "blog_post", err)
	}

	statuses, err := s.statuses.FindAll()
	if err != nil {
		return nil, errs.NewPersistenceError("list", "blog_status", err)
	}

	byStatus := make(map[string]int64, len(statuses))
	for _, status := range statuses {
		count, err := s.posts.CountByStatusID(status.ID)
		if err != nil {
			return nil, errs.NewPersistenceError("count", "blog_post", err)
		}
		byStatus[status.Name] = count
	}

	return &Analytics{TotalPosts: total, PostsByStatus: byStatus}, nil
}

// translateWriteError separates the retryable slug conflict from every other
// store failure. gorm is opened with TranslateError, so driver duplicate-key
// errors surface as gorm.ErrDuplicatedKey.
func (s *PostService) translateWriteError(operation, slug string, err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		s.logger.Warn().Str("slug", slug).Msg("Slug uniqueness race lost at write time")
		return errs.NewDuplicateSlug(slug, err)
	}
	return errs.NewPersistenceError(operation, "blog_post", err)
}
