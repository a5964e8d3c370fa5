package database

import (
	"github.com/authorpages/author-site-backend/models"
	"gorm.io/gorm"
)

type BlogPostRepo struct {
	db *gorm.DB
}

func NewBlogPostRepo(db *gorm.DB) *BlogPostRepo {
	return &BlogPostRepo{db}
}

// FindAll returns all blog posts. No ordering is guaranteed here; only the
// published listing carries an ordering contract.
func (r *BlogPostRepo) FindAll() ([]*models.BlogPost, error) {
	var blogPosts []*models.BlogPost
	err := r.db.Preload("Status").Find(&blogPosts).Error
	return blogPosts, err
}

// FindByID returns a blog post by its ID
func (r *BlogPostRepo) FindByID(id uint) (*models.BlogPost, error) {
	var blogPost models.BlogPost
	err := r.db.Preload("Status").First(&blogPost, id).Error
	if err != nil {
		return nil, err
	}
	return &blogPost, nil
}

// FindBySlug returns a blog post by its slug
func (r *BlogPostRepo) FindBySlug(slug string) (*models.BlogPost, error) {
	var blogPost models.BlogPost
	err := r.db.Preload("Status").Where("slug = ?", slug).First(&blogPost).Error
	if err != nil {
		return nil, err
	}
	return &blogPost, nil
}

// SlugExists reports whether any post other than excludeID already holds slug.
// Pass excludeID 0 when creating; no stored post ever has id 0.
func (r *BlogPostRepo) SlugExists(slug string, excludeID uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.BlogPost{}).
		Where("slug = ? AND id <> ?", slug, excludeID).
		Count(&count).Error
	return count > 0, err
}

// FindByStatusID returns posts carrying the given status, ordered by creation
// time ascending. Used for the public published listing and the dashboard tabs.
func (r *BlogPostRepo) FindByStatusID(statusID uint) ([]*models.BlogPost, error) {
	var blogPosts []*models.BlogPost
	err := r.db.Preload("Status").
		Where("status_id = ?", statusID).
		Order("created_at ASC").
		Find(&blogPosts).Error
	return blogPosts, err
}

// Add inserts a new blog post into the database. The Status association is
// never written through the post; status rows are managed on their own.
func (r *BlogPostRepo) Add(blogPost *models.BlogPost) error {
	return r.db.Omit("Status").Create(blogPost).Error
}

// Update updates an existing blog post in the database
func (r *BlogPostRepo) Update(blogPost *models.BlogPost) error {
	return r.db.Omit("Status").Save(blogPost).Error
}

// Delete removes a blog post from the database by id
func (r *BlogPostRepo) Delete(id uint) error {
	return r.db.Delete(&models.BlogPost{}, id).Error
}

// CountAll returns the total number of posts
func (r *BlogPostRepo) CountAll() (int64, error) {
	var count int64
	err := r.db.Model(&models.BlogPost{}).Count(&count).Error
	return count, err
}

// CountByStatusID returns the number of posts carrying the given status
func (r *BlogPostRepo) CountByStatusID(statusID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.BlogPost{}).
		Where("status_id = ?", statusID).
		Count(&count).Error
	return count, err
}
