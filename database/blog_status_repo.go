package database

import (
	"errors"

	"github.com/authorpages/author-site-backend/models"
	"gorm.io/gorm"
)

type BlogStatusRepo struct {
	db *gorm.DB
}

func NewBlogStatusRepo(db *gorm.DB) *BlogStatusRepo {
	return &BlogStatusRepo{db}
}

// FindAll returns every status row, including any an operator added beyond
// the seeded vocabulary.
func (r *BlogStatusRepo) FindAll() ([]*models.BlogStatus, error) {
	var statuses []*models.BlogStatus
	err := r.db.Find(&statuses).Error
	return statuses, err
}

// FindByID returns a status row by its ID
func (r *BlogStatusRepo) FindByID(id uint) (*models.BlogStatus, error) {
	var status models.BlogStatus
	err := r.db.First(&status, id).Error
	if err != nil {
		return nil, err
	}
	return &status, nil
}

// FindByName returns the first status row with the given name
func (r *BlogStatusRepo) FindByName(name string) (*models.BlogStatus, error) {
	var status models.BlogStatus
	err := r.db.Where("name = ?", name).First(&status).Error
	if err != nil {
		return nil, err
	}
	return &status, nil
}

// Add inserts a new status row into the database
func (r *BlogStatusRepo) Add(status *models.BlogStatus) error {
	return r.db.Create(status).Error
}

// EnsureNamed inserts a status row for name unless one already exists.
// Used to seed the conventional vocabulary at startup.
func (r *BlogStatusRepo) EnsureNamed(name string) error {
	err := r.db.Where("name = ?", name).First(&models.BlogStatus{}).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return r.db.Create(&models.BlogStatus{Name: name}).Error
}
