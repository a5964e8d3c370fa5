package database

import (
	"github.com/authorpages/author-site-backend/models"
	"gorm.io/gorm"
)

type ImageRepo struct {
	db *gorm.DB
}

func NewImageRepo(db *gorm.DB) *ImageRepo {
	return &ImageRepo{db}
}

// FindAll returns all uploaded image records
func (r *ImageRepo) FindAll() ([]*models.Image, error) {
	var images []*models.Image
	err := r.db.Find(&images).Error
	return images, err
}

// FindByID returns an image record by its ID
func (r *ImageRepo) FindByID(id uint) (*models.Image, error) {
	var image models.Image
	err := r.db.First(&image, id).Error
	if err != nil {
		return nil, err
	}
	return &image, nil
}

// Add inserts a new image record into the database
func (r *ImageRepo) Add(image *models.Image) error {
	return r.db.Create(image).Error
}

// Delete removes an image record from the database by id
func (r *ImageRepo) Delete(id uint) error {
	return r.db.Delete(&models.Image{}, id).Error
}
