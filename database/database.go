package database

import (
	"gorm.io/gorm"
)

type Database struct {
	blogPostRepo   *BlogPostRepo
	blogStatusRepo *BlogStatusRepo
	imageRepo      *ImageRepo
}

// New initializes a new Database struct with each repository using a shared GORM database instance
func New(db *gorm.DB) Database {
	return Database{
		blogPostRepo:   NewBlogPostRepo(db),
		blogStatusRepo: NewBlogStatusRepo(db),
		imageRepo:      NewImageRepo(db),
	}
}

// Accessor methods for each repository

func (d Database) BlogPostRepo() *BlogPostRepo {
	return d.blogPostRepo
}

func (d Database) BlogStatusRepo() *BlogStatusRepo {
	return d.blogStatusRepo
}

func (d Database) ImageRepo() *ImageRepo {
	return d.imageRepo
}
