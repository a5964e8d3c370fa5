package models

import (
	"time"
)

// BlogPost is a blog entry managed from the dashboard. The slug is derived
// from the title and is unique across all posts; public URLs use it in place
// of the numeric id.
type BlogPost struct {
	ID        uint       `json:"id" db:"id" gorm:"primaryKey;autoIncrement;not null"`
	Title     string     `json:"title" db:"title" gorm:"type:varchar(100);not null"`
	Slug      string     `json:"slug" db:"slug" gorm:"type:varchar(100);not null;uniqueIndex"`
	Content   string     `json:"content" db:"content" gorm:"type:text;not null"`
	StatusID  uint       `json:"statusId" db:"status_id" gorm:"not null"`
	Status    BlogStatus `json:"status,omitempty" gorm:"foreignKey:StatusID;references:ID"`
	CreatedAt time.Time  `json:"createdAt" db:"created_at" gorm:"type:timestamp;not null"`
	UpdatedAt time.Time  `json:"updatedAt" db:"updated_at" gorm:"type:timestamp;not null"`
}

func (BlogPost) TableName() string {
	return "blog_post"
}
