package models

import (
	"time"
)

// Image records a completed upload to the object store. Rows are written when
// the upload collaborator reports completion and removed only by an explicit
// delete; they are otherwise immutable.
type Image struct {
	ID        uint      `json:"id" db:"id" gorm:"primaryKey;autoIncrement;not null"`
	Name      string    `json:"name" db:"name" gorm:"type:varchar(100)"`
	URL       string    `json:"url" db:"url" gorm:"type:text"`
	Key       string    `json:"key" db:"key" gorm:"type:text"`
	Size      int64     `json:"size" db:"size" gorm:"type:integer"`
	Type      string    `json:"type" db:"type" gorm:"type:varchar(100)"`
	CreatedAt time.Time `json:"createdAt" db:"created_at" gorm:"type:timestamp"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at" gorm:"type:timestamp"`
}

func (Image) TableName() string {
	return "images"
}
