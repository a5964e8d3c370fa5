package models

// BlogStatus is a row in the open status vocabulary. The store accepts any
// name; the application boundary only ever resolves the closed set below.
type BlogStatus struct {
	ID   uint   `json:"id" db:"id" gorm:"primaryKey;autoIncrement;not null"`
	Name string `json:"name" db:"name" gorm:"type:varchar(100);not null"`
}

func (BlogStatus) TableName() string {
	return "blog_status"
}

// Conventional status names seeded at startup. Transition requests are checked
// against this set before the status table is consulted, so stray rows an
// operator adds never widen the lifecycle.
const (
	StatusDraft     = "draft"
	StatusPublished = "published"
	StatusArchived  = "archived"
)

var KnownStatusNames = []string{StatusDraft, StatusPublished, StatusArchived}

func IsKnownStatusName(name string) bool {
	for _, known := range KnownStatusNames {
		if name == known {
			return true
		}
	}
	return false
}
