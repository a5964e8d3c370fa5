package database

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/authorpages/author-site-backend/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens an isolated in-memory sqlite database migrated to the
// application schema, with the same error translation the production
// postgres connection uses.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("opening sqlite: %v", err)
	}

	if err := db.AutoMigrate(&models.BlogStatus{}, &models.BlogPost{}, &models.Image{}); err != nil {
		t.Fatalf("migrating schema: %v", err)
	}

	return db
}

func seedStatuses(t *testing.T, db *gorm.DB) map[string]uint {
	t.Helper()

	repo := NewBlogStatusRepo(db)
	ids := make(map[string]uint, len(models.KnownStatusNames))
	for _, name := range models.KnownStatusNames {
		if err := repo.EnsureNamed(name); err != nil {
			t.Fatalf("seeding status %q: %v", name, err)
		}
		row, err := repo.FindByName(name)
		if err != nil {
			t.Fatalf("finding status %q: %v", name, err)
		}
		ids[name] = row.ID
	}
	return ids
}

func newPost(title, slug string, statusID uint, createdAt time.Time) *models.BlogPost {
	return &models.BlogPost{
		Title:     title,
		Slug:      slug,
		Content:   "content",
		StatusID:  statusID,
		CreatedAt: createdAt,
		UpdatedAt: createdAt,
	}
}

func TestBlogPostRepo_SlugExists(t *testing.T) {
	db := newTestDB(t)
	ids := seedStatuses(t, db)
	repo := NewBlogPostRepo(db)

	post := newPost("Hello World", "hello-world", ids[models.StatusDraft], time.Now())
	if err := repo.Add(post); err != nil {
		t.Fatalf("Add: %v", err)
	}

	taken, err := repo.SlugExists("hello-world", 0)
	if err != nil {
		t.Fatalf("SlugExists: %v", err)
	}
	if !taken {
		t.Error("expected hello-world to be taken")
	}

	// The post does not collide with itself when excluded.
	taken, err = repo.SlugExists("hello-world", post.ID)
	if err != nil {
		t.Fatalf("SlugExists: %v", err)
	}
	if taken {
		t.Error("expected hello-world to be free when its own post is excluded")
	}

	taken, err = repo.SlugExists("something-else", 0)
	if err != nil {
		t.Fatalf("SlugExists: %v", err)
	}
	if taken {
		t.Error("expected something-else to be free")
	}
}

func TestBlogPostRepo_UniqueSlugConstraint(t *testing.T) {
	db := newTestDB(t)
	ids := seedStatuses(t, db)
	repo := NewBlogPostRepo(db)

	if err := repo.Add(newPost("A", "same-slug", ids[models.StatusDraft], time.Now())); err != nil {
		t.Fatalf("Add: %v", err)
	}

	err := repo.Add(newPost("B", "same-slug", ids[models.StatusDraft], time.Now()))
	if !errors.Is(err, gorm.ErrDuplicatedKey) {
		t.Fatalf("err = %v, want gorm.ErrDuplicatedKey from the unique index", err)
	}
}

func TestBlogPostRepo_FindByStatusIDOrdering(t *testing.T) {
	db := newTestDB(t)
	ids := seedStatuses(t, db)
	repo := NewBlogPostRepo(db)

	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	published := ids[models.StatusPublished]

	// Insert out of chronological order.
	for i, offset := range []int{2, 0, 1} {
		post := newPost(fmt.Sprintf("Post %d", i), fmt.Sprintf("post-%d", i),
			published, base.AddDate(0, 0, offset))
		if err := repo.Add(post); err != nil {
			t.Fatalf("Add: %v", err)
		}
	}
	if err := repo.Add(newPost("Draft", "draft-post", ids[models.StatusDraft], base)); err != nil {
		t.Fatalf("Add: %v", err)
	}

	posts, err := repo.FindByStatusID(published)
	if err != nil {
		t.Fatalf("FindByStatusID: %v", err)
	}
	if len(posts) != 3 {
		t.Fatalf("len = %d, want only the 3 published posts", len(posts))
	}
	for i := 1; i < len(posts); i++ {
		if posts[i].CreatedAt.Before(posts[i-1].CreatedAt) {
			t.Errorf("posts out of order at %d: %v before %v", i, posts[i].CreatedAt, posts[i-1].CreatedAt)
		}
	}
}

func TestBlogPostRepo_DeleteRemovesLookups(t *testing.T) {
	db := newTestDB(t)
	ids := seedStatuses(t, db)
	repo := NewBlogPostRepo(db)

	post := newPost("Doomed", "doomed", ids[models.StatusDraft], time.Now())
	if err := repo.Add(post); err != nil {
		t.Fatalf("Add: %v", err)
	}

	if err := repo.Delete(post.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	if _, err := repo.FindByID(post.ID); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Errorf("FindByID after delete: err = %v, want record not found", err)
	}
	if _, err := repo.FindBySlug("doomed"); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Errorf("FindBySlug after delete: err = %v, want record not found", err)
	}

	// Deleting again is a no-op success.
	if err := repo.Delete(post.ID); err != nil {
		t.Errorf("second Delete: %v", err)
	}
}

func TestBlogPostRepo_Counts(t *testing.T) {
	db := newTestDB(t)
	ids := seedStatuses(t, db)
	repo := NewBlogPostRepo(db)

	now := time.Now()
	if err := repo.Add(newPost("A", "a", ids[models.StatusDraft], now)); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if err := repo.Add(newPost("B", "b", ids[models.StatusPublished], now)); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if err := repo.Add(newPost("C", "c", ids[models.StatusPublished], now)); err != nil {
		t.Fatalf("Add: %v", err)
	}

	total, err := repo.CountAll()
	if err != nil {
		t.Fatalf("CountAll: %v", err)
	}
	if total != 3 {
		t.Errorf("CountAll = %d, want 3", total)
	}

	published, err := repo.CountByStatusID(ids[models.StatusPublished])
	if err != nil {
		t.Fatalf("CountByStatusID: %v", err)
	}
	if published != 2 {
		t.Errorf("published count = %d, want 2", published)
	}
}

func TestBlogStatusRepo_EnsureNamedIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	repo := NewBlogStatusRepo(db)

	for i := 0; i < 3; i++ {
		if err := repo.EnsureNamed(models.StatusDraft); err != nil {
			t.Fatalf("EnsureNamed: %v", err)
		}
	}

	statuses, err := repo.FindAll()
	if err != nil {
		t.Fatalf("FindAll: %v", err)
	}
	if len(statuses) != 1 {
		t.Errorf("len = %d, want a single draft row", len(statuses))
	}
}

func TestImageRepo_AddFindDelete(t *testing.T) {
	db := newTestDB(t)
	repo := NewImageRepo(db)

	image := &models.Image{
		Name: "cover.jpg",
		URL:  "https://cdn.example.com/uploads/cover.jpg",
		Key:  "uploads/cover.jpg",
		Size: 2048,
		Type: "image/jpeg",
	}
	if err := repo.Add(image); err != nil {
		t.Fatalf("Add: %v", err)
	}

	found, err := repo.FindByID(image.ID)
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if found.Key != image.Key {
		t.Errorf("Key = %q, want %q", found.Key, image.Key)
	}

	if err := repo.Delete(image.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := repo.FindByID(image.ID); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Errorf("FindByID after delete: err = %v, want record not found", err)
	}
}
