package services

import (
	"errors"
	"testing"
)

// mockSlugStore is a func-field mock of SlugStore for unit tests.
type mockSlugStore struct {
	slugExistsFn func(slug string, excludeID uint) (bool, error)
}

func (m *mockSlugStore) SlugExists(slug string, excludeID uint) (bool, error) {
	if m.slugExistsFn != nil {
		return m.slugExistsFn(slug, excludeID)
	}
	return false, nil
}

// takenSlugs builds a store where exactly the given slugs are occupied.
func takenSlugs(slugs ...string) *mockSlugStore {
	set := make(map[string]bool, len(slugs))
	for _, s := range slugs {
		set[s] = true
	}
	return &mockSlugStore{
		slugExistsFn: func(slug string, excludeID uint) (bool, error) {
			return set[slug], nil
		},
	}
}

func TestSlugify(t *testing.T) {
	cases := []struct {
		name  string
		title string
		want  string
	}{
		{"simple", "Hello World", "hello-world"},
		{"punctuation stripped", "Hello, World!", "hello-world"},
		{"whitespace collapsed", "hello    world", "hello-world"},
		{"leading and trailing space", "  Trimmed Title  ", "trimmed-title"},
		{"hyphen runs collapsed", "a -- b", "a-b"},
		{"digits kept", "Top 10 Books of 2024", "top-10-books-of-2024"},
		{"already a slug", "already-a-slug", "already-a-slug"},
		{"empty title", "", ""},
		{"punctuation only", "!!!", ""},
		{"mixed unicode stripped", "Café & Books", "caf-books"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Slugify(tc.title); got != tc.want {
				t.Errorf("Slugify(%q) = %q, want %q", tc.title, got, tc.want)
			}
		})
	}
}

func TestGenerateUniqueSlug_BaseFree(t *testing.T) {
	slug, err := GenerateUniqueSlug(takenSlugs(), "Hello, World!", 0)
	if err != nil {
		t.Fatalf("GenerateUniqueSlug error: %v", err)
	}
	if slug != "hello-world" {
		t.Errorf("slug = %q, want %q", slug, "hello-world")
	}
}

func TestGenerateUniqueSlug_SequentialSuffixes(t *testing.T) {
	cases := []struct {
		taken []string
		want  string
	}{
		{[]string{"hello-world"}, "hello-world-1"},
		{[]string{"hello-world", "hello-world-1"}, "hello-world-2"},
		{[]string{"hello-world", "hello-world-1", "hello-world-2"}, "hello-world-3"},
	}

	for _, tc := range cases {
		slug, err := GenerateUniqueSlug(takenSlugs(tc.taken...), "Hello World", 0)
		if err != nil {
			t.Fatalf("GenerateUniqueSlug error: %v", err)
		}
		if slug != tc.want {
			t.Errorf("with taken %v: slug = %q, want %q", tc.taken, slug, tc.want)
		}
	}
}

func TestGenerateUniqueSlug_Idempotent(t *testing.T) {
	store := takenSlugs("other-post")

	first, err := GenerateUniqueSlug(store, "My Post", 7)
	if err != nil {
		t.Fatalf("GenerateUniqueSlug error: %v", err)
	}
	second, err := GenerateUniqueSlug(store, "My Post", 7)
	if err != nil {
		t.Fatalf("GenerateUniqueSlug error: %v", err)
	}
	if first != second {
		t.Errorf("repeated generation differs: %q vs %q", first, second)
	}
}

func TestGenerateUniqueSlug_ExclusionPassedThrough(t *testing.T) {
	var gotExcludeID uint
	store := &mockSlugStore{
		slugExistsFn: func(slug string, excludeID uint) (bool, error) {
			gotExcludeID = excludeID
			// The post being updated holds "my-post" itself; the store is
			// expected to ignore it via excludeID.
			return false, nil
		},
	}

	slug, err := GenerateUniqueSlug(store, "My Post", 42)
	if err != nil {
		t.Fatalf("GenerateUniqueSlug error: %v", err)
	}
	if slug != "my-post" {
		t.Errorf("slug = %q, want %q", slug, "my-post")
	}
	if gotExcludeID != 42 {
		t.Errorf("excludeID = %d, want 42", gotExcludeID)
	}
}

func TestGenerateUniqueSlug_EmptyBaseFallsBack(t *testing.T) {
	slug, err := GenerateUniqueSlug(takenSlugs(), "!!!", 0)
	if err != nil {
		t.Fatalf("GenerateUniqueSlug error: %v", err)
	}
	if slug != "untitled" {
		t.Errorf("slug = %q, want %q", slug, "untitled")
	}

	slug, err = GenerateUniqueSlug(takenSlugs("untitled"), "", 0)
	if err != nil {
		t.Fatalf("GenerateUniqueSlug error: %v", err)
	}
	if slug != "untitled-1" {
		t.Errorf("slug = %q, want %q", slug, "untitled-1")
	}
}

func TestGenerateUniqueSlug_StoreError(t *testing.T) {
	storeErr := errors.New("connection refused")
	store := &mockSlugStore{
		slugExistsFn: func(slug string, excludeID uint) (bool, error) {
			return false, storeErr
		},
	}

	if _, err := GenerateUniqueSlug(store, "Anything", 0); err == nil {
		t.Fatal("expected error when the store fails")
	}
}
