package services

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/authorpages/author-site-backend/errs"
)

var (
	disallowedSlugChars = regexp.MustCompile(`[^a-z0-9\s-]`)
	whitespaceRun       = regexp.MustCompile(`\s+`)
	hyphenRun           = regexp.MustCompile(`-+`)
)

// fallbackSlug is used when a title normalizes to the empty string (for
// example a punctuation-only title), so the uniqueness loop always starts
// from a usable base.
const fallbackSlug = "untitled"

// Slugify normalizes a post title into a URL-safe slug: lowercase, trimmed,
// stripped of anything outside [a-z0-9\s-], with whitespace runs replaced by
// a single hyphen and hyphen runs collapsed.
func Slugify(title string) string {
	slug := strings.TrimSpace(strings.ToLower(title))
	slug = disallowedSlugChars.ReplaceAllString(slug, "")
	slug = whitespaceRun.ReplaceAllString(slug, "-")
	slug = hyphenRun.ReplaceAllString(slug, "-")
	return slug
}

// SlugStore is the read-only capability slug generation needs from the store.
type SlugStore interface {
	SlugExists(slug string, excludeID uint) (bool, error)
}

// GenerateUniqueSlug derives a slug from title that no other post currently
// holds. excludeID names a post to ignore during the check, so an update
// never collides with the post's own slug; pass 0 on create.
//
// The candidate sequence is base, base-1, base-2, … with no retry cap: the
// loop terminates because the store is finite. The check here is not atomic
// with the caller's write; the unique index on blog_post.slug is the backstop
// for two concurrent creates racing past it, surfaced as a duplicate-slug
// conflict at write time.
func GenerateUniqueSlug(store SlugStore, title string, excludeID uint) (string, error) {
	baseSlug := Slugify(title)
	if baseSlug == "" {
		baseSlug = fallbackSlug
	}

	slug := baseSlug
	for counter := 1; ; counter++ {
		taken, err := store.SlugExists(slug, excludeID)
		if err != nil {
			return "", errs.NewPersistenceError("check slug for", "blog_post", err)
		}
		if !taken {
			return slug, nil
		}
		slug = fmt.Sprintf("%s-%d", baseSlug, counter)
	}
}
