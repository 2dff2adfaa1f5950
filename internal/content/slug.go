package content

import "github.com/goliatone/go-slug"

// Slugify derives the storage key and permalink segment for a title using
// the default normalization rules (lowercase, non-alphanumerics stripped).
// A title that normalizes to nothing yields the empty slug; the store
// accepts it and writes the degenerate ".json" record.
func Slugify(title string) string {
	normalized, err := slug.Normalize(title)
	if err != nil {
		return ""
	}
	return normalized
}

// IsValidSlug reports whether the value matches the default slug rules.
func IsValidSlug(value string) bool {
	return slug.IsValid(value)
}
