package content

// Post is one news article, persisted as a single pretty-printed JSON
// document named {slug}.json. The slug doubles as the storage key and the
// permalink path segment and is immutable after creation.
type Post struct {
	Title  string `json:"title"`
	Text   string `json:"text"`
	Author string `json:"author,omitempty"`
	Date   string `json:"date"`
	Slug   string `json:"slug"`
	Image  string `json:"image,omitempty"`
}

// Summary is the listing projection of a Post: everything except the body.
type Summary struct {
	Title  string
	Slug   string
	Author string
	Date   string
	Image  string
}

// Summary returns the listing projection for the post.
func (p *Post) Summary() Summary {
	return Summary{
		Title:  p.Title,
		Slug:   p.Slug,
		Author: p.Author,
		Date:   p.Date,
		Image:  p.Image,
	}
}
