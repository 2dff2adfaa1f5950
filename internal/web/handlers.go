package web

import (
	"errors"
	"html/template"
	"sort"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/katana82/f1gn/internal/content"
)

// handleHome lists every post newest first. Sorting happens here, not in
// the store: the directory listing carries no order of its own.
func (s *Server) handleHome(c *fiber.Ctx) error {
	summaries, err := s.posts.List(c.Context())
	if err != nil {
		return err
	}

	sort.SliceStable(summaries, func(i, j int) bool {
		return parseDate(summaries[i].Date).After(parseDate(summaries[j].Date))
	})

	return c.Render("index", fiber.Map{
		"Posts": summaries,
	})
}

func (s *Server) handleSubmitForm(c *fiber.Ctx) error {
	return c.Render("submit", fiber.Map{})
}

// handleSubmit stores the submitted post and redirects to its permalink.
// Every field is optional at the transport level; a missing title yields
// the degenerate empty slug, and a blank date defaults to submission time.
// Re-submitting a title that slugifies to an existing slug silently
// overwrites the prior post.
func (s *Server) handleSubmit(c *fiber.Ctx) error {
	title := c.FormValue("title")
	post := &content.Post{
		Title:  title,
		Text:   c.FormValue("text"),
		Author: c.FormValue("author"),
		Date:   c.FormValue("date"),
		Image:  c.FormValue("image"),
		Slug:   content.Slugify(title),
	}
	if post.Date == "" {
		post.Date = time.Now().UTC().Format(time.RFC3339)
	}

	if err := s.posts.Put(c.Context(), post); err != nil {
		return err
	}
	return c.Redirect("/post/"+post.Slug, fiber.StatusFound)
}

func (s *Server) handlePost(c *fiber.Ctx) error {
	slug := c.Params("slug")

	post, err := s.posts.Get(c.Context(), slug)
	if err != nil {
		if errors.Is(err, content.ErrPostNotFound) {
			return c.Status(fiber.StatusNotFound).SendString("Post not found")
		}
		return err
	}

	body, err := s.renderer.Render([]byte(post.Text))
	if err != nil {
		return err
	}

	return c.Render("post", fiber.Map{
		"Post": post,
		"Body": template.HTML(body),
	})
}

func (s *Server) handleRaceResults(c *fiber.Ctx) error {
	results, err := s.races.ResultsForRace(c.Context(), s.cfg.RaceID)
	if err != nil {
		return err
	}

	return c.Render("race-results", fiber.Map{
		"RaceID":  s.cfg.RaceID,
		"Results": results,
	})
}

// parseDate is lenient: post dates are user-supplied strings. Unparseable
// values sort as the zero time, which pushes them to the bottom of the
// newest-first homepage.
func parseDate(value string) time.Time {
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"} {
		if ts, err := time.Parse(layout, value); err == nil {
			return ts
		}
	}
	return time.Time{}
}
