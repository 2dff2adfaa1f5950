package content

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	goerrors "github.com/goliatone/go-errors"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store := NewStore(t.TempDir(), nil)
	if err := store.EnsureReady(); err != nil {
		t.Fatalf("EnsureReady: %v", err)
	}
	return store
}

func TestEnsureReadyIdempotent(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "uploads")
	store := NewStore(dir, nil)

	if err := store.EnsureReady(); err != nil {
		t.Fatalf("EnsureReady: %v", err)
	}
	if err := store.EnsureReady(); err != nil {
		t.Fatalf("EnsureReady second call: %v", err)
	}
	info, err := os.Stat(dir)
	if err != nil {
		t.Fatalf("stat store dir: %v", err)
	}
	if !info.IsDir() {
		t.Fatalf("expected %s to be a directory", dir)
	}
}

func TestPutGetRoundTrip(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	post := &Post{
		Title:  "Monaco Grand Prix Recap",
		Text:   "**Great race**",
		Author: "kat",
		Date:   "2025-05-25T16:00:00Z",
		Slug:   "monaco-grand-prix-recap",
		Image:  "/img/monaco.jpg",
	}
	if err := store.Put(ctx, post); err != nil {
		t.Fatalf("Put: %v", err)
	}

	got, err := store.Get(ctx, "monaco-grand-prix-recap")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if *got != *post {
		t.Fatalf("round trip mismatch: got %+v want %+v", got, post)
	}
}

func TestPutWritesPrettyJSON(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	post := &Post{Title: "Quali Report", Text: "p1", Date: "2025-05-24T14:00:00Z", Slug: "quali-report"}
	if err := store.Put(ctx, post); err != nil {
		t.Fatalf("Put: %v", err)
	}

	raw, err := os.ReadFile(filepath.Join(store.Dir(), "quali-report.json"))
	if err != nil {
		t.Fatalf("read stored file: %v", err)
	}
	if !strings.HasPrefix(string(raw), "{\n  \"title\":") {
		t.Fatalf("expected two-space indented document, got %q", raw[:min(len(raw), 20)])
	}
}

func TestPutOverwritesExistingSlug(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	first := &Post{Title: "Race Recap", Text: "first take", Date: "2025-01-01T00:00:00Z", Slug: "race-recap"}
	second := &Post{Title: "Race Recap", Text: "second take", Date: "2025-01-02T00:00:00Z", Slug: "race-recap"}

	if err := store.Put(ctx, first); err != nil {
		t.Fatalf("Put first: %v", err)
	}
	if err := store.Put(ctx, second); err != nil {
		t.Fatalf("Put second: %v", err)
	}

	summaries, err := store.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(summaries) != 1 {
		t.Fatalf("expected exactly one stored record, got %d", len(summaries))
	}

	got, err := store.Get(ctx, "race-recap")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Text != "second take" {
		t.Fatalf("expected overwrite to win, got text %q", got.Text)
	}
}

func TestGetMissingPost(t *testing.T) {
	store := newTestStore(t)

	_, err := store.Get(context.Background(), "does-not-exist")
	if err == nil {
		t.Fatal("expected error for missing post")
	}
	if !errors.Is(err, ErrPostNotFound) {
		t.Fatalf("expected ErrPostNotFound, got %v", err)
	}
	var notFound *NotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("expected *NotFoundError, got %T", err)
	}
	if notFound.Key != "does-not-exist" {
		t.Fatalf("expected key to be preserved, got %q", notFound.Key)
	}
}

func TestGetRejectsPathTraversal(t *testing.T) {
	store := newTestStore(t)

	_, err := store.Get(context.Background(), "../escape")
	if !errors.Is(err, ErrPostNotFound) {
		t.Fatalf("expected ErrPostNotFound for traversal attempt, got %v", err)
	}
}

func TestDegenerateEmptySlug(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	post := &Post{Title: "!!!", Text: "punctuation only", Date: "2025-01-01T00:00:00Z", Slug: ""}
	if err := store.Put(ctx, post); err != nil {
		t.Fatalf("Put: %v", err)
	}

	if _, err := os.Stat(filepath.Join(store.Dir(), ".json")); err != nil {
		t.Fatalf("expected degenerate .json file: %v", err)
	}

	got, err := store.Get(ctx, "")
	if err != nil {
		t.Fatalf("Get empty slug: %v", err)
	}
	if got.Text != "punctuation only" {
		t.Fatalf("unexpected body %q", got.Text)
	}
}

func TestListSkipsForeignFiles(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	if err := store.Put(ctx, &Post{Title: "Keep", Text: "x", Date: "2025-01-01T00:00:00Z", Slug: "keep"}); err != nil {
		t.Fatalf("Put: %v", err)
	}
	if err := os.WriteFile(filepath.Join(store.Dir(), "notes.txt"), []byte("ignore me"), 0o644); err != nil {
		t.Fatalf("write foreign file: %v", err)
	}

	summaries, err := store.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(summaries) != 1 || summaries[0].Slug != "keep" {
		t.Fatalf("unexpected listing: %+v", summaries)
	}
}

func TestListAbortsOnMalformedDocument(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	if err := store.Put(ctx, &Post{Title: "Fine", Text: "x", Date: "2025-01-01T00:00:00Z", Slug: "fine"}); err != nil {
		t.Fatalf("Put: %v", err)
	}
	if err := os.WriteFile(filepath.Join(store.Dir(), "broken.json"), []byte("{not json"), 0o644); err != nil {
		t.Fatalf("write malformed file: %v", err)
	}

	_, err := store.List(ctx)
	if err == nil {
		t.Fatal("expected listing to abort on malformed document")
	}
	if !goerrors.IsCategory(err, goerrors.CategoryValidation) {
		t.Fatalf("expected validation-classified error, got %v", err)
	}
}
