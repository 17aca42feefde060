package services

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/vedanta-tech/team-site-backend/errs"
	"github.com/vedanta-tech/team-site-backend/models"
)

type fakeBlogStore struct {
	docs   map[string]*models.Blog
	nextID int
}

func newFakeBlogStore() *fakeBlogStore {
	return &fakeBlogStore{docs: map[string]*models.Blog{}}
}

func (f *fakeBlogStore) FindAll(ctx context.Context) ([]*models.Blog, error) {
	var out []*models.Blog
	for _, b := range f.docs {
		out = append(out, b)
	}
	return out, nil
}

func (f *fakeBlogStore) FindPublished(ctx context.Context) ([]*models.Blog, error) {
	var out []*models.Blog
	for _, b := range f.docs {
		if b.Status == models.BlogPublished {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeBlogStore) FindByID(ctx context.Context, id string) (*models.Blog, error) {
	return f.docs[id], nil
}

func (f *fakeBlogStore) FindBySlug(ctx context.Context, slug string) (*models.Blog, error) {
	for _, b := range f.docs {
		if b.Slug == slug {
			return b, nil
		}
	}
	return nil, nil
}

func (f *fakeBlogStore) Add(ctx context.Context, b *models.Blog) (string, error) {
	f.nextID++
	id := fmt.Sprintf("blog-%d", f.nextID)
	stored := *b
	stored.ID = id
	f.docs[id] = &stored
	return id, nil
}

func (f *fakeBlogStore) Merge(ctx context.Context, id string, fields map[string]any) error {
	b, ok := f.docs[id]
	if !ok {
		return fmt.Errorf("blog %s not found", id)
	}
	for k, v := range fields {
		switch k {
		case "title":
			b.Title = v.(string)
		case "slug":
			b.Slug = v.(string)
		case "content":
			b.Content = v.(string)
		case "readingTime":
			b.ReadingTime = v.(int)
		case "status":
			b.Status = v.(string)
		case "publishedAt":
			at := v.(time.Time)
			b.PublishedAt = &at
		case "featuredImage":
			b.FeaturedImage = v.(string)
		case "updatedAt":
			b.UpdatedAt = v.(time.Time)
		}
	}
	return nil
}

func (f *fakeBlogStore) Delete(ctx context.Context, id string) error {
	delete(f.docs, id)
	return nil
}

func TestBlogCreateDraftDefaults(t *testing.T) {
	store := newFakeBlogStore()
	service := NewBlogService(store, &fakeAssets{})

	content := "word "
	for i := 0; i < 8; i++ {
		content += content // 256 words
	}

	blog, err := service.Create(context.Background(), BlogInput{
		Title:   "My First Post",
		Content: content,
	}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if blog.Status != models.BlogDraft {
		t.Errorf("expected status %q, got %q", models.BlogDraft, blog.Status)
	}
	if blog.Slug != "my-first-post" {
		t.Errorf("expected slug my-first-post, got %q", blog.Slug)
	}
	if blog.PublishedAt != nil {
		t.Errorf("expected nil publishedAt on a draft, got %v", blog.PublishedAt)
	}
	if blog.ReadingTime != 2 {
		t.Errorf("expected readingTime 2 for 256 words, got %d", blog.ReadingTime)
	}
	if blog.ID == "" {
		t.Error("expected an assigned id")
	}
}

func TestBlogCreatePublishedStampsPublishedAt(t *testing.T) {
	store := newFakeBlogStore()
	service := NewBlogService(store, &fakeAssets{})

	blog, err := service.Create(context.Background(), BlogInput{
		Title:   "Launch Notes",
		Content: "short post",
		Status:  models.BlogPublished,
	}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if blog.PublishedAt == nil {
		t.Fatal("expected publishedAt to be set on a published create")
	}
}

func TestBlogPublishTransition(t *testing.T) {
	store := newFakeBlogStore()
	service := NewBlogService(store, &fakeAssets{})
	ctx := context.Background()

	blog, err := service.Create(ctx, BlogInput{Title: "Draft Post", Content: "text"}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	createdAt := blog.CreatedAt

	published := models.BlogPublished
	updated, err := service.Update(ctx, blog.ID, BlogUpdate{Status: &published}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if updated.PublishedAt == nil {
		t.Fatal("expected publishedAt stamped on the draft to published transition")
	}
	if updated.Slug != "draft-post" {
		t.Errorf("expected slug unchanged, got %q", updated.Slug)
	}
	if !updated.UpdatedAt.After(createdAt) && !updated.UpdatedAt.Equal(createdAt) {
		t.Errorf("expected updatedAt to advance, got %v before %v", updated.UpdatedAt, createdAt)
	}

	firstPublishedAt := *updated.PublishedAt

	// A second publish write must not restamp publishedAt
	again, err := service.Update(ctx, blog.ID, BlogUpdate{Status: &published}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !again.PublishedAt.Equal(firstPublishedAt) {
		t.Errorf("expected publishedAt unchanged on re-publish, got %v vs %v", again.PublishedAt, firstPublishedAt)
	}
}

func TestBlogTitleUpdateRegeneratesSlug(t *testing.T) {
	store := newFakeBlogStore()
	service := NewBlogService(store, &fakeAssets{})
	ctx := context.Background()

	blog, err := service.Create(ctx, BlogInput{Title: "Old Title", Content: "text"}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	newTitle := "New Title"
	updated, err := service.Update(ctx, blog.ID, BlogUpdate{Title: &newTitle}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Slug != "new-title" {
		t.Errorf("expected regenerated slug new-title, got %q", updated.Slug)
	}

	// An explicit slug pins the value even when the title changes too
	anotherTitle := "Third Title"
	pinned := "custom-slug"
	updated, err = service.Update(ctx, blog.ID, BlogUpdate{Title: &anotherTitle, Slug: &pinned}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Slug != "custom-slug" {
		t.Errorf("expected pinned slug custom-slug, got %q", updated.Slug)
	}
}

func TestBlogTitleUpdateRejectsEmptySlug(t *testing.T) {
	store := newFakeBlogStore()
	service := NewBlogService(store, &fakeAssets{})
	ctx := context.Background()

	blog, err := service.Create(ctx, BlogInput{Title: "Keep Me", Content: "text"}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	punct := "!!!"
	_, err = service.Update(ctx, blog.ID, BlogUpdate{Title: &punct}, nil)
	if !errs.IsValidation(err) {
		t.Errorf("expected validation error for punctuation-only title, got %v", err)
	}
	if store.docs[blog.ID].Slug != "keep-me" {
		t.Errorf("expected stored slug untouched, got %q", store.docs[blog.ID].Slug)
	}
}

func TestBlogCreateValidation(t *testing.T) {
	service := NewBlogService(newFakeBlogStore(), &fakeAssets{})
	ctx := context.Background()

	_, err := service.Create(ctx, BlogInput{Content: "text"}, nil)
	if !errs.IsValidation(err) {
		t.Errorf("expected validation error for missing title, got %v", err)
	}

	_, err = service.Create(ctx, BlogInput{Title: "!!!", Content: "text"}, nil)
	if !errs.IsValidation(err) {
		t.Errorf("expected validation error for punctuation-only title, got %v", err)
	}

	_, err = service.Create(ctx, BlogInput{Title: "T", Content: "text", Status: "archived"}, nil)
	if !errs.IsValidation(err) {
		t.Errorf("expected validation error for unknown status, got %v", err)
	}
}

func TestBlogResolveSlugThenID(t *testing.T) {
	store := newFakeBlogStore()
	service := NewBlogService(store, &fakeAssets{})
	ctx := context.Background()

	blog, err := service.Create(ctx, BlogInput{Title: "Findable", Content: "text"}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	bySlug, err := service.Resolve(ctx, "findable")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if bySlug.ID != blog.ID {
		t.Errorf("expected %s, got %s", blog.ID, bySlug.ID)
	}

	byID, err := service.Resolve(ctx, blog.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if byID.ID != blog.ID {
		t.Errorf("expected %s, got %s", blog.ID, byID.ID)
	}

	_, err = service.Resolve(ctx, "no-such-blog")
	if !errs.IsNotFound(err) {
		t.Errorf("expected not found, got %v", err)
	}
}
