package services

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/vedanta-tech/team-site-backend/errs"
	"github.com/vedanta-tech/team-site-backend/models"
	"github.com/vedanta-tech/team-site-backend/storage"
)

// wordsPerMinute is the reading speed readingTime is derived from
const wordsPerMinute = 200

type BlogStore interface {
	FindAll(ctx context.Context) ([]*models.Blog, error)
	FindPublished(ctx context.Context) ([]*models.Blog, error)
	FindByID(ctx context.Context, id string) (*models.Blog, error)
	FindBySlug(ctx context.Context, slug string) (*models.Blog, error)
	Add(ctx context.Context, b *models.Blog) (string, error)
	Merge(ctx context.Context, id string, fields map[string]any) error
	Delete(ctx context.Context, id string) error
}

type BlogInput struct {
	Title          string   `json:"title"`
	Slug           string   `json:"slug"`
	Content        string   `json:"content"`
	Excerpt        string   `json:"excerpt"`
	Tags           []string `json:"tags"`
	Category       string   `json:"category"`
	Status         string   `json:"status"`
	SEOTitle       string   `json:"seoTitle"`
	SEODescription string   `json:"seoDescription"`
}

type BlogUpdate struct {
	Title          *string  `json:"title"`
	Slug           *string  `json:"slug"`
	Content        *string  `json:"content"`
	Excerpt        *string  `json:"excerpt"`
	Tags           []string `json:"tags"`
	Category       *string  `json:"category"`
	Status         *string  `json:"status"`
	SEOTitle       *string  `json:"seoTitle"`
	SEODescription *string  `json:"seoDescription"`
}

func validBlogStatus(s string) bool {
	return s == models.BlogDraft || s == models.BlogPublished
}

// ReadingTime is ceil(word count / 200), never below 1 for non-empty content
func ReadingTime(content string) int {
	words := len(strings.Fields(content))
	if words == 0 {
		return 0
	}
	return (words + wordsPerMinute - 1) / wordsPerMinute
}

type BlogService struct {
	store  BlogStore
	assets AssetStore
	logger zerolog.Logger
}

func NewBlogService(store BlogStore, assets AssetStore) BlogService {
	return BlogService{
		store:  store,
		assets: assets,
		logger: log.With().Str("serviceName", "blogService").Logger(),
	}
}

// List returns every blog, drafts included; for the admin dashboard
func (s BlogService) List(ctx context.Context) ([]*models.Blog, error) {
	blogs, err := s.store.FindAll(ctx)
	if err != nil {
		return nil, errs.NewStoreError("list", "blogs", err)
	}
	return blogs, nil
}

// ListPublished returns only published blogs; for the public blog page
func (s BlogService) ListPublished(ctx context.Context) ([]*models.Blog, error) {
	blogs, err := s.store.FindPublished(ctx)
	if err != nil {
		return nil, errs.NewStoreError("list", "blogs", err)
	}
	return blogs, nil
}

// Resolve looks up a blog by slug first, falling back to a direct id lookup
func (s BlogService) Resolve(ctx context.Context, idOrSlug string) (*models.Blog, error) {
	blog, err := s.store.FindBySlug(ctx, idOrSlug)
	if err != nil {
		return nil, errs.NewStoreError("find", "blog", err)
	}
	if blog == nil {
		blog, err = s.store.FindByID(ctx, idOrSlug)
		if err != nil {
			return nil, errs.NewStoreError("find", "blog", err)
		}
	}
	if blog == nil {
		return nil, errs.NewNotFound("blog")
	}
	return blog, nil
}

func (s BlogService) Create(ctx context.Context, in BlogInput, featured *Upload) (*models.Blog, error) {
	if in.Title == "" {
		return nil, errs.NewMissingFieldError("title")
	}
	if in.Content == "" {
		return nil, errs.NewMissingFieldError("content")
	}
	if in.Status == "" {
		in.Status = models.BlogDraft
	}
	if !validBlogStatus(in.Status) {
		return nil, errs.NewValidationError("status", "must be draft or published")
	}
	slug := in.Slug
	if slug == "" {
		slug = Slugify(in.Title)
	}
	if slug == "" {
		return nil, errs.NewValidationError("title", "yields an empty slug")
	}

	now := time.Now().UTC()
	blog := &models.Blog{
		Title:          Sanitize(in.Title),
		Slug:           slug,
		Content:        in.Content, // HTML body, trusted-admin authored
		Excerpt:        Sanitize(in.Excerpt),
		Tags:           SanitizeAll(in.Tags),
		Category:       Sanitize(in.Category),
		Status:         in.Status,
		SEOTitle:       Sanitize(in.SEOTitle),
		SEODescription: Sanitize(in.SEODescription),
		ReadingTime:    ReadingTime(in.Content),
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	// publishedAt is stamped only when the post goes out published
	if in.Status == models.BlogPublished {
		blog.PublishedAt = &now
	}

	var uploaded []string
	if featured != nil {
		urls, err := uploadAll(ctx, s.assets, s.logger, storage.BlogsFolder, []Upload{*featured})
		if err != nil {
			return nil, err
		}
		uploaded = urls
		blog.FeaturedImage = urls[0]
	}

	id, err := s.store.Add(ctx, blog)
	if err != nil {
		deleteAssets(ctx, s.assets, s.logger, uploaded)
		return nil, errs.NewStoreError("create", "blog", err)
	}
	blog.ID = id
	return blog, nil
}

func (s BlogService) Update(ctx context.Context, id string, upd BlogUpdate, featured *Upload) (*models.Blog, error) {
	existing, err := s.store.FindByID(ctx, id)
	if err != nil {
		return nil, errs.NewStoreError("find", "blog", err)
	}
	if existing == nil {
		return nil, errs.NewNotFound("blog")
	}

	now := time.Now().UTC()
	fields := map[string]any{}
	if upd.Title != nil {
		if *upd.Title == "" {
			return nil, errs.NewValidationError("title", "must not be empty")
		}
		fields["title"] = Sanitize(*upd.Title)
		if upd.Slug == nil {
			slug := Slugify(*upd.Title)
			if slug == "" {
				return nil, errs.NewValidationError("title", "yields an empty slug")
			}
			fields["slug"] = slug
		}
	}
	if upd.Slug != nil {
		if *upd.Slug == "" {
			return nil, errs.NewValidationError("slug", "must not be empty")
		}
		fields["slug"] = *upd.Slug
	}
	if upd.Content != nil {
		fields["content"] = *upd.Content
		fields["readingTime"] = ReadingTime(*upd.Content)
	}
	if upd.Excerpt != nil {
		fields["excerpt"] = Sanitize(*upd.Excerpt)
	}
	if upd.Tags != nil {
		fields["tags"] = SanitizeAll(upd.Tags)
	}
	if upd.Category != nil {
		fields["category"] = Sanitize(*upd.Category)
	}
	if upd.Status != nil {
		if !validBlogStatus(*upd.Status) {
			return nil, errs.NewValidationError("status", "must be draft or published")
		}
		fields["status"] = *upd.Status
		// stamp publishedAt once, on the transition into published
		if *upd.Status == models.BlogPublished && existing.Status != models.BlogPublished {
			fields["publishedAt"] = now
		}
	}
	if upd.SEOTitle != nil {
		fields["seoTitle"] = Sanitize(*upd.SEOTitle)
	}
	if upd.SEODescription != nil {
		fields["seoDescription"] = Sanitize(*upd.SEODescription)
	}

	if featured != nil {
		urls, err := uploadAll(ctx, s.assets, s.logger, storage.BlogsFolder, []Upload{*featured})
		if err != nil {
			return nil, err
		}
		fields["featuredImage"] = urls[0]
	}
	fields["updatedAt"] = now

	if err := s.store.Merge(ctx, id, fields); err != nil {
		return nil, errs.NewStoreError("update", "blog", err)
	}

	updated, err := s.store.FindByID(ctx, id)
	if err != nil {
		return nil, errs.NewStoreError("find", "blog", err)
	}
	return updated, nil
}

func (s BlogService) Delete(ctx context.Context, id string) error {
	existing, err := s.store.FindByID(ctx, id)
	if err != nil {
		return errs.NewStoreError("find", "blog", err)
	}
	if existing == nil {
		return errs.NewNotFound("blog")
	}
	if existing.FeaturedImage != "" {
		deleteAssets(ctx, s.assets, s.logger, []string{existing.FeaturedImage})
	}
	if err := s.store.Delete(ctx, id); err != nil {
		return errs.NewStoreError("delete", "blog", err)
	}
	return nil
}
