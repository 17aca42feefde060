package database

import (
	"context"

	fs "cloud.google.com/go/firestore"
	"github.com/vedanta-tech/team-site-backend/models"
)

type BlogRepo struct {
	client *fs.Client
}

func NewBlogRepo(client *fs.Client) *BlogRepo {
	return &BlogRepo{client}
}

func (r *BlogRepo) col() *fs.CollectionRef {
	return r.client.Collection(BlogsCollection)
}

// FindAll returns every blog, drafts included, newest first
func (r *BlogRepo) FindAll(ctx context.Context) ([]*models.Blog, error) {
	return queryAll[models.Blog](ctx, r.col().OrderBy("createdAt", fs.Desc))
}

// FindPublished returns only published blogs, newest first.
// Needs the composite index on (status, createdAt).
func (r *BlogRepo) FindPublished(ctx context.Context) ([]*models.Blog, error) {
	return queryAll[models.Blog](ctx, r.col().
		Where("status", "==", models.BlogPublished).
		OrderBy("createdAt", fs.Desc))
}

// FindByID returns a blog by its document id, nil if missing
func (r *BlogRepo) FindByID(ctx context.Context, id string) (*models.Blog, error) {
	return getDoc[models.Blog](ctx, r.col().Doc(id))
}

// FindBySlug returns the first blog matching slug, nil if none
func (r *BlogRepo) FindBySlug(ctx context.Context, slug string) (*models.Blog, error) {
	return queryOne[models.Blog](ctx, r.col().Where("slug", "==", slug))
}

// Add inserts a new blog and returns the assigned id
func (r *BlogRepo) Add(ctx context.Context, b *models.Blog) (string, error) {
	return addDoc(ctx, r.col(), b)
}

// Merge updates only the given fields of an existing blog
func (r *BlogRepo) Merge(ctx context.Context, id string, fields map[string]any) error {
	return mergeDoc(ctx, r.col().Doc(id), fields)
}

// Delete removes a blog document by id
func (r *BlogRepo) Delete(ctx context.Context, id string) error {
	return deleteDoc(ctx, r.col().Doc(id))
}
