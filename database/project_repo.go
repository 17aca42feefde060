package database

import (
	"context"

	fs "cloud.google.com/go/firestore"
	"github.com/vedanta-tech/team-site-backend/models"
)

type ProjectRepo struct {
	client *fs.Client
}

func NewProjectRepo(client *fs.Client) *ProjectRepo {
	return &ProjectRepo{client}
}

func (r *ProjectRepo) col() *fs.CollectionRef {
	return r.client.Collection(ProjectsCollection)
}

// FindAll returns all projects ordered by creation time, newest first
func (r *ProjectRepo) FindAll(ctx context.Context) ([]*models.Project, error) {
	return queryAll[models.Project](ctx, r.col().OrderBy("createdAt", fs.Desc))
}

// FindByID returns a project by its document id, nil if missing
func (r *ProjectRepo) FindByID(ctx context.Context, id string) (*models.Project, error) {
	return getDoc[models.Project](ctx, r.col().Doc(id))
}

// FindBySlug returns the first project matching slug, nil if none
func (r *ProjectRepo) FindBySlug(ctx context.Context, slug string) (*models.Project, error) {
	return queryOne[models.Project](ctx, r.col().Where("slug", "==", slug))
}

// Add inserts a new project and returns the assigned id
func (r *ProjectRepo) Add(ctx context.Context, p *models.Project) (string, error) {
	return addDoc(ctx, r.col(), p)
}

// Merge updates only the given fields of an existing project
func (r *ProjectRepo) Merge(ctx context.Context, id string, fields map[string]any) error {
	return mergeDoc(ctx, r.col().Doc(id), fields)
}

// Delete removes a project document by id
func (r *ProjectRepo) Delete(ctx context.Context, id string) error {
	return deleteDoc(ctx, r.col().Doc(id))
}
