package database

import (
	"context"

	fs "cloud.google.com/go/firestore"
	"github.com/vedanta-tech/team-site-backend/models"
)

type ApplicationRepo struct {
	client *fs.Client
}

func NewApplicationRepo(client *fs.Client) *ApplicationRepo {
	return &ApplicationRepo{client}
}

func (r *ApplicationRepo) col() *fs.CollectionRef {
	return r.client.Collection(ApplicationsCollection)
}

// FindAll returns all applications, newest first
func (r *ApplicationRepo) FindAll(ctx context.Context) ([]*models.Application, error) {
	return queryAll[models.Application](ctx, r.col().OrderBy("createdAt", fs.Desc))
}

// FindByID returns an application by its document id, nil if missing
func (r *ApplicationRepo) FindByID(ctx context.Context, id string) (*models.Application, error) {
	return getDoc[models.Application](ctx, r.col().Doc(id))
}

// Add inserts a new application and returns the assigned id
func (r *ApplicationRepo) Add(ctx context.Context, a *models.Application) (string, error) {
	return addDoc(ctx, r.col(), a)
}

// Merge updates only the given fields of an existing application
func (r *ApplicationRepo) Merge(ctx context.Context, id string, fields map[string]any) error {
	return mergeDoc(ctx, r.col().Doc(id), fields)
}

// Delete removes an application document by id
func (r *ApplicationRepo) Delete(ctx context.Context, id string) error {
	return deleteDoc(ctx, r.col().Doc(id))
}
