package database

import (
	"context"

	fs "cloud.google.com/go/firestore"
	"github.com/vedanta-tech/team-site-backend/models"
)

type HackathonRepo struct {
	client *fs.Client
}

func NewHackathonRepo(client *fs.Client) *HackathonRepo {
	return &HackathonRepo{client}
}

func (r *HackathonRepo) col() *fs.CollectionRef {
	return r.client.Collection(HackathonsCollection)
}

// FindAll returns all hackathons ordered by event date, newest first
func (r *HackathonRepo) FindAll(ctx context.Context) ([]*models.Hackathon, error) {
	return queryAll[models.Hackathon](ctx, r.col().OrderBy("date", fs.Desc))
}

// FindByID returns a hackathon by its document id, nil if missing
func (r *HackathonRepo) FindByID(ctx context.Context, id string) (*models.Hackathon, error) {
	return getDoc[models.Hackathon](ctx, r.col().Doc(id))
}

// Add inserts a new hackathon and returns the assigned id
func (r *HackathonRepo) Add(ctx context.Context, h *models.Hackathon) (string, error) {
	return addDoc(ctx, r.col(), h)
}

// Merge updates only the given fields of an existing hackathon
func (r *HackathonRepo) Merge(ctx context.Context, id string, fields map[string]any) error {
	return mergeDoc(ctx, r.col().Doc(id), fields)
}

// Delete removes a hackathon document by id
func (r *HackathonRepo) Delete(ctx context.Context, id string) error {
	return deleteDoc(ctx, r.col().Doc(id))
}
