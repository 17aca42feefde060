package database

import (
	"context"

	fs "cloud.google.com/go/firestore"
	"github.com/vedanta-tech/team-site-backend/models"
)

type ContactMessageRepo struct {
	client *fs.Client
}

func NewContactMessageRepo(client *fs.Client) *ContactMessageRepo {
	return &ContactMessageRepo{client}
}

func (r *ContactMessageRepo) col() *fs.CollectionRef {
	return r.client.Collection(ContactMessagesCollection)
}

// FindAll returns all contact messages, newest first
func (r *ContactMessageRepo) FindAll(ctx context.Context) ([]*models.ContactMessage, error) {
	return queryAll[models.ContactMessage](ctx, r.col().OrderBy("createdAt", fs.Desc))
}

// FindByID returns a contact message by its document id, nil if missing
func (r *ContactMessageRepo) FindByID(ctx context.Context, id string) (*models.ContactMessage, error) {
	return getDoc[models.ContactMessage](ctx, r.col().Doc(id))
}

// Add inserts a new contact message and returns the assigned id
func (r *ContactMessageRepo) Add(ctx context.Context, m *models.ContactMessage) (string, error) {
	return addDoc(ctx, r.col(), m)
}

// Merge updates only the given fields of an existing contact message
func (r *ContactMessageRepo) Merge(ctx context.Context, id string, fields map[string]any) error {
	return mergeDoc(ctx, r.col().Doc(id), fields)
}

// Delete removes a contact message document by id
func (r *ContactMessageRepo) Delete(ctx context.Context, id string) error {
	return deleteDoc(ctx, r.col().Doc(id))
}
