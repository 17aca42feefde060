package database

import (
	"context"
	"fmt"

	fs "cloud.google.com/go/firestore"
	"github.com/vedanta-tech/team-site-backend/errs"
	"github.com/vedanta-tech/team-site-backend/models"
)

type SettingsRepo struct {
	client *fs.Client
}

func NewSettingsRepo(client *fs.Client) *SettingsRepo {
	return &SettingsRepo{client}
}

func (r *SettingsRepo) doc(key string) *fs.DocumentRef {
	return r.client.Collection(SettingsCollection).Doc(key)
}

// Get returns the singleton document for key, nil if it does not exist.
// Absence is a valid state meaning "use caller-side defaults".
func (r *SettingsRepo) Get(ctx context.Context, key string) (models.Settings, error) {
	snap, err := r.doc(key).Get(ctx)
	if IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("settings get %s: %w", key, err)
	}
	return models.Settings(snap.Data()), nil
}

// Update merges fields into an existing singleton. When the document does
// not exist yet this fails with an error satisfying errs.IsNotFound, so
// callers can fall back to Create.
func (r *SettingsRepo) Update(ctx context.Context, key string, fields map[string]any) error {
	updates := make([]fs.Update, 0, len(fields))
	for k, v := range fields {
		updates = append(updates, fs.Update{Path: k, Value: v})
	}
	if _, err := r.doc(key).Update(ctx, updates); err != nil {
		if IsNotFound(err) {
			return errs.NewNotFound("settings document")
		}
		return fmt.Errorf("settings update %s: %w", key, err)
	}
	return nil
}

// Create writes a fresh singleton document for key
func (r *SettingsRepo) Create(ctx context.Context, key string, fields map[string]any) error {
	if _, err := r.doc(key).Set(ctx, fields); err != nil {
		return fmt.Errorf("settings create %s: %w", key, err)
	}
	return nil
}
