package database

import (
	"context"

	fs "cloud.google.com/go/firestore"
	"github.com/vedanta-tech/team-site-backend/models"
)

type AchievementRepo struct {
	client *fs.Client
}

func NewAchievementRepo(client *fs.Client) *AchievementRepo {
	return &AchievementRepo{client}
}

func (r *AchievementRepo) col() *fs.CollectionRef {
	return r.client.Collection(AchievementsCollection)
}

// FindAll returns all achievements ordered by event date, newest first
func (r *AchievementRepo) FindAll(ctx context.Context) ([]*models.Achievement, error) {
	return queryAll[models.Achievement](ctx, r.col().OrderBy("date", fs.Desc))
}

// FindByID returns an achievement by its document id, nil if missing
func (r *AchievementRepo) FindByID(ctx context.Context, id string) (*models.Achievement, error) {
	return getDoc[models.Achievement](ctx, r.col().Doc(id))
}

// FindBySlug returns the first achievement matching slug, nil if none
func (r *AchievementRepo) FindBySlug(ctx context.Context, slug string) (*models.Achievement, error) {
	return queryOne[models.Achievement](ctx, r.col().Where("slug", "==", slug))
}

// Add inserts a new achievement and returns the assigned id
func (r *AchievementRepo) Add(ctx context.Context, a *models.Achievement) (string, error) {
	return addDoc(ctx, r.col(), a)
}

// Merge updates only the given fields of an existing achievement
func (r *AchievementRepo) Merge(ctx context.Context, id string, fields map[string]any) error {
	return mergeDoc(ctx, r.col().Doc(id), fields)
}

// Delete removes an achievement document by id
func (r *AchievementRepo) Delete(ctx context.Context, id string) error {
	return deleteDoc(ctx, r.col().Doc(id))
}
