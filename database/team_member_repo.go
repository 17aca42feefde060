package database

import (
	"context"

	fs "cloud.google.com/go/firestore"
	"github.com/vedanta-tech/team-site-backend/models"
)

type TeamMemberRepo struct {
	client *fs.Client
}

func NewTeamMemberRepo(client *fs.Client) *TeamMemberRepo {
	return &TeamMemberRepo{client}
}

func (r *TeamMemberRepo) col() *fs.CollectionRef {
	return r.client.Collection(TeamMembersCollection)
}

// FindAll returns all team members ordered by creation time
func (r *TeamMemberRepo) FindAll(ctx context.Context) ([]*models.TeamMember, error) {
	return queryAll[models.TeamMember](ctx, r.col().OrderBy("createdAt", fs.Asc))
}

// FindByID returns a team member by its document id, nil if missing
func (r *TeamMemberRepo) FindByID(ctx context.Context, id string) (*models.TeamMember, error) {
	return getDoc[models.TeamMember](ctx, r.col().Doc(id))
}

// Add inserts a new team member and returns the assigned id
func (r *TeamMemberRepo) Add(ctx context.Context, m *models.TeamMember) (string, error) {
	return addDoc(ctx, r.col(), m)
}

// Merge updates only the given fields of an existing team member
func (r *TeamMemberRepo) Merge(ctx context.Context, id string, fields map[string]any) error {
	return mergeDoc(ctx, r.col().Doc(id), fields)
}

// Delete removes a team member document by id
func (r *TeamMemberRepo) Delete(ctx context.Context, id string) error {
	return deleteDoc(ctx, r.col().Doc(id))
}
