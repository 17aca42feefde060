package services

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/vedanta-tech/team-site-backend/errs"
	"github.com/vedanta-tech/team-site-backend/models"
)

type fakeProjectStore struct {
	docs   map[string]*models.Project
	nextID int
}

func newFakeProjectStore() *fakeProjectStore {
	return &fakeProjectStore{docs: map[string]*models.Project{}}
}

func (f *fakeProjectStore) FindAll(ctx context.Context) ([]*models.Project, error) {
	var out []*models.Project
	for _, p := range f.docs {
		out = append(out, p)
	}
	return out, nil
}

func (f *fakeProjectStore) FindByID(ctx context.Context, id string) (*models.Project, error) {
	return f.docs[id], nil
}

func (f *fakeProjectStore) FindBySlug(ctx context.Context, slug string) (*models.Project, error) {
	for _, p := range f.docs {
		if p.Slug == slug {
			return p, nil
		}
	}
	return nil, nil
}

func (f *fakeProjectStore) Add(ctx context.Context, p *models.Project) (string, error) {
	f.nextID++
	id := fmt.Sprintf("project-%d", f.nextID)
	stored := *p
	stored.ID = id
	f.docs[id] = &stored
	return id, nil
}

func (f *fakeProjectStore) Merge(ctx context.Context, id string, fields map[string]any) error {
	p, ok := f.docs[id]
	if !ok {
		return fmt.Errorf("project %s not found", id)
	}
	for k, v := range fields {
		switch k {
		case "title":
			p.Title = v.(string)
		case "slug":
			p.Slug = v.(string)
		case "updatedAt":
			p.UpdatedAt = v.(time.Time)
		}
	}
	return nil
}

func (f *fakeProjectStore) Delete(ctx context.Context, id string) error {
	delete(f.docs, id)
	return nil
}

func TestProjectTitleUpdateRegeneratesSlug(t *testing.T) {
	store := newFakeProjectStore()
	service := NewProjectService(store, &fakeAssets{})
	ctx := context.Background()

	project, err := service.Create(ctx, ProjectInput{
		Title:  "Old Name",
		Status: models.ProjectOngoing,
	}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	newTitle := "New Name"
	updated, err := service.Update(ctx, project.ID, ProjectUpdate{Title: &newTitle}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Slug != "new-name" {
		t.Errorf("expected regenerated slug new-name, got %q", updated.Slug)
	}
}

func TestProjectTitleUpdateRejectsEmptySlug(t *testing.T) {
	store := newFakeProjectStore()
	service := NewProjectService(store, &fakeAssets{})
	ctx := context.Background()

	project, err := service.Create(ctx, ProjectInput{
		Title:  "Keep Me",
		Status: models.ProjectOngoing,
	}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	punct := "???"
	_, err = service.Update(ctx, project.ID, ProjectUpdate{Title: &punct}, nil)
	if !errs.IsValidation(err) {
		t.Errorf("expected validation error for punctuation-only title, got %v", err)
	}
	if store.docs[project.ID].Slug != "keep-me" {
		t.Errorf("expected stored slug untouched, got %q", store.docs[project.ID].Slug)
	}
}
