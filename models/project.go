package models

import "time"

// Project statuses
const (
	ProjectUpcoming  = "upcoming"
	ProjectOngoing   = "ongoing"
	ProjectCompleted = "completed"
	ProjectPaused    = "paused"
)

// Project represents a team project with its detail-page content
type Project struct {
	ID             string     `json:"id" firestore:"-"`
	Title          string     `json:"title" firestore:"title"`
	Slug           string     `json:"slug" firestore:"slug"`
	Description    string     `json:"description" firestore:"description"`
	Content        string     `json:"content" firestore:"content"` // rendered as HTML, trusted-admin authored
	Category       string     `json:"category" firestore:"category"`
	Status         string     `json:"status" firestore:"status"`
	Technologies   []string   `json:"technologies" firestore:"technologies"`
	TeamMembers    []string   `json:"teamMembers" firestore:"teamMembers"`
	StartDate      *time.Time `json:"startDate,omitempty" firestore:"startDate,omitempty"`
	EndDate        *time.Time `json:"endDate,omitempty" firestore:"endDate,omitempty"`
	GitHubURL      string     `json:"githubUrl,omitempty" firestore:"githubUrl,omitempty"`
	LiveURL        string     `json:"liveUrl,omitempty" firestore:"liveUrl,omitempty"`
	Featured       bool       `json:"featured" firestore:"featured"`
	Images         []string   `json:"images" firestore:"images"`
	FeaturedImage  string     `json:"featuredImage,omitempty" firestore:"featuredImage,omitempty"`
	SEOTitle       string     `json:"seoTitle,omitempty" firestore:"seoTitle,omitempty"`
	SEODescription string     `json:"seoDescription,omitempty" firestore:"seoDescription,omitempty"`
	CreatedAt      time.Time  `json:"createdAt" firestore:"createdAt"`
	UpdatedAt      time.Time  `json:"updatedAt" firestore:"updatedAt"`
}

func (p *Project) SetID(id string) { p.ID = id }
