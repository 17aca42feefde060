package models

import "time"

// Blog statuses
const (
	BlogDraft     = "draft"
	BlogPublished = "published"
)

// Blog represents one post. PublishedAt is stamped once, on the
// draft-to-published transition. ReadingTime is minutes at 200 wpm.
type Blog struct {
	ID             string     `json:"id" firestore:"-"`
	Title          string     `json:"title" firestore:"title"`
	Slug           string     `json:"slug" firestore:"slug"`
	Content        string     `json:"content" firestore:"content"` // rendered as HTML, trusted-admin authored
	Excerpt        string     `json:"excerpt,omitempty" firestore:"excerpt,omitempty"`
	Tags           []string   `json:"tags" firestore:"tags"`
	Category       string     `json:"category,omitempty" firestore:"category,omitempty"`
	Status         string     `json:"status" firestore:"status"`
	FeaturedImage  string     `json:"featuredImage,omitempty" firestore:"featuredImage,omitempty"`
	SEOTitle       string     `json:"seoTitle,omitempty" firestore:"seoTitle,omitempty"`
	SEODescription string     `json:"seoDescription,omitempty" firestore:"seoDescription,omitempty"`
	PublishedAt    *time.Time `json:"publishedAt,omitempty" firestore:"publishedAt,omitempty"`
	ReadingTime    int        `json:"readingTime" firestore:"readingTime"`
	CreatedAt      time.Time  `json:"createdAt" firestore:"createdAt"`
	UpdatedAt      time.Time  `json:"updatedAt" firestore:"updatedAt"`
}

func (b *Blog) SetID(id string) { b.ID = id }
