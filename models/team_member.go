package models

import "time"

// TeamMember represents one member card on the public team page
type TeamMember struct {
	ID          string    `json:"id" firestore:"-"`
	Name        string    `json:"name" firestore:"name"`
	Role        string    `json:"role" firestore:"role"`
	Description string    `json:"description" firestore:"description"`
	Skills      []string  `json:"skills" firestore:"skills"`
	Email       string    `json:"email,omitempty" firestore:"email,omitempty"`
	LinkedIn    string    `json:"linkedin,omitempty" firestore:"linkedin,omitempty"`
	GitHub      string    `json:"github,omitempty" firestore:"github,omitempty"`
	ImageURL    string    `json:"imageUrl,omitempty" firestore:"imageUrl,omitempty"`
	CreatedAt   time.Time `json:"createdAt" firestore:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt" firestore:"updatedAt"`
}

func (m *TeamMember) SetID(id string) { m.ID = id }
