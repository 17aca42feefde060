package models

import "time"

// Achievement represents an award or competition result with its gallery.
// FeaturedImage always mirrors Images[0] when Images is non-empty; the
// services maintain that invariant, nothing writes it independently.
type Achievement struct {
	ID            string    `json:"id" firestore:"-"`
	Title         string    `json:"title" firestore:"title"`
	Slug          string    `json:"slug" firestore:"slug"`
	Description   string    `json:"description" firestore:"description"`
	Date          time.Time `json:"date" firestore:"date"`
	Location      string    `json:"location,omitempty" firestore:"location,omitempty"`
	Category      string    `json:"category" firestore:"category"`
	Position      string    `json:"position,omitempty" firestore:"position,omitempty"`
	Prize         string    `json:"prize,omitempty" firestore:"prize,omitempty"`
	TeamMembers   []string  `json:"teamMembers" firestore:"teamMembers"`
	Technologies  []string  `json:"technologies" firestore:"technologies"`
	Highlights    []string  `json:"highlights" firestore:"highlights"`
	Images        []string  `json:"images" firestore:"images"`
	FeaturedImage string    `json:"featuredImage,omitempty" firestore:"featuredImage,omitempty"`
	CreatedAt     time.Time `json:"createdAt" firestore:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt" firestore:"updatedAt"`
}

func (a *Achievement) SetID(id string) { a.ID = id }
