package models

import "time"

// Hackathon statuses
const (
	HackathonUpcoming  = "upcoming"
	HackathonOngoing   = "ongoing"
	HackathonCompleted = "completed"
)

// Hackathon represents a hackathon the team participated in
type Hackathon struct {
	ID           string    `json:"id" firestore:"-"`
	Title        string    `json:"title" firestore:"title"`
	Description  string    `json:"description" firestore:"description"`
	Date         time.Time `json:"date" firestore:"date"`
	Location     string    `json:"location" firestore:"location"`
	Status       string    `json:"status" firestore:"status"`
	Result       string    `json:"result,omitempty" firestore:"result,omitempty"`
	Technologies []string  `json:"technologies" firestore:"technologies"`
	TeamSize     int       `json:"teamSize,omitempty" firestore:"teamSize,omitempty"`
	Prize        string    `json:"prize,omitempty" firestore:"prize,omitempty"`
	ImageURL     string    `json:"imageUrl,omitempty" firestore:"imageUrl,omitempty"`
	CreatedAt    time.Time `json:"createdAt" firestore:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt" firestore:"updatedAt"`
}

func (h *Hackathon) SetID(id string) { h.ID = id }
