package models

import "time"

// ContactMessage statuses
const (
	MessageUnread = "unread"
	MessageRead   = "read"
)

// ContactMessage is a submission from the public contact form
type ContactMessage struct {
	ID        string    `json:"id" firestore:"-"`
	Name      string    `json:"name" firestore:"name"`
	Email     string    `json:"email" firestore:"email"`
	Subject   string    `json:"subject" firestore:"subject"`
	Message   string    `json:"message" firestore:"message"`
	Status    string    `json:"status" firestore:"status"`
	CreatedAt time.Time `json:"createdAt" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" firestore:"updatedAt"`
}

func (c *ContactMessage) SetID(id string) { c.ID = id }
