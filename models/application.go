package models

import "time"

// Application statuses
const (
	ApplicationPending  = "pending"
	ApplicationReviewed = "reviewed"
	ApplicationAccepted = "accepted"
	ApplicationRejected = "rejected"
)

// PersonalInfo is the applicant-provided portion of a join application
type PersonalInfo struct {
	FullName      string `json:"fullName" firestore:"fullName"`
	Email         string `json:"email" firestore:"email"`
	Phone         string `json:"phone" firestore:"phone"`
	College       string `json:"college" firestore:"college"`
	Branch        string `json:"branch" firestore:"branch"`
	Year          string `json:"year" firestore:"year"`
	PreferredRole string `json:"preferredRole" firestore:"preferredRole"`
	Experience    string `json:"experience,omitempty" firestore:"experience,omitempty"`
	Motivation    string `json:"motivation" firestore:"motivation"`
}

// QuizResults holds the screening-quiz outcome attached to an application
type QuizResults struct {
	Score          int  `json:"score" firestore:"score"`
	CorrectAnswers int  `json:"correctAnswers" firestore:"correctAnswers"`
	TotalQuestions int  `json:"totalQuestions" firestore:"totalQuestions"`
	Passed         bool `json:"passed" firestore:"passed"`
	TimeSpent      int  `json:"timeSpent" firestore:"timeSpent"`
}

// Application is immutable after creation except for Status
type Application struct {
	ID            string       `json:"id" firestore:"-"`
	PersonalInfo  PersonalInfo `json:"personalInfo" firestore:"personalInfo"`
	QuizResults   *QuizResults `json:"quizResults,omitempty" firestore:"quizResults,omitempty"`
	InterviewSlot string       `json:"interviewSlot,omitempty" firestore:"interviewSlot,omitempty"`
	Status        string       `json:"status" firestore:"status"`
	CreatedAt     time.Time    `json:"createdAt" firestore:"createdAt"`
	UpdatedAt     time.Time    `json:"updatedAt" firestore:"updatedAt"`
}

func (a *Application) SetID(id string) { a.ID = id }
