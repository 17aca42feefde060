package database

import (
	fs "cloud.google.com/go/firestore"
)

// Collection names in the document store
const (
	TeamMembersCollection     = "teamMembers"
	HackathonsCollection      = "hackathons"
	AchievementsCollection    = "achievements"
	ProjectsCollection        = "projects"
	BlogsCollection           = "blogs"
	ApplicationsCollection    = "applications"
	ContactMessagesCollection = "contactMessages"
	SettingsCollection        = "settings"
)

type Database struct {
	teamMemberRepo     *TeamMemberRepo
	hackathonRepo      *HackathonRepo
	achievementRepo    *AchievementRepo
	projectRepo        *ProjectRepo
	blogRepo           *BlogRepo
	applicationRepo    *ApplicationRepo
	contactMessageRepo *ContactMessageRepo
	settingsRepo       *SettingsRepo
}

// New initializes a new Database struct with each repository using a shared Firestore client
func New(client *fs.Client) Database {
	return Database{
		teamMemberRepo:     NewTeamMemberRepo(client),
		hackathonRepo:      NewHackathonRepo(client),
		achievementRepo:    NewAchievementRepo(client),
		projectRepo:        NewProjectRepo(client),
		blogRepo:           NewBlogRepo(client),
		applicationRepo:    NewApplicationRepo(client),
		contactMessageRepo: NewContactMessageRepo(client),
		settingsRepo:       NewSettingsRepo(client),
	}
}

// Accessor methods for each repository

func (d Database) TeamMemberRepo() *TeamMemberRepo {
	return d.teamMemberRepo
}

func (d Database) HackathonRepo() *HackathonRepo {
	return d.hackathonRepo
}

func (d Database) AchievementRepo() *AchievementRepo {
	return d.achievementRepo
}

func (d Database) ProjectRepo() *ProjectRepo {
	return d.projectRepo
}

func (d Database) BlogRepo() *BlogRepo {
	return d.blogRepo
}

func (d Database) ApplicationRepo() *ApplicationRepo {
	return d.applicationRepo
}

func (d Database) ContactMessageRepo() *ContactMessageRepo {
	return d.contactMessageRepo
}

func (d Database) SettingsRepo() *SettingsRepo {
	return d.settingsRepo
}
