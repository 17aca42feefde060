package api

import (
	"time"

	"github.com/vedanta-tech/team-site-backend/config"
	"github.com/vedanta-tech/team-site-backend/database"
	"github.com/vedanta-tech/team-site-backend/services"
	"github.com/vedanta-tech/team-site-backend/storage"
)

// routeHandlers contains all the handlers for different route types
type routeHandlers struct {
	authHandler           authHandler
	teamMemberHandler     teamMemberHandler
	hackathonHandler      hackathonHandler
	achievementHandler    achievementHandler
	projectHandler        projectHandler
	blogHandler           blogHandler
	applicationHandler    applicationHandler
	contactMessageHandler contactMessageHandler
	settingsHandler       settingsHandler
	sitemapHandler        sitemapHandler
	emailHandler          emailHandler
}

// initializeHandlers wires the repositories into services and the services
// into handlers.
func initializeHandlers(db database.Database, assets *storage.Assets, mailer EmailSender, c map[string]string) *routeHandlers {
	teamMembers := services.NewTeamMemberService(db.TeamMemberRepo(), assets)
	hackathons := services.NewHackathonService(db.HackathonRepo(), assets)
	achievements := services.NewAchievementService(db.AchievementRepo(), assets)
	projects := services.NewProjectService(db.ProjectRepo(), assets)
	blogs := services.NewBlogService(db.BlogRepo(), assets)
	applications := services.NewApplicationService(db.ApplicationRepo())
	contactMessages := services.NewContactMessageService(db.ContactMessageRepo())
	settings := services.NewSettingsService(db.SettingsRepo())
	sitemap := services.NewSitemapService(blogs, achievements, projects)

	passwordHash := config.GetString(c, "ADMIN_PASSWORD_HASH", "")
	jwtSecret := []byte(config.GetString(c, "JWT_SECRET", ""))
	tokenTTL := config.GetDuration(c, "ADMIN_TOKEN_TTL", 12*time.Hour)
	baseURL := config.GetString(c, "SITE_BASE_URL", "http://localhost:3000")

	return &routeHandlers{
		authHandler:           newAuthHandler(passwordHash, jwtSecret, tokenTTL),
		teamMemberHandler:     newTeamMemberHandler(teamMembers),
		hackathonHandler:      newHackathonHandler(hackathons),
		achievementHandler:    newAchievementHandler(achievements),
		projectHandler:        newProjectHandler(projects),
		blogHandler:           newBlogHandler(blogs),
		applicationHandler:    newApplicationHandler(applications, mailer),
		contactMessageHandler: newContactMessageHandler(contactMessages, mailer),
		settingsHandler:       newSettingsHandler(settings),
		sitemapHandler:        newSitemapHandler(sitemap, settings, baseURL),
		emailHandler:          newEmailHandler(mailer),
	}
}
