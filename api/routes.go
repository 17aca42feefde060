package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// setupRoutes mounts the public site endpoints, the admin endpoints behind
// authentication, and the operational endpoints.
func setupRoutes(r chi.Router, handlers *routeHandlers, authMiddleware authMiddleware, startupTime time.Time) {
	// Public content, read-only plus the two form submissions
	r.Group(func(r chi.Router) {
		r.Use(RequestLoggingMiddleware)

		r.Post("/api/auth/login", handlers.authHandler.login())

		r.Get("/api/team-members", handlers.teamMemberHandler.getAllTeamMembers())
		r.Get("/api/team-members/{memberID}", handlers.teamMemberHandler.getTeamMember())

		r.Get("/api/hackathons", handlers.hackathonHandler.getAllHackathons())
		r.Get("/api/hackathons/{hackathonID}", handlers.hackathonHandler.getHackathon())

		r.Get("/api/achievements", handlers.achievementHandler.getAllAchievements())
		r.Get("/api/achievements/{achievementID}", handlers.achievementHandler.getAchievement())

		r.Get("/api/projects", handlers.projectHandler.getAllProjects())
		r.Get("/api/projects/{projectID}", handlers.projectHandler.getProject())

		r.Get("/api/blogs", handlers.blogHandler.getPublishedBlogs())
		r.Get("/api/blogs/{blogID}", handlers.blogHandler.getBlog())

		r.Get("/api/settings/{key}", handlers.settingsHandler.getSettings())

		r.Post("/api/applications", handlers.applicationHandler.submitApplication())
		r.Post("/api/contact-messages", handlers.contactMessageHandler.submitContactMessage())

		// Method handling is inside the handler so the 405 body matches
		// the documented contract.
		r.HandleFunc("/api/sitemap", handlers.sitemapHandler.serveSitemap())
	})

	// Admin dashboard endpoints
	r.Group(func(r chi.Router) {
		r.Use(RequestLoggingMiddleware)
		r.Use(authMiddleware.authenticate)

		r.Post("/api/team-members", handlers.teamMemberHandler.createTeamMember())
		r.Put("/api/team-members/{memberID}", handlers.teamMemberHandler.updateTeamMember())
		r.Delete("/api/team-members/{memberID}", handlers.teamMemberHandler.deleteTeamMember())

		r.Post("/api/hackathons", handlers.hackathonHandler.createHackathon())
		r.Put("/api/hackathons/{hackathonID}", handlers.hackathonHandler.updateHackathon())
		r.Delete("/api/hackathons/{hackathonID}", handlers.hackathonHandler.deleteHackathon())

		r.Post("/api/achievements", handlers.achievementHandler.createAchievement())
		r.Put("/api/achievements/{achievementID}", handlers.achievementHandler.updateAchievement())
		r.Delete("/api/achievements/{achievementID}", handlers.achievementHandler.deleteAchievement())

		r.Post("/api/projects", handlers.projectHandler.createProject())
		r.Put("/api/projects/{projectID}", handlers.projectHandler.updateProject())
		r.Delete("/api/projects/{projectID}", handlers.projectHandler.deleteProject())

		r.Get("/api/admin/blogs", handlers.blogHandler.getAllBlogs())
		r.Post("/api/blogs", handlers.blogHandler.createBlog())
		r.Put("/api/blogs/{blogID}", handlers.blogHandler.updateBlog())
		r.Delete("/api/blogs/{blogID}", handlers.blogHandler.deleteBlog())

		r.Get("/api/applications", handlers.applicationHandler.getAllApplications())
		r.Get("/api/applications/{applicationID}", handlers.applicationHandler.getApplication())
		r.Patch("/api/applications/{applicationID}/status", handlers.applicationHandler.updateApplicationStatus())
		r.Delete("/api/applications/{applicationID}", handlers.applicationHandler.deleteApplication())

		r.Get("/api/contact-messages", handlers.contactMessageHandler.getAllContactMessages())
		r.Patch("/api/contact-messages/{messageID}/read", handlers.contactMessageHandler.markContactMessageRead())
		r.Delete("/api/contact-messages/{messageID}", handlers.contactMessageHandler.deleteContactMessage())

		r.Put("/api/settings/{key}", handlers.settingsHandler.updateSettings())
	})

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.Write([]byte(`{"status":"ok","uptime":"` + time.Since(startupTime).Round(time.Second).String() + `"}`))
	})

	r.Handle("/metrics", promhttp.Handler())
}

// setupEmailRoutes mounts the standalone relay endpoint. It carries its own
// wide-open CORS policy, independent of the main API origin list.
func setupEmailRoutes(r chi.Router, handlers *routeHandlers) {
	r.Group(func(r chi.Router) {
		r.Use(corsMiddleware(""))
		r.Use(RequestLoggingMiddleware)

		r.HandleFunc("/api/send-email", handlers.emailHandler.sendEmail())
	})
}
