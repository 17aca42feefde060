package models

// Settings singleton keys. One document per concern, fixed id, merge-updated.
const (
	SettingsWelcome   = "welcome"
	SettingsSEO       = "seo"
	SettingsJoinTeam  = "joinTeam"
	SettingsDonations = "donations"
	SettingsUI        = "ui"
	SettingsSitemap   = "sitemap"
)

// KnownSettingsKey reports whether key names one of the singleton concerns.
func KnownSettingsKey(key string) bool {
	switch key {
	case SettingsWelcome, SettingsSEO, SettingsJoinTeam, SettingsDonations, SettingsUI, SettingsSitemap:
		return true
	}
	return false
}

// Settings singletons are schemaless; missing document means
// "use caller-side defaults", which is a valid state, not an error.
type Settings map[string]any

// SitemapSettings is the typed view of the "sitemap" singleton the
// synthesizer consumes. Zero value disables every dynamic category.
type SitemapSettings struct {
	BaseURL             string `json:"baseUrl"`
	IncludeBlogs        bool   `json:"includeBlogs"`
	IncludeAchievements bool   `json:"includeAchievements"`
	IncludeProjects     bool   `json:"includeProjects"`
}
