package services

import (
	"context"
	"encoding/xml"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/vedanta-tech/team-site-backend/errs"
	"github.com/vedanta-tech/team-site-backend/models"
)

const sitemapXMLNS = "http://www.sitemaps.org/schemas/sitemap/0.9"

// Static routes of the site, with crawl hints
var staticRoutes = []struct {
	path       string
	changeFreq string
	priority   string
}{
	{"/", "weekly", "1.0"},
	{"/about", "monthly", "0.8"},
	{"/team", "weekly", "0.8"},
	{"/achievements", "weekly", "0.9"},
	{"/projects", "weekly", "0.9"},
	{"/blog", "daily", "0.9"},
	{"/donate", "monthly", "0.6"},
	{"/contact", "monthly", "0.5"},
	{"/join", "monthly", "0.7"},
}

type urlEntry struct {
	Loc        string `xml:"loc"`
	LastMod    string `xml:"lastmod,omitempty"`
	ChangeFreq string `xml:"changefreq,omitempty"`
	Priority   string `xml:"priority,omitempty"`
}

type urlSet struct {
	XMLName xml.Name   `xml:"urlset"`
	XMLNS   string     `xml:"xmlns,attr"`
	URLs    []urlEntry `xml:"url"`
}

// The three content sources the synthesizer reads
type sitemapBlogSource interface {
	ListPublished(ctx context.Context) ([]*models.Blog, error)
}

type sitemapAchievementSource interface {
	List(ctx context.Context) ([]*models.Achievement, error)
}

type sitemapProjectSource interface {
	List(ctx context.Context) ([]*models.Project, error)
}

type SitemapService struct {
	blogs        sitemapBlogSource
	achievements sitemapAchievementSource
	projects     sitemapProjectSource
	logger       zerolog.Logger
}

func NewSitemapService(blogs sitemapBlogSource, achievements sitemapAchievementSource, projects sitemapProjectSource) SitemapService {
	return SitemapService{
		blogs:        blogs,
		achievements: achievements,
		projects:     projects,
		logger:       log.With().Str("serviceName", "sitemapService").Logger(),
	}
}

// Generate synthesizes the sitemaps.org urlset for the site: the static
// routes always, plus one entry per published blog, achievement and
// project when the corresponding category is enabled. A category whose
// fetch fails is logged and omitted; the sitemap is advisory and a dead
// category should not take the whole document down.
func (s SitemapService) Generate(ctx context.Context, cfg models.SitemapSettings) (string, error) {
	base := strings.TrimRight(cfg.BaseURL, "/")

	set := urlSet{XMLNS: sitemapXMLNS}
	now := time.Now().UTC()
	for _, route := range staticRoutes {
		set.URLs = append(set.URLs, urlEntry{
			Loc:        base + route.path,
			LastMod:    now.Format(time.RFC3339),
			ChangeFreq: route.changeFreq,
			Priority:   route.priority,
		})
	}

	if cfg.IncludeBlogs {
		blogs, err := s.blogs.ListPublished(ctx)
		if err != nil {
			s.logger.Error().Err(err).Msg("sitemap: skipping blogs")
		} else {
			for _, b := range blogs {
				set.URLs = append(set.URLs, urlEntry{
					Loc:        fmt.Sprintf("%s/blog/%s", base, pathSegment(b.Slug, b.ID)),
					LastMod:    lastMod(b.UpdatedAt, b.CreatedAt, now),
					ChangeFreq: "monthly",
					Priority:   "0.7",
				})
			}
		}
	}

	if cfg.IncludeAchievements {
		achievements, err := s.achievements.List(ctx)
		if err != nil {
			s.logger.Error().Err(err).Msg("sitemap: skipping achievements")
		} else {
			for _, a := range achievements {
				set.URLs = append(set.URLs, urlEntry{
					Loc:        fmt.Sprintf("%s/achievements/%s", base, pathSegment(a.Slug, a.ID)),
					LastMod:    lastMod(a.UpdatedAt, a.CreatedAt, now),
					ChangeFreq: "monthly",
					Priority:   "0.6",
				})
			}
		}
	}

	if cfg.IncludeProjects {
		projects, err := s.projects.List(ctx)
		if err != nil {
			s.logger.Error().Err(err).Msg("sitemap: skipping projects")
		} else {
			for _, p := range projects {
				set.URLs = append(set.URLs, urlEntry{
					Loc:        fmt.Sprintf("%s/projects/%s", base, pathSegment(p.Slug, p.ID)),
					LastMod:    lastMod(p.UpdatedAt, p.CreatedAt, now),
					ChangeFreq: "monthly",
					Priority:   "0.6",
				})
			}
		}
	}

	body, err := xml.MarshalIndent(set, "", "  ")
	if err != nil {
		return "", errs.NewInternalErrorWithCause("failed to marshal sitemap", err)
	}
	return xml.Header + string(body), nil
}

// pathSegment prefers the slug, falling back to the document id
func pathSegment(slug, id string) string {
	if slug != "" {
		return slug
	}
	return id
}

// lastMod prefers updatedAt, then createdAt, then now
func lastMod(updated, created, now time.Time) string {
	switch {
	case !updated.IsZero():
		return updated.Format(time.RFC3339)
	case !created.IsZero():
		return created.Format(time.RFC3339)
	}
	return now.Format(time.RFC3339)
}
