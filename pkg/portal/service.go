// Package portal composes the persistence layer with the aggregation, window
// and rendering logic into the payloads the HTTP boundary serves. Every call
// operates on a fresh request-scoped snapshot; nothing is cached between
// requests.
package portal

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/phoopyae1/OSS/pkg/announce"
	"github.com/phoopyae1/OSS/pkg/markdown"
	"github.com/phoopyae1/OSS/pkg/status"
	"github.com/phoopyae1/OSS/pkg/store"
	"github.com/phoopyae1/OSS/pkg/types"
)

// Store is the slice of the persistence layer the portal reads from.
type Store interface {
	FindServices(store.ServiceFilter) ([]types.Service, error)
	FindAnnouncements(announce.Filter) ([]types.Announcement, error)
}

// Portal builds the dashboard view-model and the public API payloads.
type Portal struct {
	store  Store
	logger *logrus.Logger
}

func New(st Store, logger *logrus.Logger) *Portal {
	return &Portal{store: st, logger: logger}
}

// RenderedAnnouncement is an announcement carrying its sanitized HTML body.
type RenderedAnnouncement struct {
	types.Announcement
	HTML string `json:"html"`
}

// DashboardModel is the view-model served to authenticated staff.
type DashboardModel struct {
	OverallStatus       types.Status           `json:"overallStatus"`
	GroupedServices     []status.Group         `json:"groupedServices"`
	StatusCounts        status.Counts          `json:"statusCounts"`
	DownServices        []types.Service        `json:"downServices"`
	AttentionServices   []types.Service        `json:"attentionServices"`
	ActiveAnnouncements []RenderedAnnouncement `json:"activeAnnouncements"`
	RecentAnnouncements []RenderedAnnouncement `json:"recentAnnouncements"`
}

// StatusPayload is the public status snapshot.
type StatusPayload struct {
	GeneratedAt   time.Time       `json:"generatedAt"`
	OverallStatus types.Status    `json:"overallStatus"`
	Services      []types.Service `json:"services"`
}

// AnnouncementsPayload is the public announcement feed.
type AnnouncementsPayload struct {
	GeneratedAt   time.Time            `json:"generatedAt"`
	Count         int                  `json:"count"`
	Announcements []types.Announcement `json:"announcements"`
}

func renderAll(announcements []types.Announcement) ([]RenderedAnnouncement, error) {
	rendered := make([]RenderedAnnouncement, 0, len(announcements))
	for _, a := range announcements {
		html, err := markdown.Render(a.Body)
		if err != nil {
			return nil, fmt.Errorf("failed to render announcement %s: %w", a.ID, err)
		}
		rendered = append(rendered, RenderedAnnouncement{Announcement: a, HTML: html})
	}
	return rendered, nil
}

// DashboardModel assembles the staff dashboard for the given instant: overall
// status, grouped board, histogram and problem subsets over active services,
// plus announcements active at now and those created within the trailing
// recent window, each with rendered HTML.
func (p *Portal) DashboardModel(now time.Time) (*DashboardModel, error) {
	services, err := p.store.FindServices(store.ServiceFilter{ActiveOnly: true})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch services: %w", err)
	}

	flagged := true
	candidates, err := p.store.FindAnnouncements(announce.Filter{Active: &flagged})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch announcements: %w", err)
	}
	active, err := renderAll(announce.FilterActiveAt(candidates, now))
	if err != nil {
		return nil, err
	}

	cutoff := announce.RecentCutoff(now)
	recentRaw, err := p.store.FindAnnouncements(announce.Filter{CreatedFrom: &cutoff})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch recent announcements: %w", err)
	}
	recent, err := renderAll(recentRaw)
	if err != nil {
		return nil, err
	}

	return &DashboardModel{
		OverallStatus:       status.Overall(services),
		GroupedServices:     status.GroupByCategory(services),
		StatusCounts:        status.Histogram(services),
		DownServices:        status.Down(services),
		AttentionServices:   status.NeedsAttention(services),
		ActiveAnnouncements: active,
		RecentAnnouncements: recent,
	}, nil
}

// PublicStatus builds the unauthenticated status snapshot over active
// services.
func (p *Portal) PublicStatus(now time.Time) (*StatusPayload, error) {
	services, err := p.store.FindServices(store.ServiceFilter{ActiveOnly: true})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch services: %w", err)
	}
	return &StatusPayload{
		GeneratedAt:   now,
		OverallStatus: status.Overall(services),
		Services:      services,
	}, nil
}

// PublicAnnouncements builds the unauthenticated announcement feed for the
// given query filter, newest first.
func (p *Portal) PublicAnnouncements(filter announce.Filter, now time.Time) (*AnnouncementsPayload, error) {
	announcements, err := p.store.FindAnnouncements(filter)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch announcements: %w", err)
	}
	return &AnnouncementsPayload{
		GeneratedAt:   now,
		Count:         len(announcements),
		Announcements: announcements,
	}, nil
}
