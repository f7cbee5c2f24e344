package portal

import (
	"errors"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phoopyae1/OSS/pkg/announce"
	"github.com/phoopyae1/OSS/pkg/store"
	"github.com/phoopyae1/OSS/pkg/types"
)

type fakeStore struct {
	services      []types.Service
	announcements []types.Announcement
	servicesErr   error
	announceErr   error

	announceFilters []announce.Filter
}

func (f *fakeStore) FindServices(filter store.ServiceFilter) ([]types.Service, error) {
	if f.servicesErr != nil {
		return nil, f.servicesErr
	}
	return f.services, nil
}

func (f *fakeStore) FindAnnouncements(filter announce.Filter) ([]types.Announcement, error) {
	if f.announceErr != nil {
		return nil, f.announceErr
	}
	f.announceFilters = append(f.announceFilters, filter)
	return filter.Apply(f.announcements), nil
}

func strptr(s string) *string {
	return &s
}

func timeptr(t time.Time) *time.Time {
	return &t
}

func newPortal(f *fakeStore) *Portal {
	log := logrus.New()
	log.SetLevel(logrus.ErrorLevel)
	return New(f, log)
}

var now = time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

func TestPublicStatus(t *testing.T) {
	f := &fakeStore{
		services: []types.Service{
			{Name: "api", Status: types.StatusOperational},
			{Name: "db", Status: types.StatusPartialOutage},
		},
	}

	payload, err := newPortal(f).PublicStatus(now)
	require.NoError(t, err)

	assert.Equal(t, now, payload.GeneratedAt)
	assert.Equal(t, types.StatusPartialOutage, payload.OverallStatus)
	assert.Len(t, payload.Services, 2)
}

func TestPublicStatusEmptyBoard(t *testing.T) {
	payload, err := newPortal(&fakeStore{}).PublicStatus(now)
	require.NoError(t, err)
	assert.Equal(t, types.StatusOperational, payload.OverallStatus)
}

func TestPublicStatusPropagatesStorageError(t *testing.T) {
	f := &fakeStore{servicesErr: errors.New("connection refused")}

	_, err := newPortal(f).PublicStatus(now)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection refused")
}

func TestPublicAnnouncements(t *testing.T) {
	f := &fakeStore{
		announcements: []types.Announcement{
			{Title: "a", IsActive: true, CreatedAt: now.Add(-time.Hour)},
			{Title: "b", IsActive: false, CreatedAt: now.Add(-2 * time.Hour)},
		},
	}

	active := true
	payload, err := newPortal(f).PublicAnnouncements(announce.Filter{Active: &active}, now)
	require.NoError(t, err)

	assert.Equal(t, now, payload.GeneratedAt)
	assert.Equal(t, 1, payload.Count)
	require.Len(t, payload.Announcements, 1)
	assert.Equal(t, "a", payload.Announcements[0].Title)
}

func TestDashboardModel(t *testing.T) {
	f := &fakeStore{
		services: []types.Service{
			{Name: "api", Category: strptr("Infra"), Status: types.StatusMajorOutage},
			{Name: "site", Category: strptr(""), Status: types.StatusOperational},
			{Name: "worker", Category: strptr("Infra"), Status: types.StatusDegraded},
		},
		announcements: []types.Announcement{
			{
				Title:     "live",
				Body:      "We are **investigating**.",
				IsActive:  true,
				StartsAt:  timeptr(now.Add(-time.Hour)),
				CreatedAt: now.Add(-time.Hour),
			},
			{
				Title:     "scheduled",
				Body:      "Upcoming window.",
				IsActive:  true,
				StartsAt:  timeptr(now.Add(24 * time.Hour)),
				CreatedAt: now.Add(-2 * time.Hour),
			},
			{
				Title:     "ancient",
				Body:      "Old news.",
				IsActive:  false,
				CreatedAt: now.Add(-90 * 24 * time.Hour),
			},
		},
	}

	model, err := newPortal(f).DashboardModel(now)
	require.NoError(t, err)

	assert.Equal(t, types.StatusMajorOutage, model.OverallStatus)

	require.Len(t, model.GroupedServices, 2)
	assert.Equal(t, "General", model.GroupedServices[0].Category)
	assert.Equal(t, "Infra", model.GroupedServices[1].Category)

	assert.Equal(t, 3, model.StatusCounts.Total)
	assert.Equal(t, 1, model.StatusCounts.ByStatus[types.StatusMajorOutage])

	require.Len(t, model.DownServices, 1)
	assert.Equal(t, "api", model.DownServices[0].Name)
	assert.Len(t, model.AttentionServices, 2)

	// Only the announcement whose window contains now is active; the future
	// one stays out even though its flag is set.
	require.Len(t, model.ActiveAnnouncements, 1)
	assert.Equal(t, "live", model.ActiveAnnouncements[0].Title)
	assert.Contains(t, model.ActiveAnnouncements[0].HTML, "<strong>investigating</strong>")

	// Recent spans the trailing 30 days regardless of the active window.
	require.Len(t, model.RecentAnnouncements, 2)
	for _, a := range model.RecentAnnouncements {
		assert.NotEqual(t, "ancient", a.Title)
		assert.NotEmpty(t, a.HTML)
	}
}

func TestDashboardModelQueriesRecentWindow(t *testing.T) {
	f := &fakeStore{}

	_, err := newPortal(f).DashboardModel(now)
	require.NoError(t, err)

	require.Len(t, f.announceFilters, 2)
	require.NotNil(t, f.announceFilters[1].CreatedFrom)
	assert.Equal(t, announce.RecentCutoff(now), *f.announceFilters[1].CreatedFrom)
}

func TestDashboardModelPropagatesAnnouncementError(t *testing.T) {
	f := &fakeStore{announceErr: errors.New("timeout")}

	_, err := newPortal(f).DashboardModel(now)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "timeout")
}
