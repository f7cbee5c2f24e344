package store

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phoopyae1/OSS/pkg/announce"
	"github.com/phoopyae1/OSS/pkg/auth"
	"github.com/phoopyae1/OSS/pkg/types"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	log := logrus.New()
	log.SetLevel(logrus.ErrorLevel)

	st, err := Open(DriverSQLite, ":memory:", log)
	require.NoError(t, err)
	require.NoError(t, st.AutoMigrate())
	return st
}

func strptr(s string) *string {
	return &s
}

func timeptr(t time.Time) *time.Time {
	return &t
}

func TestOpenRejectsUnknownDriver(t *testing.T) {
	log := logrus.New()
	_, err := Open("oracle", "dsn", log)
	assert.Error(t, err)
}

func TestServiceCRUD(t *testing.T) {
	st := newTestStore(t)

	service := types.Service{
		Name:     "API Gateway",
		Category: strptr("Infra"),
		Status:   types.StatusOperational,
		IsActive: true,
	}
	require.NoError(t, st.CreateService(&service))
	assert.NotEqual(t, uuid.Nil, service.ID)

	fetched, err := st.GetService(service.ID)
	require.NoError(t, err)
	assert.Equal(t, "API Gateway", fetched.Name)
	assert.Equal(t, types.StatusOperational, fetched.Status)

	fetched.Status = types.StatusMajorOutage
	require.NoError(t, st.UpdateService(fetched))

	updated, err := st.GetService(service.ID)
	require.NoError(t, err)
	assert.Equal(t, types.StatusMajorOutage, updated.Status)

	require.NoError(t, st.DeleteService(service.ID))

	_, err = st.GetService(service.ID)
	assert.Equal(t, ErrNotFound, err)
}

func TestServiceNotFound(t *testing.T) {
	st := newTestStore(t)

	_, err := st.GetService(uuid.New())
	assert.Equal(t, ErrNotFound, err)

	assert.Equal(t, ErrNotFound, st.DeleteService(uuid.New()))
}

func TestFindServicesFilterAndOrder(t *testing.T) {
	st := newTestStore(t)

	for _, service := range []types.Service{
		{Name: "Zeta", Category: strptr("Infra"), Status: types.StatusOperational, IsActive: true},
		{Name: "Alpha", Category: strptr("Infra"), Status: types.StatusDegraded, IsActive: true},
		{Name: "Hidden", Category: strptr("Infra"), Status: types.StatusOperational, IsActive: false},
		{Name: "App", Category: strptr("Apps"), Status: types.StatusOperational, IsActive: true},
	} {
		s := service
		require.NoError(t, st.CreateService(&s))
	}

	all, err := st.FindServices(ServiceFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 4)

	active, err := st.FindServices(ServiceFilter{ActiveOnly: true})
	require.NoError(t, err)
	require.Len(t, active, 3)
	assert.Equal(t, "App", active[0].Name)
	assert.Equal(t, "Alpha", active[1].Name)
	assert.Equal(t, "Zeta", active[2].Name)
}

func TestAnnouncementCRUD(t *testing.T) {
	st := newTestStore(t)

	start := time.Now().UTC().Add(-time.Hour).Truncate(time.Second)
	announcement := types.Announcement{
		Title:    "Planned maintenance",
		Body:     "We will be **down** briefly.",
		StartsAt: timeptr(start),
		IsActive: true,
	}
	require.NoError(t, st.CreateAnnouncement(&announcement))
	assert.NotEqual(t, uuid.Nil, announcement.ID)

	fetched, err := st.GetAnnouncement(announcement.ID)
	require.NoError(t, err)
	assert.Equal(t, "Planned maintenance", fetched.Title)
	require.NotNil(t, fetched.StartsAt)
	assert.Nil(t, fetched.EndsAt)

	fetched.IsActive = false
	require.NoError(t, st.UpdateAnnouncement(fetched))

	updated, err := st.GetAnnouncement(announcement.ID)
	require.NoError(t, err)
	assert.False(t, updated.IsActive)

	require.NoError(t, st.DeleteAnnouncement(announcement.ID))
	_, err = st.GetAnnouncement(announcement.ID)
	assert.Equal(t, ErrNotFound, err)
}

func TestFindAnnouncementsFilter(t *testing.T) {
	st := newTestStore(t)

	old := types.Announcement{Title: "old", Body: "x", IsActive: true}
	require.NoError(t, st.CreateAnnouncement(&old))
	require.NoError(t, st.DB().Model(&old).Update("created_at", time.Now().UTC().Add(-60*24*time.Hour)).Error)

	recentInactive := types.Announcement{Title: "recent inactive", Body: "x", IsActive: false}
	require.NoError(t, st.CreateAnnouncement(&recentInactive))

	recentActive := types.Announcement{Title: "recent active", Body: "x", IsActive: true}
	require.NoError(t, st.CreateAnnouncement(&recentActive))

	all, err := st.FindAnnouncements(announce.Filter{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "old", all[2].Title, "newest first, oldest last")

	active := true
	actives, err := st.FindAnnouncements(announce.Filter{Active: &active})
	require.NoError(t, err)
	assert.Len(t, actives, 2)

	inactive := false
	inactives, err := st.FindAnnouncements(announce.Filter{Active: &inactive})
	require.NoError(t, err)
	require.Len(t, inactives, 1)
	assert.Equal(t, "recent inactive", inactives[0].Title)

	cutoff := time.Now().UTC().Add(-30 * 24 * time.Hour)
	recent, err := st.FindAnnouncements(announce.Filter{CreatedFrom: &cutoff})
	require.NoError(t, err)
	assert.Len(t, recent, 2)
}

func TestUserLookupAndEnsureAdmin(t *testing.T) {
	st := newTestStore(t)

	log := logrus.New()
	log.SetLevel(logrus.ErrorLevel)

	_, err := st.FindUserByUsername("admin")
	assert.Equal(t, ErrNotFound, err)

	require.NoError(t, st.EnsureAdmin("admin", "changeme", log))

	admin, err := st.FindUserByUsername("admin")
	require.NoError(t, err)
	assert.Equal(t, types.RoleAdmin, admin.Role)
	assert.True(t, auth.CheckPassword(admin.Password, "changeme"))

	// Seeding again must not overwrite the existing account.
	require.NoError(t, st.EnsureAdmin("admin", "different", log))
	again, err := st.FindUserByUsername("admin")
	require.NoError(t, err)
	assert.Equal(t, admin.ID, again.ID)
	assert.True(t, auth.CheckPassword(again.Password, "changeme"))
}
