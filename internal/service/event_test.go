package service

import (
	"context"
	"strings"
	"testing"

	ics "github.com/arran4/golang-ical"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campusgg/events-api/internal/domain"
)

func newTestEventService() (*EventService, *fakeEventRepo, *fakeUserRepo, *countingRecorder) {
	repo := newFakeEventRepo()
	event := testEvent()
	repo.events[event.ID] = event
	repo.attendees[event.ID] = []domain.User{member}

	users := newFakeUserRepo(creator, member)
	views := &countingRecorder{}

	svc := NewEventService(repo, users, views)
	svc.now = fixedClock(testNow)

	return svc, repo, users, views
}

func TestEventService_GetEventPage(t *testing.T) {
	ctx := context.Background()

	t.Run("anonymous viewer", func(t *testing.T) {
		svc, _, users, views := newTestEventService()
		users.findErr = errStore

		page, err := svc.GetEventPage(ctx, 10, nil)
		require.NoError(t, err)

		assert.Equal(t, "LAN Night", page.Event.Name)
		assert.Equal(t, domain.ViewerState{}, page.Viewer)
		assert.Nil(t, page.Dialog)
		require.Len(t, page.Attendees, 1)
		assert.Empty(t, page.Attendees[0].Email)
		assert.Equal(t, 1, views.count(10))
	})

	t.Run("member without a response", func(t *testing.T) {
		svc, _, _, _ := newTestEventService()

		page, err := svc.GetEventPage(ctx, 10, &domain.Identity{UserID: member.ID})
		require.NoError(t, err)

		assert.True(t, page.Viewer.CanChangeEventResponse)
		assert.False(t, page.Viewer.HasResponded)
		require.NotNil(t, page.Dialog)
		assert.Equal(t, domain.ResponseYes, page.Dialog.Response)
	})

	t.Run("member who is attending", func(t *testing.T) {
		svc, repo, _, _ := newTestEventService()
		repo.responses = []domain.EventResponse{{
			ID:       1,
			Response: domain.ResponseYes,
			User:     domain.UserSnapshot{ID: member.ID},
			Event:    domain.EventSnapshot{ID: 10},
		}}

		page, err := svc.GetEventPage(ctx, 10, &domain.Identity{UserID: member.ID})
		require.NoError(t, err)

		assert.True(t, page.Viewer.HasResponded)
		require.NotNil(t, page.Viewer.CurrentResponse)
		assert.Equal(t, domain.ResponseYes, *page.Viewer.CurrentResponse)
		require.NotNil(t, page.Dialog)
		assert.Equal(t, "Cancel RSVP", page.Dialog.Header)
	})

	t.Run("creator cannot respond", func(t *testing.T) {
		svc, _, _, _ := newTestEventService()

		page, err := svc.GetEventPage(ctx, 10, &domain.Identity{UserID: creator.ID})
		require.NoError(t, err)

		assert.True(t, page.Viewer.IsEventCreator)
		assert.False(t, page.Viewer.CanChangeEventResponse)
		assert.Nil(t, page.Dialog)
	})

	t.Run("missing event", func(t *testing.T) {
		svc, _, _, views := newTestEventService()

		_, err := svc.GetEventPage(ctx, 99, nil)
		assert.ErrorIs(t, err, ErrEventNotFound)
		assert.Zero(t, views.count(99))
	})

	t.Run("attendee read failure is not found", func(t *testing.T) {
		svc, repo, _, views := newTestEventService()
		repo.attendeesErr = errStore

		_, err := svc.GetEventPage(ctx, 10, nil)
		assert.ErrorIs(t, err, ErrEventNotFound)
		assert.ErrorIs(t, err, errStore)
		assert.Zero(t, views.count(10))
	})

	t.Run("profile read failure is not found", func(t *testing.T) {
		svc, _, users, _ := newTestEventService()
		users.findErr = errStore

		_, err := svc.GetEventPage(ctx, 10, &domain.Identity{UserID: member.ID})
		assert.ErrorIs(t, err, ErrEventNotFound)
	})

	t.Run("unknown viewer is not found", func(t *testing.T) {
		svc, _, _, _ := newTestEventService()

		_, err := svc.GetEventPage(ctx, 10, &domain.Identity{UserID: 404})
		assert.ErrorIs(t, err, ErrEventNotFound)
	})

	t.Run("refresh does not count a view", func(t *testing.T) {
		svc, _, _, views := newTestEventService()

		_, err := svc.RefreshEventPage(ctx, 10, nil)
		require.NoError(t, err)
		assert.Zero(t, views.count(10))
	})
}

func TestEventService_ExportCalendar(t *testing.T) {
	ctx := context.Background()

	t.Run("renders a single event", func(t *testing.T) {
		svc, _, _, _ := newTestEventService()

		out, err := svc.ExportCalendar(ctx, 10)
		require.NoError(t, err)

		cal, err := ics.ParseCalendar(strings.NewReader(out))
		require.NoError(t, err)
		events := cal.Events()
		require.Len(t, events, 1)

		ev := events[0]
		assert.Equal(t, "event-10@campusgg", ev.Id())
		assert.Equal(t, "LAN Night", ev.GetProperty(ics.ComponentPropertySummary).Value)
		assert.Equal(t, "1 Main St", ev.GetProperty(ics.ComponentPropertyLocation).Value)

		start, err := ev.GetStartAt()
		require.NoError(t, err)
		assert.True(t, start.Equal(testStart))
		end, err := ev.GetEndAt()
		require.NoError(t, err)
		assert.True(t, end.Equal(testEnd))
	})

	t.Run("online events", func(t *testing.T) {
		svc, repo, _, _ := newTestEventService()
		event := repo.events[10]
		event.IsOnlineEvent = true
		repo.events[10] = event

		out, err := svc.ExportCalendar(ctx, 10)
		require.NoError(t, err)
		assert.Contains(t, out, "LOCATION:Online event")
	})

	t.Run("no schedule", func(t *testing.T) {
		svc, repo, _, _ := newTestEventService()
		event := repo.events[10]
		event.StartDateTime = nil
		repo.events[10] = event

		_, err := svc.ExportCalendar(ctx, 10)
		assert.ErrorIs(t, err, ErrEventNoSchedule)
	})

	t.Run("missing event", func(t *testing.T) {
		svc, _, _, _ := newTestEventService()

		_, err := svc.ExportCalendar(ctx, 99)
		assert.ErrorIs(t, err, ErrEventNotFound)
	})
}

func TestEventService_GetAttendees(t *testing.T) {
	svc, _, _, views := newTestEventService()

	attendees, err := svc.GetAttendees(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, attendees, 1)
	assert.Equal(t, member.ID, attendees[0].ID)
	assert.Zero(t, views.count(10))

	_, err = svc.GetAttendees(context.Background(), 99)
	assert.ErrorIs(t, err, ErrEventNotFound)
}
