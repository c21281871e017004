package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	ics "github.com/arran4/golang-ical"
	"golang.org/x/sync/errgroup"

	"github.com/campusgg/events-api/internal/domain"
	"github.com/campusgg/events-api/internal/repository"
)

const (
	calendarProductID  = "-//campusgg//events-api//EN"
	onlineLocationText = "Online event"
)

var (
	ErrEventNotFound         = repository.ErrEventNotFound
	ErrEventResponseNotFound = repository.ErrEventResponseNotFound
	ErrEventNoSchedule       = errors.New("event has no schedule")
)

type EventRepository interface {
	GetByID(ctx context.Context, id uint) (domain.Event, error)
	GetAttendees(ctx context.Context, eventID uint) ([]domain.User, error)
	GetUserResponse(ctx context.Context, eventID, userID uint) (domain.EventResponse, error)
}

type ProfileRepository interface {
	FindByID(ctx context.Context, id uint) (domain.User, error)
}

type PageViewRecorder interface {
	Increment(eventID uint)
}

type EventService struct {
	repo  EventRepository
	users ProfileRepository
	views PageViewRecorder
	now   func() time.Time
}

func NewEventService(repo EventRepository, users ProfileRepository, views PageViewRecorder) *EventService {
	return &EventService{
		repo:  repo,
		users: users,
		views: views,
		now:   time.Now,
	}
}

// GetEventPage loads the event page and counts one view. Every failed read
// is reported as ErrEventNotFound.
func (s *EventService) GetEventPage(ctx context.Context, eventID uint, identity *domain.Identity) (domain.EventPage, error) {
	page, err := s.loadPage(ctx, eventID, identity)
	if err != nil {
		return domain.EventPage{}, err
	}

	// Only pages that were served count as views.
	s.views.Increment(eventID)

	return page, nil
}

// RefreshEventPage re-reads the page after a change made by the viewer
// without counting a view.
func (s *EventService) RefreshEventPage(ctx context.Context, eventID uint, identity *domain.Identity) (domain.EventPage, error) {
	return s.loadPage(ctx, eventID, identity)
}

func (s *EventService) loadPage(ctx context.Context, eventID uint, identity *domain.Identity) (domain.EventPage, error) {
	var (
		event     domain.Event
		attendees []domain.User
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		event, err = s.repo.GetByID(gctx, eventID)
		if err != nil {
			return fmt.Errorf("s.repo.GetByID -> %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		attendees, err = s.repo.GetAttendees(gctx, eventID)
		if err != nil {
			return fmt.Errorf("s.repo.GetAttendees -> %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return domain.EventPage{}, notFound(err)
	}

	var existing *domain.EventResponse
	if identity != nil {
		viewer, err := s.loadViewer(ctx, eventID, *identity)
		if err != nil {
			return domain.EventPage{}, notFound(err)
		}
		existing = viewer.existing
	}

	for i := range attendees {
		attendees[i] = attendees[i].Public()
	}

	return domain.NewEventPage(identity, event, attendees, existing, s.now()), nil
}

type viewerRecords struct {
	profile  domain.User
	existing *domain.EventResponse
}

// loadViewer reads the viewer's profile and their response to the event
// concurrently. A missing response is not an error.
func (s *EventService) loadViewer(ctx context.Context, eventID uint, identity domain.Identity) (viewerRecords, error) {
	var rec viewerRecords

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		rec.profile, err = s.users.FindByID(gctx, identity.UserID)
		if err != nil {
			return fmt.Errorf("s.users.FindByID -> %w", err)
		}
		return nil
	})
	g.Go(func() error {
		resp, err := s.repo.GetUserResponse(gctx, eventID, identity.UserID)
		if err != nil {
			if errors.Is(err, repository.ErrEventResponseNotFound) {
				return nil
			}
			return fmt.Errorf("s.repo.GetUserResponse -> %w", err)
		}
		rec.existing = &resp
		return nil
	})
	if err := g.Wait(); err != nil {
		return viewerRecords{}, err
	}

	return rec, nil
}

func (s *EventService) GetAttendees(ctx context.Context, eventID uint) ([]domain.User, error) {
	page, err := s.loadPage(ctx, eventID, nil)
	if err != nil {
		return nil, err
	}

	return page.Attendees, nil
}

// ExportCalendar renders the event as a single VEVENT iCalendar document.
func (s *EventService) ExportCalendar(ctx context.Context, eventID uint) (string, error) {
	event, err := s.repo.GetByID(ctx, eventID)
	if err != nil {
		return "", fmt.Errorf("s.repo.GetByID -> %w", err)
	}
	if event.StartDateTime == nil {
		return "", ErrEventNoSchedule
	}

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId(calendarProductID)

	vevent := cal.AddEvent(fmt.Sprintf("event-%d@campusgg", event.ID))
	vevent.SetDtStampTime(s.now())
	vevent.SetCreatedTime(event.CreatedAt)
	vevent.SetModifiedAt(event.UpdatedAt)
	vevent.SetStartAt(*event.StartDateTime)
	if event.EndDateTime != nil {
		vevent.SetEndAt(*event.EndDateTime)
	}
	vevent.SetSummary(event.Name)
	if event.HasDescription() {
		vevent.SetDescription(event.Description)
	}

	switch {
	case event.IsOnlineEvent:
		vevent.SetLocation(onlineLocationText)
	case event.HasLocation():
		vevent.SetLocation(event.Location)
	}

	if event.School.FormattedName != "" {
		vevent.AddProperty(ics.ComponentPropertyCategories, event.School.FormattedName)
	}
	if event.Game.Name != "" {
		vevent.AddProperty(ics.ComponentPropertyCategories, event.Game.Name)
	}

	return cal.Serialize(), nil
}

// notFound folds any read failure into ErrEventNotFound while keeping the
// cause in the chain for logging.
func notFound(err error) error {
	if errors.Is(err, ErrEventNotFound) {
		return err
	}
	return fmt.Errorf("%w: %w", ErrEventNotFound, err)
}
