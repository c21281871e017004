package domain

import "time"

// EventPage is everything the event page needs, read at LoadedAt.
type EventPage struct {
	Event     Event
	Attendees []User
	Viewer    ViewerState
	// Dialog is set only when the viewer may change their response.
	Dialog   *Dialog
	LoadedAt time.Time
}

func NewEventPage(identity *Identity, event Event, attendees []User, existing *EventResponse, now time.Time) EventPage {
	viewer := ResolveViewerState(identity, event, existing, now)

	page := EventPage{
		Event:     event,
		Attendees: attendees,
		Viewer:    viewer,
		LoadedAt:  now,
	}
	if viewer.CanChangeEventResponse {
		dialog := DialogFor(StateOf(existing), event.Name)
		page.Dialog = &dialog
	}

	return page
}
