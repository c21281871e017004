package domain

import (
	"errors"
	"time"

	"github.com/campusgg/events-api/internal/pkg/datetime"
)

var (
	ErrCannotChangeResponse = errors.New("viewer cannot change the response to this event")
	ErrResponseUnchanged    = errors.New("response is already set to the requested value")
)

// Identity is a verified viewer. It is the same value whether it came from the
// auth cookie of a page load or from the bearer token of a live session.
type Identity struct {
	UserID uint
}

// ViewerState is derived per request and never persisted.
type ViewerState struct {
	IsEventCreator         bool      `json:"is_event_creator"`
	CanChangeEventResponse bool      `json:"can_change_event_response"`
	HasResponded           bool      `json:"has_responded"`
	CurrentResponse        *Response `json:"current_response"`
}

// ResolveViewerState decides what the viewer may do on the event page. An
// event whose end is unknown is treated as not ended.
func ResolveViewerState(identity *Identity, event Event, existing *EventResponse, now time.Time) ViewerState {
	if identity == nil {
		return ViewerState{}
	}

	isCreator := identity.UserID == event.CreatorID
	ended := datetime.HasEnded(event.EndDateTime, now)

	state := ViewerState{
		IsEventCreator:         isCreator,
		CanChangeEventResponse: !isCreator && (ended == nil || !*ended),
		HasResponded:           existing != nil,
	}
	if existing != nil {
		r := existing.Response
		state.CurrentResponse = &r
	}

	return state
}

type RSVPState string

const (
	NotResponded RSVPState = "NOT_RESPONDED"
	RespondedNo  RSVPState = "RESPONDED_NO"
	RespondedYes RSVPState = "RESPONDED_YES"
)

func StateOf(existing *EventResponse) RSVPState {
	switch {
	case existing == nil:
		return NotResponded
	case existing.Response == ResponseYes:
		return RespondedYes
	default:
		return RespondedNo
	}
}

func stateFor(r Response) RSVPState {
	if r == ResponseYes {
		return RespondedYes
	}
	return RespondedNo
}

// Transition returns the state reached by submitting target from s.
// Re-submitting the current answer is rejected.
func (s RSVPState) Transition(target Response) (RSVPState, error) {
	if _, err := ParseResponse(string(target)); err != nil {
		return s, err
	}

	next := stateFor(target)
	if s == next {
		return s, ErrResponseUnchanged
	}

	return next, nil
}
