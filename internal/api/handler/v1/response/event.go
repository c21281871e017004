package response

import (
	"time"

	"github.com/campusgg/events-api/internal/domain"
	"github.com/campusgg/events-api/internal/pkg/datetime"
)

type EventPayload struct {
	ID             uint                  `json:"id"`
	Name           string                `json:"name"`
	Description    string                `json:"description"`
	School         domain.School         `json:"school"`
	Game           domain.Game           `json:"game"`
	CreatorID      uint                  `json:"creator_id"`
	Start          *datetime.DateTime    `json:"start"`
	End            *datetime.DateTime    `json:"end"`
	Schedule       string                `json:"schedule"`
	HasStarted     *bool                 `json:"has_started"`
	HasEnded       *bool                 `json:"has_ended"`
	IsOnlineEvent  bool                  `json:"is_online_event"`
	Location       string                `json:"location"`
	GoogleMapsLink string                `json:"google_maps_link,omitempty"`
	Responses      domain.ResponseCounts `json:"responses"`
	PageViews      int                   `json:"page_views"`
}

type EventPageResponse struct {
	Event              EventPayload       `json:"event"`
	Attendees          []domain.User      `json:"attendees"`
	AttendeesEmptyText string             `json:"attendees_empty_text,omitempty"`
	Viewer             domain.ViewerState `json:"viewer"`
	Dialog             *domain.Dialog     `json:"dialog"`
}

func NewEventPayload(e domain.Event, now time.Time) EventPayload {
	payload := EventPayload{
		ID:             e.ID,
		Name:           e.Name,
		Description:    e.Description,
		School:         e.School,
		Game:           e.Game,
		CreatorID:      e.CreatorID,
		Start:          datetime.Build(e.StartDateTime, now),
		End:            datetime.Build(e.EndDateTime, now),
		Schedule:       datetime.FormatRange(e.StartDateTime, e.EndDateTime),
		HasStarted:     datetime.HasStarted(e.StartDateTime, e.EndDateTime, now),
		HasEnded:       datetime.HasEnded(e.EndDateTime, now),
		IsOnlineEvent:  e.IsOnlineEvent,
		Location:       e.Location,
		GoogleMapsLink: e.GoogleMapsLink(),
		Responses:      e.Responses,
		PageViews:      e.PageViews,
	}
	if !e.IsOnlineEvent && !e.HasLocation() {
		payload.Location = domain.EventEmptyLocationText
	}

	return payload
}

func NewEventPageResponse(page domain.EventPage) EventPageResponse {
	resp := EventPageResponse{
		Event:     NewEventPayload(page.Event, page.LoadedAt),
		Attendees: page.Attendees,
		Viewer:    page.Viewer,
		Dialog:    page.Dialog,
	}
	if len(resp.Attendees) == 0 {
		resp.Attendees = []domain.User{}
		resp.AttendeesEmptyText = domain.EventEmptyUsersText
	}

	return resp
}

type RSVPResponse struct {
	Outcome      string                `json:"outcome,omitempty"`
	Notification domain.Notification   `json:"notification"`
	Record       *domain.EventResponse `json:"record,omitempty"`
	// Page is the re-read event page; absent if the re-read failed.
	Page *EventPageResponse `json:"page,omitempty"`
}

type ScheduleOptionsResponse struct {
	Years   []string `json:"years"`
	Times   []string `json:"times"`
	Closest string   `json:"closest"`
}

type UsersResponse struct {
	Users     []domain.User `json:"users"`
	EmptyText string        `json:"empty_text,omitempty"`
}

func NewUsersResponse(users []domain.User, emptyText string) UsersResponse {
	if len(users) == 0 {
		return UsersResponse{Users: []domain.User{}, EmptyText: emptyText}
	}
	return UsersResponse{Users: users}
}
