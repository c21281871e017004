package domain

import (
	"errors"
	"fmt"
	"time"
)

type Response string

const (
	ResponseYes Response = "YES"
	ResponseNo  Response = "NO"
)

var ErrInvalidResponse = errors.New("response must be YES or NO")

func ParseResponse(s string) (Response, error) {
	switch r := Response(s); r {
	case ResponseYes, ResponseNo:
		return r, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidResponse, s)
	}
}

type SchoolSnapshot struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

type UserSnapshot struct {
	ID        uint           `json:"id"`
	FirstName string         `json:"first_name"`
	LastName  string         `json:"last_name"`
	Gravatar  string         `json:"gravatar"`
	Status    string         `json:"status"`
	School    SchoolSnapshot `json:"school"`
}

type EventSnapshot struct {
	ID            uint       `json:"id"`
	Name          string     `json:"name"`
	Description   string     `json:"description"`
	StartDateTime *time.Time `json:"start_date_time"`
	EndDateTime   *time.Time `json:"end_date_time"`
	IsOnlineEvent bool       `json:"is_online_event"`
}

// EventResponse is one user's RSVP to one event. The user, event and school
// fields are copies taken when the record was created and are never synced.
type EventResponse struct {
	ID        uint           `json:"id"`
	Response  Response       `json:"response"`
	User      UserSnapshot   `json:"user"`
	Event     EventSnapshot  `json:"event"`
	School    SchoolSnapshot `json:"school"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

// NewEventResponse builds a record ready to insert, snapshotting user and event.
func NewEventResponse(response Response, user User, event Event) EventResponse {
	return EventResponse{
		Response: response,
		User: UserSnapshot{
			ID:        user.ID,
			FirstName: user.FirstName,
			LastName:  user.LastName,
			Gravatar:  user.Gravatar,
			Status:    user.Status,
			School: SchoolSnapshot{
				ID:   user.SchoolID,
				Name: user.School.Name,
			},
		},
		Event: EventSnapshot{
			ID:            event.ID,
			Name:          event.Name,
			Description:   event.Description,
			StartDateTime: event.StartDateTime,
			EndDateTime:   event.EndDateTime,
			IsOnlineEvent: event.IsOnlineEvent,
		},
		School: SchoolSnapshot{
			ID:   event.SchoolID,
			Name: event.School.Name,
		},
	}
}
