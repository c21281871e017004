package domain

import (
	"net/url"
	"strings"
	"time"
)

const (
	EventEmptyLocationText = "No location provided"
	EventEmptyUsersText    = "No users have RSVP'd yet"

	googleMapsSearchURL = "https://www.google.com/maps/search/?api=1&query="
)

type ResponseCounts struct {
	Yes int `json:"yes"`
	No  int `json:"no"`
}

type Event struct {
	ID            uint           `json:"id"`
	Name          string         `json:"name"`
	Description   string         `json:"description"`
	SchoolID      uint           `json:"school_id"`
	School        School         `json:"school"`
	GameID        uint           `json:"game_id"`
	Game          Game           `json:"game"`
	StartDateTime *time.Time     `json:"start_date_time"`
	EndDateTime   *time.Time     `json:"end_date_time"`
	Location      string         `json:"location"`
	IsOnlineEvent bool           `json:"is_online_event"`
	CreatorID     uint           `json:"creator_id"`
	Responses     ResponseCounts `json:"responses"`
	PageViews     int            `json:"page_views"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
}

func (e Event) HasLocation() bool {
	return !e.IsOnlineEvent && strings.TrimSpace(e.Location) != ""
}

// GoogleMapsLink is empty for online events and events without an address.
func (e Event) GoogleMapsLink() string {
	if !e.HasLocation() {
		return ""
	}

	return googleMapsSearchURL + url.QueryEscape(e.Location)
}

func (e Event) HasDescription() bool {
	return strings.TrimSpace(e.Description) != ""
}
