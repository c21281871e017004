package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

const (
	ResponseYes = "YES"
	ResponseNo  = "NO"
)

var ErrEventResponseNotFound = errors.New("event response not found")

// EventResponse keeps copies of the user, event and school as they were when
// the RSVP was first made. Only Response changes afterwards.
type EventResponse struct {
	ID       uint   `gorm:"primaryKey"`
	Response string `gorm:"type:varchar(3);not null"`

	UserID         uint `gorm:"not null;index:idx_event_responses_event_user,priority:2"`
	UserFirstName  string
	UserLastName   string
	UserGravatar   string
	UserStatus     string
	UserSchoolID   *uint
	UserSchoolName string

	EventID            uint `gorm:"not null;index:idx_event_responses_event_user,priority:1"`
	EventName          string
	EventDescription   string
	EventStartDateTime *time.Time
	EventEndDateTime   *time.Time
	EventIsOnline      bool

	SchoolID   uint `gorm:"not null;index"`
	SchoolName string

	CreatedAt time.Time
	UpdatedAt time.Time
}

type EventResponseDAO struct {
	db *gorm.DB
}

func NewEventResponseDAO(db *gorm.DB) *EventResponseDAO {
	return &EventResponseDAO{
		db: db,
	}
}

func counterColumn(response string) string {
	if response == ResponseYes {
		return "responses_yes"
	}
	return "responses_no"
}

func adjustCounter(tx *gorm.DB, eventID uint, response string, delta int) error {
	column := counterColumn(response)

	result := tx.Model(&Event{}).
		Where("id = ?", eventID).
		UpdateColumn(column, gorm.Expr(column+" + ?", delta))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrEventNotFound
	}

	return nil
}

// Insert stores a new response and bumps the event's counter for it. Both
// writes commit together or not at all.
func (d *EventResponseDAO) Insert(ctx context.Context, resp EventResponse) (EventResponse, error) {
	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&resp).Error; err != nil {
			return err
		}

		return adjustCounter(tx, resp.EventID, resp.Response, 1)
	})
	if err != nil {
		return EventResponse{}, err
	}

	return resp, nil
}

// UpdateResponse flips the response of an existing record, leaving its
// snapshot columns untouched, and moves one count between the event counters.
func (d *EventResponseDAO) UpdateResponse(ctx context.Context, id uint, response string) (EventResponse, error) {
	var resp EventResponse

	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&resp, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrEventResponseNotFound
			}
			return err
		}

		previous := resp.Response
		if previous == response {
			return nil
		}

		if err := tx.Model(&resp).Update("response", response).Error; err != nil {
			return err
		}
		resp.Response = response

		if err := adjustCounter(tx, resp.EventID, previous, -1); err != nil {
			return err
		}

		return adjustCounter(tx, resp.EventID, response, 1)
	})
	if err != nil {
		return EventResponse{}, err
	}

	return resp, nil
}

func (d *EventResponseDAO) FindByID(ctx context.Context, id uint) (EventResponse, error) {
	var resp EventResponse

	result := d.db.WithContext(ctx).First(&resp, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return EventResponse{}, ErrEventResponseNotFound
		}

		return EventResponse{}, result.Error
	}

	return resp, nil
}

// FindByEventAndUser returns the oldest response the user gave to the event.
func (d *EventResponseDAO) FindByEventAndUser(ctx context.Context, eventID, userID uint) (EventResponse, error) {
	var resp EventResponse

	result := d.db.WithContext(ctx).
		Where("event_id = ? AND user_id = ?", eventID, userID).
		Order("id").
		First(&resp)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return EventResponse{}, ErrEventResponseNotFound
		}

		return EventResponse{}, result.Error
	}

	return resp, nil
}
