package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

var ErrEventNotFound = errors.New("event not found")

type Event struct {
	ID          uint   `gorm:"primaryKey"`
	Name        string `gorm:"not null"`
	Description string

	SchoolID uint   `gorm:"not null;index"`
	School   School `gorm:"foreignKey:SchoolID"`
	GameID   uint   `gorm:"not null;index"`
	Game     Game   `gorm:"foreignKey:GameID"`

	StartDateTime *time.Time
	EndDateTime   *time.Time
	Location      string
	IsOnlineEvent bool `gorm:"not null;default:false"`

	CreatorID uint `gorm:"not null;index"`
	Creator   User `gorm:"foreignKey:CreatorID"`

	ResponsesYes int `gorm:"not null;default:0"`
	ResponsesNo  int `gorm:"not null;default:0"`
	PageViews    int `gorm:"not null;default:0"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

type EventDAO struct {
	db *gorm.DB
}

func NewEventDAO(db *gorm.DB) *EventDAO {
	return &EventDAO{
		db: db,
	}
}

func (d *EventDAO) Insert(ctx context.Context, event Event) (Event, error) {
	if err := d.db.WithContext(ctx).Create(&event).Error; err != nil {
		return Event{}, err
	}

	return event, nil
}

func (d *EventDAO) FindByID(ctx context.Context, id uint) (Event, error) {
	var event Event

	result := d.db.WithContext(ctx).
		Preload("School").
		Preload("Game").
		First(&event, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Event{}, ErrEventNotFound
		}

		return Event{}, result.Error
	}

	return event, nil
}

// FindAttendees returns the users whose response to the event is YES, in the
// order they first responded. A user with several YES records is listed once.
func (d *EventDAO) FindAttendees(ctx context.Context, eventID uint) ([]User, error) {
	var users []User

	result := d.db.WithContext(ctx).
		Preload("School").
		Select("users.*").
		Joins("JOIN event_responses ON event_responses.user_id = users.id").
		Where("event_responses.event_id = ? AND event_responses.response = ?", eventID, ResponseYes).
		Group("users.id").
		Order("MIN(event_responses.created_at)").
		Order("users.id").
		Find(&users)
	if result.Error != nil {
		return nil, result.Error
	}

	return users, nil
}

// AddPageViews applies a batch of view increments in one transaction. Unknown
// event ids are skipped.
func (d *EventDAO) AddPageViews(ctx context.Context, views map[uint]int) error {
	if len(views) == 0 {
		return nil
	}

	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for eventID, n := range views {
			err := tx.Model(&Event{}).
				Where("id = ?", eventID).
				UpdateColumn("page_views", gorm.Expr("page_views + ?", n)).Error
			if err != nil {
				return err
			}
		}

		return nil
	})
}
