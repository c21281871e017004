package dao

import (
	"context"
	"time"

	"gorm.io/gorm"
)

type School struct {
	ID            uint   `gorm:"primaryKey"`
	Name          string `gorm:"not null"`
	FormattedName string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type Game struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"not null"`
	CoverURL  string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// SchoolDAO writes the reference data events point at. Schools and games are
// managed outside the API; this is used by seeding and tests.
type SchoolDAO struct {
	db *gorm.DB
}

func NewSchoolDAO(db *gorm.DB) *SchoolDAO {
	return &SchoolDAO{
		db: db,
	}
}

func (d *SchoolDAO) InsertSchool(ctx context.Context, school School) (School, error) {
	if err := d.db.WithContext(ctx).Create(&school).Error; err != nil {
		return School{}, err
	}

	return school, nil
}

func (d *SchoolDAO) InsertGame(ctx context.Context, game Game) (Game, error) {
	if err := d.db.WithContext(ctx).Create(&game).Error; err != nil {
		return Game{}, err
	}

	return game, nil
}
