package dao

import (
	"context"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a private in-memory database with the full schema.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// Every connection to :memory: is a separate database.
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, InitTables(db))

	return db
}

type fixture struct {
	school  School
	game    Game
	creator User
	member  User
	event   Event
}

func seed(t *testing.T, db *gorm.DB) fixture {
	t.Helper()
	ctx := context.Background()

	schools := NewSchoolDAO(db)
	school, err := schools.InsertSchool(ctx, School{Name: "central-high", FormattedName: "Central High"})
	require.NoError(t, err)
	game, err := schools.InsertGame(ctx, Game{Name: "Rocket League"})
	require.NoError(t, err)

	users := NewUserDAO(db)
	creator, err := users.Insert(ctx, fakeUser(school.ID))
	require.NoError(t, err)
	member, err := users.Insert(ctx, fakeUser(school.ID))
	require.NoError(t, err)

	start := time.Date(2025, 1, 10, 18, 0, 0, 0, time.UTC)
	end := start.Add(2 * time.Hour)
	event, err := NewEventDAO(db).Insert(ctx, Event{
		Name:          "LAN Night",
		Description:   "Bring your own controller",
		SchoolID:      school.ID,
		GameID:        game.ID,
		StartDateTime: &start,
		EndDateTime:   &end,
		Location:      "1 Main St",
		CreatorID:     creator.ID,
	})
	require.NoError(t, err)

	return fixture{school: school, game: game, creator: creator, member: member, event: event}
}

func fakeUser(schoolID uint) User {
	return User{
		Email:     gofakeit.Email(),
		Password:  gofakeit.Password(true, true, true, false, false, 12),
		FirstName: gofakeit.FirstName(),
		LastName:  gofakeit.LastName(),
		Status:    "Student",
		SchoolID:  &schoolID,
	}
}
