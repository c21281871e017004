//go:build integration

package db

import (
	"context"
	"fmt"
	"log"
	"os"
	"testing"
	"time"

	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/campusgg/events-api/internal/repository/dao"
)

const (
	pgUser     = "user"
	pgPassword = "password"
	pgDBName   = "events_test"
)

var testDB *gorm.DB

func TestMain(m *testing.M) {
	pool, err := dockertest.NewPool("")
	if err != nil {
		log.Fatalf("could not connect to docker: %s", err)
	}

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "16",
		Env: []string{
			"POSTGRES_USER=" + pgUser,
			"POSTGRES_PASSWORD=" + pgPassword,
			"POSTGRES_DB=" + pgDBName,
		},
	}, func(conf *docker.HostConfig) {
		conf.AutoRemove = true
		conf.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		log.Fatalf("could not start postgres: %s", err)
	}
	_ = resource.Expire(120)

	dsn := fmt.Sprintf("postgres://%s:%s@%s/%s?sslmode=disable",
		pgUser, pgPassword, resource.GetHostPort("5432/tcp"), pgDBName)

	pool.MaxWait = time.Minute
	if err = pool.Retry(func() error {
		var err error
		testDB, err = OpenPostgresWithURL(dsn)
		return err
	}); err != nil {
		_ = pool.Purge(resource)
		log.Fatalf("could not connect to postgres: %s", err)
	}

	code := m.Run()

	if err = pool.Purge(resource); err != nil {
		log.Printf("could not purge postgres: %s", err)
	}

	os.Exit(code)
}

func seedEvent(t *testing.T) (dao.User, dao.Event) {
	t.Helper()
	ctx := context.Background()

	schools := dao.NewSchoolDAO(testDB)
	school, err := schools.InsertSchool(ctx, dao.School{Name: fmt.Sprintf("school-%d", time.Now().UnixNano())})
	require.NoError(t, err)
	game, err := schools.InsertGame(ctx, dao.Game{Name: "Valorant"})
	require.NoError(t, err)

	user, err := dao.NewUserDAO(testDB).Insert(ctx, dao.User{
		Email:     fmt.Sprintf("player-%d@example.com", time.Now().UnixNano()),
		Password:  "hash",
		FirstName: "Sam",
		SchoolID:  &school.ID,
	})
	require.NoError(t, err)

	start := time.Now().Add(24 * time.Hour).UTC()
	event, err := dao.NewEventDAO(testDB).Insert(ctx, dao.Event{
		Name:          "Scrim",
		SchoolID:      school.ID,
		GameID:        game.ID,
		StartDateTime: &start,
		CreatorID:     user.ID,
	})
	require.NoError(t, err)

	return user, event
}

func TestPostgres_DuplicateEmail(t *testing.T) {
	user, _ := seedEvent(t)

	_, err := dao.NewUserDAO(testDB).Insert(context.Background(), dao.User{
		Email:     user.Email,
		Password:  "hash",
		FirstName: "Copy",
	})
	assert.ErrorIs(t, err, dao.ErrUserEmailExists)
}

func TestPostgres_ResponseCounters(t *testing.T) {
	ctx := context.Background()
	user, event := seedEvent(t)

	responses := dao.NewEventResponseDAO(testDB)
	events := dao.NewEventDAO(testDB)

	created, err := responses.Insert(ctx, dao.EventResponse{
		Response: dao.ResponseYes,
		UserID:   user.ID,
		EventID:  event.ID,
		SchoolID: event.SchoolID,
	})
	require.NoError(t, err)

	got, err := events.FindByID(ctx, event.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, got.ResponsesYes)
	assert.Equal(t, 0, got.ResponsesNo)

	_, err = responses.UpdateResponse(ctx, created.ID, dao.ResponseNo)
	require.NoError(t, err)

	got, err = events.FindByID(ctx, event.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, got.ResponsesYes)
	assert.Equal(t, 1, got.ResponsesNo)

	require.NoError(t, events.AddPageViews(ctx, map[uint]int{event.ID: 3}))
	got, err = events.FindByID(ctx, event.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, got.PageViews)
}
