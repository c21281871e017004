package v1

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/campusgg/events-api/internal/api/middleware"
	"github.com/campusgg/events-api/internal/config"
	"github.com/campusgg/events-api/internal/domain"
	"github.com/campusgg/events-api/internal/pkg/jwthelper"
	"github.com/campusgg/events-api/internal/service"
)

const testSigningKey = "test-signing-key"

var testAPIConfig = &config.APIConfig{
	Environment:          config.EnvTest,
	JWTSigningKey:        testSigningKey,
	JWTTTL:               time.Hour,
	TokenRefreshInterval: 10 * time.Minute,
	AuthCookieName:       "token",
}

func init() {
	gin.SetMode(gin.TestMode)
}

type fakeEventService struct {
	page     domain.EventPage
	err      error
	calendar string

	lastIdentity *domain.Identity
	refreshes    int
}

func (f *fakeEventService) GetEventPage(_ context.Context, eventID uint, identity *domain.Identity) (domain.EventPage, error) {
	f.lastIdentity = identity
	if f.err != nil || eventID != f.page.Event.ID {
		return domain.EventPage{}, service.ErrEventNotFound
	}
	return f.page, nil
}

func (f *fakeEventService) RefreshEventPage(ctx context.Context, eventID uint, identity *domain.Identity) (domain.EventPage, error) {
	f.refreshes++
	return f.GetEventPage(ctx, eventID, identity)
}

func (f *fakeEventService) GetAttendees(_ context.Context, eventID uint) ([]domain.User, error) {
	if eventID != f.page.Event.ID {
		return nil, service.ErrEventNotFound
	}
	return f.page.Attendees, nil
}

func (f *fakeEventService) ExportCalendar(_ context.Context, eventID uint) (string, error) {
	if eventID != f.page.Event.ID {
		return "", service.ErrEventNotFound
	}
	if f.calendar == "" {
		return "", service.ErrEventNoSchedule
	}
	return f.calendar, nil
}

type fakeRSVPService struct {
	result service.SubmitResult
	err    error

	lastIdentity domain.Identity
	lastResponse domain.Response
}

func (f *fakeRSVPService) Respond(_ context.Context, identity domain.Identity, _ uint, response domain.Response) (service.SubmitResult, error) {
	f.lastIdentity = identity
	f.lastResponse = response
	return f.result, f.err
}

type recordingPublisher struct {
	mu     sync.Mutex
	counts map[uint]domain.ResponseCounts
}

func (p *recordingPublisher) Publish(eventID uint, counts domain.ResponseCounts) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.counts == nil {
		p.counts = make(map[uint]domain.ResponseCounts)
	}
	p.counts[eventID] = counts
}

func testPage() domain.EventPage {
	start := time.Date(2025, 1, 10, 18, 0, 0, 0, time.UTC)
	end := start.Add(2 * time.Hour)
	event := domain.Event{
		ID:            10,
		Name:          "LAN Night",
		StartDateTime: &start,
		EndDateTime:   &end,
		Location:      "1 Main St",
		CreatorID:     1,
		Responses:     domain.ResponseCounts{Yes: 3, No: 1},
	}

	return domain.NewEventPage(nil, event, nil, nil, start.Add(time.Hour))
}

func bearer(t *testing.T, userID uint) string {
	t.Helper()

	token, err := jwthelper.GenerateToken([]byte(testSigningKey), userID, "", time.Hour)
	require.NoError(t, err)

	return "Bearer " + token
}

func testAuthenticator() *middleware.Authenticator {
	return middleware.NewAuthenticator(testSigningKey, testAPIConfig.AuthCookieName)
}

func doJSON(router http.Handler, method, path string, body any, headers map[string]string) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	return rec
}
