package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/campusgg/events-api/internal/domain"
	"github.com/campusgg/events-api/internal/repository"
)

var errStore = errors.New("connection reset by peer")

type fakeEventRepo struct {
	mu sync.Mutex

	events    map[uint]domain.Event
	attendees map[uint][]domain.User
	responses []domain.EventResponse

	getErr       error
	attendeesErr error
	responseErr  error
	writeErr     error

	// block, when set, holds writes until closed.
	block   chan struct{}
	entered chan struct{}

	creates int
	updates int
}

func newFakeEventRepo() *fakeEventRepo {
	return &fakeEventRepo{
		events:    make(map[uint]domain.Event),
		attendees: make(map[uint][]domain.User),
	}
}

func (f *fakeEventRepo) GetByID(_ context.Context, id uint) (domain.Event, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.getErr != nil {
		return domain.Event{}, f.getErr
	}
	e, ok := f.events[id]
	if !ok {
		return domain.Event{}, repository.ErrEventNotFound
	}
	return e, nil
}

func (f *fakeEventRepo) GetAttendees(_ context.Context, eventID uint) ([]domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.attendeesErr != nil {
		return nil, f.attendeesErr
	}
	return append([]domain.User(nil), f.attendees[eventID]...), nil
}

func (f *fakeEventRepo) GetUserResponse(_ context.Context, eventID, userID uint) (domain.EventResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.responseErr != nil {
		return domain.EventResponse{}, f.responseErr
	}
	for _, r := range f.responses {
		if r.Event.ID == eventID && r.User.ID == userID {
			return r, nil
		}
	}
	return domain.EventResponse{}, repository.ErrEventResponseNotFound
}

func (f *fakeEventRepo) wait() {
	if f.block == nil {
		return
	}
	if f.entered != nil {
		f.entered <- struct{}{}
	}
	<-f.block
}

func (f *fakeEventRepo) CreateResponse(_ context.Context, resp domain.EventResponse) (domain.EventResponse, error) {
	f.wait()

	f.mu.Lock()
	defer f.mu.Unlock()

	if f.writeErr != nil {
		return domain.EventResponse{}, f.writeErr
	}
	f.creates++
	resp.ID = uint(len(f.responses) + 1)
	resp.CreatedAt = time.Now()
	f.responses = append(f.responses, resp)
	return resp, nil
}

func (f *fakeEventRepo) UpdateResponse(_ context.Context, id uint, response domain.Response) (domain.EventResponse, error) {
	f.wait()

	f.mu.Lock()
	defer f.mu.Unlock()

	if f.writeErr != nil {
		return domain.EventResponse{}, f.writeErr
	}
	for i := range f.responses {
		if f.responses[i].ID == id {
			f.updates++
			f.responses[i].Response = response
			return f.responses[i], nil
		}
	}
	return domain.EventResponse{}, repository.ErrEventResponseNotFound
}

type fakeUserRepo struct {
	users     map[uint]domain.User
	byEmail   map[string]domain.User
	findErr   error
	listErr   error
	createErr error

	lastLimit int
}

func newFakeUserRepo(users ...domain.User) *fakeUserRepo {
	f := &fakeUserRepo{
		users:   make(map[uint]domain.User),
		byEmail: make(map[string]domain.User),
	}
	for _, u := range users {
		f.users[u.ID] = u
		f.byEmail[u.Email] = u
	}
	return f
}

func (f *fakeUserRepo) Create(_ context.Context, user domain.User) (domain.User, error) {
	if f.createErr != nil {
		return domain.User{}, f.createErr
	}
	if _, ok := f.byEmail[user.Email]; ok {
		return domain.User{}, repository.ErrUserEmailExists
	}
	user.ID = uint(len(f.users) + 1)
	f.users[user.ID] = user
	f.byEmail[user.Email] = user
	return user, nil
}

func (f *fakeUserRepo) FindByID(_ context.Context, id uint) (domain.User, error) {
	if f.findErr != nil {
		return domain.User{}, f.findErr
	}
	u, ok := f.users[id]
	if !ok {
		return domain.User{}, repository.ErrUserNotFound
	}
	return u, nil
}

func (f *fakeUserRepo) FindByEmail(_ context.Context, email string) (domain.User, error) {
	if f.findErr != nil {
		return domain.User{}, f.findErr
	}
	u, ok := f.byEmail[email]
	if !ok {
		return domain.User{}, repository.ErrUserNotFound
	}
	return u, nil
}

func (f *fakeUserRepo) FindBySchool(_ context.Context, schoolID uint, limit int) ([]domain.User, error) {
	f.lastLimit = limit
	if f.listErr != nil {
		return nil, f.listErr
	}
	var out []domain.User
	for id := uint(1); id <= uint(len(f.users)) && len(out) < limit; id++ {
		if u, ok := f.users[id]; ok && u.SchoolID == schoolID {
			out = append(out, u)
		}
	}
	return out, nil
}

func (f *fakeUserRepo) FindRecent(_ context.Context, limit int) ([]domain.User, error) {
	f.lastLimit = limit
	if f.listErr != nil {
		return nil, f.listErr
	}
	var out []domain.User
	for id := uint(len(f.users)); id >= 1 && len(out) < limit; id-- {
		out = append(out, f.users[id])
	}
	return out, nil
}

type countingRecorder struct {
	mu    sync.Mutex
	views map[uint]int
}

func (r *countingRecorder) Increment(eventID uint) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.views == nil {
		r.views = make(map[uint]int)
	}
	r.views[eventID]++
}

func (r *countingRecorder) count(eventID uint) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.views[eventID]
}

var (
	testNow   = time.Date(2025, 1, 10, 19, 0, 0, 0, time.UTC)
	testStart = time.Date(2025, 1, 10, 18, 0, 0, 0, time.UTC)
	testEnd   = time.Date(2025, 1, 10, 20, 0, 0, 0, time.UTC)

	creator = domain.User{ID: 1, Email: "host@central.edu", FirstName: "Hana", LastName: "Host", SchoolID: 7, School: domain.School{ID: 7, Name: "Central High"}}
	member  = domain.User{ID: 2, Email: "mia@central.edu", FirstName: "Mia", LastName: "Member", Status: "Student", SchoolID: 7, School: domain.School{ID: 7, Name: "Central High"}}
)

func testEvent() domain.Event {
	start, end := testStart, testEnd
	return domain.Event{
		ID:            10,
		Name:          "LAN Night",
		Description:   "Bring your own controller",
		SchoolID:      7,
		School:        domain.School{ID: 7, Name: "Central High", FormattedName: "Central High"},
		GameID:        3,
		Game:          domain.Game{ID: 3, Name: "Rocket League"},
		StartDateTime: &start,
		EndDateTime:   &end,
		Location:      "1 Main St",
		CreatorID:     creator.ID,
	}
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}
