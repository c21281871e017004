package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/campusgg/events-api/internal/domain"
)

var (
	ErrSubmissionInProgress = errors.New("submission already in progress")
	// ErrSubmissionFailed marks a rejected write, whatever the store said.
	ErrSubmissionFailed     = errors.New("rsvp submission failed")
	ErrCannotChangeResponse = domain.ErrCannotChangeResponse
	ErrResponseUnchanged    = domain.ErrResponseUnchanged
)

type Outcome string

const (
	OutcomeCreated Outcome = "CREATED"
	OutcomeUpdated Outcome = "UPDATED"
)

type RSVPRepository interface {
	EventRepository
	CreateResponse(ctx context.Context, resp domain.EventResponse) (domain.EventResponse, error)
	UpdateResponse(ctx context.Context, id uint, response domain.Response) (domain.EventResponse, error)
}

type SubmitInput struct {
	Response domain.Response
	Identity domain.Identity
	Event    domain.Event
	// Profile is snapshotted into new records.
	Profile  domain.User
	Existing *domain.EventResponse
}

type SubmitResult struct {
	Outcome      Outcome
	Record       domain.EventResponse
	Notification domain.Notification
}

type submissionKey struct {
	userID  uint
	eventID uint
}

type RSVPService struct {
	repo  RSVPRepository
	users ProfileRepository
	now   func() time.Time

	mu       sync.Mutex
	inFlight map[submissionKey]struct{}
}

func NewRSVPService(repo RSVPRepository, users ProfileRepository) *RSVPService {
	return &RSVPService{
		repo:     repo,
		users:    users,
		now:      time.Now,
		inFlight: make(map[submissionKey]struct{}),
	}
}

func (s *RSVPService) acquire(key submissionKey) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, busy := s.inFlight[key]; busy {
		return false
	}
	s.inFlight[key] = struct{}{}
	return true
}

func (s *RSVPService) release(key submissionKey) {
	s.mu.Lock()
	delete(s.inFlight, key)
	s.mu.Unlock()
}

// Respond reads the event, the viewer's profile and any existing response,
// then submits. The lookups and the write run under the same in-flight
// guard so a second request cannot insert a duplicate record.
func (s *RSVPService) Respond(ctx context.Context, identity domain.Identity, eventID uint, response domain.Response) (SubmitResult, error) {
	key := submissionKey{userID: identity.UserID, eventID: eventID}
	if !s.acquire(key) {
		return SubmitResult{}, ErrSubmissionInProgress
	}
	defer s.release(key)

	var in SubmitInput
	in.Response = response
	in.Identity = identity

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		in.Event, err = s.repo.GetByID(gctx, eventID)
		if err != nil {
			return fmt.Errorf("s.repo.GetByID -> %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		in.Profile, err = s.users.FindByID(gctx, identity.UserID)
		if err != nil {
			return fmt.Errorf("s.users.FindByID -> %w", err)
		}
		return nil
	})
	g.Go(func() error {
		existing, err := s.repo.GetUserResponse(gctx, eventID, identity.UserID)
		if err != nil {
			if errors.Is(err, ErrEventResponseNotFound) {
				return nil
			}
			return fmt.Errorf("s.repo.GetUserResponse -> %w", err)
		}
		in.Existing = &existing
		return nil
	})
	if err := g.Wait(); err != nil {
		return SubmitResult{}, notFound(err)
	}

	return s.submit(ctx, in)
}

// Submit performs exactly one write for the viewer: an insert when they have
// not responded yet, otherwise an update of the response alone.
func (s *RSVPService) Submit(ctx context.Context, in SubmitInput) (SubmitResult, error) {
	key := submissionKey{userID: in.Identity.UserID, eventID: in.Event.ID}
	if !s.acquire(key) {
		return SubmitResult{}, ErrSubmissionInProgress
	}
	defer s.release(key)

	return s.submit(ctx, in)
}

func (s *RSVPService) submit(ctx context.Context, in SubmitInput) (SubmitResult, error) {
	viewer := domain.ResolveViewerState(&in.Identity, in.Event, in.Existing, s.now())
	if !viewer.CanChangeEventResponse {
		return SubmitResult{}, ErrCannotChangeResponse
	}

	if _, err := domain.StateOf(in.Existing).Transition(in.Response); err != nil {
		return SubmitResult{}, err
	}

	if in.Existing == nil {
		created, err := s.repo.CreateResponse(ctx, domain.NewEventResponse(in.Response, in.Profile, in.Event))
		if err != nil {
			return failedSubmission(in, fmt.Errorf("s.repo.CreateResponse -> %w", err))
		}

		return SubmitResult{
			Outcome:      OutcomeCreated,
			Record:       created,
			Notification: domain.CreatedNotification(),
		}, nil
	}

	updated, err := s.repo.UpdateResponse(ctx, in.Existing.ID, in.Response)
	if err != nil {
		return failedSubmission(in, fmt.Errorf("s.repo.UpdateResponse -> %w", err))
	}

	return SubmitResult{
		Outcome:      OutcomeUpdated,
		Record:       updated,
		Notification: domain.UpdatedNotification(),
	}, nil
}

// failedSubmission carries the store's own message to the viewer.
func failedSubmission(in SubmitInput, err error) (SubmitResult, error) {
	zap.L().Error("rsvp write failed",
		zap.Uint("user_id", in.Identity.UserID),
		zap.Uint("event_id", in.Event.ID),
		zap.String("response", string(in.Response)),
		zap.Error(err),
	)

	return SubmitResult{
		Notification: domain.ErrorNotification(rootCause(err).Error()),
	}, fmt.Errorf("%w: %w", ErrSubmissionFailed, err)
}

func rootCause(err error) error {
	for {
		next := errors.Unwrap(err)
		if next == nil {
			return err
		}
		err = next
	}
}
