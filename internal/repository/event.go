package repository

import (
	"context"
	"fmt"

	"github.com/campusgg/events-api/internal/domain"
	"github.com/campusgg/events-api/internal/repository/dao"
)

var (
	ErrEventNotFound         = dao.ErrEventNotFound
	ErrEventResponseNotFound = dao.ErrEventResponseNotFound
)

type EventDAO interface {
	FindByID(ctx context.Context, id uint) (dao.Event, error)
	FindAttendees(ctx context.Context, eventID uint) ([]dao.User, error)
	AddPageViews(ctx context.Context, views map[uint]int) error
}

type EventResponseDAO interface {
	Insert(ctx context.Context, resp dao.EventResponse) (dao.EventResponse, error)
	UpdateResponse(ctx context.Context, id uint, response string) (dao.EventResponse, error)
	FindByEventAndUser(ctx context.Context, eventID, userID uint) (dao.EventResponse, error)
}

type EventRepository struct {
	dao          EventDAO
	responsesDAO EventResponseDAO
}

func NewEventRepository(dao EventDAO, responsesDAO EventResponseDAO) *EventRepository {
	return &EventRepository{
		dao:          dao,
		responsesDAO: responsesDAO,
	}
}

func (r *EventRepository) GetByID(ctx context.Context, id uint) (domain.Event, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Event{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return eventDaoToDomain(found), nil
}

func (r *EventRepository) GetAttendees(ctx context.Context, eventID uint) ([]domain.User, error) {
	found, err := r.dao.FindAttendees(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAttendees -> %w", err)
	}

	return usersDaoToDomain(found), nil
}

func (r *EventRepository) AddPageViews(ctx context.Context, views map[uint]int) error {
	if err := r.dao.AddPageViews(ctx, views); err != nil {
		return fmt.Errorf("r.dao.AddPageViews -> %w", err)
	}

	return nil
}

func (r *EventRepository) CreateResponse(ctx context.Context, resp domain.EventResponse) (domain.EventResponse, error) {
	created, err := r.responsesDAO.Insert(ctx, responseDomainToDao(resp))
	if err != nil {
		return domain.EventResponse{}, fmt.Errorf("r.responsesDAO.Insert -> %w", err)
	}

	return responseDaoToDomain(created), nil
}

func (r *EventRepository) UpdateResponse(ctx context.Context, id uint, response domain.Response) (domain.EventResponse, error) {
	updated, err := r.responsesDAO.UpdateResponse(ctx, id, string(response))
	if err != nil {
		return domain.EventResponse{}, fmt.Errorf("r.responsesDAO.UpdateResponse -> %w", err)
	}

	return responseDaoToDomain(updated), nil
}

func (r *EventRepository) GetUserResponse(ctx context.Context, eventID, userID uint) (domain.EventResponse, error) {
	found, err := r.responsesDAO.FindByEventAndUser(ctx, eventID, userID)
	if err != nil {
		return domain.EventResponse{}, fmt.Errorf("r.responsesDAO.FindByEventAndUser -> %w", err)
	}

	return responseDaoToDomain(found), nil
}

func eventDaoToDomain(e dao.Event) domain.Event {
	return domain.Event{
		ID:            e.ID,
		Name:          e.Name,
		Description:   e.Description,
		SchoolID:      e.SchoolID,
		School:        schoolDaoToDomain(e.School),
		GameID:        e.GameID,
		Game:          domain.Game{ID: e.Game.ID, Name: e.Game.Name, CoverURL: e.Game.CoverURL},
		StartDateTime: e.StartDateTime,
		EndDateTime:   e.EndDateTime,
		Location:      e.Location,
		IsOnlineEvent: e.IsOnlineEvent,
		CreatorID:     e.CreatorID,
		Responses:     domain.ResponseCounts{Yes: e.ResponsesYes, No: e.ResponsesNo},
		PageViews:     e.PageViews,
		CreatedAt:     e.CreatedAt,
		UpdatedAt:     e.UpdatedAt,
	}
}

func responseDomainToDao(r domain.EventResponse) dao.EventResponse {
	var userSchoolID *uint
	if r.User.School.ID != 0 {
		id := r.User.School.ID
		userSchoolID = &id
	}

	return dao.EventResponse{
		ID:                 r.ID,
		Response:           string(r.Response),
		UserID:             r.User.ID,
		UserFirstName:      r.User.FirstName,
		UserLastName:       r.User.LastName,
		UserGravatar:       r.User.Gravatar,
		UserStatus:         r.User.Status,
		UserSchoolID:       userSchoolID,
		UserSchoolName:     r.User.School.Name,
		EventID:            r.Event.ID,
		EventName:          r.Event.Name,
		EventDescription:   r.Event.Description,
		EventStartDateTime: r.Event.StartDateTime,
		EventEndDateTime:   r.Event.EndDateTime,
		EventIsOnline:      r.Event.IsOnlineEvent,
		SchoolID:           r.School.ID,
		SchoolName:         r.School.Name,
	}
}

func responseDaoToDomain(r dao.EventResponse) domain.EventResponse {
	resp := domain.EventResponse{
		ID:       r.ID,
		Response: domain.Response(r.Response),
		User: domain.UserSnapshot{
			ID:        r.UserID,
			FirstName: r.UserFirstName,
			LastName:  r.UserLastName,
			Gravatar:  r.UserGravatar,
			Status:    r.UserStatus,
			School:    domain.SchoolSnapshot{Name: r.UserSchoolName},
		},
		Event: domain.EventSnapshot{
			ID:            r.EventID,
			Name:          r.EventName,
			Description:   r.EventDescription,
			StartDateTime: r.EventStartDateTime,
			EndDateTime:   r.EventEndDateTime,
			IsOnlineEvent: r.EventIsOnline,
		},
		School:    domain.SchoolSnapshot{ID: r.SchoolID, Name: r.SchoolName},
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
	if r.UserSchoolID != nil {
		resp.User.School.ID = *r.UserSchoolID
	}

	return resp
}
