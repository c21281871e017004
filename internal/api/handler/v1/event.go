package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/campusgg/events-api/internal/api/handler/v1/request"
	"github.com/campusgg/events-api/internal/api/handler/v1/response"
	"github.com/campusgg/events-api/internal/api/middleware"
	"github.com/campusgg/events-api/internal/domain"
	"github.com/campusgg/events-api/internal/pkg/datetime"
	"github.com/campusgg/events-api/internal/service"
)

type EventService interface {
	GetEventPage(ctx context.Context, eventID uint, identity *domain.Identity) (domain.EventPage, error)
	RefreshEventPage(ctx context.Context, eventID uint, identity *domain.Identity) (domain.EventPage, error)
	GetAttendees(ctx context.Context, eventID uint) ([]domain.User, error)
	ExportCalendar(ctx context.Context, eventID uint) (string, error)
}

type EventHandler struct {
	svc EventService
}

func NewEventHandler(svc EventService) *EventHandler {
	return &EventHandler{
		svc: svc,
	}
}

func eventNotFound(eventID any, cause error) *response.Err {
	resp := response.ErrNotFound("event", "ID", eventID)
	if cause != nil {
		resp.Err = cause
	}
	return resp
}

// HandleGetEventPage godoc
// @Summary      Get the event page
// @Description  Reads the auth cookie when present. An invalid cookie is answered with 404, like a missing event.
// @Tags         events
// @Produce      json
// @Param        eventID   path      int  true  "event ID"
// @Success      200  {object}   response.EventPageResponse
// @Failure      400  {object}   response.Err
// @Failure      404  {object}   response.Err
// @Router       /events/{eventID} [get]
func (h *EventHandler) HandleGetEventPage(ctx *gin.Context) {
	eventID, respErr := parseIDParam(ctx, "eventID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	page, err := h.svc.GetEventPage(ctx.Request.Context(), eventID, middleware.IdentityFrom(ctx))
	if err != nil {
		zap.L().Debug("event page not served", zap.Uint("event_id", eventID), zap.Error(err))
		response.RenderErr(ctx, eventNotFound(eventID, err))
		return
	}

	ctx.JSON(http.StatusOK, response.NewEventPageResponse(page))
}

// HandleGetAttendees godoc
// @Summary      List users attending an event
// @Tags         events
// @Produce      json
// @Param        eventID   path      int  true  "event ID"
// @Success      200  {object}   response.UsersResponse
// @Failure      400  {object}   response.Err
// @Failure      404  {object}   response.Err
// @Router       /events/{eventID}/attendees [get]
func (h *EventHandler) HandleGetAttendees(ctx *gin.Context) {
	eventID, respErr := parseIDParam(ctx, "eventID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	attendees, err := h.svc.GetAttendees(ctx.Request.Context(), eventID)
	if err != nil {
		response.RenderErr(ctx, eventNotFound(eventID, err))
		return
	}

	ctx.JSON(http.StatusOK, response.NewUsersResponse(attendees, domain.EventEmptyUsersText))
}

// HandleExportCalendar godoc
// @Summary      Export an event as iCalendar
// @Tags         events
// @Produce      text/calendar
// @Param        eventID   path      int  true  "event ID"
// @Success      200  {string}   string
// @Failure      400  {object}   response.Err
// @Failure      404  {object}   response.Err
// @Failure      500  {object}   response.Err
// @Router       /events/{eventID}/calendar.ics [get]
func (h *EventHandler) HandleExportCalendar(ctx *gin.Context) {
	eventID, respErr := parseIDParam(ctx, "eventID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	body, err := h.svc.ExportCalendar(ctx.Request.Context(), eventID)
	if err != nil {
		if errors.Is(err, service.ErrEventNotFound) || errors.Is(err, service.ErrEventNoSchedule) {
			response.RenderErr(ctx, eventNotFound(eventID, err))
			return
		}

		err = fmt.Errorf("v1.HandleExportCalendar -> h.svc.ExportCalendar -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="event-%d.ics"`, eventID))
	ctx.Data(http.StatusOK, "text/calendar; charset=utf-8", []byte(body))
}

// HandleGetScheduleOptions godoc
// @Summary      Year and time choices for schedule pickers
// @Tags         events
// @Produce      json
// @Param        min_year    query     int   false  "first year (default this year)"
// @Param        max_year    query     int   false  "end year, exclusive (default this year + 2)"
// @Param        reverse     query     bool  false  "newest year first"
// @Param        increment   query     int   false  "minutes between time slots (default 15)"
// @Param        hour        query     int   false  "hour to round from"
// @Param        minutes     query     int   false  "minutes to round from"
// @Param        round_to    query     int   false  "round up to a multiple of this many minutes (default 15)"
// @Success      200  {object}   response.ScheduleOptionsResponse
// @Failure      400  {object}   response.Err
// @Router       /schedule/options [get]
func (h *EventHandler) HandleGetScheduleOptions(ctx *gin.Context) {
	now := time.Now()
	req := request.ScheduleOptionsRequest{
		MinYear:   now.Year(),
		MaxYear:   now.Year() + 2,
		Increment: 15,
		Hour:      now.Hour(),
		Minutes:   now.Minute(),
		RoundTo:   15,
	}
	if err := ctx.ShouldBindQuery(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	ctx.JSON(http.StatusOK, response.ScheduleOptionsResponse{
		Years:   datetime.Years(req.MinYear, req.MaxYear, req.Reverse),
		Times:   datetime.Times(req.Increment),
		Closest: datetime.ClosestTimeByN(req.Hour, req.Minutes, req.RoundTo),
	})
}
