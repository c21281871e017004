package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/campusgg/events-api/internal/api/handler/v1/request"
	"github.com/campusgg/events-api/internal/api/handler/v1/response"
	"github.com/campusgg/events-api/internal/domain"
	"github.com/campusgg/events-api/internal/service"
)

type RSVPService interface {
	Respond(ctx context.Context, identity domain.Identity, eventID uint, response domain.Response) (service.SubmitResult, error)
}

type CountsPublisher interface {
	Publish(eventID uint, counts domain.ResponseCounts)
}

type RSVPHandler struct {
	svc    RSVPService
	events EventService
	counts CountsPublisher
}

func NewRSVPHandler(svc RSVPService, events EventService, counts CountsPublisher) *RSVPHandler {
	return &RSVPHandler{
		svc:    svc,
		events: events,
		counts: counts,
	}
}

// HandleRespond godoc
// @Summary      RSVP to an event
// @Description  Creates the viewer's response or changes it. The body carries the notification to show and the re-read event page.
// @Tags         events
// @Accept       json
// @Produce      json
// @Param        eventID   path      int                  true  "event ID"
// @Param        request   body      request.RSVPRequest  true  "request body"
// @Success      200  {object}   response.RSVPResponse  "response updated"
// @Success      201  {object}   response.RSVPResponse  "response created"
// @Failure      400  {object}   response.Err
// @Failure      401  {object}   response.Err
// @Failure      403  {object}   response.Err
// @Failure      404  {object}   response.Err
// @Failure      409  {object}   response.Err
// @Failure      500  {object}   response.RSVPResponse
// @Router       /events/{eventID}/rsvp [post]
// @Security BearerAuth
func (h *RSVPHandler) HandleRespond(ctx *gin.Context) {
	identity, respErr := getIdentityFromContext(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	eventID, respErr := parseIDParam(ctx, "eventID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	var req request.RSVPRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	result, err := h.svc.Respond(ctx.Request.Context(), identity, eventID, domain.Response(req.Response))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrSubmissionFailed):
			h.renderFailedSubmission(ctx, eventID, result.Notification, err)
		case errors.Is(err, service.ErrEventNotFound):
			response.RenderErr(ctx, eventNotFound(eventID, err))
		case errors.Is(err, service.ErrSubmissionInProgress):
			response.RenderErr(ctx, response.ErrConflict(err))
		case errors.Is(err, service.ErrCannotChangeResponse):
			response.RenderErr(ctx, response.ErrPermissionDenied(err))
		case errors.Is(err, service.ErrResponseUnchanged), errors.Is(err, domain.ErrInvalidResponse):
			response.RenderErr(ctx, response.ErrBadRequest(err))
		default:
			h.renderFailedSubmission(ctx, eventID, result.Notification, err)
		}
		return
	}

	resp := response.RSVPResponse{
		Outcome:      string(result.Outcome),
		Notification: result.Notification,
		Record:       &result.Record,
	}

	page, err := h.events.RefreshEventPage(ctx.Request.Context(), eventID, &identity)
	if err != nil {
		zap.L().Warn("event page re-read failed after rsvp",
			zap.Uint("event_id", eventID),
			zap.Error(fmt.Errorf("h.events.RefreshEventPage -> %w", err)),
		)
	} else {
		pageResp := response.NewEventPageResponse(page)
		resp.Page = &pageResp
		h.counts.Publish(eventID, page.Event.Responses)
	}

	status := http.StatusOK
	if result.Outcome == service.OutcomeCreated {
		status = http.StatusCreated
	}

	ctx.JSON(status, resp)
}

// renderFailedSubmission answers 500 with the notification the viewer sees.
func (h *RSVPHandler) renderFailedSubmission(ctx *gin.Context, eventID uint, notification domain.Notification, err error) {
	zap.L().Error("v1.HandleRespond -> h.svc.Respond", zap.Uint("event_id", eventID), zap.Error(err))

	if notification.Status == "" {
		notification = domain.ErrorNotification(http.StatusText(http.StatusInternalServerError))
	}
	ctx.AbortWithStatusJSON(http.StatusInternalServerError, response.RSVPResponse{
		Notification: notification,
	})
}
