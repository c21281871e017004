package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campusgg/events-api/internal/api/handler/v1/response"
	"github.com/campusgg/events-api/internal/domain"
	"github.com/campusgg/events-api/internal/service"
)

type UserService interface {
	GetUser(ctx context.Context, id uint) (domain.User, error)
	SchoolUsers(ctx context.Context, schoolID uint, limit int) []domain.User
	RecentUsers(ctx context.Context, limit int) []domain.User
}

type UserHandler struct {
	svc UserService
}

func NewUserHandler(svc UserService) *UserHandler {
	return &UserHandler{
		svc: svc,
	}
}

// HandleGetUser godoc
// @Summary      Get a user
// @Description  The account owner also sees their email.
// @Tags         users
// @Produce      json
// @Param        userID   path      int  true  "user ID"
// @Success      200  {object}   domain.User
// @Failure      400  {object}   response.Err
// @Failure      401  {object}   response.Err
// @Failure      404  {object}   response.Err
// @Failure      500  {object}   response.Err
// @Router       /users/{userID} [get]
// @Security BearerAuth
func (h *UserHandler) HandleGetUser(ctx *gin.Context) {
	identity, respErr := getIdentityFromContext(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	userID, respErr := parseIDParam(ctx, "userID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	user, err := h.svc.GetUser(ctx.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("user", "ID", userID))
			return
		}

		err = fmt.Errorf("v1.HandleGetUser -> h.svc.GetUser -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	if user.ID != identity.UserID {
		user = user.Public()
	}

	ctx.JSON(http.StatusOK, user)
}

// HandleGetSchoolUsers godoc
// @Summary      List members of a school
// @Description  Returns an empty list if the users cannot be loaded.
// @Tags         users
// @Produce      json
// @Param        schoolID   path      int  true   "school ID"
// @Param        limit      query     int  false  "max users (default 10)"
// @Success      200  {object}   response.UsersResponse
// @Failure      400  {object}   response.Err
// @Router       /schools/{schoolID}/users [get]
func (h *UserHandler) HandleGetSchoolUsers(ctx *gin.Context) {
	schoolID, respErr := parseIDParam(ctx, "schoolID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	users := h.svc.SchoolUsers(ctx.Request.Context(), schoolID, parseLimit(ctx))

	ctx.JSON(http.StatusOK, response.NewUsersResponse(users, ""))
}

// HandleGetRecentUsers godoc
// @Summary      List the newest users
// @Description  Returns an empty list if the users cannot be loaded.
// @Tags         users
// @Produce      json
// @Param        limit      query     int  false  "max users (default 10)"
// @Success      200  {object}   response.UsersResponse
// @Router       /users/recent [get]
func (h *UserHandler) HandleGetRecentUsers(ctx *gin.Context) {
	users := h.svc.RecentUsers(ctx.Request.Context(), parseLimit(ctx))

	ctx.JSON(http.StatusOK, response.NewUsersResponse(users, ""))
}
