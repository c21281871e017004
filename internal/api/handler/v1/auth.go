package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/campusgg/events-api/internal/api/handler/v1/request"
	"github.com/campusgg/events-api/internal/api/handler/v1/response"
	"github.com/campusgg/events-api/internal/config"
	"github.com/campusgg/events-api/internal/domain"
	"github.com/campusgg/events-api/internal/pkg/datetime"
	"github.com/campusgg/events-api/internal/pkg/jwthelper"
	"github.com/campusgg/events-api/internal/service"
)

type AuthService interface {
	Signup(ctx context.Context, user domain.User) (domain.User, error)
	Login(ctx context.Context, email, password string) (domain.User, error)
}

type AuthHandler struct {
	conf *config.APIConfig
	svc  AuthService
}

func NewAuthHandler(conf *config.APIConfig, svc AuthService) *AuthHandler {
	return &AuthHandler{
		conf: conf,
		svc:  svc,
	}
}

// HandleSignup godoc
// @Summary      Signup a new user
// @Tags         auth
// @Produce      json
// @Param        request   body      request.SignupRequest true "request body"
// @Success      201      {object}   domain.User
// @Failure      400      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /auth/signup [post]
func (h *AuthHandler) HandleSignup(ctx *gin.Context) {
	var req request.SignupRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	user, err := h.svc.Signup(ctx.Request.Context(), domain.User{
		Email:     req.Email,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Status:    req.Status,
		SchoolID:  req.SchoolID,
	})
	if err != nil {
		if errors.Is(err, service.ErrUserEmailExists) {
			response.RenderErr(ctx, response.ErrBadRequest(service.ErrUserEmailExists))
			return
		}

		err = fmt.Errorf("v1.HandleSignup -> h.svc.Signup -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusCreated, user)
}

// HandleLogin godoc
// @Summary      Login a user
// @Description  Returns a token and sets it as the auth cookie. Clients should call /auth/refresh every refresh_interval_seconds.
// @Tags         auth
// @Produce      json
// @Param        request   body      request.LoginRequest true "request body"
// @Success      200      {object}   response.LoginResponse
// @Failure      401      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /auth/login [post]
func (h *AuthHandler) HandleLogin(ctx *gin.Context) {
	req := request.LoginRequest{}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	user, err := h.svc.Login(ctx.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) || errors.Is(err, service.ErrWrongPassword) {
			response.RenderErr(ctx, response.ErrWrongCredentials(err))

			return
		}

		err = fmt.Errorf("v1.HandleLogin -> h.svc.Login -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	token, expiresAt, err := h.issueToken(ctx, user.ID)
	if err != nil {
		err = fmt.Errorf("v1.HandleLogin -> h.issueToken -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, response.LoginResponse{
		Token:                  token,
		User:                   user,
		ExpiresAt:              datetime.FromUnixSeconds(expiresAt.Unix()),
		RefreshIntervalSeconds: response.RefreshSeconds(h.conf.TokenRefreshInterval),
	})
}

// HandleRefresh godoc
// @Summary      Refresh the auth token
// @Tags         auth
// @Produce      json
// @Success      200      {object}   response.RefreshResponse
// @Failure      401      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /auth/refresh [post]
// @Security BearerAuth
func (h *AuthHandler) HandleRefresh(ctx *gin.Context) {
	identity, respErr := getIdentityFromContext(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	token, expiresAt, err := h.issueToken(ctx, identity.UserID)
	if err != nil {
		err = fmt.Errorf("v1.HandleRefresh -> h.issueToken -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.RefreshResponse{
		Token:                  token,
		ExpiresAt:              datetime.FromUnixSeconds(expiresAt.Unix()),
		RefreshIntervalSeconds: response.RefreshSeconds(h.conf.TokenRefreshInterval),
	})
}

// HandleLogout godoc
// @Summary      Logout
// @Description  Clears the auth cookie.
// @Tags         auth
// @Success      204
// @Router       /auth/logout [post]
func (h *AuthHandler) HandleLogout(ctx *gin.Context) {
	h.setCookie(ctx, "", -1)
	ctx.Status(http.StatusNoContent)
}

// issueToken signs a token for userID and sets it as the auth cookie.
func (h *AuthHandler) issueToken(ctx *gin.Context, userID uint) (string, time.Time, error) {
	expiresAt := time.Now().Add(h.conf.JWTTTL)

	token, err := jwthelper.GenerateToken([]byte(h.conf.JWTSigningKey), userID, ctx.Request.UserAgent(), h.conf.JWTTTL)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("jwthelper.GenerateToken -> %w", err)
	}

	h.setCookie(ctx, token, int(h.conf.JWTTTL/time.Second))

	return token, expiresAt, nil
}

func (h *AuthHandler) setCookie(ctx *gin.Context, value string, maxAge int) {
	ctx.SetSameSite(http.SameSiteLaxMode)
	ctx.SetCookie(h.conf.AuthCookieName, value, maxAge, "/", "", h.conf.Environment == config.EnvProduction, true)
}
