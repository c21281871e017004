package middleware

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/campusgg/events-api/internal/api/handler/v1/response"
	"github.com/campusgg/events-api/internal/domain"
	"github.com/campusgg/events-api/internal/pkg/jwthelper"
)

const identityKey = "identity"

var (
	errMissingToken      = errors.New("missing bearer token")
	errUserAgentMismatch = errors.New("token was issued to another user agent")
)

type Authenticator struct {
	jwtSigningKey []byte
	cookieName    string
}

func NewAuthenticator(jwtSigningKey, cookieName string) *Authenticator {
	return &Authenticator{
		jwtSigningKey: []byte(jwtSigningKey),
		cookieName:    cookieName,
	}
}

// VerifyJWT requires a valid bearer token and stores the identity on the
// context. Requests without one are rejected with 401.
func (a *Authenticator) VerifyJWT() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		header := ctx.GetHeader("Authorization")
		tokenString, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || tokenString == "" {
			response.RenderErr(ctx, response.ErrUnauthorized(errMissingToken))
			return
		}

		identity, err := a.identify(ctx, tokenString)
		if err != nil {
			response.RenderErr(ctx, response.ErrUnauthorized(err))
			return
		}

		SetIdentity(ctx, identity)
		ctx.Next()
	}
}

// IdentifyFromCookie reads the auth cookie when present. Anonymous requests
// pass through. A cookie that fails verification makes the whole request
// answer as if the event did not exist.
func (a *Authenticator) IdentifyFromCookie(param string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		tokenString, err := ctx.Cookie(a.cookieName)
		if err != nil || tokenString == "" {
			ctx.Next()
			return
		}

		identity, err := a.identify(ctx, tokenString)
		if err != nil {
			resp := response.ErrNotFound("event", "ID", ctx.Param(param))
			resp.Err = fmt.Errorf("a.identify -> %w", err)
			response.RenderErr(ctx, resp)
			return
		}

		SetIdentity(ctx, identity)
		ctx.Next()
	}
}

func (a *Authenticator) identify(ctx *gin.Context, tokenString string) (domain.Identity, error) {
	claims, err := jwthelper.ParseToken(a.jwtSigningKey, tokenString)
	if err != nil {
		return domain.Identity{}, err
	}

	if claims.UserAgent != ctx.Request.UserAgent() {
		return domain.Identity{}, errUserAgentMismatch
	}

	userID, err := claims.UserID()
	if err != nil {
		return domain.Identity{}, err
	}

	return domain.Identity{UserID: userID}, nil
}

func SetIdentity(ctx *gin.Context, identity domain.Identity) {
	ctx.Set(identityKey, identity)
}

// IdentityFrom returns nil for anonymous requests.
func IdentityFrom(ctx *gin.Context) *domain.Identity {
	v, ok := ctx.Get(identityKey)
	if !ok {
		return nil
	}

	identity, ok := v.(domain.Identity)
	if !ok {
		return nil
	}

	return &identity
}
