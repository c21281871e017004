package v1

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/campusgg/events-api/internal/api/handler/v1/response"
	"github.com/campusgg/events-api/internal/api/middleware"
	"github.com/campusgg/events-api/internal/domain"
)

var errNoIdentity = errors.New("no identity on the request")

func getIdentityFromContext(ctx *gin.Context) (domain.Identity, *response.Err) {
	identity := middleware.IdentityFrom(ctx)
	if identity == nil {
		return domain.Identity{}, response.ErrUnauthorized(errNoIdentity)
	}

	return *identity, nil
}

func parseIDParam(ctx *gin.Context, name string) (uint, *response.Err) {
	id, err := strconv.ParseUint(ctx.Param(name), 10, 32)
	if err != nil || id == 0 {
		return 0, response.ErrBadRequest(errors.New("invalid " + name))
	}

	return uint(id), nil
}

func parseLimit(ctx *gin.Context) int {
	limit, err := strconv.Atoi(ctx.Query("limit"))
	if err != nil {
		return 0
	}
	return limit
}
