package response

import (
	"fmt"
	"net/http"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Err is the JSON body of every error response.
type Err struct {
	Err            error  `json:"-"`
	HTTPStatusCode int    `json:"-"`
	StatusText     string `json:"status"`
	ErrorText      string `json:"error,omitempty"`
}

func (e *Err) Error() string {
	return e.ErrorText
}

func RenderErr(ctx *gin.Context, err *Err) {
	if err.HTTPStatusCode >= http.StatusInternalServerError {
		zap.L().Error(err.StatusText,
			zap.String("request_id", requestid.Get(ctx)),
			zap.String("path", ctx.FullPath()),
			zap.Error(err.Err),
		)
	}

	ctx.AbortWithStatusJSON(err.HTTPStatusCode, err)
}

func newErr(code int, err error, text string) *Err {
	return &Err{
		Err:            err,
		HTTPStatusCode: code,
		StatusText:     http.StatusText(code),
		ErrorText:      text,
	}
}

func ErrBadRequest(err error) *Err {
	return newErr(http.StatusBadRequest, err, err.Error())
}

func ErrUnauthorized(err error) *Err {
	return newErr(http.StatusUnauthorized, err, err.Error())
}

func ErrWrongCredentials(err error) *Err {
	return newErr(http.StatusUnauthorized, err, "wrong email or password")
}

func ErrPermissionDenied(err error) *Err {
	return newErr(http.StatusForbidden, err, err.Error())
}

func ErrNotFound(obj, key string, value any) *Err {
	err := fmt.Errorf("%s with %s %v not found", obj, key, value)
	return newErr(http.StatusNotFound, err, err.Error())
}

func ErrConflict(err error) *Err {
	return newErr(http.StatusConflict, err, err.Error())
}

// ErrInternalServerError hides err from the client. It is logged by RenderErr.
func ErrInternalServerError(err error) *Err {
	return newErr(http.StatusInternalServerError, err, "")
}
