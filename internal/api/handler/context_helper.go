package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/boxstory/yk/internal/service"
	apperr "github.com/boxstory/yk/pkg/errors"
	"github.com/boxstory/yk/pkg/response"
)

// MustGetUserID reads the user id the JWT middleware stored. On failure it
// writes a 401 and returns false; the caller should return immediately.
func MustGetUserID(c *gin.Context) (string, bool) {
	return mustGetString(c, "user_id")
}

func mustGetString(c *gin.Context, key string) (string, bool) {
	s := c.GetString(key)
	if s == "" {
		response.Unauthorized(c, response.CodeUnauthorized, "not authenticated")
		return "", false
	}
	return s, true
}

// tokenMeta returns the access token's id and expiry for logout.
func tokenMeta(c *gin.Context) (string, time.Time) {
	return c.GetString("jti"), c.GetTime("token_exp")
}

// bindFailed answers a failed ShouldBind*: 413 when the body limit tripped,
// otherwise 400 with per-field details.
func bindFailed(c *gin.Context, err error) {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		response.Error(c, http.StatusRequestEntityTooLarge, response.CodeBodyTooLarge, "request body too large")
		return
	}
	response.ValidationFailed(c, service.ToValidationError(err).Details())
}

// respondError maps the service error taxonomy onto HTTP.
func respondError(c *gin.Context, err error) {
	var verr *apperr.ValidationError
	switch {
	case errors.As(err, &verr):
		response.ValidationFailed(c, verr.Details())
	case errors.Is(err, apperr.ErrForbidden):
		response.Forbidden(c, response.CodeForbidden, "not authorized for this resource")
	case errors.Is(err, apperr.ErrNotFound):
		response.NotFound(c, response.CodeNotFound, err.Error())
	default:
		_ = c.Error(err)
		response.InternalError(c)
	}
}
