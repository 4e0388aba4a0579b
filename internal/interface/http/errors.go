package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-ddd-usergroup/internal/domain/entity"
	repo "github.com/oksasatya/go-ddd-usergroup/internal/domain/repository"
	"github.com/oksasatya/go-ddd-usergroup/pkg/response"
	"github.com/oksasatya/go-ddd-usergroup/pkg/validation"
)

// statusFor maps the domain error taxonomy onto HTTP.
func statusFor(err error) int {
	switch {
	case errors.Is(err, entity.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, repo.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, repo.ErrAlreadyExists):
		return http.StatusConflict
	case errors.Is(err, repo.ErrLock):
		// the only transient outcome; clients may retry
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func writeError(c *gin.Context, logger *logrus.Logger, err error) {
	status := statusFor(err)
	switch status {
	case http.StatusBadRequest:
		response.Error[any](c, status, "validation failed", validation.ToDetails(err))
	case http.StatusServiceUnavailable:
		c.Header("Retry-After", "1")
		response.Error[any](c, status, "storage temporarily unavailable", nil)
	case http.StatusInternalServerError:
		if logger != nil {
			logger.WithError(err).WithField("request_id", c.GetString("request_id")).Error("unhandled error")
		}
		response.Error[any](c, status, "internal error", nil)
	default:
		response.Error[any](c, status, http.StatusText(status), err.Error())
	}
}

func bindError(c *gin.Context, err error) {
	response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
}
