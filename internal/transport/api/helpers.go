package api

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
)

// abortWithError передает ошибку сервиса в middlewares.Errors, статус выбирается там.
func abortWithError(c *gin.Context, err error) {
	_ = c.Error(err)
	c.Abort()
}

func abortWithBindError(c *gin.Context, err error) {
	_ = c.Error(err).SetType(gin.ErrorTypeBind)
	c.Abort()
}

// idParam читает положительный числовой id из пути.
func idParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		abortWithBindError(c, errors.Join(errInvalidID, err))
		return 0, false
	}
	return id, true
}

var errInvalidID = errors.New("invalid id in path")

// emptyIfNil чтобы пустой список уходил как [], а не null.
func emptyIfNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
