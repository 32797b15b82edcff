package middlewares

import (
	"errors"
	"net/http"

	"github.com/fsdevblog/jalsa-khata/internal/domain"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

type ErrorResponse struct {
	Error     string                 `json:"error"`
	Shortages []domain.StockShortage `json:"shortages,omitempty"`
	Retryable bool                   `json:"retryable,omitempty"`
}

func statusErrorText(status int) string {
	switch status {
	case http.StatusBadRequest:
		return "bad request"
	case http.StatusUnauthorized:
		return "unauthorized"
	case http.StatusNotFound:
		return "not found"
	case http.StatusConflict:
		return "conflict"
	case http.StatusServiceUnavailable:
		return "service unavailable"
	default:
		return "internal server error"
	}
}

// Errors превращает первую ошибку из c.Errors в json ответ, если обработчик еще ничего не записал.
func Errors() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		status, resp := describeError(c.Errors[0])
		c.AbortWithStatusJSON(status, resp)
	}
}

func describeError(ginErr *gin.Error) (int, ErrorResponse) {
	err := ginErr.Err

	var valErrs validator.ValidationErrors
	if errors.As(err, &valErrs) {
		return http.StatusUnprocessableEntity, ErrorResponse{Error: valErrs.Error()}
	}
	if ginErr.IsType(gin.ErrorTypeBind) {
		return http.StatusBadRequest, ErrorResponse{Error: err.Error()}
	}

	var stockErr *domain.InsufficientStockError
	switch {
	case errors.As(err, &stockErr):
		return http.StatusConflict, ErrorResponse{Error: stockErr.Error(), Shortages: stockErr.Shortages}
	case errors.Is(err, domain.ErrRecordNotFound):
		return http.StatusNotFound, ErrorResponse{Error: err.Error()}
	case errors.Is(err, domain.ErrInvalidArgument):
		return http.StatusUnprocessableEntity, ErrorResponse{Error: err.Error()}
	case errors.Is(err, domain.ErrConflictingUpdate):
		return http.StatusConflict, ErrorResponse{Error: statusErrorText(http.StatusConflict), Retryable: true}
	case errors.Is(err, domain.ErrDuplicateKey):
		return http.StatusConflict, ErrorResponse{Error: "already exists"}
	case errors.Is(err, domain.ErrPasswordMissMatch):
		return http.StatusUnauthorized, ErrorResponse{Error: "invalid credentials"}
	case errors.Is(err, domain.ErrUnavailable):
		return http.StatusServiceUnavailable, ErrorResponse{Error: statusErrorText(http.StatusServiceUnavailable)}
	default:
		return http.StatusInternalServerError, ErrorResponse{Error: statusErrorText(http.StatusInternalServerError)}
	}
}
