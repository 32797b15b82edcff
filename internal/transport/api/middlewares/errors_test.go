package middlewares

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/fsdevblog/jalsa-khata/internal/domain"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
)

func TestDescribeError(t *testing.T) {
	type payload struct {
		Name string `validate:"required"`
	}
	valErr := validator.New().Struct(payload{})

	tests := []struct {
		name       string
		err        *gin.Error
		wantStatus int
		wantRetry  bool
	}{
		{"validation", &gin.Error{Err: valErr, Type: gin.ErrorTypeBind}, http.StatusUnprocessableEntity, false},
		{"bind", &gin.Error{Err: errors.New("unexpected EOF"), Type: gin.ErrorTypeBind}, http.StatusBadRequest, false},
		{"not found", &gin.Error{Err: fmt.Errorf("dealer 7: %w", domain.ErrRecordNotFound)}, http.StatusNotFound, false},
		{"invalid argument", &gin.Error{Err: domain.InvalidArgumentf("amount")}, http.StatusUnprocessableEntity, false},
		{"conflicting update", &gin.Error{Err: domain.ErrConflictingUpdate}, http.StatusConflict, true},
		{"duplicate", &gin.Error{Err: domain.ErrDuplicateKey}, http.StatusConflict, false},
		{"credentials", &gin.Error{Err: domain.ErrPasswordMissMatch}, http.StatusUnauthorized, false},
		{"unavailable", &gin.Error{Err: domain.ErrUnavailable}, http.StatusServiceUnavailable, false},
		{"unknown", &gin.Error{Err: errors.New("boom")}, http.StatusInternalServerError, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, resp := describeError(tt.err)
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantRetry, resp.Retryable)
			assert.NotEmpty(t, resp.Error)
		})
	}
}

func TestDescribeError_Shortages(t *testing.T) {
	err := fmt.Errorf("placing order: %w", domain.NewInsufficientStockError(
		domain.StockShortage{ProductID: 1, Size: "1L", Requested: 40, Available: 28},
	))

	status, resp := describeError(&gin.Error{Err: err})

	assert.Equal(t, http.StatusConflict, status)
	assert.Len(t, resp.Shortages, 1)
	assert.Equal(t, "insufficient stock for 1L", resp.Error)
}

func TestDescribeError_HidesInternalDetails(t *testing.T) {
	_, resp := describeError(&gin.Error{Err: errors.New("pq: password authentication failed")})
	assert.Equal(t, "internal server error", resp.Error)
}
