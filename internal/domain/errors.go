package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrRecordNotFound    = errors.New("record not found")
	ErrPasswordMissMatch = errors.New("password mismatch")
	ErrDuplicateKey      = errors.New("duplicate key")
	ErrUnknown           = errors.New("unknown error")
	ErrUnavailable       = errors.New("storage unavailable")

	ErrInvalidArgument   = errors.New("invalid argument")
	ErrConflictingUpdate = errors.New("conflicting update")
	// ErrNotEnoughStock возвращается репозиторием, когда условное списание остатка не прошло.
	ErrNotEnoughStock = errors.New("not enough stock")
)

// InvalidArgumentf оборачивает ErrInvalidArgument сообщением для клиента.
func InvalidArgumentf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidArgument, fmt.Sprintf(format, args...))
}

type StockShortage struct {
	ProductID int64  `json:"productId"`
	Size      string `json:"size"`
	Requested int64  `json:"requested"`
	Available int64  `json:"available"`
}

// InsufficientStockError перечисляет все позиции заказа, которых не хватает на складе.
type InsufficientStockError struct {
	Shortages []StockShortage
}

func NewInsufficientStockError(shortages ...StockShortage) error {
	return &InsufficientStockError{Shortages: shortages}
}

func (e *InsufficientStockError) Error() string {
	sizes := make([]string, len(e.Shortages))
	for i, s := range e.Shortages {
		sizes[i] = s.Size
	}
	return "insufficient stock for " + strings.Join(sizes, ", ")
}
