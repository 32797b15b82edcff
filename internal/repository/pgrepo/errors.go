package pgrepo

import (
	"context"
	"errors"
	"fmt"
	"net"

	"github.com/fsdevblog/jalsa-khata/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	uniqueViolationCode      = "23505"
	checkViolationCode       = "23514"
	serializationFailureCode = "40001"
	deadlockDetectedCode     = "40P01"
	lockNotAvailableCode     = "55P03"
)

// convertErr преобразует ошибку к стандартному виду для слоя репозитория.
// Добавляет форматированное сообщение контекста, тип бизнес-ошибки и оригинальное сообщение.
// Особенности:
//   - pgx.ErrNoRows превращается в domain.ErrRecordNotFound.
//   - Нарушение уникальности - domain.ErrDuplicateKey, нарушение CHECK - domain.ErrInvalidArgument.
//   - Сбой сериализации, дедлок и недоступная блокировка - domain.ErrConflictingUpdate.
//   - Сетевые ошибки и таймауты - domain.ErrUnavailable.
//   - Все остальные ошибки возвращаются как ErrUnknown с оригинальным сообщением.
func convertErr(err error, format string, formatArgs ...any) error {
	if err == nil {
		return nil
	}

	msg := fmt.Sprintf(format, formatArgs...)

	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("[repository/%s] %w", msg, domain.ErrRecordNotFound)
	}

	return fmt.Errorf("[repository/%s] %w: %s", msg, classifyErr(err), err.Error())
}

func classifyErr(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case uniqueViolationCode:
			return domain.ErrDuplicateKey
		case checkViolationCode:
			return domain.ErrInvalidArgument
		case serializationFailureCode, deadlockDetectedCode, lockNotAvailableCode:
			return domain.ErrConflictingUpdate
		}
		return domain.ErrUnknown
	}

	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || errors.As(err, &netErr) || pgconn.Timeout(err) {
		return domain.ErrUnavailable
	}
	var connectErr *pgconn.ConnectError
	if errors.As(err, &connectErr) {
		return domain.ErrUnavailable
	}
	return domain.ErrUnknown
}
