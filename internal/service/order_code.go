package service

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"time"
)

// orderCodeAlphabet без символов, которые легко спутать при диктовке: 0/O, 1/I/L.
const orderCodeAlphabet = "23456789ABCDEFGHJKMNPQRSTUVWXYZ"

const orderCodeSuffixLen = 5

// OrderCodeGenerator возвращает человекочитаемый номер заказа вида ORD-240131-7KQ2M.
type OrderCodeGenerator func(now time.Time) (string, error)

func generateOrderCode(now time.Time) (string, error) {
	suffix := make([]byte, orderCodeSuffixLen)
	limit := big.NewInt(int64(len(orderCodeAlphabet)))
	for i := range suffix {
		n, err := rand.Int(rand.Reader, limit)
		if err != nil {
			return "", fmt.Errorf("generating order code: %w", err)
		}
		suffix[i] = orderCodeAlphabet[n.Int64()]
	}
	return "ORD-" + now.Format("060102") + "-" + string(suffix), nil
}
