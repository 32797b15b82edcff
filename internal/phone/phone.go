// Package phone приводит телефонные номера к E.164. Нормализованный номер служит ключом
// поиска дилера и заказов покупателя.
package phone

import (
	"strings"

	"github.com/fsdevblog/jalsa-khata/internal/domain"
	"github.com/ttacon/libphonenumber"
)

const DefaultRegion = "IN"

type Normalizer struct {
	region string
}

func New(region string) *Normalizer {
	if region == "" {
		region = DefaultRegion
	}
	return &Normalizer{region: strings.ToUpper(region)}
}

// Normalize разбирает номер в региональном или международном формате и возвращает его в E.164.
// Номер, который не может существовать в своем регионе, отклоняется с domain.ErrInvalidArgument.
func (n *Normalizer) Normalize(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", domain.InvalidArgumentf("phone number is required")
	}
	num, err := libphonenumber.Parse(raw, n.region)
	if err != nil {
		return "", domain.InvalidArgumentf("phone number %q: %s", raw, err.Error())
	}
	if !libphonenumber.IsPossibleNumber(num) {
		return "", domain.InvalidArgumentf("phone number %q is not possible in region %s", raw, n.region)
	}
	return libphonenumber.Format(num, libphonenumber.E164), nil
}
