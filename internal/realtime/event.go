// Package realtime рассылает доменные события подключенным клиентам. Доставка без гарантий:
// медленный подписчик теряет события, а не тормозит публикацию.
package realtime

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/fsdevblog/jalsa-khata/internal/domain"
)

type Event struct {
	Name    domain.EventName `json:"event"`
	Payload json.RawMessage  `json:"payload"`
	At      time.Time        `json:"at"`
}

func NewEvent(name domain.EventName, payload any) (Event, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return Event{}, fmt.Errorf("encoding %s payload: %w", name, err)
	}
	return Event{Name: name, Payload: raw, At: time.Now().UTC()}, nil
}

// Filter решает, получит ли подписчик событие.
type Filter func(name domain.EventName) bool

func AllEvents(domain.EventName) bool { return true }

// PublicEvents пропускает только остатки, остальные события содержат данные дилеров и заказов.
func PublicEvents(name domain.EventName) bool {
	return name == domain.EventStockUpdated
}
