package cart

import (
	"time"

	"github.com/aaravmahajanofficial/hypermart-pos/internal/models"
	"github.com/shopspring/decimal"
)

// Snapshot is the cart as it stood when checkout began.
type Snapshot struct {
	Items      []models.LineItem
	Total      decimal.Decimal
	Version    uint64
	CapturedAt time.Time
}

func (c *Cart) Snapshot() Snapshot {
	return Snapshot{
		Items:      c.Items(),
		Total:      c.Total(),
		Version:    c.version,
		CapturedAt: time.Now(),
	}
}
