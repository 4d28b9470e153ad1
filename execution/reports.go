package execution

import (
	"github.com/JoeTonDev/nautilus-trader/events"
	"github.com/JoeTonDev/nautilus-trader/ids"
	"github.com/google/uuid"
)

// OrderStatusReport is an adapter's point-in-time view of one order as held
// by the venue, used during reconciliation.
type OrderStatusReport struct {
	AccountID     ids.AccountId
	InstrumentID  ids.InstrumentId
	ClientOrderID ids.ClientOrderId
	VenueOrderID  ids.VenueOrderId
	OrderStatus   string
	Quantity      float64
	FilledQty     float64
	EventID       uuid.UUID
	TsInit        uint64
}

// TradeReport is an adapter's record of a single fill, used during
// reconciliation.
type TradeReport struct {
	AccountID     ids.AccountId
	InstrumentID  ids.InstrumentId
	ClientOrderID ids.ClientOrderId
	VenueOrderID  ids.VenueOrderId
	TradeID       ids.TradeId
	Side          events.OrderSide
	LastQty       float64
	LastPx        float64
	EventID       uuid.UUID
	TsInit        uint64
}

// ExecutionMassStatus bundles every open order/position report an adapter
// has for an account at reconnect time.
type ExecutionMassStatus struct {
	AccountID    ids.AccountId
	OrderReports []OrderStatusReport
	TradeReports []TradeReport
	EventID      uuid.UUID
	TsInit       uint64
}
