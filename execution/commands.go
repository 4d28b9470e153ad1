// Package execution implements the ExecutionClient contract: a Component
// specialization that accepts a typed command surface and synthesizes order
// lifecycle events onto the bus. The command surface itself is abstract —
// concrete venue adapters (out of scope per §1) implement the Adapter
// interface; ExecutionClient supplies only the event-generation half of the
// contract.
package execution

import "github.com/JoeTonDev/nautilus-trader/ids"

// SubmitOrderCommand requests a new order be placed.
type SubmitOrderCommand struct {
	ClientOrderID ids.ClientOrderId
	InstrumentID  ids.InstrumentId
	Side          string
	OrderType     string
	Quantity      float64
	Price         *float64
	TriggerPrice  *float64
}

// SubmitOrderListCommand requests a batch of orders be placed together
// (e.g. an OCO or bracket group).
type SubmitOrderListCommand struct {
	Orders []SubmitOrderCommand
}

// ModifyOrderCommand requests an in-place amendment of quantity/price/trigger.
type ModifyOrderCommand struct {
	ClientOrderID ids.ClientOrderId
	Quantity      *float64
	Price         *float64
	TriggerPrice  *float64
}

// CancelOrderCommand requests cancellation of a single order.
type CancelOrderCommand struct {
	ClientOrderID ids.ClientOrderId
	VenueOrderID  *ids.VenueOrderId
}

// CancelAllOrdersCommand requests cancellation of every open order for an
// instrument.
type CancelAllOrdersCommand struct {
	InstrumentID ids.InstrumentId
}

// QueryOrderCommand identifies a single order for a status query. The source
// left whether sync_order_status takes a query command ambiguous (§9 open
// question); this type is the implementer's resolution of that ambiguity.
type QueryOrderCommand struct {
	ClientOrderID ids.ClientOrderId
	VenueOrderID  *ids.VenueOrderId
}

// SyncOrderStatusCommand requests the adapter reconcile its view of one or
// more orders against the venue.
type SyncOrderStatusCommand struct {
	Query QueryOrderCommand
}

// Adapter is the command-handler surface a concrete venue integration
// implements. ExecutionClient does not implement it: adapters embed
// ExecutionClient for its identity, lifecycle and event-generation methods,
// and separately satisfy Adapter for the inbound command path.
type Adapter interface {
	SubmitOrder(cmd SubmitOrderCommand) error
	SubmitOrderList(cmd SubmitOrderListCommand) error
	ModifyOrder(cmd ModifyOrderCommand) error
	CancelOrder(cmd CancelOrderCommand) error
	CancelAllOrders(cmd CancelAllOrdersCommand) error
	SyncOrderStatus(cmd SyncOrderStatusCommand) error
}
