// Package events defines the order lifecycle event family an
// ExecutionClient synthesizes onto the bus, plus AccountState. Every
// variant shares a common header and is expressed as one flat, tagged
// struct (Kind selects which of the variant-only fields are populated)
// rather than a family of interfaces, mirroring the teacher's
// lifecycle.Event (lifecycle/interfaces.go): one struct, a Type/Phase/Status
// tag, and optional fields used only by some event kinds.
package events

import (
	"errors"

	"github.com/JoeTonDev/nautilus-trader/ids"
	"github.com/google/uuid"
)

// Order lifecycle event errors.
var ErrMissingVenueOrderID = errors.New("event kind requires a non-nil venue_order_id")

// OrderEventKind tags which variant an OrderEvent carries.
type OrderEventKind string

const (
	OrderSubmitted      OrderEventKind = "ORDER_SUBMITTED"
	OrderAccepted       OrderEventKind = "ORDER_ACCEPTED"
	OrderRejected       OrderEventKind = "ORDER_REJECTED"
	OrderPendingUpdate  OrderEventKind = "ORDER_PENDING_UPDATE"
	OrderPendingCancel  OrderEventKind = "ORDER_PENDING_CANCEL"
	OrderModifyRejected OrderEventKind = "ORDER_MODIFY_REJECTED"
	OrderCancelRejected OrderEventKind = "ORDER_CANCEL_REJECTED"
	OrderUpdated        OrderEventKind = "ORDER_UPDATED"
	OrderCanceled       OrderEventKind = "ORDER_CANCELED"
	OrderTriggered      OrderEventKind = "ORDER_TRIGGERED"
	OrderExpired        OrderEventKind = "ORDER_EXPIRED"
	OrderFilled         OrderEventKind = "ORDER_FILLED"
)

// Header is the common envelope every order lifecycle event carries.
type Header struct {
	TraderID      ids.TraderId
	StrategyID    ids.StrategyId
	AccountID     ids.AccountId
	InstrumentID  ids.InstrumentId
	ClientOrderID ids.ClientOrderId
	EventID       uuid.UUID
	TsEvent       uint64
	TsInit        uint64
}

// OrderEvent is a single tagged order lifecycle event. Fields outside
// Header are populated only for the Kinds that document them.
type OrderEvent struct {
	Header
	Kind OrderEventKind

	// VenueOrderID is required for every Kind except Submitted and Rejected
	// (see invariant in §3).
	VenueOrderID *ids.VenueOrderId

	// Reason is populated for Rejected, ModifyRejected, CancelRejected.
	Reason string

	// Quantity, Price, TriggerPrice are populated for Updated.
	Quantity     float64
	Price        float64
	TriggerPrice float64

	// The remaining fields are populated only for Filled.
	TradeID       ids.TradeId
	PositionID    *ids.PositionId
	Side          OrderSide
	OrderType     OrderType
	LastQty       float64
	LastPx        float64
	QuoteCurrency string
	Commission    float64
	LiquiditySide LiquiditySide
}

// requiresVenueOrderID reports whether kind is one of the variants that must
// carry a non-nil VenueOrderID, per §3's "every event except
// Submitted/Rejected carries a non-null venue_order_id".
func requiresVenueOrderID(kind OrderEventKind) bool {
	return kind != OrderSubmitted && kind != OrderRejected
}

// Validate enforces the venue_order_id invariant for e.Kind.
func (e OrderEvent) Validate() error {
	if requiresVenueOrderID(e.Kind) && e.VenueOrderID == nil {
		return ErrMissingVenueOrderID
	}
	return nil
}

// newHeader stamps a fresh EventID and the given ts_event/ts_init.
func newHeader(h Header, tsEvent, tsInit uint64) Header {
	h.EventID = uuid.New()
	h.TsEvent = tsEvent
	h.TsInit = tsInit
	return h
}

// NewSubmitted builds an ORDER_SUBMITTED event.
func NewSubmitted(h Header, tsEvent, tsInit uint64) OrderEvent {
	return OrderEvent{Header: newHeader(h, tsEvent, tsInit), Kind: OrderSubmitted}
}

// NewAccepted builds an ORDER_ACCEPTED event.
func NewAccepted(h Header, venueOrderID ids.VenueOrderId, tsEvent, tsInit uint64) OrderEvent {
	return OrderEvent{Header: newHeader(h, tsEvent, tsInit), Kind: OrderAccepted, VenueOrderID: &venueOrderID}
}

// NewRejected builds an ORDER_REJECTED event.
func NewRejected(h Header, reason string, tsEvent, tsInit uint64) OrderEvent {
	return OrderEvent{Header: newHeader(h, tsEvent, tsInit), Kind: OrderRejected, Reason: reason}
}

// NewPendingUpdate builds an ORDER_PENDING_UPDATE event.
func NewPendingUpdate(h Header, venueOrderID ids.VenueOrderId, tsEvent, tsInit uint64) OrderEvent {
	return OrderEvent{Header: newHeader(h, tsEvent, tsInit), Kind: OrderPendingUpdate, VenueOrderID: &venueOrderID}
}

// NewPendingCancel builds an ORDER_PENDING_CANCEL event.
func NewPendingCancel(h Header, venueOrderID ids.VenueOrderId, tsEvent, tsInit uint64) OrderEvent {
	return OrderEvent{Header: newHeader(h, tsEvent, tsInit), Kind: OrderPendingCancel, VenueOrderID: &venueOrderID}
}

// NewModifyRejected builds an ORDER_MODIFY_REJECTED event.
func NewModifyRejected(h Header, venueOrderID ids.VenueOrderId, reason string, tsEvent, tsInit uint64) OrderEvent {
	return OrderEvent{Header: newHeader(h, tsEvent, tsInit), Kind: OrderModifyRejected, VenueOrderID: &venueOrderID, Reason: reason}
}

// NewCancelRejected builds an ORDER_CANCEL_REJECTED event.
func NewCancelRejected(h Header, venueOrderID ids.VenueOrderId, reason string, tsEvent, tsInit uint64) OrderEvent {
	return OrderEvent{Header: newHeader(h, tsEvent, tsInit), Kind: OrderCancelRejected, VenueOrderID: &venueOrderID, Reason: reason}
}

// NewUpdated builds an ORDER_UPDATED event.
func NewUpdated(h Header, venueOrderID ids.VenueOrderId, qty, price, triggerPrice float64, tsEvent, tsInit uint64) OrderEvent {
	return OrderEvent{
		Header: newHeader(h, tsEvent, tsInit), Kind: OrderUpdated, VenueOrderID: &venueOrderID,
		Quantity: qty, Price: price, TriggerPrice: triggerPrice,
	}
}

// NewCanceled builds an ORDER_CANCELED event.
func NewCanceled(h Header, venueOrderID ids.VenueOrderId, tsEvent, tsInit uint64) OrderEvent {
	return OrderEvent{Header: newHeader(h, tsEvent, tsInit), Kind: OrderCanceled, VenueOrderID: &venueOrderID}
}

// NewTriggered builds an ORDER_TRIGGERED event.
func NewTriggered(h Header, venueOrderID ids.VenueOrderId, tsEvent, tsInit uint64) OrderEvent {
	return OrderEvent{Header: newHeader(h, tsEvent, tsInit), Kind: OrderTriggered, VenueOrderID: &venueOrderID}
}

// NewExpired builds an ORDER_EXPIRED event.
func NewExpired(h Header, venueOrderID ids.VenueOrderId, tsEvent, tsInit uint64) OrderEvent {
	return OrderEvent{Header: newHeader(h, tsEvent, tsInit), Kind: OrderExpired, VenueOrderID: &venueOrderID}
}

// FilledParams carries the fields unique to an ORDER_FILLED event.
type FilledParams struct {
	VenueOrderID  ids.VenueOrderId
	TradeID       ids.TradeId
	PositionID    *ids.PositionId
	Side          OrderSide
	OrderType     OrderType
	LastQty       float64
	LastPx        float64
	QuoteCurrency string
	Commission    float64
	LiquiditySide LiquiditySide
}

// NewFilled builds an ORDER_FILLED event.
func NewFilled(h Header, p FilledParams, tsEvent, tsInit uint64) OrderEvent {
	return OrderEvent{
		Header:        newHeader(h, tsEvent, tsInit),
		Kind:          OrderFilled,
		VenueOrderID:  &p.VenueOrderID,
		TradeID:       p.TradeID,
		PositionID:    p.PositionID,
		Side:          p.Side,
		OrderType:     p.OrderType,
		LastQty:       p.LastQty,
		LastPx:        p.LastPx,
		QuoteCurrency: p.QuoteCurrency,
		Commission:    p.Commission,
		LiquiditySide: p.LiquiditySide,
	}
}
