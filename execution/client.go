package execution

import (
	"errors"
	"sync"

	"github.com/JoeTonDev/nautilus-trader/bus"
	"github.com/JoeTonDev/nautilus-trader/clock"
	"github.com/JoeTonDev/nautilus-trader/component"
	"github.com/JoeTonDev/nautilus-trader/events"
	"github.com/JoeTonDev/nautilus-trader/ids"
)

// Fixed endpoint names an ExecutionClient routes to, per §6.
const (
	EndpointPortfolioUpdateAccount    = "Portfolio.update_account"
	EndpointExecEngineProcess         = "ExecEngine.process"
	EndpointExecEngineReconcileMass   = "ExecEngine.reconcile_mass_status"
	EndpointExecEngineReconcileReport = "ExecEngine.reconcile_report"
)

// ExecutionClient errors.
var (
	ErrOmsTypeRequired      = errors.New("execution client oms_type must not be NONE")
	ErrAccountIDAlreadySet  = errors.New("account id has already been assigned")
	ErrVenueOrderIDMismatch = errors.New("supplied venue_order_id does not match the cached mapping for this client_order_id")
)

// Identity is an ExecutionClient's fixed configuration, set once at
// construction.
type Identity struct {
	ClientID     ids.ClientId
	Venue        *string
	OmsType      events.OmsType
	AccountType  events.AccountType
	BaseCurrency *string
	TraderID     ids.TraderId
}

// ExecutionClient is a Component specialization that accepts orders in and
// emits lifecycle events on the bus. Multiple instances share one bus per
// trader (§2). It never mutates order state itself — it only synthesizes and
// dispatches events; idempotence of effects is the engine's concern.
type ExecutionClient struct {
	*component.Component

	identity Identity
	bus      *bus.MessageBus
	clock    clock.Clock

	mu        sync.Mutex
	accountID *ids.AccountId

	// venueOrders caches the last known client_order_id -> venue_order_id
	// mapping, consulted by GenerateOrderUpdated when venueOrderIDModified
	// is false.
	venueOrders map[string]ids.VenueOrderId
}

// New constructs an ExecutionClient. identity.OmsType must not be
// events.OmsTypeNone.
func New(id string, identity Identity, b *bus.MessageBus, clk clock.Clock) (*ExecutionClient, error) {
	if identity.OmsType == events.OmsTypeNone {
		return nil, ErrOmsTypeRequired
	}
	return &ExecutionClient{
		Component:   component.New(id, b),
		identity:    identity,
		bus:         b,
		clock:       clk,
		venueOrders: make(map[string]ids.VenueOrderId),
	}, nil
}

// ClientID returns the client's identifier.
func (c *ExecutionClient) ClientID() ids.ClientId { return c.identity.ClientID }

// AccountID returns the account id assigned to this client, if any.
func (c *ExecutionClient) AccountID() (ids.AccountId, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.accountID == nil {
		return ids.AccountId{}, false
	}
	return *c.accountID, true
}

// SetAccountID assigns the client's account id. It may be assigned exactly
// once; the issuer is validated against the client id at set-time.
func (c *ExecutionClient) SetAccountID(accountID ids.AccountId) error {
	if err := accountID.ValidateIssuer(c.identity.ClientID); err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.accountID != nil {
		return ErrAccountIDAlreadySet
	}
	c.accountID = &accountID
	return nil
}

func (c *ExecutionClient) tsInit() uint64 { return c.clock.TimestampNs() }

func (c *ExecutionClient) rememberVenueOrder(clientOrderID ids.ClientOrderId, venueOrderID *ids.VenueOrderId) {
	if venueOrderID == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.venueOrders[clientOrderID.String()] = *venueOrderID
}

func (c *ExecutionClient) dispatch(e events.OrderEvent) error {
	if err := e.Validate(); err != nil {
		return err
	}
	c.rememberVenueOrder(e.ClientOrderID, e.VenueOrderID)
	c.bus.Send(EndpointExecEngineProcess, e)
	return nil
}

// GenerateOrderSubmitted emits ORDER_SUBMITTED.
func (c *ExecutionClient) GenerateOrderSubmitted(h events.Header, tsEvent uint64) error {
	return c.dispatch(events.NewSubmitted(h, tsEvent, c.tsInit()))
}

// GenerateOrderAccepted emits ORDER_ACCEPTED.
func (c *ExecutionClient) GenerateOrderAccepted(h events.Header, venueOrderID ids.VenueOrderId, tsEvent uint64) error {
	return c.dispatch(events.NewAccepted(h, venueOrderID, tsEvent, c.tsInit()))
}

// GenerateOrderRejected emits ORDER_REJECTED.
func (c *ExecutionClient) GenerateOrderRejected(h events.Header, reason string, tsEvent uint64) error {
	return c.dispatch(events.NewRejected(h, reason, tsEvent, c.tsInit()))
}

// GenerateOrderPendingUpdate emits ORDER_PENDING_UPDATE.
func (c *ExecutionClient) GenerateOrderPendingUpdate(h events.Header, venueOrderID ids.VenueOrderId, tsEvent uint64) error {
	return c.dispatch(events.NewPendingUpdate(h, venueOrderID, tsEvent, c.tsInit()))
}

// GenerateOrderPendingCancel emits ORDER_PENDING_CANCEL.
func (c *ExecutionClient) GenerateOrderPendingCancel(h events.Header, venueOrderID ids.VenueOrderId, tsEvent uint64) error {
	return c.dispatch(events.NewPendingCancel(h, venueOrderID, tsEvent, c.tsInit()))
}

// GenerateOrderModifyRejected emits ORDER_MODIFY_REJECTED.
func (c *ExecutionClient) GenerateOrderModifyRejected(h events.Header, venueOrderID ids.VenueOrderId, reason string, tsEvent uint64) error {
	return c.dispatch(events.NewModifyRejected(h, venueOrderID, reason, tsEvent, c.tsInit()))
}

// GenerateOrderCancelRejected emits ORDER_CANCEL_REJECTED.
func (c *ExecutionClient) GenerateOrderCancelRejected(h events.Header, venueOrderID ids.VenueOrderId, reason string, tsEvent uint64) error {
	return c.dispatch(events.NewCancelRejected(h, venueOrderID, reason, tsEvent, c.tsInit()))
}

// GenerateOrderUpdated emits ORDER_UPDATED. If venueOrderIDModified is
// false, venueOrderID must match the cached mapping for h.ClientOrderID;
// a mismatch is a reconciliation error (§4.4 item 2).
func (c *ExecutionClient) GenerateOrderUpdated(h events.Header, venueOrderID ids.VenueOrderId, venueOrderIDModified bool, qty, price, triggerPrice float64, tsEvent uint64) error {
	if !venueOrderIDModified {
		c.mu.Lock()
		cached, ok := c.venueOrders[h.ClientOrderID.String()]
		c.mu.Unlock()
		if ok && cached.String() != venueOrderID.String() {
			return ErrVenueOrderIDMismatch
		}
	}
	return c.dispatch(events.NewUpdated(h, venueOrderID, qty, price, triggerPrice, tsEvent, c.tsInit()))
}

// GenerateOrderCanceled emits ORDER_CANCELED.
func (c *ExecutionClient) GenerateOrderCanceled(h events.Header, venueOrderID ids.VenueOrderId, tsEvent uint64) error {
	return c.dispatch(events.NewCanceled(h, venueOrderID, tsEvent, c.tsInit()))
}

// GenerateOrderTriggered emits ORDER_TRIGGERED.
func (c *ExecutionClient) GenerateOrderTriggered(h events.Header, venueOrderID ids.VenueOrderId, tsEvent uint64) error {
	return c.dispatch(events.NewTriggered(h, venueOrderID, tsEvent, c.tsInit()))
}

// GenerateOrderExpired emits ORDER_EXPIRED.
func (c *ExecutionClient) GenerateOrderExpired(h events.Header, venueOrderID ids.VenueOrderId, tsEvent uint64) error {
	return c.dispatch(events.NewExpired(h, venueOrderID, tsEvent, c.tsInit()))
}

// GenerateOrderFilled emits ORDER_FILLED with a fresh trade_id in p.
func (c *ExecutionClient) GenerateOrderFilled(h events.Header, p events.FilledParams, tsEvent uint64) error {
	return c.dispatch(events.NewFilled(h, p, tsEvent, c.tsInit()))
}

// GenerateAccountState constructs an AccountState and routes it to
// Portfolio.update_account.
func (c *ExecutionClient) GenerateAccountState(
	accountID ids.AccountId,
	reported bool,
	balances []events.Balance,
	margins []events.Margin,
	info map[string]any,
	tsEvent uint64,
) events.AccountState {
	state := events.NewAccountState(accountID, c.identity.AccountType, c.identity.BaseCurrency, reported, balances, margins, info, tsEvent, c.tsInit())
	c.bus.Send(EndpointPortfolioUpdateAccount, state)
	return state
}

// ReconcileMassStatus routes report to ExecEngine.reconcile_mass_status.
func (c *ExecutionClient) ReconcileMassStatus(report ExecutionMassStatus) {
	c.bus.Send(EndpointExecEngineReconcileMass, report)
}

// ReconcileOrderStatusReport routes report to ExecEngine.reconcile_report.
func (c *ExecutionClient) ReconcileOrderStatusReport(report OrderStatusReport) {
	c.bus.Send(EndpointExecEngineReconcileReport, report)
}

// ReconcileTradeReport routes report to ExecEngine.reconcile_report.
func (c *ExecutionClient) ReconcileTradeReport(report TradeReport) {
	c.bus.Send(EndpointExecEngineReconcileReport, report)
}
