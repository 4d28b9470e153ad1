// Package ids provides the immutable, string-backed identifier value types
// shared across the trading runtime: traders, clients, strategies,
// instruments, orders, positions, trades and accounts.
//
// Every identifier is validated on construction and rejects empty
// components, matching the identifier grammar of the original platform
// (e.g. AccountId "<ISSUER>-<ID>", InstrumentId "<SYMBOL>.<VENUE>").
package ids

import (
	"errors"
	"strings"
)

// Identifier errors.
var (
	ErrEmptyValue           = errors.New("identifier value must not be empty")
	ErrMissingAccountDash   = errors.New("account id must have the form <ISSUER>-<ID>")
	ErrMissingInstrumentDot = errors.New("instrument id must have the form <SYMBOL>.<VENUE>")
	ErrIssuerMismatch       = errors.New("account id issuer does not match client id")
)

// stringID is the common, unexported representation every identifier wraps.
// Identifiers compare by value and are safe to use as map keys.
type stringID struct {
	value string
}

func newStringID(value string) (stringID, error) {
	if value == "" {
		return stringID{}, ErrEmptyValue
	}
	return stringID{value: value}, nil
}

func (s stringID) String() string { return s.value }

// TraderId identifies the owner of a trading session.
type TraderId struct{ stringID }

// NewTraderId validates and constructs a TraderId.
func NewTraderId(value string) (TraderId, error) {
	id, err := newStringID(value)
	return TraderId{id}, err
}

// ClientId identifies an ExecutionClient (adapter) instance.
type ClientId struct{ stringID }

// NewClientId validates and constructs a ClientId.
func NewClientId(value string) (ClientId, error) {
	id, err := newStringID(value)
	return ClientId{id}, err
}

// StrategyId identifies a strategy instance.
type StrategyId struct{ stringID }

// NewStrategyId validates and constructs a StrategyId.
func NewStrategyId(value string) (StrategyId, error) {
	id, err := newStringID(value)
	return StrategyId{id}, err
}

// ClientOrderId identifies an order as assigned by the client/strategy side.
type ClientOrderId struct{ stringID }

// NewClientOrderId validates and constructs a ClientOrderId.
func NewClientOrderId(value string) (ClientOrderId, error) {
	id, err := newStringID(value)
	return ClientOrderId{id}, err
}

// VenueOrderId identifies an order as assigned by the venue.
type VenueOrderId struct{ stringID }

// NewVenueOrderId validates and constructs a VenueOrderId.
func NewVenueOrderId(value string) (VenueOrderId, error) {
	id, err := newStringID(value)
	return VenueOrderId{id}, err
}

// PositionId identifies a position.
type PositionId struct{ stringID }

// NewPositionId validates and constructs a PositionId.
func NewPositionId(value string) (PositionId, error) {
	id, err := newStringID(value)
	return PositionId{id}, err
}

// TradeId identifies an individual fill/trade.
type TradeId struct{ stringID }

// NewTradeId validates and constructs a TradeId.
func NewTradeId(value string) (TradeId, error) {
	id, err := newStringID(value)
	return TradeId{id}, err
}

// InstrumentId identifies a tradable instrument, of the form "<SYMBOL>.<VENUE>".
type InstrumentId struct {
	stringID
	Symbol string
	Venue  string
}

// NewInstrumentId validates and constructs an InstrumentId.
func NewInstrumentId(value string) (InstrumentId, error) {
	if value == "" {
		return InstrumentId{}, ErrEmptyValue
	}
	symbol, venue, ok := strings.Cut(value, ".")
	if !ok || symbol == "" || venue == "" {
		return InstrumentId{}, ErrMissingInstrumentDot
	}
	return InstrumentId{stringID: stringID{value: value}, Symbol: symbol, Venue: venue}, nil
}

// AccountId identifies a venue account, of the form "<ISSUER>-<ID>".
// Issuer must equal the owning ExecutionClient's ClientId.
type AccountId struct {
	stringID
	issuer string
}

// NewAccountId validates and constructs an AccountId.
func NewAccountId(value string) (AccountId, error) {
	if value == "" {
		return AccountId{}, ErrEmptyValue
	}
	issuer, rest, ok := strings.Cut(value, "-")
	if !ok || issuer == "" || rest == "" {
		return AccountId{}, ErrMissingAccountDash
	}
	return AccountId{stringID: stringID{value: value}, issuer: issuer}, nil
}

// Issuer returns the prefix of the account id, i.e. the part before the dash.
func (a AccountId) Issuer() string { return a.issuer }

// ValidateIssuer checks that the account's issuer matches the given client id,
// as required when an ExecutionClient assigns its account_id.
func (a AccountId) ValidateIssuer(client ClientId) error {
	if a.issuer != client.String() {
		return ErrIssuerMismatch
	}
	return nil
}
