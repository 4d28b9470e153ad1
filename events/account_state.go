package events

import (
	"github.com/JoeTonDev/nautilus-trader/ids"
	"github.com/google/uuid"
)

// Balance is one currency's free/locked/total balance snapshot within an
// AccountState. The accounting math that produces these is out of scope
// (§1 Non-goals); this is purely the wire shape the event carries.
type Balance struct {
	Currency string
	Total    float64
	Locked   float64
	Free     float64
}

// Margin is one instrument's initial/maintenance margin snapshot.
type Margin struct {
	Currency    string
	Initial     float64
	Maintenance float64
}

// AccountState reports a venue account's balances and margins at a point in
// time, routed to endpoint Portfolio.update_account.
type AccountState struct {
	AccountID    ids.AccountId
	AccountType  AccountType
	BaseCurrency *string
	Reported     bool
	Balances     []Balance
	Margins      []Margin
	Info         map[string]any
	EventID      uuid.UUID
	TsEvent      uint64
	TsInit       uint64
}

// NewAccountState stamps a fresh EventID onto an AccountState.
func NewAccountState(
	accountID ids.AccountId,
	accountType AccountType,
	baseCurrency *string,
	reported bool,
	balances []Balance,
	margins []Margin,
	info map[string]any,
	tsEvent, tsInit uint64,
) AccountState {
	return AccountState{
		AccountID:    accountID,
		AccountType:  accountType,
		BaseCurrency: baseCurrency,
		Reported:     reported,
		Balances:     balances,
		Margins:      margins,
		Info:         info,
		EventID:      uuid.New(),
		TsEvent:      tsEvent,
		TsInit:       tsInit,
	}
}
