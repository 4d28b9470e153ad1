package ids_test

import (
	"testing"

	"github.com/JoeTonDev/nautilus-trader/ids"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTraderId_RejectsEmpty(t *testing.T) {
	_, err := ids.NewTraderId("")
	require.ErrorIs(t, err, ids.ErrEmptyValue)
}

func TestNewTraderId_Valid(t *testing.T) {
	id, err := ids.NewTraderId("TRADER-001")
	require.NoError(t, err)
	assert.Equal(t, "TRADER-001", id.String())
}

func TestNewInstrumentId_Valid(t *testing.T) {
	id, err := ids.NewInstrumentId("EURUSD.SIM")
	require.NoError(t, err)
	assert.Equal(t, "EURUSD", id.Symbol)
	assert.Equal(t, "SIM", id.Venue)
}

func TestNewInstrumentId_RejectsMissingDot(t *testing.T) {
	_, err := ids.NewInstrumentId("EURUSD")
	require.ErrorIs(t, err, ids.ErrMissingInstrumentDot)
}

func TestNewInstrumentId_RejectsEmptyComponent(t *testing.T) {
	_, err := ids.NewInstrumentId(".SIM")
	require.ErrorIs(t, err, ids.ErrMissingInstrumentDot)
}

func TestNewAccountId_Valid(t *testing.T) {
	id, err := ids.NewAccountId("SIM-001")
	require.NoError(t, err)
	assert.Equal(t, "SIM", id.Issuer())
}

func TestNewAccountId_RejectsMissingDash(t *testing.T) {
	_, err := ids.NewAccountId("SIM001")
	require.ErrorIs(t, err, ids.ErrMissingAccountDash)
}

func TestAccountId_ValidateIssuer(t *testing.T) {
	client, err := ids.NewClientId("SIM")
	require.NoError(t, err)

	account, err := ids.NewAccountId("SIM-001")
	require.NoError(t, err)
	require.NoError(t, account.ValidateIssuer(client))

	other, err := ids.NewClientId("BINANCE")
	require.NoError(t, err)
	require.ErrorIs(t, account.ValidateIssuer(other), ids.ErrIssuerMismatch)
}

func TestIdentifiersAreComparable(t *testing.T) {
	a, err := ids.NewClientOrderId("O-1")
	require.NoError(t, err)
	b, err := ids.NewClientOrderId("O-1")
	require.NoError(t, err)
	assert.Equal(t, a, b)

	m := map[ids.ClientOrderId]int{a: 1}
	m[b]++
	assert.Equal(t, 2, m[a])
}
