package events_test

import (
	"testing"

	"github.com/JoeTonDev/nautilus-trader/events"
	"github.com/JoeTonDev/nautilus-trader/ids"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testHeader(t *testing.T) events.Header {
	t.Helper()
	trader, err := ids.NewTraderId("TRADER-001")
	require.NoError(t, err)
	strategy, err := ids.NewStrategyId("S-001")
	require.NoError(t, err)
	account, err := ids.NewAccountId("SIM-001")
	require.NoError(t, err)
	instrument, err := ids.NewInstrumentId("BTCUSDT.SIM")
	require.NoError(t, err)
	clientOrder, err := ids.NewClientOrderId("O-1")
	require.NoError(t, err)
	return events.Header{
		TraderID:      trader,
		StrategyID:    strategy,
		AccountID:     account,
		InstrumentID:  instrument,
		ClientOrderID: clientOrder,
	}
}

func TestOrderEvent_SubmittedAndRejected_DoNotRequireVenueOrderID(t *testing.T) {
	h := testHeader(t)

	submitted := events.NewSubmitted(h, 100, 200)
	require.NoError(t, submitted.Validate())
	assert.Nil(t, submitted.VenueOrderID)
	assert.GreaterOrEqual(t, submitted.TsInit, submitted.TsEvent)

	rejected := events.NewRejected(h, "insufficient margin", 100, 200)
	require.NoError(t, rejected.Validate())
	assert.Equal(t, "insufficient margin", rejected.Reason)
}

func TestOrderEvent_AcceptedRequiresVenueOrderID(t *testing.T) {
	h := testHeader(t)
	venueOrderID, err := ids.NewVenueOrderId("V-1")
	require.NoError(t, err)

	accepted := events.NewAccepted(h, venueOrderID, 100, 200)
	require.NoError(t, accepted.Validate())

	var bare events.OrderEvent
	bare.Kind = events.OrderAccepted
	require.ErrorIs(t, bare.Validate(), events.ErrMissingVenueOrderID)
}

func TestOrderEvent_FilledCarriesTradeID(t *testing.T) {
	h := testHeader(t)
	venueOrderID, err := ids.NewVenueOrderId("V-1")
	require.NoError(t, err)
	tradeID, err := ids.NewTradeId("T-1")
	require.NoError(t, err)

	filled := events.NewFilled(h, events.FilledParams{
		VenueOrderID:  venueOrderID,
		TradeID:       tradeID,
		Side:          events.OrderSideBuy,
		OrderType:     events.OrderTypeMarket,
		LastQty:       1.5,
		LastPx:        100.25,
		QuoteCurrency: "USDT",
		Commission:    0.01,
		LiquiditySide: events.LiquiditySideTaker,
	}, 100, 200)

	require.NoError(t, filled.Validate())
	assert.Equal(t, tradeID, filled.TradeID)
	assert.Equal(t, events.OrderSideBuy, filled.Side)
}

func TestOrderEvent_EmittingTwiceProducesDistinctEventIDsSameRouting(t *testing.T) {
	h := testHeader(t)
	venueOrderID, err := ids.NewVenueOrderId("V-1")
	require.NoError(t, err)

	first := events.NewAccepted(h, venueOrderID, 100, 200)
	second := events.NewAccepted(h, venueOrderID, 100, 200)

	assert.NotEqual(t, first.EventID, second.EventID)
	assert.Equal(t, first.ClientOrderID, second.ClientOrderID)
}
