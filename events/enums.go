package events

// OrderSide is the side of an order or fill.
type OrderSide string

const (
	OrderSideBuy  OrderSide = "BUY"
	OrderSideSell OrderSide = "SELL"
)

// OrderType is the execution style of an order.
type OrderType string

const (
	OrderTypeMarket             OrderType = "MARKET"
	OrderTypeLimit              OrderType = "LIMIT"
	OrderTypeStopMarket         OrderType = "STOP_MARKET"
	OrderTypeStopLimit          OrderType = "STOP_LIMIT"
	OrderTypeMarketToLimit      OrderType = "MARKET_TO_LIMIT"
	OrderTypeMarketIfTouched    OrderType = "MARKET_IF_TOUCHED"
	OrderTypeLimitIfTouched     OrderType = "LIMIT_IF_TOUCHED"
	OrderTypeTrailingStopMarket OrderType = "TRAILING_STOP_MARKET"
	OrderTypeTrailingStopLimit  OrderType = "TRAILING_STOP_LIMIT"
)

// LiquiditySide classifies which side of the book a fill took liquidity from.
type LiquiditySide string

const (
	LiquiditySideNone  LiquiditySide = "NO_LIQUIDITY_SIDE"
	LiquiditySideMaker LiquiditySide = "MAKER"
	LiquiditySideTaker LiquiditySide = "TAKER"
)

// OmsType is the order management strategy an ExecutionClient operates
// under. NONE is invalid for a constructed ExecutionClient (§4.4).
type OmsType string

const (
	OmsTypeNone     OmsType = "NONE"
	OmsTypeNetting  OmsType = "NETTING"
	OmsTypeHedging  OmsType = "HEDGING"
)

// AccountType classifies the accounting model of a venue account.
type AccountType string

const (
	AccountTypeCash    AccountType = "CASH"
	AccountTypeMargin  AccountType = "MARGIN"
	AccountTypeBetting AccountType = "BETTING"
)
