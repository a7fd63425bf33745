package acquiring

import (
	"strings"

	"github.com/google/uuid"
)

// Params carries optional action parameters supplied by the caller.
type Params map[string]any

// ActionResult is the gateway response body with the error bookkeeping
// fields stripped out.
type ActionResult map[string]any

// Order states reported in the orderStatus field of getOrderStatusExtended.do.
const (
	OrderStatusRegistered = 0
	OrderStatusHeld       = 1
	OrderStatusDeposited  = 2
	OrderStatusReversed   = 3
	OrderStatusRefunded   = 4
	OrderStatusACSAuth    = 5
	OrderStatusDeclined   = 6
)

var orderStatusText = map[int]string{
	OrderStatusRegistered: "order registered but not paid",
	OrderStatusHeld:       "pre-authorization amount held",
	OrderStatusDeposited:  "amount deposited",
	OrderStatusReversed:   "authorization reversed",
	OrderStatusRefunded:   "amount refunded",
	OrderStatusACSAuth:    "ACS authorization initiated",
	OrderStatusDeclined:   "authorization declined",
}

// OrderStatusText returns a human-readable name for an orderStatus code.
func OrderStatusText(status int) string {
	if name, ok := orderStatusText[status]; ok {
		return name
	}
	return "unknown order status"
}

// ISO 4217 numeric currency codes accepted by the gateway.
const (
	CurrencyRUB = "643"
	CurrencyUSD = "840"
	CurrencyEUR = "978"
	CurrencyGBP = "826"
	CurrencyBYN = "933"
	CurrencyKZT = "398"
	CurrencyUAH = "980"
	CurrencyCNY = "156"
	CurrencyJPY = "392"
)

// ISO 639-1 payment page languages accepted by the gateway.
const (
	LanguageRU = "ru"
	LanguageEN = "en"
	LanguageDE = "de"
	LanguageFR = "fr"
	LanguageES = "es"
)

// NewOrderNumber generates a unique 32-character order number. The gateway
// rejects a registration that reuses an order number within the same
// merchant account.
func NewOrderNumber() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}
