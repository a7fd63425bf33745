package acquiring

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"reflect"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Client talks to the acquiring gateway REST API. It is immutable after
// construction and safe for concurrent use as long as its Transport is.
type Client struct {
	apiURI      string
	credentials Credentials
	currency    string
	language    string
	method      string
	prefix      string
	transport   Transport
	log         zerolog.Logger
}

// Execute sends a single gateway action and returns the normalized result.
//
// A bare action name such as "register.do" is qualified with the configured
// prefix; an action starting with "/" is appended to the base URI verbatim.
// The caller's params map is never mutated. Credentials and the default
// language are injected into the request body before sending.
func (c *Client) Execute(ctx context.Context, action string, params Params) (ActionResult, error) {
	if !strings.HasPrefix(action, "/") {
		action = c.prefix + action
	}
	uri := c.apiURI + action

	body := make(map[string]any, len(params)+3)
	for k, v := range params {
		body[k] = v
	}
	if _, ok := body["language"]; !ok && c.language != "" {
		body["language"] = c.language
	}
	// Credentials go in last so caller-supplied keys can never shadow them.
	c.credentials.inject(body)

	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("acquiring: marshal request: %w", err)
	}
	headers := map[string]string{"Content-Type": "application/json"}

	// The JSON endpoints accept request bodies over POST only, whatever
	// method is configured.
	start := time.Now()
	status, respBody, err := c.transport.Request(ctx, http.MethodPost, uri, headers, payload)
	if err != nil {
		return nil, &NetworkError{Err: err}
	}
	c.log.Debug().
		Str("action", action).
		Int("status", status).
		Dur("elapsed", time.Since(start)).
		Msg("gateway call")

	if status != http.StatusOK {
		return nil, &BadResponseError{StatusCode: status, Body: respBody}
	}

	var parsed map[string]any
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return nil, &ParseError{Body: respBody, Err: err}
	}
	if parsed == nil {
		return nil, &ParseError{Body: respBody, Err: errNotObject}
	}
	return normalizeResponse(parsed)
}

// RegisterOrder creates a one-phase payment order.
// orderNumber may be numeric or a string; amount is in minor currency units.
func (c *Client) RegisterOrder(ctx context.Context, orderNumber any, amount int64, returnURL string, params Params) (ActionResult, error) {
	return c.register(ctx, "register.do", orderNumber, amount, returnURL, params)
}

// RegisterOrderPreAuth creates a two-phase payment order. The amount is held
// on the payer's card until Deposit or ReverseOrder.
func (c *Client) RegisterOrderPreAuth(ctx context.Context, orderNumber any, amount int64, returnURL string, params Params) (ActionResult, error) {
	return c.register(ctx, "registerPreAuth.do", orderNumber, amount, returnURL, params)
}

func (c *Client) register(ctx context.Context, action string, orderNumber any, amount int64, returnURL string, params Params) (ActionResult, error) {
	p := cloneParams(params)
	if _, ok := p["currency"]; !ok && c.currency != "" {
		p["currency"] = c.currency
	}
	// The gateway expects these as JSON structures; a pre-encoded string
	// would end up double-encoded in the body.
	for _, key := range []string{"jsonParams", "orderBundle"} {
		if v, ok := p[key]; ok && !structured(v) {
			return nil, fmt.Errorf("%w: %s", ErrParamNotStructured, key)
		}
	}
	p["orderNumber"] = stringifyID(orderNumber)
	p["amount"] = amount
	p["returnUrl"] = returnURL
	return c.Execute(ctx, action, p)
}

// Deposit captures a held amount on a two-phase order.
func (c *Client) Deposit(ctx context.Context, orderID any, amount int64, params Params) (ActionResult, error) {
	p := cloneParams(params)
	p["orderId"] = stringifyID(orderID)
	p["amount"] = amount
	return c.Execute(ctx, "deposit.do", p)
}

// ReverseOrder cancels a payment before financial settlement.
func (c *Client) ReverseOrder(ctx context.Context, orderID any, params Params) (ActionResult, error) {
	p := cloneParams(params)
	p["orderId"] = stringifyID(orderID)
	return c.Execute(ctx, "reverse.do", p)
}

// RefundOrder returns a settled amount, in full or partially, to the payer.
func (c *Client) RefundOrder(ctx context.Context, orderID any, amount int64, params Params) (ActionResult, error) {
	p := cloneParams(params)
	p["orderId"] = stringifyID(orderID)
	p["amount"] = amount
	return c.Execute(ctx, "refund.do", p)
}

// GetOrderStatus returns the extended state of an order. Interpret the
// orderStatus field with the OrderStatus constants.
func (c *Client) GetOrderStatus(ctx context.Context, orderID any, params Params) (ActionResult, error) {
	p := cloneParams(params)
	p["orderId"] = stringifyID(orderID)
	return c.Execute(ctx, "getOrderStatusExtended.do", p)
}

// PaymentOrderBinding pays a registered order with a previously bound card.
func (c *Client) PaymentOrderBinding(ctx context.Context, orderID any, bindingID string, params Params) (ActionResult, error) {
	p := cloneParams(params)
	p["mdOrder"] = stringifyID(orderID)
	p["bindingId"] = bindingID
	return c.Execute(ctx, "paymentOrderBinding.do", p)
}

// BindCard re-activates a deactivated card binding.
func (c *Client) BindCard(ctx context.Context, bindingID string, params Params) (ActionResult, error) {
	p := cloneParams(params)
	p["bindingId"] = bindingID
	return c.Execute(ctx, "bindCard.do", p)
}

// UnbindCard deactivates a card binding.
func (c *Client) UnbindCard(ctx context.Context, bindingID string, params Params) (ActionResult, error) {
	p := cloneParams(params)
	p["bindingId"] = bindingID
	return c.Execute(ctx, "unbindCard.do", p)
}

// GetBindings lists the active card bindings of a gateway client.
func (c *Client) GetBindings(ctx context.Context, clientID string, params Params) (ActionResult, error) {
	p := cloneParams(params)
	p["clientId"] = clientID
	return c.Execute(ctx, "getBindings.do", p)
}

func cloneParams(params Params) Params {
	p := make(Params, len(params)+4)
	for k, v := range params {
		p[k] = v
	}
	return p
}

// stringifyID serializes numeric and string order identifiers alike as
// strings, the form the gateway expects.
func stringifyID(id any) string {
	if s, ok := id.(string); ok {
		return s
	}
	return fmt.Sprint(id)
}

// structured reports whether v can carry nested parameters.
func structured(v any) bool {
	switch v.(type) {
	case nil:
		return false
	case string, []byte, json.RawMessage:
		return false
	}
	switch rv := reflect.ValueOf(v); rv.Kind() {
	case reflect.Map, reflect.Struct:
		return true
	case reflect.Pointer:
		return rv.Elem().Kind() == reflect.Struct
	default:
		return false
	}
}
