// Package acquiring provides a client for a bank acquiring (internet
// acquiring) REST API of the register.do / deposit.do family.
//
// The client builds the JSON request for each payment action, injects the
// merchant credentials and configured defaults, sends it through a pluggable
// Transport and normalizes the gateway's inconsistent success and error
// response shapes into a single ActionResult or a typed error.
//
// # Authentication
//
// The gateway accepts exactly one of two credential modes, passed in the
// request body:
//   - merchant API user name and password (UserPass)
//   - an opaque merchant token (Token)
//
// # Basic Usage
//
//	client, err := acquiring.NewClient(&acquiring.ClientConfig{
//	    APIURI:      "https://securepayments.example.com",
//	    Credentials: acquiring.UserPass("merchant-api", "secret"),
//	    Currency:    acquiring.CurrencyRUB,
//	    Language:    acquiring.LanguageRU,
//	})
//
//	// Register an order for 100.00 RUB (amounts are in minor units).
//	result, err := client.RegisterOrder(ctx, acquiring.NewOrderNumber(), 10000,
//	    "https://shop.example.com/payment/finish", nil)
//
//	// Inspect its state later.
//	status, err := client.GetOrderStatus(ctx, result["orderId"], nil)
//
// Every operation also accepts extra action parameters:
//
//	result, err := client.RegisterOrder(ctx, orderNumber, 10000, returnURL,
//	    acquiring.Params{
//	        "failUrl":    "https://shop.example.com/payment/fail",
//	        "jsonParams": map[string]any{"email": "payer@example.com"},
//	    })
//
// # Error Handling
//
// Failures surface as typed errors: *NetworkError when the transport could
// not complete the exchange, *BadResponseError for a non-200 status,
// *ParseError for an unparseable body and *ActionError for business-level
// gateway errors:
//
//	result, err := client.Deposit(ctx, orderID, 10000, nil)
//	var actionErr *acquiring.ActionError
//	if errors.As(err, &actionErr) {
//	    log.Printf("gateway rejected deposit: %d %s", actionErr.Code, actionErr.Message)
//	}
//
// The client keeps no state between calls and never retries; retry and
// timeout policy belong to the caller and the injected Transport.
package acquiring
