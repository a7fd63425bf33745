package acquiring

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Configuration errors returned by NewClient and NewClientFromOptions.
var (
	ErrMissingCredentials  = errors.New("acquiring: userName/password or token is required")
	ErrCredentialsConflict = errors.New("acquiring: userName/password and token are mutually exclusive")
	ErrUnknownOption       = errors.New("acquiring: unknown option")
	ErrUnsupportedMethod   = errors.New("acquiring: unsupported HTTP method")
	ErrInvalidTransport    = errors.New("acquiring: httpClient does not implement Transport")
	ErrParamNotStructured  = errors.New("acquiring: parameter must be a structured value")
)

var errNotObject = errors.New("response is not a JSON object")

// NetworkError reports that the Transport failed to complete the exchange.
// Retrying is the caller's decision.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return "acquiring: network failure: " + e.Err.Error()
}

func (e *NetworkError) Unwrap() error { return e.Err }

// BadResponseError reports a gateway response with a status other than 200.
// Body holds the raw payload for diagnostics.
type BadResponseError struct {
	StatusCode int
	Body       []byte
}

func (e *BadResponseError) Error() string {
	return fmt.Sprintf("acquiring: bad response: status %d: %s", e.StatusCode, bytes.TrimSpace(e.Body))
}

// ParseError reports a 200 response whose body is not a JSON object.
type ParseError struct {
	Body []byte
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("acquiring: unparseable response %q: %v", bytes.TrimSpace(e.Body), e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// ActionError is a business-level error reported by the gateway, such as a
// duplicate order number or an unknown order.
type ActionError struct {
	Code    int
	Message string
}

func (e *ActionError) Error() string {
	return fmt.Sprintf("acquiring: gateway error %d: %s", e.Code, e.Message)
}

// actionSuccess is the error code the gateway reports for successful actions.
const actionSuccess = 0

// The gateway spreads error reporting across several response shapes
// depending on the endpoint. Extractors run in a fixed order so a response
// carrying more than one shape resolves deterministically.
type fieldExtractor func(body map[string]any) (any, bool)

func topLevel(key string) fieldExtractor {
	return func(body map[string]any) (any, bool) {
		v, ok := body[key]
		return v, ok
	}
}

func nested(outer, inner string) fieldExtractor {
	return func(body map[string]any) (any, bool) {
		m, ok := body[outer].(map[string]any)
		if !ok {
			return nil, false
		}
		v, ok := m[inner]
		return v, ok
	}
}

var (
	errorCodeExtractors = []fieldExtractor{
		topLevel("errorCode"),
		topLevel("ErrorCode"),
		nested("error", "code"),
	}
	errorMessageExtractors = []fieldExtractor{
		topLevel("errorMessage"),
		topLevel("ErrorMessage"),
		nested("error", "message"),
		nested("error", "description"),
	}
	// Bookkeeping fields are stripped so callers only see business data.
	errorFields = []string{"errorCode", "ErrorCode", "errorMessage", "ErrorMessage", "error", "success"}
)

// normalizeResponse resolves the gateway's error encoding, strips the error
// bookkeeping fields and converts a non-zero code into an *ActionError.
func normalizeResponse(body map[string]any) (ActionResult, error) {
	code := actionSuccess
	for _, extract := range errorCodeExtractors {
		if v, ok := extract(body); ok {
			code = asInt(v)
			break
		}
	}
	message := "Unknown error."
	for _, extract := range errorMessageExtractors {
		if v, ok := extract(body); ok {
			message = asString(v)
			break
		}
	}
	for _, field := range errorFields {
		delete(body, field)
	}
	if code != actionSuccess {
		return nil, &ActionError{Code: code, Message: message}
	}
	return ActionResult(body), nil
}

// asInt tolerates the gateway returning codes as JSON numbers or numeric
// strings, which varies between endpoints.
func asInt(v any) int {
	switch n := v.(type) {
	case float64:
		return int(n)
	case int:
		return n
	case string:
		i, _ := strconv.Atoi(strings.TrimSpace(n))
		return i
	default:
		return 0
	}
}

func asString(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}
