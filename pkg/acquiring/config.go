package acquiring

import (
	"fmt"
	"net/http"
	"slices"
	"strings"

	"github.com/rs/zerolog"
)

// DefaultPrefix is prepended to bare action names passed to Execute.
const DefaultPrefix = "/payment/rest/"

// Credentials selects one of the gateway's two authentication modes.
// Values are built with UserPass or Token, which makes configuring both
// modes at once unrepresentable.
type Credentials interface {
	inject(params map[string]any)
}

type userPassCredentials struct {
	userName string
	password string
}

func (c userPassCredentials) inject(params map[string]any) {
	params["userName"] = c.userName
	params["password"] = c.password
}

type tokenCredentials struct {
	token string
}

func (c tokenCredentials) inject(params map[string]any) {
	params["token"] = c.token
}

// UserPass authenticates with the merchant API user name and password.
func UserPass(userName, password string) Credentials {
	return userPassCredentials{userName: userName, password: password}
}

// Token authenticates with an opaque merchant token.
func Token(token string) Credentials {
	return tokenCredentials{token: token}
}

// ClientConfig holds the configuration for the acquiring client.
// The client copies it on construction; later changes have no effect.
type ClientConfig struct {
	// APIURI is the gateway base URI, e.g. "https://securepayments.example.com".
	APIURI string

	// Credentials is required. Build it with UserPass or Token.
	Credentials Credentials

	// Currency is an ISO 4217 numeric code injected into registration
	// actions when the caller does not provide one. Optional.
	Currency string

	// Language is an ISO 639-1 code injected into every action when the
	// caller does not provide one. Optional.
	Language string

	// HTTPMethod must be GET or POST when set. It is recorded for
	// compatibility only: the gateway's JSON endpoints accept request
	// bodies over POST exclusively, so Execute always sends POST.
	HTTPMethod string

	// Prefix replaces DefaultPrefix for bare action names. Optional.
	Prefix string

	// Transport performs the HTTP exchanges. Defaults to NewHTTPTransport().
	Transport Transport

	// Logger enables debug logging of gateway calls. Disabled when nil.
	Logger *zerolog.Logger
}

// NewClient validates the configuration and creates a gateway client.
func NewClient(cfg *ClientConfig) (*Client, error) {
	if cfg == nil || cfg.Credentials == nil {
		return nil, ErrMissingCredentials
	}

	method := cfg.HTTPMethod
	switch method {
	case "":
		method = http.MethodPost
	case http.MethodGet, http.MethodPost:
	default:
		return nil, fmt.Errorf("%w %q, expected GET or POST", ErrUnsupportedMethod, cfg.HTTPMethod)
	}

	prefix := cfg.Prefix
	if prefix == "" {
		prefix = DefaultPrefix
	}

	transport := cfg.Transport
	if transport == nil {
		transport = NewHTTPTransport()
	}

	logger := zerolog.Nop()
	if cfg.Logger != nil {
		logger = *cfg.Logger
	}

	return &Client{
		apiURI:      cfg.APIURI,
		credentials: cfg.Credentials,
		currency:    cfg.Currency,
		language:    cfg.Language,
		method:      method,
		prefix:      prefix,
		transport:   transport,
		log:         logger,
	}, nil
}

// Option keys recognized by NewClientFromOptions.
var allowedOptions = []string{
	"apiUri", "currency", "httpClient", "httpMethod",
	"language", "password", "prefixDefault", "token", "userName",
}

// NewClientFromOptions builds a client from a flat option map, the form
// configuration-driven integrations tend to hold. Keys outside the
// recognized set are rejected so a typo fails loudly instead of being
// silently ignored.
func NewClientFromOptions(options map[string]any) (*Client, error) {
	for key := range options {
		if !slices.Contains(allowedOptions, key) {
			return nil, fmt.Errorf("%w %q, allowed options: %s",
				ErrUnknownOption, key, strings.Join(allowedOptions, ", "))
		}
	}

	cfg := &ClientConfig{}
	var err error
	if cfg.APIURI, err = stringOption(options, "apiUri"); err != nil {
		return nil, err
	}
	if cfg.Currency, err = stringOption(options, "currency"); err != nil {
		return nil, err
	}
	if cfg.Language, err = stringOption(options, "language"); err != nil {
		return nil, err
	}
	if cfg.HTTPMethod, err = stringOption(options, "httpMethod"); err != nil {
		return nil, err
	}
	if cfg.Prefix, err = stringOption(options, "prefixDefault"); err != nil {
		return nil, err
	}

	if v, ok := options["httpClient"]; ok {
		transport, ok := v.(Transport)
		if !ok {
			return nil, fmt.Errorf("%w: got %T", ErrInvalidTransport, v)
		}
		cfg.Transport = transport
	}

	_, hasUser := options["userName"]
	_, hasPassword := options["password"]
	_, hasToken := options["token"]
	switch {
	case (hasUser || hasPassword) && hasToken:
		return nil, ErrCredentialsConflict
	case hasToken:
		token, err := stringOption(options, "token")
		if err != nil {
			return nil, err
		}
		cfg.Credentials = Token(token)
	case hasUser || hasPassword:
		userName, err := stringOption(options, "userName")
		if err != nil {
			return nil, err
		}
		password, err := stringOption(options, "password")
		if err != nil {
			return nil, err
		}
		cfg.Credentials = UserPass(userName, password)
	default:
		return nil, ErrMissingCredentials
	}

	return NewClient(cfg)
}

func stringOption(options map[string]any, key string) (string, error) {
	v, ok := options[key]
	if !ok {
		return "", nil
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("acquiring: option %q must be a string, got %T", key, v)
	}
	return s, nil
}
