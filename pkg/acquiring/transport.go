package acquiring

import (
	"bytes"
	"context"
	"crypto/tls"
	"io"
	"net/http"
	"time"
)

// Transport performs a single HTTP exchange with the gateway.
//
// Implementations return the status code and response body of any completed
// exchange, including non-2xx ones; an error means the exchange itself
// failed (DNS, connect, TLS, timeout). Implementations must be safe for
// concurrent use if the client is shared between goroutines.
type Transport interface {
	Request(ctx context.Context, method, uri string, headers map[string]string, body []byte) (int, []byte, error)
}

// HTTPTransport is the default Transport backed by net/http.
type HTTPTransport struct {
	Client *http.Client
}

// NewHTTPTransport creates the default transport. Certificate verification
// is disabled because the gateway test environments run on self-signed
// certificates; replace Client with a stricter one for production traffic.
func NewHTTPTransport() *HTTPTransport {
	return &HTTPTransport{
		Client: &http.Client{
			Timeout: 30 * time.Second,
			Transport: &http.Transport{
				TLSClientConfig: &tls.Config{InsecureSkipVerify: true},
			},
		},
	}
}

// Request performs one HTTP exchange and returns the status code and body.
func (t *HTTPTransport) Request(ctx context.Context, method, uri string, headers map[string]string, body []byte) (int, []byte, error) {
	req, err := http.NewRequestWithContext(ctx, method, uri, bytes.NewReader(body))
	if err != nil {
		return 0, nil, err
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := t.Client.Do(req)
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, err
	}
	return resp.StatusCode, respBody, nil
}
