package acquiring

import (
	"errors"
	"testing"
)

func TestNormalizeResponse_Success(t *testing.T) {
	result, err := normalizeResponse(map[string]any{
		"errorCode": float64(0),
		"success":   true,
		"orderId":   "order-1",
	})
	if err != nil {
		t.Fatalf("normalizeResponse failed: %v", err)
	}
	if len(result) != 1 || result["orderId"] != "order-1" {
		t.Errorf("Expected bookkeeping fields stripped, got %v", result)
	}
}

func TestNormalizeResponse_NoErrorFieldsMeansSuccess(t *testing.T) {
	result, err := normalizeResponse(map[string]any{"bindingId": "binding-1"})
	if err != nil {
		t.Fatalf("normalizeResponse failed: %v", err)
	}
	if result["bindingId"] != "binding-1" {
		t.Errorf("Expected business data preserved, got %v", result)
	}
}

func TestNormalizeResponse_DetectionOrder(t *testing.T) {
	// All shapes at once: the lowercase variant must win.
	_, err := normalizeResponse(map[string]any{
		"errorCode":    float64(1),
		"ErrorCode":    float64(2),
		"error":        map[string]any{"code": float64(3), "message": "nested", "description": "desc"},
		"errorMessage": "lowercase",
		"ErrorMessage": "capitalized",
	})
	var actionErr *ActionError
	if !errors.As(err, &actionErr) {
		t.Fatalf("Expected *ActionError, got %v", err)
	}
	if actionErr.Code != 1 || actionErr.Message != "lowercase" {
		t.Errorf("Expected code 1 message 'lowercase', got %d %q", actionErr.Code, actionErr.Message)
	}
}

func TestNormalizeResponse_NestedDescriptionFallback(t *testing.T) {
	_, err := normalizeResponse(map[string]any{
		"error": map[string]any{"code": float64(100), "description": "Error!"},
	})
	var actionErr *ActionError
	if !errors.As(err, &actionErr) {
		t.Fatalf("Expected *ActionError, got %v", err)
	}
	if actionErr.Message != "Error!" {
		t.Errorf("Expected description used as message, got %q", actionErr.Message)
	}
}

func TestNormalizeResponse_UnknownErrorFallback(t *testing.T) {
	_, err := normalizeResponse(map[string]any{"ErrorCode": float64(5)})
	var actionErr *ActionError
	if !errors.As(err, &actionErr) {
		t.Fatalf("Expected *ActionError, got %v", err)
	}
	if actionErr.Message != "Unknown error." {
		t.Errorf("Expected fallback message, got %q", actionErr.Message)
	}
}

func TestNormalizeResponse_ErrorFieldsStrippedOnFailure(t *testing.T) {
	body := map[string]any{
		"errorCode":    float64(100),
		"errorMessage": "Error!",
		"orderId":      "order-1",
	}
	if _, err := normalizeResponse(body); err == nil {
		t.Fatal("Expected an error")
	}
	if _, ok := body["errorCode"]; ok {
		t.Error("Expected errorCode stripped even on failure")
	}
	if body["orderId"] != "order-1" {
		t.Error("Expected business data untouched")
	}
}

func TestAsInt(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want int
	}{
		{"float", float64(100), 100},
		{"int", 7, 7},
		{"numeric string", "42", 42},
		{"padded string", " 42 ", 42},
		{"garbage string", "abc", 0},
		{"nil", nil, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := asInt(tt.in); got != tt.want {
				t.Errorf("asInt(%v) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}

func TestErrorMessages(t *testing.T) {
	actionErr := &ActionError{Code: 100, Message: "Order not found"}
	if got := actionErr.Error(); got != "acquiring: gateway error 100: Order not found" {
		t.Errorf("Unexpected ActionError message: %q", got)
	}

	badResp := &BadResponseError{StatusCode: 502, Body: []byte("Bad gateway\n")}
	if got := badResp.Error(); got != "acquiring: bad response: status 502: Bad gateway" {
		t.Errorf("Unexpected BadResponseError message: %q", got)
	}

	cause := errors.New("tls handshake failed")
	netErr := &NetworkError{Err: cause}
	if !errors.Is(netErr, cause) {
		t.Error("Expected NetworkError to unwrap its cause")
	}
}
