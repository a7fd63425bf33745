package acquiring

import (
	"strings"
	"testing"
)

func TestOrderStatusText(t *testing.T) {
	if got := OrderStatusText(OrderStatusDeposited); got != "amount deposited" {
		t.Errorf("Unexpected text for deposited: %q", got)
	}
	if got := OrderStatusText(42); got != "unknown order status" {
		t.Errorf("Unexpected text for unknown status: %q", got)
	}
}

func TestNewOrderNumber(t *testing.T) {
	first := NewOrderNumber()
	if len(first) != 32 {
		t.Errorf("Expected 32 characters, got %d (%q)", len(first), first)
	}
	if strings.Contains(first, "-") {
		t.Errorf("Expected no separators, got %q", first)
	}
	if second := NewOrderNumber(); second == first {
		t.Error("Expected order numbers to be unique")
	}
}
