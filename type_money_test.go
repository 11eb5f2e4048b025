package lifecast

import (
	"encoding/json"
	"testing"
)

func TestMoney_Arithmetic(t *testing.T) {
	m := USD(100.50).Add(USD(49.50))
	if !m.Equal(USD(150)) {
		t.Errorf("Add() = %s, want $150.00", m)
	}
	if got := m.Sub(USD(200)); !got.IsNegative() {
		t.Errorf("Sub() = %s, want a negative value", got)
	}
	if got := USD(100).Mul(Q(1.05)); !got.Equal(USD(105)) {
		t.Errorf("Mul() = %s, want $105.00", got)
	}
	if got := USD(105).Div(Q(1.05)); !got.Equal(USD(100)) {
		t.Errorf("Div() = %s, want $100.00", got)
	}
}

func TestMoney_WeakCurrency(t *testing.T) {
	// The zero value has no currency and adopts the other operand's.
	var zero Money
	if got := zero.Add(USD(10)); got.Currency() != "USD" {
		t.Errorf("Currency() = %q, want USD", got.Currency())
	}
}

func TestMoney_String(t *testing.T) {
	if got := USD(1798.654).Round().String(); got != "$1,798.65" {
		t.Errorf("String() = %s, want $1,798.65", got)
	}
	if got := USD(-50).SignedString(); got != "-$50.00" {
		t.Errorf("SignedString() = %s, want -$50.00", got)
	}
}

func TestMoney_MarshalJSON(t *testing.T) {
	data, err := json.Marshal(USD(12.345))
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	var obj map[string]any
	if err := json.Unmarshal(data, &obj); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if obj["currency"] != "USD" {
		t.Errorf("currency = %v, want USD", obj["currency"])
	}
	// Amounts are rounded to the currency fraction only at the boundary.
	if obj["amount"] != 12.35 {
		t.Errorf("amount = %v, want 12.35", obj["amount"])
	}
}
