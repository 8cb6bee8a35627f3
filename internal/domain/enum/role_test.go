package enum

import (
	"encoding/json"
	"testing"
)

func TestRoleWireValues(t *testing.T) {
	tests := []struct {
		role Role
		wire string
	}{
		{RoleAdmin, `"Admin"`},
		{RoleCashier, `"caissier"`},
	}
	for _, tt := range tests {
		data, err := json.Marshal(tt.role)
		if err != nil {
			t.Fatalf("marshal %v: %v", tt.role, err)
		}
		if string(data) != tt.wire {
			t.Errorf("marshal %v: got %s, want %s", tt.role, data, tt.wire)
		}

		var back Role
		if err := json.Unmarshal([]byte(tt.wire), &back); err != nil {
			t.Fatalf("unmarshal %s: %v", tt.wire, err)
		}
		if back != tt.role {
			t.Errorf("unmarshal %s: got %v, want %v", tt.wire, back, tt.role)
		}
	}
}

func TestRoleUnmarshalRejectsUnknownValues(t *testing.T) {
	for _, wire := range []string{`"garbage"`, `"admin"`, `""`, `7`, `-1`} {
		var r Role
		if err := json.Unmarshal([]byte(wire), &r); err == nil {
			t.Errorf("unmarshal %s: expected an error, got role %v", wire, r)
		}
	}
}

func TestRoleMarshalRejectsUnknownVariant(t *testing.T) {
	if _, err := json.Marshal(Role(7)); err == nil {
		t.Errorf("marshal of an unknown role must fail")
	}
}

func TestRoleIsValid(t *testing.T) {
	if !RoleAdmin.IsValid() || !RoleCashier.IsValid() {
		t.Errorf("known roles must be valid")
	}
	if Role(7).IsValid() {
		t.Errorf("unknown role must be invalid")
	}
}

func TestPaymentMethodWireValues(t *testing.T) {
	for wire, want := range map[string]PaymentMethod{
		"cash":    PaymentCash,
		"card":    PaymentCard,
		"check":   PaymentCheck,
		"unknown": PaymentCash,
	} {
		if got := ParsePaymentMethod(wire); got != want {
			t.Errorf("parse %q: got %v, want %v", wire, got, want)
		}
	}

	data, err := json.Marshal(PaymentCheck)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != `"check"` {
		t.Errorf("marshal check: got %s", data)
	}
}
