package tracker

import "testing"

func TestMoneyString(t *testing.T) {
	tests := []struct {
		name string
		m    Money
		want string
	}{
		{"symbol currency", M(1234.5, "$"), "$1234.50"},
		{"symbol rounding", M(10.456, "$"), "$10.46"},
		{"iso currency", M(1234.5, "USD"), "$1,234.50"},
		{"euro", M(10, "EUR"), "€10,00"},
		{"negative symbol", M(-42.0, "$"), "$-42.00"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.m.String(); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestMoneySignedString(t *testing.T) {
	if got := M(5, "$").SignedString(); got != "+$5.00" {
		t.Errorf("positive: got %q", got)
	}
	if got := M(0, "$").SignedString(); got != "-" {
		t.Errorf("zero: got %q", got)
	}
	if got := M(-5, "$").SignedString(); got != "$-5.00" {
		t.Errorf("negative: got %q", got)
	}
}

func TestMoneyArithmetic(t *testing.T) {
	a := M(10, "$")
	b := M(4, "$")

	if got := a.Sub(b); !got.Equal(M(6, "$")) {
		t.Errorf("Sub: got %s", got)
	}
	if got := a.Add(b.Neg()); !got.Equal(M(6, "$")) {
		t.Errorf("Add Neg: got %s", got)
	}
	if !M(-3, "$").Abs().Equal(M(3, "$")) {
		t.Error("Abs mismatch")
	}
}

func TestMoneyWeakCurrency(t *testing.T) {
	// The empty currency merges with anything.
	if got := M(1, "").Add(M(2, "$")); got.Currency() != "$" {
		t.Errorf("weak currency not adopted: %q", got.Currency())
	}

	defer func() {
		if recover() == nil {
			t.Error("expected a panic on currency mismatch")
		}
	}()
	M(1, "$").Add(M(2, "EUR"))
}
