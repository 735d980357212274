package till

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestDeriveReconciliation(t *testing.T) {
	cases := []struct {
		name     string
		expected string
		counted  string
		variance string
		status   ReconciliationStatus
	}{
		{"valores conferem", "1500.00", "1500.00", "0", ReconciliationMatched},
		{"falta dinheiro", "1500.00", "1480.50", "-19.5", ReconciliationInvestigate},
		{"sobra dinheiro", "1500.00", "1510.00", "10", ReconciliationInvestigate},
		{"ambos zero", "0", "0", "0", ReconciliationMatched},
	}

	for _, tc := range cases {
		expected := decimal.RequireFromString(tc.expected)
		counted := decimal.RequireFromString(tc.counted)

		variance, status := DeriveReconciliation(expected, counted)
		if variance.String() != tc.variance {
			t.Fatalf("%s: variância esperada %s, obtida %s", tc.name, tc.variance, variance.String())
		}
		if status != tc.status {
			t.Fatalf("%s: status esperado %s, obtido %s", tc.name, tc.status, status)
		}
	}
}

func TestSessionCloseVariance(t *testing.T) {
	c := SessionClose{
		SessionID:          "ts-1",
		ExpectedCashAmount: decimal.RequireFromString("320.00"),
		CountedCashAmount:  decimal.RequireFromString("318.25"),
	}

	if got := c.Variance().String(); got != "-1.75" {
		t.Fatalf("variância esperada -1.75, obtida %s", got)
	}
}
