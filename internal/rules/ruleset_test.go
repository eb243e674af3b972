package rules

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/carson-networks/ledger-core/internal/ledger"
)

func tx(t *testing.T, amount, description string) ledger.Transaction {
	t.Helper()
	at := time.Date(2025, 7, 2, 10, 0, 0, 0, time.UTC) // a Wednesday
	return ledger.NewTransactionAt(ledger.KindDeposit, decimal.RequireFromString(amount), description, at)
}

// counting wraps a rule and records every invocation.
func counting(r Rule, calls *int) Rule {
	return func(tx ledger.Transaction) bool {
		*calls++
		return r(tx)
	}
}

// -- Evaluate tests --

func TestEvaluate_EmptySetAccepts(t *testing.T) {
	s := NewRuleSet()
	assert.True(t, s.Evaluate(tx(t, "10.00", "x")))
}

func TestEvaluate_InsertionOrderAndShortCircuit(t *testing.T) {
	firstCalls, secondCalls := 0, 0
	s := NewRuleSet()
	s.AddRule(counting(MinAmount(decimal.Zero), &firstCalls))
	s.AddRule(counting(MaxAmount(decimal.NewFromInt(1000000)), &secondCalls))

	assert.True(t, s.Evaluate(tx(t, "50.00", "x")))
	assert.Equal(t, 1, firstCalls)
	assert.Equal(t, 1, secondCalls)

	rejecting := NewRuleSet()
	rejecting.AddRule(counting(func(ledger.Transaction) bool { return false }, &firstCalls))
	rejecting.AddRule(counting(MaxAmount(decimal.NewFromInt(1000000)), &secondCalls))

	assert.False(t, rejecting.Evaluate(tx(t, "50.00", "x")))
	assert.Equal(t, 2, firstCalls)
	assert.Equal(t, 1, secondCalls, "short-circuit: second rule never ran")
}

// -- BuildComposite tests --

func TestBuildComposite_RunsEveryRule(t *testing.T) {
	firstCalls, secondCalls := 0, 0
	s := NewRuleSet()
	s.AddRule(counting(func(ledger.Transaction) bool { return false }, &firstCalls))
	s.AddRule(counting(MaxAmount(decimal.NewFromInt(1000000)), &secondCalls))

	composite := s.BuildComposite()

	assert.False(t, composite(tx(t, "50.00", "x")), "AND of all results")
	assert.Equal(t, 1, firstCalls)
	assert.Equal(t, 1, secondCalls, "no short-circuit: every rule fired")
}

func TestBuildComposite_EmptySetAccepts(t *testing.T) {
	composite := NewRuleSet().BuildComposite()
	assert.True(t, composite(tx(t, "1.00", "x")))
}

func TestBuildComposite_SnapshotsRules(t *testing.T) {
	s := NewRuleSet(MinAmount(decimal.Zero))
	composite := s.BuildComposite()

	s.AddRule(func(ledger.Transaction) bool { return false })

	assert.True(t, composite(tx(t, "10.00", "x")), "rules added later do not affect the composite")
	assert.False(t, s.Evaluate(tx(t, "10.00", "x")))
}

// -- And combinator tests --

func TestAnd_CombinesWithoutMutating(t *testing.T) {
	min := MinAmount(decimal.NewFromInt(10))
	max := MaxAmount(decimal.NewFromInt(100))
	both := And(min, max)

	assert.True(t, both(tx(t, "50.00", "x")))
	assert.False(t, both(tx(t, "5.00", "x")))
	assert.False(t, both(tx(t, "500.00", "x")))

	// Originals still behave independently.
	assert.True(t, min(tx(t, "500.00", "x")))
	assert.True(t, max(tx(t, "5.00", "x")))
}

// -- Factory tests --

func TestMinAmount_BoundaryIsInclusive(t *testing.T) {
	r := MinAmount(decimal.RequireFromString("10.00"))
	assert.True(t, r(tx(t, "10.00", "x")))
	assert.False(t, r(tx(t, "9.99", "x")))
}

func TestMaxAmount_BoundaryIsInclusive(t *testing.T) {
	r := MaxAmount(decimal.RequireFromString("10.00"))
	assert.True(t, r(tx(t, "10.00", "x")))
	assert.False(t, r(tx(t, "10.01", "x")))
}

func TestRequireDescription(t *testing.T) {
	r := RequireDescription()
	assert.True(t, r(tx(t, "1.00", "Rent")))
	assert.False(t, r(tx(t, "1.00", "")), "constructor substitutes the sentinel")
	assert.False(t, r(tx(t, "1.00", "   ")))

	// A caller-supplied sentinel is rejected the same way.
	explicit := tx(t, "1.00", ledger.DefaultDescription)
	assert.False(t, r(explicit))
}

func TestNotOnWeekend_DefaultDays(t *testing.T) {
	r := NotOnWeekend()
	saturday := ledger.NewTransactionAt(ledger.KindDeposit, decimal.NewFromInt(1), "x",
		time.Date(2025, 7, 5, 10, 0, 0, 0, time.UTC))
	monday := ledger.NewTransactionAt(ledger.KindDeposit, decimal.NewFromInt(1), "x",
		time.Date(2025, 7, 7, 10, 0, 0, 0, time.UTC))

	assert.False(t, r(saturday))
	assert.True(t, r(monday))
}

func TestNotOnWeekend_ConfigurableDays(t *testing.T) {
	r := NotOnWeekend(time.Friday, time.Saturday)
	friday := ledger.NewTransactionAt(ledger.KindDeposit, decimal.NewFromInt(1), "x",
		time.Date(2025, 7, 4, 10, 0, 0, 0, time.UTC))
	sunday := ledger.NewTransactionAt(ledger.KindDeposit, decimal.NewFromInt(1), "x",
		time.Date(2025, 7, 6, 10, 0, 0, 0, time.UTC))

	assert.False(t, r(friday))
	assert.True(t, r(sunday))
}
