package rules

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/ledger-core/internal/ledger"
)

// MinAmount accepts transactions of at least min.
func MinAmount(min decimal.Decimal) Rule {
	return func(tx ledger.Transaction) bool {
		return tx.Amount.GreaterThanOrEqual(min)
	}
}

// MaxAmount accepts transactions of at most max.
func MaxAmount(max decimal.Decimal) Rule {
	return func(tx ledger.Transaction) bool {
		return tx.Amount.LessThanOrEqual(max)
	}
}

// RequireDescription rejects transactions whose description is empty,
// whitespace-only, or the construction-time default.
func RequireDescription() Rule {
	return func(tx ledger.Transaction) bool {
		trimmed := strings.TrimSpace(tx.Description)
		return trimmed != "" && trimmed != ledger.DefaultDescription
	}
}

// NotOnWeekend rejects transactions created on one of the given days.
// With no arguments the weekend is Saturday and Sunday.
func NotOnWeekend(days ...time.Weekday) Rule {
	if len(days) == 0 {
		days = []time.Weekday{time.Saturday, time.Sunday}
	}
	weekend := make(map[time.Weekday]bool, len(days))
	for _, d := range days {
		weekend[d] = true
	}

	return func(tx ledger.Transaction) bool {
		return !weekend[tx.CreatedAt.Weekday()]
	}
}
