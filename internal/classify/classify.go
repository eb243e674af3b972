// Package classify buckets transactions into descriptive categories and
// risk bands for reporting. Classification is a pure function of the
// transaction and never participates in whether it is accepted.
package classify

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/ledger-core/internal/ledger"
)

// Category describes the size tier of a transaction.
type Category string

const (
	CategoryHighValue Category = "high value"
	CategoryStandard  Category = "standard"
	CategoryMicro     Category = "micro"
)

// RiskBand grades a transaction for review purposes.
type RiskBand string

const (
	RiskLow    RiskBand = "low"
	RiskMedium RiskBand = "medium"
	RiskHigh   RiskBand = "high"
)

// Thresholds holds the tier boundaries. Credits and debits are tiered
// separately.
type Thresholds struct {
	CreditHigh     decimal.Decimal
	CreditStandard decimal.Decimal
	DebitHigh      decimal.Decimal
	DebitStandard  decimal.Decimal
}

// DefaultThresholds returns the reference boundaries: deposits tier at
// 1000/10000, withdrawals and transfers at 5000/10000.
func DefaultThresholds() Thresholds {
	return Thresholds{
		CreditHigh:     decimal.NewFromInt(10000),
		CreditStandard: decimal.NewFromInt(1000),
		DebitHigh:      decimal.NewFromInt(10000),
		DebitStandard:  decimal.NewFromInt(5000),
	}
}

// Classify applies the default thresholds.
func Classify(tx ledger.Transaction) (Category, RiskBand) {
	return ClassifyWith(tx, DefaultThresholds())
}

// ClassifyWith buckets a transaction by kind, amount, description, and
// day of week.
func ClassifyWith(tx ledger.Transaction, th Thresholds) (Category, RiskBand) {
	high, standard := th.DebitHigh, th.DebitStandard
	if tx.Direction() == ledger.Credit {
		high, standard = th.CreditHigh, th.CreditStandard
	}

	category := CategoryMicro
	switch {
	case tx.Amount.GreaterThan(high):
		category = CategoryHighValue
	case tx.Amount.GreaterThan(standard):
		category = CategoryStandard
	}

	return category, riskBand(tx, category)
}

func riskBand(tx ledger.Transaction, category Category) RiskBand {
	weekday := tx.CreatedAt.Weekday()
	weekend := weekday == time.Saturday || weekday == time.Sunday

	switch {
	case category == CategoryHighValue && tx.Direction() == ledger.Debit:
		return RiskHigh
	case weekend && category != CategoryMicro:
		return RiskHigh
	case tx.Description == ledger.DefaultDescription:
		return RiskMedium
	case category == CategoryHighValue:
		return RiskMedium
	default:
		return RiskLow
	}
}
