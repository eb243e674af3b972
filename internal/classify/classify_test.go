package classify

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/carson-networks/ledger-core/internal/ledger"
)

var (
	weekday = time.Date(2025, 7, 2, 10, 0, 0, 0, time.UTC) // Wednesday
	weekend = time.Date(2025, 7, 5, 10, 0, 0, 0, time.UTC) // Saturday
)

func tx(t *testing.T, kind ledger.Kind, amount, description string, at time.Time) ledger.Transaction {
	t.Helper()
	return ledger.NewTransactionAt(kind, decimal.RequireFromString(amount), description, at)
}

// -- Category tests --

func TestClassify_DepositTiers(t *testing.T) {
	cat, _ := Classify(tx(t, ledger.KindDeposit, "15000.00", "bonus", weekday))
	assert.Equal(t, CategoryHighValue, cat)

	cat, _ = Classify(tx(t, ledger.KindDeposit, "2500.00", "salary", weekday))
	assert.Equal(t, CategoryStandard, cat)

	cat, _ = Classify(tx(t, ledger.KindDeposit, "1000.00", "refund", weekday))
	assert.Equal(t, CategoryMicro, cat, "boundary is exclusive")
}

func TestClassify_DebitTiers(t *testing.T) {
	cat, _ := Classify(tx(t, ledger.KindWithdrawal, "12000.00", "car", weekday))
	assert.Equal(t, CategoryHighValue, cat)

	cat, _ = Classify(tx(t, ledger.KindTransferOut, "6000.00", "rent", weekday))
	assert.Equal(t, CategoryStandard, cat)

	cat, _ = Classify(tx(t, ledger.KindWithdrawal, "2500.00", "groceries", weekday))
	assert.Equal(t, CategoryMicro, cat, "debits tier at 5000, not 1000")
}

// -- Risk band tests --

func TestClassify_HighValueDebitIsHighRisk(t *testing.T) {
	_, risk := Classify(tx(t, ledger.KindWithdrawal, "12000.00", "car", weekday))
	assert.Equal(t, RiskHigh, risk)
}

func TestClassify_WeekendActivityIsHighRisk(t *testing.T) {
	_, risk := Classify(tx(t, ledger.KindTransferOut, "6000.00", "rent", weekend))
	assert.Equal(t, RiskHigh, risk)

	_, risk = Classify(tx(t, ledger.KindWithdrawal, "10.00", "coffee", weekend))
	assert.Equal(t, RiskLow, risk, "micro stays low even on weekends")
}

func TestClassify_MissingDescriptionIsMediumRisk(t *testing.T) {
	_, risk := Classify(tx(t, ledger.KindDeposit, "10.00", "", weekday))
	assert.Equal(t, RiskMedium, risk)
}

func TestClassify_HighValueCreditIsMediumRisk(t *testing.T) {
	_, risk := Classify(tx(t, ledger.KindDeposit, "15000.00", "bonus", weekday))
	assert.Equal(t, RiskMedium, risk)
}

func TestClassify_OrdinaryActivityIsLowRisk(t *testing.T) {
	_, risk := Classify(tx(t, ledger.KindDeposit, "50.00", "lunch money", weekday))
	assert.Equal(t, RiskLow, risk)
}

// -- Threshold override tests --

func TestClassifyWith_CustomThresholds(t *testing.T) {
	th := Thresholds{
		CreditHigh:     decimal.NewFromInt(100),
		CreditStandard: decimal.NewFromInt(10),
		DebitHigh:      decimal.NewFromInt(100),
		DebitStandard:  decimal.NewFromInt(10),
	}

	cat, _ := ClassifyWith(tx(t, ledger.KindDeposit, "50.00", "x", weekday), th)
	assert.Equal(t, CategoryStandard, cat)

	cat, _ = ClassifyWith(tx(t, ledger.KindDeposit, "500.00", "x", weekday), th)
	assert.Equal(t, CategoryHighValue, cat)
}
