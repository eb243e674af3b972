package ledger

import (
	"sort"
	"strings"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// DefaultDescription is recorded when a transaction is created without one.
const DefaultDescription = "No description"

// Kind identifies what a transaction represents.
type Kind int8

const (
	KindDeposit Kind = iota
	KindWithdrawal
	KindTransferOut
	KindTransferIn
)

// String returns the human-readable kind name.
func (k Kind) String() string {
	switch k {
	case KindDeposit:
		return "deposit"
	case KindWithdrawal:
		return "withdrawal"
	case KindTransferOut:
		return "transfer out"
	case KindTransferIn:
		return "transfer in"
	default:
		return "unknown"
	}
}

// Direction says whether an applied transaction credits or debits a balance.
type Direction int8

const (
	Credit Direction = iota
	Debit
)

// Transaction is an immutable record of one balance-affecting event.
// Identity is the generated ID: two transactions with equal fields are
// still distinct events.
type Transaction struct {
	ID          uuid.UUID
	Kind        Kind
	Amount      decimal.Decimal
	Description string
	CreatedAt   time.Time
}

// NewTransaction creates a transaction stamped with the current time.
// A blank description is replaced with DefaultDescription.
func NewTransaction(kind Kind, amount decimal.Decimal, description string) Transaction {
	return NewTransactionAt(kind, amount, description, time.Now())
}

// NewTransactionAt is NewTransaction with an explicit creation time.
func NewTransactionAt(kind Kind, amount decimal.Decimal, description string, createdAt time.Time) Transaction {
	if strings.TrimSpace(description) == "" {
		description = DefaultDescription
	}
	return Transaction{
		ID:          uuid.Must(uuid.NewV4()),
		Kind:        kind,
		Amount:      amount,
		Description: description,
		CreatedAt:   createdAt,
	}
}

// Same reports whether both records describe the same event.
func (t Transaction) Same(other Transaction) bool {
	return t.ID == other.ID
}

// Direction returns the balance direction implied by the transaction kind.
func (t Transaction) Direction() Direction {
	switch t.Kind {
	case KindWithdrawal, KindTransferOut:
		return Debit
	default:
		return Credit
	}
}

// SortByAmountDesc orders transactions by amount, largest first. The sort
// is stable: equal amounts keep their original relative order.
func SortByAmountDesc(txs []Transaction) {
	sort.SliceStable(txs, func(i, j int) bool {
		return txs[i].Amount.GreaterThan(txs[j].Amount)
	})
}
