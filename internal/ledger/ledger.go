package ledger

import (
	"bytes"
	"sync"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/ledger-core/internal/notify"
)

// Validator screens transactions before they are committed.
// rules.RuleSet satisfies this interface.
type Validator interface {
	Evaluate(tx Transaction) bool
}

// Change is delivered to subscribers after every accepted transaction.
type Change struct {
	Previous decimal.Decimal
	Current  decimal.Decimal
	Tx       Transaction
}

// Ledger owns one account's balance and its append-only history of
// accepted transactions. All mutation goes through Apply, which runs
// validate-then-commit under the ledger's mutex: either balance and
// history update together and subscribers are notified, or nothing
// changes and a reason is returned.
type Ledger struct {
	mu      sync.Mutex
	id      uuid.UUID
	owner   string
	balance decimal.Decimal
	history []Transaction
	rules   Validator
	hub     *notify.Hub[Change]
	policy  Policy
	logger  *logrus.Logger
}

// New creates a ledger with the given owner label, opening balance, and
// policy. The ledger has no rules attached and no subscribers.
func New(owner string, initialBalance decimal.Decimal, policy Policy) *Ledger {
	return &Ledger{
		id:      uuid.Must(uuid.NewV4()),
		owner:   owner,
		balance: initialBalance,
		hub:     notify.NewHub[Change](),
		policy:  policy,
		logger:  logrus.StandardLogger(),
	}
}

// ID returns the ledger's stable identifier.
func (l *Ledger) ID() uuid.UUID {
	return l.id
}

// Owner returns the owner label.
func (l *Ledger) Owner() string {
	return l.owner
}

// Balance returns the current balance.
func (l *Ledger) Balance() decimal.Decimal {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.balance
}

// Count returns the number of accepted transactions in the history.
func (l *Ledger) Count() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.history)
}

// AttachRules sets the validator consulted by Apply. Nil detaches it.
func (l *Ledger) AttachRules(v Validator) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.rules = v
}

// SetLogger replaces the logger used by the audit contract.
func (l *Ledger) SetLogger(logger *logrus.Logger) {
	l.logger = logger
}

// Subscribe registers an observer invoked synchronously, in registration
// order, on every accepted transaction. Observers must not call back
// into the same ledger.
func (l *Ledger) Subscribe(observer func(Change)) *notify.Subscription {
	return l.hub.Subscribe(observer)
}

// Unsubscribe removes an observer. An unknown handle is a no-op.
func (l *Ledger) Unsubscribe(sub *notify.Subscription) {
	l.hub.Unsubscribe(sub)
}

// Apply runs one transaction through validate-then-commit:
//
//  1. a debit is checked against the policy floor and caps,
//  2. the attached rule set is evaluated,
//  3. on acceptance the balance moves by the signed amount, the
//     transaction is appended to history, and subscribers are notified.
//
// Rejections return one of the domain errors and leave no trace.
func (l *Ledger) Apply(tx Transaction, dir Direction) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.applyLocked(tx, dir, false)
}

func (l *Ledger) applyLocked(tx Transaction, dir Direction, skipFloor bool) error {
	if dir == Debit && !skipFloor {
		if err := l.checkDebit(tx); err != nil {
			return err
		}
	}

	if l.rules != nil && !l.rules.Evaluate(tx) {
		return ErrRuleViolation
	}

	previous := l.balance
	if dir == Credit {
		l.balance = l.balance.Add(tx.Amount)
	} else {
		l.balance = l.balance.Sub(tx.Amount)
	}
	l.history = append(l.history, tx)

	l.hub.Publish(Change{Previous: previous, Current: l.balance, Tx: tx})
	return nil
}

// checkDebit enforces structural constraints before any pluggable policy:
// the balance floor first, then the daily cap when the variant has one.
func (l *Ledger) checkDebit(tx Transaction) error {
	if l.balance.Sub(tx.Amount).LessThan(l.policy.floor()) {
		return ErrInsufficientFunds
	}

	if l.policy.Kind == PolicyDailyDebitCap {
		spent := decimal.Zero
		for _, prev := range l.history {
			if prev.Direction() == Debit && sameDay(prev.CreatedAt, tx.CreatedAt) {
				spent = spent.Add(prev.Amount)
			}
		}
		if spent.Add(tx.Amount).GreaterThan(l.policy.DailyDebitCap) {
			return ErrLimitExceeded
		}
	}

	return nil
}

// Deposit credits the account. The amount must be positive.
func (l *Ledger) Deposit(amount decimal.Decimal, description string) error {
	if !amount.IsPositive() {
		return ErrBadAmount
	}
	return l.Apply(NewTransaction(KindDeposit, amount, description), Credit)
}

// Withdraw debits the account. The amount must be positive.
func (l *Ledger) Withdraw(amount decimal.Decimal, description string) error {
	if !amount.IsPositive() {
		return ErrBadAmount
	}
	return l.Apply(NewTransaction(KindWithdrawal, amount, description), Debit)
}

// TransferTo debits this ledger and credits target by the same amount.
// The debit is subject to this ledger's floor, caps, and rules. The
// credit bypasses the target's balance-floor checks (credits never fail
// on insufficiency) but still runs the target's rule set; if the target
// rejects, the source debit stands and the rejection is returned.
// Both ledgers are locked in ascending ID order for the duration.
func (l *Ledger) TransferTo(target *Ledger, amount decimal.Decimal, description string) error {
	if target == nil || target == l {
		return ErrSameAccount
	}
	if !amount.IsPositive() {
		return ErrBadAmount
	}
	if description == "" {
		description = "Transfer to " + target.Owner()
	}

	first, second := l, target
	if bytes.Compare(first.id.Bytes(), second.id.Bytes()) > 0 {
		first, second = second, first
	}
	first.mu.Lock()
	defer first.mu.Unlock()
	second.mu.Lock()
	defer second.mu.Unlock()

	out := NewTransaction(KindTransferOut, amount, description)
	if err := l.applyLocked(out, Debit, false); err != nil {
		return err
	}

	in := NewTransactionAt(KindTransferIn, amount, description, out.CreatedAt)
	return target.applyLocked(in, Credit, true)
}

// Get returns the history entry at index, counted from the start.
func (l *Ledger) Get(index int) (Transaction, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if index < 0 || index >= len(l.history) {
		return Transaction{}, ErrIndexOutOfRange
	}
	return l.history[index], nil
}

// GetFromEnd returns the history entry counted from the end; offset 1 is
// the most recent entry.
func (l *Ledger) GetFromEnd(offset int) (Transaction, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if offset < 1 || offset > len(l.history) {
		return Transaction{}, ErrIndexOutOfRange
	}
	return l.history[len(l.history)-offset], nil
}

// GetRange returns a copy of length history entries starting at start,
// in insertion order.
func (l *Ledger) GetRange(start, length int) ([]Transaction, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if start < 0 || length < 0 || start+length > len(l.history) {
		return nil, ErrIndexOutOfRange
	}
	out := make([]Transaction, length)
	copy(out, l.history[start:start+length])
	return out, nil
}

// MonthEnd applies the policy's month-end processing. Interest-bearing
// accounts earn interest on a positive balance; overdraft accounts with
// a rate are charged interest on a negative balance. The resulting
// transaction flows through the normal commit path, so rules run and
// subscribers are notified. Other variants do nothing.
func (l *Ledger) MonthEnd() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	switch l.policy.Kind {
	case PolicyInterestBearing:
		if !l.balance.IsPositive() {
			return nil
		}
		interest := l.balance.Mul(l.policy.InterestRate).Round(2)
		if !interest.IsPositive() {
			return nil
		}
		return l.applyLocked(NewTransaction(KindDeposit, interest, "Monthly interest"), Credit, false)

	case PolicyOverdraft:
		if !l.balance.IsNegative() || !l.policy.InterestRate.IsPositive() {
			return nil
		}
		charge := l.balance.Neg().Mul(l.policy.InterestRate).Round(2)
		if !charge.IsPositive() {
			return nil
		}
		// The charge is a fee, not a debit request; it may run past the
		// overdraft ceiling.
		return l.applyLocked(NewTransaction(KindWithdrawal, charge, "Overdraft interest charge"), Debit, true)
	}

	return nil
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
