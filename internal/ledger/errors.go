// Package ledger implements the account ledger: balance, append-only
// transaction history, pluggable validation, and change notification.
package ledger

import "errors"

// Domain errors. All of them are recoverable outcomes returned to the
// caller; the presentation layer decides how to render them.
var (
	// ErrInsufficientFunds means a debit would push the balance below the
	// account's permitted floor (zero, or the overdraft allowance).
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrLimitExceeded means a debit would exceed a policy cap, such as a
	// daily debit limit, distinct from plain insufficiency.
	ErrLimitExceeded = errors.New("policy limit exceeded")

	// ErrRuleViolation means the attached rule set rejected the
	// transaction. Which individual rule failed is not reported.
	ErrRuleViolation = errors.New("transaction rejected by rule set")

	// ErrIndexOutOfRange means a history lookup requested indices outside
	// the valid domain.
	ErrIndexOutOfRange = errors.New("history index out of range")

	// ErrBadAmount means the requested amount was zero or negative.
	ErrBadAmount = errors.New("amount must be > 0")

	// ErrSameAccount means a transfer named the same ledger on both sides.
	ErrSameAccount = errors.New("source and target are the same account")

	// ErrAccountNotFound means the book has no ledger with the given ID.
	ErrAccountNotFound = errors.New("account not found")
)
