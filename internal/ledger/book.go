package ledger

import (
	"sync"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// Book is the in-process registry of open ledgers, keyed by ID. Ledgers
// live for the life of the process; there is no teardown.
type Book struct {
	mu       sync.Mutex
	accounts map[uuid.UUID]*Ledger
}

// NewBook creates an empty registry.
func NewBook() *Book {
	return &Book{accounts: make(map[uuid.UUID]*Ledger)}
}

// Open creates a ledger and registers it.
func (b *Book) Open(owner string, initialBalance decimal.Decimal, policy Policy) *Ledger {
	l := New(owner, initialBalance, policy)
	b.mu.Lock()
	defer b.mu.Unlock()
	b.accounts[l.ID()] = l
	return l
}

// Get returns the ledger with the given ID, or ErrAccountNotFound.
func (b *Book) Get(id uuid.UUID) (*Ledger, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	l, ok := b.accounts[id]
	if !ok {
		return nil, ErrAccountNotFound
	}
	return l, nil
}

// Len returns the number of registered ledgers.
func (b *Book) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.accounts)
}
