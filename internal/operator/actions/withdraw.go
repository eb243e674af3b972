package actions

import (
	"context"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/ledger-core/internal/ledger"
)

type Withdraw struct {
	AccountID   uuid.UUID
	Amount      decimal.Decimal
	Description string
	IAction
}

func (a *Withdraw) Name() string { return "Withdraw" }

func (a *Withdraw) Perform(ctx context.Context, book *ledger.Book) error {
	account, err := book.Get(a.AccountID)
	if err != nil {
		return err
	}
	return account.Withdraw(a.Amount, a.Description)
}
