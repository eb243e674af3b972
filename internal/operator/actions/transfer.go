package actions

import (
	"context"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/ledger-core/internal/ledger"
)

type Transfer struct {
	FromAccountID uuid.UUID
	ToAccountID   uuid.UUID
	Amount        decimal.Decimal
	Description   string
	IAction
}

func (a *Transfer) Name() string { return "Transfer" }

func (a *Transfer) Perform(ctx context.Context, book *ledger.Book) error {
	source, err := book.Get(a.FromAccountID)
	if err != nil {
		return err
	}
	target, err := book.Get(a.ToAccountID)
	if err != nil {
		return err
	}
	return source.TransferTo(target, a.Amount, a.Description)
}
