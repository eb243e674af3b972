package actions

import (
	"context"

	"github.com/carson-networks/ledger-core/internal/ledger"
)

type IAction interface {
	Perform(ctx context.Context, book *ledger.Book) error
	Name() string
}
