// Package operator serializes ledger mutations through a queue of
// actions drained by worker goroutines, giving callers single-writer
// semantics over the book without holding locks themselves.
package operator

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/carson-networks/ledger-core/internal/ledger"
	"github.com/carson-networks/ledger-core/internal/logging"
	"github.com/carson-networks/ledger-core/internal/operator/actions"
)

// Operator is the worker that processes items from the queue.
type Operator struct {
	book   *ledger.Book
	logger *logrus.Logger
	queue  chan ActionItem
}

func NewOperator(book *ledger.Book, logger *logrus.Logger, queue chan ActionItem) *Operator {
	return &Operator{
		book:   book,
		logger: logger,
		queue:  queue,
	}
}

// Run listens to the queue and processes items. Exits when the queue is closed.
func (o *Operator) Run() {
	for item := range o.queue {
		o.processItem(item)
	}
}

func (o *Operator) processItem(item ActionItem) {
	err := logging.WrapAction(item.action.Name(), o.logger, func(data *logging.LogData) error {
		return item.action.Perform(item.ctx, o.book)
	})
	item.response <- ActionItemResponse{err: err}
}

type ActionItem struct {
	ctx      context.Context
	action   actions.IAction
	response chan ActionItemResponse
}

type ActionItemResponse struct {
	err error
}
