package main

import (
	"context"

	"github.com/davecgh/go-spew/spew"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/ledger-core/internal/classify"
	"github.com/carson-networks/ledger-core/internal/config"
	"github.com/carson-networks/ledger-core/internal/ledger"
	"github.com/carson-networks/ledger-core/internal/logging"
	"github.com/carson-networks/ledger-core/internal/operator"
	"github.com/carson-networks/ledger-core/internal/operator/actions"
	"github.com/carson-networks/ledger-core/internal/rules"
)

func main() {
	envConfig, err := config.ProcessEnvironmentVariables()
	if err != nil {
		logrus.WithError(err).Fatal("config.ProcessEnvironmentVariables")
		return
	}

	logger := logging.SetupLogging(envConfig.LogLevel)
	logger.Info("ledger-core demo starting")

	weekend, _ := envConfig.Weekend()

	book := ledger.NewBook()
	checking := book.Open("Alice", decimal.RequireFromString("1000.00"),
		ledger.OverdraftPolicy(decimal.RequireFromString("500.00"), decimal.RequireFromString("0.02")))
	savings := book.Open("Alice", decimal.RequireFromString("250.00"),
		ledger.InterestBearingPolicy(decimal.RequireFromString("0.017")))
	checking.SetLogger(logger)
	savings.SetLogger(logger)

	checkingRules := rules.NewRuleSet(
		rules.MinAmount(decimal.RequireFromString("0.01")),
		rules.MaxAmount(decimal.RequireFromString("1000000")),
		rules.NotOnWeekend(weekend...),
	)
	checking.AttachRules(checkingRules)

	sub := checking.Subscribe(func(change ledger.Change) {
		category, risk := classify.Classify(change.Tx)
		logger.WithFields(logrus.Fields{
			"kind":     change.Tx.Kind.String(),
			"amount":   change.Tx.Amount.String(),
			"previous": change.Previous.String(),
			"current":  change.Current.String(),
			"category": string(category),
			"risk":     string(risk),
		}).Info("Ledger.Change")
	})
	defer checking.Unsubscribe(sub)

	delegator := operator.NewOperatorDelegator(book, logger, 1)
	delegator.Start()
	defer delegator.Stop()

	ctx := context.Background()
	steps := []actions.IAction{
		&actions.Deposit{AccountID: checking.ID(), Amount: decimal.RequireFromString("150.00"), Description: "Paycheck"},
		&actions.Withdraw{AccountID: checking.ID(), Amount: decimal.RequireFromString("1300.00"), Description: "Rent"},
		&actions.Withdraw{AccountID: checking.ID(), Amount: decimal.RequireFromString("1700.01"), Description: "Too much"},
		&actions.Transfer{FromAccountID: checking.ID(), ToAccountID: savings.ID(), Amount: decimal.RequireFromString("50.00")},
	}
	for _, step := range steps {
		if err := delegator.Process(ctx, step); err != nil {
			logger.WithError(err).Warnf("Action.%v.Rejected", step.Name())
		}
	}

	if err := savings.MonthEnd(); err != nil {
		logger.WithError(err).Warn("Ledger.MonthEnd")
	}

	if auditor, ok := checking.Audit(); ok {
		auditor.Log()
		logger.Info(auditor.GenerateReport())
	}

	history, err := checking.GetRange(0, checking.Count())
	if err == nil {
		ledger.SortByAmountDesc(history)
		logger.Debugf("checking history by amount:\n%s", spew.Sdump(history))
	}

	logger.WithFields(logrus.Fields{
		"checking": checking.Balance().String(),
		"savings":  savings.Balance().String(),
	}).Info("ledger-core demo complete")
}
