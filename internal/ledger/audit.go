package ledger

import (
	"fmt"

	"github.com/carson-networks/ledger-core/internal/logging"
)

// Auditor is the auditing contract, deliberately separate from the
// ledger's default read/write surface. Only policy variants that opt in
// expose it; callers obtain it through Audit.
type Auditor interface {
	// Log emits a structured snapshot of the account.
	Log()
	// GenerateReport produces a one-line summary record.
	GenerateReport() string
}

// Audit returns the audit view of the ledger when its policy opts in.
// Variants without the capability return false.
func (l *Ledger) Audit() (Auditor, bool) {
	if !l.policy.auditable() {
		return nil, false
	}
	return &auditor{ledger: l}, true
}

type auditor struct {
	ledger *Ledger
}

func (a *auditor) Log() {
	l := a.ledger
	l.mu.Lock()
	balance := l.balance
	count := len(l.history)
	l.mu.Unlock()

	data := logging.NewLogData(l.logger)
	data.AddData("accountID", l.id.String())
	data.AddData("owner", l.owner)
	data.AddData("policy", l.policy.Kind.String())
	data.AddData("balance", balance.String())
	data.AddData("transactions", count)
	data.Log().Info("Ledger.Audit.Snapshot")
}

func (a *auditor) GenerateReport() string {
	l := a.ledger
	l.mu.Lock()
	balance := l.balance
	count := len(l.history)
	l.mu.Unlock()

	return fmt.Sprintf("account=%s owner=%q policy=%q balance=%s transactions=%d",
		l.id, l.owner, l.policy.Kind, balance, count)
}
