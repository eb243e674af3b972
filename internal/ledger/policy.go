package ledger

import "github.com/shopspring/decimal"

// PolicyKind selects the balance policy variant for a ledger.
type PolicyKind int8

const (
	PolicyStandard PolicyKind = iota
	PolicyOverdraft
	PolicyDailyDebitCap
	PolicyInterestBearing
)

// String returns the human-readable policy name.
func (k PolicyKind) String() string {
	switch k {
	case PolicyStandard:
		return "standard"
	case PolicyOverdraft:
		return "overdraft"
	case PolicyDailyDebitCap:
		return "daily debit cap"
	case PolicyInterestBearing:
		return "interest bearing"
	default:
		return "unknown"
	}
}

// Policy parametrizes variant-specific behavior. Only the fields relevant
// to the kind are consulted; the rest stay zero.
type Policy struct {
	Kind           PolicyKind
	OverdraftLimit decimal.Decimal
	DailyDebitCap  decimal.Decimal
	InterestRate   decimal.Decimal // monthly rate, applied by MonthEnd
}

// StandardPolicy permits no negative balance and no caps.
func StandardPolicy() Policy {
	return Policy{Kind: PolicyStandard}
}

// OverdraftPolicy permits the balance to go as low as -limit. A positive
// monthlyRate charges interest on a negative balance at month end.
func OverdraftPolicy(limit, monthlyRate decimal.Decimal) Policy {
	return Policy{Kind: PolicyOverdraft, OverdraftLimit: limit, InterestRate: monthlyRate}
}

// DailyDebitCapPolicy caps the total debited per calendar day.
func DailyDebitCapPolicy(limit decimal.Decimal) Policy {
	return Policy{Kind: PolicyDailyDebitCap, DailyDebitCap: limit}
}

// InterestBearingPolicy credits balance * monthlyRate at month end.
func InterestBearingPolicy(monthlyRate decimal.Decimal) Policy {
	return Policy{Kind: PolicyInterestBearing, InterestRate: monthlyRate}
}

// floor returns the lowest balance a debit may leave behind.
func (p Policy) floor() decimal.Decimal {
	if p.Kind == PolicyOverdraft {
		return p.OverdraftLimit.Neg()
	}
	return decimal.Zero
}

// auditable reports whether the variant exposes the audit contract.
func (p Policy) auditable() bool {
	return p.Kind == PolicyOverdraft || p.Kind == PolicyDailyDebitCap
}
