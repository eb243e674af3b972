// Package rules provides pluggable transaction validation: single
// predicates and ordered AND-composed rule sets.
package rules

import (
	"github.com/carson-networks/ledger-core/internal/ledger"
)

// Rule is an accept/reject predicate over a transaction. Rules are
// expected to be pure, but the rule set does not enforce that.
type Rule func(tx ledger.Transaction) bool

// And combines two rules into a new one that accepts only when both
// accept. Neither original is modified.
func And(a, b Rule) Rule {
	return func(tx ledger.Transaction) bool {
		return a(tx) && b(tx)
	}
}

// RuleSet is an ordered collection of rules evaluated in insertion order.
type RuleSet struct {
	rules []Rule
}

// NewRuleSet creates a rule set seeded with the given rules.
func NewRuleSet(rules ...Rule) *RuleSet {
	s := &RuleSet{}
	s.rules = append(s.rules, rules...)
	return s
}

// AddRule appends a rule to the end of the evaluation order.
func (s *RuleSet) AddRule(r Rule) {
	s.rules = append(s.rules, r)
}

// Len returns the number of rules in the set.
func (s *RuleSet) Len() int {
	return len(s.rules)
}

// Evaluate runs the rules in insertion order and stops at the first
// rejection. An empty set accepts everything.
func (s *RuleSet) Evaluate(tx ledger.Transaction) bool {
	for _, r := range s.rules {
		if !r(tx) {
			return false
		}
	}
	return true
}

// BuildComposite folds the current rules into one callable. Unlike
// Evaluate, every rule runs even after a rejection; the result is the
// AND of all results. This mirrors invoking a chained callback list,
// where each member fires regardless of the previous member's outcome.
// Rules added after the call do not affect the returned composite.
func (s *RuleSet) BuildComposite() Rule {
	snapshot := make([]Rule, len(s.rules))
	copy(snapshot, s.rules)

	return func(tx ledger.Transaction) bool {
		accepted := true
		for _, r := range snapshot {
			if !r(tx) {
				accepted = false
			}
		}
		return accepted
	}
}
